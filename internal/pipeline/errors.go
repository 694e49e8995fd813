package pipeline

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedURL          = errors.New("malformed video URL")
	ErrTranscriptUnavailable = errors.New("transcript not available")
	ErrSummarizationFailed   = errors.New("summarization failed")
)

// ReduceIndex marks a SummarizationError raised by the final reduction call.
const ReduceIndex = -1

// SummarizationError reports which summarization call failed.
type SummarizationError struct {
	Index int
	Err   error
}

func (e *SummarizationError) Error() string {
	if e.Index == ReduceIndex {
		return fmt.Sprintf("summarizing combined summaries: %v", e.Err)
	}
	return fmt.Sprintf("summarizing chunk %d: %v", e.Index, e.Err)
}

func (e *SummarizationError) Unwrap() error {
	return e.Err
}

func (e *SummarizationError) Is(target error) bool {
	return target == ErrSummarizationFailed
}
