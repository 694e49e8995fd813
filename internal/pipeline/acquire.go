package pipeline

import (
	"context"
	"fmt"
	"strings"

	"jamesfarrell.me/youtube-summarizer/internal/transcription"
)

// TranscriptFetcher returns the ordered transcript segments of a video.
type TranscriptFetcher interface {
	Fetch(ctx context.Context, videoID string) ([]transcription.Segment, error)
}

// Acquire fetches the transcript once and joins the segment texts with single
// spaces. Every failure, including an empty transcript, is reported as
// ErrTranscriptUnavailable.
func (p *Pipeline) Acquire(ctx context.Context, videoID string) (string, error) {
	ctx, cancel := p.callContext(ctx)
	defer cancel()

	segments, err := p.transcripts.Fetch(ctx, videoID)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTranscriptUnavailable, err)
	}

	texts := make([]string, len(segments))
	for i, seg := range segments {
		texts[i] = seg.Text
	}
	transcript := strings.Join(texts, " ")

	if strings.TrimSpace(transcript) == "" {
		return "", fmt.Errorf("%w: transcript for %s is empty", ErrTranscriptUnavailable, videoID)
	}
	return transcript, nil
}
