// Package summarize wraps the hosted models used to summarize transcript text.
package summarize

import (
	"context"
	"errors"
	"fmt"
)

// ErrMissingCredentials is returned at call time when no API token was configured.
var ErrMissingCredentials = errors.New("summarizer API token is not set")

// Bounds are the output length limits passed to the model. Units are
// model-defined (tokens for both supported providers).
type Bounds struct {
	MinLength int
	MaxLength int
}

type Summarizer interface {
	Summarize(ctx context.Context, text string, bounds Bounds) (string, error)
}

// APIError carries a non-2xx answer from a summarization service.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("summarization API returned %d: %s", e.StatusCode, e.Message)
}
