package config

import (
	"fmt"
	"net/url"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate reports configuration values the service cannot run with.
// A missing API token is deliberately not checked here: it only fails the
// summarization calls that need it.
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errors = append(errors, ValidationError{
			Field:   "server.port",
			Message: "port must be between 1 and 65535",
		})
	}

	if c.Pipeline.MaxWords < 1 {
		errors = append(errors, ValidationError{
			Field:   "pipeline.max_words",
			Message: "max_words must be positive",
		})
	}

	if c.Pipeline.Pacing < 0 {
		errors = append(errors, ValidationError{
			Field:   "pipeline.pacing",
			Message: "pacing must not be negative",
		})
	}

	if c.Pipeline.CallTimeout < 0 {
		errors = append(errors, ValidationError{
			Field:   "pipeline.call_timeout",
			Message: "call_timeout must not be negative",
		})
	}

	bounds := []struct {
		field string
		b     Bounds
	}{
		{"pipeline.chunk", c.Pipeline.Chunk},
		{"pipeline.final", c.Pipeline.Final},
	}
	for _, fb := range bounds {
		if fb.b.MinLength < 0 || fb.b.MaxLength < 1 || fb.b.MinLength > fb.b.MaxLength {
			errors = append(errors, ValidationError{
				Field:   fb.field,
				Message: "length bounds must satisfy 0 <= min_length <= max_length",
			})
		}
	}

	switch c.Summarizer.Provider {
	case ProviderHuggingFace, ProviderOpenAI:
	default:
		errors = append(errors, ValidationError{
			Field:   "summarizer.provider",
			Message: fmt.Sprintf("unknown provider: %s", c.Summarizer.Provider),
		})
	}

	if c.Summarizer.BaseURL != "" {
		if u, err := url.Parse(c.Summarizer.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
			errors = append(errors, ValidationError{
				Field:   "summarizer.base_url",
				Message: "invalid summarizer base URL",
			})
		}
	}

	return errors
}
