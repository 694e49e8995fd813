// Package app wires configuration into the collaborator clients and the
// pipeline shared by the service and the CLI.
package app

import (
	"io"
	"log/slog"
	"net/http"
	"strings"

	"jamesfarrell.me/youtube-summarizer/internal/config"
	"jamesfarrell.me/youtube-summarizer/internal/pipeline"
	"jamesfarrell.me/youtube-summarizer/internal/summarize"
	"jamesfarrell.me/youtube-summarizer/internal/transcription"
)

// SetupLogging installs the default slog logger described by cfg.
func SetupLogging(cfg *config.Config, w io.Writer) {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	var handler slog.Handler
	if strings.EqualFold(cfg.Log.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	slog.SetDefault(slog.New(handler))
}

func NewSummarizer(cfg *config.Config) summarize.Summarizer {
	switch cfg.Summarizer.Provider {
	case config.ProviderOpenAI:
		return summarize.NewOpenAI(summarize.OpenAIConfig{
			BaseURL: cfg.Summarizer.BaseURL,
			Model:   cfg.Summarizer.Model,
			APIKey:  cfg.Summarizer.APIToken,
		})
	default:
		return summarize.NewHuggingFace(summarize.HuggingFaceConfig{
			BaseURL: cfg.Summarizer.BaseURL,
			Model:   cfg.Summarizer.Model,
			Token:   cfg.Summarizer.APIToken,
		})
	}
}

func NewTranscriptClient(cfg *config.Config) *transcription.Client {
	return transcription.NewClient(
		transcription.WithLanguage(cfg.Transcript.Language),
		transcription.WithHTTPClient(&http.Client{Timeout: cfg.Transcript.Timeout}),
	)
}

// PipelineConfig converts the loaded configuration into pipeline settings.
func PipelineConfig(cfg *config.Config) pipeline.Config {
	return pipeline.Config{
		MaxWords:    cfg.Pipeline.MaxWords,
		Pacing:      cfg.Pipeline.Pacing,
		CallTimeout: cfg.Pipeline.CallTimeout,
		ChunkBounds: summarize.Bounds(cfg.Pipeline.Chunk),
		FinalBounds: summarize.Bounds(cfg.Pipeline.Final),
	}
}

func NewPipeline(cfg *config.Config, pcfg pipeline.Config) *pipeline.Pipeline {
	return pipeline.New(NewTranscriptClient(cfg), NewSummarizer(cfg), pcfg)
}
