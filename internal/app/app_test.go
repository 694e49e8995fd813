package app

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"jamesfarrell.me/youtube-summarizer/internal/config"
	"jamesfarrell.me/youtube-summarizer/internal/summarize"
)

func loaded(t *testing.T) *config.Config {
	t.Helper()
	for _, key := range []string{"SUMMARIZER_CONFIG", "SUMMARIZER_PROVIDER", "LOG_LEVEL", "LOG_FORMAT"} {
		t.Setenv(key, "")
	}
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("config.Load() error = %v", err)
	}
	return cfg
}

func TestNewSummarizerProvider(t *testing.T) {
	cfg := loaded(t)
	assert.IsType(t, &summarize.HuggingFace{}, NewSummarizer(cfg))

	cfg.Summarizer.Provider = config.ProviderOpenAI
	assert.IsType(t, &summarize.OpenAI{}, NewSummarizer(cfg))
}

func TestPipelineConfig(t *testing.T) {
	cfg := loaded(t)
	cfg.Pipeline.Pacing = time.Second

	pcfg := PipelineConfig(cfg)
	assert.Equal(t, 300, pcfg.MaxWords)
	assert.Equal(t, time.Second, pcfg.Pacing)
	assert.Equal(t, summarize.Bounds{MinLength: 50, MaxLength: 150}, pcfg.ChunkBounds)
	assert.Equal(t, summarize.Bounds{MinLength: 100, MaxLength: 200}, pcfg.FinalBounds)
}

func TestSetupLoggingJSON(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	cfg := loaded(t)
	cfg.Log.Format = "json"
	cfg.Log.Level = "warn"

	var buf bytes.Buffer
	SetupLogging(cfg, &buf)
	slog.Info("hidden")
	slog.Warn("shown", slog.String("k", "v"))

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
	assert.Contains(t, buf.String(), `"k":"v"`)
}
