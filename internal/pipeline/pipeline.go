// Package pipeline turns a video URL into a summary: resolve the video,
// acquire its transcript, chunk it, summarize each chunk in order and reduce
// the partial summaries to a final one.
package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"jamesfarrell.me/youtube-summarizer/internal/summarize"
)

// Stage names a step of a Run. It appears in the pipeline's log lines.
// A Run moves from StageReceived through the active stages in order and
// ends in either StageCompleted or StageFailed.
type Stage string

const (
	StageReceived    Stage = "received"
	StageResolving   Stage = "resolving"
	StageAcquiring   Stage = "acquiring"
	StageChunking    Stage = "chunking"
	StageSummarizing Stage = "summarizing"
	StageReducing    Stage = "reducing"
	StageCompleted   Stage = "completed"
	StageFailed      Stage = "failed"
)

// Config tunes chunking, pacing and the length bounds sent to the summarizer.
type Config struct {
	// MaxWords is the largest chunk, in words.
	MaxWords int
	// Pacing is the wait between consecutive chunk summarization calls.
	// Zero disables it.
	Pacing time.Duration
	// CallTimeout bounds each collaborator call. Zero disables it.
	CallTimeout time.Duration
	ChunkBounds summarize.Bounds
	FinalBounds summarize.Bounds
	// OnChunk, if set, is called after each chunk summary with the number
	// of chunks done so far and the total.
	OnChunk func(done, total int)
}

// DefaultConfig returns 300-word chunks, 500ms pacing, a 60s call timeout,
// 50-150 chunk bounds and 100-200 final bounds.
func DefaultConfig() Config {
	return Config{
		MaxWords:    300,
		Pacing:      500 * time.Millisecond,
		CallTimeout: 60 * time.Second,
		ChunkBounds: summarize.Bounds{MinLength: 50, MaxLength: 150},
		FinalBounds: summarize.Bounds{MinLength: 100, MaxLength: 200},
	}
}

// Pipeline runs summarization requests against a transcript source and a
// summarizer. It holds no per-request state, so one Pipeline can serve
// concurrent Runs.
type Pipeline struct {
	transcripts TranscriptFetcher
	summarizer  summarize.Summarizer
	cfg         Config
}

// New returns a Pipeline using the given collaborators and settings.
func New(transcripts TranscriptFetcher, summarizer summarize.Summarizer, cfg Config) *Pipeline {
	return &Pipeline{
		transcripts: transcripts,
		summarizer:  summarizer,
		cfg:         cfg,
	}
}

// Run executes the whole pipeline for one URL. It is all-or-nothing: on
// error no partial summary is returned.
func (p *Pipeline) Run(ctx context.Context, rawURL string) (string, error) {
	started := time.Now()
	log := slog.With(slog.String("url", rawURL))

	stage := StageReceived
	log.Debug("summary requested", slog.String("stage", string(stage)))

	fail := func(err error) (string, error) {
		log.Warn("pipeline failed",
			slog.String("stage", string(StageFailed)),
			slog.String("failed_at", string(stage)),
			slog.Any("error", err),
			slog.Bool("timeout", errors.Is(err, context.DeadlineExceeded)),
		)
		return "", err
	}

	stage = StageResolving
	videoID, err := Resolve(rawURL)
	if err != nil {
		return fail(err)
	}
	log = log.With(slog.String("video_id", videoID))

	stage = StageAcquiring
	transcript, err := p.Acquire(ctx, videoID)
	if err != nil {
		return fail(err)
	}

	stage = StageChunking
	chunks := Chunk(transcript, p.cfg.MaxWords)
	log.Debug("transcript chunked", slog.Int("chunks", len(chunks)))

	stage = StageSummarizing
	summaries, err := p.SummarizeAll(ctx, chunks)
	if err != nil {
		return fail(err)
	}

	stage = StageReducing
	summary, err := p.Reduce(ctx, summaries)
	if err != nil {
		return fail(err)
	}

	log.Info("summary completed",
		slog.String("stage", string(StageCompleted)),
		slog.Int("chunks", len(chunks)),
		slog.Duration("elapsed", time.Since(started)),
	)
	return summary, nil
}

func (p *Pipeline) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if p.cfg.CallTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, p.cfg.CallTimeout)
}
