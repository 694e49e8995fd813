package pipeline

import (
	"context"
	"log/slog"
	"time"

	"jamesfarrell.me/youtube-summarizer/internal/summarize"
)

// SummarizeAll summarizes chunks one at a time, in order, waiting the pacing
// interval between calls. The first failure aborts the run and discards any
// summaries already produced.
func (p *Pipeline) SummarizeAll(ctx context.Context, chunks []string) ([]string, error) {
	summaries := make([]string, 0, len(chunks))

	for i, chunk := range chunks {
		summary, err := p.summarizeOne(ctx, chunk, p.cfg.ChunkBounds)
		if err != nil {
			return nil, &SummarizationError{Index: i, Err: err}
		}
		summaries = append(summaries, summary)
		slog.Debug("chunk summarized", slog.Int("chunk", i), slog.Int("total", len(chunks)))

		if p.cfg.OnChunk != nil {
			p.cfg.OnChunk(i+1, len(chunks))
		}

		if i < len(chunks)-1 {
			if err := pace(ctx, p.cfg.Pacing); err != nil {
				return nil, err
			}
		}
	}

	return summaries, nil
}

func (p *Pipeline) summarizeOne(ctx context.Context, text string, bounds summarize.Bounds) (string, error) {
	ctx, cancel := p.callContext(ctx)
	defer cancel()
	return p.summarizer.Summarize(ctx, text, bounds)
}

// pace blocks for d or until ctx is done.
func pace(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
