package pipeline

import (
	"context"
	"strings"
)

// Reduce joins the partial summaries and summarizes them once more. The call
// is made even for a single summary.
func (p *Pipeline) Reduce(ctx context.Context, summaries []string) (string, error) {
	combined := strings.Join(summaries, " ")

	final, err := p.summarizeOne(ctx, combined, p.cfg.FinalBounds)
	if err != nil {
		return "", &SummarizationError{Index: ReduceIndex, Err: err}
	}
	return final, nil
}
