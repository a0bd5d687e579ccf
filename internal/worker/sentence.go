package worker

import (
	"context"

	"github.com/lexatic/prev/internal/match"
	"github.com/lexatic/prev/internal/model"
)

// SentenceJob matches one sentence against the run's pattern set.
// The index ties the result back to the sentence's position so the
// report can be reassembled in document order.
type SentenceJob struct {
	Index    int
	Sentence *model.Sentence
	Querier  *match.Querier
	Print    model.PrintWhat
}

// Execute implements Job.
func (j *SentenceJob) Execute(ctx context.Context) Result {
	if err := ctx.Err(); err != nil {
		return &SentenceResult{Index: j.Index, Err: err}
	}
	return &SentenceResult{
		Index: j.Index,
		Block: j.Querier.SentenceBlock(j.Sentence, j.Print),
	}
}

// SentenceResult is one sentence's contribution to the report.
type SentenceResult struct {
	Index int
	Block string
	Err   error
}

// GetError implements Result.
func (r *SentenceResult) GetError() error {
	return r.Err
}
