// Package worker fans a document's sentences out for concurrent
// matching. Matching is read-only per sentence, so jobs need no
// synchronization beyond result collection.
package worker

import (
	"context"
	"sync"
)

// Job is a unit of work. Execute receives the run's context and must
// return promptly once it is cancelled.
type Job interface {
	Execute(ctx context.Context) Result
}

// Result is the outcome of one job.
type Result interface {
	GetError() error
}

// Pool bounds how many jobs run at once. A pool is stateless between
// runs and safe to reuse.
type Pool struct {
	workers int
}

// NewPool creates a pool with the specified number of workers.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = 1
	}
	return &Pool{workers: workers}
}

// Workers reports the pool's concurrency bound.
func (p *Pool) Workers() int {
	return p.workers
}

// Run executes every job across the pool's workers and returns the
// results in completion order. Feeding and collection run
// concurrently on unbuffered channels, so Run cannot stall however
// many jobs there are or how slowly results are consumed.
//
// When ctx is cancelled, Run stops feeding jobs, in-flight Execute
// calls see the cancellation, and Run returns whatever results were
// produced. Callers that need to distinguish a complete run from an
// interrupted one check ctx.Err afterwards.
func (p *Pool) Run(ctx context.Context, jobs []Job) []Result {
	jobCh := make(chan Job)
	resCh := make(chan Result)

	var wg sync.WaitGroup
	for i := 0; i < p.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobCh {
				select {
				case resCh <- job.Execute(ctx):
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	// Feeder. Closing jobCh releases idle workers; cancellation stops
	// the feed without waiting for a worker to pick up.
	go func() {
		defer close(jobCh)
		for _, job := range jobs {
			select {
			case jobCh <- job:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(resCh)
	}()

	results := make([]Result, 0, len(jobs))
	for res := range resCh {
		results = append(results, res)
	}
	return results
}
