package worker

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// mockResult implements Result
type mockResult struct {
	err error
}

func (r *mockResult) GetError() error {
	return r.err
}

// mockJob implements Job
type mockJob struct {
	duration  time.Duration
	shouldErr bool
	executed  *int32 // atomic counter
}

func (j *mockJob) Execute(ctx context.Context) Result {
	if j.executed != nil {
		atomic.AddInt32(j.executed, 1)
	}
	if j.duration > 0 {
		select {
		case <-time.After(j.duration):
		case <-ctx.Done():
			return &mockResult{err: ctx.Err()}
		}
	}
	if j.shouldErr {
		return &mockResult{err: errors.New("job error")}
	}
	return &mockResult{err: nil}
}

func makeJobs(n int, executed *int32) []Job {
	jobs := make([]Job, n)
	for i := range jobs {
		jobs[i] = &mockJob{executed: executed}
	}
	return jobs
}

func TestNewPool(t *testing.T) {
	if got := NewPool(5).Workers(); got != 5 {
		t.Errorf("expected 5 workers, got %d", got)
	}
	if got := NewPool(0).Workers(); got != 1 {
		t.Errorf("expected default 1 worker for 0 input, got %d", got)
	}
	if got := NewPool(-1).Workers(); got != 1 {
		t.Errorf("expected default 1 worker for negative input, got %d", got)
	}
}

func TestPool_Execution(t *testing.T) {
	var executed int32
	count := 10

	results := NewPool(2).Run(context.Background(), makeJobs(count, &executed))

	if len(results) != count {
		t.Errorf("expected %d results, got %d", count, len(results))
	}
	if atomic.LoadInt32(&executed) != int32(count) {
		t.Errorf("expected %d executed jobs, got %d", count, executed)
	}
}

// Run feeds and drains concurrently, so a job count far beyond the
// worker count must still complete. A batch this size used to wedge
// submit-everything-then-collect pooling.
func TestPool_ManyJobsSmallPool(t *testing.T) {
	var executed int32
	count := 40

	done := make(chan []Result, 1)
	go func() {
		done <- NewPool(3).Run(context.Background(), makeJobs(count, &executed))
	}()

	select {
	case results := <-done:
		if len(results) != count {
			t.Errorf("expected %d results, got %d", count, len(results))
		}
		if atomic.LoadInt32(&executed) != int32(count) {
			t.Errorf("expected %d executed jobs, got %d", count, executed)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run stalled on a job batch larger than the pool")
	}
}

// concurrencyJob tracks max concurrent executions
type concurrencyJob struct {
	start    func()
	end      func()
	duration time.Duration
}

func (j *concurrencyJob) Execute(ctx context.Context) Result {
	if j.start != nil {
		j.start()
	}
	time.Sleep(j.duration)
	if j.end != nil {
		j.end()
	}
	return &mockResult{}
}

func TestPool_Concurrency(t *testing.T) {
	workers := 10
	totalJobs := 50

	var current int32
	var maxConcurrent int32
	var completed int32
	var mu sync.Mutex

	jobs := make([]Job, totalJobs)
	for i := range jobs {
		jobs[i] = &concurrencyJob{
			start: func() {
				curr := atomic.AddInt32(&current, 1)
				mu.Lock()
				if curr > maxConcurrent {
					maxConcurrent = curr
				}
				mu.Unlock()
			},
			end: func() {
				atomic.AddInt32(&current, -1)
				atomic.AddInt32(&completed, 1)
			},
			duration: 10 * time.Millisecond,
		}
	}

	NewPool(workers).Run(context.Background(), jobs)

	if atomic.LoadInt32(&completed) != int32(totalJobs) {
		t.Errorf("expected %d completed jobs, got %d", totalJobs, completed)
	}

	mu.Lock()
	max := maxConcurrent
	mu.Unlock()

	if max > int32(workers) {
		t.Errorf("max concurrency %d exceeded workers %d", max, workers)
	}
	if max <= 1 {
		t.Logf("Warning: max concurrency was %d, expected > 1", max)
	}
}

func TestPool_ErrorHandling(t *testing.T) {
	results := NewPool(2).Run(context.Background(), []Job{
		&mockJob{shouldErr: true},
		&mockJob{shouldErr: false},
	})
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}

	errCount := 0
	for _, res := range results {
		if res.GetError() != nil {
			errCount++
		}
	}
	if errCount != 1 {
		t.Errorf("expected 1 error, got %d", errCount)
	}
}

func TestPool_CancellationStopsFeedAndJobs(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	started := make(chan struct{})
	jobs := []Job{
		&concurrencyJob{start: func() { close(started) }},
	}
	// Long jobs behind the first one. Cancellation must interrupt the
	// in-flight ones and never start the rest.
	var executed int32
	for i := 0; i < 20; i++ {
		jobs = append(jobs, &mockJob{duration: 10 * time.Second, executed: &executed})
	}

	done := make(chan []Result, 1)
	go func() {
		done <- NewPool(2).Run(ctx, jobs)
	}()

	<-started
	cancel()

	select {
	case results := <-done:
		if len(results) > len(jobs) {
			t.Errorf("got %d results for %d jobs", len(results), len(jobs))
		}
		for _, res := range results {
			if err := res.GetError(); err != nil && !errors.Is(err, context.Canceled) {
				t.Errorf("unexpected job error: %v", err)
			}
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancellation")
	}

	if n := atomic.LoadInt32(&executed); n >= 20 {
		t.Errorf("cancellation should have stopped the feed, %d jobs started", n)
	}
}
