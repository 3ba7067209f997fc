// Package worker provides a bounded worker pool for background jobs. The
// sweep jobs run through it so a slow sweep never blocks the scheduler tick.
package worker

import (
	"context"
	"sync"

	"github.com/hmelikyan/wanderbot/internal/logger"
)

// Job is a unit of background work.
type Job interface {
	Process(ctx context.Context) error
}

// Pool fans jobs out to a fixed number of workers over a bounded queue.
type Pool struct {
	workers  int
	jobQueue chan Job
	wg       sync.WaitGroup
	quit     chan struct{}
}

// NewPool creates a pool with the given worker count and queue size.
func NewPool(workers, queueSize int) *Pool {
	return &Pool{
		workers:  workers,
		jobQueue: make(chan Job, queueSize),
		quit:     make(chan struct{}),
	}
}

// Start launches the workers.
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case job := <-p.jobQueue:
			ctx := logger.WithRequestID(context.Background(), logger.GenerateRequestID())
			if err := job.Process(ctx); err != nil {
				logger.FromContext(ctx).Error("background job failed", "error", err)
			}
		case <-p.quit:
			return
		}
	}
}

// Enqueue submits a job, blocking while the queue is full.
func (p *Pool) Enqueue(job Job) {
	p.jobQueue <- job
}

// Stop signals the workers and waits for them to drain.
func (p *Pool) Stop() {
	close(p.quit)
	p.wg.Wait()
}
