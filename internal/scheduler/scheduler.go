// Package scheduler ticks recurring jobs into the worker pool.
package scheduler

import (
	"sync"
	"time"

	"github.com/hmelikyan/wanderbot/internal/worker"
)

// Scheduler runs registered jobs at fixed intervals via the worker pool.
type Scheduler struct {
	workerPool *worker.Pool
	quit       chan struct{}
	wg         sync.WaitGroup
}

// New creates a scheduler backed by the given pool.
func New(pool *worker.Pool) *Scheduler {
	return &Scheduler{
		workerPool: pool,
		quit:       make(chan struct{}),
	}
}

// Schedule enqueues the job every interval until Stop. Enqueueing blocks the
// ticker goroutine while the pool queue is full, which naturally applies
// backpressure instead of piling up duplicate sweeps.
func (s *Scheduler) Schedule(interval time.Duration, job worker.Job) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.workerPool.Enqueue(job)
			case <-s.quit:
				return
			}
		}
	}()
}

// Stop halts all tickers and waits for them to exit.
func (s *Scheduler) Stop() {
	close(s.quit)
	s.wg.Wait()
}
