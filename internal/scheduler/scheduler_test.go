package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/hmelikyan/wanderbot/internal/worker"
)

type signalingJob struct {
	done chan struct{}
}

func (j *signalingJob) Process(context.Context) error {
	select {
	case j.done <- struct{}{}:
	default:
	}
	return nil
}

func TestSchedulerRunsJobRepeatedly(t *testing.T) {
	pool := worker.NewPool(1, 10)
	pool.Start()
	defer pool.Stop()

	sched := New(pool)
	defer sched.Stop()

	job := &signalingJob{done: make(chan struct{}, 10)}
	sched.Schedule(10*time.Millisecond, job)

	runs := 0
	timeout := time.After(time.Second)
	for runs < 2 {
		select {
		case <-job.done:
			runs++
		case <-timeout:
			t.Fatal("timeout waiting for scheduled runs")
		}
	}
	assert.GreaterOrEqual(t, runs, 2)
}
