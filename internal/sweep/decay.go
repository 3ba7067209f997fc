// Package sweep holds the recurring background jobs: stat decay and pending
// notifications. Both iterate all known players, TryLock each advisory lock
// and skip players that are mid-interaction, and isolate per-player failures
// so one bad aggregate never stalls the sweep.
package sweep

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hmelikyan/wanderbot/internal/concurrency"
	"github.com/hmelikyan/wanderbot/internal/domain"
	"github.com/hmelikyan/wanderbot/internal/event"
	"github.com/hmelikyan/wanderbot/internal/logger"
	"github.com/hmelikyan/wanderbot/internal/metrics"
	"github.com/hmelikyan/wanderbot/internal/player"
	"github.com/hmelikyan/wanderbot/internal/repository"
	"github.com/hmelikyan/wanderbot/internal/utils"
)

// lowStatThreshold is the value at which a decrement triggers a one-time
// low-stat reminder.
const lowStatThreshold = 20

// checkInterval is the minimum gap between decay ticks for one player.
const checkInterval = time.Minute

// DecayJob decrements one random stat per eligible player per tick. A d6
// roll picks hunger, fatigue, mood or one of three no-op faces, so stats
// drift down slowly and unevenly.
type DecayJob struct {
	repo      repository.Player
	players   player.Service
	locks     *concurrency.LockManager
	publisher event.Bus
	rng       *utils.Rand
	now       func() time.Time
}

// NewDecayJob creates the decay sweep job.
func NewDecayJob(repo repository.Player, players player.Service, locks *concurrency.LockManager, publisher event.Bus, rng *utils.Rand) *DecayJob {
	return &DecayJob{
		repo:      repo,
		players:   players,
		locks:     locks,
		publisher: publisher,
		rng:       rng,
		now:       time.Now,
	}
}

// Process runs one decay pass over all players.
func (j *DecayJob) Process(ctx context.Context) error {
	timer := prometheus.NewTimer(metrics.SweepDuration.WithLabelValues("decay"))
	defer timer.ObserveDuration()

	ids, err := j.repo.AllIDs(ctx)
	if err != nil {
		return err
	}

	for _, id := range ids {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		lock, ok := j.locks.TryLock(id)
		if !ok {
			continue
		}
		if err := j.decayOne(ctx, id); err != nil {
			logger.FromContext(ctx).Error("decay sweep", "player_id", id, "error", err)
		}
		lock.Unlock()
	}
	return nil
}

func (j *DecayJob) decayOne(ctx context.Context, id int64) error {
	p, err := j.repo.Get(ctx, id)
	if err != nil {
		return err
	}

	now := j.now()
	if now.Sub(p.LastCheckedAt) < checkInterval {
		return nil
	}

	var stat string
	var value *int
	switch j.rng.Intn(6) {
	case 0:
		stat, value = "hunger", &p.Hunger
	case 1:
		stat, value = "fatigue", &p.Fatigue
	case 2:
		stat, value = "mood", &p.Mood
	default:
		// no-op face, still counts as a check
	}
	if value != nil && *value > domain.StatMin {
		*value--
		if *value == lowStatThreshold {
			if err := j.publisher.Publish(ctx, event.NewStatLowEvent(id, stat, *value)); err != nil {
				logger.FromContext(ctx).Warn("publish stat-low event", "player_id", id, "error", err)
			}
		}
	}

	if removed := p.PruneExpiredViolations(now); removed > 0 {
		logger.FromContext(ctx).Info("violations expired", "player_id", id, "count", removed)
	}

	if err := j.players.CheckStatus(ctx, p); err != nil {
		return err
	}
	return j.players.Save(ctx, p)
}
