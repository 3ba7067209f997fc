package sweep

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hmelikyan/wanderbot/internal/concurrency"
	"github.com/hmelikyan/wanderbot/internal/i18n"
	"github.com/hmelikyan/wanderbot/internal/logger"
	"github.com/hmelikyan/wanderbot/internal/metrics"
	"github.com/hmelikyan/wanderbot/internal/notify"
	"github.com/hmelikyan/wanderbot/internal/repository"
)

// NotifyJob reminds players about finished actions and claimable daily
// gifts. Each reminder fires once per occurrence: a one-shot flag is set on
// send and cleared when the underlying state resets.
type NotifyJob struct {
	repo      repository.Player
	locks     *concurrency.LockManager
	messenger notify.Messenger
	tr        *i18n.Translator
	now       func() time.Time
}

// NewNotifyJob creates the notification sweep job.
func NewNotifyJob(repo repository.Player, locks *concurrency.LockManager, messenger notify.Messenger, tr *i18n.Translator) *NotifyJob {
	return &NotifyJob{
		repo:      repo,
		locks:     locks,
		messenger: messenger,
		tr:        tr,
		now:       time.Now,
	}
}

// Process runs one notification pass over all players.
func (j *NotifyJob) Process(ctx context.Context) error {
	timer := prometheus.NewTimer(metrics.SweepDuration.WithLabelValues("notify"))
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
		if err := j.notifyOne(ctx, id); err != nil {
			logger.FromContext(ctx).Error("notify sweep", "player_id", id, "error", err)
		}
		lock.Unlock()
	}
	return nil
}

func (j *NotifyJob) notifyOne(ctx context.Context, id int64) error {
	p, err := j.repo.Get(ctx, id)
	if err != nil {
		return err
	}

	lang := p.Lang
	if lang == "" {
		lang = i18n.DefaultLang
	}
	now := j.now()
	changed := false

	if p.Action != nil && p.Action.Done(now) {
		if flag := p.Notification.ActionFlag(p.Action.Type); flag != nil && !*flag {
			if err := j.send(ctx, id, j.tr.T(lang, "action.ready")); err != nil {
				return err
			}
			*flag = true
			changed = true
		}
	}

	if p.DailyGift.Claimable(now) && !p.Notification.DailyGift {
		if err := j.send(ctx, id, j.tr.T(lang, "gift.ready")); err != nil {
			return err
		}
		p.Notification.DailyGift = true
		changed = true
	}

	if !changed {
		return nil
	}
	return j.repo.Upsert(ctx, p)
}

func (j *NotifyJob) send(ctx context.Context, id int64, text string) error {
	err := j.messenger.Send(ctx, id, text)
	if errors.Is(err, notify.ErrMessageNotModified) {
		return nil
	}
	return err
}
