package sweep

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hmelikyan/wanderbot/internal/catalog"
	"github.com/hmelikyan/wanderbot/internal/concurrency"
	"github.com/hmelikyan/wanderbot/internal/domain"
	"github.com/hmelikyan/wanderbot/internal/event"
	"github.com/hmelikyan/wanderbot/internal/i18n"
	"github.com/hmelikyan/wanderbot/internal/notify"
	"github.com/hmelikyan/wanderbot/internal/player"
	"github.com/hmelikyan/wanderbot/internal/repository"
	"github.com/hmelikyan/wanderbot/internal/utils"
)

func newDecayFixture(t *testing.T) (*DecayJob, player.Service, *repository.Memory, *concurrency.LockManager) {
	t.Helper()
	repo := repository.NewMemory()
	cat := catalog.New()
	rng := utils.NewRand(1)
	players := player.NewService(repo, cat, event.NewMemoryBus(), rng)
	locks := concurrency.NewLockManager()
	job := NewDecayJob(repo, players, locks, event.NewMemoryBus(), rng)
	return job, players, repo, locks
}

func registerPlayer(t *testing.T, players player.Service, id int64) *domain.Player {
	t.Helper()
	p, err := players.GetOrRegister(context.Background(), id, "tester", "ru")
	require.NoError(t, err)
	return p
}

func TestDecaySkipsRecentlyChecked(t *testing.T) {
	job, players, repo, _ := newDecayFixture(t)
	p := registerPlayer(t, players, 1)
	ctx := context.Background()

	before := p.Hunger + p.Fatigue + p.Mood
	require.NoError(t, job.Process(ctx))

	got, err := repo.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, before, got.Hunger+got.Fatigue+got.Mood,
		"player checked within the last minute is untouched")
}

func TestDecayDecrementsAtMostOneStat(t *testing.T) {
	job, players, repo, _ := newDecayFixture(t)
	registerPlayer(t, players, 1)
	ctx := context.Background()

	job.now = func() time.Time { return time.Now().Add(2 * time.Minute) }
	require.NoError(t, job.Process(ctx))

	got, err := repo.Get(ctx, 1)
	require.NoError(t, err)
	total := got.Hunger + got.Fatigue + got.Mood
	assert.GreaterOrEqual(t, total, 299)
	assert.LessOrEqual(t, total, 300)
}

func TestDecaySkipsLockedPlayer(t *testing.T) {
	job, players, repo, locks := newDecayFixture(t)
	registerPlayer(t, players, 1)
	ctx := context.Background()

	job.now = func() time.Time { return time.Now().Add(2 * time.Minute) }
	lock := locks.GetLock(1)
	lock.Lock()
	defer lock.Unlock()

	require.NoError(t, job.Process(ctx))

	got, err := repo.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 300, got.Hunger+got.Fatigue+got.Mood)
}

func TestDecayPrunesExpiredViolations(t *testing.T) {
	job, players, repo, _ := newDecayFixture(t)
	p := registerPlayer(t, players, 1)
	ctx := context.Background()

	expired := time.Now().Add(-time.Hour)
	forever := time.Now().Add(time.Hour)
	p.Violations = []domain.Violation{
		{Reason: "spam", Type: domain.ViolationWarn, UntilDate: &expired},
		{Reason: "flood", Type: domain.ViolationMute, UntilDate: &forever},
	}
	require.NoError(t, players.Save(ctx, p))

	job.now = func() time.Time { return time.Now().Add(2 * time.Minute) }
	require.NoError(t, job.Process(ctx))

	got, err := repo.Get(ctx, 1)
	require.NoError(t, err)
	require.Len(t, got.Violations, 1)
	assert.Equal(t, "flood", got.Violations[0].Reason)
}

func newNotifyFixture(t *testing.T) (*NotifyJob, player.Service, *repository.Memory, *notify.MemoryMessenger) {
	t.Helper()
	repo := repository.NewMemory()
	cat := catalog.New()
	players := player.NewService(repo, cat, event.NewMemoryBus(), utils.NewRand(1))
	messenger := notify.NewMemoryMessenger()
	job := NewNotifyJob(repo, concurrency.NewLockManager(), messenger, i18n.NewTranslator())
	return job, players, repo, messenger
}

func TestNotifyActionFinishedOnce(t *testing.T) {
	job, players, repo, messenger := newNotifyFixture(t)
	p := registerPlayer(t, players, 1)
	ctx := context.Background()

	start := time.Now().Add(-2 * time.Hour)
	p.Action = &domain.Action{Type: domain.ActionWalk, Start: start, End: start.Add(time.Hour)}
	// The registration gift is claimable; claim-flagging is not under test here.
	p.Notification.DailyGift = true
	require.NoError(t, players.Save(ctx, p))

	require.NoError(t, job.Process(ctx))
	require.NoError(t, job.Process(ctx))

	assert.Len(t, messenger.Sent(1), 1, "one-shot flag suppresses the repeat")

	got, err := repo.Get(ctx, 1)
	require.NoError(t, err)
	assert.True(t, got.Notification.Walk)
}

func TestNotifyGiftReady(t *testing.T) {
	job, players, repo, messenger := newNotifyFixture(t)
	p := registerPlayer(t, players, 1)
	ctx := context.Background()

	claimed := time.Now().Add(-25 * time.Hour)
	p.DailyGift.LastClaimedAt = &claimed
	require.NoError(t, players.Save(ctx, p))

	require.NoError(t, job.Process(ctx))
	require.NoError(t, job.Process(ctx))

	assert.Len(t, messenger.Sent(1), 1)

	got, err := repo.Get(ctx, 1)
	require.NoError(t, err)
	assert.True(t, got.Notification.DailyGift)
}

func TestNotifyNothingPending(t *testing.T) {
	job, players, _, messenger := newNotifyFixture(t)
	p := registerPlayer(t, players, 1)
	ctx := context.Background()

	p.Notification.DailyGift = true
	require.NoError(t, players.Save(ctx, p))

	require.NoError(t, job.Process(ctx))
	assert.Empty(t, messenger.Sent(1))
}
