package player

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hmelikyan/wanderbot/internal/catalog"
	"github.com/hmelikyan/wanderbot/internal/domain"
	"github.com/hmelikyan/wanderbot/internal/event"
	"github.com/hmelikyan/wanderbot/internal/repository"
	"github.com/hmelikyan/wanderbot/internal/utils"
)

type capturingBus struct {
	events []event.Event
}

func (b *capturingBus) Publish(_ context.Context, e event.Event) error {
	b.events = append(b.events, e)
	return nil
}

func (b *capturingBus) Subscribe(event.Type, event.Handler) {}

func (b *capturingBus) ofType(t event.Type) []event.Event {
	var out []event.Event
	for _, e := range b.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

func newTestService(t *testing.T) (*service, *repository.Memory, *capturingBus) {
	t.Helper()
	repo := repository.NewMemory()
	bus := &capturingBus{}
	svc := NewService(repo, catalog.New(), bus, utils.NewRand(1)).(*service)
	return svc, repo, bus
}

func registerPlayer(t *testing.T, svc *service) *domain.Player {
	t.Helper()
	p, err := svc.GetOrRegister(context.Background(), 1, "tester", "ru")
	require.NoError(t, err)
	return p
}

func TestGetOrRegisterCreatesDefaults(t *testing.T) {
	svc, _, _ := newTestService(t)

	p := registerPlayer(t, svc)

	assert.Equal(t, 1, p.Level)
	assert.Equal(t, MaxXPForLevel(1), p.MaxXP)
	assert.Equal(t, 100, p.Health)
	assert.Equal(t, 100, p.Hunger)
	assert.Equal(t, 100, p.Fatigue)
	assert.Equal(t, 1, p.Luck)
	assert.Equal(t, 2, p.MarketSlots)
	require.NotNil(t, p.Quest)
	assert.NotEmpty(t, p.Quest.NeededItems)

	again, err := svc.GetOrRegister(context.Background(), 1, "tester", "ru")
	require.NoError(t, err)
	assert.Equal(t, p.RegisteredAt.Unix(), again.RegisteredAt.Unix(), "existing player is loaded, not recreated")
}

func TestGetOrRegisterDailyActivityProgress(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return base }
	registerPlayer(t, svc)

	// Same day: no activity progress.
	svc.now = func() time.Time { return base.Add(6 * time.Hour) }
	p, err := svc.GetOrRegister(ctx, 1, "tester", "ru")
	require.NoError(t, err)
	assert.Zero(t, p.Achievements.ProgressOf("новичок"))

	// Back after a full day away: both counters advance once.
	svc.now = func() time.Time { return base.Add(31 * time.Hour) }
	p, err = svc.GetOrRegister(ctx, 1, "tester", "ru")
	require.NoError(t, err)
	assert.Equal(t, 1, p.Achievements.ProgressOf("новичок"))
	assert.Equal(t, 1, p.Achievements.ProgressOf("олд"))

	// The visit itself resets the clock.
	svc.now = func() time.Time { return base.Add(32 * time.Hour) }
	p, err = svc.GetOrRegister(ctx, 1, "tester", "ru")
	require.NoError(t, err)
	assert.Equal(t, 1, p.Achievements.ProgressOf("новичок"))

	// Progress survives a reload.
	got, err := svc.loadForUpdate(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Achievements.ProgressOf("олд"))
}

func TestCreditReferral(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	p := registerPlayer(t, svc)

	got, err := svc.CreditReferral(ctx, p.ID)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, got.Coin, 5000)
	assert.LessOrEqual(t, got.Coin, 15000)
	assert.Equal(t, 1, got.Achievements.ProgressOf("друзья-навеки"))
	assert.True(t, got.Achievements.IsCompleted("друзья-навеки"), "a single referral completes the achievement")

	_, err = svc.CreditReferral(ctx, 404)
	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)
}

func TestMaxXPForLevel(t *testing.T) {
	assert.Equal(t, 155.0, MaxXPForLevel(1))
	assert.Equal(t, 650.0, MaxXPForLevel(10))
}

func TestCheckStatusLevelUpCarryover(t *testing.T) {
	svc, _, bus := newTestService(t)
	p := registerPlayer(t, svc)

	p.MaxXP = 100
	p.XP = 120

	require.NoError(t, svc.CheckStatus(context.Background(), p))

	assert.Equal(t, 2, p.Level)
	assert.Equal(t, 20.0, p.XP, "excess XP carries over")
	assert.Equal(t, MaxXPForLevel(2), p.MaxXP)
	assert.True(t, p.Inventory.Has("бокс"), "level-up grants a box")
	assert.Len(t, bus.ofType(event.LevelUp), 1)
}

func TestCheckStatusLevelUpExactThresholdResetsToZero(t *testing.T) {
	svc, _, _ := newTestService(t)
	p := registerPlayer(t, svc)

	p.MaxXP = 100
	p.XP = 100

	require.NoError(t, svc.CheckStatus(context.Background(), p))

	assert.Equal(t, 2, p.Level)
	assert.Zero(t, p.XP)
}

func TestCheckStatusAwardsAchievementOnce(t *testing.T) {
	svc, _, bus := newTestService(t)
	p := registerPlayer(t, svc)

	p.Achievements.IncrProgress("бродяга", 10)

	require.NoError(t, svc.CheckStatus(context.Background(), p))
	require.True(t, p.Achievements.IsCompleted("бродяга"))
	box, err := p.Inventory.Get("бокс")
	require.NoError(t, err)
	assert.Equal(t, 2, box.Quantity, "reward from the walking achievement")

	// Second pass must not re-award.
	require.NoError(t, svc.CheckStatus(context.Background(), p))
	box, err = p.Inventory.Get("бокс")
	require.NoError(t, err)
	assert.Equal(t, 2, box.Quantity)
	assert.Len(t, bus.ofType(event.AchievementCompleted), 1)
}

func TestCheckStatusCoinAchievementRewardGoesToBalance(t *testing.T) {
	svc, _, _ := newTestService(t)
	p := registerPlayer(t, svc)

	p.Achievements.IncrProgress("работяга", 10)

	require.NoError(t, svc.CheckStatus(context.Background(), p))
	assert.Equal(t, 10000, p.Coin)
	assert.False(t, p.Inventory.Has("бабло"), "currency never lands in the inventory")
}

func TestCheckStatusPurgesUnknownProgressKeys(t *testing.T) {
	svc, _, _ := newTestService(t)
	p := registerPlayer(t, svc)

	p.Achievements.IncrProgress("выпиленное-достижение", 3)

	require.NoError(t, svc.CheckStatus(context.Background(), p))
	assert.NotContains(t, p.Achievements.Progress, "выпиленное-достижение")
}

func TestCheckStatusClampsStats(t *testing.T) {
	svc, _, _ := newTestService(t)
	p := registerPlayer(t, svc)

	p.Health = 250
	p.Mood = -40

	require.NoError(t, svc.CheckStatus(context.Background(), p))
	assert.Equal(t, 100, p.Health)
	assert.Equal(t, 0, p.Mood)
}

func TestCompleteQuestAccounting(t *testing.T) {
	svc, _, bus := newTestService(t)
	p := registerPlayer(t, svc)
	ctx := context.Background()

	p.Quest = &domain.Quest{
		NeededItems: map[string]int{"вода": 4, "гриб": 2},
		XP:          10,
		Reward:      500,
	}
	waterDef, _ := svc.catalog.Item("вода")
	mushroomDef, _ := svc.catalog.Item("гриб")
	p.Inventory.Add(waterDef, 6, 0)
	p.Inventory.Add(mushroomDef, 2, 0)
	require.NoError(t, svc.Save(ctx, p))

	got, err := svc.CompleteQuest(ctx, p.ID)
	require.NoError(t, err)

	water, err := got.Inventory.Get("вода")
	require.NoError(t, err)
	assert.Equal(t, 2, water.Quantity, "exactly the needed quantity is deducted")
	assert.False(t, got.Inventory.Has("гриб"))
	assert.Equal(t, 500, got.Coin)
	assert.Equal(t, 1, got.Achievements.ProgressOf("квестоман"))
	require.NotNil(t, got.Quest)
	assert.NotEqual(t, map[string]int{"вода": 4, "гриб": 2}, got.Quest.NeededItems, "replacement quest generated")
	assert.Len(t, bus.ofType(event.QuestCompleted), 1)
}

func TestCompleteQuestRefusedWhenIncomplete(t *testing.T) {
	svc, _, _ := newTestService(t)
	p := registerPlayer(t, svc)
	ctx := context.Background()

	p.Quest = &domain.Quest{NeededItems: map[string]int{"вода": 4}}
	require.NoError(t, svc.Save(ctx, p))

	_, err := svc.CompleteQuest(ctx, p.ID)
	assert.ErrorIs(t, err, domain.ErrQuestIncomplete)
}

func TestSkipQuest(t *testing.T) {
	svc, _, _ := newTestService(t)
	p := registerPlayer(t, svc)
	ctx := context.Background()

	p.Coin = 3
	require.NoError(t, svc.Save(ctx, p))
	_, err := svc.SkipQuest(ctx, p.ID)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

	p, err = svc.loadForUpdate(ctx, p.ID)
	require.NoError(t, err)
	p.Coin = 50
	oldQuest := p.Quest.NeededItems
	require.NoError(t, svc.Save(ctx, p))

	got, err := svc.SkipQuest(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 45, got.Coin, "fee is 5 per level")
	assert.NotEqual(t, oldQuest, got.Quest.NeededItems)
}

func TestClaimDailyGift(t *testing.T) {
	svc, _, bus := newTestService(t)
	p := registerPlayer(t, svc)
	ctx := context.Background()

	got, err := svc.ClaimDailyGift(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.DailyGift.Streak)
	assert.Empty(t, got.DailyGift.Items, "pending gift is consumed")
	require.NotNil(t, got.DailyGift.LastClaimedAt)
	assert.Len(t, bus.ofType(event.DailyGiftClaimed), 1)

	_, err = svc.ClaimDailyGift(ctx, p.ID)
	assert.ErrorIs(t, err, domain.ErrGiftNotReady)
}

func TestClaimDailyGiftStreak(t *testing.T) {
	svc, _, _ := newTestService(t)
	p := registerPlayer(t, svc)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	svc.now = func() time.Time { return base }
	_, err := svc.ClaimDailyGift(ctx, p.ID)
	require.NoError(t, err)

	// Next day, inside the 48h window: streak continues.
	svc.now = func() time.Time { return base.Add(25 * time.Hour) }
	got, err := svc.ClaimDailyGift(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.DailyGift.Streak)

	// A long gap resets the streak.
	svc.now = func() time.Time { return base.Add(25*time.Hour + 72*time.Hour) }
	got, err = svc.ClaimDailyGift(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.DailyGift.Streak)
}

func TestUseItemFood(t *testing.T) {
	svc, _, _ := newTestService(t)
	p := registerPlayer(t, svc)
	ctx := context.Background()

	p.Hunger = 50
	breadDef, _ := svc.catalog.Item("буханка")
	p.Inventory.Add(breadDef, 2, 0)
	require.NoError(t, svc.Save(ctx, p))

	got, err := svc.UseItem(ctx, p.ID, "буханка")
	require.NoError(t, err)
	assert.Equal(t, 60, got.Hunger)
	bread, err := got.Inventory.Get("буханка")
	require.NoError(t, err)
	assert.Equal(t, 1, bread.Quantity)
}

func TestUseItemVodka(t *testing.T) {
	svc, _, _ := newTestService(t)
	p := registerPlayer(t, svc)
	ctx := context.Background()

	p.Fatigue = 10
	p.Health = 90
	vodkaDef, _ := svc.catalog.Item("водка")
	p.Inventory.Add(vodkaDef, 1, 0)
	require.NoError(t, svc.Save(ctx, p))

	got, err := svc.UseItem(ctx, p.ID, "водка")
	require.NoError(t, err)
	assert.Equal(t, 100, got.Fatigue, "vodka fully restores energy")
	assert.Equal(t, 50, got.Health, "at the cost of health")
	assert.False(t, got.Inventory.Has("водка"))
}

func TestUseItemBikeRequiresWalk(t *testing.T) {
	svc, _, _ := newTestService(t)
	p := registerPlayer(t, svc)
	ctx := context.Background()

	bikeDef, _ := svc.catalog.Item("велик")
	p.Inventory.Add(bikeDef, 1, 0)
	require.NoError(t, svc.Save(ctx, p))

	_, err := svc.UseItem(ctx, p.ID, "велик")
	assert.ErrorIs(t, err, domain.ErrInvalidState)

	p, err = svc.loadForUpdate(ctx, p.ID)
	require.NoError(t, err)
	end := time.Now().Add(time.Hour)
	p.Action = &domain.Action{Type: domain.ActionWalk, Start: time.Now(), End: end}
	require.NoError(t, svc.Save(ctx, p))

	got, err := svc.UseItem(ctx, p.ID, "велик")
	require.NoError(t, err)
	shortened := end.Sub(got.Action.End)
	assert.GreaterOrEqual(t, shortened, 10*time.Minute)
	assert.LessOrEqual(t, shortened, 45*time.Minute)
	assert.False(t, got.Inventory.Has("велик"))
}

func TestUseItemGuards(t *testing.T) {
	svc, _, _ := newTestService(t)
	p := registerPlayer(t, svc)
	ctx := context.Background()

	_, err := svc.UseItem(ctx, p.ID, "бабло")
	assert.ErrorIs(t, err, domain.ErrItemIsCoin)

	_, err = svc.UseItem(ctx, p.ID, "ключ")
	assert.ErrorIs(t, err, domain.ErrInvalidState, "non-consumable item")

	_, err = svc.UseItem(ctx, p.ID, "буханка")
	assert.ErrorIs(t, err, domain.ErrItemNotFound, "not in inventory")
}

func TestChooseUpgrade(t *testing.T) {
	svc, _, _ := newTestService(t)
	p := registerPlayer(t, svc)
	ctx := context.Background()

	got, err := svc.ChooseUpgrade(ctx, p.ID, UpgradeMarketSlot)
	require.NoError(t, err)
	assert.Equal(t, 3, got.MarketSlots)

	// Luck upgrade is gated on level 10.
	_, err = svc.ChooseUpgrade(ctx, p.ID, UpgradeLuck)
	assert.ErrorIs(t, err, domain.ErrInvalidState)

	p, err = svc.loadForUpdate(ctx, p.ID)
	require.NoError(t, err)
	p.Level = 10
	require.NoError(t, svc.Save(ctx, p))

	got, err = svc.ChooseUpgrade(ctx, p.ID, UpgradeLuck)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Luck)
}

func TestUpgradeChoices(t *testing.T) {
	svc, _, _ := newTestService(t)
	p := registerPlayer(t, svc)

	assert.Equal(t, []UpgradeChoice{UpgradeMarketSlot}, svc.UpgradeChoices(p))

	p.Level = 10
	assert.Equal(t, []UpgradeChoice{UpgradeMarketSlot, UpgradeLuck}, svc.UpgradeChoices(p))

	p.MarketSlots = 11
	p.Luck = 16
	assert.Empty(t, svc.UpgradeChoices(p))
}
