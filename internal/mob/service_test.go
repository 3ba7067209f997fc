package mob

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hmelikyan/wanderbot/internal/catalog"
	"github.com/hmelikyan/wanderbot/internal/domain"
	"github.com/hmelikyan/wanderbot/internal/event"
	"github.com/hmelikyan/wanderbot/internal/player"
	"github.com/hmelikyan/wanderbot/internal/repository"
	"github.com/hmelikyan/wanderbot/internal/utils"
)

func newTestService(t *testing.T) (Service, player.Service, *repository.Memory) {
	t.Helper()
	repo := repository.NewMemory()
	cat := catalog.New()
	rng := utils.NewRand(1)
	players := player.NewService(repo, cat, event.NewMemoryBus(), rng)
	return NewService(repo, players, cat, rng), players, repo
}

func register(t *testing.T, players player.Service) *domain.Player {
	t.Helper()
	p, err := players.GetOrRegister(context.Background(), 1, "tester", "ru")
	require.NoError(t, err)
	return p
}

func TestGet(t *testing.T) {
	m, err := Get("торговец")
	require.NoError(t, err)
	assert.Equal(t, 40.0, m.Chance)

	m, err = Get("sunduk")
	require.NoError(t, err)
	assert.Equal(t, ChestName, m.Name)

	_, err = Get("дракон")
	assert.ErrorIs(t, err, domain.ErrMobNotFound)
}

func TestRollBounds(t *testing.T) {
	rng := utils.NewRand(7)

	hits := 0
	for i := 0; i < 1000; i++ {
		if m := Roll(rng); m != nil {
			hits++
		}
	}
	// Expected hit rate is (40 + 12.7) / 2 ≈ 26%; allow a wide margin.
	assert.Greater(t, hits, 150)
	assert.Less(t, hits, 400)
}

func TestMakeTradeOffer(t *testing.T) {
	svc, _, _ := newTestService(t)
	cat := catalog.New()

	for i := 0; i < 50; i++ {
		offer := svc.MakeTradeOffer()
		item, err := cat.Item(offer.ItemName)
		require.NoError(t, err)
		assert.Equal(t, domain.RarityCommon, item.Rarity)
		assert.Positive(t, item.Price)
		assert.GreaterOrEqual(t, offer.Quantity, 10)
		assert.LessOrEqual(t, offer.Quantity, 20)
		assert.Equal(t, item.Price*offer.Quantity, offer.Price)
	}
}

func TestAcceptTrade(t *testing.T) {
	svc, players, repo := newTestService(t)
	p := register(t, players)
	ctx := context.Background()

	p.Coin = 10000
	p.MetMob = true
	require.NoError(t, players.Save(ctx, p))

	offer := TradeOffer{ItemName: "вода", Quantity: 10, Price: 800}
	got, err := svc.AcceptTrade(ctx, p.ID, offer)
	require.NoError(t, err)

	assert.Equal(t, 9200, got.Coin)
	water, err := got.Inventory.Get("вода")
	require.NoError(t, err)
	assert.Equal(t, 10, water.Quantity)
	assert.False(t, got.MetMob)

	stored, err := repo.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 9200, stored.Coin)
}

func TestAcceptTradeGuards(t *testing.T) {
	svc, players, _ := newTestService(t)
	p := register(t, players)
	ctx := context.Background()

	_, err := svc.AcceptTrade(ctx, p.ID, TradeOffer{ItemName: "вода", Quantity: 10, Price: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidState, "tampered price")

	_, err = svc.AcceptTrade(ctx, p.ID, TradeOffer{ItemName: "вода", Quantity: 10, Price: 800})
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
}

func TestOpenChest(t *testing.T) {
	svc, players, _ := newTestService(t)
	p := register(t, players)
	ctx := context.Background()

	_, _, err := svc.OpenChest(ctx, p.ID)
	assert.ErrorIs(t, err, domain.ErrItemNotFound, "chest needs a key")

	keyDef, _ := catalog.New().Item("ключ")
	p.Inventory.Add(keyDef, 1, 0)
	require.NoError(t, players.Save(ctx, p))

	got, _, err := svc.OpenChest(ctx, p.ID)
	require.NoError(t, err)
	assert.False(t, got.Inventory.Has("ключ"), "key is consumed")
	assert.Equal(t, 1, got.Achievements.ProgressOf("кладоискатель"))
}
