package crafting

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

func newTestService(t *testing.T) (Service, player.Service, *catalog.Catalog) {
	t.Helper()
	repo := repository.NewMemory()
	cat := catalog.New()
	rng := utils.NewRand(1)
	players := player.NewService(repo, cat, event.NewMemoryBus(), rng)
	return NewService(repo, players, cat, rng), players, cat
}

func register(t *testing.T, players player.Service) *domain.Player {
	t.Helper()
	p, err := players.GetOrRegister(context.Background(), 1, "tester", "ru")
	require.NoError(t, err)
	return p
}

func stock(t *testing.T, cat *catalog.Catalog, p *domain.Player, name string, quantity int) {
	t.Helper()
	def, err := cat.Item(name)
	require.NoError(t, err)
	p.Inventory.Add(def, quantity, 100)
}

func TestCraftBread(t *testing.T) {
	svc, players, cat := newTestService(t)
	p := register(t, players)
	ctx := context.Background()

	// буханка = мука×3 + вода×5
	stock(t, cat, p, "мука", 7)
	stock(t, cat, p, "вода", 11)
	require.NoError(t, players.Save(ctx, p))

	got, res, err := svc.Craft(ctx, 1, "буханка", 2)
	require.NoError(t, err)
	assert.Equal(t, "буханка", res.ItemName)
	assert.Equal(t, 2, res.Quantity)
	assert.GreaterOrEqual(t, res.XP, 2.0)

	bread, err := got.Inventory.Get("буханка")
	require.NoError(t, err)
	assert.Equal(t, 2, bread.Quantity)

	flour, err := got.Inventory.Get("мука")
	require.NoError(t, err)
	assert.Equal(t, 1, flour.Quantity)
	water, err := got.Inventory.Get("вода")
	require.NoError(t, err)
	assert.Equal(t, 1, water.Quantity)

	stored, err := players.Get(ctx, 1)
	require.NoError(t, err)
	assert.True(t, stored.Inventory.Has("буханка"))
}

func TestCraftAllOrNothing(t *testing.T) {
	svc, players, cat := newTestService(t)
	p := register(t, players)
	ctx := context.Background()

	// Enough flour for two loaves but water for only one: the whole craft
	// is refused and nothing is consumed.
	stock(t, cat, p, "мука", 6)
	stock(t, cat, p, "вода", 5)
	require.NoError(t, players.Save(ctx, p))

	_, _, err := svc.Craft(ctx, 1, "буханка", 2)
	assert.ErrorIs(t, err, domain.ErrInsufficientQuantity)

	got, err := players.Get(ctx, 1)
	require.NoError(t, err)
	flour, err := got.Inventory.Get("мука")
	require.NoError(t, err)
	assert.Equal(t, 6, flour.Quantity)
	water, err := got.Inventory.Get("вода")
	require.NoError(t, err)
	assert.Equal(t, 5, water.Quantity)
	assert.False(t, got.Inventory.Has("буханка"))
}

func TestCraftGuards(t *testing.T) {
	svc, players, cat := newTestService(t)
	p := register(t, players)
	ctx := context.Background()

	_, _, err := svc.Craft(ctx, 1, "вода", 1)
	assert.ErrorIs(t, err, domain.ErrItemNotCraftable)

	_, _, err = svc.Craft(ctx, 1, "буханка", 0)
	assert.ErrorIs(t, err, domain.ErrInvalidState)

	_, _, err = svc.Craft(ctx, 1, "чебурек", 1)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)

	stock(t, cat, p, "мука", 3)
	require.NoError(t, players.Save(ctx, p))
	_, _, err = svc.Craft(ctx, 1, "буханка", 1)
	assert.ErrorIs(t, err, domain.ErrInsufficientQuantity, "missing water entirely")
}

func TestCraftGrantsXP(t *testing.T) {
	svc, players, cat := newTestService(t)
	p := register(t, players)
	ctx := context.Background()

	stock(t, cat, p, "мука", 3)
	stock(t, cat, p, "вода", 5)
	require.NoError(t, players.Save(ctx, p))

	got, res, err := svc.Craft(ctx, 1, "буханка", 1)
	require.NoError(t, err)
	assert.Positive(t, res.XP)
	assert.Equal(t, res.XP, got.XP)
}
