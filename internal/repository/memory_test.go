package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hmelikyan/wanderbot/internal/domain"
)

func TestMemoryGetMissing(t *testing.T) {
	repo := NewMemory()

	_, err := repo.Get(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)
}

func TestMemoryUpsertAndGetReturnsCopy(t *testing.T) {
	repo := NewMemory()
	ctx := context.Background()

	p := &domain.Player{ID: 1, Name: "tester", Level: 1, Health: 100}
	require.NoError(t, repo.Upsert(ctx, p))
	assert.Equal(t, int64(1), p.Revision)

	got, err := repo.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "tester", got.Name)

	got.Name = "mutated"
	again, err := repo.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "tester", again.Name, "stored copy must not share state with callers")
}

func TestMemoryUpsertStaleRevision(t *testing.T) {
	repo := NewMemory()
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, &domain.Player{ID: 1}))

	first, err := repo.Get(ctx, 1)
	require.NoError(t, err)
	second, err := repo.Get(ctx, 1)
	require.NoError(t, err)

	require.NoError(t, repo.Upsert(ctx, first))
	err = repo.Upsert(ctx, second)
	assert.ErrorIs(t, err, domain.ErrStaleRevision)
}

func TestMemoryUpsertCompactsInventory(t *testing.T) {
	repo := NewMemory()
	ctx := context.Background()

	p := &domain.Player{ID: 1}
	p.Inventory.Items = []*domain.UserItem{
		{ID: "a", Name: "вода", Quantity: 2},
		{ID: "b", Name: "гриб", Quantity: 0},
	}
	require.NoError(t, repo.Upsert(ctx, p))

	got, err := repo.Get(ctx, 1)
	require.NoError(t, err)
	require.Len(t, got.Inventory.Items, 1)
	assert.Equal(t, "вода", got.Inventory.Items[0].Name)
}

func TestMemoryAllIDs(t *testing.T) {
	repo := NewMemory()
	ctx := context.Background()

	for _, id := range []int64{5, 1, 3} {
		require.NoError(t, repo.Upsert(ctx, &domain.Player{ID: id}))
	}

	ids, err := repo.AllIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 3, 5}, ids)
}
