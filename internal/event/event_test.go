package event

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hmelikyan/wanderbot/internal/domain"
)

func TestMemoryBusPublishesToSubscribers(t *testing.T) {
	bus := NewMemoryBus()

	var got []Event
	bus.Subscribe(LevelUp, func(_ context.Context, e Event) error {
		got = append(got, e)
		return nil
	})

	err := bus.Publish(context.Background(), NewLevelUpEvent(42, 3))
	require.NoError(t, err)
	require.Len(t, got, 1)

	payload, ok := got[0].Payload.(LevelUpPayloadV1)
	require.True(t, ok)
	assert.Equal(t, int64(42), payload.PlayerID)
	assert.Equal(t, 3, payload.NewLevel)
}

func TestMemoryBusNoSubscribers(t *testing.T) {
	bus := NewMemoryBus()

	err := bus.Publish(context.Background(), NewQuestCompletedEvent(1, 10, 500))
	assert.NoError(t, err)
}

func TestMemoryBusRunsAllHandlersDespiteErrors(t *testing.T) {
	bus := NewMemoryBus()

	calls := 0
	bus.Subscribe(ActionCompleted, func(context.Context, Event) error {
		calls++
		return errors.New("boom")
	})
	bus.Subscribe(ActionCompleted, func(context.Context, Event) error {
		calls++
		return nil
	})

	err := bus.Publish(context.Background(), NewActionCompletedEvent(1, domain.ActionWalk, 4, 0, nil))
	assert.Error(t, err)
	assert.Equal(t, 2, calls)
}

func TestCalculateRetryDelay(t *testing.T) {
	base := 2 * time.Second

	assert.Equal(t, 2*time.Second, CalculateRetryDelay(base, 1))
	assert.Equal(t, 4*time.Second, CalculateRetryDelay(base, 2))
	assert.Equal(t, 16*time.Second, CalculateRetryDelay(base, 4))
}
