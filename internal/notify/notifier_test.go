package notify

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hmelikyan/wanderbot/internal/domain"
	"github.com/hmelikyan/wanderbot/internal/event"
	"github.com/hmelikyan/wanderbot/internal/i18n"
)

func newTestNotifier(lang string) (*Notifier, *MemoryMessenger, event.Bus) {
	m := NewMemoryMessenger()
	bus := event.NewMemoryBus()
	n := NewNotifier(m, i18n.NewTranslator(), func(context.Context, int64) string { return lang })
	n.Register(bus)
	return n, m, bus
}

func TestNotifierActionCompleted(t *testing.T) {
	_, m, bus := newTestNotifier("ru")

	loot := []event.ItemGrant{{Name: "гриб", Quantity: 2}, {Name: "вода", Quantity: 3}}
	err := bus.Publish(context.Background(), event.NewActionCompletedEvent(7, domain.ActionWalk, 4, 0, loot))
	require.NoError(t, err)

	sent := m.Sent(7)
	require.Len(t, sent, 1)
	assert.Contains(t, sent[0], "Прогулка окончена")
	assert.Contains(t, sent[0], "гриб x2")
	assert.Contains(t, sent[0], "вода x3")
}

func TestNotifierWorkUsesCoinTemplate(t *testing.T) {
	_, m, bus := newTestNotifier("en")

	err := bus.Publish(context.Background(), event.NewActionCompletedEvent(7, domain.ActionWork, 10, 350, nil))
	require.NoError(t, err)

	sent := m.Sent(7)
	require.Len(t, sent, 1)
	assert.Contains(t, sent[0], "350 coins")
}

func TestNotifierLevelUpAndStatLow(t *testing.T) {
	_, m, bus := newTestNotifier("ru")
	ctx := context.Background()

	require.NoError(t, bus.Publish(ctx, event.NewLevelUpEvent(1, 5)))
	require.NoError(t, bus.Publish(ctx, event.NewStatLowEvent(1, "hunger", 15)))

	sent := m.Sent(1)
	require.Len(t, sent, 2)
	assert.Contains(t, sent[0], "5 уровень")
	assert.Contains(t, sent[1], "проголодался")
}

func TestNotifierDuplicateMessageIsNotAnError(t *testing.T) {
	_, m, bus := newTestNotifier("ru")
	ctx := context.Background()

	require.NoError(t, bus.Publish(ctx, event.NewLevelUpEvent(1, 5)))
	require.NoError(t, bus.Publish(ctx, event.NewLevelUpEvent(1, 5)), "not-modified must be swallowed")
	assert.Len(t, m.Sent(1), 1)
}

func TestNotifierRejectsForeignPayload(t *testing.T) {
	n, _, _ := newTestNotifier("ru")

	err := n.onLevelUp(context.Background(), event.Event{Type: event.LevelUp, Payload: "bogus"})
	assert.Error(t, err)
}
