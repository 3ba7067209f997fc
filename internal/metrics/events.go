package metrics

import (
	"context"

	"github.com/hmelikyan/wanderbot/internal/event"
)

// EventCollector counts published game events by type. It subscribes
// alongside the notifier so every event is counted even when no player
// message results.
type EventCollector struct{}

// NewEventCollector creates an EventCollector.
func NewEventCollector() *EventCollector {
	return &EventCollector{}
}

// Register subscribes the collector to all game event types.
func (c *EventCollector) Register(bus event.Bus) {
	types := []event.Type{
		event.ActionCompleted,
		event.EncounterTriggered,
		event.LevelUp,
		event.AchievementCompleted,
		event.QuestCompleted,
		event.DailyGiftClaimed,
		event.PlayerStatLow,
	}
	for _, t := range types {
		bus.Subscribe(t, c.handle)
	}
}

func (c *EventCollector) handle(_ context.Context, e event.Event) error {
	EventsPublished.WithLabelValues(string(e.Type)).Inc()

	switch e.Type {
	case event.ActionCompleted:
		if p, ok := e.Payload.(event.ActionCompletedPayloadV1); ok {
			ActionsResolved.WithLabelValues(string(p.Action)).Inc()
		}
	case event.EncounterTriggered:
		if p, ok := e.Payload.(event.EncounterPayloadV1); ok {
			EncountersTriggered.WithLabelValues(p.MobName).Inc()
		}
	case event.QuestCompleted:
		QuestsCompleted.Inc()
	}
	return nil
}
