// Package event is the in-process publish/subscribe fabric between game
// services and the notifier. Services publish typed game events; subscribers
// render player-facing messages or update metrics.
package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hmelikyan/wanderbot/internal/domain"
)

// EventSchemaVersion is the current event schema version.
const EventSchemaVersion = "1.0"

// Type represents the type of an event.
type Type string

const (
	ActionCompleted      Type = "action.completed"
	EncounterTriggered   Type = "action.encounter"
	LevelUp              Type = "player.level_up"
	AchievementCompleted Type = "player.achievement_completed"
	QuestCompleted       Type = "quest.completed"
	DailyGiftClaimed     Type = "gift.claimed"
	PlayerStatLow        Type = "player.stat_low"
)

// Event represents a generic event in the system.
type Event struct {
	Version string `json:"version"`
	Type    Type   `json:"type"`
	Payload any    `json:"payload"`
}

// ItemGrant is one item credited to a player, used in event payloads.
type ItemGrant struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// ActionCompletedPayloadV1 is the typed payload for resolved actions.
type ActionCompletedPayloadV1 struct {
	PlayerID int64             `json:"player_id"`
	Action   domain.ActionType `json:"action"`
	XP       float64           `json:"xp"`
	Coin     int               `json:"coin"`
	Loot     []ItemGrant       `json:"loot,omitempty"`
}

// EncounterPayloadV1 is the typed payload for mid-walk encounters.
type EncounterPayloadV1 struct {
	PlayerID int64  `json:"player_id"`
	MobName  string `json:"mob_name"`
}

// LevelUpPayloadV1 is the typed payload for level-up events.
type LevelUpPayloadV1 struct {
	PlayerID int64 `json:"player_id"`
	NewLevel int   `json:"new_level"`
}

// AchievementCompletedPayloadV1 is the typed payload for awarded achievements.
type AchievementCompletedPayloadV1 struct {
	PlayerID    int64       `json:"player_id"`
	Achievement string      `json:"achievement"`
	Reward      []ItemGrant `json:"reward,omitempty"`
}

// QuestCompletedPayloadV1 is the typed payload for handed-in quests.
type QuestCompletedPayloadV1 struct {
	PlayerID int64   `json:"player_id"`
	XP       float64 `json:"xp"`
	Reward   int     `json:"reward"`
}

// DailyGiftClaimedPayloadV1 is the typed payload for daily gift claims.
type DailyGiftClaimedPayloadV1 struct {
	PlayerID int64       `json:"player_id"`
	Streak   int         `json:"streak"`
	Items    []ItemGrant `json:"items"`
}

// StatLowPayloadV1 is the typed payload for low-stat reminders from the
// notification sweep.
type StatLowPayloadV1 struct {
	PlayerID int64  `json:"player_id"`
	Stat     string `json:"stat"`
	Value    int    `json:"value"`
}

// NewActionCompletedEvent creates an action resolution event.
func NewActionCompletedEvent(playerID int64, action domain.ActionType, xp float64, coin int, loot []ItemGrant) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ActionCompleted,
		Payload: ActionCompletedPayloadV1{
			PlayerID: playerID,
			Action:   action,
			XP:       xp,
			Coin:     coin,
			Loot:     loot,
		},
	}
}

// NewEncounterEvent creates a mob encounter event.
func NewEncounterEvent(playerID int64, mobName string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    EncounterTriggered,
		Payload: EncounterPayloadV1{
			PlayerID: playerID,
			MobName:  mobName,
		},
	}
}

// NewLevelUpEvent creates a level-up event.
func NewLevelUpEvent(playerID int64, newLevel int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    LevelUp,
		Payload: LevelUpPayloadV1{
			PlayerID: playerID,
			NewLevel: newLevel,
		},
	}
}

// NewAchievementCompletedEvent creates an achievement award event.
func NewAchievementCompletedEvent(playerID int64, achievement string, reward []ItemGrant) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    AchievementCompleted,
		Payload: AchievementCompletedPayloadV1{
			PlayerID:    playerID,
			Achievement: achievement,
			Reward:      reward,
		},
	}
}

// NewQuestCompletedEvent creates a quest hand-in event.
func NewQuestCompletedEvent(playerID int64, xp float64, reward int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    QuestCompleted,
		Payload: QuestCompletedPayloadV1{
			PlayerID: playerID,
			XP:       xp,
			Reward:   reward,
		},
	}
}

// NewDailyGiftClaimedEvent creates a daily gift claim event.
func NewDailyGiftClaimedEvent(playerID int64, streak int, items []ItemGrant) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    DailyGiftClaimed,
		Payload: DailyGiftClaimedPayloadV1{
			PlayerID: playerID,
			Streak:   streak,
			Items:    items,
		},
	}
}

// NewStatLowEvent creates a low-stat reminder event.
func NewStatLowEvent(playerID int64, stat string, value int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    PlayerStatLow,
		Payload: StatLowPayloadV1{
			PlayerID: playerID,
			Stat:     stat,
			Value:    value,
		},
	}
}

// Handler is a function that handles an event.
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus.
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the event bus. Handlers run
// synchronously in subscription order.
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus.
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers. Every handler runs even if
// an earlier one fails; errors are collected and returned together.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("encountered %d errors while handling event %s: %v", len(errs), event.Type, errs)
	}
	return nil
}

// Subscribe subscribes a handler to an event type.
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// CalculateRetryDelay implements exponential backoff: base, 2x, 4x, 8x.
func CalculateRetryDelay(baseDelay time.Duration, attempt int) time.Duration {
	return baseDelay * time.Duration(1<<(attempt-1))
}
