package notify

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hmelikyan/wanderbot/internal/event"
	"github.com/hmelikyan/wanderbot/internal/i18n"
	"github.com/hmelikyan/wanderbot/internal/logger"
)

// LangResolver returns the language code for a player.
type LangResolver func(ctx context.Context, playerID int64) string

// Notifier subscribes to game events and sends localized messages.
type Notifier struct {
	messenger Messenger
	tr        *i18n.Translator
	lang      LangResolver
}

// NewNotifier creates a Notifier. A nil resolver uses the default language
// for everyone.
func NewNotifier(messenger Messenger, tr *i18n.Translator, lang LangResolver) *Notifier {
	if lang == nil {
		lang = func(context.Context, int64) string { return i18n.DefaultLang }
	}
	return &Notifier{messenger: messenger, tr: tr, lang: lang}
}

// Register subscribes the notifier to all player-facing event types.
func (n *Notifier) Register(bus event.Bus) {
	bus.Subscribe(event.ActionCompleted, n.onActionCompleted)
	bus.Subscribe(event.EncounterTriggered, n.onEncounter)
	bus.Subscribe(event.LevelUp, n.onLevelUp)
	bus.Subscribe(event.AchievementCompleted, n.onAchievementCompleted)
	bus.Subscribe(event.QuestCompleted, n.onQuestCompleted)
	bus.Subscribe(event.DailyGiftClaimed, n.onDailyGiftClaimed)
	bus.Subscribe(event.PlayerStatLow, n.onStatLow)
}

func (n *Notifier) send(ctx context.Context, playerID int64, text string) error {
	err := n.messenger.Send(ctx, playerID, text)
	if errors.Is(err, ErrMessageNotModified) {
		logger.FromContext(ctx).Debug("message unchanged, skipped", "player_id", playerID)
		return nil
	}
	return err
}

func (n *Notifier) onActionCompleted(ctx context.Context, e event.Event) error {
	p, ok := e.Payload.(event.ActionCompletedPayloadV1)
	if !ok {
		return fmt.Errorf("unexpected payload %T for %s", e.Payload, e.Type)
	}
	lang := n.lang(ctx, p.PlayerID)

	var text string
	switch {
	case p.Coin > 0:
		text = n.tr.T(lang, "action.work.done", p.Coin, p.XP)
	default:
		text = n.tr.T(lang, "action."+string(p.Action)+".done", p.XP)
	}
	if len(p.Loot) > 0 {
		parts := make([]string, 0, len(p.Loot))
		for _, g := range p.Loot {
			parts = append(parts, fmt.Sprintf("%s x%d", g.Name, g.Quantity))
		}
		text += "\n" + strings.Join(parts, ", ")
	}
	return n.send(ctx, p.PlayerID, text)
}

func (n *Notifier) onEncounter(ctx context.Context, e event.Event) error {
	p, ok := e.Payload.(event.EncounterPayloadV1)
	if !ok {
		return fmt.Errorf("unexpected payload %T for %s", e.Payload, e.Type)
	}
	return n.send(ctx, p.PlayerID, n.tr.T(n.lang(ctx, p.PlayerID), "encounter.met", p.MobName))
}

func (n *Notifier) onLevelUp(ctx context.Context, e event.Event) error {
	p, ok := e.Payload.(event.LevelUpPayloadV1)
	if !ok {
		return fmt.Errorf("unexpected payload %T for %s", e.Payload, e.Type)
	}
	return n.send(ctx, p.PlayerID, n.tr.T(n.lang(ctx, p.PlayerID), "level.up", p.NewLevel))
}

func (n *Notifier) onAchievementCompleted(ctx context.Context, e event.Event) error {
	p, ok := e.Payload.(event.AchievementCompletedPayloadV1)
	if !ok {
		return fmt.Errorf("unexpected payload %T for %s", e.Payload, e.Type)
	}
	return n.send(ctx, p.PlayerID, n.tr.T(n.lang(ctx, p.PlayerID), "achievement.completed", p.Achievement))
}

func (n *Notifier) onQuestCompleted(ctx context.Context, e event.Event) error {
	p, ok := e.Payload.(event.QuestCompletedPayloadV1)
	if !ok {
		return fmt.Errorf("unexpected payload %T for %s", e.Payload, e.Type)
	}
	return n.send(ctx, p.PlayerID, n.tr.T(n.lang(ctx, p.PlayerID), "quest.completed", p.Reward, p.XP))
}

func (n *Notifier) onDailyGiftClaimed(ctx context.Context, e event.Event) error {
	p, ok := e.Payload.(event.DailyGiftClaimedPayloadV1)
	if !ok {
		return fmt.Errorf("unexpected payload %T for %s", e.Payload, e.Type)
	}
	return n.send(ctx, p.PlayerID, n.tr.T(n.lang(ctx, p.PlayerID), "gift.claimed", p.Streak))
}

func (n *Notifier) onStatLow(ctx context.Context, e event.Event) error {
	p, ok := e.Payload.(event.StatLowPayloadV1)
	if !ok {
		return fmt.Errorf("unexpected payload %T for %s", e.Payload, e.Type)
	}
	return n.send(ctx, p.PlayerID, n.tr.T(n.lang(ctx, p.PlayerID), "stat.low."+p.Stat, p.Value))
}
