package player

import (
	"context"

	"github.com/hmelikyan/wanderbot/internal/domain"
	"github.com/hmelikyan/wanderbot/internal/event"
	"github.com/hmelikyan/wanderbot/internal/logger"
)

// CheckStatus reconciles derived state after any mutation: awards
// achievements whose thresholds are met, applies level-ups with XP
// carry-over, and clamps stats. It is idempotent and safe to run on every
// interaction.
func (s *service) CheckStatus(ctx context.Context, p *domain.Player) error {
	s.checkAchievements(ctx, p)
	s.checkLevelUp(ctx, p)
	p.ClampStats()
	p.LastCheckedAt = s.now()
	return nil
}

func (s *service) checkAchievements(ctx context.Context, p *domain.Player) {
	log := logger.FromContext(ctx)

	for key, progress := range p.Achievements.Progress {
		def, err := s.catalog.Achievement(key)
		if err != nil {
			// Stale keys from removed achievements self-heal here.
			log.Warn("unknown achievement progress key purged", "player_id", p.ID, "key", key)
			delete(p.Achievements.Progress, key)
			continue
		}
		if progress < def.Need || p.Achievements.IsCompleted(def.Key()) {
			continue
		}

		p.Achievements.Complete(def.Key(), s.now())
		grants := make([]event.ItemGrant, 0, len(def.Reward))
		for _, reward := range def.Reward {
			s.grantItem(p, reward.Name, reward.Quantity)
			grants = append(grants, event.ItemGrant{Name: reward.Name, Quantity: reward.Quantity})
		}

		log.Info("achievement completed", "player_id", p.ID, "achievement", def.Name)
		if err := s.publisher.Publish(ctx, event.NewAchievementCompletedEvent(p.ID, def.Name, grants)); err != nil {
			log.Warn("achievement event publish failed", "error", err)
		}
	}
}

func (s *service) checkLevelUp(ctx context.Context, p *domain.Player) {
	log := logger.FromContext(ctx)

	for p.XP >= p.MaxXP {
		if p.XP > p.MaxXP {
			p.XP -= p.MaxXP
		} else {
			p.XP = 0
		}
		p.Level++
		p.MaxXP = MaxXPForLevel(p.Level)
		s.grantItem(p, "бокс", 1)

		log.Info("level up", "player_id", p.ID, "level", p.Level)
		if err := s.publisher.Publish(ctx, event.NewLevelUpEvent(p.ID, p.Level)); err != nil {
			log.Warn("level-up event publish failed", "error", err)
		}
	}
}

// grantItem credits an item by name, routing the currency item to the coin
// balance.
func (s *service) grantItem(p *domain.Player, name string, quantity int) {
	def, err := s.catalog.Item(name)
	if err != nil {
		return
	}
	if def.IsCoin() {
		p.Coin += quantity
		return
	}
	p.Inventory.Add(def, quantity, 100)
}

// UpgradeChoices lists the level-up upgrade options currently available.
func (s *service) UpgradeChoices(p *domain.Player) []UpgradeChoice {
	var choices []UpgradeChoice
	if p.MarketSlots <= maxMarketSlots {
		choices = append(choices, UpgradeMarketSlot)
	}
	if p.Level >= luckUpgradeMinLevel && p.Luck <= maxUpgradableLuck {
		choices = append(choices, UpgradeLuck)
	}
	return choices
}

// ChooseUpgrade applies a level-up upgrade choice.
func (s *service) ChooseUpgrade(ctx context.Context, id int64, choice UpgradeChoice) (*domain.Player, error) {
	p, err := s.loadForUpdate(ctx, id)
	if err != nil {
		return nil, err
	}

	switch choice {
	case UpgradeMarketSlot:
		if p.MarketSlots > maxMarketSlots {
			return nil, domain.ErrInvalidState
		}
		p.MarketSlots++
	case UpgradeLuck:
		if p.Level < luckUpgradeMinLevel || p.Luck > maxUpgradableLuck {
			return nil, domain.ErrInvalidState
		}
		p.Luck++
	default:
		return nil, domain.ErrInvalidState
	}

	if err := s.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}
