package player

import (
	"context"
	"fmt"

	"github.com/hmelikyan/wanderbot/internal/domain"
	"github.com/hmelikyan/wanderbot/internal/event"
	"github.com/hmelikyan/wanderbot/internal/logger"
)

// NewQuest replaces the player's quest with a freshly generated one. Item
// quantities, XP and reward all scale with the player's level.
func (s *service) NewQuest(p *domain.Player) {
	pool := s.catalog.QuestItems()

	count := s.rng.IntBetween(1, 5)
	needed := make(map[string]int, count)
	totalPrice := 0
	for i := 0; i < count; i++ {
		item := pool[s.rng.Intn(len(pool))]
		if _, dup := needed[item.Name]; dup {
			continue
		}
		needed[item.Name] = s.rng.IntBetween(2, 10) * p.Level
		if item.QuestCoin != nil {
			totalPrice += s.rng.IntBetween(item.QuestCoin.Min, item.QuestCoin.Max)
		}
	}

	n := float64(len(needed))
	reward := int(float64(totalPrice)*1.5) + s.rng.IntBetween(0, 100)

	p.Quest = &domain.Quest{
		NeededItems: needed,
		XP:          s.rng.FloatBetween(n/2, n) * float64(p.Level),
		Reward:      reward,
		StartTime:   s.now(),
	}
}

// CompleteQuest hands in the quest: items are deducted exactly, coin and XP
// credited, and a replacement quest generated.
func (s *service) CompleteQuest(ctx context.Context, id int64) (*domain.Player, error) {
	p, err := s.loadForUpdate(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Quest == nil {
		return nil, domain.ErrInvalidState
	}
	if !p.Quest.IsDone(&p.Inventory) {
		return nil, domain.ErrQuestIncomplete
	}

	for name, quantity := range p.Quest.NeededItems {
		def, err := s.catalog.Item(name)
		if err != nil {
			return nil, fmt.Errorf("quest item %q: %w", name, err)
		}
		if _, err := p.Inventory.Remove(def, quantity, ""); err != nil {
			return nil, fmt.Errorf("deduct quest item %q: %w", name, err)
		}
	}

	xp, reward := p.Quest.XP, p.Quest.Reward
	p.Coin += reward
	p.XP += xp
	p.Achievements.IncrProgress("квестоман", 1)

	if err := s.CheckStatus(ctx, p); err != nil {
		return nil, err
	}
	s.NewQuest(p)

	if err := s.Save(ctx, p); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("quest completed", "player_id", p.ID, "reward", reward)
	if err := s.publisher.Publish(ctx, event.NewQuestCompletedEvent(p.ID, xp, reward)); err != nil {
		logger.FromContext(ctx).Warn("quest event publish failed", "error", err)
	}
	return p, nil
}

// SkipQuest discards the quest for a level-scaled coin fee and generates a
// replacement.
func (s *service) SkipQuest(ctx context.Context, id int64) (*domain.Player, error) {
	p, err := s.loadForUpdate(ctx, id)
	if err != nil {
		return nil, err
	}

	fee := questSkipFeePerLevel * p.Level
	if p.Coin < fee {
		return nil, fmt.Errorf("%w: skip fee %d, have %d", domain.ErrInsufficientFunds, fee, p.Coin)
	}
	p.Coin -= fee
	s.NewQuest(p)

	if err := s.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}
