package player

import (
	"context"
	"fmt"
	"time"

	"github.com/hmelikyan/wanderbot/internal/domain"
	"github.com/hmelikyan/wanderbot/internal/logger"
	"github.com/hmelikyan/wanderbot/internal/metrics"
)

// UseItem consumes one unit of a consumable stackable item and applies its
// effect. Usable items (repair tools) are handled by their own flows, not
// here.
func (s *service) UseItem(ctx context.Context, id int64, itemName string) (*domain.Player, error) {
	def, err := s.catalog.Item(itemName)
	if err != nil {
		return nil, err
	}
	if def.IsCoin() {
		return nil, domain.ErrItemIsCoin
	}
	if !def.Consumable || def.Type != domain.TypeStackable {
		return nil, fmt.Errorf("%w: %s is not consumable", domain.ErrInvalidState, def.Name)
	}

	p, err := s.loadForUpdate(ctx, id)
	if err != nil {
		return nil, err
	}
	if !p.Inventory.Has(def.Name) {
		return nil, fmt.Errorf("%w: %s", domain.ErrItemNotFound, def.Name)
	}

	if err := s.applyItemEffect(ctx, p, def); err != nil {
		return nil, err
	}
	if _, err := p.Inventory.Remove(def, 1, ""); err != nil {
		return nil, err
	}

	if err := s.CheckStatus(ctx, p); err != nil {
		return nil, err
	}
	if err := s.Save(ctx, p); err != nil {
		return nil, err
	}
	metrics.ItemsUsed.WithLabelValues(def.Name).Inc()
	logger.FromContext(ctx).Info("item used", "player_id", p.ID, "item", def.Name)
	return p, nil
}

func (s *service) applyItemEffect(ctx context.Context, p *domain.Player, def *domain.ItemDef) error {
	switch def.Name {
	case "трава", "буханка", "сэндвич", "пицца", "тако", "суп":
		p.Hunger += def.Effect
	case "конфета":
		p.Hunger += def.Effect
		p.Fatigue += def.Effect
	case "энергос", "чай":
		p.Fatigue += def.Effect
	case "хелп":
		p.Health += def.Effect
	case "водка":
		p.Fatigue = domain.StatMax
		p.Health -= def.Effect
	case "буст":
		p.XP += float64(s.rng.IntBetween(100, 150))
	case "клевер-удачи":
		p.Luck += def.Effect
	case "бокс":
		s.openBox(ctx, p)
	case "велик":
		return s.shortenWalk(ctx, p)
	default:
		return fmt.Errorf("%w: %s has no use effect", domain.ErrInvalidState, def.Name)
	}
	return nil
}

// openBox credits 1..3 random catalog drops at rarity-weighted quantities.
func (s *service) openBox(ctx context.Context, p *domain.Player) {
	items := s.catalog.Items()
	for i := 0; i < s.rng.IntBetween(1, 3); i++ {
		item := items[s.rng.Intn(len(items))]
		quantity := s.catalog.DropCount(s.rng, item.Rarity)
		if quantity == 0 {
			continue
		}
		s.grantItem(p, item.Name, quantity)
		logger.FromContext(ctx).Debug("box drop", "player_id", p.ID, "item", item.Name, "quantity", quantity)
	}
}

// shortenWalk knocks 10..45 minutes off an in-progress walk.
func (s *service) shortenWalk(ctx context.Context, p *domain.Player) error {
	if !p.IsCurrentAction(domain.ActionWalk) {
		return fmt.Errorf("%w: not walking", domain.ErrInvalidState)
	}
	minutes := s.rng.IntBetween(10, 45)
	p.Action.End = p.Action.End.Add(-time.Duration(minutes) * time.Minute)
	logger.FromContext(ctx).Info("walk shortened", "player_id", p.ID, "minutes", minutes)
	return nil
}
