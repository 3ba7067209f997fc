package player

import (
	"context"
	"time"

	"github.com/hmelikyan/wanderbot/internal/domain"
	"github.com/hmelikyan/wanderbot/internal/event"
	"github.com/hmelikyan/wanderbot/internal/logger"
)

// streakWindow is how long after a claim the next one still continues the
// streak.
const streakWindow = 48 * time.Hour

// newDailyGift rolls 1..3 common items with rarity-weighted quantities into
// the pending gift.
func (s *service) newDailyGift(p *domain.Player) {
	var commons []*domain.ItemDef
	for _, it := range s.catalog.Items() {
		if it.Rarity == domain.RarityCommon && !it.IsCoin() {
			commons = append(commons, it)
		}
	}

	items := make(map[string]int)
	for i := 0; i < s.rng.IntBetween(1, 3); i++ {
		item := commons[s.rng.Intn(len(commons))]
		quantity := s.catalog.DropCount(s.rng, item.Rarity)
		if quantity == 0 {
			continue
		}
		items[item.Name] += quantity
	}

	p.DailyGift.Items = items
}

// ClaimDailyGift grants the pending gift, advances the streak and prepares
// the next gift.
func (s *service) ClaimDailyGift(ctx context.Context, id int64) (*domain.Player, error) {
	p, err := s.loadForUpdate(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if !p.DailyGift.Claimable(now) {
		return nil, domain.ErrGiftNotReady
	}
	if len(p.DailyGift.Items) == 0 {
		s.newDailyGift(p)
	}

	grants := make([]event.ItemGrant, 0, len(p.DailyGift.Items))
	for name, quantity := range p.DailyGift.Items {
		s.grantItem(p, name, quantity)
		grants = append(grants, event.ItemGrant{Name: name, Quantity: quantity})
	}

	if p.DailyGift.LastClaimedAt != nil && now.Sub(*p.DailyGift.LastClaimedAt) <= streakWindow {
		p.DailyGift.Streak++
	} else {
		p.DailyGift.Streak = 1
	}
	claimedAt := now
	p.DailyGift.LastClaimedAt = &claimedAt
	p.DailyGift.Items = nil
	p.Notification.DailyGift = false

	if err := s.CheckStatus(ctx, p); err != nil {
		return nil, err
	}
	if err := s.Save(ctx, p); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("daily gift claimed", "player_id", p.ID, "streak", p.DailyGift.Streak)
	if err := s.publisher.Publish(ctx, event.NewDailyGiftClaimedEvent(p.ID, p.DailyGift.Streak, grants)); err != nil {
		logger.FromContext(ctx).Warn("gift event publish failed", "error", err)
	}
	return p, nil
}
