// Package player owns the player aggregate: registration, status
// reconciliation (achievements, level-ups, stat clamping), quests, daily
// gifts, item use and level-up upgrades. Callers are expected to hold the
// per-player advisory lock around mutating operations.
package player

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/hmelikyan/wanderbot/internal/catalog"
	"github.com/hmelikyan/wanderbot/internal/domain"
	"github.com/hmelikyan/wanderbot/internal/event"
	"github.com/hmelikyan/wanderbot/internal/i18n"
	"github.com/hmelikyan/wanderbot/internal/logger"
	"github.com/hmelikyan/wanderbot/internal/repository"
	"github.com/hmelikyan/wanderbot/internal/utils"
)

const (
	initialStat        = 100
	initialLuck        = 1
	initialMarketSlots = 2

	maxMarketSlots      = 10
	luckUpgradeMinLevel = 10
	maxUpgradableLuck   = 15

	questSkipFeePerLevel = 5

	cacheSize = 1024
	cacheTTL  = 5 * time.Minute
)

// UpgradeChoice is a level-up reward option.
type UpgradeChoice string

const (
	UpgradeMarketSlot UpgradeChoice = "market"
	UpgradeLuck       UpgradeChoice = "luck"
)

// Service manages the player aggregate.
type Service interface {
	GetOrRegister(ctx context.Context, id int64, name, lang string) (*domain.Player, error)
	CreditReferral(ctx context.Context, referrerID int64) (*domain.Player, error)
	Get(ctx context.Context, id int64) (*domain.Player, error)
	Save(ctx context.Context, p *domain.Player) error
	CheckStatus(ctx context.Context, p *domain.Player) error

	NewQuest(p *domain.Player)
	CompleteQuest(ctx context.Context, id int64) (*domain.Player, error)
	SkipQuest(ctx context.Context, id int64) (*domain.Player, error)

	ClaimDailyGift(ctx context.Context, id int64) (*domain.Player, error)
	UseItem(ctx context.Context, id int64, itemName string) (*domain.Player, error)

	UpgradeChoices(p *domain.Player) []UpgradeChoice
	ChooseUpgrade(ctx context.Context, id int64, choice UpgradeChoice) (*domain.Player, error)

	Lang(ctx context.Context, id int64) string
}

type service struct {
	repo      repository.Player
	catalog   *catalog.Catalog
	publisher event.Bus
	rng       *utils.Rand
	now       func() time.Time

	// Read-mostly cache for non-mutating lookups (profile rendering,
	// language resolution). Purged on every save.
	cache *expirable.LRU[int64, *domain.Player]
}

// NewService creates the player service.
func NewService(repo repository.Player, cat *catalog.Catalog, publisher event.Bus, rng *utils.Rand) Service {
	return &service{
		repo:      repo,
		catalog:   cat,
		publisher: publisher,
		rng:       rng,
		now:       time.Now,
		cache:     expirable.NewLRU[int64, *domain.Player](cacheSize, nil, cacheTTL),
	}
}

// MaxXPForLevel returns the XP required to finish the given level.
func MaxXPForLevel(level int) float64 {
	return float64(55*level + 100)
}

// GetOrRegister loads the player, creating a fresh aggregate on first
// contact. Returning players coming back after a day away progress the
// daily-activity achievements.
func (s *service) GetOrRegister(ctx context.Context, id int64, name, lang string) (*domain.Player, error) {
	p, err := s.repo.Get(ctx, id)
	if err == nil {
		now := s.now()
		if now.Sub(p.LastActiveAt) >= 24*time.Hour {
			p.Achievements.IncrProgress("новичок", 1)
			p.Achievements.IncrProgress("олд", 1)
			if err := s.CheckStatus(ctx, p); err != nil {
				return nil, err
			}
		}
		p.LastActiveAt = now
		if err := s.Save(ctx, p); err != nil {
			return nil, err
		}
		return p, nil
	}

	now := s.now()
	p = &domain.Player{
		ID:            id,
		Name:          name,
		Lang:          lang,
		RegisteredAt:  now,
		LastCheckedAt: now,
		LastActiveAt:  now,
		Level:         1,
		MaxXP:         MaxXPForLevel(1),
		Health:        initialStat,
		Mood:          initialStat,
		Hunger:        initialStat,
		Fatigue:       initialStat,
		Luck:          initialLuck,
		MarketSlots:   initialMarketSlots,
	}
	s.NewQuest(p)
	s.newDailyGift(p)

	if err := s.Save(ctx, p); err != nil {
		return nil, fmt.Errorf("register player %d: %w", id, err)
	}
	logger.FromContext(ctx).Info("player registered", "player_id", id, "name", name)
	return p, nil
}

// CreditReferral rewards the referrer when a newcomer registers through
// their invite link.
func (s *service) CreditReferral(ctx context.Context, referrerID int64) (*domain.Player, error) {
	p, err := s.loadForUpdate(ctx, referrerID)
	if err != nil {
		return nil, err
	}

	bonus := s.rng.IntBetween(5000, 15000)
	p.Coin += bonus
	p.Achievements.IncrProgress("друзья-навеки", 1)

	if err := s.CheckStatus(ctx, p); err != nil {
		return nil, err
	}
	if err := s.Save(ctx, p); err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Info("referral credited", "player_id", referrerID, "bonus", bonus)
	return p, nil
}

// Get returns the player, serving repeat lookups from the cache.
func (s *service) Get(ctx context.Context, id int64) (*domain.Player, error) {
	if p, ok := s.cache.Get(id); ok {
		return p, nil
	}
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cache.Add(id, p)
	return p, nil
}

// Save clamps stats and persists the aggregate.
func (s *service) Save(ctx context.Context, p *domain.Player) error {
	p.ClampStats()
	if err := s.repo.Upsert(ctx, p); err != nil {
		return err
	}
	s.cache.Remove(p.ID)
	return nil
}

// Lang resolves the player's language, falling back to the default.
func (s *service) Lang(ctx context.Context, id int64) string {
	p, err := s.Get(ctx, id)
	if err != nil || p.Lang == "" {
		return i18n.DefaultLang
	}
	return p.Lang
}

// loadForUpdate bypasses the cache so mutations always start from the
// persisted revision.
func (s *service) loadForUpdate(ctx context.Context, id int64) (*domain.Player, error) {
	return s.repo.Get(ctx, id)
}
