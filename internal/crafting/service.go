// Package crafting turns raw inventory items into crafted ones following the
// catalog recipes. Crafts are all-or-nothing: a refusal leaves the inventory
// untouched.
package crafting

import (
	"context"
	"fmt"

	"github.com/hmelikyan/wanderbot/internal/catalog"
	"github.com/hmelikyan/wanderbot/internal/domain"
	"github.com/hmelikyan/wanderbot/internal/logger"
	"github.com/hmelikyan/wanderbot/internal/metrics"
	"github.com/hmelikyan/wanderbot/internal/player"
	"github.com/hmelikyan/wanderbot/internal/repository"
	"github.com/hmelikyan/wanderbot/internal/utils"
)

const (
	xpPerCraftMin = 1
	xpPerCraftMax = 3

	luckBonusMin = 5
	luckBonusMax = 10
)

// Result reports what a craft produced.
type Result struct {
	ItemName string  `json:"item_name"`
	Quantity int     `json:"quantity"`
	XP       float64 `json:"xp"`
	Lucky    bool    `json:"lucky"`
}

// Service crafts items from catalog recipes.
type Service interface {
	Craft(ctx context.Context, playerID int64, itemName string, count int) (*domain.Player, *Result, error)
}

type service struct {
	repo    repository.Player
	players player.Service
	catalog *catalog.Catalog
	rng     *utils.Rand
}

// NewService creates the crafting service.
func NewService(repo repository.Player, players player.Service, cat *catalog.Catalog, rng *utils.Rand) Service {
	return &service{
		repo:    repo,
		players: players,
		catalog: cat,
		rng:     rng,
	}
}

// Craft consumes the recipe ingredients count times and credits count crafted
// units. Every ingredient is checked before anything is consumed.
func (s *service) Craft(ctx context.Context, playerID int64, itemName string, count int) (*domain.Player, *Result, error) {
	if count <= 0 {
		return nil, nil, fmt.Errorf("%w: craft count must be positive", domain.ErrInvalidState)
	}

	def, err := s.catalog.Item(itemName)
	if err != nil {
		return nil, nil, err
	}
	if len(def.Craft) == 0 {
		return nil, nil, fmt.Errorf("%w: %s", domain.ErrItemNotCraftable, def.Name)
	}

	p, err := s.repo.Get(ctx, playerID)
	if err != nil {
		return nil, nil, err
	}

	for _, ing := range def.Craft {
		need := ing.Quantity * count
		stack, err := p.Inventory.Get(ing.Name)
		if err != nil || stack.Quantity < need {
			have := 0
			if err == nil {
				have = stack.Quantity
			}
			return nil, nil, fmt.Errorf("%w: %s need %d, have %d",
				domain.ErrInsufficientQuantity, ing.Name, need, have)
		}
	}

	for _, ing := range def.Craft {
		ingDef, err := s.catalog.Item(ing.Name)
		if err != nil {
			return nil, nil, err
		}
		if _, err := p.Inventory.Remove(ingDef, ing.Quantity*count, ""); err != nil {
			return nil, nil, err
		}
	}
	p.Inventory.Add(def, count, 100)

	xp := float64(s.rng.IntBetween(xpPerCraftMin, xpPerCraftMax) * count)
	lucky := s.rng.FloatBetween(0, 100) < float64(p.Luck)
	if lucky {
		xp += s.rng.FloatBetween(luckBonusMin, luckBonusMax)
	}
	p.XP += xp

	if err := s.players.CheckStatus(ctx, p); err != nil {
		return nil, nil, err
	}
	if err := s.players.Save(ctx, p); err != nil {
		return nil, nil, err
	}
	metrics.ItemsCrafted.WithLabelValues(def.Name).Add(float64(count))
	logger.FromContext(ctx).Info("item crafted",
		"player_id", playerID, "item", def.Name, "count", count, "xp", xp, "lucky", lucky)

	return p, &Result{ItemName: def.Name, Quantity: count, XP: xp, Lucky: lucky}, nil
}
