package mob

import (
	"context"
	"fmt"

	"github.com/hmelikyan/wanderbot/internal/catalog"
	"github.com/hmelikyan/wanderbot/internal/domain"
	"github.com/hmelikyan/wanderbot/internal/event"
	"github.com/hmelikyan/wanderbot/internal/logger"
	"github.com/hmelikyan/wanderbot/internal/player"
	"github.com/hmelikyan/wanderbot/internal/repository"
	"github.com/hmelikyan/wanderbot/internal/utils"
)

// TradeOffer is a trader's proposal: quantity units of an item for price
// coins.
type TradeOffer struct {
	ItemName string `json:"item_name"`
	Quantity int    `json:"quantity"`
	Price    int    `json:"price"`
}

// Service resolves encounter interactions.
type Service interface {
	MakeTradeOffer() TradeOffer
	AcceptTrade(ctx context.Context, playerID int64, offer TradeOffer) (*domain.Player, error)
	OpenChest(ctx context.Context, playerID int64) (*domain.Player, []event.ItemGrant, error)
}

type service struct {
	repo    repository.Player
	players player.Service
	catalog *catalog.Catalog
	rng     *utils.Rand
}

// NewService creates the encounter service.
func NewService(repo repository.Player, players player.Service, cat *catalog.Catalog, rng *utils.Rand) Service {
	return &service{
		repo:    repo,
		players: players,
		catalog: cat,
		rng:     rng,
	}
}

// MakeTradeOffer rolls a random priced common item at 10..20 units.
func (s *service) MakeTradeOffer() TradeOffer {
	var priced []*domain.ItemDef
	for _, it := range s.catalog.Items() {
		if it.Rarity == domain.RarityCommon && it.Price > 0 {
			priced = append(priced, it)
		}
	}

	item := priced[s.rng.Intn(len(priced))]
	quantity := s.rng.IntBetween(10, 20)
	return TradeOffer{
		ItemName: item.Name,
		Quantity: quantity,
		Price:    item.Price * quantity,
	}
}

// AcceptTrade debits the offer price and credits the items. The price is
// recomputed from the catalog so tampered offers are rejected.
func (s *service) AcceptTrade(ctx context.Context, playerID int64, offer TradeOffer) (*domain.Player, error) {
	item, err := s.catalog.Item(offer.ItemName)
	if err != nil {
		return nil, err
	}
	if offer.Quantity <= 0 || offer.Price != item.Price*offer.Quantity {
		return nil, fmt.Errorf("%w: trade offer does not match catalog price", domain.ErrInvalidState)
	}

	p, err := s.repo.Get(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if p.Coin < offer.Price {
		return nil, fmt.Errorf("%w: need %d, have %d", domain.ErrInsufficientFunds, offer.Price, p.Coin)
	}

	p.Coin -= offer.Price
	p.Inventory.Add(item, offer.Quantity, 100)
	p.MetMob = false

	if err := s.players.CheckStatus(ctx, p); err != nil {
		return nil, err
	}
	if err := s.players.Save(ctx, p); err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Info("trade accepted",
		"player_id", playerID, "item", item.Name, "quantity", offer.Quantity, "price", offer.Price)
	return p, nil
}

// OpenChest consumes a key and grants 1..3 random drops, progressing the
// treasure-hunter achievement.
func (s *service) OpenChest(ctx context.Context, playerID int64) (*domain.Player, []event.ItemGrant, error) {
	key, err := s.catalog.Item("ключ")
	if err != nil {
		return nil, nil, err
	}

	p, err := s.repo.Get(ctx, playerID)
	if err != nil {
		return nil, nil, err
	}
	if !p.Inventory.Has(key.Name) {
		return nil, nil, fmt.Errorf("%w: %s", domain.ErrItemNotFound, key.Name)
	}
	if _, err := p.Inventory.Remove(key, 1, ""); err != nil {
		return nil, nil, err
	}

	items := s.catalog.Items()
	var grants []event.ItemGrant
	for i := 0; i < s.rng.IntBetween(1, 3); i++ {
		item := items[s.rng.Intn(len(items))]
		quantity := s.catalog.DropCount(s.rng, item.Rarity)
		if quantity == 0 {
			continue
		}
		if item.IsCoin() {
			p.Coin += quantity
		} else {
			p.Inventory.Add(item, quantity, 100)
		}
		grants = append(grants, event.ItemGrant{Name: item.Name, Quantity: quantity})
	}

	p.Achievements.IncrProgress("кладоискатель", 1)
	p.MetMob = false

	if err := s.players.CheckStatus(ctx, p); err != nil {
		return nil, nil, err
	}
	if err := s.players.Save(ctx, p); err != nil {
		return nil, nil, err
	}
	logger.FromContext(ctx).Info("chest opened", "player_id", playerID, "drops", len(grants))
	return p, grants, nil
}
