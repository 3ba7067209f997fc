// Package market runs the player-to-player item market. Listings live on
// the seller's aggregate, bounded by the MarketSlots level-up upgrade; the
// service assembles the global storefront from all players.
package market

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/hmelikyan/wanderbot/internal/catalog"
	"github.com/hmelikyan/wanderbot/internal/concurrency"
	"github.com/hmelikyan/wanderbot/internal/domain"
	"github.com/hmelikyan/wanderbot/internal/logger"
	"github.com/hmelikyan/wanderbot/internal/player"
	"github.com/hmelikyan/wanderbot/internal/repository"
)

const (
	priceCacheSize = 256
	priceCacheTTL  = 15 * time.Minute
)

// Listing is one storefront row: a seller's listing with its owner attached.
type Listing struct {
	domain.MarketListing
	SellerID   int64  `json:"seller_id"`
	SellerName string `json:"seller_name"`
}

// Service runs the market. It acquires the per-player advisory locks
// itself (in id order for trades), so callers must not hold them.
type Service interface {
	Listings(ctx context.Context) ([]Listing, error)
	Sell(ctx context.Context, playerID int64, itemName string, quantity, price int) (*domain.Player, error)
	Buy(ctx context.Context, buyerID, sellerID int64, listingID string) (*domain.Player, error)
	Cancel(ctx context.Context, playerID int64, listingID string) (*domain.Player, error)
	MedianPrice(ctx context.Context, itemName string) (int, error)
}

type service struct {
	repo    repository.Player
	players player.Service
	catalog *catalog.Catalog
	locks   *concurrency.LockManager
	now     func() time.Time

	// Median prices are expensive to recompute per render; cached with a
	// TTL and invalidated on every mutation of the item's listings.
	prices *expirable.LRU[string, int]
}

// NewService creates the market service.
func NewService(repo repository.Player, players player.Service, cat *catalog.Catalog, locks *concurrency.LockManager) Service {
	return &service{
		repo:    repo,
		players: players,
		catalog: cat,
		locks:   locks,
		now:     time.Now,
		prices:  expirable.NewLRU[string, int](priceCacheSize, nil, priceCacheTTL),
	}
}

// Listings assembles the global storefront, newest first.
func (s *service) Listings(ctx context.Context) ([]Listing, error) {
	ids, err := s.repo.AllIDs(ctx)
	if err != nil {
		return nil, err
	}

	var out []Listing
	for _, id := range ids {
		p, err := s.repo.Get(ctx, id)
		if err != nil {
			continue
		}
		for _, l := range p.Market {
			out = append(out, Listing{MarketListing: l, SellerID: p.ID, SellerName: p.Name})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].PublishedAt.After(out[j].PublishedAt)
	})
	return out, nil
}

// Sell moves a stack from the player's inventory into a free market slot.
func (s *service) Sell(ctx context.Context, playerID int64, itemName string, quantity, price int) (*domain.Player, error) {
	def, err := s.catalog.Item(itemName)
	if err != nil {
		return nil, err
	}
	if def.IsCoin() {
		return nil, domain.ErrItemIsCoin
	}
	if def.Type != domain.TypeStackable || quantity <= 0 {
		return nil, fmt.Errorf("%w: %s cannot be listed", domain.ErrInvalidState, def.Name)
	}
	if price <= 0 {
		price = 1
	}

	lock := s.locks.GetLock(playerID)
	lock.Lock()
	defer lock.Unlock()

	p, err := s.repo.Get(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if len(p.Market) >= p.MarketSlots {
		return nil, fmt.Errorf("%w: %d of %d slots used", domain.ErrMarketFull, len(p.Market), p.MarketSlots)
	}
	if _, err := p.Inventory.Remove(def, quantity, ""); err != nil {
		return nil, err
	}

	p.Market = append(p.Market, domain.MarketListing{
		ID:          uuid.NewString(),
		ItemName:    def.Name,
		Quantity:    quantity,
		Price:       price,
		PublishedAt: s.now(),
	})

	if err := s.players.Save(ctx, p); err != nil {
		return nil, err
	}
	s.prices.Remove(def.Name)
	logger.FromContext(ctx).Info("market listing added",
		"player_id", playerID, "item", def.Name, "quantity", quantity, "price", price)
	return p, nil
}

// Buy transfers the listing to the buyer for its full price. Both players'
// locks are taken in id order so crossing trades cannot deadlock.
func (s *service) Buy(ctx context.Context, buyerID, sellerID int64, listingID string) (*domain.Player, error) {
	if buyerID == sellerID {
		return nil, fmt.Errorf("%w: cannot buy own listing", domain.ErrInvalidState)
	}

	first, second := buyerID, sellerID
	if second < first {
		first, second = second, first
	}
	firstLock := s.locks.GetLock(first)
	firstLock.Lock()
	defer firstLock.Unlock()
	secondLock := s.locks.GetLock(second)
	secondLock.Lock()
	defer secondLock.Unlock()

	seller, err := s.repo.Get(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	idx := listingIndex(seller.Market, listingID)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrListingNotFound, listingID)
	}
	listing := seller.Market[idx]

	def, err := s.catalog.Item(listing.ItemName)
	if err != nil {
		return nil, err
	}
	buyer, err := s.repo.Get(ctx, buyerID)
	if err != nil {
		return nil, err
	}
	if buyer.Coin < listing.Price {
		return nil, fmt.Errorf("%w: need %d, have %d", domain.ErrInsufficientFunds, listing.Price, buyer.Coin)
	}

	buyer.Coin -= listing.Price
	buyer.Inventory.Add(def, listing.Quantity, 100)
	buyer.Achievements.IncrProgress("богач", listing.Price)

	seller.Coin += listing.Price
	seller.Market = append(seller.Market[:idx], seller.Market[idx+1:]...)
	seller.Achievements.IncrProgress("продавец", listing.Quantity)

	if err := s.players.CheckStatus(ctx, seller); err != nil {
		return nil, err
	}
	if err := s.players.Save(ctx, seller); err != nil {
		return nil, err
	}
	if err := s.players.CheckStatus(ctx, buyer); err != nil {
		return nil, err
	}
	if err := s.players.Save(ctx, buyer); err != nil {
		return nil, err
	}

	s.prices.Remove(listing.ItemName)
	logger.FromContext(ctx).Info("market listing sold",
		"seller_id", sellerID, "buyer_id", buyerID, "item", listing.ItemName,
		"quantity", listing.Quantity, "price", listing.Price)
	return buyer, nil
}

// Cancel takes the player's own listing down and returns the stack.
func (s *service) Cancel(ctx context.Context, playerID int64, listingID string) (*domain.Player, error) {
	lock := s.locks.GetLock(playerID)
	lock.Lock()
	defer lock.Unlock()

	p, err := s.repo.Get(ctx, playerID)
	if err != nil {
		return nil, err
	}
	idx := listingIndex(p.Market, listingID)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrListingNotFound, listingID)
	}
	listing := p.Market[idx]

	def, err := s.catalog.Item(listing.ItemName)
	if err != nil {
		return nil, err
	}
	p.Inventory.Add(def, listing.Quantity, 100)
	p.Market = append(p.Market[:idx], p.Market[idx+1:]...)

	if err := s.players.Save(ctx, p); err != nil {
		return nil, err
	}
	s.prices.Remove(listing.ItemName)
	logger.FromContext(ctx).Info("market listing cancelled",
		"player_id", playerID, "item", listing.ItemName)
	return p, nil
}

// MedianPrice reports the going per-listing price for an item, seeded with
// the catalog base price so an empty market still quotes something.
func (s *service) MedianPrice(ctx context.Context, itemName string) (int, error) {
	def, err := s.catalog.Item(itemName)
	if err != nil {
		return 0, err
	}
	if cached, ok := s.prices.Get(def.Name); ok {
		return cached, nil
	}

	prices := []int{def.Price}
	listings, err := s.Listings(ctx)
	if err != nil {
		return 0, err
	}
	for _, l := range listings {
		if l.ItemName == def.Name {
			prices = append(prices, l.Price)
		}
	}

	sort.Ints(prices)
	median := prices[len(prices)/2]
	if len(prices)%2 == 0 {
		median = (prices[len(prices)/2-1] + prices[len(prices)/2]) / 2
	}

	s.prices.Add(def.Name, median)
	return median, nil
}

func listingIndex(listings []domain.MarketListing, id string) int {
	for i, l := range listings {
		if l.ID == id {
			return i
		}
	}
	return -1
}
