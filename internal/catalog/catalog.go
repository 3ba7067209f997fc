// Package catalog holds the immutable item and achievement registries and
// the name-resolution logic on top of them. Definitions are static data;
// per-player state lives in the player aggregate.
package catalog

import (
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/text/cases"

	"github.com/hmelikyan/wanderbot/internal/domain"
	"github.com/hmelikyan/wanderbot/internal/utils"
)

// rarityWeights drive drop counts: a higher weight means more copies of an
// item of that rarity can drop at once.
var rarityWeights = map[domain.ItemRarity]int{
	domain.RarityCommon:    6,
	domain.RarityUncommon:  5,
	domain.RarityRare:      3,
	domain.RarityEpic:      2,
	domain.RarityLegendary: 1,
}

const (
	lookupCacheSize = 512
	lookupCacheTTL  = time.Hour
)

// Catalog resolves item and achievement names. Lookups accept the canonical
// Russian name, any registered alternate name, or the Latin transliteration,
// case-insensitively. Resolved queries are memoized because the same handful
// of free-form strings arrives on every chat interaction.
type Catalog struct {
	items        []*domain.ItemDef
	achievements []*domain.AchievementDef

	itemsByName map[string]*domain.ItemDef
	achByName   map[string]*domain.AchievementDef

	fold  cases.Caser
	cache *expirable.LRU[string, *domain.ItemDef]
}

// New builds the catalog from the static registries.
func New() *Catalog {
	c := &Catalog{
		items:        items,
		achievements: achievements,
		itemsByName:  make(map[string]*domain.ItemDef, len(items)*2),
		achByName:    make(map[string]*domain.AchievementDef, len(achievements)*2),
		fold:         cases.Fold(),
		cache:        expirable.NewLRU[string, *domain.ItemDef](lookupCacheSize, nil, lookupCacheTTL),
	}

	for _, it := range c.items {
		c.itemsByName[c.fold.String(it.Name)] = it
		c.itemsByName[Translit(it.Name)] = it
		for _, alt := range it.AltNames {
			c.itemsByName[c.fold.String(alt)] = it
		}
	}
	for _, a := range c.achievements {
		c.achByName[c.fold.String(a.Name)] = a
		c.achByName[a.Key()] = a
		c.achByName[Translit(a.Key())] = a
	}
	return c
}

// Items returns the full item registry in definition order.
func (c *Catalog) Items() []*domain.ItemDef { return c.items }

// Achievements returns the full achievement registry in definition order.
func (c *Catalog) Achievements() []*domain.AchievementDef { return c.achievements }

// Item resolves a free-form item name.
func (c *Catalog) Item(name string) (*domain.ItemDef, error) {
	key := c.fold.String(strings.TrimSpace(name))
	if it, ok := c.cache.Get(key); ok {
		return it, nil
	}
	it, ok := c.itemsByName[key]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	c.cache.Add(key, it)
	return it, nil
}

// ItemEmoji returns the emoji for the name, or "" when unknown.
func (c *Catalog) ItemEmoji(name string) string {
	it, err := c.Item(name)
	if err != nil {
		return ""
	}
	return it.Emoji
}

// Achievement resolves a free-form achievement name or key.
func (c *Catalog) Achievement(name string) (*domain.AchievementDef, error) {
	a, ok := c.achByName[c.fold.String(strings.TrimSpace(name))]
	if !ok {
		return nil, domain.ErrAchievementNotFound
	}
	return a, nil
}

// Coin returns the currency item definition.
func (c *Catalog) Coin() *domain.ItemDef {
	it, _ := c.Item(domain.CoinItemName)
	return it
}

// QuestItems returns the items eligible for quest generation.
func (c *Catalog) QuestItems() []*domain.ItemDef {
	out := make([]*domain.ItemDef, 0, len(c.items))
	for _, it := range c.items {
		if it.QuestItem {
			out = append(out, it)
		}
	}
	return out
}

// Craftable returns the items that have a craft recipe.
func (c *Catalog) Craftable() []*domain.ItemDef {
	out := make([]*domain.ItemDef, 0, len(c.items))
	for _, it := range c.items {
		if len(it.Craft) > 0 {
			out = append(out, it)
		}
	}
	return out
}

// DropCount rolls how many copies of an item of the given rarity drop at
// once. Unknown rarities never drop.
func (c *Catalog) DropCount(rng *utils.Rand, rarity domain.ItemRarity) int {
	w, ok := rarityWeights[rarity]
	if !ok {
		return 0
	}
	return rng.Intn(w + 1)
}
