package domain

// ItemRarity represents the drop rarity of an item definition.
type ItemRarity string

const (
	RarityCommon    ItemRarity = "COMMON"
	RarityUncommon  ItemRarity = "UNCOMMON"
	RarityRare      ItemRarity = "RARE"
	RarityEpic      ItemRarity = "EPIC"
	RarityLegendary ItemRarity = "LEGENDARY"
)

// ItemType distinguishes how an item occupies the inventory.
// Stackable items are a single quantity counter per player; usable items are
// independent single-unit instances, each with a depleting usage percentage.
type ItemType string

const (
	TypeStackable ItemType = "STACKABLE"
	TypeUsable    ItemType = "USABLE"
)

// CoinItemName is the in-game currency. It is a catalog entry so that loot
// tables and rewards can reference it by name, but it never enters an
// inventory: quantities credit the player's coin balance directly.
const CoinItemName = "бабло"

// Ingredient is one entry of a craft recipe.
type Ingredient struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// CoinRange is an inclusive price interval used for quest and exchange
// reward rolls.
type CoinRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// ItemDef is an immutable, catalog-resident item definition.
// Name is globally unique within the catalog. Craft ingredients must
// themselves be valid catalog entries; craft execution is single-level
// consumption, never recursive expansion, so recipe cycles cannot recurse.
type ItemDef struct {
	Name          string       `json:"name"`
	Emoji         string       `json:"emoji"`
	Description   string       `json:"description"`
	Rarity        ItemRarity   `json:"rarity"`
	Type          ItemType     `json:"type"`
	AltNames      []string     `json:"alt_names,omitempty"`
	Craft         []Ingredient `json:"craft,omitempty"`
	Effect        int          `json:"effect,omitempty"`
	Price         int          `json:"price,omitempty"`
	Consumable    bool         `json:"consumable,omitempty"`
	QuestItem     bool         `json:"quest_item,omitempty"`
	QuestCoin     *CoinRange   `json:"quest_coin,omitempty"`
	Exchangeable  bool         `json:"exchangeable,omitempty"`
	ExchangePrice *CoinRange   `json:"exchange_price,omitempty"`
}

// IsCoin reports whether this definition is the currency pseudo-item.
func (d *ItemDef) IsCoin() bool {
	return d.Name == CoinItemName
}
