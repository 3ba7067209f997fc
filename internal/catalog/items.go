package catalog

import "github.com/hmelikyan/wanderbot/internal/domain"

func coinRange(min, max int) *domain.CoinRange {
	return &domain.CoinRange{Min: min, Max: max}
}

// items is the static item registry. The catalog is immutable for the
// process lifetime; all lookups go through Catalog.
var items = []*domain.ItemDef{
	{
		Name:        "бабло",
		Emoji:       "🪙",
		Description: "Игровая валюта",
		Rarity:      domain.RarityCommon,
		Type:        domain.TypeStackable,
	},
	{
		Name:        "буханка",
		Emoji:       "🍞",
		Description: "+10 сытости, используется в крафтах",
		Rarity:      domain.RarityCommon,
		Type:        domain.TypeStackable,
		Craft: []domain.Ingredient{
			{Name: "мука", Quantity: 3},
			{Name: "вода", Quantity: 5},
		},
		Effect:        10,
		Price:         100,
		Consumable:    true,
		QuestItem:     true,
		QuestCoin:     coinRange(50, 150),
		Exchangeable:  true,
		ExchangePrice: coinRange(70, 100),
	},
	{
		Name:        "сэндвич",
		Emoji:       "🥪",
		Description: "+30 сытости",
		Rarity:      domain.RarityCommon,
		Type:        domain.TypeStackable,
		AltNames:    []string{"сендвич"},
		Craft: []domain.Ingredient{
			{Name: "буханка", Quantity: 2},
			{Name: "помидор", Quantity: 3},
			{Name: "сыр", Quantity: 4},
		},
		Effect:        30,
		Price:         250,
		Consumable:    true,
		QuestItem:     true,
		QuestCoin:     coinRange(100, 300),
		Exchangeable:  true,
		ExchangePrice: coinRange(70, 250),
	},
	{
		Name:        "пицца",
		Emoji:       "🍕",
		Description: "+50 сытости",
		Rarity:      domain.RarityCommon,
		Type:        domain.TypeStackable,
		Craft: []domain.Ingredient{
			{Name: "буханка", Quantity: 5},
			{Name: "сыр", Quantity: 4},
		},
		Effect:        50,
		Price:         380,
		Consumable:    true,
		QuestItem:     true,
		QuestCoin:     coinRange(300, 450),
		Exchangeable:  true,
		ExchangePrice: coinRange(200, 380),
	},
	{
		Name:        "тако",
		Emoji:       "🌮",
		Description: "+70 сытости",
		Rarity:      domain.RarityCommon,
		Type:        domain.TypeStackable,
		Craft: []domain.Ingredient{
			{Name: "буханка", Quantity: 1},
			{Name: "помидор", Quantity: 8},
			{Name: "сыр", Quantity: 6},
		},
		Effect:        70,
		Price:         530,
		Consumable:    true,
		QuestItem:     true,
		QuestCoin:     coinRange(350, 600),
		Exchangeable:  true,
		ExchangePrice: coinRange(400, 530),
	},
	{
		Name:        "суп",
		Emoji:       "🍲",
		Description: "+100 сытости",
		Rarity:      domain.RarityUncommon,
		Type:        domain.TypeStackable,
		Craft: []domain.Ingredient{
			{Name: "вода", Quantity: 10},
			{Name: "помидор", Quantity: 5},
			{Name: "морковка", Quantity: 4},
			{Name: "мясо", Quantity: 7},
			{Name: "трава", Quantity: 3},
			{Name: "гриб", Quantity: 2},
		},
		Effect:        100,
		Price:         700,
		Consumable:    true,
		Exchangeable:  true,
		ExchangePrice: coinRange(500, 700),
	},
	{
		Name:          "мука",
		Emoji:         "🥣",
		Description:   "Используется в крафтах",
		Rarity:        domain.RarityCommon,
		Type:          domain.TypeStackable,
		Price:         100,
		Exchangeable:  true,
		ExchangePrice: coinRange(70, 100),
	},
	{
		Name:          "вода",
		Emoji:         "💦",
		Description:   "Используется в крафтах",
		Rarity:        domain.RarityCommon,
		Type:          domain.TypeStackable,
		Price:         80,
		QuestItem:     true,
		QuestCoin:     coinRange(50, 120),
		Exchangeable:  true,
		ExchangePrice: coinRange(40, 80),
	},
	{
		Name:          "помидор",
		Emoji:         "🍅",
		Description:   "Используется в крафтах",
		Rarity:        domain.RarityCommon,
		Type:          domain.TypeStackable,
		Price:         83,
		QuestItem:     true,
		QuestCoin:     coinRange(50, 150),
		Exchangeable:  true,
		ExchangePrice: coinRange(70, 83),
	},
	{
		Name:          "сыр",
		Emoji:         "🧀",
		Description:   "Используется в крафтах",
		Rarity:        domain.RarityCommon,
		Type:          domain.TypeStackable,
		Price:         75,
		QuestItem:     true,
		QuestCoin:     coinRange(40, 110),
		Exchangeable:  true,
		ExchangePrice: coinRange(60, 75),
	},
	{
		Name:          "морковка",
		Emoji:         "🥕",
		Description:   "Используется в крафтах",
		Rarity:        domain.RarityCommon,
		Type:          domain.TypeStackable,
		AltNames:      []string{"морковь"},
		Price:         60,
		QuestItem:     true,
		QuestCoin:     coinRange(30, 100),
		Exchangeable:  true,
		ExchangePrice: coinRange(30, 60),
	},
	{
		Name:          "мясо",
		Emoji:         "🥩",
		Description:   "Используется в крафтах",
		Rarity:        domain.RarityCommon,
		Type:          domain.TypeStackable,
		Price:         350,
		Exchangeable:  true,
		ExchangePrice: coinRange(250, 350),
	},
	{
		Name:          "буст",
		Emoji:         "⚡",
		Description:   "При использовании добавляет опыт",
		Rarity:        domain.RarityRare,
		Type:          domain.TypeStackable,
		Price:         75000,
		Consumable:    true,
		Exchangeable:  true,
		ExchangePrice: coinRange(60000, 75000),
	},
	{
		Name:          "бокс",
		Emoji:         "📦",
		Description:   "При открытии выпадают случайные предметы",
		Rarity:        domain.RarityLegendary,
		Type:          domain.TypeStackable,
		Price:         35000,
		Consumable:    true,
		Exchangeable:  true,
		ExchangePrice: coinRange(25000, 35000),
	},
	{
		Name:          "кость",
		Emoji:         "🦴",
		Description:   "Нужна, чтобы подружиться с псиной",
		Rarity:        domain.RarityUncommon,
		Type:          domain.TypeStackable,
		Exchangeable:  true,
		ExchangePrice: coinRange(200, 500),
	},
	{
		Name:        "энергос",
		Emoji:       "🔋",
		Description: "Выпей, чтобы быстро восстановить силы",
		Rarity:      domain.RarityUncommon,
		Type:        domain.TypeStackable,
		AltNames:    []string{"енергос"},
		Craft: []domain.Ingredient{
			{Name: "химоза", Quantity: 4},
			{Name: "вода", Quantity: 3},
		},
		Effect:        100,
		Price:         5000,
		Consumable:    true,
		Exchangeable:  true,
		ExchangePrice: coinRange(4000, 5000),
	},
	{
		Name:          "химоза",
		Emoji:         "🧪",
		Description:   "Используется в крафтах",
		Rarity:        domain.RarityUncommon,
		Type:          domain.TypeStackable,
		Price:         2310,
		Exchangeable:  true,
		ExchangePrice: coinRange(1000, 2310),
	},
	{
		Name:          "пилюля",
		Emoji:         "💊",
		Description:   "Принимай, чтобы быстрее выздороветь",
		Rarity:        domain.RarityRare,
		Type:          domain.TypeStackable,
		Consumable:    true,
		Exchangeable:  true,
		ExchangePrice: coinRange(1000, 2000),
	},
	{
		Name:          "хелп",
		Emoji:         "💉",
		Description:   "Сразу восстанавливает все здоровье",
		Rarity:        domain.RarityRare,
		Type:          domain.TypeStackable,
		Effect:        100,
		Consumable:    true,
		Exchangeable:  true,
		ExchangePrice: coinRange(10000, 20000),
	},
	{
		Name:          "трава",
		Emoji:         "🌿",
		Description:   "+5 сытости, используется в крафтах",
		Rarity:        domain.RarityCommon,
		Type:          domain.TypeStackable,
		Effect:        5,
		Price:         60,
		Consumable:    true,
		QuestItem:     true,
		QuestCoin:     coinRange(20, 80),
		Exchangeable:  true,
		ExchangePrice: coinRange(40, 60),
	},
	{
		Name:          "гриб",
		Emoji:         "🍄",
		Description:   "Используется в крафтах",
		Rarity:        domain.RarityCommon,
		Type:          domain.TypeStackable,
		Price:         63,
		QuestItem:     true,
		QuestCoin:     coinRange(20, 80),
		Exchangeable:  true,
		ExchangePrice: coinRange(40, 63),
	},
	{
		Name:          "свисток",
		Emoji:         "🪈",
		Description:   "Можно взять у псины, если с ней подружиться",
		Rarity:        domain.RarityUncommon,
		Type:          domain.TypeStackable,
		Exchangeable:  true,
		ExchangePrice: coinRange(500, 1600),
	},
	{
		Name:          "фиксоманчик",
		Emoji:         "👾",
		Description:   "Чинит предметы, восстанавливает 50-100% предмета",
		Rarity:        domain.RarityLegendary,
		Type:          domain.TypeUsable,
		Consumable:    true,
		Price:         1000000,
		Exchangeable:  true,
		ExchangePrice: coinRange(800000, 1500000),
	},
	{
		Name:        "снеговик",
		Emoji:       "⛄",
		Description: "Ивентовый предмет",
		Rarity:      domain.RarityUncommon,
		Type:        domain.TypeStackable,
		Craft: []domain.Ingredient{
			{Name: "снег", Quantity: 10},
		},
		QuestCoin:     coinRange(500, 1000),
		Exchangeable:  true,
		ExchangePrice: coinRange(500, 1000),
	},
	{
		Name:          "снег",
		Emoji:         "❄",
		Description:   "Используется в крафте снеговика",
		Rarity:        domain.RarityCommon,
		Type:          domain.TypeStackable,
		AltNames:      []string{"снежок"},
		QuestCoin:     coinRange(70, 100),
		Exchangeable:  true,
		ExchangePrice: coinRange(60, 170),
	},
	{
		Name:          "водка",
		Emoji:         "🍾",
		Description:   "Снимает усталость, но отнимает здоровье",
		Rarity:        domain.RarityEpic,
		Type:          domain.TypeStackable,
		Effect:        40,
		Consumable:    true,
		Exchangeable:  true,
		ExchangePrice: coinRange(200000, 300000),
	},
	{
		Name:          "билет",
		Emoji:         "🎟",
		Description:   "Нужен, чтобы играть в казино",
		Rarity:        domain.RarityUncommon,
		Type:          domain.TypeStackable,
		Price:         70,
		QuestItem:     true,
		QuestCoin:     coinRange(35, 100),
		Exchangeable:  true,
		ExchangePrice: coinRange(60, 70),
	},
	{
		Name:          "велик",
		Emoji:         "🚲",
		Description:   "Сокращает время прогулки на 10-45 минут",
		Rarity:        domain.RarityRare,
		Type:          domain.TypeStackable,
		Price:         25000,
		Consumable:    true,
		Exchangeable:  true,
		ExchangePrice: coinRange(10000, 25000),
	},
	{
		Name:          "чаинка",
		Emoji:         "🍃",
		Description:   "Используется в крафте чая",
		Rarity:        domain.RarityCommon,
		Type:          domain.TypeStackable,
		Price:         52,
		QuestItem:     true,
		QuestCoin:     coinRange(15, 60),
		Exchangeable:  true,
		ExchangePrice: coinRange(20, 52),
	},
	{
		Name:        "чай",
		Emoji:       "🍵",
		Description: "Попей, чтобы восстановить силы",
		Rarity:      domain.RarityCommon,
		Type:        domain.TypeStackable,
		Craft: []domain.Ingredient{
			{Name: "вода", Quantity: 3},
			{Name: "чаинка", Quantity: 1},
		},
		Effect:        7,
		Price:         90,
		Consumable:    true,
		QuestItem:     true,
		QuestCoin:     coinRange(50, 130),
		Exchangeable:  true,
		ExchangePrice: coinRange(60, 90),
	},
	{
		Name:          "ключ",
		Emoji:         "🗝️",
		Description:   "Нужен, чтобы открыть сундук",
		Rarity:        domain.RarityRare,
		Type:          domain.TypeStackable,
		Price:         5691,
		Exchangeable:  true,
		ExchangePrice: coinRange(4000, 5800),
	},
	{
		Name:          "бабочка",
		Emoji:         "🦋",
		Description:   "Ивентовый предмет",
		Rarity:        domain.RarityUncommon,
		Type:          domain.TypeStackable,
		Exchangeable:  true,
		ExchangePrice: coinRange(2000, 3000),
	},
	{
		Name:        "клевер-удачи",
		Emoji:       "🍀",
		Description: "Увеличивает удачу на 1",
		Rarity:      domain.RarityLegendary,
		Type:        domain.TypeStackable,
		Consumable:  true,
		Effect:      1,
	},
	{
		Name:          "конфета",
		Emoji:         "🍬",
		Description:   "Восстанавливает сытость и силы",
		Rarity:        domain.RarityEpic,
		Type:          domain.TypeStackable,
		Effect:        40,
		QuestCoin:     coinRange(300, 500),
		Consumable:    true,
		Exchangeable:  true,
		ExchangePrice: coinRange(150, 300),
	},
	{
		Name:        "тыква",
		Emoji:       "🎃",
		Description: "Ивентовый предмет",
		Rarity:      domain.RarityLegendary,
		Type:        domain.TypeStackable,
	},
}
