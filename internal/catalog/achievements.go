package catalog

import "github.com/hmelikyan/wanderbot/internal/domain"

var achievements = []*domain.AchievementDef{
	{
		Name:        "работяга",
		Emoji:       "💼",
		Description: "поработай 10 раз",
		Need:        10,
		Reward: []domain.AchievementReward{
			{Name: "бабло", Quantity: 10000},
		},
	},
	{
		Name:        "бродяга",
		Emoji:       "🚶",
		Description: "погуляй 10 раз",
		Need:        10,
		Reward: []domain.AchievementReward{
			{Name: "бокс", Quantity: 2},
		},
	},
	{
		Name:        "сонный",
		Emoji:       "💤",
		Description: "поспи 15 раз",
		Need:        15,
		Reward: []domain.AchievementReward{
			{Name: "энергос", Quantity: 10},
		},
	},
	{
		Name:        "игроман",
		Emoji:       "🎮",
		Description: "поиграй 20 раз",
		Need:        20,
		Reward: []domain.AchievementReward{
			{Name: "бокс", Quantity: 3},
		},
	},
	{
		Name:        "друзья навеки",
		Emoji:       "🫂",
		Description: "пригласи друга по твоей реферальной ссылке и раздели веселье вместе с другом",
		Need:        1,
		Reward: []domain.AchievementReward{
			{Name: "буст", Quantity: 2},
		},
	},
	{
		Name:        "продавец",
		Emoji:       "💰",
		Description: "продай в рынке 30 предметов",
		Need:        30,
		Reward: []domain.AchievementReward{
			{Name: "бокс", Quantity: 5},
		},
	},
	{
		Name:        "богач",
		Emoji:       "💸",
		Description: "потрать 200 000 бабла на рынке",
		Need:        200000,
		Reward: []domain.AchievementReward{
			{Name: "бокс", Quantity: 5},
			{Name: "буст", Quantity: 2},
		},
	},
	{
		Name:        "кладоискатель",
		Emoji:       "🎁",
		Description: "открой 20 сундуков",
		Need:        20,
		Reward: []domain.AchievementReward{
			{Name: "бокс", Quantity: 4},
		},
	},
	{
		Name:        "новичок",
		Emoji:       "👋",
		Description: "посети игру каждый день на протяжении первой недели",
		Need:        7,
		Reward: []domain.AchievementReward{
			{Name: "бабло", Quantity: 5000},
		},
	},
	{
		Name:        "олд",
		Emoji:       "👨‍🦳",
		Description: "оставайся активным игроком в течение целого года",
		Need:        365,
		Reward: []domain.AchievementReward{
			{Name: "бабло", Quantity: 50000},
		},
	},
	{
		Name:        "квестоман",
		Emoji:       "🗺️",
		Description: "выполни 50 квестов",
		Need:        50,
		Reward: []domain.AchievementReward{
			{Name: "бабло", Quantity: 15000},
			{Name: "бокс", Quantity: 3},
			{Name: "буст", Quantity: 1},
		},
	},
}
