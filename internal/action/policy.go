package action

import (
	"context"
	"time"

	"github.com/hmelikyan/wanderbot/internal/domain"
	"github.com/hmelikyan/wanderbot/internal/event"
	"github.com/hmelikyan/wanderbot/internal/logger"
	"github.com/hmelikyan/wanderbot/internal/utils"
	"github.com/hmelikyan/wanderbot/internal/weather"
)

const gameMinLevel = 5

// policy binds an action type to its duration roll and resolution.
type policy struct {
	minLevel    int
	achievement string
	duration    func(rng *utils.Rand) time.Duration
	resolve     func(s *service, ctx context.Context, p *domain.Player) *Outcome
}

var policies = map[domain.ActionType]policy{
	domain.ActionWalk: {
		achievement: "бродяга",
		duration: func(*utils.Rand) time.Duration {
			return time.Hour
		},
		resolve: resolveWalk,
	},
	domain.ActionWork: {
		achievement: "работяга",
		duration: func(rng *utils.Rand) time.Duration {
			return rng.DurationBetween(2*time.Hour, 3*time.Hour) +
				rng.DurationBetween(10*time.Minute, 30*time.Minute)
		},
		resolve: resolveWork,
	},
	domain.ActionSleep: {
		achievement: "сонный",
		duration: func(rng *utils.Rand) time.Duration {
			return rng.DurationBetween(6*time.Hour, 8*time.Hour)
		},
		resolve: resolveSleep,
	},
	domain.ActionGame: {
		minLevel:    gameMinLevel,
		achievement: "игроман",
		duration: func(rng *utils.Rand) time.Duration {
			return rng.DurationBetween(0, 3*time.Hour) +
				rng.DurationBetween(15*time.Minute, 20*time.Minute)
		},
		resolve: resolveGame,
	},
}

// lootEntry is one row of the walk loot table with its quantity range.
type lootEntry struct {
	name     string
	min, max int
}

// resolveWalk draws a random number of rows from the weather-aware loot
// table, merging duplicate draws into one grant per item. A failed weather
// lookup degrades to the neutral table rather than blocking resolution.
func resolveWalk(s *service, ctx context.Context, p *domain.Player) *Outcome {
	condition := weather.Unknown
	if report, err := s.weather.Current(ctx); err == nil {
		condition = report.Condition
	} else {
		logger.FromContext(ctx).Warn("weather lookup failed", "error", err)
	}

	waterMin, waterMax := 2, 4
	if condition == weather.Rain || condition == weather.Drizzle || condition == weather.Thunderstorm {
		waterMin, waterMax = 5, 9
	}

	table := []lootEntry{
		{domain.CoinItemName, 5, 19},
		{"трава", 1, 2},
		{"гриб", 1, 2},
		{"вода", waterMin, waterMax},
		{"чаинка", 1, 1},
	}
	if condition == weather.Snow {
		table = append(table, lootEntry{"снег", 5, 9})
	}

	granted := make(map[string]int, len(table))
	var order []string
	for i := s.rng.IntBetween(1, len(table)); i > 0; i-- {
		entry := table[s.rng.Intn(len(table))]
		quantity := s.rng.IntBetween(entry.min, entry.max)
		if quantity <= 0 {
			continue
		}
		// High luck occasionally tops the stack up.
		if s.rng.IntBetween(1, p.Luck)+50 < p.Luck {
			quantity += s.rng.IntBetween(10, 20)
		}
		if _, seen := granted[entry.name]; !seen {
			order = append(order, entry.name)
		}
		granted[entry.name] += quantity
	}

	loot := make([]event.ItemGrant, 0, len(order))
	for _, name := range order {
		loot = append(loot, event.ItemGrant{Name: name, Quantity: granted[name]})
	}

	p.Hunger -= s.rng.IntBetween(2, 5)
	p.Fatigue -= s.rng.IntBetween(3, 8)
	p.Mood -= s.rng.IntBetween(3, 6)

	return &Outcome{
		Action: domain.ActionWalk,
		XP:     s.rng.FloatBetween(3, 5),
		Loot:   loot,
	}
}

func resolveWork(s *service, _ context.Context, p *domain.Player) *Outcome {
	p.Hunger -= s.rng.IntBetween(5, 15)
	p.Fatigue -= s.rng.IntBetween(10, 20)
	p.Mood -= s.rng.IntBetween(3, 6)

	coin := s.rng.IntBetween(100, 200) * p.Level
	xp := s.rng.FloatBetween(5, 15)
	// Lucky shift: doubled pay and bonus experience.
	if s.rng.IntBetween(1, 100) < p.Luck {
		coin *= 2
		xp += s.rng.FloatBetween(5, 7.5)
	}

	return &Outcome{
		Action: domain.ActionWork,
		XP:     xp,
		Coin:   coin,
	}
}

func resolveSleep(s *service, _ context.Context, p *domain.Player) *Outcome {
	p.Fatigue = s.rng.IntBetween(50, 100)
	p.Hunger -= s.rng.IntBetween(1, 3)
	p.Mood += s.rng.IntBetween(1, 10)

	return &Outcome{
		Action: domain.ActionSleep,
		XP:     s.rng.FloatBetween(5, 15),
	}
}

func resolveGame(s *service, _ context.Context, p *domain.Player) *Outcome {
	p.Mood = s.rng.IntBetween(30, 60)
	p.Hunger -= s.rng.IntBetween(2, 8)

	return &Outcome{
		Action: domain.ActionGame,
		XP:     s.rng.FloatBetween(3, 5),
	}
}
