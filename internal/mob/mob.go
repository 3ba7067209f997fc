// Package mob holds the wandering encounter definitions and their
// resolution flows. Encounters are rolled mid-walk by the action engine; at
// most one fires per action.
package mob

import (
	"github.com/hmelikyan/wanderbot/internal/catalog"
	"github.com/hmelikyan/wanderbot/internal/domain"
	"github.com/hmelikyan/wanderbot/internal/utils"
)

// Def is an immutable encounter definition.
type Def struct {
	Name        string
	Emoji       string
	Description string
	// Chance is the percentage roll threshold for this encounter.
	Chance float64
}

const (
	TraderName = "торговец"
	ChestName  = "сундук"
)

var mobs = []*Def{
	{
		Name:        TraderName,
		Emoji:       "👳‍♂️",
		Description: "Предлагает игроку купить предмет",
		Chance:      40.0,
	},
	{
		Name:        ChestName,
		Emoji:       "🧰",
		Description: "Из него выпадают предметы",
		Chance:      12.7,
	},
}

// All returns the encounter registry in definition order.
func All() []*Def {
	return mobs
}

// Get resolves an encounter by name or transliterated name.
func Get(name string) (*Def, error) {
	for _, m := range mobs {
		if m.Name == name || catalog.Translit(m.Name) == name {
			return m, nil
		}
	}
	return nil, domain.ErrMobNotFound
}

// Roll picks a random encounter and rolls its chance. It returns nil when
// nothing is met.
func Roll(rng *utils.Rand) *Def {
	m := mobs[rng.Intn(len(mobs))]
	if rng.FloatBetween(0, 100) <= m.Chance {
		return m
	}
	return nil
}
