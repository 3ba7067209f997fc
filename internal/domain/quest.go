package domain

import "time"

// Quest is the per-player delivery task: gather the needed items, hand them
// in, collect coin and XP. Exactly one quest is active per player at any
// time; it is regenerated on completion or paid skip.
type Quest struct {
	NeededItems map[string]int `json:"needed_items"`
	XP          float64        `json:"xp"`
	Reward      int            `json:"reward"`
	StartTime   time.Time      `json:"start_time"`
}

// IsDone reports whether the inventory satisfies every needed item.
func (q *Quest) IsDone(inv *Inventory) bool {
	for name, quantity := range q.NeededItems {
		it, err := inv.Get(name)
		if err != nil {
			return false
		}
		if it.Quantity < quantity {
			return false
		}
	}
	return true
}
