package domain

import "time"

// ViolationType classifies a moderation record.
type ViolationType string

const (
	ViolationWarn         ViolationType = "warn"
	ViolationMute         ViolationType = "mute"
	ViolationBan          ViolationType = "ban"
	ViolationPermanentBan ViolationType = "permanent-ban"
)

// Violation is one moderation record against a player. A nil UntilDate
// means the record never expires.
type Violation struct {
	Reason    string        `json:"reason"`
	Type      ViolationType `json:"type"`
	UntilDate *time.Time    `json:"until_date,omitempty"`
}

// DailyGift tracks the once-a-day gift claim state and streak.
type DailyGift struct {
	Streak        int            `json:"streak"`
	LastClaimedAt *time.Time     `json:"last_claimed_at,omitempty"`
	Items         map[string]int `json:"items,omitempty"`
}

// NextClaimAt returns when the gift becomes claimable again.
func (g *DailyGift) NextClaimAt() time.Time {
	if g.LastClaimedAt == nil {
		return time.Time{}
	}
	return g.LastClaimedAt.Add(24 * time.Hour)
}

// Claimable reports whether the gift can be claimed at the given time.
func (g *DailyGift) Claimable(now time.Time) bool {
	return g.LastClaimedAt == nil || !now.Before(g.NextClaimAt())
}

// NotificationStatus holds one-shot flags so the notification sweep sends
// each reminder at most once per occurrence. A flag is set when the message
// goes out and cleared when the corresponding state resets.
type NotificationStatus struct {
	Walk      bool `json:"walk"`
	Work      bool `json:"work"`
	Sleep     bool `json:"sleep"`
	Game      bool `json:"game"`
	DailyGift bool `json:"daily_gift"`
}

// ClearAction resets the one-shot flag for the given action type.
func (n *NotificationStatus) ClearAction(t ActionType) {
	switch t {
	case ActionWalk:
		n.Walk = false
	case ActionWork:
		n.Work = false
	case ActionSleep:
		n.Sleep = false
	case ActionGame:
		n.Game = false
	}
}

// ActionFlag returns a pointer to the one-shot flag for the action type.
func (n *NotificationStatus) ActionFlag(t ActionType) *bool {
	switch t {
	case ActionWalk:
		return &n.Walk
	case ActionWork:
		return &n.Work
	case ActionSleep:
		return &n.Sleep
	case ActionGame:
		return &n.Game
	}
	return nil
}

// MarketListing is one stack the player has put up for sale. Listings live
// on the seller's aggregate; the market service assembles the global view.
type MarketListing struct {
	ID          string    `json:"id"`
	ItemName    string    `json:"item_name"`
	Quantity    int       `json:"quantity"`
	Price       int       `json:"price"`
	PublishedAt time.Time `json:"published_at"`
}

// Stat bounds. Health, mood, hunger and fatigue are resource levels in
// [0, 100] where higher is better: hunger is remaining fullness and fatigue
// is remaining energy. Actions and background decay decrement them; food and
// sleep restore them. Luck is unbounded upward with a floor of 1.
const (
	StatMin = 0
	StatMax = 100
)

// Player is the aggregate root holding all per-user mutable game state.
// It is created lazily on first contact, loaded for every interaction,
// mutated, and written back. Revision is an optimistic-versioning counter
// checked by the repository on update.
type Player struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Lang          string    `json:"lang"`
	RegisteredAt  time.Time `json:"registered_at"`
	LastCheckedAt time.Time `json:"last_checked_at"`
	LastActiveAt  time.Time `json:"last_active_at"`

	Level  int     `json:"level"`
	Coin   int     `json:"coin"`
	XP     float64 `json:"xp"`
	MaxXP  float64 `json:"max_xp"`
	Health int     `json:"health"`
	Mood   int     `json:"mood"`
	Hunger int     `json:"hunger"`
	Fatigue int    `json:"fatigue"`
	Luck   int     `json:"luck"`

	Action       *Action            `json:"action,omitempty"`
	Inventory    Inventory          `json:"inventory"`
	Achievements AchievementsInfo   `json:"achievements"`
	Quest        *Quest             `json:"quest,omitempty"`
	Violations   []Violation        `json:"violations,omitempty"`
	DailyGift    DailyGift          `json:"daily_gift"`
	Notification NotificationStatus `json:"notification_status"`

	MarketSlots int             `json:"market_slots"`
	Market      []MarketListing `json:"market,omitempty"`
	MetMob      bool            `json:"met_mob"`

	Revision int64 `json:"revision"`
}

// IsCurrentAction reports whether an action of the given type is active.
func (p *Player) IsCurrentAction(t ActionType) bool {
	return p.Action != nil && p.Action.Type == t
}

// ClampStats forces health, mood, hunger and fatigue into [0, 100] and coin
// to be non-negative.
func (p *Player) ClampStats() {
	p.Health = clamp(p.Health)
	p.Mood = clamp(p.Mood)
	p.Hunger = clamp(p.Hunger)
	p.Fatigue = clamp(p.Fatigue)
	if p.Coin < 0 {
		p.Coin = 0
	}
}

// PruneExpiredViolations drops violations whose expiry has passed and
// returns how many were removed.
func (p *Player) PruneExpiredViolations(now time.Time) int {
	kept := p.Violations[:0]
	removed := 0
	for _, v := range p.Violations {
		if v.UntilDate != nil && v.UntilDate.Before(now) {
			removed++
			continue
		}
		kept = append(kept, v)
	}
	p.Violations = kept
	return removed
}

func clamp(v int) int {
	if v < StatMin {
		return StatMin
	}
	if v > StatMax {
		return StatMax
	}
	return v
}
