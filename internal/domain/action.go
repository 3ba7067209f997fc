package domain

import "time"

// ActionType is a timed, exclusive player activity.
type ActionType string

const (
	ActionWalk  ActionType = "walk"
	ActionWork  ActionType = "work"
	ActionSleep ActionType = "sleep"
	ActionGame  ActionType = "game"
)

// Action is the in-progress timed activity of a player. At most one action
// is active per player at a time; exclusivity is enforced by the action
// engine, not by this type.
type Action struct {
	Type  ActionType `json:"type"`
	Start time.Time  `json:"start"`
	End   time.Time  `json:"end"`
}

// Done reports whether the action has reached its end time.
func (a *Action) Done(now time.Time) bool {
	return !now.Before(a.End)
}

// Remaining returns the time left until the action resolves, never negative.
func (a *Action) Remaining(now time.Time) time.Duration {
	if a.Done(now) {
		return 0
	}
	return a.End.Sub(now)
}
