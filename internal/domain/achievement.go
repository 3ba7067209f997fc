package domain

import (
	"strings"
	"time"
)

// AchievementReward is one item grant of a completed achievement.
type AchievementReward struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// AchievementDef is an immutable, catalog-resident achievement definition.
type AchievementDef struct {
	Name        string              `json:"name"`
	Emoji       string              `json:"emoji"`
	Description string              `json:"description"`
	Need        int                 `json:"need"`
	Reward      []AchievementReward `json:"reward"`
}

// Key is the canonical progress-map key for this achievement.
func (a *AchievementDef) Key() string {
	return strings.ReplaceAll(strings.TrimSpace(a.Name), " ", "-")
}

// CompletedAchievement records an awarded achievement.
type CompletedAchievement struct {
	Name        string    `json:"name"`
	CompletedAt time.Time `json:"completed_at"`
}

// AchievementsInfo holds a player's completed achievements and the progress
// counters for the rest. A key present in the completed list is never
// re-incremented or re-awarded.
type AchievementsInfo struct {
	Completed []CompletedAchievement `json:"completed"`
	Progress  map[string]int         `json:"progress"`
}

// IsCompleted reports whether the achievement key has been awarded.
func (ai *AchievementsInfo) IsCompleted(key string) bool {
	for _, c := range ai.Completed {
		if c.Name == key {
			return true
		}
	}
	return false
}

// CompletedAt returns the completion record for the key.
func (ai *AchievementsInfo) CompletedAt(key string) (time.Time, bool) {
	for _, c := range ai.Completed {
		if c.Name == key {
			return c.CompletedAt, true
		}
	}
	return time.Time{}, false
}

// Complete marks the key awarded at the given time. It is idempotent: a key
// already in the completed list keeps its original timestamp.
func (ai *AchievementsInfo) Complete(key string, now time.Time) bool {
	if ai.IsCompleted(key) {
		return false
	}
	ai.Completed = append(ai.Completed, CompletedAchievement{Name: key, CompletedAt: now})
	return true
}

// IncrProgress increases the progress counter for the key. It is a no-op
// once the achievement is completed, preventing unbounded counter growth
// after completion.
func (ai *AchievementsInfo) IncrProgress(key string, quantity int) {
	if ai.IsCompleted(key) {
		return
	}
	if ai.Progress == nil {
		ai.Progress = make(map[string]int)
	}
	ai.Progress[key] += quantity
}

// ProgressOf returns the current counter for the key.
func (ai *AchievementsInfo) ProgressOf(key string) int {
	return ai.Progress[key]
}
