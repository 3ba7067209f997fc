package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAchievementKey(t *testing.T) {
	a := &AchievementDef{Name: "друзья навеки"}
	assert.Equal(t, "друзья-навеки", a.Key())

	b := &AchievementDef{Name: "бродяга"}
	assert.Equal(t, "бродяга", b.Key())
}

func TestAchievementsCompleteIdempotent(t *testing.T) {
	ai := &AchievementsInfo{}
	first := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	require.True(t, ai.Complete("бродяга", first))
	require.False(t, ai.Complete("бродяга", first.Add(time.Hour)))

	at, ok := ai.CompletedAt("бродяга")
	require.True(t, ok)
	assert.Equal(t, first, at, "original completion timestamp is kept")
	assert.Len(t, ai.Completed, 1)
}

func TestAchievementsProgressStopsAfterCompletion(t *testing.T) {
	ai := &AchievementsInfo{}

	ai.IncrProgress("работяга", 3)
	ai.IncrProgress("работяга", 2)
	assert.Equal(t, 5, ai.ProgressOf("работяга"))

	ai.Complete("работяга", time.Now())
	ai.IncrProgress("работяга", 10)
	assert.Equal(t, 5, ai.ProgressOf("работяга"), "counter frozen after completion")
}

func TestQuestIsDone(t *testing.T) {
	q := &Quest{NeededItems: map[string]int{"вода": 3, "гриб": 1}}

	inv := &Inventory{}
	assert.False(t, q.IsDone(inv))

	inv.Add(testWater, 3, 0)
	assert.False(t, q.IsDone(inv), "missing second item")

	inv.Add(&ItemDef{Name: "гриб", Type: TypeStackable}, 1, 0)
	assert.True(t, q.IsDone(inv))

	inv.Items[0].Quantity = 2
	assert.False(t, q.IsDone(inv), "short on quantity")
}
