package utils

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Rand wraps a seeded math/rand/v2 source with locking so services can
// share one injectable source across goroutines. Game logic randomness,
// not security critical.
type Rand struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewRand creates a locked source from the given seed.
func NewRand(seed int64) *Rand {
	return &Rand{r: rand.New(rand.NewPCG(uint64(seed), uint64(seed)))}
}

// NewTimeSeededRand creates a locked source seeded from the clock.
func NewTimeSeededRand() *Rand {
	return NewRand(time.Now().UnixNano())
}

// Intn returns a random int in [0, n).
func (r *Rand) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.r.IntN(n)
}

// IntBetween returns a random int in [min, max].
func (r *Rand) IntBetween(min, max int) int {
	if min >= max {
		return min
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.r.IntN(max-min+1) + min
}

// Float64 returns a random float64 in [0.0, 1.0).
func (r *Rand) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.r.Float64()
}

// FloatBetween returns a random float64 in [min, max).
func (r *Rand) FloatBetween(min, max float64) float64 {
	if min >= max {
		return min
	}
	return min + r.Float64()*(max-min)
}

// DurationBetween returns a random duration in [min, max].
func (r *Rand) DurationBetween(min, max time.Duration) time.Duration {
	if min >= max {
		return min
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return min + time.Duration(r.r.Int64N(int64(max-min)+1))
}
