package matchmaking

import (
	"math/rand"
	"sync"
)

// Option configures a planner.
type Option func(*planner)

// WithJitter replaces the default random tie-breaker.
func WithJitter(j Jitter) Option {
	return func(p *planner) {
		if j != nil {
			p.jitter = j
		}
	}
}

// WithGroupPattern replaces the default court layout per slot.
func WithGroupPattern(g GroupPattern) Option {
	return func(p *planner) {
		if g != nil {
			p.groups = g
		}
	}
}

// RandomJitter draws from rng in [0, MaxJitter). A seeded rng makes plans
// reproducible.
func RandomJitter(rng *rand.Rand) Jitter {
	var mu sync.Mutex
	return func() float64 {
		mu.Lock()
		defer mu.Unlock()
		return rng.Float64() * MaxJitter
	}
}

// NoJitter disables tie-breaking noise; the first cheapest candidate wins.
func NoJitter() float64 {
	return 0
}

// AlternatingGroups is the club's court layout: two doubles courts and one
// singles court on even slots, one doubles and two singles on odd slots.
func AlternatingGroups(slotIndex int) []int {
	if slotIndex%2 == 0 {
		return []int{4, 4, 2}
	}
	return []int{4, 2, 2}
}
