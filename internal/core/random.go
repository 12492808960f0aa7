package core

import (
	"math/rand"
	"time"
)

// NewRand returns a random source for the given seed.
// A zero seed uses the current time.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Shuffle randomizes the order of items in place.
func Shuffle[T any](rng *rand.Rand, items []T) {
	rng.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
}

// RandomInRange returns a uniform value in [low, high).
// Returns low when the range is empty.
func RandomInRange(rng *rand.Rand, low, high float64) float64 {
	if high <= low {
		return low
	}
	return low + rng.Float64()*(high-low)
}
