package sim

import "math/rand"

// NewSource returns a seeded Source for live runs.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}
