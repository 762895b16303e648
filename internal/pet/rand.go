package pet

import "math/rand/v2"

// Rand is the source of randomness for task IDs and event selection.
type Rand interface {
	// IntN returns a value in [0, n). n is always positive.
	IntN(n int) int
}

// NewRand returns a Rand backed by the runtime's seeded generator.
func NewRand() Rand {
	return runtimeRand{}
}

type runtimeRand struct{}

func (runtimeRand) IntN(n int) int { return rand.IntN(n) }
