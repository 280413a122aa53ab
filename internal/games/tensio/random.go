package tensio

import "math/rand"

// Rand is the random source used for spawning. Tests can supply a stub.
type Rand interface {
	Float64() float64 // uniform in [0, 1)
	Intn(n int) int   // uniform in [0, n)
}

// NewRand returns a seeded pseudo-random source.
func NewRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}

// uniform draws from [lo, hi).
func uniform(rng Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
