package common

import "math/rand/v2"

// Rand is the random source consumed by the pattern generators.
type Rand interface {
	Float64() float64
	NormFloat64() float64
}

// NewRand returns a PCG-backed source; the same seed replays the same run.
func NewRand(seed uint64) Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
