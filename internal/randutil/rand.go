// Package randutil picks the secret numbers for each round.
package randutil

import (
	rand "math/rand/v2"
)

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a *rand.Rand seeded deterministically from seed.
// A zero seed means "not set" and yields an unpredictable generator.
func New(seed int64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// splitmix64 finalizer, spreads nearby seeds apart
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

// Targets draws integers uniformly from an inclusive range
type Targets struct {
	rng      *rand.Rand
	min, max int
}

// NewTargets creates a target source over [lo, hi]. The bounds are swapped
// if given in the wrong order.
func NewTargets(rng *rand.Rand, lo, hi int) *Targets {
	if lo > hi {
		lo, hi = hi, lo
	}
	return &Targets{rng: rng, min: lo, max: hi}
}

// Target returns the next secret number
func (t *Targets) Target() int {
	return t.min + t.rng.IntN(t.max-t.min+1)
}
