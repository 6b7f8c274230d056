// Package randx provides the random source the sketches sample from.
// Simulations take a Rand instead of calling math/rand directly so tests can
// supply fixed sequences.
package randx

import (
	"math/rand"
	"time"
)

// Rand is the subset of rand.Rand the sketches use.
type Rand interface {
	// Float64 returns a pseudo-random number in the half-open interval [0.0,1.0).
	Float64() float64
}

// New returns a rand.Rand seeded with seed, or with the current time when seed is 0.
func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Range returns a value in [lo, hi) drawn from r, like p5's random(lo, hi).
func Range(r Rand, lo, hi float32) float32 {
	return lo + float32(r.Float64())*(hi-lo)
}

// Sequence replays fixed values in order and wraps around. It is meant for tests.
type Sequence struct {
	Values []float64
	next   int
}

// Float64 returns the next value of the sequence, or 0 when empty.
func (s *Sequence) Float64() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.next%len(s.Values)]
	s.next++
	return v
}
