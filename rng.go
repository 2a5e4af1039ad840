// rng
package exhibition

import (
	"time"
)

// Randomizer supplies all of the simulation's randomness. Every actor
// owns its own Randomizer, so implementations do not need to be safe
// for concurrent use. Tests substitute scripted implementations to
// force race and resignation outcomes.
type Randomizer interface {
	// Duration draws a duration from the inclusive range [min, max].
	Duration(min, max time.Duration) time.Duration
	// Chance reports true with probability p.
	Chance(p float64) bool
}

// xorshift generator
type xorRand struct {
	state uint64
}

// NewRandomizer creates the default seedable Randomizer. A zero seed
// falls back to the wall clock.
func NewRandomizer(seed uint64) Randomizer {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &xorRand{state: seed}
}

func (r *xorRand) next() uint32 {
	r.state ^= r.state << 13
	r.state ^= r.state >> 17
	r.state ^= r.state << 5
	return uint32(r.state)
}

func (r *xorRand) nextFloat() float64 {
	return float64(r.next()) / float64(^uint32(0))
}

func (r *xorRand) Duration(min, max time.Duration) time.Duration {
	if max <= min {
		return min
	}
	span := uint64(max-min) + 1
	return min + time.Duration(uint64(r.next())%span)
}

func (r *xorRand) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return r.nextFloat() < p
}
