// Package rng is a small deterministic xorshift32 generator. It is a value
// type: every draw returns the next generator state alongside the result, so
// callers thread the state through explicitly and identical seeds replay
// identical sequences on every platform.
package rng

import (
	"errors"
	"math"
)

// ErrZeroSeed is returned by Seeded for a zero seed, which xorshift cannot leave
var ErrZeroSeed = errors.New("rng: seed must be non-zero")

// Random is a xorshift32 generator state
type Random struct {
	state uint32
}

// New creates a generator from a non-zero seed. It panics on a zero seed.
func New(seed uint32) Random {
	r, err := Seeded(seed)
	if err != nil {
		panic(err)
	}
	return r
}

// Seeded creates a generator from a seed, returning ErrZeroSeed for zero
func Seeded(seed uint32) (Random, error) {
	if seed == 0 {
		return Random{}, ErrZeroSeed
	}
	r := Random{state: seed}
	// The first state is discarded so nearby seeds diverge immediately.
	_, r = r.NextState()
	return r, nil
}

// State returns the raw generator state
func (r Random) State() uint32 {
	return r.state
}

// NextState advances the generator and returns the state before the step
func (r Random) NextState() (uint32, Random) {
	t := r.state
	r.state ^= r.state << 13
	r.state ^= r.state >> 17
	r.state ^= r.state << 5
	return t, r
}

// NextFloat returns a float in [0, 1)
func (r Random) NextFloat() (float32, Random) {
	s, r := r.NextState()
	return math.Float32frombits(0x3f800000|(s>>9)) - 1, r
}

// NextInt returns an int in [0, max). max must be positive.
func (r Random) NextInt(max int) (int, Random) {
	if max <= 0 {
		panic("rng: NextInt max must be positive")
	}
	s, r := r.NextState()
	return int((uint64(s) * uint64(uint32(max))) >> 32), r
}

// NextIntRange returns an int in [min, max). max must be greater than min.
func (r Random) NextIntRange(min, max int) (int, Random) {
	if max <= min {
		panic("rng: NextIntRange requires min < max")
	}
	s, r := r.NextState()
	return int((uint64(s)*uint64(uint32(max-min)))>>32) + min, r
}
