package sketch

import (
	"math"
	"math/rand/v2"
)

// seedStream is mixed into the second PCG state word so that a single
// integer seed fills both words.
const seedStream = 0x9e3779b97f4a7c15

// Random is a seeded source of uniform random values.
//
// The same seed driven through the same sequence of calls always yields the
// same values. Random is not safe for concurrent use; share it between
// goroutines only behind a mutex.
type Random struct {
	src *rand.PCG
	rng *rand.Rand
}

// NewRandom returns a Random seeded with seed.
func NewRandom(seed uint64) *Random {
	src := rand.NewPCG(seed, seed^seedStream)
	return &Random{src: src, rng: rand.New(src)}
}

// Reseed replaces the generator state. Subsequent values depend only on the
// new seed and the order of calls.
func (r *Random) Reseed(seed uint64) {
	r.src.Seed(seed, seed^seedStream)
}

// Float returns a uniform value in [lo, hi).
//
// lo must not exceed hi. Reversed bounds are not normalised the way [Clamp]
// normalises them: the value is drawn from (hi, lo] instead.
func (r *Random) Float(lo, hi float64) float64 {
	v := lo + r.rng.Float64()*(hi-lo)
	if v == hi && lo != hi {
		// Rounding reached the open end.
		return math.Nextafter(hi, lo)
	}
	return v
}

// Int returns a uniform value in [lo, hi). It returns lo when lo == hi and
// panics when lo > hi.
func (r *Random) Int(lo, hi int) int {
	if lo == hi {
		return lo
	}
	return lo + r.rng.IntN(hi-lo)
}

// Bool returns true with probability one half.
func (r *Random) Bool() bool {
	return r.WeightedBool(0.5)
}

// WeightedBool returns true with probability weight. It consumes exactly one
// Float draw.
func (r *Random) WeightedBool(weight float64) bool {
	return r.Float(0, 1) < weight
}
