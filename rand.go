package unitinterval

import (
	"math/rand/v2"
)

// mantissa returns the number of significand bits of T, including the
// implicit leading bit: 24 for float32, 53 for float64.
func mantissa[T Float]() uint {
	x := T(1 << 24)
	if T(x+1) == x {
		return 24
	}
	return 53
}

// sample draws k uniformly from [0, 2^p] and returns k / 2^p,
// where p is the significand size of T.
// Both k and 2^p are exactly representable in T, so the division is exact,
// and since 0 <= k <= 2^p the result is within [0, 1] with both ends reachable.
func sample[T Float](r *rand.Rand) UnitInterval[T] {
	n := uint64(1) << mantissa[T]()
	k := r.Uint64N(n + 1)
	return trusted(T(k) / T(n))
}

// Rand returns a unit interval value drawn uniformly from the closed
// interval [0, 1] using src.
// Unlike [rand.Float64], 1 is a possible result.
//
// The safety of src for concurrent use is up to the caller.
// Use [Sampler] for repeated draws from the same source.
func Rand[T Float](src rand.Source) UnitInterval[T] {
	return sample[T](rand.New(src))
}

// Sampler draws unit interval values uniformly from [0, 1].
// A Sampler is not safe for concurrent use unless its source is.
type Sampler[T Float] struct {
	r *rand.Rand
}

// NewSampler returns a sampler that draws from src.
func NewSampler[T Float](src rand.Source) *Sampler[T] {
	return &Sampler[T]{r: rand.New(src)}
}

// Next returns the next sample.
func (s *Sampler[T]) Next() UnitInterval[T] {
	return sample[T](s.r)
}
