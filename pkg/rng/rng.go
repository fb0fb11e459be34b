// Package rng implements the deterministic pseudo-random source that every
// fakekit generator draws from.
//
// The generator is a 31-bit linear congruential generator. It is intentionally
// not cryptographic and intentionally not math/rand: the whole contract of
// fakekit is that a seed reproduces the exact same output sequence forever,
// across platforms and releases, which rules out sources whose stepping is an
// implementation detail.
//
// A Rand is not safe for concurrent use. Callers that need reproducible
// output from multiple goroutines must give each goroutine its own Rand
// constructed from an explicit seed.
package rng

import "time"

// LCG parameters. Changing any of these breaks seed compatibility with every
// previously recorded sequence.
const (
	multiplier = 1103515245
	increment  = 12345
	mask       = 0x7fffffff
)

// Rand is a seedable deterministic random source.
type Rand struct {
	seed int64
}

// New returns a Rand whose entire output sequence is determined by seed.
func New(seed int64) *Rand {
	return &Rand{seed: seed}
}

// NewTimeSeeded returns a Rand seeded from the current wall clock. Two
// time-seeded instances created in quick succession may still collide; use
// New with an explicit seed whenever reproducibility matters.
func NewTimeSeeded() *Rand {
	return New(time.Now().UnixNano())
}

// Seed resets the internal state, restarting the sequence as if the Rand had
// been freshly constructed with the given seed.
func (r *Rand) Seed(seed int64) {
	r.seed = seed
}

// Float64 advances the generator and returns the next value in [0, 1).
func (r *Rand) Float64() float64 {
	r.seed = (r.seed*multiplier + increment) & mask
	return float64(r.seed) / float64(mask)
}

// IntRange returns an integer in the inclusive range [min, max].
// If min > max it returns min.
func (r *Rand) IntRange(min, max int) int {
	if min > max {
		return min
	}
	n := int(r.Float64()*float64(max-min+1)) + min
	// Float64 reaches 1.0 exactly when the state lands on the mask value.
	if n > max {
		n = max
	}
	return n
}

// Byte returns a uniformly drawn byte.
func (r *Rand) Byte() byte {
	return byte(r.IntRange(0, 255))
}

// Read fills p with deterministic pseudo-random bytes. It never fails, which
// lets a Rand stand in wherever an io.Reader entropy source is expected
// (e.g. uuid.NewRandomFromReader).
func (r *Rand) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = r.Byte()
	}
	return len(p), nil
}

// Pick returns a uniformly selected element of list. The second return value
// is false when list is empty, in which case the first is the zero value.
func Pick[T any](r *Rand, list []T) (T, bool) {
	var zero T
	if len(list) == 0 {
		return zero, false
	}
	return list[r.IntRange(0, len(list)-1)], true
}

// Shuffle returns a new slice holding a Fisher-Yates permutation of list.
// The input is never mutated. Indices are visited from last to first, each
// swapped with a uniformly chosen index at or below it.
func Shuffle[T any](r *Rand, list []T) []T {
	out := make([]T, len(list))
	copy(out, list)
	for i := len(out) - 1; i > 0; i-- {
		j := r.IntRange(0, i)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
