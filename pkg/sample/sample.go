package sample

import "github.com/leforge/fakekit/pkg/rng"

// PickOptions configures PickMultiple.
type PickOptions struct {
	// WithReplacement allows duplicate elements in the result. The default
	// (false) samples uniquely via a full shuffle, capping the result at
	// the input length.
	WithReplacement bool
}

// Pick returns a uniformly selected element of items. The second return
// value is false when items is empty.
func Pick[T any](r *rng.Rand, items []T) (T, bool) {
	return rng.Pick(r, items)
}

// PickMultiple returns count elements sampled from items. Without
// replacement the result holds min(count, len(items)) distinct elements in
// shuffle order; with replacement it holds exactly count independently drawn
// elements, duplicates possible. An empty input or non-positive count yields
// nil.
func PickMultiple[T any](r *rng.Rand, items []T, count int, opts *PickOptions) []T {
	if len(items) == 0 || count <= 0 {
		return nil
	}

	if opts != nil && opts.WithReplacement {
		out := make([]T, count)
		for i := range out {
			out[i], _ = rng.Pick(r, items)
		}
		return out
	}

	shuffled := rng.Shuffle(r, items)
	if count > len(shuffled) {
		count = len(shuffled)
	}
	return shuffled[:count]
}
