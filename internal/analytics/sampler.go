package analytics

import "math/rand"

// Sampler picks up to n items from a candidate list. Production code
// uses the process-wide random source; tests inject a deterministic
// implementation so set-membership invariants can be asserted without
// fighting non-determinism.
type Sampler interface {
	Sample(items []string, n int) []string
}

// RandSampler samples uniformly at random without replacement.
type RandSampler struct{}

// NewRandSampler returns a sampler backed by the shared math/rand source.
func NewRandSampler() RandSampler {
	return RandSampler{}
}

// Sample returns n items chosen without replacement, or all items in
// their original order when fewer than n exist.
func (RandSampler) Sample(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	out := make([]string, 0, n)
	for _, i := range rand.Perm(len(items))[:n] {
		out = append(out, items[i])
	}
	return out
}

// FirstNSampler deterministically returns the first n items. It exists
// for tests and reproducible runs.
type FirstNSampler struct{}

// Sample returns the first n items in order.
func (FirstNSampler) Sample(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
