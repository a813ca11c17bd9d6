package bank

import (
	"fmt"
	"math/rand/v2"
)

// RandomSource supplies the randomness used for sampling.
// *rand.Rand from math/rand/v2 satisfies it.
type RandomSource interface {
	// IntN returns a uniform integer in [0, n).
	IntN(n int) int
}

// globalSource delegates to the math/rand/v2 top-level generator.
type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// DefaultSource returns an unseeded process-wide random source.
func DefaultSource() RandomSource {
	return globalSource{}
}

// Sample draws min(n, PoolSize(d)) distinct questions from the pool for d,
// uniformly at random without replacement. A pool smaller than n is returned
// whole in shuffled order. The pool itself is never reordered.
func (b *Bank) Sample(src RandomSource, d Difficulty, n int) ([]Question, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDifficulty, d)
	}
	if src == nil {
		src = DefaultSource()
	}

	pool := b.pools[d]
	if n > len(pool) {
		n = len(pool)
	}
	if n <= 0 {
		return []Question{}, nil
	}

	idx := make([]int, len(pool))
	for i := range idx {
		idx[i] = i
	}

	// Partial Fisher-Yates: only the first n slots need to be settled.
	out := make([]Question, n)
	for i := 0; i < n; i++ {
		j := i + src.IntN(len(idx)-i)
		idx[i], idx[j] = idx[j], idx[i]
		out[i] = pool[idx[i]]
	}
	return out, nil
}
