package domain

import "math/rand/v2"

// RandomSource supplies uniform integers in [0, n). *rand.Rand from math/rand/v2
// satisfies it, which lets tests inject a seeded generator.
type RandomSource interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// DefaultRandom is safe for concurrent use and is independently seeded per process.
var DefaultRandom RandomSource = globalSource{}

// Shuffle returns a uniformly permuted copy of items (Fisher-Yates). The input is not modified.
func Shuffle[T any](rnd RandomSource, items []T) []T {
	shuffled := make([]T, len(items))
	copy(shuffled, items)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := rnd.IntN(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}
