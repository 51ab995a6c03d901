package playlist

import "math/rand/v2"

// Shuffle returns a uniformly random permutation of items. The input is not modified.
func Shuffle[T any](items []T) []T {
	return ShuffleWith(rand.IntN, items)
}

// ShuffleWith is Shuffle with an explicit source: intN(n) must return a value in [0, n).
func ShuffleWith[T any](intN func(n int) int, items []T) []T {
	shuffled := make([]T, len(items))
	copy(shuffled, items)

	// Fisher-Yates: for i from last down to 1, pick j in [0, i].
	for i := len(shuffled) - 1; i > 0; i-- {
		j := intN(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}
