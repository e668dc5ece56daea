package util

import "math/rand/v2"

// Pick returns one element of items chosen uniformly at random.
// A nil r draws from the process-wide source. items must not be empty.
func Pick[T any](r *rand.Rand, items []T) T {
	return items[Intn(r, len(items))]
}

// Intn returns a uniform int in [0, n) from r, or from the process-wide
// source when r is nil.
func Intn(r *rand.Rand, n int) int {
	if r == nil {
		return rand.IntN(n)
	}
	return r.IntN(n)
}
