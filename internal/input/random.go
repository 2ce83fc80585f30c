package input

import "math/rand"

const (
	DefaultLength = 10
	DefaultMin    = 1
	DefaultMax    = 100
)

// Random returns n values drawn uniformly from [lo, hi].
func Random(rng *rand.Rand, n, lo, hi int) []int {
	if hi < lo {
		lo, hi = hi, lo
	}
	values := make([]int, max(n, 0))
	for i := range values {
		values[i] = lo + rng.Intn(hi-lo+1)
	}
	return values
}
