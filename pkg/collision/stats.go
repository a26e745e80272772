package collision

import "math"

// ExpectedCollisions estimates how many distinct values appear at least twice
// when n values are drawn uniformly from m buckets.
func ExpectedCollisions(n, m uint64) float64 {
	if n < 2 || m == 0 {
		return 0
	}
	fn, fm := float64(n), float64(m)

	l := math.Log1p(-1 / fm)
	empty := math.Exp(fn * l)
	single := fn / fm * math.Exp((fn-1)*l)

	e := fm * (1 - empty - single)
	if e < 0 {
		return 0
	}
	return e
}
