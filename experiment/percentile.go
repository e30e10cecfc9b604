package experiment

import (
	"math"
	"sort"
)

// percentile returns the pth percentile of values using linear interpolation
// between order statistics: the pth percentile sits at rank p/100·(n-1) and
// is interpolated between the two surrounding sorted values. Callers
// guarantee a non-empty input.
func percentile(values []float64, p float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	rank := p / 100 * float64(len(sorted)-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))

	if lo == hi {
		return sorted[lo]
	}

	return sorted[lo] + (rank-float64(lo))*(sorted[hi]-sorted[lo])
}
