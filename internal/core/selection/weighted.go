// Package selection narrows campaigns down to the ones a request may be
// served and performs the weighted draws of the allocation path.
package selection

import "mesa-pacing/internal/random"

// WeightedIndex draws an index with probability proportional to its weight
// using a single uniform draw in [0, total). Negative weights count as
// zero. When every weight is zero the draw is uniform. It returns -1 for an
// empty slice.
func WeightedIndex(weights []int64, rnd random.Source) int {
	if len(weights) == 0 {
		return -1
	}
	var total int64
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total == 0 {
		return rnd.IntN(len(weights))
	}

	point := rnd.Float64() * float64(total)
	var cumulative int64
	last := -1
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		cumulative += w
		last = i
		if point < float64(cumulative) {
			return i
		}
	}
	// float rounding can leave point == total
	return last
}
