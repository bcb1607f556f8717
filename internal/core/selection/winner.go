package selection

import (
	"mesa-pacing/internal/core/pacing"
	"mesa-pacing/internal/random"
)

// PickWinner chooses among scored candidates: the highest score wins, and
// candidates within epsilon of it share the win with probability
// proportional to their campaign weight. It returns false for an empty set.
func PickWinner(scored []pacing.Scored, epsilon float64, rnd random.Source) (pacing.Scored, bool) {
	top := pacing.Top(scored, epsilon)
	switch len(top) {
	case 0:
		return pacing.Scored{}, false
	case 1:
		return top[0], true
	}
	weights := make([]int64, len(top))
	for i, s := range top {
		weights[i] = int64(s.Weight)
	}
	return top[WeightedIndex(weights, rnd)], true
}
