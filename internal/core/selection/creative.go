package selection

import (
	"errors"

	"mesa-pacing/internal/core/domain"
	"mesa-pacing/internal/random"
)

// ErrNoActiveCreatives marks a campaign that cannot be served because all of
// its creatives are deleted or it never had any. This is a configuration
// error; such campaigns are excluded before selection.
var ErrNoActiveCreatives = errors.New("campaign has no active creatives")

// CreativeSelector rotates a campaign's creatives by weight.
type CreativeSelector struct {
	rnd random.Source
}

func NewCreativeSelector(rnd random.Source) *CreativeSelector {
	return &CreativeSelector{rnd: rnd}
}

// Select draws one of the campaign's active creatives. Weights are
// normalized at draw time and need not sum to 100; if all are zero every
// active creative is equally likely.
func (s *CreativeSelector) Select(c *domain.Campaign) (domain.Creative, error) {
	active := c.ActiveCreatives()
	if len(active) == 0 {
		return domain.Creative{}, ErrNoActiveCreatives
	}
	weights := make([]int64, len(active))
	for i, cr := range active {
		weights[i] = int64(cr.Weight)
	}
	return active[WeightedIndex(weights, s.rnd)], nil
}
