package selection

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mesa-pacing/internal/core/domain"
	"mesa-pacing/internal/core/port/mocks"
)

var now = time.Date(2026, 4, 15, 9, 30, 0, 0, time.UTC)

type lookup map[int64]*domain.Campaign

func (l lookup) Campaign(id int64) (*domain.Campaign, bool) {
	c, ok := l[id]
	return c, ok
}

func eligibleCampaign(id int64) *domain.Campaign {
	return &domain.Campaign{
		ID:               id,
		StartDate:        now.AddDate(0, 0, -1),
		EndDate:          now.AddDate(0, 0, 1),
		LimitImpressions: 10,
		Weight:           10,
		ConsecutiveCap:   2,
		Status:           domain.StatusActive,
		Surfaces:         []domain.Surface{domain.SurfaceMapObject},
		Creatives:        []domain.Creative{{ID: id, Weight: 1}},
	}
}

func ids(es []Eligible) []int64 {
	out := make([]int64, len(es))
	for i, e := range es {
		out[i] = e.Campaign.ID
	}
	return out
}

func TestFilterPredicates(t *testing.T) {
	ledger := mocks.NewMockDeliveryLedger(t)
	f := NewEligibilityFilter(ledger, nil)

	paused := eligibleCampaign(2)
	paused.Status = domain.StatusPaused
	future := eligibleCampaign(3)
	future.StartDate = now.Add(time.Hour)
	ended := eligibleCampaign(4)
	ended.EndDate = now // window is half open
	wrongSurface := eligibleCampaign(5)
	wrongSurface.Surfaces = []domain.Surface{domain.SurfacePromoBlock}
	noCreatives := eligibleCampaign(6)
	deleted := now
	noCreatives.Creatives[0].DeletedAt = &deleted
	exhausted := eligibleCampaign(7)
	capped := eligibleCampaign(8)
	notInAudience := eligibleCampaign(9)

	snap := lookup{1: eligibleCampaign(1), 2: paused, 3: future, 4: ended, 5: wrongSurface,
		6: noCreatives, 7: exhausted, 8: capped, 9: notInAudience, 10: eligibleCampaign(10)}

	ledger.EXPECT().DeliveredMany(mock.Anything, []int64{1, 7, 8, 10}).
		Return(map[int64]int64{1: 9, 7: 10, 10: 0}, nil)
	ledger.EXPECT().ViewerStreak(mock.Anything, "viewer").
		Return(domain.ViewerStreak{CampaignID: 8, Count: 2}, nil)

	req := domain.AllocationRequest{
		ViewerID:            "viewer",
		Surface:             domain.SurfaceMapObject,
		EligibleCampaignIDs: []int64{1, 2, 3, 4, 5, 6, 7, 8, 10, 10, 42},
	}
	got, err := f.Filter(context.Background(), snap, req, now)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 10}, ids(got))
	assert.Equal(t, int64(9), got[0].Delivered)
	assert.Equal(t, int64(1), got[0].Remaining())
}

// TestFilterExcludesExhausted covers an active, in-window campaign with no
// remaining impressions.
func TestFilterExcludesExhausted(t *testing.T) {
	ledger := mocks.NewMockDeliveryLedger(t)
	f := NewEligibilityFilter(ledger, nil)

	ledger.EXPECT().DeliveredMany(mock.Anything, []int64{1}).Return(map[int64]int64{1: 10}, nil)
	ledger.EXPECT().ViewerStreak(mock.Anything, "v").Return(domain.ViewerStreak{}, nil)

	got, err := f.Filter(context.Background(), lookup{1: eligibleCampaign(1)}, domain.AllocationRequest{
		ViewerID: "v", Surface: domain.SurfaceMapObject, EligibleCampaignIDs: []int64{1},
	}, now)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFilterSkipsLedgerWhenNothingPassesStaticChecks(t *testing.T) {
	ledger := mocks.NewMockDeliveryLedger(t)
	f := NewEligibilityFilter(ledger, nil)

	got, err := f.Filter(context.Background(), lookup{1: eligibleCampaign(1)}, domain.AllocationRequest{
		ViewerID: "v", Surface: domain.SurfacePromoBlock, EligibleCampaignIDs: []int64{1},
	}, now)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFilterLedgerError(t *testing.T) {
	ledger := mocks.NewMockDeliveryLedger(t)
	f := NewEligibilityFilter(ledger, nil)

	ledger.EXPECT().DeliveredMany(mock.Anything, []int64{1}).Return(map[int64]int64{}, nil)
	ledger.EXPECT().ViewerStreak(mock.Anything, "v").Return(domain.ViewerStreak{}, errors.New("timeout"))

	_, err := f.Filter(context.Background(), lookup{1: eligibleCampaign(1)}, domain.AllocationRequest{
		ViewerID: "v", Surface: domain.SurfaceMapObject, EligibleCampaignIDs: []int64{1},
	}, now)
	assert.Error(t, err)
}
