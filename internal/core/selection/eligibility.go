package selection

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"mesa-pacing/internal/core/domain"
	"mesa-pacing/internal/core/port"
)

// CampaignLookup resolves campaign ids against a registry snapshot.
type CampaignLookup interface {
	Campaign(id int64) (*domain.Campaign, bool)
}

// Eligible is a campaign that passed every eligibility check together with
// the delivered count observed while filtering.
type Eligible struct {
	Campaign  *domain.Campaign
	Delivered int64
}

// Remaining returns the impressions left in the campaign's budget.
func (e Eligible) Remaining() int64 {
	if r := e.Campaign.LimitImpressions - e.Delivered; r > 0 {
		return r
	}
	return 0
}

// EligibilityFilter keeps the campaigns a request may be served. A campaign
// is eligible when all of the following hold: it is active, now is inside
// its window, it supports the surface, the caller listed it as audience
// eligible, it has at least one active creative, budget remains and the
// viewer's consecutive count is below its cap.
type EligibilityFilter struct {
	ledger port.DeliveryLedger
	logger *slog.Logger
}

func NewEligibilityFilter(ledger port.DeliveryLedger, logger *slog.Logger) *EligibilityFilter {
	if logger == nil {
		logger = slog.Default()
	}
	return &EligibilityFilter{ledger: ledger, logger: logger}
}

// Filter evaluates the request against the snapshot. Static checks run
// first; the ledger is consulted once for counters and once for the
// viewer's streak, and only when some campaign survives the static checks.
// Ledger errors are returned to the caller.
func (f *EligibilityFilter) Filter(ctx context.Context, snap CampaignLookup, req domain.AllocationRequest, now time.Time) ([]Eligible, error) {
	seen := make(map[int64]struct{}, len(req.EligibleCampaignIDs))
	static := make([]*domain.Campaign, 0, len(req.EligibleCampaignIDs))
	for _, id := range req.EligibleCampaignIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		c, ok := snap.Campaign(id)
		if !ok {
			continue
		}
		if c.Status != domain.StatusActive || !c.InWindow(now) || !c.SupportsSurface(req.Surface) {
			continue
		}
		if len(c.ActiveCreatives()) == 0 {
			f.logger.Warn("campaign excluded: configuration error",
				slog.Int64("campaign_id", c.ID),
				slog.Any("error", ErrNoActiveCreatives),
			)
			continue
		}
		static = append(static, c)
	}
	if len(static) == 0 {
		return nil, nil
	}

	ids := make([]int64, len(static))
	for i, c := range static {
		ids[i] = c.ID
	}
	delivered, err := f.ledger.DeliveredMany(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("read delivery counters: %w", err)
	}
	streak, err := f.ledger.ViewerStreak(ctx, req.ViewerID)
	if err != nil {
		return nil, fmt.Errorf("read viewer streak: %w", err)
	}

	out := make([]Eligible, 0, len(static))
	for _, c := range static {
		e := Eligible{Campaign: c, Delivered: delivered[c.ID]}
		if e.Remaining() == 0 {
			continue
		}
		if streak.CountFor(c.ID) >= c.ConsecutiveCap {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}
