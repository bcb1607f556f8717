package port

import (
	"context"
	"time"

	"mesa-pacing/internal/core/domain"
)

// DeliveryLedger defines the persistence layer for delivery counters and
// viewer streaks. It is an outbound port in hexagonal architecture.
// Implementations must be concurrency-safe and IncrementIfUnderBudget
// must be a single atomic compare-and-increment.
type DeliveryLedger interface {
	// IncrementIfUnderBudget adds one delivery to the campaign's counter if
	// the counter is below limit. It returns false, nil when the budget is
	// exhausted; the counter is left untouched in that case.
	IncrementIfUnderBudget(ctx context.Context, campaignID, limit int64) (bool, error)
	// Delivered returns the delivered count of a campaign; zero for unknown
	// campaigns.
	Delivered(ctx context.Context, campaignID int64) (int64, error)
	// DeliveredMany returns delivered counts keyed by campaign id. Campaigns
	// without a counter are absent from the map.
	DeliveredMany(ctx context.Context, campaignIDs []int64) (map[int64]int64, error)
	// ViewerStreak returns the viewer's current streak. A viewer with no
	// history yields the zero ViewerStreak.
	ViewerStreak(ctx context.Context, viewerID string) (domain.ViewerStreak, error)
	// RecordDelivery extends the viewer's streak when campaignID matches the
	// previous delivery and otherwise starts a new streak of one, which
	// resets every other campaign's consecutive count for the viewer.
	RecordDelivery(ctx context.Context, viewerID string, campaignID int64, at time.Time) error
	// PruneViewers drops viewer streaks not updated since before. It returns
	// the number of viewers removed.
	PruneViewers(ctx context.Context, before time.Time) (int64, error)
}
