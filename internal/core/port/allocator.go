package port

import (
	"context"
	"errors"

	"mesa-pacing/internal/core/domain"
)

// ErrCampaignNotFound is returned for campaigns the registry does not know.
var ErrCampaignNotFound = errors.New("campaign not found")

// Allocator defines the operations exposed by the allocation engine. This
// interface represents the primary port into the application domain.
type Allocator interface {
	// Allocate decides which campaign and creative to deliver for the
	// request and commits the delivery. A request nobody can be served to
	// yields an OutcomeFallback result, not an error. The error is non-nil
	// only for malformed requests (domain.ErrInvalidRequest).
	Allocate(ctx context.Context, req domain.AllocationRequest) (domain.AllocationResult, error)

	// OnCampaignUpdate applies a campaign created, edited or transitioned
	// by the campaign editor. It is safe to call concurrently with
	// Allocate. Invalid configurations wrap domain.ErrInvalidCampaign and
	// lifecycle violations wrap domain.ErrIllegalTransition.
	OnCampaignUpdate(ctx context.Context, campaign domain.Campaign) error

	// Delivery returns the delivery counter and current pacing figures of
	// a campaign known to the registry.
	Delivery(ctx context.Context, campaignID int64) (*DeliveryReport, error)
}

// DeliveryReport is a DTO consumed by dashboards reading counters.
type DeliveryReport struct {
	CampaignID       int64         `json:"campaign_id"`
	Status           domain.Status `json:"status"`
	Delivered        int64         `json:"delivered"`
	LimitImpressions int64         `json:"limit_impressions"`
	Remaining        int64         `json:"remaining"`
	RemainingDays    int64         `json:"remaining_days"`
	TargetRate       float64       `json:"target_rate"`
}
