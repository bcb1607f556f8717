package port

import (
	"context"

	"mesa-pacing/internal/core/domain"
)

// CampaignStore is the read side of the external campaign store that the
// registry refreshes from. MarkCompleted persists the terminal transition
// the engine derives from an exhausted budget or a passed end date.
type CampaignStore interface {
	// ListCampaigns returns every published (non-draft) campaign together
	// with its creatives, deleted ones included so historical records stay
	// addressable.
	ListCampaigns(ctx context.Context) ([]domain.Campaign, error)
	// MarkCompleted moves the campaign to the completed status. Campaigns
	// already completed are left unchanged and unknown ids are not an error.
	MarkCompleted(ctx context.Context, campaignID int64) error
}
