package domain

import "time"

// Creative is one variant of a campaign's advertisement. Weight is relative
// to the sibling creatives of the same campaign.
type Creative struct {
	ID         int64      `json:"id"`
	CampaignID int64      `json:"campaign_id"`
	Weight     int        `json:"weight"`
	Format     string     `json:"format,omitempty"` // e.g. "image/png 640x240"
	DeletedAt  *time.Time `json:"deleted_at,omitempty"`
}

// Active reports whether the creative may still be selected.
func (c Creative) Active() bool {
	return c.DeletedAt == nil
}
