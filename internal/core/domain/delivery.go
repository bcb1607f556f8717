package domain

import "time"

// DeliveryCounter is the number of impressions delivered for a campaign.
// Delivered never exceeds the campaign's LimitImpressions.
type DeliveryCounter struct {
	CampaignID int64 `json:"campaign_id"`
	Delivered  int64 `json:"delivered"`
}

// ViewerStreak is a viewer's delivery history as far as consecutive caps
// are concerned: the last campaign delivered and how many times in a row.
// Any other campaign has an implicit streak of zero.
type ViewerStreak struct {
	CampaignID int64
	Count      int
	UpdatedAt  time.Time
}

// CountFor returns the consecutive deliveries of campaignID to the viewer.
func (s ViewerStreak) CountFor(campaignID int64) int {
	if s.CampaignID != campaignID {
		return 0
	}
	return s.Count
}

// Next returns the streak after campaignID is delivered at now.
func (s ViewerStreak) Next(campaignID int64, now time.Time) ViewerStreak {
	if s.CampaignID == campaignID {
		return ViewerStreak{CampaignID: campaignID, Count: s.Count + 1, UpdatedAt: now}
	}
	return ViewerStreak{CampaignID: campaignID, Count: 1, UpdatedAt: now}
}
