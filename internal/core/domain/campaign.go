package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidCampaign is returned when a campaign configuration cannot be
	// served: a non-positive budget or cap, an out of range weight, an empty
	// window or a creative with a negative weight.
	ErrInvalidCampaign = errors.New("invalid campaign")
	// ErrIllegalTransition is returned when a status change violates the
	// campaign lifecycle, e.g. reactivating a completed campaign.
	ErrIllegalTransition = errors.New("illegal status transition")
)

// Status is the lifecycle state of a campaign.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusActive    Status = "active"
	StatusPaused    Status = "paused"
	StatusCompleted Status = "completed"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusActive, StatusPaused, StatusCompleted:
		return true
	}
	return false
}

// CanTransition reports whether a campaign in status s may move to next.
// Drafts are published to active (or paused). Active and paused cycle
// freely and may complete. Completed is terminal. Re-sending the current
// status is always allowed so that edits without a status change pass.
func (s Status) CanTransition(next Status) bool {
	if s == next {
		return true
	}
	switch s {
	case StatusDraft:
		return next == StatusActive || next == StatusPaused || next == StatusCompleted
	case StatusActive:
		return next == StatusPaused || next == StatusCompleted
	case StatusPaused:
		return next == StatusActive || next == StatusCompleted
	}
	return false
}

// Surface identifies where an ad is rendered.
type Surface string

const (
	SurfacePromoBlock Surface = "promo_block"
	SurfaceMapObject  Surface = "map_object"
)

// Valid reports whether s is a known surface.
func (s Surface) Valid() bool {
	return s == SurfacePromoBlock || s == SurfaceMapObject
}

// Campaign represents an advertising campaign as configured by the
// campaign editor. The window is half open: [StartDate, EndDate).
type Campaign struct {
	ID               int64      `json:"id"`
	Name             string     `json:"name"`
	StartDate        time.Time  `json:"start_date"`
	EndDate          time.Time  `json:"end_date"`
	LimitImpressions int64      `json:"limit_impressions"`
	Weight           int        `json:"weight"`          // 1..100
	ConsecutiveCap   int        `json:"consecutive_cap"` // max back-to-back deliveries per viewer
	Status           Status     `json:"status"`
	Surfaces         []Surface  `json:"surfaces"`
	Audience         string     `json:"audience,omitempty"` // opaque, evaluated by audience targeting
	Creatives        []Creative `json:"creatives"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// SupportsSurface reports whether the campaign may be shown on s.
func (c *Campaign) SupportsSurface(s Surface) bool {
	for _, v := range c.Surfaces {
		if v == s {
			return true
		}
	}
	return false
}

// InWindow reports whether now falls inside [StartDate, EndDate).
func (c *Campaign) InWindow(now time.Time) bool {
	return !now.Before(c.StartDate) && now.Before(c.EndDate)
}

// ActiveCreatives returns the creatives that have not been deleted, in
// their configured order.
func (c *Campaign) ActiveCreatives() []Creative {
	out := make([]Creative, 0, len(c.Creatives))
	for _, cr := range c.Creatives {
		if cr.Active() {
			out = append(out, cr)
		}
	}
	return out
}

// Validate checks the static configuration of the campaign. The returned
// error wraps ErrInvalidCampaign.
func (c *Campaign) Validate() error {
	switch {
	case c.ID <= 0:
		return fmt.Errorf("%w: id must be positive", ErrInvalidCampaign)
	case c.LimitImpressions <= 0:
		return fmt.Errorf("%w: limit_impressions must be positive", ErrInvalidCampaign)
	case c.Weight < 1 || c.Weight > 100:
		return fmt.Errorf("%w: weight %d out of range 1..100", ErrInvalidCampaign, c.Weight)
	case c.ConsecutiveCap <= 0:
		return fmt.Errorf("%w: consecutive_cap must be positive", ErrInvalidCampaign)
	case !c.Status.Valid():
		return fmt.Errorf("%w: unknown status %q", ErrInvalidCampaign, c.Status)
	case !c.EndDate.After(c.StartDate):
		return fmt.Errorf("%w: end_date must be after start_date", ErrInvalidCampaign)
	case len(c.Surfaces) == 0:
		return fmt.Errorf("%w: no surfaces", ErrInvalidCampaign)
	}
	for _, s := range c.Surfaces {
		if !s.Valid() {
			return fmt.Errorf("%w: unknown surface %q", ErrInvalidCampaign, s)
		}
	}
	for _, cr := range c.Creatives {
		if cr.Weight < 0 {
			return fmt.Errorf("%w: creative %d has negative weight", ErrInvalidCampaign, cr.ID)
		}
		if cr.CampaignID != 0 && cr.CampaignID != c.ID {
			return fmt.Errorf("%w: creative %d belongs to campaign %d", ErrInvalidCampaign, cr.ID, cr.CampaignID)
		}
	}
	return nil
}
