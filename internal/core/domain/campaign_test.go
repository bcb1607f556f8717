package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validCampaign() Campaign {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return Campaign{
		ID:               1,
		StartDate:        start,
		EndDate:          start.AddDate(0, 1, 0),
		LimitImpressions: 1000,
		Weight:           40,
		ConsecutiveCap:   3,
		Status:           StatusDraft,
		Surfaces:         []Surface{SurfacePromoBlock},
		Creatives:        []Creative{{ID: 1, CampaignID: 1, Weight: 0}},
	}
}

func TestValidate(t *testing.T) {
	c := validCampaign()
	assert.NoError(t, c.Validate())

	cases := map[string]func(c *Campaign){
		"zero limit":       func(c *Campaign) { c.LimitImpressions = 0 },
		"weight too high":  func(c *Campaign) { c.Weight = 101 },
		"zero cap":         func(c *Campaign) { c.ConsecutiveCap = 0 },
		"empty window":     func(c *Campaign) { c.EndDate = c.StartDate },
		"no surfaces":      func(c *Campaign) { c.Surfaces = nil },
		"unknown surface":  func(c *Campaign) { c.Surfaces = []Surface{"billboard"} },
		"unknown status":   func(c *Campaign) { c.Status = "archived" },
		"negative weight":  func(c *Campaign) { c.Creatives[0].Weight = -1 },
		"foreign creative": func(c *Campaign) { c.Creatives[0].CampaignID = 2 },
	}
	for name, mutate := range cases {
		c := validCampaign()
		mutate(&c)
		assert.True(t, errors.Is(c.Validate(), ErrInvalidCampaign), name)
	}
}

func TestStatusTransitions(t *testing.T) {
	assert.True(t, StatusDraft.CanTransition(StatusActive))
	assert.True(t, StatusActive.CanTransition(StatusPaused))
	assert.True(t, StatusPaused.CanTransition(StatusActive))
	assert.True(t, StatusActive.CanTransition(StatusCompleted))
	assert.True(t, StatusCompleted.CanTransition(StatusCompleted))

	assert.False(t, StatusCompleted.CanTransition(StatusActive))
	assert.False(t, StatusCompleted.CanTransition(StatusPaused))
	assert.False(t, StatusActive.CanTransition(StatusDraft))
}

func TestWindowIsHalfOpen(t *testing.T) {
	c := validCampaign()
	assert.True(t, c.InWindow(c.StartDate))
	assert.False(t, c.InWindow(c.EndDate))
	assert.False(t, c.InWindow(c.StartDate.Add(-time.Nanosecond)))
}

func TestViewerStreak(t *testing.T) {
	now := time.Now()
	var s ViewerStreak
	s = s.Next(1, now).Next(1, now)
	assert.Equal(t, 2, s.CountFor(1))
	s = s.Next(2, now)
	assert.Equal(t, 0, s.CountFor(1))
	assert.Equal(t, 1, s.CountFor(2))
}
