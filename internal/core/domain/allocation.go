package domain

import (
	"errors"
	"time"
)

// ErrInvalidRequest is returned for allocation requests that cannot be
// evaluated at all, such as a missing viewer or an unknown surface.
var ErrInvalidRequest = errors.New("invalid allocation request")

// AllocationRequest describes a single ad-serving opportunity. The
// EligibleCampaignIDs set is the output of audience resolution and is
// computed by the caller.
type AllocationRequest struct {
	ViewerID            string    `json:"viewer_id"`
	Surface             Surface   `json:"surface"`
	Timestamp           time.Time `json:"timestamp"`
	EligibleCampaignIDs []int64   `json:"eligible_campaign_ids"`
}

// Outcome tells the caller whether it must render the chosen creative or a
// house ad of its own.
type Outcome string

const (
	OutcomeServed   Outcome = "served"
	OutcomeFallback Outcome = "fallback"
)

// AllocationResult is the engine's decision for one request. CampaignID and
// CreativeID are zero when Outcome is OutcomeFallback.
type AllocationResult struct {
	DecisionID string  `json:"decision_id"`
	Outcome    Outcome `json:"outcome"`
	CampaignID int64   `json:"campaign_id,omitempty"`
	CreativeID int64   `json:"creative_id,omitempty"`
	Reason     string  `json:"reason,omitempty"`
	Attempts   int     `json:"attempts"`
}

// Served reports whether a campaign was delivered.
func (r AllocationResult) Served() bool {
	return r.Outcome == OutcomeServed
}

// Stage names a step of the per-request allocation state machine.
type Stage string

const (
	StageReceived    Stage = "received"
	StageFiltered    Stage = "filtered"
	StageScored      Stage = "scored"
	StageSelected    Stage = "selected"
	StageCommitted   Stage = "committed"
	StageNoCandidate Stage = "no_candidate"
	StageFallback    Stage = "fallback_served"
)
