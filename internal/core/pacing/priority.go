package pacing

import (
	"fmt"
	"strings"
)

// Normalization selects how a campaign's scale feeds into its score.
type Normalization string

const (
	// NormalizeMaxEligible scales each target rate by the campaign's budget
	// share of the largest budget in the eligible set.
	NormalizeMaxEligible Normalization = "max_eligible"
	// NormalizeNone scores by raw target rate.
	NormalizeNone Normalization = "none"
)

// ParseNormalization maps a configuration value to a Normalization.
func ParseNormalization(s string) (Normalization, error) {
	switch Normalization(strings.ToLower(strings.TrimSpace(s))) {
	case NormalizeMaxEligible, "":
		return NormalizeMaxEligible, nil
	case NormalizeNone:
		return NormalizeNone, nil
	}
	return "", fmt.Errorf("unknown normalization %q", s)
}

// Candidate is a campaign under consideration for one decision.
type Candidate struct {
	CampaignID       int64
	LimitImpressions int64
	Weight           int
	Pace             Pace
}

// Scored pairs a candidate with its priority score.
type Scored struct {
	Candidate
	Score float64
}

// Scorer turns pacing urgency into priority scores.
type Scorer struct {
	Normalization Normalization
}

// Score computes
//
//	score(c) = targetRate(c) * limit(c) / max(limit over candidates)
//
// for every candidate, preserving order. The denominator is taken over the
// given set only, so every score lies in [0, targetRate]. An empty set
// yields nil.
func (s Scorer) Score(candidates []Candidate) []Scored {
	if len(candidates) == 0 {
		return nil
	}
	var maxLimit int64
	for _, c := range candidates {
		if c.LimitImpressions > maxLimit {
			maxLimit = c.LimitImpressions
		}
	}
	out := make([]Scored, len(candidates))
	for i, c := range candidates {
		share := 1.0
		if s.Normalization != NormalizeNone && maxLimit > 0 {
			share = float64(c.LimitImpressions) / float64(maxLimit)
		}
		out[i] = Scored{Candidate: c, Score: c.Pace.TargetRate * share}
	}
	return out
}

// Top returns the candidates whose score is within epsilon of the best
// score. The result is empty only when scored is empty.
func Top(scored []Scored, epsilon float64) []Scored {
	if len(scored) == 0 {
		return nil
	}
	best := scored[0].Score
	for _, s := range scored[1:] {
		if s.Score > best {
			best = s.Score
		}
	}
	var top []Scored
	for _, s := range scored {
		if best-s.Score <= epsilon {
			top = append(top, s)
		}
	}
	return top
}
