package pacing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreFairnessBound(t *testing.T) {
	pace := Pace{RemainingImpressions: 500, RemainingDays: 5, TargetRate: 100}
	scored := Scorer{Normalization: NormalizeMaxEligible}.Score([]Candidate{
		{CampaignID: 1, LimitImpressions: 1_000_000, Pace: pace},
		{CampaignID: 2, LimitImpressions: 10_000, Pace: pace},
	})
	require.Len(t, scored, 2)
	assert.Equal(t, 100.0, scored[0].Score)
	assert.InDelta(t, 1.0, scored[1].Score, 1e-9)
	assert.Less(t, scored[1].Score, scored[0].Score)
}

func TestScoreBoundedByTargetRate(t *testing.T) {
	scored := Scorer{}.Score([]Candidate{
		{CampaignID: 1, LimitImpressions: 300, Pace: Pace{TargetRate: 7}},
		{CampaignID: 2, LimitImpressions: 900, Pace: Pace{TargetRate: 3}},
		{CampaignID: 3, LimitImpressions: 50, Pace: Pace{TargetRate: 50}},
	})
	for _, s := range scored {
		assert.GreaterOrEqual(t, s.Score, 0.0)
		assert.LessOrEqual(t, s.Score, s.Pace.TargetRate)
	}
}

func TestScoreWithoutNormalization(t *testing.T) {
	scored := Scorer{Normalization: NormalizeNone}.Score([]Candidate{
		{CampaignID: 1, LimitImpressions: 1_000_000, Pace: Pace{TargetRate: 10}},
		{CampaignID: 2, LimitImpressions: 10, Pace: Pace{TargetRate: 40}},
	})
	assert.Equal(t, 10.0, scored[0].Score)
	assert.Equal(t, 40.0, scored[1].Score)
}

func TestScoreEmpty(t *testing.T) {
	assert.Nil(t, Scorer{}.Score(nil))
	assert.Nil(t, Top(nil, 0.1))
}

func TestTopWithinEpsilon(t *testing.T) {
	top := Top([]Scored{
		{Candidate: Candidate{CampaignID: 1}, Score: 10},
		{Candidate: Candidate{CampaignID: 2}, Score: 9.95},
		{Candidate: Candidate{CampaignID: 3}, Score: 9},
	}, 0.1)
	require.Len(t, top, 2)
	assert.Equal(t, int64(1), top[0].CampaignID)
	assert.Equal(t, int64(2), top[1].CampaignID)
}

func TestParseNormalization(t *testing.T) {
	n, err := ParseNormalization("")
	require.NoError(t, err)
	assert.Equal(t, NormalizeMaxEligible, n)

	n, err = ParseNormalization("NONE")
	require.NoError(t, err)
	assert.Equal(t, NormalizeNone, n)

	_, err = ParseNormalization("log")
	assert.Error(t, err)
}
