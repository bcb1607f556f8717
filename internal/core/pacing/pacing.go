// Package pacing computes how urgently each campaign needs impressions and
// turns that urgency into priority scores comparable within one decision.
// Everything here is a pure function of its inputs.
package pacing

import (
	"math"
	"time"
)

// Day is the pacing granularity.
const Day = 24 * time.Hour

// Input is the subset of campaign state pacing depends on.
type Input struct {
	LimitImpressions int64
	Delivered        int64
	StartDate        time.Time
	EndDate          time.Time
}

// Pace is the pacing state of a campaign at a point in time.
type Pace struct {
	RemainingImpressions int64
	RemainingDays        int64
	// TargetRate is the number of impressions per day needed to spend the
	// remaining budget by the end date. With no days left the whole
	// remaining budget is due now.
	TargetRate float64
}

// Calculate returns the pace of a campaign at now. It never fails and the
// returned rate is always finite and non-negative.
//
// A campaign that has not started yet is paced over its full window, as if
// now were its start date. A campaign past its end date has zero remaining
// days and is maximally urgent.
func Calculate(in Input, now time.Time) Pace {
	remaining := in.LimitImpressions - in.Delivered
	if remaining < 0 {
		remaining = 0
	}
	from := now
	if from.Before(in.StartDate) {
		from = in.StartDate
	}
	days := RemainingDays(in.EndDate, from)

	rate := float64(remaining)
	if days > 0 {
		rate = float64(remaining) / float64(days)
	}
	return Pace{RemainingImpressions: remaining, RemainingDays: days, TargetRate: rate}
}

// RemainingDays returns ceil((end - now) / Day) clamped at zero.
func RemainingDays(end, now time.Time) int64 {
	left := end.Sub(now)
	if left <= 0 {
		return 0
	}
	return int64(math.Ceil(float64(left) / float64(Day)))
}
