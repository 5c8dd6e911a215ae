// Package urgency classifies remaining time into presentation bands.
package urgency

import "time"

// Band is a discrete urgency level for the remaining time of a phase.
type Band string

const (
	BandNormal Band = "normal"
	BandPaused Band = "paused"
	BandError  Band = "error"
)

// Policy holds the thresholds below which a band applies.
type Policy struct {
	ErrorBelow  time.Duration
	PausedBelow time.Duration
}

// WorkPolicy is the policy for the work phase.
func WorkPolicy() Policy {
	return Policy{ErrorBelow: time.Minute, PausedBelow: 5 * time.Minute}
}

// RestPolicy is the policy for the rest phase.
func RestPolicy() Policy {
	return Policy{ErrorBelow: 30 * time.Second, PausedBelow: time.Minute}
}

// Classify maps remaining time to a band. Thresholds are exclusive: exactly
// ErrorBelow remaining is Paused, exactly PausedBelow is Normal.
func (policy Policy) Classify(remaining time.Duration) Band {
	if remaining < policy.ErrorBelow {
		return BandError
	}
	if remaining < policy.PausedBelow {
		return BandPaused
	}
	return BandNormal
}
