package urgency

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPolicy_Classify(t *testing.T) {
	tests := []struct {
		name      string
		policy    Policy
		remaining time.Duration
		want      Band
	}{
		{"rest full", RestPolicy(), 5 * time.Minute, BandNormal},
		{"rest exactly one minute", RestPolicy(), time.Minute, BandNormal},
		{"rest just under one minute", RestPolicy(), 55 * time.Second, BandPaused},
		{"rest exactly thirty seconds", RestPolicy(), 30 * time.Second, BandPaused},
		{"rest just under thirty seconds", RestPolicy(), 25 * time.Second, BandError},
		{"rest finished", RestPolicy(), 0, BandError},
		{"work full", WorkPolicy(), 25 * time.Minute, BandNormal},
		{"work exactly five minutes", WorkPolicy(), 5 * time.Minute, BandNormal},
		{"work under five minutes", WorkPolicy(), 4*time.Minute + 55*time.Second, BandPaused},
		{"work exactly one minute", WorkPolicy(), time.Minute, BandPaused},
		{"work under one minute", WorkPolicy(), 55 * time.Second, BandError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.policy.Classify(tt.remaining))
		})
	}
}
