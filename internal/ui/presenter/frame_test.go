package presenter

import (
	"testing"
	"time"

	"pomodo7o/internal/core/cycle"
	"pomodo7o/internal/core/urgency"

	"github.com/stretchr/testify/assert"
)

func TestFrame_ApplySequence(t *testing.T) {
	frame := FromEvent(cycle.Event{
		Type:      cycle.EventControl,
		Phase:     cycle.PhaseWork,
		Remaining: 25 * time.Minute,
		Band:      urgency.BandNormal,
		Running:   true,
	})

	frame = frame.Apply(cycle.Event{Type: cycle.EventProgress, Phase: cycle.PhaseWork, Percent: 4, Running: true})
	frame = frame.Apply(cycle.Event{Type: cycle.EventRemaining, Phase: cycle.PhaseWork, Remaining: 24 * time.Minute, Band: urgency.BandNormal, Running: true})

	assert.Equal(t, 4, frame.Percent)
	assert.Equal(t, 24*time.Minute, frame.Remaining)
	assert.True(t, frame.Running)

	frame = frame.Apply(cycle.Event{Type: cycle.EventComplete, Phase: cycle.PhaseWork, Completed: 1})
	assert.Equal(t, 1, frame.Sessions)
	assert.Equal(t, cycle.PhaseWork, frame.Phase)

	frame = frame.Apply(cycle.Event{Type: cycle.EventPhaseChange, Phase: cycle.PhaseRest, Remaining: 5 * time.Minute, Running: true, Completed: 1})
	assert.Equal(t, cycle.PhaseRest, frame.Phase)
	assert.Equal(t, 0, frame.Percent)
	assert.Equal(t, 5*time.Minute, frame.Remaining)
}

func TestFrame_OverlayAndControls(t *testing.T) {
	tests := []struct {
		name    string
		frame   Frame
		overlay Overlay
		mode    string
	}{
		{"running work", Frame{Phase: cycle.PhaseWork, Running: true}, OverlayNone, "Work mode"},
		{"running rest", Frame{Phase: cycle.PhaseRest, Running: true}, OverlayRest, "Rest mode"},
		{"paused work", Frame{Phase: cycle.PhaseWork}, OverlayPause, "Paused"},
		{"paused rest", Frame{Phase: cycle.PhaseRest}, OverlayPause, "Paused"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.overlay, tt.frame.Overlay())
			assert.Equal(t, tt.mode, tt.frame.Mode())
			assert.Equal(t, !tt.frame.Running, tt.frame.ShowPlay())
			assert.Equal(t, tt.frame.Running, tt.frame.ShowPause())
		})
	}
}

func TestFrame_Status(t *testing.T) {
	frame := Frame{Phase: cycle.PhaseWork, Percent: 42, Remaining: 14*time.Minute + 35*time.Second, Running: true}
	assert.Equal(t, "Work 42% - 14:35 left", frame.Status())

	frame.Running = false
	frame.Phase = cycle.PhaseRest
	assert.Equal(t, "Rest 42% - 14:35 left (paused)", frame.Status())
}

func TestFormatRemaining(t *testing.T) {
	assert.Equal(t, "25:00", FormatRemaining(25*time.Minute))
	assert.Equal(t, "00:05", FormatRemaining(5*time.Second))
	assert.Equal(t, "00:00", FormatRemaining(-time.Second))
	assert.Equal(t, "61:01", FormatRemaining(61*time.Minute+time.Second))
}
