// Package presenter folds cycle events into the display state shared by the
// desktop and terminal front ends.
package presenter

import (
	"fmt"
	"time"

	"pomodo7o/internal/core/cycle"
	"pomodo7o/internal/core/urgency"
)

// Overlay selects the badge drawn over the application icon.
type Overlay string

const (
	OverlayNone  Overlay = ""
	OverlayRest  Overlay = "rest"
	OverlayPause Overlay = "pause"
)

// Frame is everything a front end needs to draw the timer.
type Frame struct {
	Phase     cycle.Phase
	Percent   int
	Remaining time.Duration
	Band      urgency.Band
	Running   bool
	Sessions  int
}

// FromEvent seeds a frame from a state-carrying event.
func FromEvent(event cycle.Event) Frame {
	return Frame{}.Apply(event)
}

// Apply returns the frame updated by event.
func (frame Frame) Apply(event cycle.Event) Frame {
	switch event.Type {
	case cycle.EventProgress:
		frame.Phase = event.Phase
		frame.Percent = event.Percent
		frame.Running = event.Running
	case cycle.EventRemaining:
		frame.Phase = event.Phase
		frame.Remaining = event.Remaining
		frame.Band = event.Band
		frame.Running = event.Running
	case cycle.EventComplete:
		frame.Sessions = event.Completed
	case cycle.EventPhaseChange, cycle.EventControl:
		frame.Phase = event.Phase
		frame.Percent = event.Percent
		frame.Remaining = event.Remaining
		frame.Band = event.Band
		frame.Running = event.Running
		frame.Sessions = event.Completed
	}
	return frame
}

// Overlay returns the icon badge: pause when stopped, rest during a running
// rest phase, nothing during a running work phase.
func (frame Frame) Overlay() Overlay {
	if !frame.Running {
		return OverlayPause
	}
	if frame.Phase == cycle.PhaseRest {
		return OverlayRest
	}
	return OverlayNone
}

// Mode is the human readable label for the overlay.
func (frame Frame) Mode() string {
	switch frame.Overlay() {
	case OverlayPause:
		return "Paused"
	case OverlayRest:
		return "Rest mode"
	default:
		return "Work mode"
	}
}

// ShowPlay reports whether the play control should be visible.
func (frame Frame) ShowPlay() bool {
	return !frame.Running
}

// ShowPause reports whether the pause control should be visible.
func (frame Frame) ShowPause() bool {
	return frame.Running
}

// Status is the one-line summary used by the tray and the terminal.
func (frame Frame) Status() string {
	status := fmt.Sprintf("%s %d%% - %s left", PhaseTitle(frame.Phase), frame.Percent, FormatRemaining(frame.Remaining))
	if !frame.Running {
		status += " (paused)"
	}
	return status
}

// PhaseTitle capitalizes a phase name for display.
func PhaseTitle(phase cycle.Phase) string {
	switch phase {
	case cycle.PhaseRest:
		return "Rest"
	default:
		return "Work"
	}
}

// FormatRemaining renders a duration as mm:ss.
func FormatRemaining(remaining time.Duration) string {
	if remaining < 0 {
		remaining = 0
	}
	seconds := int(remaining.Seconds())
	minutes := seconds / 60
	seconds = seconds % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
