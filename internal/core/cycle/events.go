package cycle

import (
	"time"

	"pomodo7o/internal/core/urgency"
)

// Phase identifies which timer of the cycle is active.
type Phase string

const (
	PhaseWork Phase = "work"
	PhaseRest Phase = "rest"
)

// Other returns the phase that follows this one.
func (phase Phase) Other() Phase {
	if phase == PhaseWork {
		return PhaseRest
	}
	return PhaseWork
}

// EventType defines the type of cycle event.
type EventType string

const (
	EventProgress    EventType = "progress"
	EventRemaining   EventType = "remaining"
	EventComplete    EventType = "complete"
	EventPhaseChange EventType = "phase_change"
	EventControl     EventType = "control"
)

// Event represents a cycle update for observers. Progress carries Percent,
// Remaining carries Remaining and Band, Complete names the finished Phase.
// PhaseChange and Control carry the full state of the current timer.
type Event struct {
	Type      EventType
	Phase     Phase
	Percent   int
	Remaining time.Duration
	Band      urgency.Band
	Running   bool
	Completed int
	At        time.Time
}
