package tomato

import "time"

// State represents the lifecycle position of a Timer.
type State string

const (
	StateIdle      State = "idle"
	StateRunning   State = "running"
	StatePaused    State = "paused"
	StateCompleted State = "completed"
)

// Snapshot is a consistent read of a Timer at one instant.
type Snapshot struct {
	State     State
	Tick      time.Duration
	Total     time.Duration
	Elapsed   time.Duration
	Remaining time.Duration
	Percent   int
}

// PercentComplete returns floor(elapsed/total*100) clamped to [0,100].
func PercentComplete(elapsed, total time.Duration) int {
	if total <= 0 || elapsed <= 0 {
		return 0
	}
	if elapsed >= total {
		return 100
	}
	return int(elapsed * 100 / total)
}
