// Package cycle alternates a work timer and a rest timer, starting the next
// phase whenever the current one completes.
package cycle

import (
	"fmt"
	"sync"
	"time"

	"pomodo7o/internal/core/clock"
	"pomodo7o/internal/core/model"
	"pomodo7o/internal/core/tomato"
	"pomodo7o/internal/core/urgency"

	"github.com/sirupsen/logrus"
)

// Config contains runtime options for the Orchestrator.
type Config struct {
	WorkPolicy urgency.Policy
	RestPolicy urgency.Policy
	Clock      clock.Clock
	Logger     logrus.FieldLogger
}

// Orchestrator owns both phase timers and forwards their notifications.
type Orchestrator struct {
	mu          sync.Mutex
	timers      map[Phase]*tomato.Timer
	policies    map[Phase]urgency.Policy
	current     Phase
	completed   map[Phase]int
	events      []chan Event
	unsubscribe []func()
	clock       clock.Clock
	logger      logrus.FieldLogger
	closed      bool
}

// Build creates both timers from config and wires them into an Orchestrator.
// The work phase is started when config.AutoStart is set.
func Build(config model.CycleConfig, options Config) (*Orchestrator, error) {
	if options.Clock == nil {
		options.Clock = clock.Real()
	}
	if options.Logger == nil {
		options.Logger = logrus.StandardLogger()
	}

	work, err := tomato.New(config.Work.TickInterval, config.Work.Duration,
		tomato.WithClock(options.Clock),
		tomato.WithLogger(options.Logger),
		tomato.WithName(string(PhaseWork)))
	if err != nil {
		return nil, fmt.Errorf("build work phase: %w", err)
	}
	rest, err := tomato.New(config.Rest.TickInterval, config.Rest.Duration,
		tomato.WithClock(options.Clock),
		tomato.WithLogger(options.Logger),
		tomato.WithName(string(PhaseRest)))
	if err != nil {
		return nil, fmt.Errorf("build rest phase: %w", err)
	}

	orchestrator := New(work, rest, options)
	if config.AutoStart {
		orchestrator.Start()
	}
	return orchestrator, nil
}

// New wires existing timers into an Orchestrator with work as the current
// phase. Zero policies fall back to the defaults for each phase.
func New(work, rest *tomato.Timer, config Config) *Orchestrator {
	if config.WorkPolicy == (urgency.Policy{}) {
		config.WorkPolicy = urgency.WorkPolicy()
	}
	if config.RestPolicy == (urgency.Policy{}) {
		config.RestPolicy = urgency.RestPolicy()
	}
	if config.Clock == nil {
		config.Clock = clock.Real()
	}
	if config.Logger == nil {
		config.Logger = logrus.StandardLogger()
	}

	orchestrator := &Orchestrator{
		timers: map[Phase]*tomato.Timer{
			PhaseWork: work,
			PhaseRest: rest,
		},
		policies: map[Phase]urgency.Policy{
			PhaseWork: config.WorkPolicy,
			PhaseRest: config.RestPolicy,
		},
		current:   PhaseWork,
		completed: make(map[Phase]int),
		clock:     config.Clock,
		logger:    config.Logger,
	}
	orchestrator.bind(PhaseWork, work)
	orchestrator.bind(PhaseRest, rest)
	return orchestrator
}

// Subscribe registers a new observer channel. Events are dropped for
// observers whose buffer is full.
func (orchestrator *Orchestrator) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	orchestrator.mu.Lock()
	if orchestrator.closed {
		close(ch)
	} else {
		orchestrator.events = append(orchestrator.events, ch)
	}
	orchestrator.mu.Unlock()
	return ch
}

// Start starts or resumes the current phase.
func (orchestrator *Orchestrator) Start() {
	orchestrator.currentTimer().Start()
	orchestrator.emitState(EventControl)
}

// Pause pauses the current phase.
func (orchestrator *Orchestrator) Pause() {
	orchestrator.currentTimer().Pause()
	orchestrator.emitState(EventControl)
}

// Reset resets the current phase without starting it.
func (orchestrator *Orchestrator) Reset() {
	orchestrator.currentTimer().Reset()
	orchestrator.emitState(EventControl)
}

// Toggle pauses a running phase or starts a stopped one.
func (orchestrator *Orchestrator) Toggle() {
	timer := orchestrator.currentTimer()
	if timer.IsRunning() {
		timer.Pause()
	} else {
		timer.Start()
	}
	orchestrator.emitState(EventControl)
}

// IsRunning reports whether the current phase is counting down.
func (orchestrator *Orchestrator) IsRunning() bool {
	return orchestrator.currentTimer().IsRunning()
}

// Phase returns the current phase.
func (orchestrator *Orchestrator) Phase() Phase {
	orchestrator.mu.Lock()
	defer orchestrator.mu.Unlock()
	return orchestrator.current
}

// Completed returns how many runs of phase have finished.
func (orchestrator *Orchestrator) Completed(phase Phase) int {
	orchestrator.mu.Lock()
	defer orchestrator.mu.Unlock()
	return orchestrator.completed[phase]
}

// Snapshot returns the current timer's snapshot.
func (orchestrator *Orchestrator) Snapshot() tomato.Snapshot {
	return orchestrator.currentTimer().Snapshot()
}

// State describes the current phase as a control event, suitable for
// seeding a presentation before any tick has arrived.
func (orchestrator *Orchestrator) State() Event {
	orchestrator.mu.Lock()
	defer orchestrator.mu.Unlock()
	return orchestrator.stateLocked(EventControl)
}

// Close stops both timers and closes observer channels.
func (orchestrator *Orchestrator) Close() {
	orchestrator.mu.Lock()
	if orchestrator.closed {
		orchestrator.mu.Unlock()
		return
	}
	orchestrator.closed = true
	unsubscribe := orchestrator.unsubscribe
	orchestrator.unsubscribe = nil
	events := orchestrator.events
	orchestrator.events = nil
	timers := []*tomato.Timer{orchestrator.timers[PhaseWork], orchestrator.timers[PhaseRest]}
	orchestrator.mu.Unlock()

	for _, remove := range unsubscribe {
		remove()
	}
	for _, timer := range timers {
		timer.Reset()
	}
	for _, ch := range events {
		close(ch)
	}
}

func (orchestrator *Orchestrator) bind(phase Phase, timer *tomato.Timer) {
	policy := orchestrator.policies[phase]
	orchestrator.unsubscribe = append(orchestrator.unsubscribe,
		timer.OnProgress(func(percent int) {
			orchestrator.emit(Event{
				Type:    EventProgress,
				Phase:   phase,
				Percent: percent,
				Running: true,
			})
		}),
		timer.OnRemaining(func(remaining time.Duration) {
			orchestrator.emit(Event{
				Type:      EventRemaining,
				Phase:     phase,
				Remaining: remaining,
				Band:      policy.Classify(remaining),
				Running:   true,
			})
		}),
		timer.OnComplete(func() {
			orchestrator.handleComplete(phase)
		}),
	)
}

func (orchestrator *Orchestrator) handleComplete(phase Phase) {
	orchestrator.mu.Lock()
	if orchestrator.closed || orchestrator.current != phase {
		orchestrator.mu.Unlock()
		return
	}
	orchestrator.completed[phase]++
	completed := orchestrator.completed[PhaseWork]
	next := phase.Other()
	orchestrator.current = next
	nextTimer := orchestrator.timers[next]
	orchestrator.emitLocked(Event{
		Type:      EventComplete,
		Phase:     phase,
		Completed: completed,
		At:        orchestrator.clock.Now(),
	})
	orchestrator.mu.Unlock()

	orchestrator.logger.WithFields(logrus.Fields{
		"finished": phase,
		"next":     next,
		"sessions": completed,
	}).Info("phase complete")

	nextTimer.Start()
	orchestrator.emitState(EventPhaseChange)
}

func (orchestrator *Orchestrator) currentTimer() *tomato.Timer {
	orchestrator.mu.Lock()
	defer orchestrator.mu.Unlock()
	return orchestrator.timers[orchestrator.current]
}

func (orchestrator *Orchestrator) emitState(eventType EventType) {
	orchestrator.mu.Lock()
	defer orchestrator.mu.Unlock()
	orchestrator.emitLocked(orchestrator.stateLocked(eventType))
}

func (orchestrator *Orchestrator) stateLocked(eventType EventType) Event {
	phase := orchestrator.current
	snapshot := orchestrator.timers[phase].Snapshot()
	return Event{
		Type:      eventType,
		Phase:     phase,
		Percent:   snapshot.Percent,
		Remaining: snapshot.Remaining,
		Band:      orchestrator.policies[phase].Classify(snapshot.Remaining),
		Running:   snapshot.State == tomato.StateRunning,
		Completed: orchestrator.completed[PhaseWork],
		At:        orchestrator.clock.Now(),
	}
}

func (orchestrator *Orchestrator) emit(event Event) {
	orchestrator.mu.Lock()
	defer orchestrator.mu.Unlock()
	orchestrator.emitLocked(event)
}

func (orchestrator *Orchestrator) emitLocked(event Event) {
	if event.At.IsZero() {
		event.At = orchestrator.clock.Now()
	}
	events := append([]chan Event(nil), orchestrator.events...)
	for _, ch := range events {
		select {
		case ch <- event:
		default:
		}
	}
}
