// Package tomato implements the countdown state machine behind a single
// Pomodoro phase.
package tomato

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"pomodo7o/internal/core/clock"
	"pomodo7o/internal/core/scheduler"

	"github.com/sirupsen/logrus"
)

var (
	// ErrInvalidTick indicates a non-positive tick interval.
	ErrInvalidTick = errors.New("tick interval must be positive")
	// ErrInvalidDuration indicates a non-positive total duration.
	ErrInvalidDuration = errors.New("total duration must be positive")
	// ErrTickExceedsDuration indicates a tick interval longer than the countdown.
	ErrTickExceedsDuration = errors.New("tick interval exceeds total duration")
)

// Option customizes a Timer at construction.
type Option func(*Timer)

// WithClock injects the time source driving the scheduler.
func WithClock(source clock.Clock) Option {
	return func(timer *Timer) {
		timer.clock = source
	}
}

// WithLogger sets the logger used for state transitions.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(timer *Timer) {
		timer.logger = logger
	}
}

// WithName labels the timer in log output.
func WithName(name string) Option {
	return func(timer *Timer) {
		timer.name = name
	}
}

// Timer counts elapsed time towards a fixed total and notifies observers on
// every tick. The zero value is not usable; construct with New.
type Timer struct {
	mu        sync.Mutex
	name      string
	tick      time.Duration
	total     time.Duration
	elapsed   time.Duration
	state     State
	run       uint64
	scheduler *scheduler.Scheduler
	clock     clock.Clock
	logger    logrus.FieldLogger

	onProgress  observers[func(int)]
	onRemaining observers[func(time.Duration)]
	onComplete  observers[func()]
}

// Validate checks tick and total against the construction rules.
func Validate(tick, total time.Duration) error {
	if tick <= 0 {
		return ErrInvalidTick
	}
	if total <= 0 {
		return ErrInvalidDuration
	}
	if tick > total {
		return ErrTickExceedsDuration
	}
	return nil
}

// New creates an idle Timer that ticks every tick until total has elapsed.
func New(tick, total time.Duration, options ...Option) (*Timer, error) {
	if err := Validate(tick, total); err != nil {
		return nil, fmt.Errorf("new tomato timer (tick %s, total %s): %w", tick, total, err)
	}

	timer := &Timer{
		tick:   tick,
		total:  total,
		state:  StateIdle,
		clock:  clock.Real(),
		logger: logrus.StandardLogger(),
	}
	for _, option := range options {
		option(timer)
	}
	if timer.logger == nil {
		timer.logger = logrus.StandardLogger()
	}

	sched, err := scheduler.New(tick, timer.clock, timer.handleTick)
	if err != nil {
		return nil, fmt.Errorf("new tomato timer: %w", err)
	}
	timer.scheduler = sched
	return timer, nil
}

// Start runs the countdown. A paused timer resumes from its elapsed time and
// a completed timer starts over from zero. Starting a running timer is a
// no-op.
func (timer *Timer) Start() {
	timer.mu.Lock()
	if timer.state == StateRunning {
		timer.mu.Unlock()
		return
	}
	if timer.state == StateCompleted {
		timer.elapsed = 0
	}
	timer.state = StateRunning
	timer.run = timer.scheduler.Start(timer.elapsed)
	elapsed := timer.elapsed
	timer.mu.Unlock()

	timer.log().WithField("elapsed", elapsed).Debug("timer started")
}

// Pause freezes a running timer, keeping its elapsed time.
func (timer *Timer) Pause() {
	timer.mu.Lock()
	if timer.state != StateRunning {
		timer.mu.Unlock()
		return
	}
	timer.scheduler.Stop()
	timer.state = StatePaused
	elapsed := timer.elapsed
	timer.mu.Unlock()

	timer.log().WithField("elapsed", elapsed).Debug("timer paused")
}

// Reset stops the timer and zeroes elapsed time. It never starts the timer.
func (timer *Timer) Reset() {
	timer.mu.Lock()
	timer.scheduler.Stop()
	timer.elapsed = 0
	timer.state = StateIdle
	timer.mu.Unlock()

	timer.log().Debug("timer reset")
}

// IsRunning reports whether the countdown is active.
func (timer *Timer) IsRunning() bool {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	return timer.state == StateRunning
}

// State returns the current lifecycle state.
func (timer *Timer) State() State {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	return timer.state
}

// Snapshot returns the timer's state, elapsed and remaining time together.
func (timer *Timer) Snapshot() Snapshot {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	return timer.snapshotLocked()
}

// Total returns the configured countdown length.
func (timer *Timer) Total() time.Duration {
	return timer.total
}

// OnProgress registers a handler for the percent complete after each tick.
// The returned func removes the handler.
func (timer *Timer) OnProgress(handler func(percent int)) func() {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	id := timer.onProgress.add(handler)
	return func() {
		timer.mu.Lock()
		defer timer.mu.Unlock()
		timer.onProgress.remove(id)
	}
}

// OnRemaining registers a handler for the remaining time after each tick.
func (timer *Timer) OnRemaining(handler func(remaining time.Duration)) func() {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	id := timer.onRemaining.add(handler)
	return func() {
		timer.mu.Lock()
		defer timer.mu.Unlock()
		timer.onRemaining.remove(id)
	}
}

// OnComplete registers a handler fired once per run that reaches the total.
func (timer *Timer) OnComplete(handler func()) func() {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	id := timer.onComplete.add(handler)
	return func() {
		timer.mu.Lock()
		defer timer.mu.Unlock()
		timer.onComplete.remove(id)
	}
}

// handleTick runs on the scheduler goroutine. The state update happens
// entirely under the mutex; handlers run after it is released so they may
// call back into the timer.
func (timer *Timer) handleTick(tick scheduler.Tick) {
	timer.mu.Lock()
	if timer.state != StateRunning || tick.Run != timer.run {
		timer.mu.Unlock()
		return
	}

	timer.elapsed += timer.tick
	if timer.elapsed > timer.total {
		timer.elapsed = timer.total
	}
	completed := timer.elapsed == timer.total
	if completed {
		timer.scheduler.Stop()
		timer.state = StateCompleted
	}
	snapshot := timer.snapshotLocked()
	progressHandlers := timer.onProgress.snapshot()
	remainingHandlers := timer.onRemaining.snapshot()
	var completeHandlers []func()
	if completed {
		completeHandlers = timer.onComplete.snapshot()
	}
	timer.mu.Unlock()

	for _, handler := range progressHandlers {
		handler(snapshot.Percent)
	}
	for _, handler := range remainingHandlers {
		handler(snapshot.Remaining)
	}
	if completed {
		timer.log().WithField("offset", tick.Offset).Debug("timer completed")
		for _, handler := range completeHandlers {
			handler()
		}
	}
}

func (timer *Timer) snapshotLocked() Snapshot {
	return Snapshot{
		State:     timer.state,
		Tick:      timer.tick,
		Total:     timer.total,
		Elapsed:   timer.elapsed,
		Remaining: timer.total - timer.elapsed,
		Percent:   PercentComplete(timer.elapsed, timer.total),
	}
}

func (timer *Timer) log() logrus.FieldLogger {
	if timer.name == "" {
		return timer.logger
	}
	return timer.logger.WithField("timer", timer.name)
}
