// Package scheduler provides the periodic clock that drives a countdown.
package scheduler

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"pomodo7o/internal/core/clock"
)

var (
	// ErrInvalidInterval indicates a non-positive tick interval.
	ErrInvalidInterval = errors.New("tick interval must be positive")
	// ErrNoCallback indicates the scheduler was built without a tick handler.
	ErrNoCallback = errors.New("tick callback is required")
)

// Tick describes a single firing of the scheduler.
type Tick struct {
	// Run identifies the Start call that produced this tick.
	Run    uint64
	Offset time.Duration
	At     time.Time
}

// Scheduler invokes a callback every interval while active. It keeps no
// elapsed bookkeeping of its own; callers pass the offset to resume from.
type Scheduler struct {
	mu       sync.Mutex
	interval time.Duration
	clock    clock.Clock
	onTick   func(Tick)
	ticker   clock.Ticker
	stopCh   chan struct{}
	active   bool
	run      uint64
}

// New creates an inactive scheduler. A nil clock selects the real clock.
func New(interval time.Duration, source clock.Clock, onTick func(Tick)) (*Scheduler, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("new scheduler: %w", ErrInvalidInterval)
	}
	if onTick == nil {
		return nil, fmt.Errorf("new scheduler: %w", ErrNoCallback)
	}
	if source == nil {
		source = clock.Real()
	}
	return &Scheduler{
		interval: interval,
		clock:    source,
		onTick:   onTick,
	}, nil
}

// Start begins firing. The first tick arrives one interval after the call
// and carries offset from+interval. Starting an active scheduler is a no-op
// that returns the current run.
func (scheduler *Scheduler) Start(from time.Duration) uint64 {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()
	if scheduler.active {
		return scheduler.run
	}

	scheduler.run++
	scheduler.active = true
	scheduler.ticker = scheduler.clock.NewTicker(scheduler.interval)
	scheduler.stopCh = make(chan struct{})

	go scheduler.loop(scheduler.run, from, scheduler.ticker, scheduler.stopCh)
	return scheduler.run
}

// Stop halts firing. It does not wait for an in-flight callback.
func (scheduler *Scheduler) Stop() {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()
	if !scheduler.active {
		return
	}
	scheduler.active = false
	close(scheduler.stopCh)
	scheduler.ticker.Stop()
	scheduler.ticker = nil
}

// Active reports whether the scheduler is currently firing.
func (scheduler *Scheduler) Active() bool {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()
	return scheduler.active
}

// Interval returns the period between firings.
func (scheduler *Scheduler) Interval() time.Duration {
	return scheduler.interval
}

func (scheduler *Scheduler) loop(run uint64, offset time.Duration, ticker clock.Ticker, stopCh <-chan struct{}) {
	for {
		select {
		case <-stopCh:
			return
		case tickTime := <-ticker.Chan():
			select {
			case <-stopCh:
				return
			default:
			}
			offset += scheduler.interval
			scheduler.onTick(Tick{Run: run, Offset: offset, At: tickTime})
		}
	}
}
