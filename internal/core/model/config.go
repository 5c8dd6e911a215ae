package model

import (
	"fmt"
	"time"

	"pomodo7o/internal/core/tomato"
)

// PhaseConfig defines the countdown for one phase.
type PhaseConfig struct {
	Duration     time.Duration
	TickInterval time.Duration
}

// Validate applies the timer construction rules.
func (config PhaseConfig) Validate() error {
	return tomato.Validate(config.TickInterval, config.Duration)
}

// CycleConfig contains runtime settings for the work/rest cycle.
type CycleConfig struct {
	Work PhaseConfig
	Rest PhaseConfig

	// AutoStart starts the work phase as soon as the cycle is built.
	AutoStart bool
}

// Validate checks both phases.
func (config CycleConfig) Validate() error {
	if err := config.Work.Validate(); err != nil {
		return fmt.Errorf("work phase: %w", err)
	}
	if err := config.Rest.Validate(); err != nil {
		return fmt.Errorf("rest phase: %w", err)
	}
	return nil
}

// DefaultTickInterval is the cadence of progress notifications.
const DefaultTickInterval = 5 * time.Second

// DefaultCycleConfig returns the classic 25/5 cycle.
func DefaultCycleConfig() CycleConfig {
	return CycleConfig{
		Work:      PhaseConfig{Duration: 25 * time.Minute, TickInterval: DefaultTickInterval},
		Rest:      PhaseConfig{Duration: 5 * time.Minute, TickInterval: DefaultTickInterval},
		AutoStart: true,
	}
}
