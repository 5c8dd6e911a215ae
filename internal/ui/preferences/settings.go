package preferences

import (
	"time"

	"pomodo7o/internal/core/model"
)

// Settings defines editable user preferences.
type Settings struct {
	WorkDuration time.Duration
	RestDuration time.Duration
	TickInterval time.Duration
	AutoStart    bool
}

// DefaultSettings returns default settings for Pomodo7o.
func DefaultSettings() Settings {
	defaults := model.DefaultCycleConfig()
	return Settings{
		WorkDuration: defaults.Work.Duration,
		RestDuration: defaults.Rest.Duration,
		TickInterval: defaults.Work.TickInterval,
		AutoStart:    defaults.AutoStart,
	}
}

// CycleConfig converts settings to the cycle configuration. Both phases
// share the tick interval.
func (settings Settings) CycleConfig() model.CycleConfig {
	return model.CycleConfig{
		Work: model.PhaseConfig{
			Duration:     settings.WorkDuration,
			TickInterval: settings.TickInterval,
		},
		Rest: model.PhaseConfig{
			Duration:     settings.RestDuration,
			TickInterval: settings.TickInterval,
		},
		AutoStart: settings.AutoStart,
	}
}
