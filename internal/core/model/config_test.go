package model

import (
	"testing"
	"time"

	"pomodo7o/internal/core/tomato"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCycleConfig(t *testing.T) {
	config := DefaultCycleConfig()

	require.NoError(t, config.Validate())
	assert.Equal(t, 25*time.Minute, config.Work.Duration)
	assert.Equal(t, 5*time.Minute, config.Rest.Duration)
	assert.Equal(t, DefaultTickInterval, config.Work.TickInterval)
	assert.Equal(t, DefaultTickInterval, config.Rest.TickInterval)
	assert.True(t, config.AutoStart)
}

func TestCycleConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CycleConfig)
		want   error
	}{
		{name: "zero work tick", mutate: func(c *CycleConfig) { c.Work.TickInterval = 0 }, want: tomato.ErrInvalidTick},
		{name: "negative rest duration", mutate: func(c *CycleConfig) { c.Rest.Duration = -time.Minute }, want: tomato.ErrInvalidDuration},
		{name: "tick longer than rest", mutate: func(c *CycleConfig) { c.Rest.TickInterval = 10 * time.Minute }, want: tomato.ErrTickExceedsDuration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultCycleConfig()
			tt.mutate(&config)

			err := config.Validate()

			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCycleConfig_ValidateNamesPhase(t *testing.T) {
	config := DefaultCycleConfig()
	config.Rest.Duration = 0

	err := config.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "rest phase")
}
