package scheduler

import (
	"testing"
	"time"

	"pomodo7o/internal/core/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScheduler(t *testing.T, interval time.Duration) (*Scheduler, *clock.Fake, <-chan Tick) {
	t.Helper()
	fake := clock.NewFake(time.Date(2024, time.January, 1, 9, 0, 0, 0, time.UTC))
	ticks := make(chan Tick, 64)
	scheduler, err := New(interval, fake, func(tick Tick) {
		ticks <- tick
	})
	require.NoError(t, err)
	t.Cleanup(scheduler.Stop)
	return scheduler, fake, ticks
}

func nextTick(t *testing.T, ticks <-chan Tick) Tick {
	t.Helper()
	select {
	case tick := <-ticks:
		return tick
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for tick")
		return Tick{}
	}
}

func assertNoTick(t *testing.T, ticks <-chan Tick) {
	t.Helper()
	select {
	case tick := <-ticks:
		t.Fatalf("unexpected tick %+v", tick)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestNew_RejectsInvalidInput(t *testing.T) {
	_, err := New(0, nil, func(Tick) {})
	assert.ErrorIs(t, err, ErrInvalidInterval)

	_, err = New(-time.Second, nil, func(Tick) {})
	assert.ErrorIs(t, err, ErrInvalidInterval)

	_, err = New(time.Second, nil, nil)
	assert.ErrorIs(t, err, ErrNoCallback)
}

func TestScheduler_FirstTickAfterOneInterval(t *testing.T) {
	scheduler, fake, ticks := newTestScheduler(t, 5*time.Second)

	run := scheduler.Start(0)
	assert.True(t, scheduler.Active())

	fake.Advance(4 * time.Second)
	assertNoTick(t, ticks)

	fake.Advance(time.Second)
	tick := nextTick(t, ticks)
	assert.Equal(t, run, tick.Run)
	assert.Equal(t, 5*time.Second, tick.Offset)
}

func TestScheduler_StartFromOffset(t *testing.T) {
	scheduler, fake, ticks := newTestScheduler(t, 5*time.Second)

	scheduler.Start(20 * time.Second)
	fake.Advance(10 * time.Second)

	assert.Equal(t, 25*time.Second, nextTick(t, ticks).Offset)
	assert.Equal(t, 30*time.Second, nextTick(t, ticks).Offset)
}

func TestScheduler_StartIsIdempotentWhileActive(t *testing.T) {
	scheduler, fake, ticks := newTestScheduler(t, time.Second)

	first := scheduler.Start(0)
	second := scheduler.Start(0)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, fake.ActiveTickers())

	fake.Advance(time.Second)
	nextTick(t, ticks)
	assertNoTick(t, ticks)
}

func TestScheduler_StopHaltsFiring(t *testing.T) {
	scheduler, fake, ticks := newTestScheduler(t, time.Second)

	scheduler.Start(0)
	scheduler.Stop()
	scheduler.Stop()

	assert.False(t, scheduler.Active())
	assert.Equal(t, 0, fake.ActiveTickers())

	fake.Advance(5 * time.Second)
	assertNoTick(t, ticks)
}

func TestScheduler_RestartUsesNewRun(t *testing.T) {
	scheduler, fake, ticks := newTestScheduler(t, time.Second)

	first := scheduler.Start(0)
	scheduler.Stop()
	second := scheduler.Start(3 * time.Second)

	assert.NotEqual(t, first, second)
	fake.Advance(time.Second)
	tick := nextTick(t, ticks)
	assert.Equal(t, second, tick.Run)
	assert.Equal(t, 4*time.Second, tick.Offset)
}
