// Package clock abstracts the time source behind tick scheduling so timers
// can be driven deterministically in tests.
package clock

import "time"

// Ticker delivers periodic ticks until stopped.
type Ticker interface {
	Chan() <-chan time.Time
	Stop()
}

// Clock creates tickers and reports the current time.
type Clock interface {
	Now() time.Time
	NewTicker(interval time.Duration) Ticker
}

// Real returns a Clock backed by the time package.
func Real() Clock {
	return realClock{}
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}

func (realClock) NewTicker(interval time.Duration) Ticker {
	return &realTicker{ticker: time.NewTicker(interval)}
}

type realTicker struct {
	ticker *time.Ticker
}

func (ticker *realTicker) Chan() <-chan time.Time {
	return ticker.ticker.C
}

func (ticker *realTicker) Stop() {
	ticker.ticker.Stop()
}
