package clock

import (
	"sync"
	"time"
)

// Fake is a Clock that only moves when Advance is called.
type Fake struct {
	mu      sync.Mutex
	now     time.Time
	tickers []*fakeTicker
}

// NewFake creates a fake clock starting at the given instant.
func NewFake(start time.Time) *Fake {
	return &Fake{now: start}
}

// Now returns the fake current time.
func (fake *Fake) Now() time.Time {
	fake.mu.Lock()
	defer fake.mu.Unlock()
	return fake.now
}

// NewTicker registers a ticker that fires as the clock is advanced.
func (fake *Fake) NewTicker(interval time.Duration) Ticker {
	if interval <= 0 {
		panic("clock: non-positive ticker interval")
	}
	fake.mu.Lock()
	defer fake.mu.Unlock()

	ticker := &fakeTicker{
		fake:     fake,
		interval: interval,
		next:     fake.now.Add(interval),
		ch:       make(chan time.Time),
		stopped:  make(chan struct{}),
	}
	fake.tickers = append(fake.tickers, ticker)
	return ticker
}

// Advance moves the clock forward by delta, delivering every tick that
// falls due in chronological order. Each delivery blocks until the ticker
// is read or stopped, so a reader sees ticks one at a time.
func (fake *Fake) Advance(delta time.Duration) {
	fake.mu.Lock()
	target := fake.now.Add(delta)
	fake.mu.Unlock()

	for {
		fake.mu.Lock()
		ticker := fake.nextDueLocked(target)
		if ticker == nil {
			fake.now = target
			fake.mu.Unlock()
			return
		}
		at := ticker.next
		fake.now = at
		ticker.next = at.Add(ticker.interval)
		fake.mu.Unlock()

		ticker.deliver(at)
	}
}

// ActiveTickers reports how many tickers have not been stopped.
func (fake *Fake) ActiveTickers() int {
	fake.mu.Lock()
	defer fake.mu.Unlock()
	return len(fake.tickers)
}

func (fake *Fake) nextDueLocked(target time.Time) *fakeTicker {
	var due *fakeTicker
	for _, ticker := range fake.tickers {
		if ticker.next.After(target) {
			continue
		}
		if due == nil || ticker.next.Before(due.next) {
			due = ticker
		}
	}
	return due
}

func (fake *Fake) remove(target *fakeTicker) {
	fake.mu.Lock()
	defer fake.mu.Unlock()
	for i, ticker := range fake.tickers {
		if ticker == target {
			fake.tickers = append(fake.tickers[:i], fake.tickers[i+1:]...)
			return
		}
	}
}

type fakeTicker struct {
	fake     *Fake
	interval time.Duration
	next     time.Time
	ch       chan time.Time
	stopped  chan struct{}
	stopOnce sync.Once
}

func (ticker *fakeTicker) Chan() <-chan time.Time {
	return ticker.ch
}

func (ticker *fakeTicker) Stop() {
	ticker.stopOnce.Do(func() {
		close(ticker.stopped)
		ticker.fake.remove(ticker)
	})
}

func (ticker *fakeTicker) deliver(at time.Time) {
	select {
	case ticker.ch <- at:
	case <-ticker.stopped:
	}
}
