package lazy

import (
	"sync"
	"time"
)

// DefaultInterval applies when a throttle or debounce preference carries no
// usable interval.
const DefaultInterval = 300 * time.Millisecond

// limiter gates the global check pass so scroll storms cannot run it more
// often than the configured interval.
type limiter interface {
	Trigger()
	Stop()
}

// throttler runs fn immediately on the leading edge, then at most once per
// interval. Triggers landing inside the interval collapse into a single
// trailing run at the interval boundary.
type throttler struct {
	mu       sync.Mutex
	interval time.Duration
	fn       func()
	last     time.Time
	timer    *time.Timer
}

func newThrottler(interval time.Duration, fn func()) *throttler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &throttler{interval: interval, fn: fn}
}

func (t *throttler) Trigger() {
	t.mu.Lock()
	now := time.Now()
	elapsed := now.Sub(t.last)
	if elapsed >= t.interval {
		t.last = now
		t.mu.Unlock()
		t.fn()
		return
	}
	if t.timer == nil {
		t.timer = time.AfterFunc(t.interval-elapsed, t.trailing)
	}
	t.mu.Unlock()
}

func (t *throttler) trailing() {
	t.mu.Lock()
	if t.timer == nil {
		// Stopped while the timer was in flight.
		t.mu.Unlock()
		return
	}
	t.timer = nil
	t.last = time.Now()
	t.mu.Unlock()
	t.fn()
}

func (t *throttler) Stop() {
	t.mu.Lock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()
}

// debouncer delays fn until a full interval has elapsed with no further
// triggers; every trigger resets the deadline.
type debouncer struct {
	mu       sync.Mutex
	interval time.Duration
	fn       func()
	timer    *time.Timer
}

func newDebouncer(interval time.Duration, fn func()) *debouncer {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &debouncer{interval: interval, fn: fn}
}

func (d *debouncer) Trigger() {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.interval, d.fn)
	d.mu.Unlock()
}

func (d *debouncer) Stop() {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.mu.Unlock()
}
