package lazy

import (
	"time"

	"github.com/idursun/lazyview/internal/geom"
)

// DefaultHeight is the placeholder sizing hint used when an element does not
// specify its own.
const DefaultHeight = 100

type limiterMode int

const (
	limiterUnset limiterMode = iota
	limiterThrottle
	limiterDebounce
)

// Option configures a Coordinator. Rate limiting is global: the first
// registered element's preference applies only when no explicit Option was
// given (see WithThrottle and WithDebounce).
type Option func(*Coordinator)

// WithThrottle makes the coordinator gate check passes with a throttle at
// the given interval.
func WithThrottle(interval time.Duration) Option {
	return func(c *Coordinator) {
		c.mode = limiterThrottle
		c.interval = interval
	}
}

// WithDebounce makes the coordinator gate check passes with a debounce at
// the given interval.
func WithDebounce(interval time.Duration) Option {
	return func(c *Coordinator) {
		c.mode = limiterDebounce
		c.interval = interval
	}
}

// WithScheduler hands every rate-limited check pass to schedule instead of
// running it where the limiter fires. Limiter timers fire on their own
// goroutines; a host whose node geometry is confined to an event loop must
// use this to run the pass on that loop.
func WithScheduler(schedule func(run func())) Option {
	return func(c *Coordinator) {
		c.schedule = schedule
	}
}

type elementConfig struct {
	once        bool
	height      float64
	offset      geom.Offset
	overflow    bool
	resize      bool
	scroll      bool
	throttle    time.Duration
	debounce    time.Duration
	hasThrottle bool
	hasDebounce bool
}

func defaultElementConfig() elementConfig {
	return elementConfig{height: DefaultHeight, scroll: true}
}

// ElementOption configures a tracked element at registration time.
type ElementOption func(*elementConfig)

// Once unregisters the element after it first becomes visible.
func Once() ElementOption {
	return func(c *elementConfig) { c.once = true }
}

// Height sets the placeholder sizing hint for the not-yet-visible render
// path.
func Height(h float64) ElementOption {
	return func(c *elementConfig) { c.height = h }
}

// WithOffset inflates the visibility test region symmetrically by v.
func WithOffset(v float64) ElementOption {
	return func(c *elementConfig) { c.offset = geom.Sym(v) }
}

// WithOffsets inflates the visibility test region asymmetrically.
func WithOffsets(leading, trailing float64) ElementOption {
	return func(c *elementConfig) {
		c.offset = geom.Offset{Leading: leading, Trailing: trailing}
	}
}

// InOverflow judges visibility against the nearest scrolling ancestor
// instead of the document viewport.
func InOverflow() ElementOption {
	return func(c *elementConfig) { c.overflow = true }
}

// OnResize also listens to window resize events (document mode only).
func OnResize() ElementOption {
	return func(c *elementConfig) { c.resize = true }
}

// NoScroll opts the element out of window scroll events (document mode
// only); scroll listening is on by default.
func NoScroll() ElementOption {
	return func(c *elementConfig) { c.scroll = false }
}

// Throttle requests throttled rate limiting at the given interval. Only the
// first registered element's preference configures an unconfigured
// coordinator; later preferences are ignored.
func Throttle(interval time.Duration) ElementOption {
	return func(c *elementConfig) {
		c.throttle = interval
		c.hasThrottle = true
	}
}

// Debounce requests debounced rate limiting at the given interval. When both
// Throttle and Debounce are supplied, debounce wins.
func Debounce(interval time.Duration) ElementOption {
	return func(c *elementConfig) {
		c.debounce = interval
		c.hasDebounce = true
	}
}
