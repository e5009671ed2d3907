package lazy

import (
	"sync"
	"time"
)

// Coordinator is the visibility-tracking service: the ordered registry of
// tracked elements, the shared rate limiter, and the listener bindings.
// Create one per host with New; all methods are safe for concurrent use,
// state is serialized behind a single mutex.
type Coordinator struct {
	mu       sync.Mutex
	host     Host
	binder   *binder
	elements []*Element
	pending  []*Element
	limiter  limiter
	mode     limiterMode
	interval time.Duration
	schedule func(run func())
}

// New creates a coordinator for host. Without a WithThrottle/WithDebounce
// option the rate limiter is configured lazily from the first registered
// element's preference, defaulting to a 300ms throttle.
func New(host Host, opts ...Option) *Coordinator {
	c := &Coordinator{host: host}
	c.binder = newBinder(host)
	for _, opt := range opts {
		opt(c)
	}
	if c.mode != limiterUnset {
		c.limiter = c.newLimiter()
	}
	return c
}

// Register starts tracking node on behalf of render and performs one
// immediate visibility check. The returned Element stays registered until
// Unregister, or until the tick after its first reveal when the Once option
// is set.
//
// For overflow elements the scroll listener is bound to the container
// resolved at registration time and released against that same container at
// unregistration. A node reparented under a different scrolling ancestor
// must be re-registered to move the binding; visibility checks always
// re-resolve, so they follow the new ancestor either way.
func (c *Coordinator) Register(node Node, render Renderable, opts ...ElementOption) *Element {
	conf := defaultElementConfig()
	for _, opt := range opts {
		opt(&conf)
	}

	c.mu.Lock()
	el := &Element{node: node, render: render, conf: conf, coord: c, registered: true}
	if c.limiter == nil {
		c.adoptLimiter(conf)
	}
	c.elements = append(c.elements, el)
	c.binder.bindGlobal(c.onEvent, !conf.overflow && conf.scroll, !conf.overflow && conf.resize)
	if conf.overflow {
		el.container = resolveContainer(node)
		c.binder.bindContainer(el.container, c.onEvent)
	}

	var reveal []Renderable
	if visible, ok := c.evaluate(el); ok {
		c.applyTransition(el, visible, &reveal)
		c.purgeLocked()
	}
	c.mu.Unlock()

	c.notify(reveal)
	return el
}

// Unregister stops tracking el. Safe to call at any time, from any state,
// and more than once; the last unregistration detaches all global listeners.
func (c *Coordinator) Unregister(el *Element) {
	if el == nil {
		return
	}
	c.mu.Lock()
	c.removeLocked(el)
	c.mu.Unlock()
}

// CheckAll runs one full, un-rate-limited check pass. Hosts normally never
// call this directly; scroll/resize events go through the rate limiter.
func (c *Coordinator) CheckAll() {
	c.mu.Lock()
	var reveal []Renderable
	for _, el := range c.elements {
		visible, ok := c.evaluate(el)
		if !ok {
			// Detached mid-check: skip this pass, keep prior state.
			continue
		}
		c.applyTransition(el, visible, &reveal)
	}
	c.purgeLocked()
	c.mu.Unlock()

	c.notify(reveal)
}

// Len reports how many elements are currently tracked.
func (c *Coordinator) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.elements)
}

// Close tears the coordinator down: cancels any pending rate-limiter timer
// and detaches every listener. Only needed when the host outlives the
// coordinator.
func (c *Coordinator) Close() {
	c.mu.Lock()
	if c.limiter != nil {
		c.limiter.Stop()
	}
	c.binder.unbindGlobal()
	c.binder.releaseAll()
	c.elements = nil
	c.pending = c.pending[:0]
	c.mu.Unlock()
}

// onEvent is the single handler behind every scroll/resize listener.
func (c *Coordinator) onEvent() {
	c.mu.Lock()
	l := c.limiter
	c.mu.Unlock()
	if l != nil {
		l.Trigger()
	}
}

// adoptLimiter configures the shared limiter from the first element's
// preference. Later elements' differing preferences are ignored; use
// WithThrottle/WithDebounce for explicit control.
func (c *Coordinator) adoptLimiter(conf elementConfig) {
	switch {
	case conf.hasDebounce:
		c.mode = limiterDebounce
		c.interval = conf.debounce
	case conf.hasThrottle:
		c.mode = limiterThrottle
		c.interval = conf.throttle
	default:
		c.mode = limiterThrottle
		c.interval = DefaultInterval
	}
	c.limiter = c.newLimiter()
}

func (c *Coordinator) newLimiter() limiter {
	run := c.CheckAll
	if c.schedule != nil {
		run = func() { c.schedule(c.CheckAll) }
	}
	if c.mode == limiterDebounce {
		return newDebouncer(c.interval, run)
	}
	return newThrottler(c.interval, run)
}

// evaluate resolves the element's scrolling region and computes visibility.
// ok is false when the element (or its container) is detached and the check
// must be skipped without a state change.
func (c *Coordinator) evaluate(el *Element) (visible, ok bool) {
	if el.conf.overflow {
		if container := resolveContainer(el.node); container != nil {
			return visibleInContainer(el.node, container, el.conf.offset)
		}
	}
	return visibleInViewport(el.node, c.host.Viewport(), el.conf.offset)
}

// applyTransition records the new visibility and collects the redraw signal
// on a hidden→visible transition. Visible→hidden is recorded silently; equal
// states are a no-op. Once-elements that just became visible are queued for
// removal rather than removed here: the registry must not shrink while a
// pass is iterating it.
func (c *Coordinator) applyTransition(el *Element, visible bool, reveal *[]Renderable) {
	switch {
	case visible && !el.visible:
		el.visible = true
		if el.render != nil {
			*reveal = append(*reveal, el.render)
		}
		if el.conf.once {
			c.pending = append(c.pending, el)
		}
	case !visible && el.visible:
		el.visible = false
	}
}

// purgeLocked flushes the pending-removal queue collected during a pass.
func (c *Coordinator) purgeLocked() {
	if len(c.pending) == 0 {
		return
	}
	for _, el := range c.pending {
		c.removeLocked(el)
	}
	c.pending = c.pending[:0]
}

// removeLocked splices el out of the registry by identity, tolerating
// absence, and drops whatever bindings it held. The 1→0 transition detaches
// the global listeners.
func (c *Coordinator) removeLocked(el *Element) {
	if !el.registered {
		return
	}
	el.registered = false
	for i, e := range c.elements {
		if e == el {
			c.elements = append(c.elements[:i], c.elements[i+1:]...)
			break
		}
	}
	if el.conf.overflow {
		c.binder.releaseContainer(el.container)
	}
	if len(c.elements) == 0 {
		c.binder.unbindGlobal()
	}
}

// notify fires redraw signals outside the lock so a Renderable may call
// back into the coordinator (query, unregister) freely.
func (c *Coordinator) notify(reveal []Renderable) {
	for _, r := range reveal {
		r.BecameVisible()
	}
}
