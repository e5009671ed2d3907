package lazy

// Element is the per-element controller handed back at registration. It
// tracks the last computed visibility and is the consumer's handle for the
// placeholder-vs-content decision and for unregistering on unmount.
//
// The visible flag is mutated only by the coordinator's check pass.
type Element struct {
	node       Node
	render     Renderable
	conf       elementConfig
	coord      *Coordinator
	container  Container // resolved at mount when the overflow option is set
	visible    bool
	registered bool
}

// Visible reports the last computed visibility, for conditional rendering of
// placeholder vs. real content.
func (e *Element) Visible() bool {
	e.coord.mu.Lock()
	defer e.coord.mu.Unlock()
	return e.visible
}

// Height returns the placeholder sizing hint configured at registration.
func (e *Element) Height() float64 {
	return e.conf.height
}

// Once reports whether the element stops being tracked after its first
// reveal.
func (e *Element) Once() bool {
	return e.conf.once
}
