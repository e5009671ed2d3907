package lazy

// binder owns every listener attachment the coordinator makes. Global window
// listeners are attached at most once while the registry is non-empty;
// container listeners are refcounted per container so any number of elements
// can share a single binding. Containers are compared by identity, so a
// container must be a pointer-shaped value.
type binder struct {
	host         Host
	cancelScroll func()
	cancelResize func()
	containers   map[Container]*containerBinding
}

type containerBinding struct {
	refs   int
	cancel func()
}

func newBinder(host Host) *binder {
	return &binder{host: host, containers: make(map[Container]*containerBinding)}
}

// bindGlobal attaches window scroll/resize listeners for handler. Calling it
// again while already bound is a no-op, so registering many elements in
// sequence never duplicates a listener.
func (b *binder) bindGlobal(handler func(), wantScroll, wantResize bool) {
	if wantScroll && b.cancelScroll == nil {
		b.cancelScroll = b.host.OnScroll(handler)
	}
	if wantResize && b.cancelResize == nil {
		b.cancelResize = b.host.OnResize(handler)
	}
}

// unbindGlobal detaches whatever window listeners are currently attached.
func (b *binder) unbindGlobal() {
	if b.cancelScroll != nil {
		b.cancelScroll()
		b.cancelScroll = nil
	}
	if b.cancelResize != nil {
		b.cancelResize()
		b.cancelResize = nil
	}
}

// bindContainer attaches a scroll listener to c exactly once and counts the
// element against it. Containers that cannot notify are still counted so
// release stays uniform.
func (b *binder) bindContainer(c Container, handler func()) {
	if c == nil {
		return
	}
	if bound, ok := b.containers[c]; ok {
		bound.refs++
		return
	}
	bound := &containerBinding{refs: 1}
	if n, ok := c.(ScrollNotifier); ok {
		bound.cancel = n.OnScroll(handler)
	}
	b.containers[c] = bound
}

// releaseContainer drops one element's claim on c; the last release detaches
// the listener and forgets the container.
func (b *binder) releaseContainer(c Container) {
	if c == nil {
		return
	}
	bound, ok := b.containers[c]
	if !ok {
		return
	}
	bound.refs--
	if bound.refs > 0 {
		return
	}
	if bound.cancel != nil {
		bound.cancel()
	}
	delete(b.containers, c)
}

// releaseAll detaches every container listener; used when the registry
// empties entirely.
func (b *binder) releaseAll() {
	for c, bound := range b.containers {
		if bound.cancel != nil {
			bound.cancel()
		}
		delete(b.containers, c)
	}
}

// boundGlobal reports whether any window listener is currently attached.
func (b *binder) boundGlobal() bool {
	return b.cancelScroll != nil || b.cancelResize != nil
}
