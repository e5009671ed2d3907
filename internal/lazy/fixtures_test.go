package lazy

import "github.com/idursun/lazyview/internal/geom"

// fakeViewport is a synthetic document view.
type fakeViewport struct {
	scrollTop  float64
	viewHeight float64
}

func (v *fakeViewport) ScrollTop() float64  { return v.scrollTop }
func (v *fakeViewport) ViewHeight() float64 { return v.viewHeight }

// fakeHost counts listener attach/detach calls so binding idempotence can be
// asserted, and lets tests deliver synthetic scroll/resize events.
type fakeHost struct {
	vp             *fakeViewport
	scrollFn       func()
	resizeFn       func()
	scrollAttached int
	scrollDetached int
	resizeAttached int
	resizeDetached int
}

func newFakeHost(scrollTop, viewHeight float64) *fakeHost {
	return &fakeHost{vp: &fakeViewport{scrollTop: scrollTop, viewHeight: viewHeight}}
}

func (h *fakeHost) Viewport() Viewport { return h.vp }

func (h *fakeHost) OnScroll(fn func()) func() {
	h.scrollAttached++
	h.scrollFn = fn
	return func() {
		h.scrollDetached++
		h.scrollFn = nil
	}
}

func (h *fakeHost) OnResize(fn func()) func() {
	h.resizeAttached++
	h.resizeFn = fn
	return func() {
		h.resizeDetached++
		h.resizeFn = nil
	}
}

func (h *fakeHost) scrollTo(top float64) {
	h.vp.scrollTop = top
	if h.scrollFn != nil {
		h.scrollFn()
	}
}

func (h *fakeHost) resize(viewHeight float64) {
	h.vp.viewHeight = viewHeight
	if h.resizeFn != nil {
		h.resizeFn()
	}
}

// docNode lives directly in the document: its viewport-relative rect follows
// the host's scroll position, like a bounding client rect would.
type docNode struct {
	vp       *fakeViewport
	top      float64 // absolute document top
	height   float64
	detached bool
}

func (n *docNode) Parent() Node { return nil }

func (n *docNode) Rect() (geom.Rect, bool) {
	if n.detached {
		return geom.Rect{}, false
	}
	return geom.NewRect(0, n.top-n.vp.scrollTop, 10, n.height), true
}

// fakeContainer is a scrolling ancestor that can also deliver its own scroll
// events.
type fakeContainer struct {
	parent         Node
	rect           geom.Rect
	detached       bool
	scrollTop      float64
	viewHeight     float64
	scrolls        bool
	scrollFn       func()
	scrollAttached int
	scrollDetached int
}

func (c *fakeContainer) Parent() Node { return c.parent }

func (c *fakeContainer) Rect() (geom.Rect, bool) {
	if c.detached {
		return geom.Rect{}, false
	}
	return c.rect, true
}

func (c *fakeContainer) ScrollTop() float64   { return c.scrollTop }
func (c *fakeContainer) ViewHeight() float64  { return c.viewHeight }
func (c *fakeContainer) ScrollsContent() bool { return c.scrolls }

func (c *fakeContainer) OnScroll(fn func()) func() {
	c.scrollAttached++
	c.scrollFn = fn
	return func() {
		c.scrollDetached++
		c.scrollFn = nil
	}
}

func (c *fakeContainer) scrollTo(top float64) {
	c.scrollTop = top
	if c.scrollFn != nil {
		c.scrollFn()
	}
}

// paneNode lives inside a container at a fixed content offset; its
// viewport-relative rect follows the container's scroll position.
type paneNode struct {
	container  *fakeContainer
	contentTop float64
	height     float64
	detached   bool
}

func (n *paneNode) Parent() Node { return n.container }

func (n *paneNode) Rect() (geom.Rect, bool) {
	if n.detached {
		return geom.Rect{}, false
	}
	cr, ok := n.container.Rect()
	if !ok {
		return geom.Rect{}, false
	}
	top := cr.TopEdge() + n.contentTop - n.container.scrollTop
	return geom.NewRect(0, top, 10, n.height), true
}

// recorder counts redraw signals.
type recorder struct {
	reveals int
}

func (r *recorder) BecameVisible() { r.reveals++ }
