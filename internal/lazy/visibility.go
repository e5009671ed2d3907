package lazy

import "github.com/idursun/lazyview/internal/geom"

// visibleInViewport reports whether n falls inside the document view,
// inflated by off. The element's absolute top is its viewport-relative top
// plus the current scroll offset. ok is false when n is detached and no
// judgment can be made.
func visibleInViewport(n Node, vp Viewport, off geom.Offset) (visible, ok bool) {
	r, ok := n.Rect()
	if !ok {
		return false, false
	}
	scrollTop := vp.ScrollTop()
	top := r.TopEdge() + scrollTop
	bottom := top + r.Dy()
	return top >= scrollTop-off.Leading &&
		bottom-off.Trailing <= scrollTop+vp.ViewHeight(), true
}

// visibleInContainer reports whether n falls inside c's scrolling region,
// inflated by off. The element's top in content coordinates is derived from
// the two viewport-relative rects and the container's scroll offset, so a
// zero-height element is visible exactly when its top edge is in range.
// ok is false when either rect is unobtainable.
func visibleInContainer(n Node, c Container, off geom.Offset) (visible, ok bool) {
	r, ok := n.Rect()
	if !ok {
		return false, false
	}
	cr, ok := c.Rect()
	if !ok {
		return false, false
	}
	scrollTop := c.ScrollTop()
	top := r.TopEdge() - cr.TopEdge() + scrollTop
	bottom := top + r.Dy()
	return top >= scrollTop-off.Leading &&
		bottom-off.Trailing <= scrollTop+c.ViewHeight(), true
}
