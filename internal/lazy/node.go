// Package lazy defers rendering of elements until they are about to become
// visible inside a scrollable viewport. The Coordinator owns a registry of
// tracked elements, resolves each element's scrolling region, runs a
// rate-limited visibility pass on scroll/resize events, and signals every
// element exactly once per hidden→visible transition.
//
// The package is host-toolkit agnostic: geometry and event delivery are
// supplied through the capability interfaces below, so the same coordinator
// drives terminal widgets, canvas scenes, or synthetic test fixtures.
package lazy

import "github.com/idursun/lazyview/internal/geom"

// Node is the geometry capability a tracked element (or one of its
// ancestors) must provide.
type Node interface {
	// Parent returns the next ancestor, or nil at the root.
	Parent() Node
	// Rect reports the node's box relative to the viewport origin, like a
	// bounding client rect. ok is false while the node is detached from a
	// rendered tree; detached nodes are skipped, never an error.
	Rect() (r geom.Rect, ok bool)
}

// Container is a node whose own scrolling region constrains visibility of
// its descendants.
type Container interface {
	Node
	// ScrollTop returns the container's current scroll offset in content
	// coordinates.
	ScrollTop() float64
	// ViewHeight returns the height of the container's visible region.
	ViewHeight() float64
	// ScrollsContent reports whether the container actually traps content,
	// i.e. its computed overflow behavior is scroll/auto/hidden and its box
	// can constrain children. Ancestors returning false are skipped during
	// resolution.
	ScrollsContent() bool
}

// Viewport is the document/window view used to judge visibility when no
// overflow container applies.
type Viewport interface {
	ScrollTop() float64
	ViewHeight() float64
}

// Host supplies the document viewport and window-level event attachment.
// The returned cancel funcs detach the listener; attaching is expected to be
// cheap and detaching idempotent.
type Host interface {
	Viewport() Viewport
	OnScroll(fn func()) (cancel func())
	OnResize(fn func()) (cancel func())
}

// ScrollNotifier is the optional capability of a Container that can deliver
// its own scroll events. Containers without it are still resolved and
// measured, they just never trigger a pass on their own.
type ScrollNotifier interface {
	OnScroll(fn func()) (cancel func())
}

// Renderable is the external rendering collaborator of a tracked element.
// BecameVisible is the redraw signal: it fires exactly once per
// hidden→visible transition, from inside a check pass.
type Renderable interface {
	BecameVisible()
}

// RenderableFunc adapts a plain function to the Renderable capability.
type RenderableFunc func()

func (f RenderableFunc) BecameVisible() { f() }
