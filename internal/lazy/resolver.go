package lazy

// resolveContainer walks the ancestor chain of n and returns the nearest
// ancestor that is a scrolling container, or nil when the document viewport
// applies. A detached node with no parent chain safely falls back to nil.
func resolveContainer(n Node) Container {
	if n == nil {
		return nil
	}
	for p := n.Parent(); p != nil; p = p.Parent() {
		if c, ok := p.(Container); ok && c.ScrollsContent() {
			return c
		}
	}
	return nil
}
