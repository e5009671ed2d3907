package geom

// Rect is an axis-aligned box relative to the viewport origin, in fractional
// units (pixels or cells depending on the host). Negative sizes are
// tolerated: edge accessors normalize them the way DOM geometry does.
type Rect struct {
	Top    float64
	Left   float64
	Width  float64
	Height float64
}

func NewRect(left, top, width, height float64) Rect {
	return Rect{Top: top, Left: left, Width: width, Height: height}
}

// TopEdge returns the smaller vertical edge.
func (r Rect) TopEdge() float64 {
	if r.Height < 0 {
		return r.Top + r.Height
	}
	return r.Top
}

// BottomEdge returns the larger vertical edge.
func (r Rect) BottomEdge() float64 {
	if r.Height < 0 {
		return r.Top
	}
	return r.Top + r.Height
}

// LeftEdge returns the smaller horizontal edge.
func (r Rect) LeftEdge() float64 {
	if r.Width < 0 {
		return r.Left + r.Width
	}
	return r.Left
}

// RightEdge returns the larger horizontal edge.
func (r Rect) RightEdge() float64 {
	if r.Width < 0 {
		return r.Left
	}
	return r.Left + r.Width
}

// Dy returns the normalized height.
func (r Rect) Dy() float64 {
	return r.BottomEdge() - r.TopEdge()
}

// Offset inflates the vertical visibility test region. Leading extends the
// region upward past the scroll position, Trailing extends it downward past
// the view edge.
type Offset struct {
	Leading  float64
	Trailing float64
}

// Sym builds an offset applied equally to both edges.
func Sym(v float64) Offset {
	return Offset{Leading: v, Trailing: v}
}
