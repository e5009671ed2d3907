// Package layout carves a screen rectangle into widget frames.
package layout

import "github.com/charmbracelet/x/cellbuf"

// Constraint resolves to a size along one axis of an area.
type Constraint interface {
	Apply(size int) int
}

// Percent takes a share of the available size, clamped to [0, 100].
type Percent int

func (p Percent) Apply(size int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return size
	}
	return size * int(p) / 100
}

// Fixed takes an absolute size, clamped to what is available.
type Fixed int

func (f Fixed) Apply(size int) int {
	if f < 0 {
		return 0
	}
	if int(f) > size {
		return size
	}
	return int(f)
}

// SplitVertical cuts the area into a top part sized by the constraint and a
// bottom part holding the remainder.
func SplitVertical(area cellbuf.Rectangle, c Constraint) (top, bottom cellbuf.Rectangle) {
	h := min(c.Apply(area.Dy()), area.Dy())
	top = cellbuf.Rectangle{Min: area.Min, Max: cellbuf.Pos(area.Max.X, area.Min.Y+h)}
	bottom = cellbuf.Rectangle{Min: cellbuf.Pos(area.Min.X, area.Min.Y+h), Max: area.Max}
	return top, bottom
}

// SplitHorizontal cuts the area into a left part sized by the constraint and
// a right part holding the remainder. gap columns between the two are left
// unassigned.
func SplitHorizontal(area cellbuf.Rectangle, c Constraint, gap int) (left, right cellbuf.Rectangle) {
	w := min(c.Apply(area.Dx()), area.Dx())
	left = cellbuf.Rectangle{Min: area.Min, Max: cellbuf.Pos(area.Min.X+w, area.Max.Y)}
	rx := min(area.Min.X+w+gap, area.Max.X)
	right = cellbuf.Rectangle{Min: cellbuf.Pos(rx, area.Min.Y), Max: area.Max}
	return left, right
}
