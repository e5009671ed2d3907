package common

import "github.com/charmbracelet/x/cellbuf"

// Sizeable carries a widget's box: the on-screen frame plus its dimensions in
// cells. Widgets embed it and read Width/Height directly.
type Sizeable struct {
	Width  int
	Height int
	Frame  cellbuf.Rectangle
}

// SetFrame places the widget and derives its dimensions.
func (s *Sizeable) SetFrame(f cellbuf.Rectangle) {
	s.Frame = f
	s.Width = f.Dx()
	s.Height = f.Dy()
}
