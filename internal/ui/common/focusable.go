package common

import tea "github.com/charmbracelet/bubbletea"

type Focusable interface {
	IsFocused() bool
	SetFocused(focused bool)
}

// Scrollable is a widget whose content scrolls; delta is in lines, positive
// scrolls down.
type Scrollable interface {
	Scroll(delta int) tea.Cmd
}
