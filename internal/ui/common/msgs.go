package common

import tea "github.com/charmbracelet/bubbletea"

type (
	// ItemRevealedMsg announces that a tracked item crossed hidden→visible
	// and its real content should be produced.
	ItemRevealedMsg struct {
		ID int
	}
	// ItemLoadedMsg carries the finished content of a revealed item.
	ItemLoadedMsg struct {
		ID      int
		Content string
	}
	// WakeMsg wakes the program loop so work parked by a rate-limiter timer
	// runs on the next Update.
	WakeMsg struct{}
	// FocusCycleMsg moves focus to the next widget.
	FocusCycleMsg struct{}
)

func ItemRevealed(id int) tea.Cmd {
	return func() tea.Msg {
		return ItemRevealedMsg{ID: id}
	}
}

func FocusCycle() tea.Msg {
	return FocusCycleMsg{}
}
