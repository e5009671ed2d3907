package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/cellbuf"

	"github.com/idursun/lazyview/internal/ui/common"
	"github.com/idursun/lazyview/internal/ui/layout"
	"github.com/idursun/lazyview/internal/ui/lazylist"
	"github.com/idursun/lazyview/internal/ui/lazypane"
)

type keyMap struct {
	FocusNext key.Binding
	Scroll    key.Binding
	Page      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		FocusNext: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch pane")),
		Scroll:    key.NewBinding(key.WithKeys("up", "down", "k", "j"), key.WithHelp("↑/↓", "scroll")),
		Page:      key.NewBinding(key.WithKeys("pgup", "pgdown"), key.WithHelp("pgup/pgdn", "page")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.FocusNext, k.Scroll, k.Page, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var separatorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

// Model is the program root: a lazily loading list on the left and a lazily
// revealing pane on the right, with focus cycling between them.
type Model struct {
	list   *lazylist.Model
	pane   *lazypane.Model
	help   help.Model
	keymap keyMap
	width  int
	height int
}

var _ tea.Model = (*Model)(nil)

func New(list *lazylist.Model, pane *lazypane.Model) *Model {
	list.SetFocused(true)
	return &Model{
		list:   list,
		pane:   pane,
		help:   help.New(),
		keymap: defaultKeyMap(),
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(tea.SetWindowTitle("lazyview"), m.list.Init(), m.pane.Init())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.applyLayout()
		return m, nil
	case common.FocusCycleMsg:
		m.cycleFocus()
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keymap.Quit):
			m.list.Close()
			m.pane.Close()
			return m, tea.Quit
		case key.Matches(msg, m.keymap.FocusNext):
			return m, common.FocusCycle
		}
		return m, m.forward(msg)
	case tea.MouseMsg:
		return m, m.route(msg)
	}
	return m, m.forward(msg)
}

func (m *Model) cycleFocus() {
	toPane := m.list.IsFocused()
	m.list.SetFocused(!toPane)
	m.pane.SetFocused(toPane)
}

// forward hands the message to both widgets; each decides whether it cares.
func (m *Model) forward(msg tea.Msg) tea.Cmd {
	_, listCmd := m.list.Update(msg)
	_, paneCmd := m.pane.Update(msg)
	return tea.Batch(listCmd, paneCmd)
}

// route delivers a mouse event only to the widget under the pointer, so the
// wheel scrolls the pane being hovered rather than the focused one.
func (m *Model) route(msg tea.MouseMsg) tea.Cmd {
	if contains(m.list.Frame, msg.X, msg.Y) {
		_, cmd := m.list.Update(msg)
		return cmd
	}
	if contains(m.pane.Frame, msg.X, msg.Y) {
		_, cmd := m.pane.Update(msg)
		return cmd
	}
	return nil
}

func contains(f cellbuf.Rectangle, x, y int) bool {
	return x >= f.Min.X && x < f.Max.X && y >= f.Min.Y && y < f.Max.Y
}

func (m *Model) applyLayout() {
	content, _ := layout.SplitVertical(cellbuf.Rect(0, 0, m.width, m.height), layout.Fixed(m.height-1))
	left, right := layout.SplitHorizontal(content, layout.Percent(60), 1)
	m.list.SetFrame(left)
	m.pane.SetFrame(right)
}

func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	contentHeight := m.height - 1
	sep := strings.TrimSuffix(strings.Repeat(separatorStyle.Render("│")+"\n", contentHeight), "\n")
	content := lipgloss.JoinHorizontal(lipgloss.Top, m.list.View(), sep, m.pane.View())
	return content + "\n" + m.help.View(m.keymap)
}
