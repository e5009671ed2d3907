// Package lazypane is a nested scrolling pane: a region with its own scroll
// offset whose entries are tracked in container mode, against the pane's
// window rather than the document viewport. Entries keep their size on
// reveal; only their content swaps in.
package lazypane

import (
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/cellbuf"

	"github.com/idursun/lazyview/internal/geom"
	"github.com/idursun/lazyview/internal/lazy"
	"github.com/idursun/lazyview/internal/ui/common"
)

// Entry is one lazily revealed block of the pane. Its rendered height never
// changes: the placeholder occupies exactly the lines the body will.
type Entry struct {
	id       int
	title    string
	body     []string
	revealed bool
	el       *lazy.Element
	opts     []lazy.ElementOption
}

func NewEntry(title, body string, opts ...lazy.ElementOption) *Entry {
	return &Entry{
		title: title,
		body:  strings.Split(body, "\n"),
		opts:  opts,
	}
}

func (e *Entry) lines() int { return 1 + len(e.body) }

type keyMap struct {
	Up   key.Binding
	Down key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll up")),
		Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll down")),
	}
}

type Styles struct {
	Title       lipgloss.Style
	Placeholder lipgloss.Style
	Body        lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Title:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5")),
		Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Body:        lipgloss.NewStyle(),
	}
}

// Model is the pane widget. It hosts its own coordinator; the pane's window
// is the container every entry resolves to, so no window-level listener is
// ever bound.
type Model struct {
	common.Sizeable
	coord     *lazy.Coordinator
	box       *paneBox
	entries   []*Entry
	startLine int
	focused   bool
	keymap    keyMap
	styles    Styles
	coordOpts []lazy.Option

	send func(tea.Msg)

	passMu      sync.Mutex
	pendingPass func()
}

var (
	_ tea.Model         = (*Model)(nil)
	_ lazy.Host         = (*Model)(nil)
	_ common.Focusable  = (*Model)(nil)
	_ common.Scrollable = (*Model)(nil)
)

type Option func(*Model)

func WithCoordinatorOptions(opts ...lazy.Option) Option {
	return func(m *Model) { m.coordOpts = opts }
}

func WithStyles(s Styles) Option {
	return func(m *Model) { m.styles = s }
}

func New(entries []*Entry, opts ...Option) *Model {
	m := &Model{
		entries: entries,
		keymap:  defaultKeyMap(),
		styles:  DefaultStyles(),
	}
	for i, e := range entries {
		e.id = i
	}
	for _, opt := range opts {
		opt(m)
	}
	m.box = &paneBox{pane: m}
	// Entry geometry and the revealed flag live on the event loop; limiter
	// timers must not touch them from their own goroutine.
	m.coord = lazy.New(m, append(m.coordOpts, lazy.WithScheduler(m.schedulePass))...)
	return m
}

func (m *Model) Coordinator() *lazy.Coordinator { return m.coord }

// SetSend hands the pane the running program's send function so a pass queued
// by a limiter timer can wake the event loop.
func (m *Model) SetSend(send func(tea.Msg)) { m.send = send }

// schedulePass parks a limiter-initiated check pass until the event loop
// picks it up.
func (m *Model) schedulePass(run func()) {
	m.passMu.Lock()
	m.pendingPass = run
	m.passMu.Unlock()
	if m.send != nil {
		go m.send(common.WakeMsg{})
	}
}

func (m *Model) runPendingPass() {
	m.passMu.Lock()
	run := m.pendingPass
	m.pendingPass = nil
	m.passMu.Unlock()
	if run != nil {
		run()
	}
}

func (m *Model) IsFocused() bool         { return m.focused }
func (m *Model) SetFocused(focused bool) { m.focused = focused }

// Viewport is the screen itself: it never scrolls, entries resolve to the
// pane's window instead.
func (m *Model) Viewport() lazy.Viewport { return staticViewport{pane: m} }

func (m *Model) OnScroll(fn func()) func() { return func() {} }
func (m *Model) OnResize(fn func()) func() { return func() {} }

func (m *Model) Init() tea.Cmd {
	for _, e := range m.entries {
		opts := make([]lazy.ElementOption, 0, len(e.opts)+2)
		opts = append(opts, lazy.InOverflow(), lazy.Height(float64(e.lines())))
		opts = append(opts, e.opts...)
		entry := e
		e.el = m.coord.Register(
			&entryNode{pane: m, entry: e},
			lazy.RenderableFunc(func() { entry.revealed = true }),
			opts...,
		)
	}
	return nil
}

func (m *Model) Close() {
	m.coord.Close()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.runPendingPass()
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
	case tea.KeyMsg:
		if !m.focused {
			break
		}
		switch {
		case key.Matches(msg, m.keymap.Up):
			m.Scroll(-1)
		case key.Matches(msg, m.keymap.Down):
			m.Scroll(1)
		}
	case tea.MouseMsg:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.Scroll(-3)
		case tea.MouseButtonWheelDown:
			m.Scroll(3)
		}
	}
	return m, nil
}

// Scroll moves the pane's window and delivers the container scroll event.
// Scroll runs on the event loop, so a pass the limiter admitted immediately
// executes here rather than waiting for the next message.
func (m *Model) Scroll(delta int) tea.Cmd {
	m.startLine = common.ClampStart(m.startLine+delta, m.Height, m.totalLines())
	if m.box.scrollFn != nil {
		m.box.scrollFn()
	}
	m.runPendingPass()
	return nil
}

// SetFrame places the pane on screen; a direct pass re-evaluates entries
// since container mode has no resize listener.
func (m *Model) SetFrame(f cellbuf.Rectangle) {
	m.Sizeable.SetFrame(f)
	m.startLine = common.ClampStart(m.startLine, m.Height, m.totalLines())
	m.coord.CheckAll()
}

func (m *Model) SetSize(width, height int) {
	m.SetFrame(cellbuf.Rect(0, 0, width, height))
}

func (m *Model) View() string {
	if m.Width <= 0 || m.Height <= 0 {
		return ""
	}
	lines := make([]string, 0, m.startLine+m.Height)
	for _, e := range m.entries {
		lines = append(lines, m.renderEntry(e)...)
		if len(lines) >= m.startLine+m.Height {
			break
		}
	}
	end := min(m.startLine+m.Height, len(lines))
	start := min(m.startLine, end)
	visible := make([]string, m.Height)
	copy(visible, lines[start:end])
	return strings.Join(visible, "\n")
}

func (m *Model) renderEntry(e *Entry) []string {
	out := []string{m.styles.Title.Render("· " + e.title)}
	if e.revealed {
		for _, l := range e.body {
			out = append(out, m.styles.Body.Render(l))
		}
		return out
	}
	filler := m.styles.Placeholder.Render(strings.Repeat("░", max(1, m.Width-2)))
	for len(out) < e.lines() {
		out = append(out, filler)
	}
	return out
}

func (m *Model) totalLines() int {
	total := 0
	for _, e := range m.entries {
		total += e.lines()
	}
	return total
}

func (m *Model) topOf(target *Entry) (int, bool) {
	top := 0
	for _, e := range m.entries {
		if e == target {
			return top, true
		}
		top += e.lines()
	}
	return 0, false
}

// paneBox is the pane's window as the coordinator sees it: a container
// pinned at the origin of the pane's screen space.
type paneBox struct {
	pane     *Model
	scrollFn func()
}

func (b *paneBox) Parent() lazy.Node { return nil }

func (b *paneBox) Rect() (geom.Rect, bool) {
	return geom.NewRect(0, 0, float64(b.pane.Width), float64(b.pane.Height)), true
}

func (b *paneBox) ScrollTop() float64   { return float64(b.pane.startLine) }
func (b *paneBox) ViewHeight() float64  { return float64(b.pane.Height) }
func (b *paneBox) ScrollsContent() bool { return true }

func (b *paneBox) OnScroll(fn func()) func() {
	b.scrollFn = fn
	return func() { b.scrollFn = nil }
}

// staticViewport satisfies the document view for a screen that never
// scrolls.
type staticViewport struct {
	pane *Model
}

func (v staticViewport) ScrollTop() float64  { return 0 }
func (v staticViewport) ViewHeight() float64 { return float64(v.pane.Height) }

// entryNode reports an entry's box relative to the pane's screen space.
type entryNode struct {
	pane  *Model
	entry *Entry
}

func (n *entryNode) Parent() lazy.Node { return n.pane.box }

func (n *entryNode) Rect() (geom.Rect, bool) {
	top, ok := n.pane.topOf(n.entry)
	if !ok {
		return geom.Rect{}, false
	}
	return geom.NewRect(
		0,
		float64(top-n.pane.startLine),
		float64(n.pane.Width),
		float64(n.entry.lines()),
	), true
}
