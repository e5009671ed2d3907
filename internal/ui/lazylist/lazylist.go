// Package lazylist is a scrollable column of lazily rendered items: each
// item shows a cheap placeholder until the visibility coordinator reveals
// it, and only then is its content produced. The list itself is the
// coordinator's document-mode host: its scroll offset and height form the
// viewport, key and wheel scrolling feed the window scroll listener, and
// size changes feed the resize listener.
package lazylist

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

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll down")),
		PageUp:   key.NewBinding(key.WithKeys("pgup", "b"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown", "f"), key.WithHelp("pgdn", "page down")),
		Top:      key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "go to top")),
		Bottom:   key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "go to bottom")),
	}
}

type Styles struct {
	Title       lipgloss.Style
	Placeholder lipgloss.Style
	Loading     lipgloss.Style
	Content     lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Title:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
		Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Loading:     lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		Content:     lipgloss.NewStyle(),
	}
}

// Model is the list widget. It implements tea.Model and, towards the
// coordinator, lazy.Host and lazy.Viewport (in cell units: one line = one
// unit).
type Model struct {
	common.Sizeable
	coord     *lazy.Coordinator
	items     []*Item
	startLine int
	focused   bool
	keymap    keyMap
	styles    Styles
	defaults  []lazy.ElementOption
	coordOpts []lazy.Option
	send      func(tea.Msg)

	scrollFn func()
	resizeFn func()

	revealMu    sync.Mutex
	revealQueue []int
	pendingPass func()
}

var (
	_ tea.Model         = (*Model)(nil)
	_ lazy.Host         = (*Model)(nil)
	_ lazy.Viewport     = (*Model)(nil)
	_ common.Focusable  = (*Model)(nil)
	_ common.Scrollable = (*Model)(nil)
)

type Option func(*Model)

// WithCoordinatorOptions forwards options (rate-limiter policy) to the
// coordinator.
func WithCoordinatorOptions(opts ...lazy.Option) Option {
	return func(m *Model) { m.coordOpts = opts }
}

// WithElementDefaults applies opts to every item ahead of the item's own
// options.
func WithElementDefaults(opts ...lazy.ElementOption) Option {
	return func(m *Model) { m.defaults = opts }
}

func WithStyles(s Styles) Option {
	return func(m *Model) { m.styles = s }
}

func New(items []*Item, opts ...Option) *Model {
	m := &Model{
		items:   items,
		keymap:  defaultKeyMap(),
		styles:  DefaultStyles(),
		focused: true,
	}
	for i, it := range items {
		it.id = i
	}
	for _, opt := range opts {
		opt(m)
	}
	// Item geometry lives on the event loop; limiter timers must not walk it
	// from their own goroutine.
	m.coord = lazy.New(m, append(m.coordOpts, lazy.WithScheduler(m.schedulePass))...)
	return m
}

// SetSend wires tea.Program.Send so reveals produced by rate-limiter timers
// wake the program loop. Optional; without it they surface on the next
// input event.
func (m *Model) SetSend(send func(tea.Msg)) {
	m.send = send
}

func (m *Model) Coordinator() *lazy.Coordinator { return m.coord }

func (m *Model) IsFocused() bool         { return m.focused }
func (m *Model) SetFocused(focused bool) { m.focused = focused }

// Viewport, ScrollTop and ViewHeight make the list its own document view.
func (m *Model) Viewport() lazy.Viewport { return m }
func (m *Model) ScrollTop() float64      { return float64(m.startLine) }
func (m *Model) ViewHeight() float64     { return float64(m.Height) }

func (m *Model) OnScroll(fn func()) func() {
	m.scrollFn = fn
	return func() { m.scrollFn = nil }
}

func (m *Model) OnResize(fn func()) func() {
	m.resizeFn = fn
	return func() { m.resizeFn = nil }
}

// Init mounts every item with the coordinator; items already in view are
// revealed by the mount-time check, so their load commands are returned
// right away.
func (m *Model) Init() tea.Cmd {
	for _, it := range m.items {
		m.mount(it)
	}
	return m.drainReveals()
}

func (m *Model) mount(it *Item) {
	opts := make([]lazy.ElementOption, 0, len(m.defaults)+len(it.opts)+1)
	opts = append(opts, m.defaults...)
	opts = append(opts, lazy.Height(float64(it.placeholder)))
	opts = append(opts, it.opts...)
	id := it.id
	it.el = m.coord.Register(
		&itemNode{list: m, item: it},
		lazy.RenderableFunc(func() { m.reveal(id) }),
		opts...,
	)
}

// RemoveItem unmounts the item with the given id and drops it from the
// list.
func (m *Model) RemoveItem(id int) {
	for idx, it := range m.items {
		if it.id == id {
			m.coord.Unregister(it.el)
			m.items = append(m.items[:idx], m.items[idx+1:]...)
			m.startLine = common.ClampStart(m.startLine, m.Height, m.totalLines())
			return
		}
	}
}

// Close unmounts everything; used when the widget is torn down before the
// program exits.
func (m *Model) Close() {
	m.coord.Close()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
	case common.ItemRevealedMsg:
		if cmd := m.startLoad(msg.ID); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case common.ItemLoadedMsg:
		m.finishLoad(msg.ID, msg.Content)
	case tea.KeyMsg:
		if m.focused {
			m.handleKey(msg)
		}
	case tea.MouseMsg:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.Scroll(-3)
		case tea.MouseButtonWheelDown:
			m.Scroll(3)
		}
	}
	m.runPendingPass()
	if cmd := m.drainReveals(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keymap.Up):
		m.Scroll(-1)
	case key.Matches(msg, m.keymap.Down):
		m.Scroll(1)
	case key.Matches(msg, m.keymap.PageUp):
		m.Scroll(-max(1, m.Height-1))
	case key.Matches(msg, m.keymap.PageDown):
		m.Scroll(max(1, m.Height-1))
	case key.Matches(msg, m.keymap.Top):
		m.Scroll(-m.totalLines())
	case key.Matches(msg, m.keymap.Bottom):
		m.Scroll(m.totalLines())
	}
}

// Scroll moves the window by delta lines and pushes the event through the
// coordinator's rate limiter. Scroll runs on the event loop, so a pass the
// limiter admitted immediately executes here rather than waiting for the
// next message.
func (m *Model) Scroll(delta int) tea.Cmd {
	m.startLine = common.ClampStart(m.startLine+delta, m.Height, m.totalLines())
	if m.scrollFn != nil {
		m.scrollFn()
	}
	m.runPendingPass()
	return nil
}

// SetFrame places the widget on screen and reports the change as a resize
// event. Without a bound resize listener an unthrottled pass runs instead:
// layout changes are rare but must re-evaluate visibility.
func (m *Model) SetFrame(f cellbuf.Rectangle) {
	m.Sizeable.SetFrame(f)
	m.startLine = common.ClampStart(m.startLine, m.Height, m.totalLines())
	if m.resizeFn != nil {
		m.resizeFn()
		m.runPendingPass()
	} else {
		m.coord.CheckAll()
	}
}

func (m *Model) SetSize(width, height int) {
	m.SetFrame(cellbuf.Rect(0, 0, width, height))
}

func (m *Model) View() string {
	if m.Width <= 0 || m.Height <= 0 {
		return ""
	}
	lines := make([]string, 0, m.startLine+m.Height)
	for _, it := range m.items {
		lines = append(lines, m.renderItem(it)...)
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

func (m *Model) renderItem(it *Item) []string {
	out := []string{m.styles.Title.Render("▍ " + it.title)}
	if it.loaded {
		for _, l := range it.content {
			out = append(out, m.styles.Content.Render(l))
		}
		return out
	}
	filler := m.styles.Placeholder.Render(strings.Repeat("░", max(1, m.Width-2)))
	if it.loading {
		filler = m.styles.Loading.Render("rendering…")
	}
	for len(out) < it.placeholder {
		out = append(out, filler)
	}
	return out
}

func (m *Model) reveal(id int) {
	m.revealMu.Lock()
	m.revealQueue = append(m.revealQueue, id)
	send := m.send
	m.revealMu.Unlock()
	if send != nil {
		go send(common.WakeMsg{})
	}
}

// schedulePass parks a limiter-initiated check pass until the event loop
// picks it up; limiter timers fire on their own goroutine and must not read
// item geometry themselves.
func (m *Model) schedulePass(run func()) {
	m.revealMu.Lock()
	m.pendingPass = run
	send := m.send
	m.revealMu.Unlock()
	if send != nil {
		go send(common.WakeMsg{})
	}
}

func (m *Model) runPendingPass() {
	m.revealMu.Lock()
	run := m.pendingPass
	m.pendingPass = nil
	m.revealMu.Unlock()
	if run != nil {
		run()
	}
}

func (m *Model) drainReveals() tea.Cmd {
	m.revealMu.Lock()
	queue := m.revealQueue
	m.revealQueue = nil
	m.revealMu.Unlock()
	if len(queue) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(queue))
	for _, id := range queue {
		cmds = append(cmds, common.ItemRevealed(id))
	}
	return tea.Batch(cmds...)
}

func (m *Model) startLoad(id int) tea.Cmd {
	it := m.itemByID(id)
	if it == nil || it.loaded || it.loading {
		return nil
	}
	if it.loader == nil {
		it.setContent("")
		return nil
	}
	it.loading = true
	loader := it.loader
	return func() tea.Msg {
		return common.ItemLoadedMsg{ID: id, Content: loader()}
	}
}

func (m *Model) finishLoad(id int, content string) {
	it := m.itemByID(id)
	if it == nil {
		return
	}
	it.setContent(content)
	m.startLine = common.ClampStart(m.startLine, m.Height, m.totalLines())
	// Loaded content rarely matches the placeholder height, so neighbors may
	// have shifted into view.
	m.coord.CheckAll()
}

func (m *Model) itemByID(id int) *Item {
	for _, it := range m.items {
		if it.id == id {
			return it
		}
	}
	return nil
}

func (m *Model) totalLines() int {
	total := 0
	for _, it := range m.items {
		total += it.lines()
	}
	return total
}

// topOf returns the item's first line in list coordinates; ok is false when
// the item is no longer part of the list.
func (m *Model) topOf(target *Item) (int, bool) {
	top := 0
	for _, it := range m.items {
		if it == target {
			return top, true
		}
		top += it.lines()
	}
	return 0, false
}

// itemNode adapts an item's list position to the coordinator's geometry
// capability. The rect is viewport-relative, so the current start line is
// subtracted out.
type itemNode struct {
	list *Model
	item *Item
}

func (n *itemNode) Parent() lazy.Node { return nil }

func (n *itemNode) Rect() (geom.Rect, bool) {
	top, ok := n.list.topOf(n.item)
	if !ok {
		return geom.Rect{}, false
	}
	return geom.NewRect(
		0,
		float64(top-n.list.startLine),
		float64(n.list.Width),
		float64(n.item.lines()),
	), true
}
