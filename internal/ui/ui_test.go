package ui

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idursun/lazyview/internal/lazy"
	"github.com/idursun/lazyview/internal/ui/lazylist"
	"github.com/idursun/lazyview/internal/ui/lazypane"
	"github.com/idursun/lazyview/test"
)

// Rate limiting is irrelevant to these tests; a huge throttle interval keeps
// every pass on the leading edge and therefore synchronous.
func newTestUI(t *testing.T) *Model {
	t.Helper()
	var items []*lazylist.Item
	for i := 0; i < 6; i++ {
		body := fmt.Sprintf("body-%d", i)
		items = append(items, lazylist.NewItem(fmt.Sprintf("item-%d", i), 8, func() string { return body }))
	}
	var entries []*lazypane.Entry
	for i := 0; i < 6; i++ {
		entries = append(entries, lazypane.NewEntry(fmt.Sprintf("entry-%d", i), "a\nb\nc\nd"))
	}
	list := lazylist.New(items, lazylist.WithCoordinatorOptions(lazy.WithThrottle(time.Hour)))
	pane := lazypane.New(entries, lazypane.WithCoordinatorOptions(lazy.WithThrottle(time.Hour)))
	m := New(list, pane)
	m.Init()
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 21})
	return m
}

func TestLayout_SplitsContentRowBetweenWidgets(t *testing.T) {
	m := newTestUI(t)

	assert.Equal(t, 60, m.list.Frame.Dx())
	assert.Equal(t, 20, m.list.Frame.Dy())
	assert.Equal(t, 61, m.pane.Frame.Min.X)
	assert.Equal(t, 39, m.pane.Frame.Dx())
	assert.Equal(t, 20, m.pane.Frame.Dy())
}

func TestTab_CyclesFocusBetweenListAndPane(t *testing.T) {
	m := newTestUI(t)
	require.True(t, m.list.IsFocused())
	require.False(t, m.pane.IsFocused())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	require.NotNil(t, cmd)
	m.Update(cmd())

	assert.False(t, m.list.IsFocused())
	assert.True(t, m.pane.IsFocused())

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m.Update(cmd())

	assert.True(t, m.list.IsFocused())
	assert.False(t, m.pane.IsFocused())
}

func TestMouseWheel_ScrollsOnlyTheHoveredWidget(t *testing.T) {
	m := newTestUI(t)
	listBefore := m.list.View()
	paneBefore := m.pane.View()

	wheel := tea.MouseMsg{X: 70, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown}
	m.Update(wheel)

	assert.Equal(t, listBefore, m.list.View(), "list is not under the pointer")
	assert.NotEqual(t, paneBefore, m.pane.View(), "pane is under the pointer")
}

func TestQuit_TearsDownBothCoordinators(t *testing.T) {
	m := newTestUI(t)
	require.NotZero(t, m.list.Coordinator().Len())

	quits := 0
	test.SimulateModel(m, test.Type("q"), func(msg tea.Msg) {
		if _, ok := msg.(tea.QuitMsg); ok {
			quits++
		}
	})

	assert.Equal(t, 1, quits)
	assert.Zero(t, m.list.Coordinator().Len())
	assert.Zero(t, m.pane.Coordinator().Len())
}

func TestView_ShowsBothWidgetsAndTheHelpLine(t *testing.T) {
	m := newTestUI(t)

	view := m.View()
	stripped := test.Stripped(view)

	assert.Contains(t, stripped, "item-0")
	assert.Contains(t, stripped, "entry-0")
	assert.Contains(t, stripped, "switch pane")
	assert.Equal(t, 21, len(strings.Split(view, "\n")))
}
