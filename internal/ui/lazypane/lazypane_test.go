package lazypane

import (
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idursun/lazyview/internal/lazy"
	"github.com/idursun/lazyview/internal/ui/common"
	"github.com/idursun/lazyview/test"
)

func makeEntries(n int) []*Entry {
	entries := make([]*Entry, 0, n)
	for i := 0; i < n; i++ {
		entries = append(entries, NewEntry(
			fmt.Sprintf("entry-%d", i),
			fmt.Sprintf("body-%d\nline\nline\nline", i), // 5 lines per entry
		))
	}
	return entries
}

func newTestPane(n int) *Model {
	m := New(makeEntries(n), WithCoordinatorOptions(lazy.WithThrottle(time.Hour)))
	m.SetSize(20, 10)
	m.Init()
	return m
}

func TestInit_RevealsEntriesInsideTheWindow(t *testing.T) {
	m := newTestPane(6)

	assert.True(t, m.entries[0].revealed)
	assert.True(t, m.entries[1].revealed)
	assert.False(t, m.entries[2].revealed)

	view := m.View()
	assert.Contains(t, view, "body-0")
	assert.NotContains(t, view, "body-2")
}

func TestScroll_RevealsContainedEntriesOnly(t *testing.T) {
	m := newTestPane(6)

	m.Scroll(5)
	assert.True(t, m.entries[1].revealed)
	assert.True(t, m.entries[2].revealed, "entry-2 is now fully inside the window")
	assert.False(t, m.entries[3].revealed, "entry-3 straddles the window edge")
}

func TestScroll_NoWindowListenerIsEverBound(t *testing.T) {
	m := newTestPane(3)
	require.NotNil(t, m.box.scrollFn, "the container listener is bound instead")
}

func TestRevealIsSticky(t *testing.T) {
	m := newTestPane(6)
	require.True(t, m.entries[0].revealed)

	m.Scroll(10)
	assert.False(t, m.entries[0].el.Visible(), "scrolled out of the window")
	assert.True(t, m.entries[0].revealed, "rendered content is kept after first reveal")

	// The second scroll lands inside the throttle interval; run the pass the
	// trailing timer would have.
	m.Scroll(-10)
	m.Coordinator().CheckAll()
	assert.True(t, m.entries[0].el.Visible())
}

func TestKeysScrollOnlyWhenFocused(t *testing.T) {
	m := newTestPane(6)
	m.SetFocused(false)
	test.SimulateModel(m, test.Press(tea.KeyDown))
	assert.Equal(t, 0, m.startLine)

	m.SetFocused(true)
	test.SimulateModel(m, test.Press(tea.KeyDown))
	assert.Equal(t, 1, m.startLine)
}

// A timer-fired pass never walks entry geometry itself: it parks the pass and
// the next Update runs it on the event loop.
func TestTimerScheduledPass_RunsInsideUpdate(t *testing.T) {
	m := newTestPane(6)
	require.False(t, m.entries[2].revealed)

	m.startLine = 5
	m.schedulePass(m.coord.CheckAll)
	assert.False(t, m.entries[2].revealed, "the pass waits for the event loop")

	m.Update(common.WakeMsg{})
	assert.True(t, m.entries[2].revealed)
}

func TestClose_DetachesContainerListener(t *testing.T) {
	m := newTestPane(3)
	require.NotNil(t, m.box.scrollFn)

	m.Close()
	assert.Nil(t, m.box.scrollFn)
	assert.Equal(t, 0, m.Coordinator().Len())
}
