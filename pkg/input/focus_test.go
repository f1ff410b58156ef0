package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// focusFixture is scope > [a, b, c] laid out left to right, plus a disabled
// d and a non-focusable label.
type focusFixture struct {
	scope      *testScope
	a, b, c, d *testInput
	label      *testInput
}

func newFocusFixture(t *testing.T) *focusFixture {
	t.Helper()
	f := &focusFixture{
		scope: newTestScope(rect(0, 0, 300, 200)),
		a:     newTestInput("a", rect(0, 0, 50, 50)),
		b:     newTestInput("b", rect(100, 0, 50, 50)),
		c:     newTestInput("c", rect(200, 0, 50, 50)),
		d:     newTestInput("d", rect(0, 100, 50, 50)),
		label: newTestInput("label", rect(100, 100, 50, 50)),
	}
	for _, e := range []*testInput{f.a, f.b, f.c, f.d} {
		e.SetFocusable(true)
	}
	f.d.SetIsEnabled(false)
	f.scope.add(t, f.a, f.b, f.c, f.d, f.label)
	return f
}

func TestFocusRaisesLostThenGot(t *testing.T) {
	f := newFocusFixture(t)
	log := &eventLog{}
	log.watch(f.a, GotFocusEvent, LostFocusEvent)
	log.watch(f.b, GotFocusEvent, LostFocusEvent)
	log.watch(&f.scope.testInput, GotFocusEvent)

	require.True(t, f.scope.focus.Focus(f.a, NavigationUnspecified))
	require.True(t, f.scope.focus.Focus(f.b, NavigationUnspecified))

	assert.Equal(t, []string{
		"GotFocus:a", "GotFocus:scope",
		"LostFocus:a",
		"GotFocus:b", "GotFocus:scope",
	}, log.entries)
	assert.False(t, f.a.IsFocused())
	assert.True(t, f.b.IsFocused())
	assert.False(t, f.scope.IsFocused(), "ancestors see GotFocus but are not focused")
	assert.Same(t, f.b, f.scope.focus.Current())
}

func TestFocusRefusesUnfocusable(t *testing.T) {
	f := newFocusFixture(t)
	m := f.scope.focus
	require.True(t, m.Focus(f.a, NavigationUnspecified))

	assert.False(t, m.Focus(f.label, NavigationUnspecified), "not focusable")
	assert.False(t, m.Focus(f.d, NavigationUnspecified), "disabled")
	assert.False(t, m.Focus(f.a, NavigationUnspecified), "already focused")
	assert.Same(t, f.a, m.Current())

	assert.True(t, m.Focus(nil, NavigationUnspecified))
	assert.Nil(t, m.Current())
	assert.False(t, f.a.IsFocused())
}

func TestElementFocus(t *testing.T) {
	f := newFocusFixture(t)
	assert.True(t, f.c.Focus())
	assert.True(t, f.c.IsFocused())
	assert.False(t, f.label.Focus())

	orphan := newTestInput("orphan", rect(0, 0, 1, 1))
	orphan.SetFocusable(true)
	assert.False(t, orphan.Focus(), "no focus scope above")
}

func TestMoveFocusWraps(t *testing.T) {
	f := newFocusFixture(t)
	m := f.scope.focus

	assert.Equal(t, []Element{f.a, f.b, f.c}, m.Focusable())

	require.True(t, m.MoveFocus(1))
	assert.Same(t, f.a, m.Current())
	require.True(t, m.MoveFocus(1))
	require.True(t, m.MoveFocus(1))
	assert.Same(t, f.c, m.Current())
	require.True(t, m.MoveFocus(1))
	assert.Same(t, f.a, m.Current(), "wraps to the first element")
	require.True(t, m.MoveFocus(-1))
	assert.Same(t, f.c, m.Current())
}

func TestMoveFocusBackwardWithoutFocus(t *testing.T) {
	f := newFocusFixture(t)
	require.True(t, f.scope.focus.MoveFocus(-1))
	assert.Same(t, f.c, f.scope.focus.Current())
}

func TestFocusInDirection(t *testing.T) {
	f := newFocusFixture(t)
	m := f.scope.focus
	f.d.SetIsEnabled(true)

	require.True(t, m.Focus(f.b, NavigationUnspecified))
	require.True(t, m.FocusInDirection(TraversalDirectionRight))
	assert.Same(t, f.c, m.Current())

	require.True(t, m.FocusInDirection(TraversalDirectionLeft))
	assert.Same(t, f.b, m.Current(), "nearest to the left")

	require.True(t, m.FocusInDirection(TraversalDirectionDown))
	assert.Same(t, f.d, m.Current(), "only candidate below")
}

func TestDetachingFocusedElementClearsFocus(t *testing.T) {
	f := newFocusFixture(t)
	inner := newTestInput("inner", rect(0, 0, 10, 10))
	inner.SetFocusable(true)
	f.b.add(t, inner)
	require.True(t, inner.Focus())

	require.True(t, f.scope.RemoveVisualChild(f.b))
	assert.Nil(t, f.scope.focus.Current())
	assert.False(t, inner.IsFocused())
}
