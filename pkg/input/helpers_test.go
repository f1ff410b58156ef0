package input

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-drift/arbor/pkg/graphics"
	"github.com/go-drift/arbor/pkg/interactivity"
	"github.com/go-drift/arbor/pkg/tree"
)

type testInput struct {
	InputElement
	keyRoutes []interactivity.RoutingStrategies
}

func newTestInput(name string, bounds graphics.Rect) *testInput {
	e := &testInput{}
	e.SetSelf(e)
	e.SetName(name)
	e.SetBounds(bounds)
	return e
}

func (e *testInput) OnKeyDown(args *KeyEventArgs) {
	e.keyRoutes = append(e.keyRoutes, args.Route())
}

func (e *testInput) add(t *testing.T, children ...Element) *testInput {
	t.Helper()
	for _, c := range children {
		require.NoError(t, e.AddVisualChild(c))
	}
	return e
}

// testScope is a root that owns a focus manager.
type testScope struct {
	testInput
	focus *FocusManager
}

func newTestScope(bounds graphics.Rect) *testScope {
	s := &testScope{}
	s.SetSelf(s)
	s.SetName("scope")
	s.SetBounds(bounds)
	s.focus = NewFocusManager(s)
	return s
}

func (s *testScope) FocusManager() *FocusManager { return s.focus }

// eventLog records "event:element" for every subscribed event.
type eventLog struct {
	entries []string
}

func (l *eventLog) watch(e *testInput, events ...*interactivity.RoutedEvent) {
	for _, ev := range events {
		name := ev.Name()
		e.AddHandler(ev, interactivity.Func(func(sender tree.Node, _ interactivity.EventArgs) {
			l.entries = append(l.entries, name+":"+sender.(interface{ Name() string }).Name())
		}), interactivity.Direct|interactivity.Tunnel|interactivity.Bubble, true)
	}
}

func rect(l, t, w, h float64) graphics.Rect { return graphics.RectFromLTWH(l, t, w, h) }
