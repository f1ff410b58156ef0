package commands

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/go-drift/arbor/cmd/arbor/internal/document"
	"github.com/go-drift/arbor/cmd/arbor/internal/state"
	"github.com/go-drift/arbor/pkg/graphics"
	"github.com/go-drift/arbor/pkg/input"
	"github.com/go-drift/arbor/pkg/interactivity"
	arbortest "github.com/go-drift/arbor/pkg/testing"
)

// EventOptions carries the payload of key and text events.
type EventOptions struct {
	Key  string
	Text string
}

// Events raises an event on a named element of a scene and prints where it
// was delivered.
func Events(ctx context.Context, cmd *cli.Command) error {
	sc, err := loadScene(ctx, cmd)
	if err != nil {
		return err
	}
	state.EnvFromContext(ctx).Log.Debug("Raising event",
		zap.String("target", cmd.String("target")),
		zap.String("event", cmd.String("event")))
	return TraceEvent(cmd.Root().Writer, sc.doc, sc.size, cmd.String("target"), cmd.String("event"), EventOptions{
		Key:  cmd.String("key"),
		Text: cmd.String("text"),
	})
}

// TraceEvent lays doc out, raises the named event at the element called
// target the way real input would, and writes one line per handler
// invocation: event, route and receiving element. Every element of the tree
// is watched, handled deliveries included.
func TraceEvent(w io.Writer, doc *document.Document, size graphics.Size, target, eventName string, opts EventOptions) error {
	event, ok := interactivity.Lookup(eventName)
	if !ok {
		return fmt.Errorf("unknown event %q (known: %s)", eventName, strings.Join(EventNames(), ", "))
	}

	tester := arbortest.NewTester()
	defer tester.Cleanup()

	content, err := doc.Build()
	if err != nil {
		return err
	}
	if err := tester.SetSize(size); err != nil {
		return err
	}
	if err := tester.Pump(content); err != nil {
		return err
	}

	finder := arbortest.ByName(target)
	if !tester.Find(finder).Exists() {
		return fmt.Errorf("no element named %q", target)
	}

	rec := &arbortest.EventRecorder{}
	rec.WatchTree(tester.Root(), event)
	defer rec.Close()

	err = raise(tester, finder, event, opts)
	for _, line := range rec.Trace() {
		if _, werr := fmt.Fprintln(w, line); werr != nil {
			return multierr.Append(err, werr)
		}
	}
	for _, reported := range tester.ReportedErrors() {
		err = multierr.Append(err, reported)
	}
	return err
}

func raise(t *arbortest.Tester, target arbortest.Finder, event *interactivity.RoutedEvent, opts EventOptions) error {
	center := t.Find(target).Bounds().Center()
	switch event {
	case input.PointerPressedEvent, input.PointerReleasedEvent:
		return t.TapAt(center)
	case input.PointerMovedEvent, input.PointerEnterEvent:
		return t.HoverAt(center)
	case input.PointerLeaveEvent:
		return multierr.Append(t.HoverAt(center), t.HoverAt(graphics.Point{X: -1, Y: -1}))
	case input.PointerWheelChangedEvent:
		return multierr.Append(t.HoverAt(center), t.Scroll(graphics.Point{Y: 1}))
	case input.KeyDownEvent, input.KeyUpEvent:
		if err := t.Focus(target); err != nil {
			return err
		}
		return t.SendKey(opts.Key, 0)
	case input.TextInputEvent:
		if err := t.Focus(target); err != nil {
			return err
		}
		return t.EnterText(opts.Text)
	case input.GotFocusEvent:
		return t.Focus(target)
	case input.LostFocusEvent:
		if err := t.Focus(target); err != nil {
			return err
		}
		t.Root().FocusManager().Focus(nil, input.NavigationUnspecified)
		return nil
	}

	e, ok := t.Find(target).First().(input.Element)
	if !ok {
		return fmt.Errorf("element %q cannot raise events", target.Description())
	}
	return e.RaiseEvent(interactivity.NewRoutedEventArgs(event))
}

// EventNames returns the registered event names, sorted.
func EventNames() []string {
	var names []string
	for _, e := range interactivity.Events() {
		names = append(names, e.Name())
	}
	slices.Sort(names)
	return names
}
