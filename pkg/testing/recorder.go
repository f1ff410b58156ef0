package testing

import (
	"fmt"
	"slices"

	"github.com/go-drift/arbor/pkg/errors"
	"github.com/go-drift/arbor/pkg/interactivity"
	"github.com/go-drift/arbor/pkg/layout"
	"github.com/go-drift/arbor/pkg/tree"
	"github.com/go-drift/arbor/pkg/visual"
)

// Invalidation is one call received by a RecordingManager.
type Invalidation struct {
	// Pass is "measure" or "arrange".
	Pass     string
	Element  layout.Element
	Distance int
}

func (i Invalidation) String() string {
	return fmt.Sprintf("%s %s@%d", i.Pass, visual.Describe(i.Element), i.Distance)
}

// RecordingManager is a layout.Manager that records invalidations without
// laying anything out.
type RecordingManager struct {
	calls []Invalidation
}

// InvalidateMeasure records a measure invalidation.
func (m *RecordingManager) InvalidateMeasure(element layout.Element, distance int) {
	m.calls = append(m.calls, Invalidation{Pass: "measure", Element: element, Distance: distance})
}

// InvalidateArrange records an arrange invalidation.
func (m *RecordingManager) InvalidateArrange(element layout.Element, distance int) {
	m.calls = append(m.calls, Invalidation{Pass: "arrange", Element: element, Distance: distance})
}

// Calls returns the recorded invalidations in arrival order.
func (m *RecordingManager) Calls() []Invalidation {
	return m.calls
}

// Reset forgets the recorded invalidations.
func (m *RecordingManager) Reset() {
	m.calls = nil
}

// Delivery is one handler invocation seen by an EventRecorder.
type Delivery struct {
	Event   string
	Element string
	Route   interactivity.RoutingStrategies
	Handled bool
}

func (d Delivery) String() string {
	s := fmt.Sprintf("%s %s %s", d.Event, d.Route, d.Element)
	if d.Handled {
		s += " (handled)"
	}
	return s
}

// Subscriber is an element routed event handlers can be added to.
type Subscriber interface {
	tree.Node
	AddHandler(event *interactivity.RoutedEvent, h interactivity.Handler, routes interactivity.RoutingStrategies, alsoIfHandled bool) *interactivity.Subscription
}

// EventRecorder records routed event deliveries on the elements it
// watches. It subscribes to every route and also sees handled events.
type EventRecorder struct {
	deliveries    []Delivery
	subscriptions []*interactivity.Subscription
}

// Watch subscribes to events on e.
func (r *EventRecorder) Watch(e Subscriber, events ...*interactivity.RoutedEvent) {
	for _, ev := range events {
		name := ev.Name()
		sub := e.AddHandler(ev, interactivity.Func(func(sender tree.Node, args interactivity.EventArgs) {
			a := args.Args()
			r.deliveries = append(r.deliveries, Delivery{
				Event:   name,
				Element: visual.Describe(sender),
				Route:   a.Route(),
				Handled: a.Handled(),
			})
		}), interactivity.Direct|interactivity.Tunnel|interactivity.Bubble, true)
		r.subscriptions = append(r.subscriptions, sub)
	}
}

// WatchTree subscribes to events on root and every element below it.
func (r *EventRecorder) WatchTree(root tree.Node, events ...*interactivity.RoutedEvent) {
	nodes := append([]tree.Node{root}, slices.Collect(tree.Descendants(root))...)
	for e := range tree.OfType[Subscriber](slices.Values(nodes)) {
		r.Watch(e, events...)
	}
}

// Deliveries returns the recorded deliveries in order.
func (r *EventRecorder) Deliveries() []Delivery {
	return r.deliveries
}

// Trace returns the deliveries formatted one per line.
func (r *EventRecorder) Trace() []string {
	trace := make([]string, len(r.deliveries))
	for i, d := range r.deliveries {
		trace[i] = d.String()
	}
	return trace
}

// Reset forgets the recorded deliveries and keeps watching.
func (r *EventRecorder) Reset() {
	r.deliveries = nil
}

// Close removes every subscription the recorder added.
func (r *EventRecorder) Close() {
	for _, sub := range r.subscriptions {
		sub.Dispose()
	}
	r.subscriptions = nil
}

// ErrorRecorder is an errors.ErrorHandler that collects reports.
type ErrorRecorder struct {
	errs   []*errors.Error
	panics []*errors.PanicError
}

// HandleError records err.
func (r *ErrorRecorder) HandleError(err *errors.Error) {
	r.errs = append(r.errs, err)
}

// HandlePanic records err.
func (r *ErrorRecorder) HandlePanic(err *errors.PanicError) {
	r.panics = append(r.panics, err)
}

// Errors returns the recorded errors.
func (r *ErrorRecorder) Errors() []*errors.Error {
	return r.errs
}

// Panics returns the recorded panics.
func (r *ErrorRecorder) Panics() []*errors.PanicError {
	return r.panics
}
