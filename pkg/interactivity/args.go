package interactivity

import "github.com/go-drift/arbor/pkg/tree"

// EventArgs is implemented by every event payload. Payloads embed
// RoutedEventArgs and inherit Args from it.
type EventArgs interface {
	Args() *RoutedEventArgs
}

// RoutedEventArgs is the state shared by every routed event payload.
type RoutedEventArgs struct {
	// Event is the descriptor being raised. RaiseEvent fails without it.
	Event *RoutedEvent

	source         tree.Node
	originalSource tree.Node
	handled        bool
	route          RoutingStrategies
}

// NewRoutedEventArgs returns args for event.
func NewRoutedEventArgs(event *RoutedEvent) *RoutedEventArgs {
	return &RoutedEventArgs{Event: event}
}

// Args returns a.
func (a *RoutedEventArgs) Args() *RoutedEventArgs {
	return a
}

// Source is the element the event is reported as coming from. It defaults to
// the element that raised the event.
func (a *RoutedEventArgs) Source() tree.Node {
	return a.source
}

// SetSource changes the reported source.
func (a *RoutedEventArgs) SetSource(source tree.Node) {
	a.source = source
}

// OriginalSource is the element that first raised the event. It is set once.
func (a *RoutedEventArgs) OriginalSource() tree.Node {
	return a.originalSource
}

// Handled reports whether a handler marked the event as handled.
func (a *RoutedEventArgs) Handled() bool {
	return a.handled
}

// MarkHandled marks the event as handled. Later subscriptions that did not
// ask for handled events are skipped. There is no way to clear the flag.
func (a *RoutedEventArgs) MarkHandled() {
	a.handled = true
}

// Route returns the phase currently being delivered.
func (a *RoutedEventArgs) Route() RoutingStrategies {
	return a.route
}
