package interactivity

import (
	"fmt"
	"reflect"
	"slices"

	"go.uber.org/zap"

	"github.com/go-drift/arbor/pkg/errors"
	"github.com/go-drift/arbor/pkg/layout"
	"github.com/go-drift/arbor/pkg/tree"
	"github.com/go-drift/arbor/pkg/visual"
)

// InteractiveType is the element type of Interactive.
var InteractiveType = visual.NewType("Interactive", layout.LayoutableType)

// Interactive is the base for elements that raise and handle routed events.
// Like every element base it dispatches through the element registered with
// SetSelf. Ancestors that never called it are skipped by tunnel and bubble;
// the raising element always receives its own phases.
type Interactive struct {
	layout.Layoutable

	handlers map[*RoutedEvent][]*Subscription
}

// receiver is implemented by every element embedding Interactive.
type receiver interface {
	deliver(args EventArgs)
}

// ElementType returns InteractiveType.
func (i *Interactive) ElementType() *visual.Type {
	return InteractiveType
}

// AddHandler subscribes h to event on this element for the given phases.
// With alsoIfHandled the handler also runs after the event was marked
// handled. Adding the same handler twice creates two subscriptions.
func (i *Interactive) AddHandler(event *RoutedEvent, h Handler, routes RoutingStrategies, alsoIfHandled bool) *Subscription {
	sub := &Subscription{
		owner:         i,
		event:         event,
		handler:       h,
		routes:        routes,
		alsoIfHandled: alsoIfHandled,
	}
	if i.handlers == nil {
		i.handlers = make(map[*RoutedEvent][]*Subscription)
	}
	i.handlers[event] = append(i.handlers[event], sub)
	return sub
}

// AddHandlerFunc subscribes fn to the direct and bubble phases of event.
func (i *Interactive) AddHandlerFunc(event *RoutedEvent, fn func(sender tree.Node, args EventArgs)) *Subscription {
	return i.AddHandler(event, Func(fn), DefaultRoutes, false)
}

// RemoveHandler removes every subscription of h to event on this element.
func (i *Interactive) RemoveHandler(event *RoutedEvent, h Handler) {
	subs := i.handlers[event]
	if len(subs) == 0 {
		return
	}
	i.handlers[event] = slices.DeleteFunc(subs, func(s *Subscription) bool {
		if sameHandler(s.handler, h) {
			s.removed = true
			return true
		}
		return false
	})
}

// sameHandler compares handlers by value. Handlers whose dynamic values
// cannot be compared, such as func types, never match.
func sameHandler(a, b Handler) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() || !va.Comparable() || !vb.Comparable() {
		return false
	}
	return va.Equal(vb)
}

func (i *Interactive) removeSubscription(sub *Subscription) {
	sub.removed = true
	subs := i.handlers[sub.event]
	if idx := slices.Index(subs, sub); idx >= 0 {
		i.handlers[sub.event] = slices.Delete(subs, idx, idx+1)
	}
}

// Subscriptions returns the active subscriptions to event, in registration
// order.
func (i *Interactive) Subscriptions(event *RoutedEvent) []*Subscription {
	return slices.Clone(i.handlers[event])
}

// RaiseEvent delivers args along the phases its event declares: direct to
// this element, then tunnel from the root down to this element, then bubble
// back up to the root. Source and original source default to this element.
func (i *Interactive) RaiseEvent(args EventArgs) error {
	if args == nil || args.Args() == nil || args.Args().Event == nil {
		return &errors.Error{
			Op:      "interactivity.RaiseEvent",
			Kind:    errors.KindMissingEvent,
			Element: visual.Describe(i.Self()),
			Err:     fmt.Errorf("%w: args carry no routed event", errors.ErrMissingEvent),
		}
	}
	a := args.Args()
	self := i.Self()
	if a.source == nil {
		a.source = self
	}
	if a.originalSource == nil {
		a.originalSource = self
	}

	event := a.Event
	eventsTotal.WithLabelValues(event.Name()).Inc()
	if log := debugLogger(); log != nil {
		log.Debug("raise",
			zap.Stringer("event", event),
			zap.Stringer("strategies", event.Strategies()),
			zap.String("source", visual.Describe(a.source)))
	}

	if event.strategies.Has(Direct) {
		a.route = Direct
		i.deliver(args)
	}
	if event.strategies.Has(Tunnel) {
		a.route = Tunnel
		for node := range tree.SelfAndAncestorsReversed(self) {
			if target, ok := i.receiverFor(node, self); ok {
				target.deliver(args)
			}
		}
	}
	if event.strategies.Has(Bubble) {
		a.route = Bubble
		for node := range tree.SelfAndAncestors(self) {
			if target, ok := i.receiverFor(node, self); ok {
				target.deliver(args)
			}
		}
	}
	return nil
}

// receiverFor resolves the element delivered to at node. The raising element
// is i itself even when its Self is the bare Visual.
func (i *Interactive) receiverFor(node, self tree.Node) (receiver, bool) {
	if node == self {
		return i, true
	}
	r, ok := node.(receiver)
	return r, ok
}

// deliver runs the class handlers and then a snapshot of the matching
// instance subscriptions for the current phase.
func (i *Interactive) deliver(args EventArgs) {
	a := args.Args()
	self := i.Self()
	a.Event.invokeClassHandlers(self, args)

	subs := i.handlers[a.Event]
	if len(subs) == 0 {
		return
	}
	route := a.route.String()
	for _, sub := range slices.Clone(subs) {
		if sub.removed || !sub.matches(a) {
			continue
		}
		handlerInvocations.WithLabelValues(route, "instance").Inc()
		sub.handler.HandleEvent(self, args)
	}
}
