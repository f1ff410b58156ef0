package interactivity

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-drift/arbor/pkg/tree"
	"github.com/go-drift/arbor/pkg/visual"
)

// RoutedEvent describes an event that can be raised on the tree. Events are
// registered once, usually as package variables, and compared by identity.
type RoutedEvent struct {
	name       string
	owner      *visual.Type
	strategies RoutingStrategies

	mu            sync.RWMutex
	classHandlers map[*visual.Type][]Handler
}

var (
	registryMu sync.RWMutex
	registry   = map[string]*RoutedEvent{}
)

// Register declares a routed event owned by owner. It panics when strategies
// is empty or when an event with the same name (case-insensitive) exists.
func Register(name string, strategies RoutingStrategies, owner *visual.Type) *RoutedEvent {
	if strategies&(Direct|Tunnel|Bubble) == 0 {
		panic(fmt.Sprintf("interactivity: event %q has no routing strategy", name))
	}
	key := strings.ToLower(name)

	registryMu.Lock()
	defer registryMu.Unlock()
	if _, exists := registry[key]; exists {
		panic(fmt.Sprintf("interactivity: event %q registered twice", name))
	}
	e := &RoutedEvent{
		name:          name,
		owner:         owner,
		strategies:    strategies,
		classHandlers: make(map[*visual.Type][]Handler),
	}
	registry[key] = e
	return e
}

// Lookup returns the registered event with the given name, ignoring case.
func Lookup(name string) (*RoutedEvent, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	e, ok := registry[strings.ToLower(name)]
	return e, ok
}

// Events returns every registered event.
func Events() []*RoutedEvent {
	registryMu.RLock()
	defer registryMu.RUnlock()
	events := make([]*RoutedEvent, 0, len(registry))
	for _, e := range registry {
		events = append(events, e)
	}
	return events
}

// Name returns the event name.
func (e *RoutedEvent) Name() string {
	return e.name
}

// Owner returns the type that declared the event.
func (e *RoutedEvent) Owner() *visual.Type {
	return e.owner
}

// Strategies returns the phases the event is delivered in.
func (e *RoutedEvent) Strategies() RoutingStrategies {
	return e.strategies
}

func (e *RoutedEvent) String() string {
	return e.owner.Name() + "." + e.name
}

// AddClassHandler registers h for every element whose type is t or derives
// from t. Class handlers run before instance handlers on each element and
// ignore the handled flag.
func (e *RoutedEvent) AddClassHandler(t *visual.Type, h Handler) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.classHandlers[t] = append(e.classHandlers[t], h)
}

// invokeClassHandlers runs the class handlers of target's type chain, base
// type first.
func (e *RoutedEvent) invokeClassHandlers(target tree.Node, args EventArgs) {
	chain := visual.TypeOf(target).Chain()

	e.mu.RLock()
	var handlers []Handler
	for _, t := range chain {
		handlers = append(handlers, e.classHandlers[t]...)
	}
	e.mu.RUnlock()

	route := args.Args().Route().String()
	for _, h := range handlers {
		handlerInvocations.WithLabelValues(route, "class").Inc()
		h.HandleEvent(target, args)
	}
}
