// Package property implements the change-notification store elements keep
// their attributes in.
//
// A Property is a process-wide descriptor registered once per owning type.
// Values live in a per-element Store; setting a value that differs from the
// current one notifies every subscriber of that property, which is how the
// layout engine learns that a width or margin changed.
package property

import (
	"math"
	"sync"
)

// Descriptor is the type-erased identity of a property.
type Descriptor struct {
	name  string
	owner string

	mu          sync.RWMutex
	subscribers []*subscriber
}

type subscriber struct {
	fn func(ChangedEvent)
}

// ChangedEvent describes a value change on one element.
type ChangedEvent struct {
	// Sender is the element whose value changed.
	Sender   any
	Property *Descriptor
	OldValue any
	NewValue any
}

// Name returns the property name.
func (d *Descriptor) Name() string {
	return d.name
}

// Owner returns the name of the type that registered the property.
func (d *Descriptor) Owner() string {
	return d.owner
}

func (d *Descriptor) String() string {
	return d.owner + "." + d.name
}

// Subscribe registers fn to be called after any element's value for this
// property changes. The returned function removes the subscription.
func (d *Descriptor) Subscribe(fn func(ChangedEvent)) (unsubscribe func()) {
	sub := &subscriber{fn: fn}
	d.mu.Lock()
	d.subscribers = append(d.subscribers, sub)
	d.mu.Unlock()
	return func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		for i, s := range d.subscribers {
			if s == sub {
				d.subscribers = append(d.subscribers[:i], d.subscribers[i+1:]...)
				return
			}
		}
	}
}

func (d *Descriptor) notify(e ChangedEvent) {
	d.mu.RLock()
	subs := make([]*subscriber, len(d.subscribers))
	copy(subs, d.subscribers)
	d.mu.RUnlock()
	for _, s := range subs {
		s.fn(e)
	}
}

// Notifier is implemented by property descriptors, typed or not.
type Notifier interface {
	Subscribe(fn func(ChangedEvent)) (unsubscribe func())
}

// Property is a typed property descriptor with a default value.
type Property[T comparable] struct {
	*Descriptor
	defaultValue T
}

// Register creates a property descriptor owned by the named type.
func Register[T comparable](owner, name string, defaultValue T) *Property[T] {
	return &Property[T]{
		Descriptor:   &Descriptor{name: name, owner: owner},
		defaultValue: defaultValue,
	}
}

// Default returns the value reported when nothing was set.
func (p *Property[T]) Default() T {
	return p.defaultValue
}

// Store holds the explicitly set property values of one element.
// The zero value is ready to use.
type Store struct {
	values map[*Descriptor]any
}

// Get returns the value of p in s, or its default.
func Get[T comparable](s *Store, p *Property[T]) T {
	if s != nil && s.values != nil {
		if v, ok := s.values[p.Descriptor]; ok {
			return v.(T)
		}
	}
	return p.defaultValue
}

// IsSet reports whether a value was explicitly set for p.
func IsSet[T comparable](s *Store, p *Property[T]) bool {
	if s == nil || s.values == nil {
		return false
	}
	_, ok := s.values[p.Descriptor]
	return ok
}

// Set stores value for p and notifies subscribers with sender when the
// effective value changed. It reports whether a change happened.
//
// Values are compared with ==, so a NaN replacing a NaN counts as a change.
// Float properties that use NaN as a sentinel should go through SetFloat.
func Set[T comparable](s *Store, sender any, p *Property[T], value T) bool {
	old := Get(s, p)
	if s.values == nil {
		s.values = make(map[*Descriptor]any)
	}
	s.values[p.Descriptor] = value
	if old == value {
		return false
	}
	p.notify(ChangedEvent{Sender: sender, Property: p.Descriptor, OldValue: old, NewValue: value})
	return true
}

// SetFloat is Set for float64 properties, treating NaN as equal to NaN.
func SetFloat(s *Store, sender any, p *Property[float64], value float64) bool {
	old := Get(s, p)
	if math.IsNaN(old) && math.IsNaN(value) {
		if s.values == nil {
			s.values = make(map[*Descriptor]any)
		}
		s.values[p.Descriptor] = value
		return false
	}
	return Set(s, sender, p, value)
}

// Clear removes an explicitly set value, notifying subscribers if the
// effective value changes back to the default.
func Clear[T comparable](s *Store, sender any, p *Property[T]) {
	if !IsSet(s, p) {
		return
	}
	old := Get(s, p)
	delete(s.values, p.Descriptor)
	if old != p.defaultValue {
		p.notify(ChangedEvent{Sender: sender, Property: p.Descriptor, OldValue: old, NewValue: p.defaultValue})
	}
}
