// Package interactivity routes events through the visual tree.
//
// A RoutedEvent is registered once with the phases it travels in. Raising it
// on an element delivers it directly to that element, tunnels it from the
// root down to the element, and bubbles it from the element back to the
// root, in that order, skipping phases the event does not declare.
//
// On each element a delivery first runs the class handlers registered for
// the element's type chain, base type first, and then the element's own
// subscriptions in the order they were added. Marking the args handled stops
// later subscriptions unless they were added with alsoIfHandled. Class
// handlers always run.
package interactivity
