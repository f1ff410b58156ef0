package interactivity

// Subscription is one instance handler registration. It is returned by
// AddHandler and removed with Dispose.
type Subscription struct {
	owner         *Interactive
	event         *RoutedEvent
	handler       Handler
	routes        RoutingStrategies
	alsoIfHandled bool
	removed       bool
}

// Event returns the subscribed event.
func (s *Subscription) Event() *RoutedEvent { return s.event }

// Handler returns the subscribed handler.
func (s *Subscription) Handler() Handler { return s.handler }

// Routes returns the phases the subscription listens to.
func (s *Subscription) Routes() RoutingStrategies { return s.routes }

// AlsoIfHandled reports whether the subscription fires for handled events.
func (s *Subscription) AlsoIfHandled() bool { return s.alsoIfHandled }

// Active reports whether the subscription is still registered.
func (s *Subscription) Active() bool { return !s.removed }

// Dispose removes this subscription only. It is safe to call more than once,
// and a subscription disposed while its event is being delivered is not
// invoked afterwards.
func (s *Subscription) Dispose() {
	if s.removed {
		return
	}
	s.owner.removeSubscription(s)
}

// matches reports whether the subscription fires in the current phase.
func (s *Subscription) matches(args *RoutedEventArgs) bool {
	if !s.routes.Intersects(args.route) {
		return false
	}
	return !args.handled || s.alsoIfHandled
}
