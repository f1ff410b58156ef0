package interactivity

import "strings"

// RoutingStrategies is a set of routing phases.
type RoutingStrategies uint8

const (
	// Direct delivers to the source element only.
	Direct RoutingStrategies = 1 << iota
	// Tunnel delivers from the root down to the source.
	Tunnel
	// Bubble delivers from the source up to the root.
	Bubble
)

// DefaultRoutes is the filter AddHandlerFunc subscribes with.
const DefaultRoutes = Direct | Bubble

// Has reports whether every strategy in s is in r.
func (r RoutingStrategies) Has(s RoutingStrategies) bool {
	return r&s == s
}

// Intersects reports whether r and s share a strategy.
func (r RoutingStrategies) Intersects(s RoutingStrategies) bool {
	return r&s != 0
}

func (r RoutingStrategies) String() string {
	if r == 0 {
		return "none"
	}
	var parts []string
	if r&Direct != 0 {
		parts = append(parts, "direct")
	}
	if r&Tunnel != 0 {
		parts = append(parts, "tunnel")
	}
	if r&Bubble != 0 {
		parts = append(parts, "bubble")
	}
	return strings.Join(parts, "|")
}
