package interactivity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	e, ok := Lookup("testtunnelbubble")
	assert.True(t, ok)
	assert.Same(t, tunnelBubbleEvent, e)

	_, ok = Lookup("NoSuchEvent")
	assert.False(t, ok)
	assert.Contains(t, Events(), directEvent)
}

func TestRegisterRejectsInvalid(t *testing.T) {
	assert.Panics(t, func() { Register("TestDirect", Direct, InteractiveType) }, "duplicate name")
	assert.Panics(t, func() { Register("TestNoRoutes", 0, InteractiveType) }, "no strategy")
}

func TestEventDescriptor(t *testing.T) {
	assert.Equal(t, "TestTunnelBubble", tunnelBubbleEvent.Name())
	assert.Equal(t, "Interactive.TestTunnelBubble", tunnelBubbleEvent.String())
	assert.Equal(t, Tunnel|Bubble, tunnelBubbleEvent.Strategies())
	assert.Same(t, InteractiveType, tunnelBubbleEvent.Owner())
}

func TestRoutingStrategies(t *testing.T) {
	tests := []struct {
		r    RoutingStrategies
		want string
	}{
		{0, "none"},
		{Direct, "direct"},
		{Tunnel | Bubble, "tunnel|bubble"},
		{Direct | Tunnel | Bubble, "direct|tunnel|bubble"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.r.String())
	}
	assert.True(t, (Tunnel | Bubble).Has(Bubble))
	assert.False(t, Bubble.Has(Tunnel|Bubble))
	assert.True(t, DefaultRoutes.Intersects(Bubble))
	assert.False(t, DefaultRoutes.Intersects(Tunnel))
}
