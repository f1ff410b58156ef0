package interactivity

import "github.com/go-drift/arbor/pkg/tree"

// Handler receives routed events. Sender is the element currently being
// delivered to, which differs from the source during tunnel and bubble.
//
// Handlers are identified by value, so RemoveHandler needs the same Handler
// that was added. Func and Typed return pointers for this reason. Handlers
// that cannot be compared, such as func types, can only be removed through
// their Subscription.
type Handler interface {
	HandleEvent(sender tree.Node, args EventArgs)
}

type funcHandler struct {
	fn func(sender tree.Node, args EventArgs)
}

func (h *funcHandler) HandleEvent(sender tree.Node, args EventArgs) {
	h.fn(sender, args)
}

// Func adapts fn to a Handler. Each call returns a distinct Handler.
func Func(fn func(sender tree.Node, args EventArgs)) Handler {
	return &funcHandler{fn: fn}
}

type typedHandler[T EventArgs] struct {
	fn func(sender tree.Node, args T)
}

func (h *typedHandler[T]) HandleEvent(sender tree.Node, args EventArgs) {
	if typed, ok := args.(T); ok {
		h.fn(sender, typed)
	}
}

// Typed adapts fn to a Handler that only sees payloads of type T. Payloads of
// other types are ignored.
func Typed[T EventArgs](fn func(sender tree.Node, args T)) Handler {
	return &typedHandler[T]{fn: fn}
}
