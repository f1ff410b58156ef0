package input

import (
	"github.com/go-drift/arbor/pkg/interactivity"
	"github.com/go-drift/arbor/pkg/tree"
)

// Input events raised on InputElement.
var (
	GotFocusEvent  = interactivity.Register("GotFocus", interactivity.Bubble, InputElementType)
	LostFocusEvent = interactivity.Register("LostFocus", interactivity.Bubble, InputElementType)

	KeyDownEvent   = interactivity.Register("KeyDown", interactivity.Tunnel|interactivity.Bubble, InputElementType)
	KeyUpEvent     = interactivity.Register("KeyUp", interactivity.Tunnel|interactivity.Bubble, InputElementType)
	TextInputEvent = interactivity.Register("TextInput", interactivity.Tunnel|interactivity.Bubble, InputElementType)

	PointerEnterEvent        = interactivity.Register("PointerEnter", interactivity.Direct, InputElementType)
	PointerLeaveEvent        = interactivity.Register("PointerLeave", interactivity.Direct, InputElementType)
	PointerMovedEvent        = interactivity.Register("PointerMoved", interactivity.Tunnel|interactivity.Bubble, InputElementType)
	PointerPressedEvent      = interactivity.Register("PointerPressed", interactivity.Tunnel|interactivity.Bubble, InputElementType)
	PointerReleasedEvent     = interactivity.Register("PointerReleased", interactivity.Tunnel|interactivity.Bubble, InputElementType)
	PointerWheelChangedEvent = interactivity.Register("PointerWheelChanged", interactivity.Tunnel|interactivity.Bubble, InputElementType)
)

// Overridable class-level reactions. InputElement provides defaults; an
// element type overrides one by defining the method itself.
type (
	GotFocusHandler interface {
		OnGotFocus(e *GotFocusEventArgs)
	}
	LostFocusHandler interface {
		OnLostFocus(e *interactivity.RoutedEventArgs)
	}
	KeyDownHandler interface {
		OnKeyDown(e *KeyEventArgs)
	}
	KeyUpHandler interface {
		OnKeyUp(e *KeyEventArgs)
	}
	TextInputHandler interface {
		OnTextInput(e *TextInputEventArgs)
	}
	PointerEnterHandler interface {
		OnPointerEnter(e *PointerEventArgs)
	}
	PointerLeaveHandler interface {
		OnPointerLeave(e *PointerEventArgs)
	}
	PointerMovedHandler interface {
		OnPointerMoved(e *PointerEventArgs)
	}
	PointerPressedHandler interface {
		OnPointerPressed(e *PointerPressedEventArgs)
	}
	PointerReleasedHandler interface {
		OnPointerReleased(e *PointerEventArgs)
	}
	PointerWheelChangedHandler interface {
		OnPointerWheelChanged(e *PointerWheelEventArgs)
	}
)

func init() {
	classHandler(GotFocusEvent, GotFocusHandler.OnGotFocus)
	classHandler(LostFocusEvent, LostFocusHandler.OnLostFocus)
	classHandler(KeyDownEvent, KeyDownHandler.OnKeyDown)
	classHandler(KeyUpEvent, KeyUpHandler.OnKeyUp)
	classHandler(TextInputEvent, TextInputHandler.OnTextInput)
	classHandler(PointerEnterEvent, PointerEnterHandler.OnPointerEnter)
	classHandler(PointerLeaveEvent, PointerLeaveHandler.OnPointerLeave)
	classHandler(PointerMovedEvent, PointerMovedHandler.OnPointerMoved)
	classHandler(PointerPressedEvent, PointerPressedHandler.OnPointerPressed)
	classHandler(PointerReleasedEvent, PointerReleasedHandler.OnPointerReleased)
	classHandler(PointerWheelChangedEvent, PointerWheelChangedHandler.OnPointerWheelChanged)
}

// classHandler registers call as the InputElement class handler of event. It
// runs when the receiving element implements H and the payload is a T.
func classHandler[H any, T interactivity.EventArgs](event *interactivity.RoutedEvent, call func(H, T)) {
	event.AddClassHandler(InputElementType, interactivity.Typed(func(sender tree.Node, args T) {
		if h, ok := sender.(H); ok {
			call(h, args)
		}
	}))
}
