package input

import (
	"github.com/go-drift/arbor/pkg/graphics"
	"github.com/go-drift/arbor/pkg/interactivity"
)

// Modifiers is a set of keyboard modifier keys.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModControl
	ModAlt
	ModMeta
)

// MouseButton identifies a pointer button.
type MouseButton int

const (
	ButtonNone MouseButton = iota
	ButtonLeft
	ButtonRight
	ButtonMiddle
)

func (b MouseButton) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	case ButtonMiddle:
		return "middle"
	default:
		return "none"
	}
}

// GotFocusEventArgs is the payload of GotFocusEvent.
type GotFocusEventArgs struct {
	interactivity.RoutedEventArgs
	// Method describes how focus moved.
	Method NavigationMethod
}

// NavigationMethod describes what caused a focus change.
type NavigationMethod int

const (
	NavigationUnspecified NavigationMethod = iota
	NavigationTab
	NavigationDirectional
	NavigationPointer
)

// KeyEventArgs is the payload of KeyDownEvent and KeyUpEvent.
type KeyEventArgs struct {
	interactivity.RoutedEventArgs
	Key       string
	Modifiers Modifiers
}

// TextInputEventArgs is the payload of TextInputEvent.
type TextInputEventArgs struct {
	interactivity.RoutedEventArgs
	Text string
}

// PointerEventArgs is the payload of the pointer events. Position is in the
// coordinates of the root the pointer was dispatched on.
type PointerEventArgs struct {
	interactivity.RoutedEventArgs
	Position  graphics.Point
	Modifiers Modifiers
}

// PointerPressedEventArgs is the payload of PointerPressedEvent.
type PointerPressedEventArgs struct {
	PointerEventArgs
	Button     MouseButton
	ClickCount int
}

// PointerWheelEventArgs is the payload of PointerWheelChangedEvent.
type PointerWheelEventArgs struct {
	PointerEventArgs
	Delta graphics.Point
}

// NewPointerEventArgs returns pointer args for event at position.
func NewPointerEventArgs(event *interactivity.RoutedEvent, position graphics.Point) *PointerEventArgs {
	return &PointerEventArgs{
		RoutedEventArgs: interactivity.RoutedEventArgs{Event: event},
		Position:        position,
	}
}

// NewKeyEventArgs returns key args for event.
func NewKeyEventArgs(event *interactivity.RoutedEvent, key string, mods Modifiers) *KeyEventArgs {
	return &KeyEventArgs{
		RoutedEventArgs: interactivity.RoutedEventArgs{Event: event},
		Key:             key,
		Modifiers:       mods,
	}
}
