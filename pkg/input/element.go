package input

import (
	"slices"

	"github.com/go-drift/arbor/pkg/interactivity"
	"github.com/go-drift/arbor/pkg/layout"
	"github.com/go-drift/arbor/pkg/property"
	"github.com/go-drift/arbor/pkg/tree"
	"github.com/go-drift/arbor/pkg/visual"
)

// InputElementType is the element type of InputElement.
var InputElementType = visual.NewType("InputElement", interactivity.InteractiveType)

// Input properties.
var (
	FocusableProperty        = property.Register("InputElement", "Focusable", false)
	IsEnabledProperty        = property.Register("InputElement", "IsEnabled", true)
	IsEnabledCoreProperty    = property.Register("InputElement", "IsEnabledCore", true)
	IsFocusedProperty        = property.Register("InputElement", "IsFocused", false)
	IsHitTestVisibleProperty = property.Register("InputElement", "IsHitTestVisible", true)
	IsPointerOverProperty    = property.Register("InputElement", "IsPointerOver", false)
)

func init() {
	IsEnabledProperty.Subscribe(func(e property.ChangedEvent) {
		if el, ok := e.Sender.(Element); ok {
			el.Input().updateIsEnabledCore()
		}
	})
}

// Element is an element that takes input.
type Element interface {
	layout.Element
	RaiseEvent(args interactivity.EventArgs) error
	Input() *InputElement
}

// InputElement is the base for elements that receive keyboard, pointer and
// focus input.
type InputElement struct {
	interactivity.Interactive
}

// ElementType returns InputElementType.
func (i *InputElement) ElementType() *visual.Type {
	return InputElementType
}

// Input returns i.
func (i *InputElement) Input() *InputElement {
	return i
}

func (i *InputElement) sender() any {
	return i.Self()
}

// Focusable reports whether the element can receive keyboard focus.
func (i *InputElement) Focusable() bool {
	return property.Get(i.Properties(), FocusableProperty)
}

func (i *InputElement) SetFocusable(v bool) {
	property.Set(i.Properties(), i.sender(), FocusableProperty, v)
}

// IsEnabled reports the element's own enabled setting.
func (i *InputElement) IsEnabled() bool {
	return property.Get(i.Properties(), IsEnabledProperty)
}

// SetIsEnabled enables or disables the element and, through IsEnabledCore,
// its descendants.
func (i *InputElement) SetIsEnabled(v bool) {
	property.Set(i.Properties(), i.sender(), IsEnabledProperty, v)
}

// IsEnabledCore reports whether the element and all its input ancestors are
// enabled.
func (i *InputElement) IsEnabledCore() bool {
	return property.Get(i.Properties(), IsEnabledCoreProperty)
}

// IsFocused reports whether the element has keyboard focus.
func (i *InputElement) IsFocused() bool {
	return property.Get(i.Properties(), IsFocusedProperty)
}

// IsHitTestVisible reports whether hit testing can return the element.
func (i *InputElement) IsHitTestVisible() bool {
	return property.Get(i.Properties(), IsHitTestVisibleProperty)
}

func (i *InputElement) SetIsHitTestVisible(v bool) {
	property.Set(i.Properties(), i.sender(), IsHitTestVisibleProperty, v)
}

// IsPointerOver reports whether the pointer is over the element.
func (i *InputElement) IsPointerOver() bool {
	return property.Get(i.Properties(), IsPointerOverProperty)
}

// CanFocus reports whether the element can currently take focus.
func (i *InputElement) CanFocus() bool {
	return i.Focusable() && i.IsEnabledCore() && i.IsVisible()
}

// Focus moves keyboard focus to the element using the focus manager of its
// root. It reports whether the element has focus afterwards.
func (i *InputElement) Focus() bool {
	m := FindFocusManager(i.Self())
	if m == nil {
		return false
	}
	if el, ok := i.Self().(Element); ok {
		m.Focus(el, NavigationUnspecified)
	}
	return i.IsFocused()
}

// OnVisualParentChanged recomputes IsEnabledCore and drops focus held inside
// a subtree that was detached.
func (i *InputElement) OnVisualParentChanged(old, parent tree.Node) {
	i.updateIsEnabledCore()
	if parent != nil || old == nil {
		return
	}
	m := FindFocusManager(old)
	if m == nil {
		return
	}
	if current := m.Current(); current != nil {
		if tree.Node(current) == i.Self() || tree.IsAncestorOf(i.Self(), current) {
			m.Focus(nil, NavigationUnspecified)
		}
	}
}

func (i *InputElement) OnGotFocus(e *GotFocusEventArgs) {
	property.Set(i.Properties(), i.sender(), IsFocusedProperty, e.Source() == i.Self())
}

func (i *InputElement) OnLostFocus(e *interactivity.RoutedEventArgs) {
	property.Set(i.Properties(), i.sender(), IsFocusedProperty, false)
}

func (i *InputElement) OnPointerEnter(e *PointerEventArgs) {
	property.Set(i.Properties(), i.sender(), IsPointerOverProperty, true)
}

func (i *InputElement) OnPointerLeave(e *PointerEventArgs) {
	property.Set(i.Properties(), i.sender(), IsPointerOverProperty, false)
}

func (i *InputElement) OnKeyDown(e *KeyEventArgs) {}
func (i *InputElement) OnKeyUp(e *KeyEventArgs) {}
func (i *InputElement) OnTextInput(e *TextInputEventArgs) {}
func (i *InputElement) OnPointerMoved(e *PointerEventArgs) {}
func (i *InputElement) OnPointerPressed(e *PointerPressedEventArgs) {}
func (i *InputElement) OnPointerReleased(e *PointerEventArgs) {}
func (i *InputElement) OnPointerWheelChanged(e *PointerWheelEventArgs) {}

func (i *InputElement) updateIsEnabledCore() {
	enabled := i.IsEnabled()
	if parent, ok := tree.Parent(i.Self()).(Element); ok {
		enabled = enabled && parent.Input().IsEnabledCore()
	}
	property.Set(i.Properties(), i.sender(), IsEnabledCoreProperty, enabled)
	for child := range tree.OfType[Element](slices.Values(tree.Children(i.Self()))) {
		child.Input().updateIsEnabledCore()
	}
}
