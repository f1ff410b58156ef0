package testing

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/go-drift/arbor/pkg/graphics"
	"github.com/go-drift/arbor/pkg/input"
)

// Tap simulates a press and release at the center of the first element
// matched by finder.
func (t *Tester) Tap(finder Finder) error {
	result := t.Find(finder)
	if !result.Exists() {
		return fmt.Errorf("Tap: finder matched no elements: %s", finder.Description())
	}
	return t.TapAt(result.Bounds().Center())
}

// TapAt simulates a left-button press and release at the given position in
// root coordinates.
func (t *Tester) TapAt(pos graphics.Point) error {
	pointer := t.root.Pointer()
	_, err := pointer.Press(pos, input.ButtonLeft)
	_, releaseErr := pointer.Release(pos)
	return multierr.Append(err, releaseErr)
}

// HoverAt moves the pointer to pos.
func (t *Tester) HoverAt(pos graphics.Point) error {
	_, err := t.root.Pointer().Move(pos)
	return err
}

// Scroll raises a wheel event with delta at the pointer's position.
func (t *Tester) Scroll(delta graphics.Point) error {
	_, err := t.root.Pointer().Wheel(delta)
	return err
}

// Focus moves keyboard focus to the first element matched by finder.
func (t *Tester) Focus(finder Finder) error {
	result := t.Find(finder)
	if !result.Exists() {
		return fmt.Errorf("Focus: finder matched no elements: %s", finder.Description())
	}
	e, ok := result.First().(input.Element)
	if !ok {
		return fmt.Errorf("Focus: %s matched a non-input element", finder.Description())
	}
	if !t.root.FocusManager().Focus(e, input.NavigationUnspecified) && t.root.FocusManager().Current() != e {
		return fmt.Errorf("Focus: element refused focus: %s", finder.Description())
	}
	return nil
}

// SendKey raises KeyDown then KeyUp for key on the focused element.
func (t *Tester) SendKey(key string, mods input.Modifiers) error {
	focused := t.root.FocusManager().Current()
	if focused == nil {
		return fmt.Errorf("SendKey(%q): nothing has focus", key)
	}
	return multierr.Combine(
		focused.RaiseEvent(input.NewKeyEventArgs(input.KeyDownEvent, key, mods)),
		focused.RaiseEvent(input.NewKeyEventArgs(input.KeyUpEvent, key, mods)),
	)
}

// EnterText raises TextInput with text on the focused element.
func (t *Tester) EnterText(text string) error {
	focused := t.root.FocusManager().Current()
	if focused == nil {
		return fmt.Errorf("EnterText(%q): nothing has focus", text)
	}
	args := &input.TextInputEventArgs{Text: text}
	args.Event = input.TextInputEvent
	return focused.RaiseEvent(args)
}
