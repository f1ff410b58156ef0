package input

import (
	"slices"

	"go.uber.org/multierr"

	"github.com/go-drift/arbor/pkg/graphics"
	"github.com/go-drift/arbor/pkg/interactivity"
	"github.com/go-drift/arbor/pkg/tree"
)

// Pointer dispatches pointer input on a root to the element under the
// pointer, and keeps IsPointerOver current on that element and its
// ancestors.
type Pointer struct {
	root     Element
	position graphics.Point
	over     []Element // hit element first, then its input ancestors
}

// NewPointer returns a pointer over root.
func NewPointer(root Element) *Pointer {
	return &Pointer{root: root}
}

// Position returns the last position the pointer was moved to.
func (p *Pointer) Position() graphics.Point {
	return p.position
}

// Over returns the element directly under the pointer, or nil.
func (p *Pointer) Over() Element {
	if len(p.over) == 0 {
		return nil
	}
	return p.over[0]
}

// Move moves the pointer to pos, raising PointerLeave and PointerEnter where
// the element under the pointer changed, then PointerMoved on the element
// now under it. It returns that element.
func (p *Pointer) Move(pos graphics.Point) (Element, error) {
	p.position = pos
	target := HitTest(p.root, pos)
	err := p.updateOver(target)
	if target != nil {
		err = multierr.Append(err, target.RaiseEvent(NewPointerEventArgs(PointerMovedEvent, pos)))
	}
	return target, err
}

// Press moves the pointer to pos and raises PointerPressed there. Unless a
// handler marked the press handled, the nearest focusable element in the hit
// chain takes focus.
func (p *Pointer) Press(pos graphics.Point, button MouseButton) (Element, error) {
	target, err := p.Move(pos)
	if target == nil {
		return nil, err
	}
	args := &PointerPressedEventArgs{
		PointerEventArgs: *NewPointerEventArgs(PointerPressedEvent, pos),
		Button:           button,
		ClickCount:       1,
	}
	err = multierr.Append(err, target.RaiseEvent(args))
	if !args.Handled() {
		for _, e := range p.over {
			if e.Input().CanFocus() {
				if m := FindFocusManager(e); m != nil {
					m.Focus(e, NavigationPointer)
				}
				break
			}
		}
	}
	return target, err
}

// Release moves the pointer to pos and raises PointerReleased there.
func (p *Pointer) Release(pos graphics.Point) (Element, error) {
	return p.raiseAt(pos, NewPointerEventArgs(PointerReleasedEvent, pos))
}

// Wheel raises PointerWheelChanged under the pointer's position.
func (p *Pointer) Wheel(delta graphics.Point) (Element, error) {
	args := &PointerWheelEventArgs{
		PointerEventArgs: *NewPointerEventArgs(PointerWheelChangedEvent, p.position),
		Delta:            delta,
	}
	return p.raiseAt(p.position, args)
}

func (p *Pointer) raiseAt(pos graphics.Point, args interactivity.EventArgs) (Element, error) {
	target, err := p.Move(pos)
	if target == nil {
		return nil, err
	}
	return target, multierr.Append(err, target.RaiseEvent(args))
}

// updateOver raises PointerLeave on elements the pointer left, deepest
// first, and PointerEnter on elements it entered, outermost first.
func (p *Pointer) updateOver(target Element) error {
	var next []Element
	if target != nil {
		for e := range tree.OfType[Element](tree.SelfAndAncestors(target)) {
			next = append(next, e)
		}
	}
	contains := func(list []Element, e Element) bool {
		return slices.ContainsFunc(list, func(x Element) bool { return tree.Node(x) == tree.Node(e) })
	}

	var err error
	for _, e := range p.over {
		if !contains(next, e) {
			err = multierr.Append(err, e.RaiseEvent(NewPointerEventArgs(PointerLeaveEvent, p.position)))
		}
	}
	for i := len(next) - 1; i >= 0; i-- {
		if e := next[i]; !contains(p.over, e) {
			err = multierr.Append(err, e.RaiseEvent(NewPointerEventArgs(PointerEnterEvent, p.position)))
		}
	}
	p.over = next
	return err
}
