package controls

import (
	"fmt"

	"github.com/go-drift/arbor/pkg/errors"
	"github.com/go-drift/arbor/pkg/graphics"
	"github.com/go-drift/arbor/pkg/input"
	"github.com/go-drift/arbor/pkg/layout"
	"github.com/go-drift/arbor/pkg/property"
	"github.com/go-drift/arbor/pkg/visual"
)

// DecoratorType is the element type of Decorator.
var DecoratorType = visual.NewType("Decorator", ControlType)

// PaddingProperty is the space between a decorator's edge and its child.
var PaddingProperty = property.Register("Decorator", "Padding", graphics.Thickness{})

func init() {
	layout.AffectsMeasure(PaddingProperty)
}

// Decorator hosts at most one child inside its padding.
type Decorator struct {
	Control

	child           input.Element
	childrenChanged changeNotifier
}

// NewDecorator returns an empty decorator.
func NewDecorator() *Decorator {
	d := &Decorator{}
	d.SetSelf(d)
	return d
}

// ElementType returns DecoratorType.
func (d *Decorator) ElementType() *visual.Type {
	return DecoratorType
}

// Child returns the hosted child, or nil.
func (d *Decorator) Child() input.Element {
	return d.child
}

// SetChild replaces the hosted child. Nil removes it. The change is
// reported as ChangeAdd, ChangeRemove or ChangeReplace.
func (d *Decorator) SetChild(child input.Element) error {
	old := d.child
	if child == old {
		return nil
	}
	if err := visual.CheckCycle("controls.SetChild", d.Self(), child); err != nil {
		return err
	}
	if child != nil && child.Parent() != nil {
		return &errors.Error{
			Op:      "controls.SetChild",
			Kind:    errors.KindTree,
			Element: visual.Describe(child),
			Err:     fmt.Errorf("%w: parent %s", errors.ErrAlreadyParented, visual.Describe(child.Parent())),
		}
	}
	if old != nil {
		d.RemoveVisualChild(old)
	}
	d.child = child
	if child != nil {
		if err := d.AddVisualChild(child); err != nil {
			d.child = nil
			return err
		}
	}

	e := ChildrenChangedEvent{Action: ChangeReplace}
	switch {
	case old == nil:
		e.Action = ChangeAdd
	case child == nil:
		e.Action = ChangeRemove
	}
	if old != nil {
		e.OldItems = []input.Element{old}
	}
	if child != nil {
		e.NewItems = []input.Element{child}
	}
	d.childrenChanged.notify(e)
	d.InvalidateMeasure()
	return nil
}

// OnChildrenChanged registers fn to be called after the child changes. The
// returned function removes the subscription.
func (d *Decorator) OnChildrenChanged(fn func(ChildrenChangedEvent)) (unsubscribe func()) {
	return d.childrenChanged.subscribe(fn)
}

// Padding returns the space around the child.
func (d *Decorator) Padding() graphics.Thickness {
	return property.Get(d.Properties(), PaddingProperty)
}

func (d *Decorator) SetPadding(t graphics.Thickness) {
	property.Set(d.Properties(), d.Self(), PaddingProperty, t)
}

// MeasureOverride measures the child inside the padding.
func (d *Decorator) MeasureOverride(available graphics.Size) (graphics.Size, error) {
	return measureInset(d.child, available, d.Padding())
}

// ArrangeOverride arranges the child inside the padding.
func (d *Decorator) ArrangeOverride(final graphics.Size) (graphics.Size, error) {
	return arrangeInset(d.child, final, d.Padding())
}

// measureInset measures child within available less inset and returns the
// child's desired size plus inset.
func measureInset(child input.Element, available graphics.Size, inset graphics.Thickness) (graphics.Size, error) {
	if child == nil {
		return graphics.Size{}.Inflate(inset), nil
	}
	if err := child.Measure(available.Deflate(inset)); err != nil {
		return graphics.Size{}, err
	}
	desired, _ := child.DesiredSize()
	return desired.Inflate(inset), nil
}

// arrangeInset arranges child in the final rectangle less inset.
func arrangeInset(child input.Element, final graphics.Size, inset graphics.Thickness) (graphics.Size, error) {
	if child != nil {
		if err := child.Arrange(graphics.RectFromSize(final).Deflate(inset)); err != nil {
			return graphics.Size{}, err
		}
	}
	return final, nil
}
