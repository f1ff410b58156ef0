package controls

import (
	"github.com/go-drift/arbor/pkg/graphics"
	"github.com/go-drift/arbor/pkg/layout"
	"github.com/go-drift/arbor/pkg/property"
	"github.com/go-drift/arbor/pkg/visual"
)

// BorderType is the element type of Border.
var BorderType = visual.NewType("Border", DecoratorType)

// BorderThicknessProperty is the width of the border line on every side.
var BorderThicknessProperty = property.Register("Border", "BorderThickness", 0.0)

func init() {
	layout.AffectsMeasure(BorderThicknessProperty)
}

// Border is a decorator that reserves room for a border line around its
// padding and child.
type Border struct {
	Decorator
}

// NewBorder returns an empty border.
func NewBorder() *Border {
	b := &Border{}
	b.SetSelf(b)
	return b
}

// ElementType returns BorderType.
func (b *Border) ElementType() *visual.Type {
	return BorderType
}

func (b *Border) BorderThickness() float64 {
	return property.Get(b.Properties(), BorderThicknessProperty)
}

func (b *Border) SetBorderThickness(v float64) {
	property.SetFloat(b.Properties(), b.Self(), BorderThicknessProperty, v)
}

func (b *Border) inset() graphics.Thickness {
	return b.Padding().Add(graphics.UniformThickness(b.BorderThickness()))
}

// MeasureOverride measures the child inside the border and padding.
func (b *Border) MeasureOverride(available graphics.Size) (graphics.Size, error) {
	return measureInset(b.Child(), available, b.inset())
}

// ArrangeOverride arranges the child inside the border and padding.
func (b *Border) ArrangeOverride(final graphics.Size) (graphics.Size, error) {
	return arrangeInset(b.Child(), final, b.inset())
}
