package controls

import (
	"fmt"
	"iter"
	"math"
	"slices"
	"strings"

	"github.com/go-drift/arbor/pkg/graphics"
	"github.com/go-drift/arbor/pkg/layout"
	"github.com/go-drift/arbor/pkg/property"
	"github.com/go-drift/arbor/pkg/tree"
	"github.com/go-drift/arbor/pkg/visual"
)

// Orientation is the direction a StackPanel stacks its children in.
// OrientationVertical is the zero value.
type Orientation int

const (
	OrientationVertical Orientation = iota
	OrientationHorizontal
)

func (o Orientation) String() string {
	switch o {
	case OrientationVertical:
		return "vertical"
	case OrientationHorizontal:
		return "horizontal"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}

// ParseOrientation parses "vertical" or "horizontal", ignoring case.
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "vertical":
		return OrientationVertical, nil
	case "horizontal":
		return OrientationHorizontal, nil
	default:
		return OrientationVertical, fmt.Errorf("unknown orientation %q", s)
	}
}

// StackPanelType is the element type of StackPanel.
var StackPanelType = visual.NewType("StackPanel", PanelType)

// StackPanel properties.
var (
	OrientationProperty = property.Register("StackPanel", "Orientation", OrientationVertical)
	SpacingProperty     = property.Register("StackPanel", "Spacing", 0.0)
)

func init() {
	layout.AffectsMeasure(OrientationProperty, SpacingProperty)
}

// StackPanel places its visible children one after another along its
// orientation, separated by Spacing. Every child is offered the panel's full
// available size, and each gets the panel's full extent across the stacking
// axis.
type StackPanel struct {
	Panel
}

// NewStackPanel returns an empty vertical stack panel.
func NewStackPanel() *StackPanel {
	s := &StackPanel{}
	s.SetSelf(s)
	return s
}

// ElementType returns StackPanelType.
func (s *StackPanel) ElementType() *visual.Type {
	return StackPanelType
}

func (s *StackPanel) Orientation() Orientation {
	return property.Get(s.Properties(), OrientationProperty)
}

func (s *StackPanel) SetOrientation(o Orientation) {
	property.Set(s.Properties(), s.Self(), OrientationProperty, o)
}

// Spacing returns the gap between adjacent visible children.
func (s *StackPanel) Spacing() float64 {
	return property.Get(s.Properties(), SpacingProperty)
}

func (s *StackPanel) SetSpacing(v float64) {
	property.SetFloat(s.Properties(), s.Self(), SpacingProperty, v)
}

func (s *StackPanel) mainAxis(size graphics.Size) float64 {
	if s.Orientation() == OrientationHorizontal {
		return size.Width
	}
	return size.Height
}

func (s *StackPanel) crossAxis(size graphics.Size) float64 {
	if s.Orientation() == OrientationHorizontal {
		return size.Height
	}
	return size.Width
}

func (s *StackPanel) size(main, cross float64) graphics.Size {
	if s.Orientation() == OrientationHorizontal {
		return graphics.Size{Width: main, Height: cross}
	}
	return graphics.Size{Width: cross, Height: main}
}

// MeasureOverride sums the children's desired sizes along the stacking axis
// and takes the largest across it.
func (s *StackPanel) MeasureOverride(available graphics.Size) (graphics.Size, error) {
	var main, cross float64
	visible := 0
	for child := range s.layoutChildren() {
		if err := child.Measure(available); err != nil {
			return graphics.Size{}, err
		}
		if !child.IsVisible() {
			continue
		}
		desired, _ := child.DesiredSize()
		main += s.mainAxis(desired)
		cross = math.Max(cross, s.crossAxis(desired))
		visible++
	}
	if visible > 1 {
		main += s.Spacing() * float64(visible-1)
	}
	return s.size(main, cross), nil
}

// ArrangeOverride gives each visible child its desired extent along the
// stacking axis and the full final extent across it.
func (s *StackPanel) ArrangeOverride(final graphics.Size) (graphics.Size, error) {
	cursor := 0.0
	cross := s.crossAxis(final)
	spacing := s.Spacing()
	for child := range s.layoutChildren() {
		if !child.IsVisible() {
			continue
		}
		desired, _ := child.DesiredSize()
		main := s.mainAxis(desired)
		var rect graphics.Rect
		if s.Orientation() == OrientationHorizontal {
			rect = graphics.RectFromLTWH(cursor, 0, main, cross)
		} else {
			rect = graphics.RectFromLTWH(0, cursor, cross, main)
		}
		if err := child.Arrange(rect); err != nil {
			return graphics.Size{}, err
		}
		cursor += main + spacing
	}
	return final, nil
}

type visibleElement interface {
	layout.Element
	IsVisible() bool
}

func (s *StackPanel) layoutChildren() iter.Seq[visibleElement] {
	return tree.OfType[visibleElement](slices.Values(s.Children()))
}
