package layout

import (
	"fmt"
	"math"
	"slices"

	"go.uber.org/zap"

	"github.com/go-drift/arbor/pkg/errors"
	"github.com/go-drift/arbor/pkg/graphics"
	"github.com/go-drift/arbor/pkg/property"
	"github.com/go-drift/arbor/pkg/tree"
	"github.com/go-drift/arbor/pkg/visual"
)

// LayoutableType is the element type of Layoutable.
var LayoutableType = visual.NewType("Layoutable", visual.VisualType)

// Layout properties. Width and Height default to NaN, meaning "size to content".
var (
	WidthProperty               = property.Register("Layoutable", "Width", math.NaN())
	HeightProperty              = property.Register("Layoutable", "Height", math.NaN())
	MinWidthProperty            = property.Register("Layoutable", "MinWidth", 0.0)
	MaxWidthProperty            = property.Register("Layoutable", "MaxWidth", math.Inf(1))
	MinHeightProperty           = property.Register("Layoutable", "MinHeight", 0.0)
	MaxHeightProperty           = property.Register("Layoutable", "MaxHeight", math.Inf(1))
	MarginProperty              = property.Register("Layoutable", "Margin", graphics.Thickness{})
	HorizontalAlignmentProperty = property.Register("Layoutable", "HorizontalAlignment", HorizontalStretch)
	VerticalAlignmentProperty   = property.Register("Layoutable", "VerticalAlignment", VerticalStretch)
)

// Element is a node that takes part in layout.
type Element interface {
	tree.Node
	Constrained

	Measure(available graphics.Size) error
	ForceMeasure(available graphics.Size) error
	Arrange(rect graphics.Rect) error
	ForceArrange(rect graphics.Rect) error
	InvalidateMeasure()
	InvalidateArrange()

	// DesiredSize returns the size computed by the last measure; ok is
	// false while measure is invalid.
	DesiredSize() (size graphics.Size, ok bool)
	IsMeasureValid() bool
	IsArrangeValid() bool
	PreviousMeasure() (graphics.Size, bool)
	PreviousArrange() (graphics.Rect, bool)
	Bounds() graphics.Rect
}

// MeasureOverrider measures an element's content within the available size.
type MeasureOverrider interface {
	MeasureOverride(available graphics.Size) (graphics.Size, error)
}

// ArrangeOverrider positions an element's content within the final size and
// returns the size actually used.
type ArrangeOverrider interface {
	ArrangeOverride(final graphics.Size) (graphics.Size, error)
}

// TemplateApplier instantiates deferred content before the first measure.
type TemplateApplier interface {
	ApplyTemplate()
}

// Layoutable is the base for elements that take part in layout.
//
// Concrete elements embed Layoutable and call SetSelf with themselves so that
// overrides (MeasureOverride, ArrangeOverride, ApplyTemplate) resolve to the
// concrete type.
type Layoutable struct {
	visual.Visual

	measureValid bool
	arrangeValid bool

	desiredSize graphics.Size
	hasDesired  bool

	previousMeasure    graphics.Size
	hasPreviousMeasure bool
	previousArrange    graphics.Rect
	hasPreviousArrange bool
}

// ElementType returns LayoutableType.
func (l *Layoutable) ElementType() *visual.Type {
	return LayoutableType
}

// element returns the concrete element registered via SetSelf.
func (l *Layoutable) element() Element {
	if e, ok := l.Self().(Element); ok {
		return e
	}
	return l
}

// Width returns the explicit width, or NaN when the element sizes to content.
func (l *Layoutable) Width() float64 { return property.Get(l.Properties(), WidthProperty) }

// Height returns the explicit height, or NaN when the element sizes to content.
func (l *Layoutable) Height() float64 { return property.Get(l.Properties(), HeightProperty) }

// MinWidth returns the smallest width the element is arranged at.
func (l *Layoutable) MinWidth() float64 { return property.Get(l.Properties(), MinWidthProperty) }

// MaxWidth returns the largest width the element is arranged at.
func (l *Layoutable) MaxWidth() float64 { return property.Get(l.Properties(), MaxWidthProperty) }

// MinHeight returns the smallest height the element is arranged at.
func (l *Layoutable) MinHeight() float64 { return property.Get(l.Properties(), MinHeightProperty) }

// MaxHeight returns the largest height the element is arranged at.
func (l *Layoutable) MaxHeight() float64 { return property.Get(l.Properties(), MaxHeightProperty) }

// SetWidth sets the explicit width. NaN clears it.
func (l *Layoutable) SetWidth(v float64) {
	property.SetFloat(l.Properties(), l.element(), WidthProperty, v)
}

// SetHeight sets the explicit height. NaN clears it.
func (l *Layoutable) SetHeight(v float64) {
	property.SetFloat(l.Properties(), l.element(), HeightProperty, v)
}

// SetMinWidth sets the minimum width.
func (l *Layoutable) SetMinWidth(v float64) {
	property.SetFloat(l.Properties(), l.element(), MinWidthProperty, v)
}

// SetMaxWidth sets the maximum width. +Inf removes the limit.
func (l *Layoutable) SetMaxWidth(v float64) {
	property.SetFloat(l.Properties(), l.element(), MaxWidthProperty, v)
}

// SetMinHeight sets the minimum height.
func (l *Layoutable) SetMinHeight(v float64) {
	property.SetFloat(l.Properties(), l.element(), MinHeightProperty, v)
}

// SetMaxHeight sets the maximum height. +Inf removes the limit.
func (l *Layoutable) SetMaxHeight(v float64) {
	property.SetFloat(l.Properties(), l.element(), MaxHeightProperty, v)
}

// Margin returns the space reserved around the element.
func (l *Layoutable) Margin() graphics.Thickness {
	return property.Get(l.Properties(), MarginProperty)
}

// SetMargin sets the space reserved around the element.
func (l *Layoutable) SetMargin(t graphics.Thickness) {
	property.Set(l.Properties(), l.element(), MarginProperty, t)
}

// HorizontalAlignment returns how the element is placed across the width it
// is arranged in.
func (l *Layoutable) HorizontalAlignment() HorizontalAlignment {
	return property.Get(l.Properties(), HorizontalAlignmentProperty)
}

// SetHorizontalAlignment sets the horizontal alignment.
func (l *Layoutable) SetHorizontalAlignment(a HorizontalAlignment) {
	property.Set(l.Properties(), l.element(), HorizontalAlignmentProperty, a)
}

// VerticalAlignment returns how the element is placed across the height it
// is arranged in.
func (l *Layoutable) VerticalAlignment() VerticalAlignment {
	return property.Get(l.Properties(), VerticalAlignmentProperty)
}

// SetVerticalAlignment sets the vertical alignment.
func (l *Layoutable) SetVerticalAlignment(a VerticalAlignment) {
	property.Set(l.Properties(), l.element(), VerticalAlignmentProperty, a)
}

// DesiredSize returns the size requested by the last successful measure.
func (l *Layoutable) DesiredSize() (graphics.Size, bool) {
	return l.desiredSize, l.hasDesired
}

// IsMeasureValid reports whether the cached measure result is current.
func (l *Layoutable) IsMeasureValid() bool {
	return l.measureValid
}

// IsArrangeValid reports whether the element's bounds are current.
func (l *Layoutable) IsArrangeValid() bool {
	return l.arrangeValid
}

// PreviousMeasure returns the available size of the last measure.
func (l *Layoutable) PreviousMeasure() (graphics.Size, bool) {
	return l.previousMeasure, l.hasPreviousMeasure
}

// PreviousArrange returns the rectangle of the last arrange.
func (l *Layoutable) PreviousArrange() (graphics.Rect, bool) {
	return l.previousArrange, l.hasPreviousArrange
}

// Measure computes the element's desired size within available.
// It is a no-op when the element was already measured with the same size.
func (l *Layoutable) Measure(available graphics.Size) error {
	return l.measure(available, false)
}

// ForceMeasure measures even when the cached result is valid.
func (l *Layoutable) ForceMeasure(available graphics.Size) error {
	return l.measure(available, true)
}

func (l *Layoutable) measure(available graphics.Size, force bool) error {
	if !available.IsFinite() {
		return &errors.Error{
			Op:      "layout.Measure",
			Kind:    errors.KindInvalidInput,
			Element: visual.Describe(l.Self()),
			Err:     fmt.Errorf("%w: available size %v", errors.ErrInvalidInput, available),
		}
	}
	if !force && l.measureValid && l.hasPreviousMeasure && l.previousMeasure == available {
		return nil
	}

	// Marked before computing so an invalidation raised by the override is
	// visible once it returns.
	l.measureValid = true
	passesTotal.WithLabelValues("measure").Inc()

	raw, err := l.measureCore(available)
	if err != nil {
		l.resetMeasure()
		return err
	}
	desired := raw.Constrain(available)
	if !desired.IsValidLayoutSize() {
		l.resetMeasure()
		return &errors.Error{
			Op:      "layout.Measure",
			Kind:    errors.KindInvalidMeasurement,
			Element: visual.Describe(l.Self()),
			Err:     fmt.Errorf("%w: desired size %v", errors.ErrInvalidMeasurement, desired),
		}
	}

	// An invalidation raised while measuring wins over the stale result.
	if !l.measureValid {
		if log := debugLogger(); log != nil {
			log.Debug("measure invalidated while running", zap.String("element", visual.Describe(l.Self())))
		}
		return nil
	}

	l.desiredSize = desired
	l.hasDesired = true
	l.previousMeasure = available
	l.hasPreviousMeasure = true

	if log := debugLogger(); log != nil {
		log.Debug("measured",
			zap.String("element", visual.Describe(l.Self())),
			zap.Stringer("available", available),
			zap.Stringer("desired", desired))
	}
	return nil
}

func (l *Layoutable) resetMeasure() {
	l.measureValid = false
	l.arrangeValid = false
	l.hasDesired = false
	l.desiredSize = graphics.Size{}
	l.hasPreviousMeasure = false
	l.hasPreviousArrange = false
}

// measureCore applies the element's own size constraints around its
// MeasureOverride.
func (l *Layoutable) measureCore(available graphics.Size) (graphics.Size, error) {
	if !l.IsVisible() {
		return graphics.Size{}, nil
	}
	self := l.element()
	if t, ok := self.(TemplateApplier); ok {
		t.ApplyTemplate()
	}

	margin := l.Margin()
	constrained := ApplyLayoutConstraints(self, available).Deflate(margin)

	measured, err := l.measureOverride(self, constrained)
	if err != nil {
		return graphics.Size{}, err
	}

	width := measured.Width
	if w := self.Width(); !math.IsNaN(w) {
		width = w
	}
	height := measured.Height
	if h := self.Height(); !math.IsNaN(h) {
		height = h
	}
	size := graphics.Size{
		Width:  clamp(width, self.MinWidth(), self.MaxWidth()),
		Height: clamp(height, self.MinHeight(), self.MaxHeight()),
	}
	return size.Inflate(margin), nil
}

func (l *Layoutable) measureOverride(self Element, available graphics.Size) (graphics.Size, error) {
	if m, ok := self.(MeasureOverrider); ok {
		return m.MeasureOverride(available)
	}
	return l.MeasureOverride(available)
}

// MeasureOverride measures every layout child with available and returns the
// union of their desired sizes.
func (l *Layoutable) MeasureOverride(available graphics.Size) (graphics.Size, error) {
	var size graphics.Size
	for child := range tree.OfType[Element](slices.Values(l.Children())) {
		if err := child.Measure(available); err != nil {
			return graphics.Size{}, err
		}
		desired, _ := child.DesiredSize()
		size.Width = math.Max(size.Width, desired.Width)
		size.Height = math.Max(size.Height, desired.Height)
	}
	return size, nil
}

// Arrange positions the element within rect. It does nothing while measure
// is invalid or when the element was already arranged in the same rect.
func (l *Layoutable) Arrange(rect graphics.Rect) error {
	return l.arrange(rect, false)
}

// ForceArrange arranges even when the cached bounds are valid. It still does
// nothing while measure is invalid.
func (l *Layoutable) ForceArrange(rect graphics.Rect) error {
	return l.arrange(rect, true)
}

func (l *Layoutable) arrange(rect graphics.Rect, force bool) error {
	if !rect.IsValidLayoutRect() {
		return &errors.Error{
			Op:      "layout.Arrange",
			Kind:    errors.KindInvalidRect,
			Element: visual.Describe(l.Self()),
			Err:     fmt.Errorf("%w: %v", errors.ErrInvalidRect, rect),
		}
	}
	// The pending measure pass arranges the element again once it runs.
	if !l.measureValid {
		return nil
	}
	if !force && l.arrangeValid && l.hasPreviousArrange && l.previousArrange == rect {
		return nil
	}

	l.arrangeValid = true
	passesTotal.WithLabelValues("arrange").Inc()

	if err := l.arrangeCore(rect); err != nil {
		l.arrangeValid = false
		l.hasPreviousArrange = false
		return err
	}
	if !l.arrangeValid {
		return nil
	}
	l.previousArrange = rect
	l.hasPreviousArrange = true

	if log := debugLogger(); log != nil {
		log.Debug("arranged",
			zap.String("element", visual.Describe(l.Self())),
			zap.Stringer("rect", rect),
			zap.Stringer("bounds", l.Bounds()))
	}
	return nil
}

// arrangeCore places the element inside rect. Invisible elements keep their
// previous bounds.
func (l *Layoutable) arrangeCore(rect graphics.Rect) error {
	if !l.IsVisible() {
		return nil
	}
	self := l.element()
	margin := l.Margin()

	originX := rect.Left + margin.Left
	originY := rect.Top + margin.Top
	content := rect.Size().Deflate(margin)
	size := content

	hAlign := l.HorizontalAlignment()
	vAlign := l.VerticalAlignment()
	if hAlign != HorizontalStretch {
		size.Width = math.Min(size.Width, l.desiredSize.Width)
	}
	if vAlign != VerticalStretch {
		size.Height = math.Min(size.Height, l.desiredSize.Height)
	}

	size = ApplyLayoutConstraints(self, size)
	arranged, err := l.arrangeOverride(self, size)
	if err != nil {
		return err
	}
	size = arranged.Constrain(size)
	if !size.IsValidLayoutSize() {
		return &errors.Error{
			Op:      "layout.Arrange",
			Kind:    errors.KindInvalidMeasurement,
			Element: visual.Describe(l.Self()),
			Err:     fmt.Errorf("%w: arranged size %v", errors.ErrInvalidArrangement, size),
		}
	}

	switch hAlign {
	case HorizontalCenter:
		originX += (content.Width - size.Width) / 2
	case HorizontalRight:
		originX += content.Width - size.Width
	}
	switch vAlign {
	case VerticalCenter:
		originY += (content.Height - size.Height) / 2
	case VerticalBottom:
		originY += content.Height - size.Height
	}

	l.SetBounds(graphics.RectFromLTWH(originX, originY, size.Width, size.Height))
	return nil
}

func (l *Layoutable) arrangeOverride(self Element, final graphics.Size) (graphics.Size, error) {
	if a, ok := self.(ArrangeOverrider); ok {
		return a.ArrangeOverride(final)
	}
	return l.ArrangeOverride(final)
}

// ArrangeOverride arranges every layout child in the full final rectangle.
func (l *Layoutable) ArrangeOverride(final graphics.Size) (graphics.Size, error) {
	rect := graphics.RectFromSize(final)
	for child := range tree.OfType[Element](slices.Values(l.Children())) {
		if err := child.Arrange(rect); err != nil {
			return graphics.Size{}, err
		}
	}
	return final, nil
}

// InvalidateMeasure discards the cached measure and arrange results.
//
// When the parent sizes to its content the parent is invalidated instead,
// otherwise the element is queued with the nearest layout root's manager.
func (l *Layoutable) InvalidateMeasure() {
	if l.measureValid {
		if log := debugLogger(); log != nil {
			log.Debug("invalidated measure", zap.String("element", visual.Describe(l.Self())))
		}
	}
	l.resetMeasure()
	invalidationsTotal.WithLabelValues("measure").Inc()

	if parent, ok := l.Parent().(Element); ok && IsResizable(parent) {
		parent.InvalidateMeasure()
		return
	}
	if manager, distance, ok := l.layoutManager(); ok {
		manager.InvalidateMeasure(l.element(), distance)
	}
}

// InvalidateArrange discards the cached arrange result and queues the element
// with the nearest layout root's manager.
func (l *Layoutable) InvalidateArrange() {
	if l.arrangeValid {
		if log := debugLogger(); log != nil {
			log.Debug("invalidated arrange", zap.String("element", visual.Describe(l.Self())))
		}
	}
	l.arrangeValid = false
	l.hasPreviousArrange = false
	invalidationsTotal.WithLabelValues("arrange").Inc()

	if manager, distance, ok := l.layoutManager(); ok {
		manager.InvalidateArrange(l.element(), distance)
	}
}

// layoutManager finds the nearest layout root, starting with the element
// itself, and returns its manager with the distance to it.
func (l *Layoutable) layoutManager() (Manager, int, bool) {
	distance := 0
	for node := range tree.SelfAndAncestors(l.Self()) {
		if root, ok := node.(Root); ok {
			manager := root.LayoutManager()
			return manager, distance, manager != nil
		}
		distance++
	}
	return nil, 0, false
}
