package graphics

import (
	"fmt"
	"math"
)

// Point represents a 2D position in layout units.
type Point struct {
	X float64
	Y float64
}

// Size represents width and height dimensions in layout units.
type Size struct {
	Width  float64
	Height float64
}

// Rect represents a rectangle using left, top, right, bottom coordinates.
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// Thickness describes the four sides of an inset such as a margin or padding.
type Thickness struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// UniformThickness returns a thickness with the same value on all sides.
func UniformThickness(value float64) Thickness {
	return Thickness{Left: value, Top: value, Right: value, Bottom: value}
}

// SymmetricThickness returns a thickness with separate horizontal and vertical values.
func SymmetricThickness(horizontal, vertical float64) Thickness {
	return Thickness{Left: horizontal, Top: vertical, Right: horizontal, Bottom: vertical}
}

// Horizontal returns the combined left and right inset.
func (t Thickness) Horizontal() float64 {
	return t.Left + t.Right
}

// Vertical returns the combined top and bottom inset.
func (t Thickness) Vertical() float64 {
	return t.Top + t.Bottom
}

// IsZero reports whether every side is zero.
func (t Thickness) IsZero() bool {
	return t == Thickness{}
}

// Add returns the side-wise sum of two thicknesses.
func (t Thickness) Add(other Thickness) Thickness {
	return Thickness{
		Left:   t.Left + other.Left,
		Top:    t.Top + other.Top,
		Right:  t.Right + other.Right,
		Bottom: t.Bottom + other.Bottom,
	}
}

func (t Thickness) String() string {
	return fmt.Sprintf("%g,%g,%g,%g", t.Left, t.Top, t.Right, t.Bottom)
}

// IsFinite reports whether both dimensions are finite numbers (not NaN or infinite).
func (s Size) IsFinite() bool {
	return isFinite(s.Width) && isFinite(s.Height)
}

// IsValidLayoutSize reports whether the size is finite and non-negative.
func (s Size) IsValidLayoutSize() bool {
	return s.IsFinite() && s.Width >= 0 && s.Height >= 0
}

// Constrain returns the size clamped so neither dimension exceeds the constraint.
func (s Size) Constrain(constraint Size) Size {
	return Size{
		Width:  math.Min(s.Width, constraint.Width),
		Height: math.Min(s.Height, constraint.Height),
	}
}

// Deflate shrinks the size by a thickness, never going below zero.
func (s Size) Deflate(t Thickness) Size {
	return Size{
		Width:  math.Max(0, s.Width-t.Horizontal()),
		Height: math.Max(0, s.Height-t.Vertical()),
	}
}

// Inflate grows the size by a thickness.
func (s Size) Inflate(t Thickness) Size {
	return Size{
		Width:  s.Width + t.Horizontal(),
		Height: s.Height + t.Vertical(),
	}
}

func (s Size) String() string {
	return fmt.Sprintf("%gx%g", s.Width, s.Height)
}

// RectFromLTWH constructs a Rect from left, top, width, height values.
func RectFromLTWH(left, top, width, height float64) Rect {
	return Rect{
		Left:   left,
		Top:    top,
		Right:  left + width,
		Bottom: top + height,
	}
}

// RectFromSize constructs a Rect at the origin with the given size.
func RectFromSize(size Size) Rect {
	return RectFromLTWH(0, 0, size.Width, size.Height)
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Size returns the size of the rectangle.
func (r Rect) Size() Size {
	return Size{Width: r.Width(), Height: r.Height()}
}

// Origin returns the top-left corner.
func (r Rect) Origin() Point {
	return Point{X: r.Left, Y: r.Top}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{
		X: (r.Left + r.Right) * 0.5,
		Y: (r.Top + r.Bottom) * 0.5,
	}
}

// IsValidLayoutRect reports whether the rectangle has a finite, non-negative size.
// Infinite coordinates produce NaN or infinite widths, so they fail as well.
func (r Rect) IsValidLayoutRect() bool {
	return r.Size().IsValidLayoutSize()
}

// Deflate shrinks the rectangle by a thickness, keeping the size non-negative.
func (r Rect) Deflate(t Thickness) Rect {
	size := r.Size().Deflate(t)
	return RectFromLTWH(r.Left+t.Left, r.Top+t.Top, size.Width, size.Height)
}

// Contains reports whether the point lies inside the rectangle, edges inclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X <= r.Right && p.Y >= r.Top && p.Y <= r.Bottom
}

// Translate returns a new rect offset by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{
		Left:   r.Left + dx,
		Top:    r.Top + dy,
		Right:  r.Right + dx,
		Bottom: r.Bottom + dy,
	}
}

// Intersect returns the intersection of two rectangles.
// Returns empty rect if they don't overlap.
func (r Rect) Intersect(other Rect) Rect {
	left := math.Max(r.Left, other.Left)
	top := math.Max(r.Top, other.Top)
	right := math.Min(r.Right, other.Right)
	bottom := math.Min(r.Bottom, other.Bottom)
	if left >= right || top >= bottom {
		return Rect{}
	}
	return Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

func (r Rect) String() string {
	return fmt.Sprintf("(%g,%g %gx%g)", r.Left, r.Top, r.Width(), r.Height())
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
