package layout

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-drift/arbor/pkg/graphics"
)

// HorizontalAlignment positions an element horizontally within the space its
// parent arranges it in.
type HorizontalAlignment int

const (
	// HorizontalStretch fills the available width.
	HorizontalStretch HorizontalAlignment = iota
	// HorizontalLeft aligns to the start edge.
	HorizontalLeft
	// HorizontalCenter centers horizontally.
	HorizontalCenter
	// HorizontalRight aligns to the end edge.
	HorizontalRight
)

func (a HorizontalAlignment) String() string {
	switch a {
	case HorizontalLeft:
		return "left"
	case HorizontalCenter:
		return "center"
	case HorizontalRight:
		return "right"
	default:
		return "stretch"
	}
}

// ParseHorizontalAlignment parses "stretch", "left"/"start", "center" or
// "right"/"end".
func ParseHorizontalAlignment(s string) (HorizontalAlignment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "stretch":
		return HorizontalStretch, nil
	case "left", "start":
		return HorizontalLeft, nil
	case "center":
		return HorizontalCenter, nil
	case "right", "end":
		return HorizontalRight, nil
	}
	return HorizontalStretch, fmt.Errorf("unknown horizontal alignment %q", s)
}

// VerticalAlignment positions an element vertically within the space its
// parent arranges it in.
type VerticalAlignment int

const (
	// VerticalStretch fills the available height.
	VerticalStretch VerticalAlignment = iota
	// VerticalTop aligns to the start edge.
	VerticalTop
	// VerticalCenter centers vertically.
	VerticalCenter
	// VerticalBottom aligns to the end edge.
	VerticalBottom
)

func (a VerticalAlignment) String() string {
	switch a {
	case VerticalTop:
		return "top"
	case VerticalCenter:
		return "center"
	case VerticalBottom:
		return "bottom"
	default:
		return "stretch"
	}
}

// ParseVerticalAlignment parses "stretch", "top"/"start", "center" or
// "bottom"/"end".
func ParseVerticalAlignment(s string) (VerticalAlignment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "stretch":
		return VerticalStretch, nil
	case "top", "start":
		return VerticalTop, nil
	case "center":
		return VerticalCenter, nil
	case "bottom", "end":
		return VerticalBottom, nil
	}
	return VerticalStretch, fmt.Errorf("unknown vertical alignment %q", s)
}

// Constrained is the set of sizing attributes the constraint helpers read.
type Constrained interface {
	Width() float64
	Height() float64
	MinWidth() float64
	MaxWidth() float64
	MinHeight() float64
	MaxHeight() float64
}

// ApplyLayoutConstraints replaces each dimension of size with the element's
// explicit value when one is set, then clamps it to the min/max range.
func ApplyLayoutConstraints(e Constrained, size graphics.Size) graphics.Size {
	width := size.Width
	if w := e.Width(); w > 0 {
		width = w
	}
	height := size.Height
	if h := e.Height(); h > 0 {
		height = h
	}
	return graphics.Size{
		Width:  clamp(width, e.MinWidth(), e.MaxWidth()),
		Height: clamp(height, e.MinHeight(), e.MaxHeight()),
	}
}

// IsResizable reports whether an element's size depends on its content,
// which is the case when either explicit dimension is unset.
func IsResizable(e Constrained) bool {
	return math.IsNaN(e.Width()) || math.IsNaN(e.Height())
}

// clamp applies max first and min last, so min wins when min > max.
func clamp(v, lo, hi float64) float64 {
	return math.Max(math.Min(v, hi), lo)
}
