// Package layout implements the two-pass layout protocol of the visual tree.
//
// # Measure and arrange
//
// Every element embeds Layoutable. Measure asks an element how much space it
// wants within an available size and records the answer as its desired size.
// Arrange then gives the element its final rectangle, from which the element
// computes its bounds after applying margin, alignment and min/max limits.
// Both passes are memoized: repeating a call with the same input does nothing
// until the element is invalidated.
//
// Concrete elements customise the passes by implementing MeasureOverride,
// ArrangeOverride and ApplyTemplate on the type registered with SetSelf:
//
//	type Badge struct {
//	    layout.Layoutable
//	}
//
//	func NewBadge() *Badge {
//	    b := &Badge{}
//	    b.SetSelf(b)
//	    return b
//	}
//
//	func (b *Badge) MeasureOverride(available graphics.Size) (graphics.Size, error) {
//	    return graphics.Size{Width: 24, Height: 16}, nil
//	}
//
// # Invalidation
//
// InvalidateMeasure and InvalidateArrange discard cached results. An element
// whose parent sizes to its content invalidates the parent instead, so the
// invalidation climbs until it reaches a parent with a fixed size or the
// layout root. The element reached is handed to the root's Manager together
// with its distance from the root. Queue is the Manager implementation: it
// replays pending elements shallowest first on ExecuteLayoutPass.
//
// Changes to the layout properties (width, height, limits, margin, alignment
// and visibility) invalidate measure automatically; AffectsMeasure and
// AffectsArrange register further properties.
package layout
