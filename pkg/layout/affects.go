package layout

import (
	"github.com/go-drift/arbor/pkg/property"
	"github.com/go-drift/arbor/pkg/visual"
)

func init() {
	AffectsMeasure(
		visual.IsVisibleProperty,
		WidthProperty,
		HeightProperty,
		MinWidthProperty,
		MaxWidthProperty,
		MinHeightProperty,
		MaxHeightProperty,
		MarginProperty,
		HorizontalAlignmentProperty,
		VerticalAlignmentProperty,
	)
}

// AffectsMeasure invalidates the measure of any element whose value for one
// of props changes.
func AffectsMeasure(props ...property.Notifier) {
	for _, p := range props {
		p.Subscribe(func(e property.ChangedEvent) {
			if el, ok := e.Sender.(Element); ok {
				el.InvalidateMeasure()
			}
		})
	}
}

// AffectsArrange invalidates the arrange of any element whose value for one
// of props changes.
func AffectsArrange(props ...property.Notifier) {
	for _, p := range props {
		p.Subscribe(func(e property.ChangedEvent) {
			if el, ok := e.Sender.(Element); ok {
				el.InvalidateArrange()
			}
		})
	}
}
