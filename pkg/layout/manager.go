package layout

import "github.com/go-drift/arbor/pkg/graphics"

// Manager receives elements whose layout was invalidated and replays them in a
// later pass. Distance is the number of parent links between the element and
// its layout root.
type Manager interface {
	InvalidateMeasure(element Element, distance int)
	InvalidateArrange(element Element, distance int)
}

// Root terminates invalidation propagation. The layout root of an element is
// the nearest node, the element included, implementing Root.
type Root interface {
	LayoutManager() Manager
}

// RootElement is a layout root that can be laid out from scratch by a Queue.
type RootElement interface {
	Element
	Root
	ClientSize() graphics.Size
}
