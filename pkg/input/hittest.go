package input

import (
	"slices"

	"github.com/go-drift/arbor/pkg/graphics"
	"github.com/go-drift/arbor/pkg/tree"
)

type bounded interface {
	Bounds() graphics.Rect
}

// AbsoluteBounds returns the bounds of n in the coordinates of its root.
// Bounds are stored relative to the parent, so the offsets of every ancestor
// are added up.
func AbsoluteBounds(n tree.Node) graphics.Rect {
	b, ok := n.(bounded)
	if !ok {
		return graphics.Rect{}
	}
	rect := b.Bounds()
	for ancestor := range tree.Ancestors(n) {
		if ab, ok := ancestor.(bounded); ok {
			origin := ab.Bounds().Origin()
			rect = rect.Translate(origin.X, origin.Y)
		}
	}
	return rect
}

// InputElementsAt returns the input elements under p, topmost first. The
// point is in the coordinates of root's parent, the space root's bounds are
// expressed in. Invisible, disabled and hit-test-invisible elements are
// skipped along with their subtrees. Children are clipped to their parent,
// and elements with no visible area are never hit.
func InputElementsAt(root Element, p graphics.Point) []Element {
	var hits []Element
	collectHits(root, p, root.Bounds(), &hits)
	return hits
}

// HitTest returns the topmost input element under p, or nil.
func HitTest(root Element, p graphics.Point) Element {
	hits := InputElementsAt(root, p)
	if len(hits) == 0 {
		return nil
	}
	return hits[0]
}

// collectHits appends the hits under e. p and clip share the coordinate
// space of e's bounds.
func collectHits(e Element, p graphics.Point, clip graphics.Rect, hits *[]Element) {
	in := e.Input()
	if !in.IsVisible() || !in.IsEnabledCore() || !in.IsHitTestVisible() {
		return
	}
	bounds := e.Bounds()
	visible := bounds.Intersect(clip)
	if visible.IsEmpty() || !visible.Contains(p) {
		return
	}
	local := graphics.Point{X: p.X - bounds.Left, Y: p.Y - bounds.Top}
	localClip := visible.Translate(-bounds.Left, -bounds.Top)

	// Later children are on top.
	children := slices.Clone(e.Children())
	slices.Reverse(children)
	for child := range tree.OfType[Element](slices.Values(children)) {
		collectHits(child, local, localClip, hits)
	}
	*hits = append(*hits, e)
}
