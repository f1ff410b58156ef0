package input

import (
	"math"

	"go.uber.org/zap"

	"github.com/go-drift/arbor/pkg/graphics"
	"github.com/go-drift/arbor/pkg/interactivity"
	"github.com/go-drift/arbor/pkg/tree"
	"github.com/go-drift/arbor/pkg/visual"
)

// TraversalDirection indicates the focus traversal direction.
type TraversalDirection int

const (
	// TraversalDirectionUp moves focus upward.
	TraversalDirectionUp TraversalDirection = iota

	// TraversalDirectionDown moves focus downward.
	TraversalDirectionDown

	// TraversalDirectionLeft moves focus leftward.
	TraversalDirectionLeft

	// TraversalDirectionRight moves focus rightward.
	TraversalDirectionRight
)

// FocusScope is implemented by roots that own a FocusManager.
type FocusScope interface {
	FocusManager() *FocusManager
}

// FindFocusManager returns the focus manager of the nearest focus scope at
// or above n, or nil.
func FindFocusManager(n tree.Node) *FocusManager {
	for node := range tree.SelfAndAncestors(n) {
		if scope, ok := node.(FocusScope); ok {
			return scope.FocusManager()
		}
	}
	return nil
}

// FocusManager tracks the focused element below a scope root and moves focus
// between elements, raising LostFocus on the old element before GotFocus on
// the new one.
type FocusManager struct {
	scope   tree.Node
	current Element
}

// NewFocusManager returns a manager for the elements below scope.
func NewFocusManager(scope tree.Node) *FocusManager {
	return &FocusManager{scope: scope}
}

// Current returns the focused element, or nil.
func (m *FocusManager) Current() Element {
	return m.current
}

// Focus moves focus to e. A nil e clears focus. Elements that cannot take
// focus are refused and focus stays where it was. It reports whether focus
// changed.
func (m *FocusManager) Focus(e Element, method NavigationMethod) bool {
	if e != nil && !e.Input().CanFocus() {
		return false
	}
	if tree.Node(e) == tree.Node(m.current) {
		return false
	}

	old := m.current
	m.current = e

	if log := debugLogger(); log != nil {
		log.Debug("focus",
			zap.String("from", describe(old)),
			zap.String("to", describe(e)),
			zap.Int("method", int(method)))
	}

	if old != nil {
		m.report(old.RaiseEvent(interactivity.NewRoutedEventArgs(LostFocusEvent)))
	}
	if e != nil {
		m.report(e.RaiseEvent(&GotFocusEventArgs{
			RoutedEventArgs: interactivity.RoutedEventArgs{Event: GotFocusEvent},
			Method:          method,
		}))
	}
	return true
}

func (m *FocusManager) report(err error) {
	if err != nil {
		zap.L().Named("input").Error("focus event", zap.Error(err))
	}
}

// Focusable returns the focusable elements below the scope in tree order.
func (m *FocusManager) Focusable() []Element {
	var nodes []Element
	for e := range tree.OfType[Element](tree.Descendants(m.scope)) {
		if e.Input().CanFocus() {
			nodes = append(nodes, e)
		}
	}
	return nodes
}

// MoveFocus moves focus by delta positions in tree order, wrapping around.
func (m *FocusManager) MoveFocus(delta int) bool {
	candidates := m.Focusable()
	count := len(candidates)
	if count == 0 {
		return false
	}

	currentIndex := -1
	for i, c := range candidates {
		if tree.Node(c) == tree.Node(m.current) {
			currentIndex = i
			break
		}
	}
	if currentIndex < 0 && delta < 0 {
		currentIndex = 0
	}

	for step := 1; step <= count; step++ {
		candidate := candidates[wrapIndex(currentIndex+delta*step, count)]
		if tree.Node(candidate) == tree.Node(m.current) {
			continue
		}
		return m.Focus(candidate, NavigationTab)
	}
	return false
}

// FocusInDirection moves focus to the nearest focusable element in the given
// direction, falling back to linear traversal.
func (m *FocusManager) FocusInDirection(direction TraversalDirection) bool {
	current := m.current
	if current == nil {
		return m.MoveFocus(1)
	}
	currentRect := AbsoluteBounds(current)
	if currentRect.IsEmpty() {
		return m.MoveFocus(linearDelta(direction))
	}

	var best Element
	bestScore := math.MaxFloat64
	for _, child := range m.Focusable() {
		if tree.Node(child) == tree.Node(current) {
			continue
		}
		childRect := AbsoluteBounds(child)
		if childRect.IsEmpty() || !isInDirection(currentRect, childRect, direction) {
			continue
		}
		if score := directionalScore(currentRect, childRect, direction); score < bestScore {
			bestScore = score
			best = child
		}
	}
	if best == nil {
		return m.MoveFocus(linearDelta(direction))
	}
	return m.Focus(best, NavigationDirectional)
}

// linearDelta returns +1 or -1 for linear focus traversal based on direction.
func linearDelta(direction TraversalDirection) int {
	if direction == TraversalDirectionUp || direction == TraversalDirectionLeft {
		return -1
	}
	return 1
}

// isInDirection checks if target rect is in the specified direction from source.
func isInDirection(source, target graphics.Rect, direction TraversalDirection) bool {
	sc, tc := source.Center(), target.Center()
	switch direction {
	case TraversalDirectionUp:
		return tc.Y < sc.Y
	case TraversalDirectionDown:
		return tc.Y > sc.Y
	case TraversalDirectionLeft:
		return tc.X < sc.X
	case TraversalDirectionRight:
		return tc.X > sc.X
	}
	return false
}

// directionalScore scores a directional focus candidate; lower is better.
// Cross-axis distance weighs double so aligned elements win.
func directionalScore(source, target graphics.Rect, direction TraversalDirection) float64 {
	sc, tc := source.Center(), target.Center()
	var primaryDist, crossDist float64
	switch direction {
	case TraversalDirectionUp, TraversalDirectionDown:
		primaryDist = math.Abs(tc.Y - sc.Y)
		crossDist = math.Abs(tc.X - sc.X)
	case TraversalDirectionLeft, TraversalDirectionRight:
		primaryDist = math.Abs(tc.X - sc.X)
		crossDist = math.Abs(tc.Y - sc.Y)
	}
	return primaryDist + crossDist*2
}

// wrapIndex wraps an index to stay within [0, count).
func wrapIndex(index, count int) int {
	index = index % count
	if index < 0 {
		index += count
	}
	return index
}

func describe(e Element) string {
	if e == nil {
		return "<nil>"
	}
	return visual.Describe(e)
}
