package input

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-drift/arbor/pkg/graphics"
)

// hitFixture is root(100x100) > [a(0,0 50x50), b(25,25 50x50) > c(10,10 10x10)].
type hitFixture struct {
	root, a, b, c *testInput
}

func newHitFixture(t *testing.T) *hitFixture {
	t.Helper()
	f := &hitFixture{
		root: newTestInput("root", rect(0, 0, 100, 100)),
		a:    newTestInput("a", rect(0, 0, 50, 50)),
		b:    newTestInput("b", rect(25, 25, 50, 50)),
		c:    newTestInput("c", rect(10, 10, 10, 10)),
	}
	f.root.add(t, f.a, f.b)
	f.b.add(t, f.c)
	return f
}

func TestHitTest(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(f *hitFixture)
		point  graphics.Point
		expect func(f *hitFixture) Element
	}{
		{"later sibling on top", nil, graphics.Point{X: 30, Y: 30}, func(f *hitFixture) Element { return f.b }},
		{"only first sibling", nil, graphics.Point{X: 10, Y: 10}, func(f *hitFixture) Element { return f.a }},
		{"nested child", nil, graphics.Point{X: 40, Y: 40}, func(f *hitFixture) Element { return f.c }},
		{"root background", nil, graphics.Point{X: 90, Y: 10}, func(f *hitFixture) Element { return f.root }},
		{"outside root", nil, graphics.Point{X: 150, Y: 10}, func(*hitFixture) Element { return nil }},
		{"disabled skipped", func(f *hitFixture) { f.b.SetIsEnabled(false) },
			graphics.Point{X: 30, Y: 30}, func(f *hitFixture) Element { return f.a }},
		{"invisible skipped", func(f *hitFixture) { f.b.SetIsVisible(false) },
			graphics.Point{X: 40, Y: 40}, func(f *hitFixture) Element { return f.a }},
		{"hit test invisible skipped", func(f *hitFixture) { f.c.SetIsHitTestVisible(false) },
			graphics.Point{X: 40, Y: 40}, func(f *hitFixture) Element { return f.b }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newHitFixture(t)
			if tt.setup != nil {
				tt.setup(f)
			}
			got := HitTest(f.root, tt.point)
			want := tt.expect(f)
			if want == nil {
				assert.Nil(t, got)
				return
			}
			assert.Same(t, want, got)
		})
	}
}

func TestHitTestClipsToParent(t *testing.T) {
	f := newHitFixture(t)
	overflow := newTestInput("overflow", rect(30, 0, 40, 10))
	f.a.add(t, overflow)

	assert.Same(t, overflow, HitTest(f.root, graphics.Point{X: 35, Y: 5}))
	// Inside overflow's bounds but outside a's.
	assert.Same(t, f.root, HitTest(f.root, graphics.Point{X: 60, Y: 5}))

	empty := newTestInput("empty", rect(5, 5, 0, 0))
	f.a.add(t, empty)
	assert.Same(t, f.a, HitTest(f.root, graphics.Point{X: 5, Y: 5}))
}

func TestInputElementsAtOrder(t *testing.T) {
	f := newHitFixture(t)
	hits := InputElementsAt(f.root, graphics.Point{X: 40, Y: 40})
	assert.Equal(t, []Element{f.c, f.b, f.a, f.root}, hits)
}

func TestAbsoluteBounds(t *testing.T) {
	f := newHitFixture(t)
	assert.Equal(t, rect(35, 35, 10, 10), AbsoluteBounds(f.c))
	assert.Equal(t, rect(0, 0, 100, 100), AbsoluteBounds(f.root))
}
