package graphics

import (
	"math"
	"testing"
)

func TestSize_IsValidLayoutSize(t *testing.T) {
	tests := []struct {
		name string
		size Size
		want bool
	}{
		{"zero", Size{}, true},
		{"positive", Size{Width: 10, Height: 5}, true},
		{"negative width", Size{Width: -1, Height: 5}, false},
		{"nan height", Size{Width: 1, Height: math.NaN()}, false},
		{"infinite width", Size{Width: math.Inf(1), Height: 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.size.IsValidLayoutSize(); got != tt.want {
				t.Errorf("IsValidLayoutSize(%v) = %v, want %v", tt.size, got, tt.want)
			}
		})
	}
}

func TestSize_IsFiniteAllowsNegative(t *testing.T) {
	if !(Size{Width: -3, Height: 2}).IsFinite() {
		t.Error("expected negative size to be finite")
	}
}

func TestSize_DeflateInflate(t *testing.T) {
	s := Size{Width: 100, Height: 50}
	pad := Thickness{Left: 10, Top: 5, Right: 20, Bottom: 15}

	if got := s.Deflate(pad); got != (Size{Width: 70, Height: 30}) {
		t.Errorf("Deflate = %v", got)
	}
	if got := (Size{Width: 10, Height: 10}).Deflate(pad); got != (Size{}) {
		t.Errorf("Deflate should floor at zero, got %v", got)
	}
	if got := s.Inflate(pad); got != (Size{Width: 130, Height: 70}) {
		t.Errorf("Inflate = %v", got)
	}
	inf := Size{Width: math.Inf(1), Height: math.Inf(1)}
	if got := inf.Deflate(pad); !math.IsInf(got.Width, 1) || !math.IsInf(got.Height, 1) {
		t.Errorf("Deflate of infinity should stay infinite, got %v", got)
	}
}

func TestSize_Constrain(t *testing.T) {
	got := Size{Width: 100, Height: 10}.Constrain(Size{Width: 50, Height: 50})
	if got != (Size{Width: 50, Height: 10}) {
		t.Errorf("Constrain = %v", got)
	}
}

func TestRect_Geometry(t *testing.T) {
	r := RectFromLTWH(10, 20, 30, 40)
	if r.Width() != 30 || r.Height() != 40 {
		t.Errorf("unexpected size %v", r.Size())
	}
	if r.Origin() != (Point{X: 10, Y: 20}) {
		t.Errorf("Origin = %v", r.Origin())
	}
	if r.Center() != (Point{X: 25, Y: 40}) {
		t.Errorf("Center = %v", r.Center())
	}
	if got := r.Translate(5, -5); got != RectFromLTWH(15, 15, 30, 40) {
		t.Errorf("Translate = %v", got)
	}
	if got := r.String(); got != "(10,20 30x40)" {
		t.Errorf("String = %q", got)
	}
}

func TestRect_Deflate(t *testing.T) {
	r := RectFromLTWH(0, 0, 100, 100)
	if got := r.Deflate(UniformThickness(10)); got != RectFromLTWH(10, 10, 80, 80) {
		t.Errorf("Deflate = %v", got)
	}
	if got := RectFromLTWH(0, 0, 4, 4).Deflate(UniformThickness(3)); got != RectFromLTWH(3, 3, 0, 0) {
		t.Errorf("Deflate should keep a non-negative size, got %v", got)
	}
}

func TestRect_ContainsEdgesInclusive(t *testing.T) {
	r := RectFromLTWH(0, 0, 10, 10)
	for _, p := range []Point{{0, 0}, {10, 10}, {5, 5}} {
		if !r.Contains(p) {
			t.Errorf("expected %v inside %v", p, r)
		}
	}
	if r.Contains(Point{X: 10.5, Y: 5}) {
		t.Error("expected point right of the rect to be outside")
	}
}

func TestRect_Intersect(t *testing.T) {
	a := RectFromLTWH(0, 0, 10, 10)
	b := RectFromLTWH(5, 5, 10, 10)
	if got := a.Intersect(b); got != RectFromLTWH(5, 5, 5, 5) {
		t.Errorf("Intersect = %v", got)
	}
	if got := a.Intersect(RectFromLTWH(20, 20, 1, 1)); !got.IsEmpty() {
		t.Errorf("expected empty intersection, got %v", got)
	}
}

func TestRect_IsValidLayoutRect(t *testing.T) {
	tests := []struct {
		name string
		rect Rect
		want bool
	}{
		{"empty at origin", Rect{}, true},
		{"offset", RectFromLTWH(-5, -5, 10, 10), true},
		{"negative width", RectFromLTWH(0, 0, -1, 10), false},
		{"infinite", RectFromLTWH(0, 0, math.Inf(1), 10), false},
		{"nan left", Rect{Left: math.NaN(), Right: 10, Bottom: 10}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rect.IsValidLayoutRect(); got != tt.want {
				t.Errorf("IsValidLayoutRect(%v) = %v, want %v", tt.rect, got, tt.want)
			}
		})
	}
}

func TestThickness(t *testing.T) {
	th := SymmetricThickness(3, 4)
	if th.Horizontal() != 6 || th.Vertical() != 8 {
		t.Errorf("unexpected totals %v", th)
	}
	if got := th.Add(UniformThickness(1)); got != (Thickness{Left: 4, Top: 5, Right: 4, Bottom: 5}) {
		t.Errorf("Add = %v", got)
	}
	if !(Thickness{}).IsZero() || th.IsZero() {
		t.Error("IsZero mismatch")
	}
	if got := th.String(); got != "3,4,3,4" {
		t.Errorf("String = %q", got)
	}
}
