package layout

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-drift/arbor/pkg/graphics"
)

// testElement records override calls and reports a fixed content size.
type testElement struct {
	Layoutable
	content graphics.Size

	measureInputs  []graphics.Size
	arrangeInputs  []graphics.Size
	templateCalls  int
	onMeasure      func(available graphics.Size)
	measureErr     error
	overrideResult *graphics.Size
	arrangeResult  *graphics.Size
}

func newTestElement(name string) *testElement {
	e := &testElement{}
	e.SetSelf(e)
	e.SetName(name)
	return e
}

func (e *testElement) ApplyTemplate() {
	e.templateCalls++
}

func (e *testElement) MeasureOverride(available graphics.Size) (graphics.Size, error) {
	e.measureInputs = append(e.measureInputs, available)
	if e.onMeasure != nil {
		e.onMeasure(available)
	}
	if e.measureErr != nil {
		return graphics.Size{}, e.measureErr
	}
	if e.overrideResult != nil {
		return *e.overrideResult, nil
	}
	size, err := e.Layoutable.MeasureOverride(available)
	if err != nil {
		return size, err
	}
	size.Width = max(size.Width, e.content.Width)
	size.Height = max(size.Height, e.content.Height)
	return size, nil
}

func (e *testElement) ArrangeOverride(final graphics.Size) (graphics.Size, error) {
	e.arrangeInputs = append(e.arrangeInputs, final)
	if e.arrangeResult != nil {
		return *e.arrangeResult, nil
	}
	return e.Layoutable.ArrangeOverride(final)
}

func (e *testElement) add(t *testing.T, children ...Element) *testElement {
	t.Helper()
	for _, c := range children {
		require.NoError(t, e.AddVisualChild(c))
	}
	return e
}

// testRoot is a layout root with a configurable manager.
type testRoot struct {
	testElement
	manager    Manager
	clientSize graphics.Size
}

func newTestRoot(size graphics.Size) *testRoot {
	r := &testRoot{clientSize: size}
	r.SetSelf(r)
	r.SetName("root")
	return r
}

func (r *testRoot) LayoutManager() Manager    { return r.manager }
func (r *testRoot) ClientSize() graphics.Size { return r.clientSize }

type invalidation struct {
	kind     string
	element  Element
	distance int
}

// recordingManager records every invalidation it receives.
type recordingManager struct {
	calls []invalidation
}

func (m *recordingManager) InvalidateMeasure(e Element, distance int) {
	m.calls = append(m.calls, invalidation{"measure", e, distance})
}

func (m *recordingManager) InvalidateArrange(e Element, distance int) {
	m.calls = append(m.calls, invalidation{"arrange", e, distance})
}

func (m *recordingManager) reset() { m.calls = nil }

func size(w, h float64) graphics.Size { return graphics.Size{Width: w, Height: h} }

func desired(t *testing.T, e Element) graphics.Size {
	t.Helper()
	s, ok := e.DesiredSize()
	require.True(t, ok, "desired size not set")
	return s
}
