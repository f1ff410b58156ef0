package controls

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/arbor/pkg/input"
)

type templated struct {
	Control
	builds  int
	content input.Element
	err     error
}

func newTemplated(content input.Element, err error) *templated {
	c := &templated{content: content, err: err}
	c.SetSelf(c)
	return c
}

func (c *templated) BuildTemplate() (input.Element, error) {
	c.builds++
	return c.content, c.err
}

func TestApplyTemplateOnFirstMeasure(t *testing.T) {
	content := newBox("content", 30, 20)
	c := newTemplated(content, nil)
	assert.False(t, c.IsTemplateApplied())

	require.NoError(t, c.Measure(size(100, 100)))
	desired, ok := c.DesiredSize()
	require.True(t, ok)
	assert.Equal(t, size(30, 20), desired)
	assert.True(t, c.IsTemplateApplied())
	assert.Same(t, c, content.Parent())

	c.InvalidateMeasure()
	require.NoError(t, c.Measure(size(100, 100)))
	c.ApplyTemplate()
	assert.Equal(t, 1, c.builds)
	assert.Len(t, c.Children(), 1)
}

func TestApplyTemplateSkippedWhileInvisible(t *testing.T) {
	c := newTemplated(newBox("content", 30, 20), nil)
	c.SetIsVisible(false)

	require.NoError(t, c.Measure(size(100, 100)))
	assert.False(t, c.IsTemplateApplied())
	assert.Zero(t, c.builds)
}

func TestApplyTemplateReportsFailure(t *testing.T) {
	rec := recordErrors(t)
	boom := stderrors.New("boom")
	c := newTemplated(nil, boom)

	require.NoError(t, c.Measure(size(100, 100)))
	assert.True(t, c.IsTemplateApplied())
	assert.Empty(t, c.Children())
	require.Len(t, rec.errs, 1)
	assert.ErrorIs(t, rec.errs[0], boom)
	assert.Equal(t, "controls.ApplyTemplate", rec.errs[0].Op)
}

func TestControlWithoutTemplate(t *testing.T) {
	c := NewControl()
	c.ApplyTemplate()
	assert.True(t, c.IsTemplateApplied())
	assert.Empty(t, c.Children())
	assert.Equal(t, ControlType, c.ElementType())
}
