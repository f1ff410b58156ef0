package controls

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/arbor/pkg/errors"
	"github.com/go-drift/arbor/pkg/graphics"
	"github.com/go-drift/arbor/pkg/tree"
)

func TestBorderMeasureWithoutChild(t *testing.T) {
	b := NewBorder()
	b.SetPadding(graphics.UniformThickness(6))
	b.SetBorderThickness(4)

	require.NoError(t, b.Measure(size(100, 100)))
	desired, ok := b.DesiredSize()
	require.True(t, ok)
	assert.Equal(t, size(20, 20), desired)
}

func TestBorderArrangesChildInsideInset(t *testing.T) {
	b := NewBorder()
	b.SetPadding(graphics.UniformThickness(6))
	b.SetBorderThickness(4)
	child := newBox("child", 10, 10)
	require.NoError(t, b.SetChild(child))

	require.NoError(t, b.Measure(size(100, 100)))
	desired, _ := b.DesiredSize()
	assert.Equal(t, size(30, 30), desired)

	require.NoError(t, b.Arrange(rect(0, 0, 100, 100)))
	assert.Equal(t, rect(0, 0, 100, 100), b.Bounds())
	assert.Equal(t, rect(10, 10, 80, 80), child.Bounds())
}

func TestBorderThicknessInvalidatesMeasure(t *testing.T) {
	b := NewBorder()
	require.NoError(t, b.Measure(size(100, 100)))
	require.True(t, b.IsMeasureValid())

	b.SetBorderThickness(2)
	assert.False(t, b.IsMeasureValid())

	require.NoError(t, b.Measure(size(100, 100)))
	b.SetPadding(graphics.SymmetricThickness(1, 2))
	assert.False(t, b.IsMeasureValid())
}

func TestBorderChildParent(t *testing.T) {
	b := NewBorder()
	child := newBox("child", 1, 1)

	require.NoError(t, b.SetChild(child))
	assert.Same(t, b, child.Parent())
	assert.Same(t, child, b.Child())
	assert.Equal(t, []tree.Node{child}, b.Children())

	require.NoError(t, b.SetChild(nil))
	assert.Nil(t, child.Parent())
	assert.Nil(t, b.Child())
	assert.Empty(t, b.Children())
}

func TestBorderChildNotifications(t *testing.T) {
	b := NewBorder()
	first, second := newBox("first", 1, 1), newBox("second", 1, 1)
	var log changeLog
	b.OnChildrenChanged(log.record)

	require.NoError(t, b.SetChild(first))
	require.NoError(t, b.SetChild(first))
	require.NoError(t, b.SetChild(second))
	require.NoError(t, b.SetChild(nil))

	assert.Equal(t, []ChildrenChangedEvent{
		{Action: ChangeAdd, NewItems: elements(first)},
		{Action: ChangeReplace, NewItems: elements(second), OldItems: elements(first)},
		{Action: ChangeRemove, OldItems: elements(second)},
	}, log.events)
	assert.Nil(t, first.Parent())
}

func TestBorderRejectsParentedChild(t *testing.T) {
	child := newBox("child", 1, 1)
	require.NoError(t, NewBorder().SetChild(child))

	err := NewBorder().SetChild(child)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrAlreadyParented)
}

func TestBorderRejectsSelfAndAncestor(t *testing.T) {
	outer := NewBorder()
	inner := NewBorder()
	require.NoError(t, outer.SetChild(inner))

	assert.ErrorIs(t, inner.SetChild(inner), errors.ErrInvalidChild)
	assert.ErrorIs(t, inner.SetChild(outer), errors.ErrInvalidChild)
	assert.Nil(t, inner.Child())
	assert.Same(t, inner, outer.Child())
}

func TestDecoratorPadding(t *testing.T) {
	d := NewDecorator()
	d.SetPadding(graphics.Thickness{Left: 1, Top: 2, Right: 3, Bottom: 4})
	child := newBox("child", 10, 10)
	require.NoError(t, d.SetChild(child))

	require.NoError(t, d.Measure(size(100, 100)))
	desired, _ := d.DesiredSize()
	assert.Equal(t, size(14, 16), desired)

	require.NoError(t, d.Arrange(rect(0, 0, 50, 50)))
	assert.Equal(t, rect(1, 2, 46, 44), child.Bounds())
}
