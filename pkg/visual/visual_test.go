package visual

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/arbor/pkg/errors"
	"github.com/go-drift/arbor/pkg/tree"
)

var (
	boxType   = NewType("Box", VisualType)
	labelType = NewType("Label", boxType)
)

type box struct {
	Visual
	parentChanges [][2]tree.Node
}

func newBox(name string) *box {
	b := &box{}
	b.SetSelf(b)
	b.SetName(name)
	return b
}

func (b *box) ElementType() *Type { return boxType }

func (b *box) OnVisualParentChanged(oldParent, newParent tree.Node) {
	b.parentChanges = append(b.parentChanges, [2]tree.Node{oldParent, newParent})
}

type plainNode struct{}

func (plainNode) Parent() tree.Node     { return nil }
func (plainNode) Children() []tree.Node { return nil }

func TestInsertVisualChild(t *testing.T) {
	parent, a, b := newBox("p"), newBox("a"), newBox("b")

	require.NoError(t, parent.AddVisualChild(a))
	require.NoError(t, parent.InsertVisualChild(0, b))

	assert.Equal(t, []tree.Node{b, a}, parent.Children())
	assert.Same(t, parent, a.Parent())
	assert.Equal(t, [][2]tree.Node{{nil, parent}}, a.parentChanges)
}

func TestInsertVisualChild_Rejects(t *testing.T) {
	parent, other, child := newBox("p"), newBox("o"), newBox("c")
	require.NoError(t, other.AddVisualChild(child))

	err := parent.AddVisualChild(child)
	assert.ErrorIs(t, err, errors.ErrAlreadyParented)
	assert.Equal(t, errors.KindTree, errors.KindOf(err))

	err = parent.InsertVisualChild(3, newBox("x"))
	assert.ErrorIs(t, err, errors.ErrInvalidChild)

	err = parent.AddVisualChild(plainNode{})
	assert.ErrorIs(t, err, errors.ErrInvalidChild)
	assert.Empty(t, parent.Children())
}

func TestInsertVisualChild_RejectsCycles(t *testing.T) {
	root, mid, leaf := newBox("root"), newBox("mid"), newBox("leaf")
	require.NoError(t, root.AddVisualChild(mid))
	require.NoError(t, mid.AddVisualChild(leaf))

	for _, tt := range []struct {
		name          string
		parent, child *box
	}{
		{"self", root, root},
		{"parent", leaf, mid},
		{"root", leaf, root},
	} {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.parent.AddVisualChild(tt.child)
			assert.ErrorIs(t, err, errors.ErrInvalidChild)
			assert.Equal(t, errors.KindTree, errors.KindOf(err))
		})
	}

	assert.Nil(t, root.Parent())
	assert.Equal(t, 2, tree.Depth(leaf))
	assert.Empty(t, leaf.Children())
}

func TestRemoveAndClear(t *testing.T) {
	parent, a, b := newBox("p"), newBox("a"), newBox("b")
	require.NoError(t, parent.AddVisualChild(a))
	require.NoError(t, parent.AddVisualChild(b))

	assert.True(t, parent.RemoveVisualChild(a))
	assert.False(t, parent.RemoveVisualChild(a))
	assert.Nil(t, a.Parent())
	assert.Equal(t, [][2]tree.Node{{nil, parent}, {parent, nil}}, a.parentChanges)

	parent.ClearVisualChildren()
	assert.Empty(t, parent.Children())
	assert.Nil(t, b.Parent())
}

func TestIsVisible(t *testing.T) {
	b := newBox("b")
	assert.True(t, b.IsVisible())
	b.SetIsVisible(false)
	assert.False(t, b.IsVisible())
}

func TestIdentityAndDescribe(t *testing.T) {
	named, unnamed := newBox("frame"), newBox("")

	assert.NotEqual(t, named.ID(), unnamed.ID())
	assert.Equal(t, "Box(frame)", Describe(named))
	assert.Equal(t, "Box#"+unnamed.ID().String()[:8], Describe(unnamed))
	assert.Equal(t, "<nil>", Describe(nil))
	assert.Equal(t, "visual.plainNode", Describe(plainNode{}))
}

func TestSelfDefaultsToVisual(t *testing.T) {
	var v Visual
	assert.Same(t, &v, v.Self())
	assert.Same(t, VisualType, v.ElementType())
}

func TestType(t *testing.T) {
	assert.True(t, labelType.IsSubtypeOf(boxType))
	assert.True(t, labelType.IsSubtypeOf(VisualType))
	assert.True(t, boxType.IsSubtypeOf(boxType))
	assert.False(t, boxType.IsSubtypeOf(labelType))

	assert.Equal(t, []*Type{VisualType, boxType, labelType}, labelType.Chain())
	assert.Same(t, boxType, labelType.Base())
	assert.Equal(t, "Label", labelType.String())

	var none *Type
	assert.Equal(t, "<nil>", none.Name())
	assert.Same(t, boxType, TypeOf(newBox("x")))
	assert.Nil(t, TypeOf(plainNode{}))
}
