// Package visual provides the base every element of the visual tree embeds.
//
// Visual owns the element's place in the tree (parent back-reference and the
// ordered child list), its visibility, the bounds assigned by the last arrange
// pass, and the property store the layout and input layers keep their
// attributes in. Concrete element types embed Visual (usually indirectly via
// layout.Layoutable) and register themselves with SetSelf so base-type code
// can reach the most derived implementation.
package visual

import (
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/go-drift/arbor/pkg/errors"
	"github.com/go-drift/arbor/pkg/graphics"
	"github.com/go-drift/arbor/pkg/property"
	"github.com/go-drift/arbor/pkg/tree"
)

// VisualType is the root of the element type hierarchy.
var VisualType = NewType("Visual", nil)

// IsVisibleProperty controls whether the element participates in layout.
var IsVisibleProperty = property.Register("Visual", "IsVisible", true)

// ParentChangedHandler is implemented by elements that react to being
// attached to or detached from a parent.
type ParentChangedHandler interface {
	OnVisualParentChanged(oldParent, newParent tree.Node)
}

// parentSetter is satisfied by every type embedding Visual.
type parentSetter interface {
	setVisualParent(parent tree.Node)
	Parent() tree.Node
}

// Visual is the base of every element in the tree.
type Visual struct {
	id       uuid.UUID
	name     string
	self     tree.Node
	parent   tree.Node
	children []tree.Node
	bounds   graphics.Rect
	props    property.Store
}

// SetSelf registers the concrete element embedding this Visual.
func (v *Visual) SetSelf(self tree.Node) {
	v.self = self
	if v.id == uuid.Nil {
		v.id = uuid.New()
	}
}

// Self returns the concrete element registered via SetSelf, or the Visual
// itself when none was registered.
func (v *Visual) Self() tree.Node {
	if v.self == nil {
		return v
	}
	return v.self
}

// ID returns the element's unique identity.
func (v *Visual) ID() uuid.UUID {
	if v.id == uuid.Nil {
		v.id = uuid.New()
	}
	return v.id
}

// Name returns the optional element name.
func (v *Visual) Name() string {
	return v.name
}

// SetName assigns a name used for lookups and diagnostics.
func (v *Visual) SetName(name string) {
	v.name = name
}

// ElementType reports the element type. Embedding types override it.
func (v *Visual) ElementType() *Type {
	return VisualType
}

// Parent returns the visual parent, or nil.
func (v *Visual) Parent() tree.Node {
	return v.parent
}

// Children returns the visual children in insertion order.
func (v *Visual) Children() []tree.Node {
	return v.children
}

// Properties returns the element's property store.
func (v *Visual) Properties() *property.Store {
	return &v.props
}

// IsVisible reports whether the element participates in layout.
func (v *Visual) IsVisible() bool {
	return property.Get(&v.props, IsVisibleProperty)
}

// SetIsVisible shows or hides the element.
func (v *Visual) SetIsVisible(visible bool) {
	property.Set(&v.props, v.Self(), IsVisibleProperty, visible)
}

// Bounds returns the rectangle assigned by the last arrange pass, relative
// to the parent.
func (v *Visual) Bounds() graphics.Rect {
	return v.bounds
}

// SetBounds records the arranged rectangle. It is called by the layout engine.
func (v *Visual) SetBounds(bounds graphics.Rect) {
	v.bounds = bounds
}

// AddVisualChild appends child to the visual children.
func (v *Visual) AddVisualChild(child tree.Node) error {
	return v.InsertVisualChild(len(v.children), child)
}

// InsertVisualChild inserts child at index and sets its parent.
func (v *Visual) InsertVisualChild(index int, child tree.Node) error {
	setter, ok := child.(parentSetter)
	if !ok {
		return &errors.Error{
			Op:   "visual.InsertVisualChild",
			Kind: errors.KindTree,
			Err:  fmt.Errorf("%w: %T does not embed Visual", errors.ErrInvalidChild, child),
		}
	}
	if err := CheckCycle("visual.InsertVisualChild", v.Self(), child); err != nil {
		return err
	}
	if setter.Parent() != nil {
		return &errors.Error{
			Op:   "visual.InsertVisualChild",
			Kind: errors.KindTree,
			Err:  fmt.Errorf("%w: %s", errors.ErrAlreadyParented, describe(child)),
		}
	}
	if index < 0 || index > len(v.children) {
		return &errors.Error{
			Op:   "visual.InsertVisualChild",
			Kind: errors.KindTree,
			Err:  fmt.Errorf("%w: index %d out of range [0,%d]", errors.ErrInvalidChild, index, len(v.children)),
		}
	}
	v.children = slices.Insert(v.children, index, child)
	setter.setVisualParent(v.Self())
	return nil
}

// CheckCycle returns an error when attaching child under parent would make
// child its own ancestor.
func CheckCycle(op string, parent, child tree.Node) error {
	if parent == nil || child == nil {
		return nil
	}
	if child != parent && !tree.IsAncestorOf(child, parent) {
		return nil
	}
	return &errors.Error{
		Op:      op,
		Kind:    errors.KindTree,
		Element: describe(child),
		Err:     fmt.Errorf("%w: %s cannot contain itself or an ancestor", errors.ErrInvalidChild, describe(parent)),
	}
}

// RemoveVisualChild detaches child. It reports whether child was present.
func (v *Visual) RemoveVisualChild(child tree.Node) bool {
	i := slices.Index(v.children, child)
	if i < 0 {
		return false
	}
	v.children = slices.Delete(v.children, i, i+1)
	if setter, ok := child.(parentSetter); ok {
		setter.setVisualParent(nil)
	}
	return true
}

// ClearVisualChildren detaches every child.
func (v *Visual) ClearVisualChildren() {
	children := v.children
	v.children = nil
	for _, child := range children {
		if setter, ok := child.(parentSetter); ok {
			setter.setVisualParent(nil)
		}
	}
}

func (v *Visual) setVisualParent(parent tree.Node) {
	old := v.parent
	v.parent = parent
	if handler, ok := v.Self().(ParentChangedHandler); ok {
		handler.OnVisualParentChanged(old, parent)
	}
}

// Describe returns a short "Type#id" label for diagnostics.
func Describe(n tree.Node) string {
	return describe(n)
}

func describe(n tree.Node) string {
	if n == nil {
		return "<nil>"
	}
	label := fmt.Sprintf("%T", n)
	if t := TypeOf(n); t != nil {
		label = t.Name()
	}
	type named interface {
		Name() string
		ID() uuid.UUID
	}
	if nm, ok := n.(named); ok {
		if name := nm.Name(); name != "" {
			return label + "(" + name + ")"
		}
		return label + "#" + nm.ID().String()[:8]
	}
	return label
}
