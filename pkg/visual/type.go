package visual

import "slices"

// Type identifies an element type for class-level registries.
//
// Types form a single-inheritance chain declared explicitly at registration,
// so registries keyed by Type can be walked from the most basic type to the
// most derived without reflection.
type Type struct {
	name string
	base *Type
}

// NewType registers a type deriving from base. A nil base starts a new chain.
func NewType(name string, base *Type) *Type {
	return &Type{name: name, base: base}
}

// Name returns the type name.
func (t *Type) Name() string {
	if t == nil {
		return "<nil>"
	}
	return t.name
}

// Base returns the declared base type, or nil.
func (t *Type) Base() *Type {
	return t.base
}

// IsSubtypeOf reports whether t is other or derives from it.
func (t *Type) IsSubtypeOf(other *Type) bool {
	for current := t; current != nil; current = current.base {
		if current == other {
			return true
		}
	}
	return false
}

// Chain returns the type hierarchy from the least derived type to t.
func (t *Type) Chain() []*Type {
	var chain []*Type
	for current := t; current != nil; current = current.base {
		chain = append(chain, current)
	}
	slices.Reverse(chain)
	return chain
}

func (t *Type) String() string {
	return t.Name()
}

// Typed is implemented by elements that report their concrete Type.
type Typed interface {
	ElementType() *Type
}

// TypeOf returns the Type an element reports, or nil.
func TypeOf(element any) *Type {
	if typed, ok := element.(Typed); ok {
		return typed.ElementType()
	}
	return nil
}
