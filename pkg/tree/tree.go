// Package tree provides read-only traversal over the visual tree.
//
// Every element in the tree exposes its parent and its ordered children
// through the Node interface. The helpers in this package never cache: each
// sequence walks the tree when it is iterated, so a sequence created before a
// reparent reflects the new shape when ranged over afterwards.
package tree

import (
	"iter"
	"slices"
)

// Node is the topology capability every element exposes.
type Node interface {
	// Parent returns the direct parent, or nil for a root or detached node.
	Parent() Node
	// Children returns the children in stable insertion order.
	// Callers must not mutate the returned slice.
	Children() []Node
}

// Parent returns the direct parent of n, or nil.
func Parent(n Node) Node {
	if n == nil {
		return nil
	}
	return n.Parent()
}

// Children returns the children of n in insertion order.
func Children(n Node) []Node {
	if n == nil {
		return nil
	}
	return n.Children()
}

// SelfAndAncestors yields n, then its parent, and so on up to the first node
// without a parent.
func SelfAndAncestors(n Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		for current := n; current != nil; current = current.Parent() {
			if !yield(current) {
				return
			}
		}
	}
}

// Ancestors yields the parent chain of n, excluding n itself.
func Ancestors(n Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		if n == nil {
			return
		}
		for current := n.Parent(); current != nil; current = current.Parent() {
			if !yield(current) {
				return
			}
		}
	}
}

// SelfAndAncestorsReversed yields the same chain as SelfAndAncestors in
// root-to-n order. The chain is captured when iteration starts.
func SelfAndAncestorsReversed(n Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		chain := slices.Collect(SelfAndAncestors(n))
		for i := len(chain) - 1; i >= 0; i-- {
			if !yield(chain[i]) {
				return
			}
		}
	}
}

// Descendants yields every node below n in depth-first pre-order.
func Descendants(n Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		walkDescendants(n, yield)
	}
}

func walkDescendants(n Node, yield func(Node) bool) bool {
	if n == nil {
		return true
	}
	for _, child := range n.Children() {
		if !yield(child) {
			return false
		}
		if !walkDescendants(child, yield) {
			return false
		}
	}
	return true
}

// Depth returns the number of ancestors above n (root = 0).
func Depth(n Node) int {
	depth := 0
	for range Ancestors(n) {
		depth++
	}
	return depth
}

// Root returns the topmost ancestor of n, or n itself when it has no parent.
func Root(n Node) Node {
	var root Node
	for node := range SelfAndAncestors(n) {
		root = node
	}
	return root
}

// IsAncestorOf reports whether ancestor appears in the parent chain of n.
func IsAncestorOf(ancestor, n Node) bool {
	if ancestor == nil {
		return false
	}
	for node := range Ancestors(n) {
		if node == ancestor {
			return true
		}
	}
	return false
}

// OfType filters a node sequence down to the nodes implementing T.
func OfType[T any](seq iter.Seq[Node]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for node := range seq {
			if typed, ok := node.(T); ok {
				if !yield(typed) {
					return
				}
			}
		}
	}
}

// FindAncestor returns the nearest strict ancestor of n implementing T and its
// distance from n (parent = 1).
func FindAncestor[T any](n Node) (T, int, bool) {
	distance := 0
	for node := range Ancestors(n) {
		distance++
		if typed, ok := node.(T); ok {
			return typed, distance, true
		}
	}
	var zero T
	return zero, 0, false
}
