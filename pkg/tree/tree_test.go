package tree

import (
	"slices"
	"testing"
)

type node struct {
	name     string
	parent   Node
	children []Node
}

func (n *node) Parent() Node { return n.parent }

func (n *node) Children() []Node { return n.children }

func (n *node) add(children ...*node) *node {
	for _, c := range children {
		c.parent = n
		n.children = append(n.children, c)
	}
	return n
}

// marked is a second node type for the type filters.
type marked struct {
	name     string
	parent   Node
	children []Node
}

func (m *marked) Parent() Node     { return m.parent }
func (m *marked) Children() []Node { return m.children }

func names(seq func(func(Node) bool)) []string {
	var out []string
	for n := range seq {
		switch v := n.(type) {
		case *node:
			out = append(out, v.name)
		case *marked:
			out = append(out, v.name)
		}
	}
	return out
}

// root > (a > (a1, a2), b)
func fixture() (root, a, a1, a2, b *node) {
	root, a, a1, a2, b = &node{name: "root"}, &node{name: "a"}, &node{name: "a1"}, &node{name: "a2"}, &node{name: "b"}
	a.add(a1, a2)
	root.add(a, b)
	return
}

func TestAncestorChains(t *testing.T) {
	root, _, _, a2, _ := fixture()

	if got := names(SelfAndAncestors(a2)); !slices.Equal(got, []string{"a2", "a", "root"}) {
		t.Errorf("SelfAndAncestors = %v", got)
	}
	if got := names(Ancestors(a2)); !slices.Equal(got, []string{"a", "root"}) {
		t.Errorf("Ancestors = %v", got)
	}
	if got := names(SelfAndAncestorsReversed(a2)); !slices.Equal(got, []string{"root", "a", "a2"}) {
		t.Errorf("SelfAndAncestorsReversed = %v", got)
	}
	if got := names(SelfAndAncestors(root)); !slices.Equal(got, []string{"root"}) {
		t.Errorf("root chain = %v", got)
	}
}

func TestDescendants_PreOrder(t *testing.T) {
	root, _, _, _, _ := fixture()
	if got := names(Descendants(root)); !slices.Equal(got, []string{"a", "a1", "a2", "b"}) {
		t.Errorf("Descendants = %v", got)
	}
}

func TestSequences_StopEarly(t *testing.T) {
	root, _, _, a2, _ := fixture()
	count := 0
	for range Descendants(root) {
		count++
		if count == 2 {
			break
		}
	}
	if count != 2 {
		t.Errorf("expected to stop after 2, got %d", count)
	}
	for n := range SelfAndAncestorsReversed(a2) {
		if n != Node(root) {
			t.Errorf("expected root first, got %v", n)
		}
		break
	}
}

func TestSequences_ReflectReparenting(t *testing.T) {
	root, a, _, a2, b := fixture()
	seq := Ancestors(a2)

	a.children = slices.DeleteFunc(a.children, func(n Node) bool { return n == Node(a2) })
	b.add(a2)

	if got := names(seq); !slices.Equal(got, []string{"b", "root"}) {
		t.Errorf("expected the new chain, got %v", got)
	}
	if Depth(a2) != 2 || Root(a2) != Node(root) {
		t.Errorf("unexpected depth %d or root", Depth(a2))
	}
}

func TestDepthRootIsAncestorOf(t *testing.T) {
	root, a, a1, _, b := fixture()
	if Depth(root) != 0 || Depth(a1) != 2 {
		t.Errorf("unexpected depths %d, %d", Depth(root), Depth(a1))
	}
	if Root(a1) != Node(root) {
		t.Error("expected root of a1 to be root")
	}
	if !IsAncestorOf(a, a1) || IsAncestorOf(b, a1) || IsAncestorOf(a1, a1) || IsAncestorOf(nil, a1) {
		t.Error("IsAncestorOf mismatch")
	}
}

func TestNilSafety(t *testing.T) {
	if Parent(nil) != nil || Children(nil) != nil || Root(nil) != nil {
		t.Error("expected nil results for nil node")
	}
	if got := names(Descendants(nil)); len(got) != 0 {
		t.Errorf("expected no descendants, got %v", got)
	}
	if got := names(Ancestors(nil)); len(got) != 0 {
		t.Errorf("expected no ancestors, got %v", got)
	}
}

func TestOfTypeAndFindAncestor(t *testing.T) {
	root := &node{name: "root"}
	m := &marked{name: "m", parent: root}
	root.children = []Node{m}
	leaf := &node{name: "leaf", parent: m}
	m.children = []Node{leaf}

	got, distance, ok := FindAncestor[*marked](leaf)
	if !ok || got != m || distance != 1 {
		t.Errorf("FindAncestor = %v, %d, %v", got, distance, ok)
	}
	if _, _, ok := FindAncestor[*marked](m); ok {
		t.Error("FindAncestor must not match the node itself")
	}
	if _, distance, ok := FindAncestor[*node](leaf); !ok || distance != 2 {
		t.Errorf("expected root two levels up, got %d, %v", distance, ok)
	}

	var found []*marked
	for n := range OfType[*marked](Descendants(root)) {
		found = append(found, n)
	}
	if len(found) != 1 || found[0] != m {
		t.Errorf("OfType = %v", found)
	}
}
