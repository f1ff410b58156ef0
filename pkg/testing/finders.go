package testing

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-drift/arbor/pkg/graphics"
	"github.com/go-drift/arbor/pkg/input"
	"github.com/go-drift/arbor/pkg/tree"
	"github.com/go-drift/arbor/pkg/visual"
)

// Finder locates elements in the tree.
type Finder interface {
	// Evaluate returns all matching elements under root (depth-first pre-order).
	Evaluate(root tree.Node) []tree.Node
	// Description returns a human-readable description for error messages.
	Description() string
}

// FinderResult wraps finder results with convenient accessors.
type FinderResult struct {
	elements []tree.Node
	finder   Finder
}

// First returns the first match. Panics if no matches.
func (r FinderResult) First() tree.Node {
	if len(r.elements) == 0 {
		desc := "unknown"
		if r.finder != nil {
			desc = r.finder.Description()
		}
		panic(fmt.Sprintf("Finder found no elements: %s", desc))
	}
	return r.elements[0]
}

// FirstOrNil returns the first match, or nil if none.
func (r FinderResult) FirstOrNil() tree.Node {
	if len(r.elements) == 0 {
		return nil
	}
	return r.elements[0]
}

// At returns the match at index. Panics if out of range.
func (r FinderResult) At(index int) tree.Node {
	if index < 0 || index >= len(r.elements) {
		desc := "unknown"
		if r.finder != nil {
			desc = r.finder.Description()
		}
		panic(fmt.Sprintf("Finder index %d out of range (found %d): %s", index, len(r.elements), desc))
	}
	return r.elements[index]
}

// All returns all matches in traversal order.
func (r FinderResult) All() []tree.Node {
	return r.elements
}

// Count returns the number of matches.
func (r FinderResult) Count() int {
	return len(r.elements)
}

// Exists returns true if at least one match was found.
func (r FinderResult) Exists() bool {
	return len(r.elements) > 0
}

// Bounds returns the bounds of the first match in root coordinates.
// Panics if no matches.
func (r FinderResult) Bounds() graphics.Rect {
	return input.AbsoluteBounds(r.First())
}

// --- Concrete finders ---

// typeFinder matches elements of the specified Go type.
type typeFinder struct {
	elementType reflect.Type
	typeName    string
}

func (f *typeFinder) Evaluate(root tree.Node) []tree.Node {
	return collectMatches(root, func(n tree.Node) bool {
		return reflect.TypeOf(n) == f.elementType
	})
}

func (f *typeFinder) Description() string {
	return fmt.Sprintf("ByType(%s)", f.typeName)
}

// ByType returns a finder that matches elements whose Go type is T.
func ByType[T tree.Node]() Finder {
	t := reflect.TypeFor[T]()
	return &typeFinder{elementType: t, typeName: t.String()}
}

// elementTypeFinder matches elements by their registered element type.
type elementTypeFinder struct {
	t *visual.Type
}

func (f *elementTypeFinder) Evaluate(root tree.Node) []tree.Node {
	return collectMatches(root, func(n tree.Node) bool {
		return visual.TypeOf(n).IsSubtypeOf(f.t)
	})
}

func (f *elementTypeFinder) Description() string {
	return fmt.Sprintf("ByElementType(%s)", f.t.Name())
}

// ByElementType returns a finder that matches elements whose element type
// is t or derives from it.
func ByElementType(t *visual.Type) Finder {
	return &elementTypeFinder{t: t}
}

// nameFinder matches elements by name.
type nameFinder struct {
	name string
}

func (f *nameFinder) Evaluate(root tree.Node) []tree.Node {
	return collectMatches(root, func(n tree.Node) bool {
		named, ok := n.(interface{ Name() string })
		return ok && named.Name() == f.name
	})
}

func (f *nameFinder) Description() string {
	return fmt.Sprintf("ByName(%q)", f.name)
}

// ByName returns a finder that matches elements with the given name.
func ByName(name string) Finder {
	return &nameFinder{name: name}
}

type texter interface {
	Text() string
}

// textFinder matches text elements by exact content.
type textFinder struct {
	text string
}

func (f *textFinder) Evaluate(root tree.Node) []tree.Node {
	return collectMatches(root, func(n tree.Node) bool {
		t, ok := n.(texter)
		return ok && t.Text() == f.text
	})
}

func (f *textFinder) Description() string {
	return fmt.Sprintf("ByText(%q)", f.text)
}

// ByText returns a finder that matches elements with a Text method, such
// as [controls.TextBlock], showing exactly text.
func ByText(text string) Finder {
	return &textFinder{text: text}
}

// textContainingFinder matches text elements containing substring.
type textContainingFinder struct {
	substring string
}

func (f *textContainingFinder) Evaluate(root tree.Node) []tree.Node {
	return collectMatches(root, func(n tree.Node) bool {
		t, ok := n.(texter)
		return ok && strings.Contains(t.Text(), f.substring)
	})
}

func (f *textContainingFinder) Description() string {
	return fmt.Sprintf("ByTextContaining(%q)", f.substring)
}

// ByTextContaining returns a finder that matches elements with a Text
// method whose text contains substring.
func ByTextContaining(substring string) Finder {
	return &textContainingFinder{substring: substring}
}

// predicateFinder matches elements satisfying a predicate.
type predicateFinder struct {
	fn   func(tree.Node) bool
	desc string
}

func (f *predicateFinder) Evaluate(root tree.Node) []tree.Node {
	return collectMatches(root, f.fn)
}

func (f *predicateFinder) Description() string {
	return f.desc
}

// ByPredicate returns a finder that matches elements satisfying fn.
func ByPredicate(fn func(tree.Node) bool) Finder {
	return &predicateFinder{fn: fn, desc: "ByPredicate(...)"}
}

// descendantFinder finds elements matching 'matching' that are descendants
// of elements matching 'of'.
type descendantFinder struct {
	of       Finder
	matching Finder
}

func (f *descendantFinder) Evaluate(root tree.Node) []tree.Node {
	var results []tree.Node
	seen := make(map[tree.Node]bool)
	for _, ancestor := range f.of.Evaluate(root) {
		// Search within each ancestor's subtree (skip the ancestor itself)
		for _, child := range ancestor.Children() {
			for _, match := range f.matching.Evaluate(child) {
				if !seen[match] {
					seen[match] = true
					results = append(results, match)
				}
			}
		}
	}
	return results
}

func (f *descendantFinder) Description() string {
	return fmt.Sprintf("Descendant(of: %s, matching: %s)", f.of.Description(), f.matching.Description())
}

// Descendant returns a finder that matches elements satisfying 'matching'
// that are descendants of elements matching 'of'.
func Descendant(of, matching Finder) Finder {
	return &descendantFinder{of: of, matching: matching}
}

// ancestorFinder finds elements matching 'matching' that are ancestors
// of elements matching 'of'.
type ancestorFinder struct {
	of       Finder
	matching Finder
}

func (f *ancestorFinder) Evaluate(root tree.Node) []tree.Node {
	descendants := f.of.Evaluate(root)
	if len(descendants) == 0 {
		return nil
	}
	var results []tree.Node
	for _, candidate := range f.matching.Evaluate(root) {
		for _, desc := range descendants {
			if tree.IsAncestorOf(candidate, desc) {
				results = append(results, candidate)
				break
			}
		}
	}
	return results
}

func (f *ancestorFinder) Description() string {
	return fmt.Sprintf("Ancestor(of: %s, matching: %s)", f.of.Description(), f.matching.Description())
}

// Ancestor returns a finder that matches elements satisfying 'matching'
// that are ancestors of elements matching 'of'.
func Ancestor(of, matching Finder) Finder {
	return &ancestorFinder{of: of, matching: matching}
}

// collectMatches performs depth-first pre-order traversal, collecting
// elements that satisfy the predicate.
func collectMatches(root tree.Node, predicate func(tree.Node) bool) []tree.Node {
	if root == nil {
		return nil
	}
	var results []tree.Node
	if predicate(root) {
		results = append(results, root)
	}
	for n := range tree.Descendants(root) {
		if predicate(n) {
			results = append(results, n)
		}
	}
	return results
}
