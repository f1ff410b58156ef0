package controls

import (
	"fmt"
	"iter"
	"slices"

	"github.com/go-drift/arbor/pkg/errors"
	"github.com/go-drift/arbor/pkg/input"
	"github.com/go-drift/arbor/pkg/tree"
	"github.com/go-drift/arbor/pkg/visual"
)

// ChangeAction identifies the kind of change to a child list.
type ChangeAction int

const (
	// ChangeAdd reports items inserted at Index.
	ChangeAdd ChangeAction = iota
	// ChangeRemove reports items removed from Index.
	ChangeRemove
	// ChangeReplace reports the item at Index replaced by another.
	ChangeReplace
)

func (a ChangeAction) String() string {
	switch a {
	case ChangeAdd:
		return "add"
	case ChangeRemove:
		return "remove"
	case ChangeReplace:
		return "replace"
	default:
		return fmt.Sprintf("ChangeAction(%d)", int(a))
	}
}

// ChildrenChangedEvent describes one change to a list of children.
type ChildrenChangedEvent struct {
	Action   ChangeAction
	Index    int
	NewItems []input.Element
	OldItems []input.Element
}

type changeHandler struct {
	fn func(ChildrenChangedEvent)
}

// changeNotifier fans change events out to subscribers in subscription order.
type changeNotifier struct {
	handlers []*changeHandler
}

func (n *changeNotifier) subscribe(fn func(ChildrenChangedEvent)) func() {
	h := &changeHandler{fn: fn}
	n.handlers = append(n.handlers, h)
	return func() {
		n.handlers = slices.DeleteFunc(n.handlers, func(other *changeHandler) bool {
			return other == h
		})
	}
}

func (n *changeNotifier) notify(e ChildrenChangedEvent) {
	for _, h := range slices.Clone(n.handlers) {
		h.fn(e)
	}
}

// Controls is an ordered collection of child elements that reports every
// change to its subscribers. A Panel owns one and mirrors it into its visual
// children.
type Controls struct {
	items   []input.Element
	changed changeNotifier
	// owner is the panel mirroring the collection, if any.
	owner tree.Node
}

// NewControls returns a collection holding items. Items that Add would
// reject are skipped.
func NewControls(items ...input.Element) *Controls {
	c := &Controls{}
	for _, item := range items {
		if c.check(item) == nil {
			c.items = append(c.items, item)
		}
	}
	return c
}

// Len returns the number of items.
func (c *Controls) Len() int {
	return len(c.items)
}

// At returns the item at index.
func (c *Controls) At(index int) input.Element {
	return c.items[index]
}

// All yields the items with their indexes.
func (c *Controls) All() iter.Seq2[int, input.Element] {
	return slices.All(c.items)
}

// Items returns a copy of the items.
func (c *Controls) Items() []input.Element {
	return slices.Clone(c.items)
}

// IndexOf returns the index of item, or -1.
func (c *Controls) IndexOf(item input.Element) int {
	return slices.Index(c.items, item)
}

// Add appends items and reports them in a single ChangeAdd event.
func (c *Controls) Add(items ...input.Element) error {
	return c.insert(len(c.items), items)
}

// Insert inserts item at index.
func (c *Controls) Insert(index int, item input.Element) error {
	return c.insert(index, []input.Element{item})
}

func (c *Controls) insert(index int, items []input.Element) error {
	if index < 0 || index > len(c.items) {
		return c.rangeError("controls.Insert", index)
	}
	for i, item := range items {
		if err := c.check(item); err != nil {
			return err
		}
		if slices.Contains(items[:i], item) {
			return duplicateError(item)
		}
	}
	if len(items) == 0 {
		return nil
	}
	c.items = slices.Insert(c.items, index, items...)
	c.changed.notify(ChildrenChangedEvent{
		Action:   ChangeAdd,
		Index:    index,
		NewItems: slices.Clone(items),
	})
	return nil
}

// Set replaces the item at index and reports a ChangeReplace event.
func (c *Controls) Set(index int, item input.Element) error {
	if index < 0 || index >= len(c.items) {
		return c.rangeError("controls.Set", index)
	}
	old := c.items[index]
	if old == item {
		return nil
	}
	if err := c.check(item); err != nil {
		return err
	}
	c.items[index] = item
	c.changed.notify(ChildrenChangedEvent{
		Action:   ChangeReplace,
		Index:    index,
		NewItems: []input.Element{item},
		OldItems: []input.Element{old},
	})
	return nil
}

// Remove removes item. It reports whether item was present.
func (c *Controls) Remove(item input.Element) bool {
	i := c.IndexOf(item)
	if i < 0 {
		return false
	}
	c.removeAt(i)
	return true
}

// RemoveAt removes the item at index.
func (c *Controls) RemoveAt(index int) error {
	if index < 0 || index >= len(c.items) {
		return c.rangeError("controls.RemoveAt", index)
	}
	c.removeAt(index)
	return nil
}

func (c *Controls) removeAt(index int) {
	old := c.items[index]
	c.items = slices.Delete(c.items, index, index+1)
	c.changed.notify(ChildrenChangedEvent{
		Action:   ChangeRemove,
		Index:    index,
		OldItems: []input.Element{old},
	})
}

// Clear removes every item, last first, with one ChangeRemove event per
// item.
func (c *Controls) Clear() {
	for i := len(c.items) - 1; i >= 0; i-- {
		c.removeAt(i)
	}
}

// OnChanged registers fn to be called after every change. The returned
// function removes the subscription.
func (c *Controls) OnChanged(fn func(ChildrenChangedEvent)) (unsubscribe func()) {
	return c.changed.subscribe(fn)
}

// check rejects nil items, items already in c, the owning panel or its
// ancestors, and items attached elsewhere in the tree.
func (c *Controls) check(item input.Element) error {
	if item == nil {
		return &errors.Error{
			Op:   "controls.Add",
			Kind: errors.KindTree,
			Err:  fmt.Errorf("%w: nil element", errors.ErrInvalidChild),
		}
	}
	if slices.Contains(c.items, item) {
		return duplicateError(item)
	}
	if err := visual.CheckCycle("controls.Add", c.owner, item); err != nil {
		return err
	}
	if item.Parent() != nil {
		return &errors.Error{
			Op:      "controls.Add",
			Kind:    errors.KindTree,
			Element: visual.Describe(item),
			Err:     fmt.Errorf("%w: parent %s", errors.ErrAlreadyParented, visual.Describe(item.Parent())),
		}
	}
	return nil
}

func duplicateError(item input.Element) error {
	return &errors.Error{
		Op:      "controls.Add",
		Kind:    errors.KindTree,
		Element: visual.Describe(item),
		Err:     fmt.Errorf("%w: already in the collection", errors.ErrInvalidChild),
	}
}

func (c *Controls) rangeError(op string, index int) error {
	return &errors.Error{
		Op:   op,
		Kind: errors.KindTree,
		Err:  fmt.Errorf("%w: index %d out of range [0,%d]", errors.ErrInvalidChild, index, len(c.items)),
	}
}
