package controls

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/go-drift/arbor/pkg/errors"
	"github.com/go-drift/arbor/pkg/graphics"
	"github.com/go-drift/arbor/pkg/input"
	"github.com/go-drift/arbor/pkg/layout"
	"github.com/go-drift/arbor/pkg/visual"
)

// RootType is the element type of Root.
var RootType = visual.NewType("Root", DecoratorType)

// Root is the top of a tree. It is the layout root of every element below
// it, owns the layout Queue they invalidate into and is the focus scope
// for keyboard focus.
type Root struct {
	Decorator

	clientSize graphics.Size
	queue      *layout.Queue
	focus      *input.FocusManager
	pointer    *input.Pointer
	laidOut    bool
}

// NewRoot returns an empty root with the given client size.
func NewRoot(clientSize graphics.Size) *Root {
	r := &Root{clientSize: clientSize}
	r.SetSelf(r)
	r.queue = layout.NewQueue(r)
	r.focus = input.NewFocusManager(r)
	r.pointer = input.NewPointer(r)
	return r
}

// ElementType returns RootType.
func (r *Root) ElementType() *visual.Type {
	return RootType
}

// LayoutManager returns the root's queue.
func (r *Root) LayoutManager() layout.Manager {
	if r.queue == nil {
		return nil
	}
	return r.queue
}

// Queue returns the root's layout queue.
func (r *Root) Queue() *layout.Queue {
	return r.queue
}

// FocusManager returns the manager of keyboard focus below the root.
func (r *Root) FocusManager() *input.FocusManager {
	return r.focus
}

// Pointer returns the pointer that dispatches pointer input to the tree.
func (r *Root) Pointer() *input.Pointer {
	return r.pointer
}

// ClientSize returns the size the root is laid out in.
func (r *Root) ClientSize() graphics.Size {
	return r.clientSize
}

// Resize changes the client size and invalidates the root's measure. The
// new size is laid out by the next LayoutPass.
func (r *Root) Resize(size graphics.Size) error {
	if !size.IsValidLayoutSize() {
		return &errors.Error{
			Op:      "controls.Resize",
			Kind:    errors.KindInvalidInput,
			Element: visual.Describe(r),
			Err:     fmt.Errorf("%w: client size %v", errors.ErrInvalidInput, size),
		}
	}
	if size == r.clientSize {
		return nil
	}
	r.clientSize = size
	r.InvalidateMeasure()
	return nil
}

// LayoutPass brings the tree's layout up to date. The first call lays out
// the whole tree; later calls replay what was invalidated since.
func (r *Root) LayoutPass() error {
	if !r.laidOut {
		if log := debugLogger(); log != nil {
			log.Debug("initial layout", zap.Stringer("clientSize", r.clientSize))
		}
		if err := r.queue.ExecuteInitialLayoutPass(); err != nil {
			return err
		}
		r.laidOut = true
		return nil
	}
	return r.queue.ExecuteLayoutPass()
}
