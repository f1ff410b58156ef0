package controls

import (
	"go.uber.org/zap"

	"github.com/go-drift/arbor/pkg/errors"
	"github.com/go-drift/arbor/pkg/input"
	"github.com/go-drift/arbor/pkg/visual"
)

// PanelType is the element type of Panel.
var PanelType = visual.NewType("Panel", ControlType)

// Panel is a container whose visual children mirror its Controls
// collection. The default layout stacks every child in the full panel
// rectangle.
type Panel struct {
	Control

	children        *Controls
	unsubscribe     func()
	childrenChanged changeNotifier
}

// NewPanel returns an empty panel.
func NewPanel() *Panel {
	p := &Panel{}
	p.SetSelf(p)
	return p
}

// ElementType returns PanelType.
func (p *Panel) ElementType() *visual.Type {
	return PanelType
}

// Controls returns the panel's child collection, creating an empty one on
// first use.
func (p *Panel) Controls() *Controls {
	if p.children == nil {
		p.attach(&Controls{})
	}
	return p.children
}

// SetControls replaces the child collection. Every child of the previous
// collection is detached with its own ChangeRemove notification; a nil
// collection leaves the panel empty.
func (p *Panel) SetControls(c *Controls) {
	if c != nil && c == p.children {
		return
	}
	p.detach()
	if c != nil {
		p.attach(c)
	}
	p.InvalidateMeasure()
}

// SetChildren replaces the children with a new collection holding
// children. With no arguments it clears the panel.
func (p *Panel) SetChildren(children ...input.Element) error {
	if len(children) == 0 {
		p.SetControls(nil)
		return nil
	}
	c := &Controls{owner: p.Self()}
	if err := c.Add(children...); err != nil {
		return err
	}
	p.SetControls(c)
	return nil
}

// OnChildrenChanged registers fn to be called after the panel's logical
// children change. The returned function removes the subscription.
func (p *Panel) OnChildrenChanged(fn func(ChildrenChangedEvent)) (unsubscribe func()) {
	return p.childrenChanged.subscribe(fn)
}

func (p *Panel) attach(c *Controls) {
	p.children = c
	c.owner = p.Self()
	p.unsubscribe = c.OnChanged(p.onCollectionChanged)
	if c.Len() == 0 {
		return
	}
	for i, child := range c.All() {
		p.insertVisual(i, child)
	}
	p.childrenChanged.notify(ChildrenChangedEvent{
		Action:   ChangeAdd,
		NewItems: c.Items(),
	})
}

func (p *Panel) detach() {
	old := p.children
	if old == nil {
		return
	}
	p.unsubscribe()
	old.owner = nil
	p.children = nil
	p.unsubscribe = nil
	for i, child := range old.All() {
		p.RemoveVisualChild(child)
		p.childrenChanged.notify(ChildrenChangedEvent{
			Action:   ChangeRemove,
			Index:    i,
			OldItems: []input.Element{child},
		})
	}
}

func (p *Panel) onCollectionChanged(e ChildrenChangedEvent) {
	switch e.Action {
	case ChangeAdd:
		for i, child := range e.NewItems {
			p.insertVisual(e.Index+i, child)
		}
	case ChangeRemove:
		for _, child := range e.OldItems {
			p.RemoveVisualChild(child)
		}
	case ChangeReplace:
		for _, child := range e.OldItems {
			p.RemoveVisualChild(child)
		}
		for i, child := range e.NewItems {
			p.insertVisual(e.Index+i, child)
		}
	}
	if log := debugLogger(); log != nil {
		log.Debug("children changed",
			zap.String("panel", visual.Describe(p.Self())),
			zap.Stringer("action", e.Action),
			zap.Int("index", e.Index))
	}
	p.childrenChanged.notify(e)
	p.InvalidateMeasure()
}

// insertVisual mirrors a collection insert into the visual children. The
// collection has already rejected parented elements, so a failure here means
// the two lists went out of step.
func (p *Panel) insertVisual(index int, child input.Element) {
	index = min(index, len(p.Children()))
	if err := p.InsertVisualChild(index, child); err != nil {
		errors.Report(&errors.Error{
			Op:      "controls.Panel",
			Kind:    errors.KindTree,
			Element: visual.Describe(p.Self()),
			Err:     err,
		})
	}
}
