package document

import (
	"fmt"

	"github.com/go-drift/arbor/pkg/controls"
	"github.com/go-drift/arbor/pkg/graphics"
	"github.com/go-drift/arbor/pkg/input"
	"github.com/go-drift/arbor/pkg/layout"
)

// Build creates the control tree for the root element. The document should
// have passed Validate.
func (d *Document) Build() (input.Element, error) {
	if d.Root == nil {
		return nil, invalid("root", "missing root element")
	}
	return d.Root.Build()
}

// NewRoot builds the document and hosts it under a controls.Root of the
// document's client size, or fallback.
func (d *Document) NewRoot(fallback graphics.Size) (*controls.Root, error) {
	content, err := d.Build()
	if err != nil {
		return nil, err
	}
	root := controls.NewRoot(d.ClientSize(fallback))
	if err := root.SetChild(content); err != nil {
		return nil, err
	}
	return root, nil
}

// Build creates the control for e and its descendants.
func (e *Element) Build() (input.Element, error) {
	var el input.Element
	switch e.Type {
	case "border":
		b := controls.NewBorder()
		b.SetBorderThickness(e.BorderThickness)
		if err := e.decorate(&b.Decorator); err != nil {
			return nil, err
		}
		el = b
	case "decorator":
		d := controls.NewDecorator()
		if err := e.decorate(d); err != nil {
			return nil, err
		}
		el = d
	case "stack":
		s := controls.NewStackPanel()
		o, err := controls.ParseOrientation(e.Orientation)
		if err != nil {
			return nil, err
		}
		s.SetOrientation(o)
		s.SetSpacing(e.Spacing)
		if err := e.fill(&s.Panel); err != nil {
			return nil, err
		}
		el = s
	case "panel":
		p := controls.NewPanel()
		if err := e.fill(p); err != nil {
			return nil, err
		}
		el = p
	case "text":
		el = controls.NewTextBlock(e.Text)
	default:
		return nil, fmt.Errorf("unknown element type %q", e.Type)
	}
	if err := e.applyCommon(el); err != nil {
		return nil, err
	}
	return el, nil
}

// styled is the setter surface shared by every control.
type styled interface {
	input.Element
	SetName(string)
	SetWidth(float64)
	SetHeight(float64)
	SetMinWidth(float64)
	SetMinHeight(float64)
	SetMaxWidth(float64)
	SetMaxHeight(float64)
	SetMargin(graphics.Thickness)
	SetHorizontalAlignment(layout.HorizontalAlignment)
	SetVerticalAlignment(layout.VerticalAlignment)
	SetIsVisible(bool)
	SetIsEnabled(bool)
	SetFocusable(bool)
	SetIsHitTestVisible(bool)
}

func (e *Element) applyCommon(el input.Element) error {
	s, ok := el.(styled)
	if !ok {
		return fmt.Errorf("%T cannot be styled", el)
	}
	s.SetName(e.Name)
	setFloat(e.Width, s.SetWidth)
	setFloat(e.Height, s.SetHeight)
	setFloat(e.MinWidth, s.SetMinWidth)
	setFloat(e.MinHeight, s.SetMinHeight)
	setFloat(e.MaxWidth, s.SetMaxWidth)
	setFloat(e.MaxHeight, s.SetMaxHeight)
	if e.Margin != nil {
		s.SetMargin(graphics.Thickness(*e.Margin))
	}

	h, err := layout.ParseHorizontalAlignment(e.HorizontalAlignment)
	if err != nil {
		return err
	}
	s.SetHorizontalAlignment(h)
	v, err := layout.ParseVerticalAlignment(e.VerticalAlignment)
	if err != nil {
		return err
	}
	s.SetVerticalAlignment(v)

	if e.Visible != nil {
		s.SetIsVisible(*e.Visible)
	}
	if e.Enabled != nil {
		s.SetIsEnabled(*e.Enabled)
	}
	if e.HitTestVisible != nil {
		s.SetIsHitTestVisible(*e.HitTestVisible)
	}
	s.SetFocusable(e.Focusable)
	return nil
}

func (e *Element) decorate(d *controls.Decorator) error {
	if e.Padding != nil {
		d.SetPadding(graphics.Thickness(*e.Padding))
	}
	if e.Child == nil {
		return nil
	}
	child, err := e.Child.Build()
	if err != nil {
		return err
	}
	return d.SetChild(child)
}

func (e *Element) fill(p *controls.Panel) error {
	children := make([]input.Element, 0, len(e.Children))
	for _, c := range e.Children {
		child, err := c.Build()
		if err != nil {
			return err
		}
		children = append(children, child)
	}
	if len(children) == 0 {
		return nil
	}
	return p.SetChildren(children...)
}

func setFloat(v *float64, set func(float64)) {
	if v != nil {
		set(*v)
	}
}
