package controls

import (
	"go.uber.org/zap"

	"github.com/go-drift/arbor/pkg/errors"
	"github.com/go-drift/arbor/pkg/input"
	"github.com/go-drift/arbor/pkg/visual"
)

// ControlType is the element type of Control.
var ControlType = visual.NewType("Control", input.InputElementType)

// Templated is implemented by controls that build their visual content
// lazily. BuildTemplate runs once, before the control is first measured, and
// the element it returns becomes the control's visual child.
type Templated interface {
	BuildTemplate() (input.Element, error)
}

// Control is the base of the concrete elements.
type Control struct {
	input.InputElement

	templateApplied bool
}

// NewControl returns a control with no content.
func NewControl() *Control {
	c := &Control{}
	c.SetSelf(c)
	return c
}

// ElementType returns ControlType.
func (c *Control) ElementType() *visual.Type {
	return ControlType
}

// IsTemplateApplied reports whether ApplyTemplate has run.
func (c *Control) IsTemplateApplied() bool {
	return c.templateApplied
}

// ApplyTemplate builds the control's template content the first time it is
// called. Later calls do nothing. A template that fails to build is
// reported to the error handler and leaves the control empty.
func (c *Control) ApplyTemplate() {
	if c.templateApplied {
		return
	}
	c.templateApplied = true

	t, ok := c.Self().(Templated)
	if !ok {
		return
	}
	content, err := t.BuildTemplate()
	if err == nil && content != nil {
		err = c.AddVisualChild(content)
	}
	if err != nil {
		errors.Report(&errors.Error{
			Op:      "controls.ApplyTemplate",
			Kind:    errors.KindTree,
			Element: visual.Describe(c.Self()),
			Err:     err,
		})
		return
	}
	if log := debugLogger(); log != nil {
		log.Debug("template applied",
			zap.String("control", visual.Describe(c.Self())),
			zap.String("content", visual.Describe(content)))
	}
}
