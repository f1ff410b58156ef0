// Package testbed provides internal fixture trees for the testing helpers.
package testbed

import (
	"github.com/go-drift/arbor/pkg/controls"
	"github.com/go-drift/arbor/pkg/graphics"
)

// Form is a vertical stack of a labelled input field and a submit button:
//
//	StackPanel "form" (spacing 10)
//	  Border "field" (focusable, padding 4, border 1)
//	    TextBlock "Name"
//	  Border "submit" (focusable, padding 2)
//	    TextBlock "Submit"
type Form struct {
	Panel       *controls.StackPanel
	Field       *controls.Border
	FieldLabel  *controls.TextBlock
	Submit      *controls.Border
	SubmitLabel *controls.TextBlock
}

// NewForm builds a Form. Nothing is laid out yet.
func NewForm() *Form {
	f := &Form{
		Panel:       controls.NewStackPanel(),
		Field:       controls.NewBorder(),
		FieldLabel:  controls.NewTextBlock("Name"),
		Submit:      controls.NewBorder(),
		SubmitLabel: controls.NewTextBlock("Submit"),
	}
	f.Panel.SetName("form")
	f.Panel.SetSpacing(10)

	f.Field.SetName("field")
	f.Field.SetFocusable(true)
	f.Field.SetPadding(graphics.UniformThickness(4))
	f.Field.SetBorderThickness(1)
	mustSet(f.Field, f.FieldLabel)

	f.Submit.SetName("submit")
	f.Submit.SetFocusable(true)
	f.Submit.SetPadding(graphics.UniformThickness(2))
	mustSet(f.Submit, f.SubmitLabel)

	if err := f.Panel.Controls().Add(f.Field, f.Submit); err != nil {
		panic(err)
	}
	return f
}

func mustSet(b *controls.Border, child *controls.TextBlock) {
	if err := b.SetChild(child); err != nil {
		panic(err)
	}
}
