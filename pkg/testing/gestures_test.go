package testing

import (
	"slices"
	"testing"

	"github.com/go-drift/arbor/pkg/graphics"
	"github.com/go-drift/arbor/pkg/input"
	"github.com/go-drift/arbor/pkg/interactivity"
	"github.com/go-drift/arbor/pkg/tree"
)

func TestTap_FocusesNearestFocusable(t *testing.T) {
	tester, form := pumpForm(t)

	if err := tester.Tap(ByName("submit")); err != nil {
		t.Fatal(err)
	}
	if !form.Submit.IsFocused() {
		t.Error("expected submit to be focused after tap")
	}
	if !form.SubmitLabel.IsPointerOver() {
		t.Error("expected pointer over the submit label")
	}
}

func TestTap_NoMatch(t *testing.T) {
	tester, _ := pumpForm(t)
	if err := tester.Tap(ByName("missing")); err == nil {
		t.Error("expected an error tapping a missing element")
	}
}

func TestHoverAt_MovesPointerOver(t *testing.T) {
	tester, form := pumpForm(t)

	if err := tester.HoverAt(graphics.Point{X: 10, Y: 10}); err != nil {
		t.Fatal(err)
	}
	if !form.Field.IsPointerOver() {
		t.Error("expected pointer over the field")
	}
	if err := tester.HoverAt(graphics.Point{X: 10, Y: 40}); err != nil {
		t.Fatal(err)
	}
	if form.Field.IsPointerOver() {
		t.Error("expected pointer to have left the field")
	}
	if !form.Submit.IsPointerOver() {
		t.Error("expected pointer over submit")
	}
}

func TestSendKey_RoutesToFocused(t *testing.T) {
	tester, form := pumpForm(t)
	rec := &EventRecorder{}
	rec.Watch(form.Panel, input.KeyDownEvent)
	rec.Watch(form.Field, input.KeyDownEvent)

	if err := tester.SendKey("a", 0); err == nil {
		t.Error("expected an error without focus")
	}
	if err := tester.Focus(ByName("field")); err != nil {
		t.Fatal(err)
	}
	if err := tester.SendKey("a", input.ModShift); err != nil {
		t.Fatal(err)
	}

	want := []string{
		"KeyDown tunnel StackPanel(form)",
		"KeyDown tunnel Border(field)",
		"KeyDown bubble Border(field)",
		"KeyDown bubble StackPanel(form)",
	}
	if got := rec.Trace(); !slices.Equal(got, want) {
		t.Errorf("trace = %q, want %q", got, want)
	}
}

func TestEnterText(t *testing.T) {
	tester, form := pumpForm(t)
	var got string
	form.Field.AddHandler(input.TextInputEvent, interactivity.Typed(func(_ tree.Node, e *input.TextInputEventArgs) {
		got += e.Text
	}), interactivity.Bubble, false)

	if err := tester.Focus(ByName("field")); err != nil {
		t.Fatal(err)
	}
	if err := tester.EnterText("hi"); err != nil {
		t.Fatal(err)
	}
	if got != "hi" {
		t.Errorf("expected text 'hi', got %q", got)
	}
}

func TestFocus_Refused(t *testing.T) {
	tester, _ := pumpForm(t)
	if err := tester.Focus(ByText("Name")); err == nil {
		t.Error("expected a text block to refuse focus")
	}
}
