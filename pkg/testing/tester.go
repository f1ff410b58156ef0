package testing

import (
	"github.com/go-drift/arbor/pkg/controls"
	"github.com/go-drift/arbor/pkg/errors"
	"github.com/go-drift/arbor/pkg/graphics"
	"github.com/go-drift/arbor/pkg/input"
)

const (
	// DefaultTestWidth is the default client width of the test root.
	DefaultTestWidth = 800
	// DefaultTestHeight is the default client height of the test root.
	DefaultTestHeight = 600
)

// TestingT is the subset of *testing.T used by the helpers, allowing test
// doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Tester hosts content under a controls.Root and drives layout and input on
// it. Errors reported to the global error handler while the tester is live
// are collected instead of logged.
type Tester struct {
	root   *controls.Root
	errors *ErrorRecorder
}

// NewTester creates a tester with a root of the default size.
// Call Cleanup() when done, or use NewTesterWithT() instead.
func NewTester() *Tester {
	t := &Tester{
		root:   controls.NewRoot(graphics.Size{Width: DefaultTestWidth, Height: DefaultTestHeight}),
		errors: &ErrorRecorder{},
	}
	errors.SetHandler(t.errors)
	return t
}

// NewTesterWithT creates a tester that cleans up after the test.
// This is the recommended constructor for tests.
func NewTesterWithT(t interface{ Cleanup(func()) }) *Tester {
	tester := NewTester()
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup restores the default error handler.
func (t *Tester) Cleanup() {
	errors.SetHandler(nil)
}

// Root returns the root hosting the content.
func (t *Tester) Root() *controls.Root {
	return t.root
}

// SetSize resizes the root. The new size takes effect on the next Pump.
func (t *Tester) SetSize(size graphics.Size) error {
	return t.root.Resize(size)
}

// Pump replaces the root's content and lays the tree out.
func (t *Tester) Pump(content input.Element) error {
	if err := t.root.SetChild(nil); err != nil {
		return err
	}
	if err := t.root.SetChild(content); err != nil {
		return err
	}
	return t.PumpLayout()
}

// PumpLayout runs a layout pass for whatever was invalidated.
func (t *Tester) PumpLayout() error {
	return t.root.LayoutPass()
}

// NeedsLayout reports whether the root's queue holds pending work.
func (t *Tester) NeedsLayout() bool {
	return t.root.Queue().NeedsLayout()
}

// ReportedErrors returns the errors reported since the tester was created.
func (t *Tester) ReportedErrors() []*errors.Error {
	return t.errors.Errors()
}

// Find evaluates a finder against the tree under the root.
func (t *Tester) Find(finder Finder) FinderResult {
	return FinderResult{
		elements: finder.Evaluate(t.root),
		finder:   finder,
	}
}
