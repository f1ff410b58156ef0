package controls

import (
	"testing"

	"github.com/go-drift/arbor/pkg/errors"
	"github.com/go-drift/arbor/pkg/graphics"
	"github.com/go-drift/arbor/pkg/input"
)

// box is a control with a fixed content size.
type box struct {
	Control
	content  graphics.Size
	measures int
}

func newBox(name string, w, h float64) *box {
	b := &box{content: size(w, h)}
	b.SetSelf(b)
	b.SetName(name)
	return b
}

func (b *box) MeasureOverride(available graphics.Size) (graphics.Size, error) {
	b.measures++
	return b.content, nil
}

// errorRecorder collects reported errors for the duration of a test.
type errorRecorder struct {
	errs []*errors.Error
}

func (r *errorRecorder) HandleError(err *errors.Error)      { r.errs = append(r.errs, err) }
func (r *errorRecorder) HandlePanic(err *errors.PanicError) {}

func recordErrors(t *testing.T) *errorRecorder {
	t.Helper()
	r := &errorRecorder{}
	errors.SetHandler(r)
	t.Cleanup(func() { errors.SetHandler(nil) })
	return r
}

// changeLog records every ChildrenChangedEvent it sees.
type changeLog struct {
	events []ChildrenChangedEvent
}

func (l *changeLog) record(e ChildrenChangedEvent) {
	l.events = append(l.events, e)
}

func (l *changeLog) actions() []ChangeAction {
	var actions []ChangeAction
	for _, e := range l.events {
		actions = append(actions, e.Action)
	}
	return actions
}

func elements(items ...input.Element) []input.Element { return items }

func size(w, h float64) graphics.Size { return graphics.Size{Width: w, Height: h} }

func rect(l, t, w, h float64) graphics.Rect { return graphics.RectFromLTWH(l, t, w, h) }
