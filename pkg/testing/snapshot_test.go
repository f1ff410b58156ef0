package testing

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-drift/arbor/pkg/controls"
	"github.com/go-drift/arbor/pkg/graphics"
)

func TestCaptureSnapshot_Structure(t *testing.T) {
	tester, _ := pumpForm(t)

	snap := CaptureSnapshot(tester.Root())
	root := snap.Tree
	if root == nil {
		t.Fatal("expected snapshot tree")
	}
	if root.ID != "Root#0" {
		t.Errorf("expected root ID Root#0, got %q", root.ID)
	}
	if len(root.Children) != 1 || root.Children[0].Name != "form" {
		t.Fatalf("expected the form under the root, got %+v", root.Children)
	}
	form := root.Children[0]
	if form.Props["orientation"] != "vertical" || form.Props["spacing"] != 10.0 {
		t.Errorf("unexpected form props %v", form.Props)
	}
	submit := form.Children[1]
	if submit.ID != "Border#1" {
		t.Errorf("expected second border ID Border#1, got %q", submit.ID)
	}
	if submit.Bounds != [4]float64{0, 33, 800, 17} {
		t.Errorf("unexpected submit bounds %v", submit.Bounds)
	}
	if submit.Desired == nil || *submit.Desired != [2]float64{46, 17} {
		t.Errorf("unexpected submit desired size %v", submit.Desired)
	}
	if label := submit.Children[0]; label.Props["text"] != "Submit" {
		t.Errorf("unexpected label props %v", label.Props)
	}
}

func TestCaptureSnapshot_UnmeasuredHasNoDesired(t *testing.T) {
	snap := CaptureSnapshot(controls.NewTextBlock("x"))
	if snap.Tree.Desired != nil {
		t.Errorf("expected no desired size before measure, got %v", *snap.Tree.Desired)
	}
}

func TestSnapshot_Diff(t *testing.T) {
	tester, form := pumpForm(t)
	a := CaptureSnapshot(tester.Root())
	b := CaptureSnapshot(tester.Root())
	if diff := a.Diff(b); diff != "" {
		t.Errorf("expected no diff for identical snapshots, got:\n%s", diff)
	}

	form.SubmitLabel.SetText("Send")
	if err := tester.PumpLayout(); err != nil {
		t.Fatal(err)
	}
	c := CaptureSnapshot(tester.Root())
	diff := c.Diff(a)
	if !strings.Contains(diff, `"text": "Submit"`) || !strings.Contains(diff, `"text": "Send"`) {
		t.Errorf("expected text change in diff, got:\n%s", diff)
	}
}

func TestSnapshot_WriteText(t *testing.T) {
	root := controls.NewRoot(graphics.Size{Width: 100, Height: 50})
	border := controls.NewBorder()
	border.SetName("frame")
	border.SetPadding(graphics.UniformThickness(5))
	if err := root.SetChild(border); err != nil {
		t.Fatal(err)
	}
	if err := root.LayoutPass(); err != nil {
		t.Fatal(err)
	}

	var out strings.Builder
	if err := CaptureSnapshot(root).WriteText(&out); err != nil {
		t.Fatal(err)
	}
	want := "Root#0 bounds=(0,0 100x50) desired=10x10\n" +
		"  Border#0 frame bounds=(0,0 100x50) desired=10x10\n"
	if out.String() != want {
		t.Errorf("outline =\n%s\nwant\n%s", out.String(), want)
	}
}

func TestSnapshot_FileRoundTrip(t *testing.T) {
	tester, _ := pumpForm(t)
	snap := CaptureSnapshot(tester.Root())
	path := filepath.Join(t.TempDir(), "nested", "form.snapshot.json")

	if err := snap.UpdateFile(path); err != nil {
		t.Fatal(err)
	}
	loaded, err := LoadSnapshot(path)
	if err != nil {
		t.Fatal(err)
	}
	if diff := snap.Diff(loaded); diff != "" {
		t.Errorf("expected loaded snapshot to match, got:\n%s", diff)
	}

	ft := &fakeT{name: t.Name()}
	snap.MatchesFile(ft, path)
	if len(ft.errors) > 0 || len(ft.fatals) > 0 {
		t.Errorf("expected match, got errors %v fatals %v", ft.errors, ft.fatals)
	}
}

func TestSnapshot_MatchesFileMissing(t *testing.T) {
	t.Setenv("ARBOR_UPDATE_SNAPSHOTS", "")
	ft := &fakeT{name: "TestMissing"}
	CaptureSnapshot(nil).MatchesFile(ft, filepath.Join(t.TempDir(), "missing.json"))
	if len(ft.fatals) != 1 || !strings.Contains(ft.fatals[0], "snapshot file missing") {
		t.Errorf("expected missing-file failure, got %v", ft.fatals)
	}
}

func TestSnapshot_MatchesFileUpdates(t *testing.T) {
	t.Setenv("ARBOR_UPDATE_SNAPSHOTS", "1")
	path := filepath.Join(t.TempDir(), "update.json")
	ft := &fakeT{name: "TestUpdate"}

	CaptureSnapshot(controls.NewTextBlock("x")).MatchesFile(ft, path)
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected snapshot to be written: %v", err)
	}
}

// fakeT records failures instead of failing the test.
type fakeT struct {
	name   string
	errors []string
	fatals []string
}

func (f *fakeT) Helper()      {}
func (f *fakeT) Name() string { return f.name }

func (f *fakeT) Errorf(format string, args ...any) {
	f.errors = append(f.errors, fmt.Sprintf(format, args...))
}

func (f *fakeT) Fatalf(format string, args ...any) {
	f.fatals = append(f.fatals, fmt.Sprintf(format, args...))
}
