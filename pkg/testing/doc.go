// Package testing provides helpers for testing trees built on arbor.
//
// # Quick Start
//
// Create a tester, pump some content, and make assertions:
//
//	func TestForm(t *testing.T) {
//	    tester := arbortest.NewTesterWithT(t)
//	    ok := controls.NewBorder()
//	    ok.SetName("ok")
//	    ok.SetFocusable(true)
//	    if err := tester.Pump(ok); err != nil {
//	        t.Fatal(err)
//	    }
//
//	    // Simulate input
//	    if err := tester.Tap(arbortest.ByName("ok")); err != nil {
//	        t.Fatal(err)
//	    }
//
//	    if !ok.IsFocused() {
//	        t.Error("expected the tapped border to take focus")
//	    }
//	}
//
// # Snapshot Testing
//
// Capture and compare the laid-out tree:
//
//	snapshot := arbortest.CaptureSnapshot(tester.Root())
//	snapshot.MatchesFile(t, "testdata/form.snapshot.json")
//
// Update snapshots with:
//
//	ARBOR_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Recording
//
// RecordingManager stands in for a layout root's manager and records every
// invalidation it receives. EventRecorder subscribes to routed events on a
// subtree and records each delivery with its route.
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import arbortest "github.com/go-drift/arbor/pkg/testing"
package testing
