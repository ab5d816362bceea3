// Package testing provides fakes and a session tester for gallery tests.
//
// # Quick Start
//
// Create a tester, start a session, and drive it with a fake clock:
//
//	func TestClose(t *testing.T) {
//	    tester := gallerytest.NewTesterWithT(t)
//	    s, err := tester.Start(5, 2)
//	    if err != nil {
//	        t.Fatal(err)
//	    }
//
//	    s.Close()
//	    if err := tester.PumpAndSettle(5 * time.Second); err != nil {
//	        t.Fatal(err)
//	    }
//
//	    if tester.Calls.Closed != 1 {
//	        t.Errorf("expected one close, got %d", tester.Calls.Closed)
//	    }
//	}
//
// # Snapshot Testing
//
// Capture and compare the visible host state:
//
//	snapshot := tester.CaptureSnapshot()
//	snapshot.MatchesFile(t, "testdata/closed.snapshot.json")
//
// Update snapshots with:
//
//	GALLERY_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Animation Testing
//
// Sessions never read the wall clock when given the tester's scheduler:
//
//	tester.Pump(100 * time.Millisecond)
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import gallerytest "github.com/go-drift/gallery/pkg/testing"
package testing
