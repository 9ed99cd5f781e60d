// Package testing provides a deterministic harness for carousel engines.
//
// # Quick Start
//
// Build a tester with a view and slide sizes, then drive frames:
//
//	func TestSwipe(t *testing.T) {
//	    tester := carouseltest.NewCarouselTesterWithT(t, carousel.DefaultOptions(), 100, 100, 100, 100)
//
//	    tester.Drag(-60, 3, -20)
//	    if err := tester.PumpAndSettle(time.Second); err != nil {
//	        t.Fatal(err)
//	    }
//	    if got := tester.Engine.SelectedIndex(); got != 1 {
//	        t.Errorf("selected = %d, want 1", got)
//	    }
//	}
//
// # Resize Testing
//
// Fake nodes and a manual observer simulate a platform resize source:
//
//	tester.Slides[0].Resize(120, 100)
//	tester.Observer.Deliver(tester.Slides[0].Entry())
//	tester.Pump()
//
// # Snapshot Testing
//
// Every pumped frame is recorded. Compare the trace against a golden file:
//
//	tester.CaptureSnapshot().MatchesFile(t, "testdata/swipe.snapshot.json")
//
// Update snapshots with:
//
//	CAROUSEL_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import carouseltest "github.com/go-drift/carousel/pkg/testing"
package testing
