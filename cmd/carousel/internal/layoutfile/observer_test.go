package layoutfile

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-drift/carousel/pkg/errors"
	"github.com/go-drift/carousel/pkg/geometry"
	"github.com/go-drift/carousel/pkg/resize"
)

const initialLayout = `
layout:
  container: {width: 100, height: 50}
  slide_sizes: [100, 100, 100]
`

func newTestObserver(t *testing.T, content string) (*Observer, *Layout, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "carousel.yaml")
	writeLayout(t, path, content)
	layout := NewLayout(
		geometry.RectFromLTWH(0, 0, 100, 50),
		[]geometry.Rect{
			geometry.RectFromLTWH(0, 0, 100, 50),
			geometry.RectFromLTWH(100, 0, 100, 50),
			geometry.RectFromLTWH(200, 0, 100, 50),
		},
	)
	return NewObserver(path, geometry.AxisHorizontal, layout), layout, path
}

func writeLayout(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestReloadUnchanged(t *testing.T) {
	o, _, _ := newTestObserver(t, initialLayout)
	entries, err := o.Reload()
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("entries = %d, want 0 for an unchanged file", len(entries))
	}
}

func TestReloadReportsChangedNodes(t *testing.T) {
	o, layout, path := newTestObserver(t, initialLayout)
	writeLayout(t, path, `
layout:
  container: {width: 100, height: 50}
  slide_sizes: [100, 150, 100]
`)

	entries, err := o.Reload()
	if err != nil {
		t.Fatal(err)
	}
	// The second slide grew and the third moved.
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	if entries[0].Target != resize.Node(layout.Slides[1]) || entries[1].Target != resize.Node(layout.Slides[2]) {
		t.Error("entries should follow layout order")
	}
	if got := layout.Slides[1].BoundingRect().Width(); got != 150 {
		t.Errorf("slide width = %v, want 150", got)
	}
}

func TestReloadSlideCountChange(t *testing.T) {
	o, layout, path := newTestObserver(t, initialLayout)
	writeLayout(t, path, `
layout:
  container: {width: 200, height: 50}
  slide_sizes: [100, 100]
`)

	entries, err := o.Reload()
	if err == nil || err.Kind != errors.KindLayout {
		t.Fatalf("err = %v, want a layout error", err)
	}
	if len(entries) != 1 || entries[0].Target != resize.Node(layout.Container) {
		t.Errorf("entries = %+v, want the container change", entries)
	}
	if err.Source != path {
		t.Errorf("source = %q, want %q", err.Source, path)
	}
}

func TestReloadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		kind    errors.ErrorKind
	}{
		{"parse", "layout: [", errors.KindConfig},
		{"invalid", "layout: {container: {width: 0, height: 0}, slide_sizes: [1]}", errors.KindConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, _, _ := newTestObserver(t, tt.content)
			if _, err := o.Reload(); err == nil || err.Kind != tt.kind {
				t.Errorf("err = %v, want kind %v", err, tt.kind)
			}
		})
	}

	o, _, path := newTestObserver(t, initialLayout)
	os.Remove(path)
	if _, err := o.Reload(); err == nil || err.Kind != errors.KindObserver {
		t.Errorf("missing file err = %v, want observer kind", err)
	}
}

func TestObserveDeliversSavedChanges(t *testing.T) {
	o, layout, path := newTestObserver(t, initialLayout)
	o.WithDebounce(10 * time.Millisecond)

	container, slides := layout.Nodes()
	batches := make(chan []resize.Entry, 8)
	disconnect, err := o.Observe(append([]resize.Node{container}, slides...), func(entries []resize.Entry) {
		batches <- entries
	})
	if err != nil {
		t.Fatal(err)
	}
	defer disconnect()

	writeLayout(t, path, `
layout:
  container: {width: 120, height: 50}
  slide_sizes: [100, 100, 100]
`)

	select {
	case entries := <-batches:
		if len(entries) != 1 || entries[0].Target != container {
			t.Errorf("batch = %+v, want the container", entries)
		}
		if entries[0].Rect.Width() != 120 {
			t.Errorf("rect width = %v, want 120", entries[0].Rect.Width())
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timeout waiting for batch")
	}
}

func TestObserveFiltersUnwatchedNodes(t *testing.T) {
	o, layout, path := newTestObserver(t, initialLayout)
	o.WithDebounce(0)

	batches := make(chan []resize.Entry, 8)
	disconnect, err := o.Observe([]resize.Node{layout.Container}, func(entries []resize.Entry) {
		batches <- entries
	})
	if err != nil {
		t.Fatal(err)
	}
	defer disconnect()

	writeLayout(t, path, `
layout:
  container: {width: 100, height: 50}
  slide_sizes: [100, 100, 130]
`)

	select {
	case entries := <-batches:
		t.Errorf("unexpected batch for unwatched slide: %+v", entries)
	case <-time.After(200 * time.Millisecond):
	}
	if got := layout.Slides[2].BoundingRect().Width(); got != 130 {
		t.Errorf("layout was not updated, width = %v", got)
	}
}

func TestObserveMissingDirectory(t *testing.T) {
	layout := NewLayout(geometry.RectFromLTWH(0, 0, 1, 1), nil)
	o := NewObserver(filepath.Join(t.TempDir(), "missing", "carousel.yaml"), geometry.AxisHorizontal, layout)
	if _, err := o.Observe(nil, func([]resize.Entry) {}); err == nil {
		t.Error("expected an error watching a missing directory")
	}
}
