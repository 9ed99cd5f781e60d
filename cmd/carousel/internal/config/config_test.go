package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-drift/carousel/pkg/geometry"
	"github.com/go-drift/carousel/pkg/resize"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestResolveMissingFileUsesDefaults(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "My-Demo")
	if err := os.Mkdir(dir, 0o755); err != nil {
		t.Fatal(err)
	}

	resolved, err := Resolve(filepath.Join(dir, DefaultFile))
	if err != nil {
		t.Fatal(err)
	}
	opts := resolved.Options
	if opts.Name != "my_demo" {
		t.Errorf("name = %q, want my_demo", opts.Name)
	}
	if !opts.Elastic || opts.Speed != 10 || opts.Mass != 1 {
		t.Errorf("unexpected defaults: %+v", opts)
	}
	if opts.WatchResize.Mode() != resize.WatchDefault {
		t.Errorf("watch mode = %v, want default", opts.WatchResize.Mode())
	}
	if resolved.Container.Width() != 400 || len(resolved.Slides) != 4 {
		t.Errorf("default layout = %+v with %d slides", resolved.Container, len(resolved.Slides))
	}
	if resolved.Slides[3].Left != 1200 {
		t.Errorf("fourth slide left = %v, want 1200", resolved.Slides[3].Left)
	}
}

func TestResolveFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, DefaultFile, `
name: hero
axis: y
loop: true
drag_free: true
elastic: false
speed: 20
mass: 2
start_index: 1
watch_resize: false
layout:
  container: {width: 300, height: 600}
  slide_sizes: [600, 600, 600]
  gap: 10
`)

	resolved, err := Resolve(path)
	if err != nil {
		t.Fatal(err)
	}
	opts := resolved.Options
	if opts.Name != "hero" || opts.Axis != geometry.AxisVertical {
		t.Errorf("name/axis = %q/%v", opts.Name, opts.Axis)
	}
	if !opts.Loop || !opts.DragFree || opts.Elastic {
		t.Errorf("flags = loop %v dragFree %v elastic %v", opts.Loop, opts.DragFree, opts.Elastic)
	}
	if opts.Speed != 20 || opts.Mass != 2 || opts.StartIndex != 1 {
		t.Errorf("tuning = %+v", opts)
	}
	if opts.WatchResize.Enabled() {
		t.Error("watch_resize: false should disable watching")
	}
	if resolved.Path != path {
		t.Errorf("path = %q", resolved.Path)
	}
	second := resolved.Slides[1]
	if second.Top != 610 || second.Height() != 600 || second.Width() != 300 {
		t.Errorf("second slide = %+v", second)
	}
}

func TestResolveExplicitSlides(t *testing.T) {
	cfg, err := Parse([]byte(`
layout:
  container: {width: 100, height: 50}
  slides:
    - {left: 0, width: 80, height: 50}
    - {left: 90, width: 80, height: 50}
`))
	if err != nil {
		t.Fatal(err)
	}
	container, slides, err := cfg.Layout.Rects(geometry.AxisHorizontal)
	if err != nil {
		t.Fatal(err)
	}
	if container.Width() != 100 || len(slides) != 2 || slides[1].Left != 90 {
		t.Errorf("rects = %+v %+v", container, slides)
	}
}

func TestResolveValidation(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"bad axis", "axis: z", "axis"},
		{"negative speed", "speed: -1", "speed"},
		{"negative mass", "mass: -1", "mass"},
		{"negative start", "start_index: -2", "start_index"},
		{"empty container", "layout: {slide_sizes: [10]}", "layout.container"},
		{"both slide forms", "layout: {container: {width: 10, height: 10}, slides: [{width: 1, height: 1}], slide_sizes: [1]}", "mutually exclusive"},
		{"negative gap", "layout: {container: {width: 10, height: 10}, slide_sizes: [1], gap: -1}", "layout.gap"},
		{"negative size", "layout: {container: {width: 10, height: 10}, slide_sizes: [-1]}", "slide_sizes[0]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.yaml))
			if err != nil {
				t.Fatal(err)
			}
			_, err = cfg.Resolve(t.TempDir())
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Resolve() error = %v, want mention of %q", err, tt.want)
			}
		})
	}
}

func TestParseError(t *testing.T) {
	if _, err := Parse([]byte("layout: [")); err == nil {
		t.Error("expected a parse error")
	}
}

func TestDefaultNameFromModule(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "go.mod", "module example.com/shop/Hero-Banner/v2\n\ngo 1.24\n")

	if got := DefaultName(dir); got != "hero_banner" {
		t.Errorf("DefaultName() = %q, want hero_banner", got)
	}
}

func TestDefaultNameFallback(t *testing.T) {
	if got := DefaultName("/"); got != "carousel" {
		t.Errorf("DefaultName(/) = %q, want carousel", got)
	}
}
