package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-drift/carousel/pkg/carousel"
	"github.com/go-drift/carousel/pkg/geometry"
	"github.com/go-drift/carousel/pkg/resize"
	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the configuration file name looked up by the CLI.
const DefaultFile = "carousel.yaml"

// Config represents the optional carousel.yaml configuration.
type Config struct {
	Name        string       `yaml:"name,omitempty"`
	Axis        string       `yaml:"axis,omitempty"`
	Loop        bool         `yaml:"loop,omitempty"`
	DragFree    bool         `yaml:"drag_free,omitempty"`
	Elastic     *bool        `yaml:"elastic,omitempty"`
	Speed       float64      `yaml:"speed,omitempty"`
	Mass        float64      `yaml:"mass,omitempty"`
	StartIndex  int          `yaml:"start_index,omitempty"`
	WatchResize *bool        `yaml:"watch_resize,omitempty"`
	Layout      LayoutConfig `yaml:"layout"`
}

// LayoutConfig describes the measured nodes. Slides either list explicit
// rects or give sizes along the axis, laid out end to end with Gap.
type LayoutConfig struct {
	Container  RectConfig   `yaml:"container"`
	Slides     []RectConfig `yaml:"slides,omitempty"`
	SlideSizes []float64    `yaml:"slide_sizes,omitempty"`
	Gap        float64      `yaml:"gap,omitempty"`
}

// RectConfig is a rect in pixels.
type RectConfig struct {
	Left   float64 `yaml:"left,omitempty"`
	Top    float64 `yaml:"top,omitempty"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

func (r RectConfig) rect() geometry.Rect {
	return geometry.RectFromLTWH(r.Left, r.Top, r.Width, r.Height)
}

// Default layout used when the file has none: a 400x200 view holding four
// full-width slides.
var defaultLayout = LayoutConfig{
	Container:  RectConfig{Width: 400, Height: 200},
	SlideSizes: []float64{400, 400, 400, 400},
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Path      string
	Options   carousel.Options
	Container geometry.Rect
	Slides    []geometry.Rect
}

// LoadOptional reads the file at path if present.
func LoadOptional(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}
	return Parse(data)
}

// Parse decodes a configuration document.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse carousel config: %w", err)
	}
	return &cfg, nil
}

// Resolve loads path (if present) and resolves defaults. The carousel name
// defaults to the enclosing Go module or directory name.
func Resolve(path string) (*Resolved, error) {
	cfg, err := LoadOptional(path)
	if err != nil {
		return nil, err
	}
	resolved, err := cfg.Resolve(filepath.Dir(path))
	if err != nil {
		return nil, err
	}
	resolved.Path = path
	return resolved, nil
}

// Resolve validates cfg and fills in defaults. dir seeds the default name.
func (c *Config) Resolve(dir string) (*Resolved, error) {
	axis, err := geometry.ParseAxis(c.Axis)
	if err != nil {
		return nil, err
	}
	if c.Speed < 0 {
		return nil, fmt.Errorf("speed must not be negative, got %v", c.Speed)
	}
	if c.Mass < 0 {
		return nil, fmt.Errorf("mass must not be negative, got %v", c.Mass)
	}
	if c.StartIndex < 0 {
		return nil, fmt.Errorf("start_index must not be negative, got %d", c.StartIndex)
	}

	opts := carousel.DefaultOptions()
	opts.Name = strings.TrimSpace(c.Name)
	if opts.Name == "" {
		opts.Name = DefaultName(dir)
	}
	opts.Axis = axis
	opts.Loop = c.Loop
	opts.DragFree = c.DragFree
	if c.Elastic != nil {
		opts.Elastic = *c.Elastic
	}
	if c.Speed > 0 {
		opts.Speed = c.Speed
	}
	if c.Mass > 0 {
		opts.Mass = c.Mass
	}
	opts.StartIndex = c.StartIndex
	if c.WatchResize != nil {
		opts.WatchResize = resize.Watch(*c.WatchResize)
	}

	container, slides, err := c.Layout.Rects(axis)
	if err != nil {
		return nil, err
	}
	return &Resolved{
		Options:   opts,
		Container: container,
		Slides:    slides,
	}, nil
}

// Rects returns the container and slide rects. An empty layout resolves to
// the default layout.
func (l LayoutConfig) Rects(axis geometry.Axis) (geometry.Rect, []geometry.Rect, error) {
	if l.Container == (RectConfig{}) && len(l.Slides) == 0 && len(l.SlideSizes) == 0 {
		l = defaultLayout
	}
	if l.Container.Width <= 0 || l.Container.Height <= 0 {
		return geometry.Rect{}, nil, fmt.Errorf("layout.container must have a positive size, got %vx%v", l.Container.Width, l.Container.Height)
	}
	if len(l.Slides) > 0 && len(l.SlideSizes) > 0 {
		return geometry.Rect{}, nil, fmt.Errorf("layout.slides and layout.slide_sizes are mutually exclusive")
	}
	if l.Gap < 0 {
		return geometry.Rect{}, nil, fmt.Errorf("layout.gap must not be negative, got %v", l.Gap)
	}

	container := l.Container.rect()
	var slides []geometry.Rect
	for i, s := range l.Slides {
		if s.Width < 0 || s.Height < 0 {
			return geometry.Rect{}, nil, fmt.Errorf("layout.slides[%d] has a negative size", i)
		}
		slides = append(slides, s.rect())
	}

	offset := axis.Start(container)
	for i, size := range l.SlideSizes {
		if size < 0 {
			return geometry.Rect{}, nil, fmt.Errorf("layout.slide_sizes[%d] is negative", i)
		}
		if axis == geometry.AxisVertical {
			slides = append(slides, geometry.RectFromLTWH(container.Left, offset, container.Width(), size))
		} else {
			slides = append(slides, geometry.RectFromLTWH(offset, container.Top, size, container.Height()))
		}
		offset += size + l.Gap
	}
	return container, slides, nil
}

// DefaultName derives a carousel name from the go.mod in dir, falling back
// to the directory name.
func DefaultName(dir string) string {
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	base := filepath.Base(dir)
	if data, err := os.ReadFile(filepath.Join(dir, "go.mod")); err == nil {
		if path := modfile.ModulePath(data); path != "" {
			modName, _, ok := module.SplitPathVersion(path)
			if ok {
				parts := strings.Split(modName, "/")
				base = parts[len(parts)-1]
			}
		}
	}
	name := sanitizeName(base)
	if name == "" {
		return "carousel"
	}
	return name
}

// sanitizeName keeps lowercase letters, digits and underscores so the name
// works as a metric label and log field.
func sanitizeName(s string) string {
	var out []rune
	for _, r := range strings.TrimSpace(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			out = append(out, r)
		case r >= 'A' && r <= 'Z':
			out = append(out, r+('a'-'A'))
		case r == '-' || r == '.':
			out = append(out, '_')
		}
	}
	return string(out)
}
