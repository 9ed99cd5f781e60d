package carousel

import (
	"github.com/go-drift/carousel/pkg/geometry"
	"github.com/go-drift/carousel/pkg/resize"
	"github.com/zoobzio/clockz"
)

// Default motion tuning.
const (
	DefaultSpeed = 10.0
	DefaultMass  = 1.0
)

// Options configures an Engine.
type Options struct {
	// Name labels metrics and signals. Defaults to "carousel".
	Name string

	// Axis selects the scroll direction.
	Axis geometry.Axis

	// Loop wraps the track around its ends. It falls back to a finite track
	// when the slides are too short to fill the view after one wrap.
	Loop bool

	// DragFree lets a released drag glide to its force target instead of
	// snapping to the nearest slide.
	DragFree bool

	// Elastic applies edge resistance on finite tracks. When false the
	// target is clamped to the limit every frame.
	Elastic bool

	// Speed and Mass tune the scroll body integrator.
	Speed float64
	Mass  float64

	// StartIndex is the snap selected on Init.
	StartIndex int

	// WatchResize controls the resize handler.
	WatchResize resize.WatchOption
}

// DefaultOptions returns elastic, resize-watching options with default
// tuning.
func DefaultOptions() Options {
	return Options{
		Name:        "carousel",
		Elastic:     true,
		Speed:       DefaultSpeed,
		Mass:        DefaultMass,
		WatchResize: resize.Watch(true),
	}
}

func (o Options) withDefaults() Options {
	if o.Name == "" {
		o.Name = "carousel"
	}
	if o.Speed <= 0 {
		o.Speed = DefaultSpeed
	}
	if o.Mass <= 0 {
		o.Mass = DefaultMass
	}
	if o.StartIndex < 0 {
		o.StartIndex = 0
	}
	return o
}

// Dependencies are the collaborators an Engine borrows.
type Dependencies struct {
	// Observer delivers size changes. Required when WatchResize is enabled.
	Observer resize.Observer

	// Clock drives the scheduler and Run. Defaults to clockz.RealClock.
	Clock clockz.Clock

	// Metrics records engine activity. May be nil.
	Metrics *Metrics
}
