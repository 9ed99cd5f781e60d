package testing

import (
	"errors"
	"testing"
	"time"

	"github.com/go-drift/carousel/pkg/carousel"
	"github.com/go-drift/carousel/pkg/geometry"
	"github.com/go-drift/carousel/pkg/resize"
	"github.com/zoobzio/clockz"
)

const (
	// FrameDuration is how far the fake clock advances per pumped frame.
	FrameDuration = 16 * time.Millisecond
	// CrossSize is the size of every node across the scroll axis.
	CrossSize = 100
)

// ErrSettleTimeout is returned when PumpAndSettle exceeds its timeout.
var ErrSettleTimeout = errors.New("PumpAndSettle timed out: carousel did not settle")

// FrameState is the engine state after one pumped frame.
type FrameState struct {
	Location float64 `json:"location"`
	Target   float64 `json:"target"`
	Selected int     `json:"selected"`
}

// CarouselTester drives an engine over fake nodes with a fake clock.
type CarouselTester struct {
	Engine    *carousel.Engine
	Container *Node
	Slides    []*Node
	Observer  *ManualObserver
	Recorder  *EventRecorder

	clock  *clockz.FakeClock
	frames []FrameState
}

// NewCarouselTester lays slides end to end along opts.Axis inside a view
// of viewSize and initializes an engine over them. Resize watching uses
// the tester's manual observer.
func NewCarouselTester(opts carousel.Options, viewSize float64, slideSizes ...float64) (*CarouselTester, error) {
	container := NewNode("container", nodeRect(opts.Axis, 0, viewSize))
	slides := make([]*Node, len(slideSizes))
	nodes := make([]resize.Node, len(slideSizes))
	offset := 0.0
	for i, size := range slideSizes {
		slides[i] = NewNode("slide", nodeRect(opts.Axis, offset, size))
		nodes[i] = slides[i]
		offset += size
	}

	clock := clockz.NewFakeClock()
	observer := NewManualObserver()
	engine := carousel.New(container, nodes, opts, carousel.Dependencies{
		Observer: observer,
		Clock:    clock,
	})
	recorder := Record(engine)
	if err := engine.Init(); err != nil {
		return nil, err
	}
	return &CarouselTester{
		Engine:    engine,
		Container: container,
		Slides:    slides,
		Observer:  observer,
		Recorder:  recorder,
		clock:     clock,
	}, nil
}

// NewCarouselTesterWithT creates a tester that fails t on setup errors and
// destroys the engine via t.Cleanup().
func NewCarouselTesterWithT(t *testing.T, opts carousel.Options, viewSize float64, slideSizes ...float64) *CarouselTester {
	t.Helper()
	tester, err := NewCarouselTester(opts, viewSize, slideSizes...)
	if err != nil {
		t.Fatalf("NewCarouselTester: %v", err)
	}
	t.Cleanup(tester.Engine.Destroy)
	return tester
}

func nodeRect(axis geometry.Axis, offset, size float64) geometry.Rect {
	if axis == geometry.AxisVertical {
		return geometry.RectFromLTWH(0, offset, CrossSize, size)
	}
	return geometry.RectFromLTWH(offset, 0, size, CrossSize)
}

// Clock returns the fake clock for advancing time in tests.
func (t *CarouselTester) Clock() *clockz.FakeClock {
	return t.clock
}

// Pump advances the clock by one frame and runs it.
func (t *CarouselTester) Pump() {
	t.clock.Advance(FrameDuration)
	t.Engine.Frame()
	t.frames = append(t.frames, FrameState{
		Location: t.Engine.Location(),
		Target:   t.Engine.Target(),
		Selected: t.Engine.SelectedIndex(),
	})
}

// PumpFrames runs n frames.
func (t *CarouselTester) PumpFrames(n int) {
	for range n {
		t.Pump()
	}
}

// PumpAndSettle runs frames until the engine stops animating and no resize
// batch is pending, or timeout of simulated time has passed.
func (t *CarouselTester) PumpAndSettle(timeout time.Duration) error {
	var elapsed time.Duration
	for elapsed < timeout {
		t.Pump()
		elapsed += FrameDuration
		if !t.Engine.Animating() && t.Engine.PendingResizes() == 0 {
			return nil
		}
	}
	return ErrSettleTimeout
}

// Drag presses the pointer, moves it by total pixels over steps frames and
// releases it with force pixels of fling.
func (t *CarouselTester) Drag(total float64, steps int, force float64) {
	if steps < 1 {
		steps = 1
	}
	t.Engine.PointerDown()
	for range steps {
		t.Engine.DragBy(total / float64(steps))
		t.Pump()
	}
	t.Engine.PointerUp(force)
}

// Frames returns the state recorded after every pumped frame.
func (t *CarouselTester) Frames() []FrameState {
	return append([]FrameState(nil), t.frames...)
}
