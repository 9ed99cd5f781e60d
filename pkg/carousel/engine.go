package carousel

import (
	"context"
	"fmt"
	"time"

	"github.com/go-drift/carousel/pkg/animation"
	"github.com/go-drift/carousel/pkg/errors"
	"github.com/go-drift/carousel/pkg/motion"
	"github.com/go-drift/carousel/pkg/resize"
	"github.com/zoobzio/clockz"
)

// Engine drives one carousel track.
type Engine struct {
	container Node
	slides    []Node
	opts      Options
	clock     clockz.Clock
	queue     *resize.Queue
	metrics   *Metrics

	scheduler *animation.Scheduler
	ticker    *animation.Ticker
	events    *EventHandler

	layout   trackLayout
	location *motion.Vector1D
	target   *motion.Vector1D
	body     *motion.ScrollBody
	bounds   *motion.ScrollBounds
	looper   *motion.ScrollLooper
	tracked  []*motion.Vector1D
	resizer  *resize.Handler

	pointerDown bool
	selected    int
	previous    int
	active      bool
	destroyed   bool
	reInitDone  bool
}

// New creates an engine for container and slides. Nothing is measured
// until Init.
func New(container Node, slides []Node, opts Options, deps Dependencies) *Engine {
	clock := deps.Clock
	if clock == nil {
		clock = clockz.RealClock
	}
	e := &Engine{
		container: container,
		slides:    append([]Node(nil), slides...),
		opts:      opts.withDefaults(),
		clock:     clock,
		metrics:   deps.Metrics,
		location:  motion.NewVector1D(0),
		target:    motion.NewVector1D(0),
	}
	if deps.Observer != nil {
		e.queue = resize.NewQueue(deps.Observer)
	}
	e.scheduler = animation.NewScheduler(clock)
	e.ticker = e.scheduler.NewTicker(func(time.Duration) { e.animate() })
	e.events = newEventHandler(e, e.publish)
	return e
}

// Init measures the track, positions it on StartIndex and starts watching
// for resizes. Calling Init on an active engine does nothing.
func (e *Engine) Init() error {
	if e.destroyed {
		return &errors.CarouselError{
			Op:   "carousel.Init",
			Kind: errors.KindConfig,
			Err:  fmt.Errorf("engine %q is destroyed", e.opts.Name),
		}
	}
	if e.active {
		return nil
	}
	layout, err := measureTrack(e.container, e.slides, e.opts.Axis, e.opts.Loop)
	if err != nil {
		return err
	}
	e.selected = e.opts.StartIndex
	if err := e.activate(layout); err != nil {
		return err
	}
	e.events.Emit(EventInit)
	return nil
}

func (e *Engine) activate(layout trackLayout) error {
	e.applyLayout(layout)
	resizer, err := e.watch()
	if err != nil {
		return err
	}
	e.resizer = resizer
	e.active = true
	return nil
}

// applyLayout installs layout and rebuilds the motion components on the
// selected snap.
func (e *Engine) applyLayout(layout trackLayout) {
	e.layout = layout
	if e.selected >= len(layout.snaps) {
		e.selected = len(layout.snaps) - 1
	}
	e.previous = e.selected
	e.location.Set(layout.snaps[e.selected])
	e.target.Set(layout.snaps[e.selected])
	e.pointerDown = false

	e.body = motion.NewScrollBody(e.location, e.opts.Speed, e.opts.Mass)
	e.bounds = motion.NewScrollBounds(layout.limit, e.location, e.body)
	e.bounds.ToggleActive(e.opts.Elastic)
	e.looper = nil
	if layout.loop {
		e.looper = motion.NewScrollLooper(layout.contentSize, layout.pxToPercent, layout.limit, e.location)
	}
}

// watch builds a resize handler baselined on the current sizes and
// subscribes it.
func (e *Engine) watch() (*resize.Handler, error) {
	var observer resize.Observer
	if e.queue != nil {
		observer = e.queue
	}
	resizer := resize.NewHandler(e.container, e.slides, e.opts.Axis, emitterFunc(e.emitResize), observer)
	if err := resizer.Init(e, e.opts.WatchResize); err != nil {
		return nil, err
	}
	return resizer, nil
}

func (e *Engine) deactivate() {
	if e.resizer != nil {
		e.resizer.Destroy()
	}
	e.ticker.Stop()
	e.active = false
}

// ReInit re-measures the track and rebuilds every motion component,
// keeping the selected snap. A failed measurement is reported and the
// previous layout stays in place. A failed resize subscription is reported
// too; the new layout is kept and the previous handler goes on watching,
// so the next size change retries.
func (e *Engine) ReInit() {
	if e.destroyed || !e.active {
		return
	}
	layout, err := measureTrack(e.container, e.slides, e.opts.Axis, e.opts.Loop)
	if err != nil {
		errors.Report(err)
		return
	}
	e.ticker.Stop()
	e.applyLayout(layout)
	if resizer, err := e.watch(); err != nil {
		report("carousel.ReInit", err)
	} else {
		if e.resizer != nil {
			e.resizer.Destroy()
		}
		e.resizer = resizer
	}
	e.reInitDone = true
	e.metrics.reInit(e.opts.Name)
	e.events.Emit(EventReInit)
}

// Destroy stops the resize handler and the animation, emits "destroy" and
// drops every listener. Calling Destroy more than once is safe.
func (e *Engine) Destroy() {
	if e.destroyed {
		return
	}
	if e.active {
		e.deactivate()
	}
	if e.queue != nil {
		e.queue.Close()
	}
	e.destroyed = true
	e.events.Emit(EventDestroy)
	e.events.Clear()
}

func (e *Engine) emitResize(name string) {
	e.metrics.resize(e.opts.Name)
	e.events.Emit(name)
}

// Frame runs one frame: queued resize batches first, then the animation.
// A frame that re-initialized the track does no motion work.
func (e *Engine) Frame() {
	if e.destroyed {
		return
	}
	if e.flushResize() {
		return
	}
	e.scheduler.Step()
}

func (e *Engine) flushResize() bool {
	if e.queue == nil {
		return false
	}
	e.reInitDone = false
	e.queue.Flush()
	return e.reInitDone
}

// Run calls Frame every interval until ctx is done, waking early when a
// resize batch arrives. A non-positive interval uses
// animation.DefaultFrameInterval.
func (e *Engine) Run(ctx context.Context, interval time.Duration) {
	loop := animation.NewFrameLoop(e.clock, interval, e.Frame)
	if e.queue != nil {
		loop.WakeOn(e.queue.Ready())
	}
	loop.Run(ctx)
}

// animate is one motion step: constrain, integrate, settle, loop.
func (e *Engine) animate() {
	if !e.active {
		e.ticker.Stop()
		return
	}
	name := e.opts.Name
	pointerDown := e.pointerDown

	if !e.layout.loop {
		if e.opts.Elastic {
			e.bounds.Constrain(e.target, pointerDown)
		} else {
			e.target.Set(e.layout.limit.Constrain(e.target.Get()))
		}
	}

	e.body.Seek(e.target).Update()
	settled := e.body.Settle(e.target)

	if e.looper != nil {
		direction := e.body.Direction()
		if e.looper.Loop(e.loopVectors(), direction) {
			e.metrics.loop(name, direction)
		}
	}
	e.metrics.frame(name)

	if !settled {
		e.events.Emit(EventScroll)
	}
	e.updateSelection()
	if e.destroyed {
		return
	}

	if settled && !pointerDown {
		e.ticker.Stop()
		e.body.UseBaseSpeed().UseBaseMass()
		e.metrics.settle(name)
		e.events.Emit(EventSettle)
	}
}

func (e *Engine) loopVectors() []*motion.Vector1D {
	vectors := make([]*motion.Vector1D, 0, len(e.tracked)+2)
	vectors = append(vectors, e.location, e.target)
	return append(vectors, e.tracked...)
}

func (e *Engine) updateSelection() {
	index, _ := e.layout.nearestSnap(e.location.Get())
	if index == e.selected {
		return
	}
	e.previous = e.selected
	e.selected = index
	e.events.Emit(EventSelect)
}

// PointerDown grabs the track. Motion stops where the track currently is.
func (e *Engine) PointerDown() {
	if !e.active {
		return
	}
	e.pointerDown = true
	e.body.UseBaseSpeed().UseBaseMass()
	e.target.Set(e.location.Get())
	e.ticker.Start()
	e.events.Emit(EventPointerDown)
}

// DragBy moves the target by px along the axis while the pointer is down.
func (e *Engine) DragBy(px float64) {
	if !e.active || !e.pointerDown {
		return
	}
	e.target.Add(e.layout.pxToPercent.Measure(px))
	e.ticker.Start()
}

// PointerUp releases the track with a fling of forcePx. Drag-free tracks
// glide by the force; others snap to the snap nearest the landing point.
func (e *Engine) PointerUp(forcePx float64) {
	if !e.active || !e.pointerDown {
		return
	}
	e.pointerDown = false
	force := e.layout.pxToPercent.Measure(forcePx)
	if e.opts.DragFree {
		e.target.Add(force)
	} else {
		_, diff := e.layout.nearestSnap(e.target.Get() + force)
		e.target.Add(force + diff)
	}
	e.ticker.Start()
	e.events.Emit(EventPointerUp)
}

// ScrollTo animates to snap index. Looping tracks wrap the index and take
// the shortest way round; finite tracks clamp it.
func (e *Engine) ScrollTo(index int) {
	if !e.active {
		return
	}
	index = e.normalizeIndex(index)
	e.body.UseBaseSpeed().UseBaseMass()
	e.target.Add(e.layout.distanceTo(e.target.Get(), index))
	e.ticker.Start()
}

// ScrollNext animates to the snap after the one the track is heading to.
func (e *Engine) ScrollNext() {
	e.ScrollTo(e.targetIndex() + 1)
}

// ScrollPrev animates to the snap before the one the track is heading to.
func (e *Engine) ScrollPrev() {
	e.ScrollTo(e.targetIndex() - 1)
}

func (e *Engine) targetIndex() int {
	index, _ := e.layout.nearestSnap(e.target.Get())
	return index
}

func (e *Engine) normalizeIndex(index int) int {
	n := len(e.layout.snaps)
	if e.layout.loop {
		return ((index % n) + n) % n
	}
	return max(0, min(index, n-1))
}

// CanScrollNext reports whether ScrollNext would move the track.
func (e *Engine) CanScrollNext() bool {
	return e.layout.loop || e.targetIndex() < len(e.layout.snaps)-1
}

// CanScrollPrev reports whether ScrollPrev would move the track.
func (e *Engine) CanScrollPrev() bool {
	return e.layout.loop || e.targetIndex() > 0
}

// Track registers v to be shifted together with the track on every loop.
// The returned function stops tracking it.
func (e *Engine) Track(v *motion.Vector1D) func() {
	e.tracked = append(e.tracked, v)
	return func() {
		for i, t := range e.tracked {
			if t == v {
				e.tracked = append(e.tracked[:i], e.tracked[i+1:]...)
				return
			}
		}
	}
}

// On registers listener for event. The returned function removes it.
func (e *Engine) On(event string, listener Listener) func() {
	return e.events.On(event, listener)
}

// Location returns the current track position in percent of the view.
func (e *Engine) Location() float64 { return e.location.Get() }

// Target returns the position the track is moving toward.
func (e *Engine) Target() float64 { return e.target.Get() }

// Limit returns the travel range.
func (e *Engine) Limit() motion.Limit { return e.layout.limit }

// ContentSize returns the total slide extent in percent of the view.
func (e *Engine) ContentSize() float64 { return e.layout.contentSize }

// ViewSize returns the container size along the axis in pixels.
func (e *Engine) ViewSize() float64 { return e.layout.viewSize }

// ScrollSnaps returns a copy of the snap positions.
func (e *Engine) ScrollSnaps() []float64 {
	return append([]float64(nil), e.layout.snaps...)
}

// SelectedIndex returns the snap closest to the location.
func (e *Engine) SelectedIndex() int { return e.selected }

// PreviousIndex returns the snap selected before the last "select".
func (e *Engine) PreviousIndex() int { return e.previous }

// Looping reports whether the track wraps. This can be false with
// Options.Loop set when the content is too short to loop.
func (e *Engine) Looping() bool { return e.layout.loop }

// Animating reports whether the track is moving or held.
func (e *Engine) Animating() bool { return e.ticker.IsActive() }

// PointerIsDown reports whether a drag is in progress.
func (e *Engine) PointerIsDown() bool { return e.pointerDown }

// ResizeState returns the resize handler's lifecycle state.
func (e *Engine) ResizeState() resize.State {
	if e.resizer == nil {
		return resize.StateIdle
	}
	return e.resizer.State()
}

// PendingResizes returns the number of queued observer batches.
func (e *Engine) PendingResizes() int {
	if e.queue == nil {
		return 0
	}
	return e.queue.Pending()
}

type emitterFunc func(name string)

func (f emitterFunc) Emit(name string) { f(name) }

func report(op string, err error) {
	if ce, ok := err.(*errors.CarouselError); ok {
		errors.Report(ce)
		return
	}
	errors.Report(&errors.CarouselError{Op: op, Err: err})
}
