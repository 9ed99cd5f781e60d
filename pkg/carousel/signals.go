package carousel

import (
	"context"

	"github.com/zoobzio/capitan"
)

// Carousel lifecycle signals.
var (
	// SignalInit is emitted when an engine finishes its first measurement.
	SignalInit = capitan.NewSignal("carousel.init", "Carousel initialized")

	// SignalReInit is emitted after a full re-measurement.
	SignalReInit = capitan.NewSignal("carousel.reinit", "Carousel re-initialized")

	// SignalDestroy is emitted when an engine is torn down.
	SignalDestroy = capitan.NewSignal("carousel.destroy", "Carousel destroyed")

	// SignalResize is emitted when a genuine size change triggered a re-init.
	SignalResize = capitan.NewSignal("carousel.resize", "Container or slide size changed")
)

// Motion signals.
var (
	// SignalSelect is emitted when the snap closest to the location changes.
	SignalSelect = capitan.NewSignal("carousel.select", "Selected snap changed")

	// SignalSettle is emitted when a released track comes to rest.
	SignalSettle = capitan.NewSignal("carousel.settle", "Track settled")

	// SignalPointerDown is emitted when a drag starts.
	SignalPointerDown = capitan.NewSignal("carousel.pointer.down", "Pointer pressed")

	// SignalPointerUp is emitted when a drag is released.
	SignalPointerUp = capitan.NewSignal("carousel.pointer.up", "Pointer released")
)

// Field keys for carousel signals.
var (
	// KeyCarousel is the engine name.
	KeyCarousel = capitan.NewStringKey("carousel")

	// KeyIndex is the selected snap index.
	KeyIndex = capitan.NewIntKey("index")

	// KeySnaps is the number of scroll snaps.
	KeySnaps = capitan.NewIntKey("snaps")
)

// publish mirrors an engine event onto its capitan signal. Per-frame
// "scroll" events are not mirrored.
func (e *Engine) publish(event string) {
	ctx := context.Background()
	name := KeyCarousel.Field(e.opts.Name)
	index := KeyIndex.Field(e.selected)
	snaps := KeySnaps.Field(len(e.layout.snaps))

	switch event {
	case EventInit:
		capitan.Emit(ctx, SignalInit, name, index, snaps)
	case EventReInit:
		capitan.Emit(ctx, SignalReInit, name, index, snaps)
	case EventDestroy:
		capitan.Emit(ctx, SignalDestroy, name)
	case EventResize:
		capitan.Emit(ctx, SignalResize, name, snaps)
	case EventSelect:
		capitan.Emit(ctx, SignalSelect, name, index)
	case EventSettle:
		capitan.Emit(ctx, SignalSettle, name, index)
	case EventPointerDown:
		capitan.Emit(ctx, SignalPointerDown, name)
	case EventPointerUp:
		capitan.Emit(ctx, SignalPointerUp, name)
	}
}
