package cmd

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/go-drift/carousel/pkg/carousel"
	"github.com/zoobzio/capitan"
)

// hookSignals prints carousel lifecycle signals as structured lines.
func hookSignals(w io.Writer) {
	var mu sync.Mutex
	printf := func(format string, args ...any) {
		mu.Lock()
		defer mu.Unlock()
		fmt.Fprintf(w, format, args...)
	}

	capitan.Hook(carousel.SignalInit, func(_ context.Context, e *capitan.Event) {
		name, _ := carousel.KeyCarousel.From(e)
		snaps, _ := carousel.KeySnaps.From(e)
		index, _ := carousel.KeyIndex.From(e)
		printf("event=init carousel=%s snaps=%d index=%d\n", name, snaps, index)
	})
	capitan.Hook(carousel.SignalReInit, func(_ context.Context, e *capitan.Event) {
		name, _ := carousel.KeyCarousel.From(e)
		snaps, _ := carousel.KeySnaps.From(e)
		index, _ := carousel.KeyIndex.From(e)
		printf("event=reinit carousel=%s snaps=%d index=%d\n", name, snaps, index)
	})
	capitan.Hook(carousel.SignalResize, func(_ context.Context, e *capitan.Event) {
		name, _ := carousel.KeyCarousel.From(e)
		printf("event=resize carousel=%s\n", name)
	})
	capitan.Hook(carousel.SignalSelect, func(_ context.Context, e *capitan.Event) {
		name, _ := carousel.KeyCarousel.From(e)
		index, _ := carousel.KeyIndex.From(e)
		printf("event=select carousel=%s index=%d\n", name, index)
	})
	capitan.Hook(carousel.SignalSettle, func(_ context.Context, e *capitan.Event) {
		name, _ := carousel.KeyCarousel.From(e)
		index, _ := carousel.KeyIndex.From(e)
		printf("event=settle carousel=%s index=%d\n", name, index)
	})
	capitan.Hook(carousel.SignalDestroy, func(_ context.Context, e *capitan.Event) {
		name, _ := carousel.KeyCarousel.From(e)
		printf("event=destroy carousel=%s\n", name)
	})
}
