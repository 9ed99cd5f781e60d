package animation

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-drift/carousel/pkg/errors"
	"github.com/zoobzio/clockz"
)

type silentHandler struct {
	panics atomic.Int32
}

func (h *silentHandler) HandleError(*errors.CarouselError) {}

func (h *silentHandler) HandlePanic(*errors.PanicError) {
	h.panics.Add(1)
}

func TestFrameLoopRunsFramesOnInterval(t *testing.T) {
	clock := clockz.NewFakeClock()
	frames := make(chan struct{}, 8)
	loop := NewFrameLoop(clock, 16*time.Millisecond, func() {
		frames <- struct{}{}
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		loop.Run(ctx)
		close(done)
	}()

	// Let Run create its timer before moving the clock.
	time.Sleep(10 * time.Millisecond)
	clock.Advance(16 * time.Millisecond)
	clock.BlockUntilReady()

	select {
	case <-frames:
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for frame")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestFrameLoopWake(t *testing.T) {
	wake := make(chan struct{}, 1)
	frames := make(chan struct{}, 1)
	loop := NewFrameLoop(clockz.NewFakeClock(), time.Hour, func() {
		frames <- struct{}{}
	}).WakeOn(wake)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go loop.Run(ctx)

	wake <- struct{}{}
	select {
	case <-frames:
	case <-time.After(time.Second):
		t.Fatal("wake did not run a frame")
	}
}

func TestFrameLoopRecoversPanics(t *testing.T) {
	h := &silentHandler{}
	old := errors.SetHandler(h)
	defer errors.SetHandler(old)

	wake := make(chan struct{}, 1)
	frames := make(chan struct{}, 2)
	count := 0
	loop := NewFrameLoop(clockz.NewFakeClock(), time.Hour, func() {
		count++
		frames <- struct{}{}
		if count == 1 {
			panic("bad frame")
		}
	}).WakeOn(wake)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go loop.Run(ctx)

	for i := 0; i < 2; i++ {
		wake <- struct{}{}
		select {
		case <-frames:
		case <-time.After(time.Second):
			t.Fatalf("frame %d did not run", i)
		}
	}
	if h.panics.Load() != 1 {
		t.Errorf("reported panics = %d, want 1", h.panics.Load())
	}
}

func TestNewFrameLoopDefaults(t *testing.T) {
	loop := NewFrameLoop(nil, 0, nil)
	if loop.interval != DefaultFrameInterval {
		t.Errorf("interval = %v, want %v", loop.interval, DefaultFrameInterval)
	}
	if loop.clock == nil {
		t.Error("nil clock should default to the real clock")
	}
	loop.runFrame()
}
