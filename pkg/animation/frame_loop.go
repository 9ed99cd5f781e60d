package animation

import (
	"context"
	"time"

	"github.com/go-drift/carousel/pkg/errors"
	"github.com/zoobzio/clockz"
)

// DefaultFrameInterval targets 60 frames per second.
const DefaultFrameInterval = time.Second / 60

// FrameLoop calls a frame function at a fixed interval.
type FrameLoop struct {
	clock    clockz.Clock
	interval time.Duration
	frame    func()
	wake     <-chan struct{}
}

// NewFrameLoop creates a loop calling frame every interval. A nil clock uses
// clockz.RealClock and a non-positive interval uses DefaultFrameInterval.
func NewFrameLoop(clock clockz.Clock, interval time.Duration, frame func()) *FrameLoop {
	if clock == nil {
		clock = clockz.RealClock
	}
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	return &FrameLoop{
		clock:    clock,
		interval: interval,
		frame:    frame,
	}
}

// WakeOn runs an extra frame whenever ch receives, without waiting for the
// next interval. Resize queues use it to react between frames.
func (l *FrameLoop) WakeOn(ch <-chan struct{}) *FrameLoop {
	l.wake = ch
	return l
}

// Run calls the frame function until ctx is done. A panicking frame is
// reported through the error handler and the loop keeps running.
func (l *FrameLoop) Run(ctx context.Context) {
	timer := l.clock.NewTimer(l.interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C():
			timer.Reset(l.interval)
			l.runFrame()
		case <-l.wake:
			l.runFrame()
		}
	}
}

func (l *FrameLoop) runFrame() {
	defer errors.Recover("animation.FrameLoop")
	if l.frame != nil {
		l.frame()
	}
}
