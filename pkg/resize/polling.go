package resize

import (
	"context"
	"time"

	"github.com/go-drift/carousel/pkg/geometry"
	"github.com/zoobzio/clockz"
)

// DefaultPollInterval is the polling period used when none is configured.
const DefaultPollInterval = 100 * time.Millisecond

// PollingObserver re-reads node rects on a fixed interval and delivers one
// batch holding every node whose rect changed since the previous poll.
// It suits hosts without a native resize notification.
type PollingObserver struct {
	interval time.Duration
	clock    clockz.Clock
}

// NewPollingObserver creates an observer polling every interval.
func NewPollingObserver(interval time.Duration) *PollingObserver {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &PollingObserver{
		interval: interval,
		clock:    clockz.RealClock,
	}
}

// WithClock sets the clock used for the polling timer.
// Use this with clockz.FakeClock for deterministic tests.
func (p *PollingObserver) WithClock(clock clockz.Clock) *PollingObserver {
	p.clock = clock
	return p
}

// Observe starts polling nodes. The returned function stops polling; a poll
// already in progress may still deliver its batch.
func (p *PollingObserver) Observe(nodes []Node, callback func([]Entry)) (func(), error) {
	watched := append([]Node(nil), nodes...)
	last := make([]geometry.Rect, len(watched))
	for i, node := range watched {
		last[i] = node.BoundingRect()
	}

	ctx, cancel := context.WithCancel(context.Background())
	timer := p.clock.NewTimer(p.interval)

	go func() {
		defer timer.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-timer.C():
				timer.Reset(p.interval)

				var changed []Entry
				for i, node := range watched {
					rect := node.BoundingRect()
					if rect != last[i] {
						last[i] = rect
						changed = append(changed, Entry{Target: node, Rect: rect})
					}
				}
				if len(changed) > 0 && ctx.Err() == nil {
					callback(changed)
				}
			}
		}
	}()

	return cancel, nil
}
