package testing

import (
	"sync"

	"github.com/go-drift/carousel/pkg/carousel"
)

// AllEvents lists every event an engine emits.
var AllEvents = []string{
	carousel.EventInit,
	carousel.EventReInit,
	carousel.EventDestroy,
	carousel.EventSelect,
	carousel.EventScroll,
	carousel.EventSettle,
	carousel.EventResize,
	carousel.EventPointerDown,
	carousel.EventPointerUp,
}

// EventRecorder collects engine events in emission order.
type EventRecorder struct {
	mu     sync.Mutex
	events []string
	remove []func()
}

// Record subscribes to events on engine. With no names every event is
// recorded.
func Record(engine *carousel.Engine, names ...string) *EventRecorder {
	if len(names) == 0 {
		names = AllEvents
	}
	r := &EventRecorder{}
	for _, name := range names {
		r.remove = append(r.remove, engine.On(name, r.listen))
	}
	return r
}

func (r *EventRecorder) listen(_ *carousel.Engine, event string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

// Events returns a copy of the recorded events.
func (r *EventRecorder) Events() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.events...)
}

// Count returns how many times event was recorded.
func (r *EventRecorder) Count(event string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.events {
		if e == event {
			n++
		}
	}
	return n
}

// Reset forgets recorded events.
func (r *EventRecorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}

// Stop unsubscribes from the engine.
func (r *EventRecorder) Stop() {
	for _, remove := range r.remove {
		remove()
	}
	r.remove = nil
}
