package carousel

import (
	"sync"

	"github.com/go-drift/carousel/pkg/resize"
)

// Event names emitted by an Engine.
const (
	EventInit        = "init"
	EventReInit      = "reInit"
	EventDestroy     = "destroy"
	EventSelect      = "select"
	EventScroll      = "scroll"
	EventSettle      = "settle"
	EventResize      = resize.EventResize
	EventPointerDown = "pointerDown"
	EventPointerUp   = "pointerUp"
)

// Listener is called with the emitting engine and the event name.
type Listener func(e *Engine, event string)

// EventHandler dispatches named events to listeners.
type EventHandler struct {
	engine *Engine
	// publish mirrors every emission, set by the engine to its capitan bridge.
	publish func(event string)

	mu        sync.Mutex
	listeners map[string]map[int]Listener
	order     map[string][]int
	nextID    int
}

func newEventHandler(engine *Engine, publish func(string)) *EventHandler {
	return &EventHandler{
		engine:    engine,
		publish:   publish,
		listeners: make(map[string]map[int]Listener),
		order:     make(map[string][]int),
	}
}

// On registers listener for event and returns a function that removes it.
func (h *EventHandler) On(event string, listener Listener) func() {
	if listener == nil {
		return func() {}
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.listeners[event] == nil {
		h.listeners[event] = make(map[int]Listener)
	}
	id := h.nextID
	h.nextID++
	h.listeners[event][id] = listener
	h.order[event] = append(h.order[event], id)
	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.listeners[event], id)
	}
}

// Emit calls the listeners of event in registration order.
func (h *EventHandler) Emit(event string) {
	h.mu.Lock()
	var listeners []Listener
	var live []int
	for _, id := range h.order[event] {
		if l, ok := h.listeners[event][id]; ok {
			listeners = append(listeners, l)
			live = append(live, id)
		}
	}
	h.order[event] = live
	h.mu.Unlock()

	if h.publish != nil {
		h.publish(event)
	}
	for _, l := range listeners {
		l(h.engine, event)
	}
}

// Clear removes every listener.
func (h *EventHandler) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.listeners = make(map[string]map[int]Listener)
	h.order = make(map[string][]int)
}
