package resize

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/go-drift/carousel/pkg/errors"
	"github.com/go-drift/carousel/pkg/geometry"
)

// EventResize is emitted once per batch that triggered a re-init.
const EventResize = "resize"

// API is the carousel handle passed to the handler and custom callbacks.
type API interface {
	ReInit()
}

// Emitter receives the "resize" notification.
type Emitter interface {
	Emit(name string)
}

// State is the lifecycle state of a Handler.
type State int

const (
	StateIdle State = iota
	StateWatching
	StateDestroyed
)

func (s State) String() string {
	switch s {
	case StateWatching:
		return "watching"
	case StateDestroyed:
		return "destroyed"
	default:
		return "idle"
	}
}

// Handler detects genuine size changes of a container and its slides.
type Handler struct {
	container Node
	slides    []Node
	axis      geometry.Axis
	emitter   Emitter
	observer  Observer

	mu            sync.Mutex
	state         State
	disconnect    func()
	containerSize float64
	slideSizes    []float64

	destroyed atomic.Bool
}

// NewHandler creates a handler for container and slides. Sizes are read
// along axis. observer may be nil when watching is never enabled.
func NewHandler(container Node, slides []Node, axis geometry.Axis, emitter Emitter, observer Observer) *Handler {
	return &Handler{
		container: container,
		slides:    slides,
		axis:      axis,
		emitter:   emitter,
		observer:  observer,
	}
}

func (h *Handler) readSize(node Node) float64 {
	return h.axis.MeasureSize(node.BoundingRect())
}

// Init records the baseline sizes and starts observing when option is
// enabled. A disabled option leaves the handler idle.
func (h *Handler) Init(api API, option WatchOption) error {
	if !option.Enabled() {
		return nil
	}
	if h.destroyed.Load() {
		return nil
	}
	if h.observer == nil {
		return &errors.CarouselError{
			Op:   "resize.Handler.Init",
			Kind: errors.KindConfig,
			Err:  fmt.Errorf("watch mode %s requires an observer", option.Mode()),
		}
	}

	h.mu.Lock()
	h.containerSize = h.readSize(h.container)
	h.slideSizes = make([]float64, len(h.slides))
	for i, slide := range h.slides {
		h.slideSizes[i] = h.readSize(slide)
	}
	h.mu.Unlock()

	nodes := make([]Node, 0, len(h.slides)+1)
	nodes = append(nodes, h.container)
	nodes = append(nodes, h.slides...)

	disconnect, err := h.observer.Observe(nodes, func(entries []Entry) {
		if h.destroyed.Load() {
			return
		}
		if option.mode == WatchCustom {
			option.callback(entries, api)
			return
		}
		h.compare(api, entries)
	})
	if err != nil {
		return &errors.CarouselError{
			Op:   "resize.Handler.Init",
			Kind: errors.KindObserver,
			Err:  err,
		}
	}

	h.mu.Lock()
	h.disconnect = disconnect
	h.state = StateWatching
	h.mu.Unlock()
	return nil
}

// compare re-measures each entry in delivery order and triggers a single
// re-init on the first size that differs from its baseline.
func (h *Handler) compare(api API, entries []Entry) {
	for _, entry := range entries {
		lastSize, node, ok := h.baselineFor(entry.Target)
		if !ok {
			continue
		}
		if lastSize != h.readSize(node) {
			api.ReInit()
			if h.emitter != nil {
				h.emitter.Emit(EventResize)
			}
			break
		}
	}
}

// baselineFor maps target to the tracked node and its recorded size.
// Targets that are neither the container nor a slide are not tracked.
func (h *Handler) baselineFor(target Node) (float64, Node, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if target == h.container {
		return h.containerSize, h.container, true
	}
	for i, slide := range h.slides {
		if slide == target {
			return h.slideSizes[i], slide, true
		}
	}
	return 0, nil, false
}

// Destroy stops observing. Batches still in flight are dropped. Calling
// Destroy more than once is safe.
func (h *Handler) Destroy() {
	h.destroyed.Store(true)
	h.mu.Lock()
	disconnect := h.disconnect
	h.disconnect = nil
	h.state = StateDestroyed
	h.mu.Unlock()
	if disconnect != nil {
		disconnect()
	}
}

// State returns the lifecycle state.
func (h *Handler) State() State {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state
}

// Baseline returns the recorded container and slide sizes. Both are zero
// until Init captures them.
func (h *Handler) Baseline() (float64, []float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.containerSize, append([]float64(nil), h.slideSizes...)
}
