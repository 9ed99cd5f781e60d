package resize

import (
	"errors"
	"sync"

	"github.com/go-drift/carousel/pkg/geometry"
)

type fakeNode struct {
	mu   sync.Mutex
	name string
	rect geometry.Rect
}

func newFakeNode(name string, width, height float64) *fakeNode {
	return &fakeNode{name: name, rect: geometry.RectFromLTWH(0, 0, width, height)}
}

func (n *fakeNode) BoundingRect() geometry.Rect {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.rect
}

func (n *fakeNode) resize(width, height float64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.rect = geometry.RectFromLTWH(n.rect.Left, n.rect.Top, width, height)
}

func (n *fakeNode) entry() Entry {
	return Entry{Target: n, Rect: n.BoundingRect()}
}

type fakeAPI struct {
	mu      sync.Mutex
	reInits int
}

func (a *fakeAPI) ReInit() {
	a.mu.Lock()
	a.reInits++
	a.mu.Unlock()
}

func (a *fakeAPI) count() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.reInits
}

type fakeEmitter struct {
	events []string
}

func (e *fakeEmitter) Emit(name string) {
	e.events = append(e.events, name)
}

// manualObserver keeps callbacks after disconnect so tests can replay the
// late deliveries a real observer may still produce.
type manualObserver struct {
	callbacks    []func([]Entry)
	observed     [][]Node
	disconnected int
	err          error
}

func (o *manualObserver) Observe(nodes []Node, callback func([]Entry)) (func(), error) {
	if o.err != nil {
		return nil, o.err
	}
	o.observed = append(o.observed, nodes)
	o.callbacks = append(o.callbacks, callback)
	return func() { o.disconnected++ }, nil
}

func (o *manualObserver) deliver(entries ...Entry) {
	for _, cb := range o.callbacks {
		cb(entries)
	}
}

var errObserverDown = errors.New("observer down")
