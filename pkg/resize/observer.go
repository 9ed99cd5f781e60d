package resize

import "github.com/go-drift/carousel/pkg/geometry"

// Node is an observable element: the carousel container or one slide.
// Implementations must be comparable (pointer types are), since entries
// are matched to tracked nodes by identity.
type Node interface {
	BoundingRect() geometry.Rect
}

// Entry reports a node whose geometry changed and its new rect.
type Entry struct {
	Target Node
	Rect   geometry.Rect
}

// Observer delivers batches of geometry changes for a set of nodes.
//
// Observe starts watching nodes and returns a function that stops the
// subscription. Batches may arrive on any goroutine, including after the
// returned function has been called; subscribers must guard against that.
type Observer interface {
	Observe(nodes []Node, callback func([]Entry)) (disconnect func(), err error)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(nodes []Node, callback func([]Entry)) (func(), error)

// Observe calls f.
func (f ObserverFunc) Observe(nodes []Node, callback func([]Entry)) (func(), error) {
	return f(nodes, callback)
}
