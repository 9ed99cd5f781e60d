package testing

import (
	"sync"

	"github.com/go-drift/carousel/pkg/geometry"
	"github.com/go-drift/carousel/pkg/resize"
)

// Node is a fake measurable element. It is safe for concurrent use so
// observers may read it from their own goroutines.
type Node struct {
	Name string

	mu   sync.Mutex
	rect geometry.Rect
}

// NewNode creates a node with rect.
func NewNode(name string, rect geometry.Rect) *Node {
	return &Node{Name: name, rect: rect}
}

// BoundingRect returns the current rect.
func (n *Node) BoundingRect() geometry.Rect {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.rect
}

// SetRect replaces the rect.
func (n *Node) SetRect(rect geometry.Rect) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.rect = rect
}

// Resize keeps the top-left corner and changes the size.
func (n *Node) Resize(width, height float64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.rect = geometry.RectFromLTWH(n.rect.Left, n.rect.Top, width, height)
}

// Entry returns an observer entry for the node's current rect.
func (n *Node) Entry() resize.Entry {
	return resize.Entry{Target: n, Rect: n.BoundingRect()}
}

func (n *Node) String() string {
	return n.Name
}
