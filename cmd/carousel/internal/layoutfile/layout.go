// Package layoutfile turns a carousel.yaml layout into measurable nodes and
// watches the file so edits arrive as resize batches.
package layoutfile

import (
	"fmt"
	"sync"

	"github.com/go-drift/carousel/pkg/geometry"
	"github.com/go-drift/carousel/pkg/resize"
)

// Node is a layout node whose rect is replaced when the file is reloaded.
type Node struct {
	name string

	mu   sync.Mutex
	rect geometry.Rect
}

// BoundingRect returns the rect from the most recent load.
func (n *Node) BoundingRect() geometry.Rect {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.rect
}

func (n *Node) set(rect geometry.Rect) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.rect.ApproxEqual(rect) {
		return false
	}
	n.rect = rect
	return true
}

func (n *Node) String() string {
	return n.name
}

// Layout holds the container and slide nodes of one carousel.
type Layout struct {
	Container *Node
	Slides    []*Node
}

// NewLayout creates nodes for the given rects.
func NewLayout(container geometry.Rect, slides []geometry.Rect) *Layout {
	l := &Layout{Container: &Node{name: "container", rect: container}}
	for i, rect := range slides {
		l.Slides = append(l.Slides, &Node{name: fmt.Sprintf("slide[%d]", i), rect: rect})
	}
	return l
}

// Nodes returns the container and slides as resize nodes.
func (l *Layout) Nodes() (resize.Node, []resize.Node) {
	slides := make([]resize.Node, len(l.Slides))
	for i, s := range l.Slides {
		slides[i] = s
	}
	return l.Container, slides
}

// apply replaces the rects and returns entries for the nodes that changed,
// container first. The slide count is fixed; extra or missing slides are
// reported as an error after the shared prefix is applied.
func (l *Layout) apply(container geometry.Rect, slides []geometry.Rect) ([]resize.Entry, error) {
	var entries []resize.Entry
	if l.Container.set(container) {
		entries = append(entries, resize.Entry{Target: l.Container, Rect: container})
	}
	for i, node := range l.Slides {
		if i >= len(slides) {
			break
		}
		if node.set(slides[i]) {
			entries = append(entries, resize.Entry{Target: node, Rect: slides[i]})
		}
	}
	if len(slides) != len(l.Slides) {
		return entries, fmt.Errorf("slide count changed from %d to %d, restart to apply", len(l.Slides), len(slides))
	}
	return entries, nil
}
