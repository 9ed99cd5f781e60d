package testing

import (
	"sync"

	"github.com/go-drift/carousel/pkg/resize"
)

type subscription struct {
	nodes     []resize.Node
	callback  func([]resize.Entry)
	connected bool
}

// ManualObserver is a resize.Observer whose batches are delivered by the
// test. Disconnected subscriptions still receive Deliver calls, which
// simulates a batch that was already in flight when the carousel stopped
// observing.
type ManualObserver struct {
	mu   sync.Mutex
	subs []*subscription
	err  error
}

// NewManualObserver creates an observer with no subscriptions.
func NewManualObserver() *ManualObserver {
	return &ManualObserver{}
}

// FailWith makes the next Observe calls return err. Pass nil to recover.
func (o *ManualObserver) FailWith(err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.err = err
}

// Observe records the subscription.
func (o *ManualObserver) Observe(nodes []resize.Node, callback func([]resize.Entry)) (func(), error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.err != nil {
		return nil, o.err
	}
	sub := &subscription{
		nodes:     append([]resize.Node(nil), nodes...),
		callback:  callback,
		connected: true,
	}
	o.subs = append(o.subs, sub)
	return func() {
		o.mu.Lock()
		defer o.mu.Unlock()
		sub.connected = false
	}, nil
}

// Deliver sends one batch to every subscription, connected or not.
func (o *ManualObserver) Deliver(entries ...resize.Entry) {
	o.mu.Lock()
	subs := append([]*subscription(nil), o.subs...)
	o.mu.Unlock()
	for _, sub := range subs {
		sub.callback(entries)
	}
}

// Connected returns the number of live subscriptions.
func (o *ManualObserver) Connected() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	n := 0
	for _, sub := range o.subs {
		if sub.connected {
			n++
		}
	}
	return n
}

// Observed returns the nodes of the most recent subscription.
func (o *ManualObserver) Observed() []resize.Node {
	o.mu.Lock()
	defer o.mu.Unlock()
	if len(o.subs) == 0 {
		return nil
	}
	return append([]resize.Node(nil), o.subs[len(o.subs)-1].nodes...)
}
