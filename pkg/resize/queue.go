package resize

import "sync"

type queuedBatch struct {
	callback func([]Entry)
	entries  []Entry
}

// Queue wraps an Observer so batches are held until Flush is called.
// The engine flushes at the start of every frame, which keeps all handler
// work on the frame goroutine regardless of where the observer delivers.
type Queue struct {
	inner Observer

	mu      sync.Mutex
	pending []queuedBatch
	closed  bool
	ready   chan struct{}
}

// NewQueue wraps inner.
func NewQueue(inner Observer) *Queue {
	return &Queue{
		inner: inner,
		ready: make(chan struct{}, 1),
	}
}

// Observe subscribes to inner and queues its batches for callback.
func (q *Queue) Observe(nodes []Node, callback func([]Entry)) (func(), error) {
	return q.inner.Observe(nodes, func(entries []Entry) {
		q.push(callback, entries)
	})
}

func (q *Queue) push(callback func([]Entry), entries []Entry) {
	batch := queuedBatch{
		callback: callback,
		entries:  append([]Entry(nil), entries...),
	}
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.pending = append(q.pending, batch)
	q.mu.Unlock()

	select {
	case q.ready <- struct{}{}:
	default:
	}
}

// Ready signals that at least one batch has been queued since the last
// receive. Idle frame loops select on it to wake up.
func (q *Queue) Ready() <-chan struct{} {
	return q.ready
}

// Pending returns the number of queued batches.
func (q *Queue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Flush delivers queued batches in arrival order and returns how many were
// delivered. Batches queued by the callbacks themselves wait for the next
// Flush.
func (q *Queue) Flush() int {
	q.mu.Lock()
	batches := q.pending
	q.pending = nil
	q.mu.Unlock()

	for _, batch := range batches {
		batch.callback(batch.entries)
	}
	return len(batches)
}

// Close drops queued batches and ignores every later delivery.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.closed = true
	q.pending = nil
}
