package resize

import (
	"testing"

	"github.com/go-drift/carousel/pkg/geometry"
)

func TestQueueHoldsBatchesUntilFlush(t *testing.T) {
	inner := &manualObserver{}
	q := NewQueue(inner)
	node := newFakeNode("slide", 10, 10)

	var got [][]Entry
	if _, err := q.Observe([]Node{node}, func(entries []Entry) {
		got = append(got, entries)
	}); err != nil {
		t.Fatalf("Observe: %v", err)
	}

	inner.deliver(node.entry())
	node.resize(20, 10)
	inner.deliver(node.entry())

	if len(got) != 0 {
		t.Fatal("batches delivered before Flush")
	}
	if q.Pending() != 2 {
		t.Errorf("Pending() = %d, want 2", q.Pending())
	}
	select {
	case <-q.Ready():
	default:
		t.Error("Ready should signal queued work")
	}

	if n := q.Flush(); n != 2 {
		t.Errorf("Flush() = %d, want 2", n)
	}
	if len(got) != 2 {
		t.Fatalf("delivered %d batches, want 2", len(got))
	}
	if got[0][0].Rect.Width() != 10 || got[1][0].Rect.Width() != 20 {
		t.Error("batches should be delivered in arrival order")
	}
	if q.Flush() != 0 {
		t.Error("second Flush should deliver nothing")
	}
}

func TestQueueDropsLateBatchAfterDestroy(t *testing.T) {
	inner := &manualObserver{}
	q := NewQueue(inner)
	container := newFakeNode("container", 100, 100)
	api := &fakeAPI{}
	emitter := &fakeEmitter{}
	h := NewHandler(container, nil, geometry.AxisHorizontal, emitter, q)
	if err := h.Init(api, Watch(true)); err != nil {
		t.Fatalf("Init: %v", err)
	}

	container.resize(200, 100)
	inner.deliver(container.entry())
	h.Destroy()
	q.Flush()

	if api.count() != 0 || len(emitter.events) != 0 {
		t.Errorf("queued batch after destroy produced %d re-inits", api.count())
	}
}

func TestQueueCallbackEnqueuesForNextFlush(t *testing.T) {
	inner := &manualObserver{}
	q := NewQueue(inner)
	node := newFakeNode("slide", 10, 10)

	calls := 0
	_, _ = q.Observe([]Node{node}, func([]Entry) {
		calls++
		if calls == 1 {
			inner.deliver(node.entry())
		}
	})
	inner.deliver(node.entry())

	if n := q.Flush(); n != 1 {
		t.Errorf("first Flush() = %d, want 1", n)
	}
	if n := q.Flush(); n != 1 {
		t.Errorf("second Flush() = %d, want 1", n)
	}
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
}

func TestQueueCloseDropsPendingAndLaterBatches(t *testing.T) {
	inner := &manualObserver{}
	q := NewQueue(inner)
	node := newFakeNode("slide", 10, 10)

	delivered := 0
	if _, err := q.Observe([]Node{node}, func([]Entry) { delivered++ }); err != nil {
		t.Fatalf("Observe: %v", err)
	}
	inner.deliver(node.entry())
	q.Close()
	if q.Pending() != 0 {
		t.Errorf("Pending() = %d after Close, want 0", q.Pending())
	}

	for i := 0; i < 3; i++ {
		inner.deliver(node.entry())
	}
	if q.Pending() != 0 {
		t.Errorf("Pending() = %d, want closed queue to ignore deliveries", q.Pending())
	}
	if q.Flush() != 0 || delivered != 0 {
		t.Error("closed queue should deliver nothing")
	}
}
