package engine

import (
	"context"
	"sync"
)

// Bus is the ordered, unbounded event queue between the input/timer edges
// and the reducer. Publish never blocks: producers append and return
// immediately. Receive hands events to exactly one consumer in strict FIFO
// arrival order, with no coalescing or reordering.
type Bus struct {
	mu      sync.Mutex
	pending []Event
	closed  bool
	wake    chan struct{}
}

// NewBus creates an empty event bus.
func NewBus() *Bus {
	return &Bus{wake: make(chan struct{}, 1)}
}

// Publish enqueues an event. Fire-and-forget: it never blocks, and it is a
// no-op once the bus is closed.
func (b *Bus) Publish(ev Event) {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.pending = append(b.pending, ev)
	b.mu.Unlock()

	select {
	case b.wake <- struct{}{}:
	default:
	}
}

// Receive blocks until an event is available or ctx is cancelled. It
// returns false when the context is done or the bus has been closed and
// fully drained.
func (b *Bus) Receive(ctx context.Context) (Event, bool) {
	for {
		if ev, ok := b.TryReceive(); ok {
			return ev, true
		}

		b.mu.Lock()
		closed := b.closed
		b.mu.Unlock()
		if closed {
			return 0, false
		}

		select {
		case <-ctx.Done():
			return 0, false
		case <-b.wake:
		}
	}
}

// TryReceive pops the oldest pending event without blocking.
func (b *Bus) TryReceive() (Event, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.pending) == 0 {
		return 0, false
	}
	ev := b.pending[0]
	b.pending = b.pending[1:]
	return ev, true
}

// Len returns the number of events waiting on the bus.
func (b *Bus) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.pending)
}

// Close stops accepting new events. Events already queued stay receivable
// so the reducer can drain them on shutdown.
func (b *Bus) Close() {
	b.mu.Lock()
	b.closed = true
	b.mu.Unlock()

	select {
	case b.wake <- struct{}{}:
	default:
	}
}
