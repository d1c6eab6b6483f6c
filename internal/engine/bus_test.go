package engine

import (
	"context"
	"testing"
	"time"
)

func TestBusDeliversInFIFOOrder(t *testing.T) {
	bus := NewBus()

	sent := []Event{EventAdvance, EventAutoFlip, EventAdvance, EventAdvance, EventAutoFlip}
	for _, ev := range sent {
		bus.Publish(ev)
	}

	for i, want := range sent {
		got, ok := bus.Receive(context.Background())
		if !ok {
			t.Fatalf("Receive %d: bus closed unexpectedly", i)
		}
		if got != want {
			t.Errorf("Receive %d: expected %v, got %v", i, want, got)
		}
	}

	if bus.Len() != 0 {
		t.Errorf("Expected empty bus, %d events left", bus.Len())
	}
}

func TestBusPublishNeverBlocks(t *testing.T) {
	bus := NewBus()

	// No consumer attached; a large burst must still return immediately
	done := make(chan struct{})
	go func() {
		for i := 0; i < 10000; i++ {
			bus.Publish(EventAdvance)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Publish blocked without a consumer")
	}

	if bus.Len() != 10000 {
		t.Errorf("Expected 10000 queued events, got %d", bus.Len())
	}
}

func TestBusReceiveBlocksUntilPublish(t *testing.T) {
	bus := NewBus()

	got := make(chan Event, 1)
	go func() {
		ev, ok := bus.Receive(context.Background())
		if ok {
			got <- ev
		}
	}()

	time.Sleep(20 * time.Millisecond)
	bus.Publish(EventAutoFlip)

	select {
	case ev := <-got:
		if ev != EventAutoFlip {
			t.Errorf("Expected AutoFlip, got %v", ev)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Receive did not wake up after Publish")
	}
}

func TestBusReceiveStopsOnContextCancel(t *testing.T) {
	bus := NewBus()
	ctx, cancel := context.WithCancel(context.Background())

	stopped := make(chan bool, 1)
	go func() {
		_, ok := bus.Receive(ctx)
		stopped <- ok
	}()

	cancel()

	select {
	case ok := <-stopped:
		if ok {
			t.Error("Expected Receive to report no event on cancellation")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Receive did not stop on context cancellation")
	}
}

func TestBusCloseKeepsPendingReceivable(t *testing.T) {
	bus := NewBus()
	bus.Publish(EventAdvance)
	bus.Publish(EventAutoFlip)

	bus.Close()

	// Publishing after close is a no-op
	bus.Publish(EventAdvance)

	if ev, ok := bus.TryReceive(); !ok || ev != EventAdvance {
		t.Errorf("Expected queued Advance after close, got %v ok=%v", ev, ok)
	}
	if ev, ok := bus.TryReceive(); !ok || ev != EventAutoFlip {
		t.Errorf("Expected queued AutoFlip after close, got %v ok=%v", ev, ok)
	}
	if _, ok := bus.TryReceive(); ok {
		t.Error("Expected bus to be drained")
	}

	if _, ok := bus.Receive(context.Background()); ok {
		t.Error("Expected Receive to report closed on a drained bus")
	}
}
