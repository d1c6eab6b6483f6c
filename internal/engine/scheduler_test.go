package engine

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestSchedulerPublishesAutoFlipOnExpiry(t *testing.T) {
	var fired atomic.Int32
	sched := NewScheduler(func(ev Event) {
		if ev != EventAutoFlip {
			t.Errorf("Expected AutoFlip, got %v", ev)
		}
		fired.Add(1)
	})
	defer sched.Cancel()

	sched.Arm(10 * time.Millisecond)

	time.Sleep(150 * time.Millisecond)
	if got := fired.Load(); got != 1 {
		t.Errorf("Expected exactly 1 auto-flip, got %d", got)
	}
}

func TestSchedulerRearmIsSingleShot(t *testing.T) {
	var fired atomic.Int32
	sched := NewScheduler(func(Event) { fired.Add(1) })
	defer sched.Cancel()

	// Arming again must cancel the first delay; only the second fires
	sched.Arm(80 * time.Millisecond)
	sched.Arm(20 * time.Millisecond)

	time.Sleep(40 * time.Millisecond)
	if got := fired.Load(); got != 1 {
		t.Errorf("Expected the re-armed timer to have fired once, got %d", got)
	}

	time.Sleep(150 * time.Millisecond)
	if got := fired.Load(); got != 1 {
		t.Errorf("Expected exactly 1 auto-flip after re-arm, got %d", got)
	}
}

func TestSchedulerCancelStopsPendingTimer(t *testing.T) {
	var fired atomic.Int32
	sched := NewScheduler(func(Event) { fired.Add(1) })

	sched.Arm(30 * time.Millisecond)
	sched.Cancel()

	time.Sleep(100 * time.Millisecond)
	if got := fired.Load(); got != 0 {
		t.Errorf("Expected no auto-flip after cancel, got %d", got)
	}
}

func TestSchedulerCancelWhenIdleIsSafe(t *testing.T) {
	sched := NewScheduler(func(Event) {})

	// Must not panic with nothing pending
	sched.Cancel()
	sched.Cancel()
}
