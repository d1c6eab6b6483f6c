package engine

import (
	"sync"
	"time"
)

// Scheduler owns the single auto-flip timer slot. Arming always cancels the
// previous timer first, so only the most recently armed delay can ever
// publish an EventAutoFlip. Cancelling after the timer has fired is a no-op;
// the published event is already on the bus and will still be processed.
type Scheduler struct {
	mu      sync.Mutex
	timer   *time.Timer
	publish func(Event)
}

// NewScheduler creates a scheduler that publishes EventAutoFlip through the
// given function on expiry.
func NewScheduler(publish func(Event)) *Scheduler {
	return &Scheduler{publish: publish}
}

// Arm cancels any pending timer and schedules a new auto-flip after delay.
func (s *Scheduler) Arm(delay time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(delay, func() {
		s.publish(EventAutoFlip)
	})
}

// Cancel invalidates the pending timer if any. Safe to call when none is
// pending. Must be called before reducer teardown so a stale timer cannot
// fire into a torn-down loop.
func (s *Scheduler) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
