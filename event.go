package threading

import (
	"sync"
	"time"
)

// teardownBroadcasts is the number of redundant wake-ups issued by Close.
// Condition broadcast has historically been unreliable on some platforms
// (a single broadcast occasionally misses a waiter), so teardown does not
// bet the "no waiter left blocked" contract on one call.
const teardownBroadcasts = 8

// An Event is a single-flag, multi-waiter synchronization gate. Set moves it
// to the signaled state and wakes every current waiter; Reset clears it.
// Waiters block while the event is unset.
//
// All flag access happens under an owned named Mutex with a condition
// variable on top, so an Event is safe for any number of concurrent setters
// and waiters.
//
// Example:
//
//	ready := threading.NewEvent("renderer.ready")
//
//	go func() {
//	    warmUp()
//	    ready.Set()
//	}()
//
//	ready.Wait() // blocks until warmUp finishes
type Event struct {
	mu     *Mutex
	cond   *sync.Cond
	set    bool
	closed bool
}

// NewEvent creates an unset Event whose internal mutex carries name.
func NewEvent(name string, opts ...MutexOption) *Event {
	e := &Event{mu: NewMutex(name, opts...)}
	e.cond = sync.NewCond(e.mu)
	return e
}

// SetName updates the diagnostic label of the internal mutex.
func (e *Event) SetName(name string) {
	e.mu.SetName(name)
}

// Set moves the event into the signaled state and wakes all current waiters.
// Calling Set on an already-signaled event is a no-op; each unset-to-set
// transition broadcasts exactly once.
func (e *Event) Set() {
	e.mu.Lock()
	if !e.set {
		e.set = true
		e.cond.Broadcast()
	}
	e.mu.Unlock()
}

// Reset clears the signaled state unconditionally.
func (e *Event) Reset() {
	e.mu.Lock()
	e.set = false
	e.mu.Unlock()
}

// IsSet reports whether the event is currently signaled.
func (e *Event) IsSet() bool {
	e.mu.Lock()
	set := e.set
	e.mu.Unlock()
	return set
}

// Wait blocks until the event is signaled (or closed). It does not clear
// the flag; every waiter past and future is released until Reset is called.
func (e *Event) Wait() {
	e.mu.Lock()
	for !e.set && !e.closed {
		e.cond.Wait()
	}
	e.mu.Unlock()
}

// WaitAndReset blocks until the event is signaled, then clears the flag
// before returning. This models a single-consumer gate: each signal is
// consumed by exactly one returning waiter.
func (e *Event) WaitAndReset() {
	e.mu.Lock()
	for !e.set && !e.closed {
		e.cond.Wait()
	}
	e.set = false
	e.mu.Unlock()
}

// WaitTimeout blocks until the event is signaled (or closed) or d elapses.
// It reports whether the event became, or already was, signaled within the
// budget; false means the deadline elapsed, which the caller may treat as a
// retry or a fault as it sees fit.
func (e *Event) WaitTimeout(d time.Duration) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.set || e.closed {
		return true
	}

	expired := false
	timer := time.AfterFunc(d, func() {
		e.mu.Lock()
		expired = true
		e.cond.Broadcast()
		e.mu.Unlock()
	})
	defer timer.Stop()

	for !e.set && !e.closed && !expired {
		e.cond.Wait()
	}
	return e.set || e.closed
}

// Close tears the event down, guaranteeing that every blocked waiter is
// released and that subsequent waits return immediately. The wake-up is
// issued redundantly (see teardownBroadcasts). Close does not invalidate the
// Event; it only ends all waiting.
func (e *Event) Close() {
	e.mu.Lock()
	e.set = false
	e.closed = true
	e.mu.Unlock()

	for i := 0; i < teardownBroadcasts; i++ {
		e.cond.Broadcast()
	}
}
