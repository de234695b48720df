package threading

import "sync"

// A ReadWriteMutex admits any number of concurrent readers or a single
// exclusive writer. It is built from an owned named Mutex, a condition
// variable signaled whenever the lock becomes uncontended, and plain
// reader/writer counters.
//
// The policy is reader-preferring: a new reader is admitted whenever no
// writer is currently active, with no reservation for a writer already
// waiting. A steady trickle of incoming readers can therefore delay a
// writer indefinitely. This matches the historical behavior of this
// primitive and is deliberately left as-is; callers that need writer
// progress under sustained read load should throttle their readers.
//
// Use NewReadWriteMutex; the zero value is not usable.
type ReadWriteMutex struct {
	mu       *Mutex
	unlocked *sync.Cond
	readers  int
	writers  int
}

// NewReadWriteMutex creates a ReadWriteMutex whose internal mutex carries
// name.
func NewReadWriteMutex(name string, opts ...MutexOption) *ReadWriteMutex {
	rw := &ReadWriteMutex{mu: NewMutex(name, opts...)}
	rw.unlocked = sync.NewCond(rw.mu)
	return rw
}

// RLock acquires the lock for reading, blocking while a writer is active.
// Readers may not recursively RLock across an intervening Lock attempt by
// another goroutine; see the starvation note on the type.
func (rw *ReadWriteMutex) RLock() {
	rw.mu.Lock()
	for rw.writers > 0 {
		rw.unlocked.Wait()
	}
	rw.readers++
	rw.mu.Unlock()
}

// RUnlock undoes a single RLock call. When the last reader leaves, everyone
// waiting for the lock to become uncontended is woken.
func (rw *ReadWriteMutex) RUnlock() {
	rw.mu.Lock()
	rw.readers--
	if rw.readers == 0 {
		rw.unlocked.Broadcast()
	}
	rw.mu.Unlock()
}

// Lock acquires the lock for writing, blocking while any readers or another
// writer are active.
func (rw *ReadWriteMutex) Lock() {
	rw.mu.Lock()
	for rw.writers > 0 || rw.readers > 0 {
		rw.unlocked.Wait()
	}
	rw.writers++
	rw.mu.Unlock()
}

// Unlock releases the write lock unconditionally and wakes all waiters.
func (rw *ReadWriteMutex) Unlock() {
	rw.mu.Lock()
	rw.writers = 0
	rw.unlocked.Broadcast()
	rw.mu.Unlock()
}

// SetName updates the diagnostic label of the internal mutex.
func (rw *ReadWriteMutex) SetName(name string) {
	rw.mu.SetName(name)
}
