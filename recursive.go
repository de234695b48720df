package threading

import (
	"sync"
	"sync/atomic"
)

// A RecursiveMutex is a mutual exclusion lock that the holding goroutine may
// acquire again without deadlocking. The lock is fully released only after a
// matching number of Unlock calls.
//
// A RecursiveMutex can be switched into pass-through mode with Disable for
// call paths that are statically known to run single-goroutine; this removes
// the locking overhead without touching call sites.
//
// A RecursiveMutex must not be copied after first use. Unlike sync.Mutex, a
// held RecursiveMutex is associated with the goroutine that acquired it and
// must be released by that same goroutine.
type RecursiveMutex struct {
	noCopy noCopy

	name     string
	observer LockObserver

	// disabled inverts the original "enabled" flag so the zero value is a
	// live lock. One-directional; there is no re-enable.
	disabled atomic.Bool

	mu    sync.Mutex
	owner atomic.Uint64 // goroutine id of the holder, 0 when free
	depth int           // reentry depth, touched only by the owner
}

// NewRecursiveMutex creates a named RecursiveMutex.
func NewRecursiveMutex(name string, opts ...MutexOption) *RecursiveMutex {
	lo := lockOpts{observer: nopObserver{}}
	for _, opt := range opts {
		opt(&lo)
	}
	return &RecursiveMutex{name: name, observer: lo.observer}
}

// Disable permanently switches the mutex into pass-through mode: Lock and
// Unlock become no-ops and TryLock always reports success. Intended for
// contexts known to be single-goroutine; there is no way back.
//
// Disabling concurrently with in-flight Lock/Unlock calls is the caller's
// responsibility to avoid.
func (m *RecursiveMutex) Disable() {
	m.disabled.Store(true)
}

// Lock acquires the mutex, or increments the reentry depth if the calling
// goroutine already holds it.
func (m *RecursiveMutex) Lock() {
	if m.disabled.Load() {
		return
	}
	if m.name == "" {
		unnamedLockTrap()
	}
	gid := goroutineID()
	if m.owner.Load() == gid {
		m.depth++
		return
	}
	if m.observer != nil {
		m.observer.Acquiring(m.name)
	}
	m.mu.Lock()
	m.owner.Store(gid)
	m.depth = 1
	if m.observer != nil {
		m.observer.Acquired(m.name)
	}
}

// Unlock undoes one Lock call. The mutex is released once the outermost
// Lock has been paired; unpaired Unlock is undefined behavior.
func (m *RecursiveMutex) Unlock() {
	if m.disabled.Load() {
		return
	}
	m.depth--
	if m.depth == 0 {
		if m.observer != nil {
			m.observer.Released(m.name)
		}
		m.owner.Store(0)
		m.mu.Unlock()
	}
}

// TryLock attempts to acquire the mutex without blocking and reports whether
// it succeeded. Reentrant acquisition by the holder always succeeds, as does
// any call after Disable.
func (m *RecursiveMutex) TryLock() bool {
	if m.disabled.Load() {
		return true
	}
	gid := goroutineID()
	if m.owner.Load() == gid {
		m.depth++
		return true
	}
	if !m.mu.TryLock() {
		return false
	}
	m.owner.Store(gid)
	m.depth = 1
	if m.observer != nil {
		m.observer.Acquired(m.name)
	}
	return true
}

// SetName updates the diagnostic label. Not synchronized with lock state.
func (m *RecursiveMutex) SetName(name string) {
	m.name = name
}

// Name returns the diagnostic label.
func (m *RecursiveMutex) Name() string {
	return m.name
}
