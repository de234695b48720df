package threading

import (
	"sync"
	"sync/atomic"
)

// noCopy may be embedded into structs which must not be copied after first
// use. Lock identity is by address; copying a held lock corrupts it.
//
// See https://golang.org/issues/8005#issuecomment-190753527 for details.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// unnamedLocks counts Lock calls made on mutexes that never received a name.
var unnamedLocks atomic.Uint64

// unnamedLockTrap is a breakpoint target for finding unnamed mutexes during
// development. Kept out of line so a debugger can stop here.
//
//go:noinline
func unnamedLockTrap() {
	unnamedLocks.Add(1)
}

// UnnamedLockCount returns the number of Lock calls observed on mutexes with
// no diagnostic name. Diagnostics only; every lock should be named.
func UnnamedLockCount() uint64 {
	return unnamedLocks.Load()
}

// lockOpts holds construction-time settings shared by the lock types.
type lockOpts struct {
	observer LockObserver
}

// MutexOption configures a Mutex or RecursiveMutex at construction.
type MutexOption func(*lockOpts)

// WithObserver attaches a LockObserver to the lock. The default observer
// does nothing.
func WithObserver(o LockObserver) MutexOption {
	return func(lo *lockOpts) {
		if o != nil {
			lo.observer = o
		}
	}
}

// A Mutex is a non-reentrant mutual exclusion lock carrying a human-readable
// name for diagnostics. It implements sync.Locker and can back a sync.Cond.
//
// The zero value is an unlocked, unnamed mutex with a no-op observer. A Mutex
// must not be copied after first use.
//
// Example:
//
//	var cache = map[string]Tile{}
//	mu := threading.NewMutex("tile.cache")
//
//	mu.Lock()
//	cache[key] = tile
//	mu.Unlock()
type Mutex struct {
	noCopy noCopy

	// name is a diagnostic label only. SetName is deliberately not
	// synchronized with lock state; see SetName.
	name     string
	observer LockObserver

	mu sync.Mutex
}

// NewMutex creates a named Mutex.
func NewMutex(name string, opts ...MutexOption) *Mutex {
	lo := lockOpts{observer: nopObserver{}}
	for _, opt := range opts {
		opt(&lo)
	}
	return &Mutex{name: name, observer: lo.observer}
}

// Lock blocks until the mutex is acquired. Locking a mutex already held by
// the calling goroutine deadlocks; use RecursiveMutex where reentry is
// required.
func (m *Mutex) Lock() {
	if m.name == "" {
		unnamedLockTrap()
	}
	if m.observer != nil {
		m.observer.Acquiring(m.name)
		m.mu.Lock()
		m.observer.Acquired(m.name)
		return
	}
	m.mu.Lock()
}

// Unlock releases the mutex. Unlocking a mutex not held by the caller is
// undefined behavior, as with sync.Mutex.
func (m *Mutex) Unlock() {
	if m.observer != nil {
		m.observer.Released(m.name)
	}
	m.mu.Unlock()
}

// TryLock attempts to acquire the mutex without blocking and reports whether
// it succeeded. A false return is a normal contended result, not a fault.
func (m *Mutex) TryLock() bool {
	if !m.mu.TryLock() {
		return false
	}
	if m.observer != nil {
		m.observer.Acquired(m.name)
	}
	return true
}

// SetName updates the diagnostic label. It may be called at any time and is
// intentionally not synchronized with lock state; callers racing SetName
// against Lock get a stale label at worst.
func (m *Mutex) SetName(name string) {
	m.name = name
}

// Name returns the diagnostic label.
func (m *Mutex) Name() string {
	return m.name
}
