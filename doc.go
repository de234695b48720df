// Package threading is a small cross-platform concurrency toolkit built on
// blocking locks: named introspectable mutexes, a goroutine-reentrant mutex
// with an administrative kill switch, a set/reset event gate, a fair-ish
// reader/writer lock, and a fixed-size worker pool draining a FIFO queue of
// optionally self-recurring operations.
//
// These primitives define the synchronization contracts everything above
// them relies on; they trade raw throughput for behavior that is easy to
// reason about and easy to observe. Lock-free structures are deliberately
// out of scope.
//
// # Locks
//
// Every lock carries a human-readable name for diagnostics. Locks acquired
// without a name are counted (see UnnamedLockCount) and trip a breakpoint
// target, which makes them easy to hunt down during development.
//
//	mu := threading.NewMutex("tile.cache")
//	mu.Lock()
//	defer mu.Unlock()
//
// RecursiveMutex may be re-acquired by its holder and can be permanently
// disabled into a pass-through for code paths known to be single-goroutine:
//
//	mu := threading.NewRecursiveMutex("scene.graph")
//	if singleThreaded {
//	    mu.Disable() // Lock/Unlock become no-ops
//	}
//
// Both lock types accept an optional LockObserver for recording acquire and
// release spans; the default observer does nothing.
//
// # Event
//
// Event is a single-flag, multi-waiter gate:
//
//	gate := threading.NewEvent("frame.ready")
//	go func() { render(); gate.Set() }()
//	if !gate.WaitTimeout(100 * time.Millisecond) {
//	    // deadline elapsed without a signal
//	}
//
// WaitAndReset consumes the signal, modeling a single-consumer gate. Close
// guarantees no waiter is left blocked at teardown.
//
// # ReadWriteMutex
//
// ReadWriteMutex admits many readers or one writer. The policy is
// reader-preferring and a sustained stream of readers can starve a writer;
// see the type documentation before relying on writer progress.
//
// # Pool
//
// Pool runs Operations on a fixed set of workers. An Operation reports via
// its return value whether it is Done or wants to be Rescheduled, which is
// how recurring work is expressed:
//
//	type pulse struct{ n int }
//
//	func (p *pulse) Run() threading.Disposition {
//	    p.n++
//	    if p.n < 10 {
//	        return threading.Reschedule
//	    }
//	    return threading.Done
//	}
//
//	pool, _ := threading.NewPool(threading.WithNumWorkers(2))
//	pool.Submit(&pulse{})
//	defer pool.Stop()
//
// Stop is cooperative: a running operation always finishes, everything still
// queued is discarded, and all workers are joined before Stop returns.
//
// A pool can be parked inside any application-owned key/value configuration
// object via AttachPool and recovered with PoolFrom, so independent
// subsystems can share one pool without a global.
//
// # Error Handling
//
// The toolkit raises no errors at runtime. Contended TryLock, an elapsed
// WaitTimeout, and an absent PoolFrom result are ordinary return values.
// Misuse, such as unlocking a lock that is not held, is undefined behavior
// exactly as with the sync package.
package threading
