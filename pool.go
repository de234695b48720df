package threading

import (
	"runtime"
	"sync"
)

// A Pool executes Operations on a fixed set of worker goroutines draining a
// single FIFO queue. The queue is guarded by a named Mutex and a condition
// variable; workers sleep on "queue non-empty or stopping".
//
// Submission order is preserved for operations that never reschedule
// themselves. A rescheduled operation re-enters at the back of the queue and
// interleaves behind newer submissions; there is no strict global order once
// recurrence is involved.
//
// Multiple independent pools may coexist; they share no queues or workers.
//
// Example:
//
//	pool, err := threading.NewPool(threading.WithNumWorkers(4))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer pool.Stop()
//
//	pool.Submit(threading.OperationFunc(func() {
//	    compactRegion(r)
//	}))
type Pool struct {
	config Config

	mu   *Mutex
	cond *sync.Cond

	queue    []Operation
	stopping bool
	running  bool

	wg sync.WaitGroup

	metrics poolMetrics
}

// NewPool creates a pool and starts its workers. It returns an error only if
// the configuration is invalid.
//
// Example:
//
//	pool, err := threading.NewPool(
//	    threading.WithNumWorkers(4),
//	    threading.WithName("terrain.loader"),
//	)
func NewPool(opts ...Option) (*Pool, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.NumWorkers == 0 {
		cfg.NumWorkers = runtime.NumCPU()
	}

	var mopts []MutexOption
	if cfg.Observer != nil {
		mopts = append(mopts, WithObserver(cfg.Observer))
	}

	p := &Pool{
		config: cfg,
		mu:     NewMutex(cfg.Name, mopts...),
	}
	p.cond = sync.NewCond(p.mu)

	p.Start()

	return p, nil
}

// Start spawns the worker goroutines. It is called by NewPool; calling it
// again restarts a stopped pool with an empty queue and is a no-op while the
// pool is running.
func (p *Pool) Start() {
	p.mu.Lock()
	if p.running {
		p.mu.Unlock()
		return
	}
	p.stopping = false
	p.running = true
	p.mu.Unlock()

	for i := 0; i < p.config.NumWorkers; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}
}

// Submit appends op to the back of the queue and wakes waiting workers.
// A nil op is silently ignored. Submitting to a pool that is stopping is the
// caller's mistake; the operation is discarded without executing.
func (p *Pool) Submit(op Operation) {
	if op == nil {
		return
	}
	p.mu.Lock()
	p.queue = append(p.queue, op)
	p.metrics.submitted.Add(1)
	p.cond.Broadcast()
	p.mu.Unlock()
}

// Pending returns a point-in-time length of the queue. It is informational
// only and not linearizable with concurrent Submit calls or worker drains.
func (p *Pool) Pending() int {
	p.mu.Lock()
	n := len(p.queue)
	p.mu.Unlock()
	return n
}

// NumWorkers returns the number of workers the pool runs with.
func (p *Pool) NumWorkers() int {
	return p.config.NumWorkers
}

// Stop shuts the pool down: it wakes every worker, waits for all of them to
// exit, and then discards whatever is still queued without executing it. An
// operation that is mid-execution always finishes first; stop is observed
// only at the queue wait.
//
// Stop is idempotent and safe to call from multiple goroutines.
func (p *Pool) Stop() {
	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		return
	}
	p.stopping = true
	p.cond.Broadcast()
	p.mu.Unlock()

	p.wg.Wait()

	p.mu.Lock()
	p.metrics.dropped.Add(uint64(len(p.queue)))
	p.queue = nil
	p.running = false
	p.mu.Unlock()
}
