package threading

import "sync/atomic"

// poolMetrics tracks pool-wide counters.
type poolMetrics struct {
	submitted atomic.Uint64
	executed  atomic.Uint64
	requeued  atomic.Uint64
	dropped   atomic.Uint64
}

// Stats contains a snapshot of pool counters. Values are read without
// stopping the pool and may be slightly inconsistent with each other during
// concurrent operation.
//
// Example:
//
//	stats := pool.Stats()
//	fmt.Printf("executed %d of %d\n", stats.Executed, stats.Submitted)
type Stats struct {
	// Submitted is the total number of operations accepted by Submit.
	Submitted uint64

	// Executed is the total number of Run invocations, counting each
	// rescheduled pass separately.
	Executed uint64

	// Requeued is the number of times an operation returned Reschedule
	// and re-entered the queue.
	Requeued uint64

	// Dropped is the number of queued operations discarded by Stop
	// without executing.
	Dropped uint64

	// Pending is the queue length at snapshot time.
	Pending int

	// NumWorkers is the number of workers the pool runs with.
	NumWorkers int
}

// Stats returns a snapshot of pool counters.
func (p *Pool) Stats() Stats {
	return Stats{
		Submitted:  p.metrics.submitted.Load(),
		Executed:   p.metrics.executed.Load(),
		Requeued:   p.metrics.requeued.Load(),
		Dropped:    p.metrics.dropped.Load(),
		Pending:    p.Pending(),
		NumWorkers: p.config.NumWorkers,
	}
}
