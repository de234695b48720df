package threading

// Disposition is returned by an Operation's Run method and tells the pool
// what to do with the operation afterwards. Making recurrence an explicit
// return value keeps the decision race-free; there is no shared mutable
// "keep" flag to coordinate.
type Disposition int

const (
	// Done indicates the operation is finished and the pool should drop
	// its reference to it.
	Done Disposition = iota

	// Reschedule indicates the operation wants to run again. The pool
	// pushes it to the back of the queue, so it interleaves behind work
	// submitted in the meantime.
	Reschedule
)

// An Operation is a unit of work executed by a Pool. Run is invoked on a
// worker goroutine with no locks held; it may block, but a long-running
// operation delays queued work behind it.
//
// Operations are shared between the submitter and the pool for their
// lifetime. The pool drops its reference once Run returns Done, or when the
// pool stops.
type Operation interface {
	Run() Disposition
}

// OperationFunc adapts a plain function to a one-shot Operation that always
// reports Done.
//
// Example:
//
//	pool.Submit(threading.OperationFunc(func() {
//	    rebuildIndex()
//	}))
type OperationFunc func()

// Run executes the function and reports Done.
func (f OperationFunc) Run() Disposition {
	f()
	return Done
}
