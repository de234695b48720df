package threading

import "fmt"

// ErrInvalidConfig is reported by NewPool when the options describe an
// unusable pool. Match it with errors.Is.
//
// Example:
//
//	_, err := threading.NewPool(threading.WithNumWorkers(-1))
//	if errors.Is(err, threading.ErrInvalidConfig) {
//	    // fix the options
//	}
var ErrInvalidConfig = &PoolError{msg: "invalid config"}

// PoolError represents an error that occurred within the pool. It implements
// the error interface and supports unwrapping via errors.Unwrap.
//
// Runtime pool operations do not return errors at all: a nil submission is
// ignored, an empty queue is an ordinary condition, and stopping is
// idempotent. PoolError exists for construction-time failures only.
type PoolError struct {
	msg string // human-readable error message
	err error  // underlying error (if any)
}

// Error returns a formatted error message. If an underlying error exists,
// it is included in the output.
func (e *PoolError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("threading: %s: %v", e.msg, e.err)
	}
	return fmt.Sprintf("threading: %s", e.msg)
}

// Unwrap returns the underlying error, allowing use with errors.Is and
// errors.As.
func (e *PoolError) Unwrap() error {
	return e.err
}

// errInvalidConfig creates an error for invalid pool configuration that
// matches ErrInvalidConfig under errors.Is.
func errInvalidConfig(msg string) error {
	return &PoolError{msg: msg, err: ErrInvalidConfig}
}
