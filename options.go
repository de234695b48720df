package threading

import "log/slog"

// Option configures a Pool.
type Option func(*Config)

// WithNumWorkers sets the number of worker goroutines.
func WithNumWorkers(n int) Option {
	return func(c *Config) {
		c.NumWorkers = n
	}
}

// WithName sets the pool's diagnostic name.
func WithName(name string) Option {
	return func(c *Config) {
		if name != "" {
			c.Name = name
		}
	}
}

// WithLogger sets the logger used for worker lifecycle and panic records.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithPanicHandler sets the handler invoked when an operation panics.
//
// Example:
//
//	pool, _ := threading.NewPool(
//	    threading.WithPanicHandler(func(r any) {
//	        log.Printf("operation panicked: %v", r)
//	    }),
//	)
func WithPanicHandler(h func(any)) Option {
	return func(c *Config) {
		c.PanicHandler = h
	}
}

// WithQueueObserver attaches a LockObserver to the pool's queue mutex.
func WithQueueObserver(o LockObserver) Option {
	return func(c *Config) {
		c.Observer = o
	}
}
