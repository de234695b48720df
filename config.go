package threading

import "log/slog"

// Config contains all configuration options for a Pool.
type Config struct {
	// NumWorkers is the number of worker goroutines.
	// If 0, defaults to runtime.NumCPU().
	NumWorkers int

	// Name labels the pool's queue mutex and its log records.
	// Defaults to "ThreadPool".
	Name string

	// Logger receives worker lifecycle records at debug level and panic
	// reports at error level. If nil, slog.Default() is used.
	Logger *slog.Logger

	// PanicHandler is called when an operation panics. If nil, the panic
	// is logged through Logger and the operation is dropped.
	PanicHandler func(any)

	// Observer, if set, is attached to the pool's queue mutex.
	Observer LockObserver
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		NumWorkers: 0, // will be set to runtime.NumCPU()
		Name:       "ThreadPool",
	}
}

// validate checks the configuration and returns an error if invalid.
func (c *Config) validate() error {
	if c.NumWorkers < 0 {
		return errInvalidConfig("NumWorkers must be >= 0")
	}
	return nil
}
