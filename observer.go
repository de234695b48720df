package threading

import "log/slog"

// LockObserver receives acquire/release notifications from the lock it is
// attached to. It is the injection point for contention profiling: a build
// that wants lock spans attaches a recording observer at construction time,
// everything else pays for two no-op calls.
//
// Implementations must not acquire the observed lock, directly or
// indirectly, or they will deadlock.
type LockObserver interface {
	// Acquiring is called before the lock is contended for.
	Acquiring(name string)

	// Acquired is called once the lock is held by the caller.
	Acquired(name string)

	// Released is called just before the lock is released.
	Released(name string)
}

// nopObserver is the default observer. It does nothing.
type nopObserver struct{}

func (nopObserver) Acquiring(string) {}
func (nopObserver) Acquired(string)  {}
func (nopObserver) Released(string)  {}

// LogObserver is a LockObserver that writes every span edge to a structured
// logger at debug level. Useful for chasing down contention without a real
// profiler attached.
//
// Example:
//
//	mu := threading.NewMutex("layer.cache",
//	    threading.WithObserver(threading.NewLogObserver(slog.Default())),
//	)
type LogObserver struct {
	logger *slog.Logger
}

// NewLogObserver creates a LogObserver writing to logger. If logger is nil,
// slog.Default() is used.
func NewLogObserver(logger *slog.Logger) *LogObserver {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogObserver{logger: logger}
}

func (o *LogObserver) Acquiring(name string) {
	o.logger.Debug("lock acquiring", slog.String("lock", name))
}

func (o *LogObserver) Acquired(name string) {
	o.logger.Debug("lock acquired", slog.String("lock", name))
}

func (o *LogObserver) Released(name string) {
	o.logger.Debug("lock released", slog.String("lock", name))
}
