//go:build linux

package threading

import "golang.org/x/sys/unix"

// CurrentThreadID returns a process-unique numeric identifier for the
// calling execution context, for diagnostics and logging only. On Linux this
// is the kernel thread id of the OS thread the goroutine is currently
// running on; the Go scheduler may move the goroutine between threads, so
// the value is not stable across calls unless the goroutine is locked to its
// thread.
func CurrentThreadID() uint64 {
	return uint64(unix.Gettid())
}
