//go:build windows

package threading

import "golang.org/x/sys/windows"

// CurrentThreadID returns a process-unique numeric identifier for the
// calling execution context, for diagnostics and logging only. On Windows
// this is the OS thread id the goroutine is currently running on; the Go
// scheduler may move the goroutine between threads, so the value is not
// stable across calls unless the goroutine is locked to its thread.
func CurrentThreadID() uint64 {
	return uint64(windows.GetCurrentThreadId())
}
