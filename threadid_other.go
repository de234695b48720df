//go:build !linux && !windows

package threading

// CurrentThreadID returns a process-unique numeric identifier for the
// calling execution context, for diagnostics and logging only. On platforms
// without a cheap OS thread id syscall this is the goroutine id, which in Go
// is the execution context anyway.
func CurrentThreadID() uint64 {
	return goroutineID()
}
