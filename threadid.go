package threading

import (
	"runtime"
	"strconv"
)

// goroutineID returns the runtime id of the calling goroutine, parsed from
// the stack header ("goroutine 123 [running]:"). Ids are assigned
// monotonically and never reused, and id 0 is never issued, so 0 is safe as
// a "no owner" sentinel.
//
// This is the usual trick for goroutine-affine locks; the runtime offers no
// public accessor.
func goroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	s := buf[len("goroutine "):n]
	i := 0
	for i < len(s) && s[i] != ' ' {
		i++
	}
	id, err := strconv.ParseUint(string(s[:i]), 10, 64)
	if err != nil {
		// Unreachable unless the stack header format changes. Must not
		// collide with the 0 "no owner" sentinel.
		return ^uint64(0)
	}
	return id
}
