package threading

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestRecursiveMutex_Reentry(t *testing.T) {
	mu := NewRecursiveMutex("test.reentrant")

	mu.Lock()
	mu.Lock() // must not deadlock
	require.True(t, mu.TryLock(), "holder TryLock always succeeds")

	// Still held until every acquisition is paired.
	held := make(chan bool)
	go func() {
		held <- mu.TryLock()
	}()
	assert.False(t, <-held)

	mu.Unlock()
	mu.Unlock()
	go func() {
		held <- mu.TryLock()
	}()
	assert.False(t, <-held, "one unpaired Lock remains")

	mu.Unlock() // final release
	go func() {
		if mu.TryLock() {
			mu.Unlock()
			held <- true
			return
		}
		held <- false
	}()
	assert.True(t, <-held)
}

func TestRecursiveMutex_MutualExclusion(t *testing.T) {
	const (
		goroutines = 8
		increments = 1000
	)

	mu := NewRecursiveMutex("test.counter")
	counter := 0

	var g errgroup.Group
	for i := 0; i < goroutines; i++ {
		g.Go(func() error {
			for j := 0; j < increments; j++ {
				// Nested acquisition on every pass.
				mu.Lock()
				mu.Lock()
				counter++
				mu.Unlock()
				mu.Unlock()
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.Equal(t, goroutines*increments, counter)
}

func TestRecursiveMutex_Disable(t *testing.T) {
	mu := NewRecursiveMutex("test.disabled")
	mu.Disable()

	// Pass-through mode: never blocks, TryLock always succeeds, from any
	// number of goroutines at once.
	var g errgroup.Group
	for i := 0; i < 4; i++ {
		g.Go(func() error {
			for j := 0; j < 100; j++ {
				mu.Lock()
				if !mu.TryLock() {
					t.Error("TryLock returned false on a disabled mutex")
				}
				mu.Unlock()
				mu.Unlock()
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

func TestRecursiveMutex_DisableWhileFree(t *testing.T) {
	mu := NewRecursiveMutex("test.late-disable")
	mu.Lock()
	mu.Unlock()

	mu.Disable()

	done := make(chan struct{})
	go func() {
		mu.Lock() // must not block
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Lock blocked after Disable")
	}
}

func TestGoroutineID(t *testing.T) {
	require.NotZero(t, goroutineID())
	assert.Equal(t, goroutineID(), goroutineID(), "stable within a goroutine")

	other := make(chan uint64)
	go func() {
		other <- goroutineID()
	}()
	assert.NotEqual(t, goroutineID(), <-other, "distinct across goroutines")
}
