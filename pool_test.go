package threading

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// recordingOp appends its tag to a shared log on every run and reschedules
// itself until remaining reaches zero.
type recordingOp struct {
	tag       string
	remaining int

	mu  *sync.Mutex
	log *[]string
}

func (o *recordingOp) Run() Disposition {
	o.mu.Lock()
	*o.log = append(*o.log, o.tag)
	o.mu.Unlock()

	o.remaining--
	if o.remaining > 0 {
		return Reschedule
	}
	return Done
}

func TestNewPool_Defaults(t *testing.T) {
	pool, err := NewPool()
	require.NoError(t, err)
	defer pool.Stop()

	assert.Greater(t, pool.NumWorkers(), 0)
}

func TestNewPool_InvalidConfig(t *testing.T) {
	_, err := NewPool(WithNumWorkers(-1))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidConfig))
}

func TestPool_FIFOWithSingleWorker(t *testing.T) {
	pool, err := NewPool(WithNumWorkers(1), WithName("test.fifo"))
	require.NoError(t, err)

	var (
		mu  sync.Mutex
		log []string
	)
	for _, tag := range []string{"A", "B", "C"} {
		pool.Submit(&recordingOp{tag: tag, remaining: 1, mu: &mu, log: &log})
	}

	waitForExecuted(t, pool, 3)
	pool.Stop()

	assert.Equal(t, []string{"A", "B", "C"}, log, "one worker preserves submission order")
}

func TestPool_RecurringOperation(t *testing.T) {
	pool, err := NewPool(WithNumWorkers(1), WithName("test.recur"))
	require.NoError(t, err)

	var (
		mu  sync.Mutex
		log []string
	)

	// Hold the worker on a gate so both operations are queued before the
	// first reschedule can happen.
	gate := make(chan struct{})
	pool.Submit(OperationFunc(func() { <-gate }))
	pool.Submit(&recordingOp{tag: "R", remaining: 3, mu: &mu, log: &log})
	pool.Submit(&recordingOp{tag: "X", remaining: 1, mu: &mu, log: &log})
	close(gate)

	waitForExecuted(t, pool, 5)
	pool.Stop()

	assert.Equal(t, []string{"R", "X", "R", "R"}, log,
		"rescheduled op interleaves behind newer submissions")

	stats := pool.Stats()
	assert.Equal(t, uint64(3), stats.Submitted)
	assert.Equal(t, uint64(5), stats.Executed)
	assert.Equal(t, uint64(2), stats.Requeued)
}

func TestPool_SubmitNilIgnored(t *testing.T) {
	pool, err := NewPool(WithNumWorkers(1))
	require.NoError(t, err)
	defer pool.Stop()

	pool.Submit(nil)
	assert.Zero(t, pool.Stats().Submitted)
	assert.Zero(t, pool.Pending())
}

func TestPool_StopDiscardsQueued(t *testing.T) {
	pool, err := NewPool(WithNumWorkers(1), WithName("test.discard"))
	require.NoError(t, err)

	blocked := make(chan struct{})
	started := make(chan struct{})
	pool.Submit(OperationFunc(func() {
		close(started)
		<-blocked
	}))
	<-started

	// The worker is busy; these can only sit in the queue.
	var executed atomic.Int64
	for i := 0; i < 5; i++ {
		pool.Submit(OperationFunc(func() { executed.Add(1) }))
	}

	close(blocked) // in-flight op finishes, then the worker observes stop
	pool.Stop()

	assert.Zero(t, pool.Pending(), "queue must be empty after Stop")
	stats := pool.Stats()
	assert.Equal(t, stats.Executed+stats.Dropped, stats.Submitted)
}

func TestPool_InFlightOpCompletesOnStop(t *testing.T) {
	pool, err := NewPool(WithNumWorkers(1))
	require.NoError(t, err)

	started := make(chan struct{})
	finished := make(chan struct{})
	pool.Submit(OperationFunc(func() {
		close(started)
		time.Sleep(50 * time.Millisecond)
		close(finished)
	}))

	<-started
	pool.Stop() // must wait for the running op

	select {
	case <-finished:
	default:
		t.Fatal("Stop returned while an operation was still running")
	}
}

func TestPool_StopIsIdempotent(t *testing.T) {
	pool, err := NewPool(WithNumWorkers(2))
	require.NoError(t, err)

	pool.Stop()
	pool.Stop()

	var g errgroup.Group
	for i := 0; i < 4; i++ {
		g.Go(func() error {
			pool.Stop()
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

func TestPool_Restart(t *testing.T) {
	pool, err := NewPool(WithNumWorkers(2), WithName("test.restart"))
	require.NoError(t, err)

	pool.Stop()
	pool.Start()
	defer pool.Stop()

	var ran atomic.Bool
	done := make(chan struct{})
	pool.Submit(OperationFunc(func() {
		ran.Store(true)
		close(done)
	}))

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("restarted pool did not execute work")
	}
	assert.True(t, ran.Load())
}

func TestPool_PanicRecovery(t *testing.T) {
	var caught atomic.Value
	pool, err := NewPool(
		WithNumWorkers(1),
		WithPanicHandler(func(r any) { caught.Store(r) }),
	)
	require.NoError(t, err)

	pool.Submit(OperationFunc(func() { panic("boom") }))

	// The worker must survive the panic and keep draining.
	done := make(chan struct{})
	pool.Submit(OperationFunc(func() { close(done) }))
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("worker died after a panicking operation")
	}
	pool.Stop()

	assert.Equal(t, "boom", caught.Load())
}

func TestPool_ConcurrentSubmit(t *testing.T) {
	pool, err := NewPool(WithNumWorkers(4), WithName("test.stress"))
	require.NoError(t, err)

	const (
		submitters = 8
		perSub     = 200
	)

	var executed atomic.Int64
	var g errgroup.Group
	for i := 0; i < submitters; i++ {
		g.Go(func() error {
			for j := 0; j < perSub; j++ {
				pool.Submit(OperationFunc(func() { executed.Add(1) }))
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	waitForExecuted(t, pool, submitters*perSub)
	pool.Stop()

	assert.Equal(t, int64(submitters*perSub), executed.Load())
}

func TestPool_IndependentPools(t *testing.T) {
	a, err := NewPool(WithNumWorkers(1), WithName("pool.a"))
	require.NoError(t, err)
	b, err := NewPool(WithNumWorkers(1), WithName("pool.b"))
	require.NoError(t, err)

	blocked := make(chan struct{})
	held := make(chan struct{})
	a.Submit(OperationFunc(func() {
		close(held)
		<-blocked
	}))
	<-held

	// Pool a is wedged; pool b must still drain its own queue.
	done := make(chan struct{})
	b.Submit(OperationFunc(func() { close(done) }))
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("pools are sharing workers or queues")
	}

	close(blocked)
	a.Stop()
	b.Stop()
}

// waitForExecuted polls until the pool has executed n operations.
func waitForExecuted(t *testing.T, pool *Pool, n int) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if pool.Stats().Executed >= uint64(n) {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("timed out waiting for %d executions, got %d", n, pool.Stats().Executed)
}
