package threading

import (
	"log/slog"
	"runtime"
)

// worker is the loop run by each pool goroutine: sleep until the queue is
// non-empty or the pool is stopping, pop the front operation, run it with
// the lock released, and push it back if it asked to recur.
func (p *Pool) worker(id int) {
	defer p.wg.Done()

	logger := p.logger().With(
		slog.String("pool", p.config.Name),
		slog.Int("worker", id),
	)
	logger.Debug("worker started", slog.Uint64("tid", CurrentThreadID()))

	for {
		p.mu.Lock()
		for len(p.queue) == 0 && !p.stopping {
			p.cond.Wait()
		}
		if p.stopping {
			p.mu.Unlock()
			break
		}
		op := p.queue[0]
		p.queue[0] = nil // free the slot for GC
		p.queue = p.queue[1:]
		p.mu.Unlock()

		disp := p.invoke(op, logger)
		p.metrics.executed.Add(1)

		if disp == Reschedule {
			p.metrics.requeued.Add(1)
			p.mu.Lock()
			p.queue = append(p.queue, op)
			p.mu.Unlock()
		}
	}

	logger.Debug("worker exiting")
}

// invoke runs op with panic recovery. A panicking operation is treated as
// Done: rescheduling it would just panic again.
func (p *Pool) invoke(op Operation, logger *slog.Logger) (disp Disposition) {
	defer func() {
		if r := recover(); r != nil {
			disp = Done
			if p.config.PanicHandler != nil {
				p.config.PanicHandler(r)
				return
			}
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			logger.Error("operation panicked",
				slog.Any("panic", r),
				slog.String("stack", string(buf[:n])),
			)
		}
	}()

	return op.Run()
}

func (p *Pool) logger() *slog.Logger {
	if p.config.Logger != nil {
		return p.config.Logger
	}
	return slog.Default()
}
