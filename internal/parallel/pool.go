package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// WorkerPool runs work items on a fixed number of goroutines.
//
// Thread safety: ExecuteAll may be called from several goroutines at once.
// Close must not overlap an ExecuteAll call.
type WorkerPool struct {
	workers int

	// queue is shared by all workers.
	queue chan func()

	// done signals workers to stop once the queue is drained.
	done chan struct{}

	wg sync.WaitGroup

	// running indicates whether the pool is accepting work.
	running atomic.Bool
}

// NewWorkerPool creates a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
// Workers start immediately.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	p := &WorkerPool{
		workers: workers,
		queue:   make(chan func(), max(workers*4, 8)),
		done:    make(chan struct{}),
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for range workers {
		go p.worker()
	}

	return p
}

func (p *WorkerPool) worker() {
	defer p.wg.Done()

	for {
		select {
		case work := <-p.queue:
			work()
		case <-p.done:
			// Drain what was queued before Close.
			for {
				select {
				case work := <-p.queue:
					work()
				default:
					return
				}
			}
		}
	}
}

// ExecuteAll runs every item and waits for all of them to complete.
// Nil items are skipped. If the pool is closed, ExecuteAll is a no-op and
// returns false.
func (p *WorkerPool) ExecuteAll(work []func()) bool {
	if !p.IsRunning() {
		return false
	}
	if len(work) == 0 {
		return true
	}

	var completion sync.WaitGroup
	for _, fn := range work {
		if fn == nil {
			continue
		}
		completion.Add(1)
		item := func() {
			defer completion.Done()
			fn()
		}
		select {
		case p.queue <- item:
		case <-p.done:
			// Closed while submitting: run the rest on the caller.
			item()
		}
	}

	completion.Wait()
	return true
}

// Close stops accepting work, waits for queued work to finish and stops
// all workers. Close is safe to call multiple times.
func (p *WorkerPool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// IsRunning reports whether the pool is still accepting work.
func (p *WorkerPool) IsRunning() bool {
	return p.running.Load()
}
