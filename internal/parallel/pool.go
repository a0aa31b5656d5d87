// Package parallel runs independent work items on a fixed set of
// goroutines. The transition producer uses it to render frames
// concurrently while emitting them in index order.
package parallel

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
)

// ErrPoolClosed is returned for work submitted to, or interrupted by, a
// closed pool.
var ErrPoolClosed = errors.New("parallel: pool closed")

// WorkerPool is a fixed set of goroutines, each fed by its own queue.
// An idle worker steals from the other queues before blocking, so a batch
// with a few slow frames (large blur kernels, say) still spreads evenly.
//
// Thread safety: WorkerPool is safe for concurrent use.
type WorkerPool struct {
	workers int
	queues  []chan func()
	done    chan struct{}
	wg      sync.WaitGroup
	running atomic.Bool
}

// NewWorkerPool creates a new worker pool with the specified number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
// The pool starts immediately and workers begin waiting for work.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	queueSize := max(workers*4, 8)
	p := &WorkerPool{
		workers: workers,
		queues:  make([]chan func(), workers),
		done:    make(chan struct{}),
	}
	for i := range p.queues {
		p.queues[i] = make(chan func(), queueSize)
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}

	return p
}

// worker is the main loop for each worker goroutine.
func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()

	own := p.queues[id]
	for {
		var work func()
		select {
		case work = <-own:
		default:
			work = p.steal(id)
		}

		if work == nil {
			select {
			case <-p.done:
				p.drain(own)
				return
			case work = <-own:
			}
		}
		if work != nil {
			work()
		}
	}
}

// drain executes all remaining work in a queue.
func (p *WorkerPool) drain(queue chan func()) {
	for {
		select {
		case work := <-queue:
			if work != nil {
				work()
			}
		default:
			return
		}
	}
}

// steal takes one item from another worker's queue, or returns nil.
func (p *WorkerPool) steal(id int) func() {
	for i := 1; i < p.workers; i++ {
		select {
		case work := <-p.queues[(id+i)%p.workers]:
			return work
		default:
		}
	}
	return nil
}

// ExecuteAll distributes work round-robin across workers and waits for
// every queued item to finish. It returns ErrPoolClosed without running
// anything once the pool is closed, and an error wrapping ErrPoolClosed
// when Close interrupts the batch and some items are dropped.
func (p *WorkerPool) ExecuteAll(work []func()) error {
	if len(work) == 0 {
		return nil
	}
	if !p.running.Load() {
		return ErrPoolClosed
	}

	var pending sync.WaitGroup
	pending.Add(len(work))

	dropped := 0
	for i, fn := range work {
		wrapped := func() {
			defer pending.Done()
			fn()
		}

		select {
		case <-p.done:
			pending.Done()
			dropped++
			continue
		default:
		}
		select {
		case p.queues[i%p.workers] <- wrapped:
		case <-p.done:
			pending.Done()
			dropped++
		}
	}

	// Workers may have exited before picking up the last items sent.
	if !p.running.Load() {
		for _, q := range p.queues {
			p.drain(q)
		}
	}
	pending.Wait()

	if dropped > 0 {
		return fmt.Errorf("%w: %d of %d items dropped", ErrPoolClosed, dropped, len(work))
	}
	return nil
}

// Close stops accepting work, lets the workers finish what is queued and
// waits for them to exit. Close is safe to call multiple times.
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

// IsRunning returns true if the pool is still accepting work.
func (p *WorkerPool) IsRunning() bool {
	return p.running.Load()
}
