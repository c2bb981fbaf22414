// Package parallel runs independent jobs on a fixed set of goroutines.
//
// The shape renderer uses it to encode the batches of different kinds at the
// same time. Batches never share memory, so jobs need no locking.
package parallel

import (
	"runtime"
	"sync"
)

// Pool is a fixed set of workers with one job queue each. An idle worker
// takes jobs from the other queues before it blocks on its own.
//
// Pool is safe for concurrent use.
type Pool struct {
	workers int
	queues  []chan func()
	done    chan struct{}
	wg      sync.WaitGroup

	// mu is held shared while Run enqueues, so Close cannot strand a job.
	mu     sync.RWMutex
	closed bool
}

// NewPool starts a pool of n workers. If n <= 0, GOMAXPROCS is used.
func NewPool(n int) *Pool {
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	depth := max(n*4, 8)

	p := &Pool{
		workers: n,
		queues:  make([]chan func(), n),
		done:    make(chan struct{}),
	}
	for i := range p.queues {
		p.queues[i] = make(chan func(), depth)
	}

	p.wg.Add(n)
	for i := range n {
		go p.loop(i)
	}
	return p
}

// Workers returns the number of worker goroutines.
func (p *Pool) Workers() int { return p.workers }

func (p *Pool) loop(id int) {
	defer p.wg.Done()
	own := p.queues[id]
	for {
		select {
		case <-p.done:
			drain(own)
			return
		case job := <-own:
			job()
			continue
		default:
		}

		if job := p.steal(id); job != nil {
			job()
			continue
		}
		select {
		case <-p.done:
			drain(own)
			return
		case job := <-own:
			job()
		}
	}
}

func (p *Pool) steal(id int) func() {
	for i, q := range p.queues {
		if i == id {
			continue
		}
		select {
		case job := <-q:
			return job
		default:
		}
	}
	return nil
}

func drain(q chan func()) {
	for {
		select {
		case job := <-q:
			job()
		default:
			return
		}
	}
}

// Run distributes jobs round-robin and returns when all of them finished.
// After Close, Run executes the jobs on the calling goroutine.
func (p *Pool) Run(jobs []func()) {
	if len(jobs) == 0 {
		return
	}

	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		for _, job := range jobs {
			job()
		}
		return
	}
	var wg sync.WaitGroup
	wg.Add(len(jobs))
	for i, job := range jobs {
		p.queues[i%p.workers] <- func() {
			defer wg.Done()
			job()
		}
	}
	p.mu.RUnlock()
	wg.Wait()
}

// Close stops the workers after they finish queued jobs. It is safe to call
// more than once, and concurrently with Run.
func (p *Pool) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.done)
	p.mu.Unlock()
	p.wg.Wait()
}
