// Package workerpool runs batches of jobs on a fixed number of goroutines.
package workerpool

import (
	"sync"

	"github.com/kiteco/esparse/kite-golib/errors"
)

// Job is a unit of work; a non-nil error is collected and reported by Wait.
type Job func() error

// Pool runs jobs on a fixed number of goroutines.
type Pool struct {
	jobs     chan Job
	stop     chan struct{}
	stopOnce sync.Once
	pending  sync.WaitGroup

	m    sync.Mutex
	errs errors.Errors
}

// New starts a pool of n workers.
func New(n int) *Pool {
	if n < 1 {
		n = 1
	}
	p := &Pool{
		jobs: make(chan Job),
		stop: make(chan struct{}),
	}
	for i := 0; i < n; i++ {
		go p.work()
	}
	return p
}

// Add queues jobs without blocking.
func (p *Pool) Add(jobs []Job) {
	p.pending.Add(len(jobs))
	go p.feed(jobs)
}

// AddBlocking queues jobs and returns once every job has been handed to a worker.
func (p *Pool) AddBlocking(jobs []Job) {
	p.pending.Add(len(jobs))
	p.feed(jobs)
}

// Wait blocks until every queued job has run or been dropped by Stop, and
// returns the errors of the failed jobs.
func (p *Pool) Wait() error {
	p.pending.Wait()

	p.m.Lock()
	defer p.m.Unlock()
	if p.errs == nil {
		return nil
	}
	return p.errs
}

// Stop shuts down the workers. Jobs that have not started are dropped.
func (p *Pool) Stop() {
	p.stopOnce.Do(func() { close(p.stop) })
}

func (p *Pool) feed(jobs []Job) {
	for i, job := range jobs {
		if p.stopped() {
			p.pending.Add(i - len(jobs))
			return
		}
		select {
		case p.jobs <- job:
		case <-p.stop:
			p.pending.Add(i - len(jobs))
			return
		}
	}
}

func (p *Pool) work() {
	for !p.stopped() {
		select {
		case <-p.stop:
			return
		case job := <-p.jobs:
			p.run(job)
		}
	}
}

func (p *Pool) run(job Job) {
	defer p.pending.Done()
	if err := job(); err != nil {
		p.m.Lock()
		p.errs = errors.Append(p.errs, err)
		p.m.Unlock()
	}
}

func (p *Pool) stopped() bool {
	select {
	case <-p.stop:
		return true
	default:
		return false
	}
}
