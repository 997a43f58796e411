// Package threadpool implements a single-use, fixed-capacity worker pool.
//
// A Pool is driven through strictly ordered phases:
//
//	pool := threadpool.New(logger, len(jobs), 16)
//	defer pool.Destroy()
//
//	for _, job := range jobs {
//	    if err := pool.Submit(job); err != nil {
//	        return err
//	    }
//	}
//	return pool.RunAndWait()
//
// Workers are only started inside RunAndWait and pop jobs from the end of the
// queue, so jobs run in no particular order. Callers must only submit jobs that
// are independent of each other.
package threadpool

import (
	"errors"
	"fmt"
	"runtime"
	"sync"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

var (
	ErrCapacityExceeded = errors.New("capacity of thread pool has been exceeded")
	ErrPoolRunning      = errors.New("thread pool is already running")
	ErrPoolDestroyed    = errors.New("thread pool has been destroyed")
	ErrJobPanicked      = errors.New("job panicked")
)

// Job is a unit of work. Any parameters it needs are captured by the closure.
type Job = func()

type state int

const (
	stateIdle state = iota
	stateRunning
	stateDone
	stateDestroyed
)

// Pool holds a bounded job queue and the number of workers that drain it.
type Pool struct {
	logger   *zap.Logger
	workers  int
	capacity int

	mu    sync.Mutex
	queue []Job
	state state
}

// New creates a pool with room for exactly capacity jobs.
// If workers <= 0, uses GOMAXPROCS.
func New(logger *zap.Logger, capacity, workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if capacity < 0 {
		capacity = 0
	}
	logger.Debug("Thread pool initialised",
		zap.Int("capacity", capacity),
		zap.Int("workers", workers))

	return &Pool{
		logger:   logger,
		workers:  workers,
		capacity: capacity,
		queue:    make([]Job, 0, capacity),
	}
}

// Submit appends job to the queue. The job is not stored when the queue is
// full or the pool has already been started or destroyed.
func (p *Pool) Submit(job Job) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch p.state {
	case stateRunning, stateDone:
		return ErrPoolRunning
	case stateDestroyed:
		return ErrPoolDestroyed
	}

	if len(p.queue) == p.capacity {
		p.logger.Error("Thread pool queue is full",
			zap.Int("capacity", p.capacity))
		return fmt.Errorf("%w: capacity %d", ErrCapacityExceeded, p.capacity)
	}

	p.queue = append(p.queue, job)
	return nil
}

// RunAndWait starts the workers and blocks until every submitted job has
// finished. A panicking job does not stop the other workers; all panics are
// reported together once the queue is drained.
func (p *Pool) RunAndWait() error {
	p.mu.Lock()
	switch p.state {
	case stateRunning, stateDone:
		p.mu.Unlock()
		return ErrPoolRunning
	case stateDestroyed:
		p.mu.Unlock()
		return ErrPoolDestroyed
	}
	p.state = stateRunning
	jobs := len(p.queue)
	p.mu.Unlock()

	p.logger.Debug("Thread pool running",
		zap.Int("jobs", jobs),
		zap.Int("workers", p.workers))

	var (
		wg    sync.WaitGroup
		errMu sync.Mutex
		errs  error
	)

	wg.Add(p.workers)
	for i := range p.workers {
		go func(id int) {
			defer wg.Done()
			if err := p.worker(id); err != nil {
				errMu.Lock()
				errs = multierr.Append(errs, err)
				errMu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	p.mu.Lock()
	p.state = stateDone
	p.mu.Unlock()

	p.logger.Debug("Thread pool drained", zap.Int("jobs", jobs))
	return errs
}

// worker executes jobs until it observes an empty queue.
func (p *Pool) worker(id int) error {
	var errs error
	executed := 0
	for {
		job, ok := p.pop()
		if !ok {
			break
		}
		if err := run(job); err != nil {
			errs = multierr.Append(errs, err)
		}
		executed++
	}

	p.logger.Debug("Worker finished",
		zap.Int("worker", id),
		zap.Int("executed", executed))
	return errs
}

// pop removes the last job in the queue.
func (p *Pool) pop() (Job, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	n := len(p.queue)
	if n == 0 {
		return nil, false
	}
	job := p.queue[n-1]
	p.queue[n-1] = nil
	p.queue = p.queue[:n-1]
	return job, true
}

func run(job Job) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrJobPanicked, r)
		}
	}()
	job()
	return nil
}

// Destroy releases the queue. The pool cannot be used afterwards; calling
// Destroy more than once is safe.
func (p *Pool) Destroy() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state == stateDestroyed {
		return
	}
	p.queue = nil
	p.state = stateDestroyed
	p.logger.Debug("Thread pool destroyed")
}

// Size returns the number of pending jobs.
func (p *Pool) Size() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.queue)
}

func (p *Pool) Capacity() int {
	return p.capacity
}

func (p *Pool) Workers() int {
	return p.workers
}
