// Package worker replays PGN game texts on a fixed set of goroutines.
package worker

import (
	"sync"

	"github.com/lgbarn/chesscore"
)

// Job is the movetext of one game waiting to be replayed.
type Job struct {
	Index  int    // Position within the source
	Source string // Input file name, empty for stdin
	Text   string
}

// Result is a replayed game or the error that stopped the replay.
type Result struct {
	Index  int
	Source string
	Game   *chesscore.Game
	Err    error
}

// LoadFunc replays a single job.
type LoadFunc func(job Job) Result

// Pool fans jobs out to a fixed number of loaders. A pool runs once:
// after Close it cannot be restarted.
type Pool struct {
	workers int
	buffer  int
	jobs    chan Job
	results chan Result
	load    LoadFunc
	wg      sync.WaitGroup
}

// Option configures a Pool.
type Option func(*Pool)

// WithWorkers sets the number of loaders. Values below one are ignored.
func WithWorkers(n int) Option {
	return func(p *Pool) {
		if n >= 1 {
			p.workers = n
		}
	}
}

// WithBuffer sets how many jobs and results may queue. Values below one
// are ignored.
func WithBuffer(n int) Option {
	return func(p *Pool) {
		if n >= 1 {
			p.buffer = n
		}
	}
}

// New returns a pool calling load, with one loader and a buffer of ten
// unless options say otherwise.
func New(load LoadFunc, opts ...Option) *Pool {
	p := &Pool{workers: 1, buffer: 10, load: load}
	for _, opt := range opts {
		opt(p)
	}
	p.jobs = make(chan Job, p.buffer)
	p.results = make(chan Result, p.buffer)
	return p
}

// Start launches the loaders.
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.run()
	}
}

func (p *Pool) run() {
	defer p.wg.Done()
	for job := range p.jobs {
		p.results <- p.load(job)
	}
}

// Submit queues a job, blocking while the buffer is full.
func (p *Pool) Submit(job Job) {
	p.jobs <- job
}

// Close stops accepting jobs, waits for the loaders and then closes the
// results channel.
func (p *Pool) Close() {
	close(p.jobs)
	p.wg.Wait()
	close(p.results)
}

// Results delivers results in completion order.
func (p *Pool) Results() <-chan Result {
	return p.results
}

// LoadAll starts the pool, runs every job and closes the pool. Results come
// back in job order; each job's Index is overwritten with its position.
func (p *Pool) LoadAll(jobs []Job) []Result {
	p.Start()
	go func() {
		for i, job := range jobs {
			job.Index = i
			p.Submit(job)
		}
		p.Close()
	}()

	out := make([]Result, len(jobs))
	for r := range p.Results() {
		out[r.Index] = r
	}
	return out
}
