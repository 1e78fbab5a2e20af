package batch

import (
	"runtime"
	"sync"

	"github.com/f3rmion/sm2/group"
	"github.com/f3rmion/sm2/sm2"
)

// Job is a single verification request.
type Job struct {
	Message   []byte
	Signature *sm2.Signature
	PublicKey group.Point
}

// Verifier checks jobs against one engine using a fixed-size worker pool.
type Verifier struct {
	engine  *sm2.Engine
	workers int
}

// New returns a Verifier backed by engine. A workers value below 1 selects
// one worker per logical CPU.
func New(engine *sm2.Engine, workers int) *Verifier {
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	return &Verifier{engine: engine, workers: workers}
}

// Workers returns the pool size.
func (v *Verifier) Workers() int {
	return v.workers
}

// Verify checks every job and returns one result per job, in input order.
// Result i is exactly what engine.Verify would return for jobs[i].
func (v *Verifier) Verify(jobs []Job) []bool {
	results := make([]bool, len(jobs))
	if len(jobs) == 0 {
		return results
	}

	workers := v.workers
	if workers > len(jobs) {
		workers = len(jobs)
	}

	indices := make(chan int, len(jobs))
	for i := range jobs {
		indices <- i
	}
	close(indices)

	// each index is written by exactly one worker
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range indices {
				job := &jobs[i]
				results[i] = v.engine.Verify(job.Message, job.Signature, job.PublicKey)
			}
		}()
	}
	wg.Wait()

	return results
}

// AllValid reports whether every job verifies. An empty batch is valid.
func (v *Verifier) AllValid(jobs []Job) bool {
	for _, ok := range v.Verify(jobs) {
		if !ok {
			return false
		}
	}
	return true
}
