// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"runtime"
	"sync"
)

// WorkFunc processes one input. It may run on any worker goroutine.
type WorkFunc[T any] func(Input) (T, error)

// CollectFunc receives each work result in input order, on a single
// goroutine. Returning an error stops the run.
type CollectFunc[T any] func(in Input, v T, err error) error

// threads resolves the worker count: 0 means all CPUs.
func (c Config) threads() int {
	if c.Threads > 0 {
		return c.Threads
	}
	return runtime.NumCPU()
}

// ForEachResult runs work over every input on cfg.Threads workers and hands
// the results to collect in the same order ForEachInput would. Output is
// therefore identical for any thread count.
//
// It returns the first collect error, then cancellation of ctx, then any
// error reading the inputs.
func ForEachResult[T any](ctx context.Context, cfg Config, work WorkFunc[T], collect CollectFunc[T]) error {
	threads := cfg.threads()
	if threads == 1 {
		return ForEachInput(ctx, cfg, func(in Input) error {
			v, err := work(in)
			return collect(in, v, err)
		})
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	type job struct {
		seq int
		in  Input
	}
	type result struct {
		seq int
		in  Input
		v   T
		err error
	}
	jobs := make(chan job, threads*2)
	results := make(chan result, threads*2)

	// Workers
	var wg sync.WaitGroup
	wg.Add(threads)
	for w := 0; w < threads; w++ {
		go func() {
			defer wg.Done()
			for j := range jobs {
				v, err := work(j.in)
				select {
				case results <- result{seq: j.seq, in: j.in, v: v, err: err}:
				case <-runCtx.Done():
					return
				}
			}
		}()
	}

	// Feed work
	feedErr := make(chan error, 1)
	go func() {
		n := 0
		err := ForEachInput(runCtx, cfg, func(in Input) error {
			select {
			case jobs <- job{seq: n, in: in}:
				n++
				return nil
			case <-runCtx.Done():
				return runCtx.Err()
			}
		})
		close(jobs)
		feedErr <- err
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	// Reorder and collect
	var (
		cerr    error
		next    int
		pending = make(map[int]result, threads*2)
	)
	for r := range results {
		if cerr != nil {
			continue
		}
		pending[r.seq] = r
		for {
			p, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			next++
			if err := collect(p.in, p.v, p.err); err != nil {
				cerr = err
				cancel()
				break
			}
		}
	}
	ferr := <-feedErr

	switch {
	case cerr != nil:
		return cerr
	case ctx.Err() != nil:
		return ctx.Err()
	}
	return ferr
}
