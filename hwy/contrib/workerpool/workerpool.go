// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool splits index ranges across goroutines for bulk kernels.
//
// A Pool only holds configuration: every call starts its goroutines through an
// errgroup and waits for them, so nothing outlives the call and a Pool is safe
// to share. The first error returned by a worker cancels the context seen by
// the remaining workers and is returned to the caller.
//
// Usage:
//
//	pool := workerpool.New(workerpool.WithGrain(hwy.Lanes16x8))
//
//	err := pool.ParallelFor(ctx, len(data), func(start, end int) error {
//	    processRange(data[start:end])
//	    return nil
//	})
package workerpool

import (
	"context"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Pool distributes work over a fixed number of goroutines.
type Pool struct {
	numWorkers int
	grain      int
}

// Option configures a Pool.
type Option func(*Pool)

// WithWorkers sets the number of goroutines per call.
// Values <= 0 select GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(p *Pool) {
		p.numWorkers = n
	}
}

// WithGrain makes every range boundary handed to ParallelFor a multiple of g,
// except the final end which is always n. Values <= 0 select 1.
func WithGrain(g int) Option {
	return func(p *Pool) {
		p.grain = g
	}
}

// New creates a Pool. Without options it uses GOMAXPROCS workers and grain 1.
func New(opts ...Option) *Pool {
	p := &Pool{}
	for _, opt := range opts {
		opt(p)
	}
	if p.numWorkers <= 0 {
		p.numWorkers = runtime.GOMAXPROCS(0)
	}
	if p.grain <= 0 {
		p.grain = 1
	}
	return p
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Grain returns the alignment of range boundaries.
func (p *Pool) Grain() int {
	return p.grain
}

// ParallelFor executes fn over [0, n) split into at most NumWorkers
// contiguous ranges. Blocks until all work completes.
//
// fn receives (start, end) indices where work should process [start, end).
// If ctx is already done no range is started and ctx.Err() is returned.
func (p *Pool) ParallelFor(ctx context.Context, n int, fn func(start, end int) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if n <= 0 {
		return nil
	}

	units := (n + p.grain - 1) / p.grain
	workers := min(p.numWorkers, units)

	// For very small n, just run sequentially
	if workers == 1 {
		return fn(0, n)
	}

	chunkSize := (units + workers - 1) / workers * p.grain

	g, gctx := errgroup.WithContext(ctx)
	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return fn(start, end)
		})
	}
	return g.Wait()
}

// ParallelForEach executes fn for each index in [0, n) using atomic work
// stealing. This provides better load balancing when work per item varies.
// Workers stop picking up new indices once any call fails or ctx is done.
func (p *Pool) ParallelForEach(ctx context.Context, n int, fn func(i int) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if n <= 0 {
		return nil
	}

	workers := min(p.numWorkers, n)
	if workers == 1 {
		for i := range n {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := fn(i); err != nil {
				return err
			}
		}
		return nil
	}

	var nextIdx atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	for range workers {
		g.Go(func() error {
			for {
				if err := gctx.Err(); err != nil {
					return err
				}
				idx := int(nextIdx.Add(1)) - 1
				if idx >= n {
					return nil
				}
				if err := fn(idx); err != nil {
					return err
				}
			}
		})
	}
	return g.Wait()
}
