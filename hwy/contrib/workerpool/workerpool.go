// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent, reusable worker pool for splitting
// one byte kernel call over several goroutines. A Pool is created once and
// reused across many calls, so a large Invert or Sum does not pay goroutine
// spawn cost per call.
//
// Work is always split into disjoint segments whose boundaries are multiples
// of a caller-chosen alignment (usually the vector width), so each segment
// runs the vector body over whole vectors and only the final segment has a
// scalar remainder.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	pool.ParallelFor(len(buf), 16, func(_, start, end int) {
//	    bitwise.Invert(hwy.TargetU8x16, buf[start:end], buf[start:end])
//	})
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool that can be reused across many parallel
// operations. Workers are spawned once at creation and reused.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

// workItem is one segment of a parallel call.
type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a new worker pool with the specified number of workers.
// Workers are spawned immediately and persist until Close is called.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan workItem, numWorkers*2),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the worker pool. All pending work will complete.
// Calling Close multiple times is safe.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// Segment is a half-open byte range [Start, End).
type Segment struct {
	Start, End int
}

// Len returns End - Start.
func (s Segment) Len() int { return s.End - s.Start }

// Split divides [0, n) into at most parts contiguous segments. Every boundary
// except n itself is a multiple of align. Segments are as even as alignment
// allows; fewer than parts are returned when n is too short to give every
// segment at least one aligned block.
func Split(n, parts, align int) []Segment {
	if n <= 0 {
		return nil
	}
	if align < 1 {
		align = 1
	}
	if parts < 1 {
		parts = 1
	}

	blocks := (n + align - 1) / align
	parts = min(parts, blocks)
	per := blocks / parts
	extra := blocks % parts

	segs := make([]Segment, 0, parts)
	start := 0
	for i := range parts {
		nb := per
		if i < extra {
			nb++
		}
		end := min(start+nb*align, n)
		segs = append(segs, Segment{start, end})
		start = end
	}
	return segs
}

// ParallelFor splits [0, n) with Split(n, NumWorkers(), align) and calls fn
// once per segment, concurrently. seg is the segment index, so callers can
// collect per-segment results without locking. Blocks until all segments
// complete. It returns the number of segments.
func (p *Pool) ParallelFor(n, align int, fn func(seg, start, end int)) int {
	segs := Split(n, p.numWorkers, align)
	if len(segs) == 0 {
		return 0
	}

	if len(segs) == 1 || p.closed.Load() {
		for i, s := range segs {
			fn(i, s.Start, s.End)
		}
		return len(segs)
	}

	var wg sync.WaitGroup
	wg.Add(len(segs))
	for i, s := range segs {
		p.workC <- workItem{
			fn: func() {
				fn(i, s.Start, s.End)
			},
			barrier: &wg,
		}
	}
	wg.Wait()
	return len(segs)
}

// ParallelForBatched executes fn over batches of batchSize bytes using atomic
// work stealing. batchSize is rounded up to a multiple of align. This balances
// load better than ParallelFor when segments run at uneven speed, at the cost
// of one atomic add per batch.
func (p *Pool) ParallelForBatched(n, batchSize, align int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if align < 1 {
		align = 1
	}
	if batchSize < align {
		batchSize = align
	}
	batchSize = (batchSize + align - 1) / align * align

	if p.closed.Load() {
		fn(0, n)
		return
	}

	numBatches := (n + batchSize - 1) / batchSize
	workers := min(p.numWorkers, numBatches)
	if workers == 1 {
		fn(0, n)
		return
	}

	var nextBatch atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		p.workC <- workItem{
			fn: func() {
				for {
					start := int(nextBatch.Add(1)-1) * batchSize
					if start >= n {
						return
					}
					fn(start, min(start+batchSize, n))
				}
			},
			barrier: &wg,
		}
	}
	wg.Wait()
}
