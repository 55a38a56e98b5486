// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package workerpool runs batch vector kernels over contiguous index ranges
// on a fixed set of goroutines.
//
// A Pool is created once and reused across batches:
//
//	pool := workerpool.New(0)
//	defer pool.Close()
//	vec4.TransformSliceParallel(pool, points, m)
package workerpool

import (
	"runtime"
	"sync"
)

// Pool is a persistent set of workers. Its methods are safe for concurrent
// use; a nil *Pool runs everything on the calling goroutine.
type Pool struct {
	workers int
	work    chan task

	// mu orders Close against the sends of ParallelFor.
	mu     sync.RWMutex
	closed bool
}

type task struct {
	fn   func()
	done *sync.WaitGroup
}

// New starts a pool of n workers. If n <= 0 it uses GOMAXPROCS.
func New(n int) *Pool {
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		workers: n,
		work:    make(chan task, n*2),
	}
	for range n {
		go p.run()
	}
	return p
}

func (p *Pool) run() {
	for t := range p.work {
		t.fn()
		t.done.Done()
	}
}

// NumWorkers returns the number of workers, or 1 for a nil pool.
func (p *Pool) NumWorkers() int {
	if p == nil {
		return 1
	}
	return p.workers
}

// Close stops the workers after pending work finishes. Later calls to
// ParallelFor run sequentially. Close may be called more than once.
func (p *Pool) Close() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.closed {
		p.closed = true
		close(p.work)
	}
}

// ParallelFor calls fn over [0, n) split into contiguous chunks of at least
// grain indices, one chunk per worker, and waits for all of them. Ranges
// smaller than two grains run on the calling goroutine.
func (p *Pool) ParallelFor(n, grain int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	grain = max(grain, 1)
	chunks := min(p.NumWorkers(), n/grain)
	if chunks < 2 {
		fn(0, n)
		return
	}

	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		fn(0, n)
		return
	}
	size := (n + chunks - 1) / chunks
	var wg sync.WaitGroup
	for start := 0; start < n; start += size {
		end := min(start+size, n)
		wg.Add(1)
		p.work <- task{fn: func() { fn(start, end) }, done: &wg}
	}
	p.mu.RUnlock()
	wg.Wait()
}
