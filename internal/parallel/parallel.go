// Package parallel provides small helpers for splitting independent work
// across goroutines.
package parallel

import (
	"runtime"
	"sync"
)

// NumWorkers resolves a worker count: n <= 0 means one worker per CPU.
func NumWorkers(n int) int {
	if n > 0 {
		return n
	}
	return runtime.GOMAXPROCS(0)
}

// For executes fn for every index in [start, end), split into contiguous
// chunks across workers. With a single worker it degenerates to a plain
// loop on the calling goroutine.
func For(start, end, workers int, fn func(i int)) {
	Chunks(start, end, workers, func(_, s, e int) {
		for i := s; i < e; i++ {
			fn(i)
		}
	})
}

// Chunks partitions [start, end) into at most workers contiguous ranges and
// calls fn once per range with the worker index. Useful when each worker
// keeps local state that is reduced after all ranges complete.
func Chunks(start, end, workers int, fn func(worker, start, end int)) {
	total := end - start
	if total <= 0 {
		return
	}
	workers = NumWorkers(workers)
	if workers > total {
		workers = total
	}
	if workers == 1 {
		fn(0, start, end)
		return
	}

	chunk := (total + workers - 1) / workers
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		s := start + w*chunk
		e := s + chunk
		if e > end {
			e = end
		}
		if s >= e {
			break
		}
		wg.Add(1)
		go func(w, s, e int) {
			defer wg.Done()
			fn(w, s, e)
		}(w, s, e)
	}
	wg.Wait()
}
