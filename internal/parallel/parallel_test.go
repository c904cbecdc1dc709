package parallel

import (
	"sync/atomic"
	"testing"
)

func TestForCoversEveryIndexOnce(t *testing.T) {
	for _, workers := range []int{0, 1, 3, 16} {
		const n = 1000
		hits := make([]int32, n)
		For(0, n, workers, func(i int) {
			atomic.AddInt32(&hits[i], 1)
		})
		for i, h := range hits {
			if h != 1 {
				t.Fatalf("workers=%d: index %d visited %d times", workers, i, h)
			}
		}
	}
}

func TestForEmptyRange(t *testing.T) {
	called := false
	For(5, 5, 4, func(i int) { called = true })
	For(5, 2, 4, func(i int) { called = true })
	if called {
		t.Error("fn called for an empty range")
	}
}

func TestChunksPartition(t *testing.T) {
	const n = 17
	seen := make([]int32, n)
	var calls int32
	Chunks(0, n, 4, func(worker, start, end int) {
		atomic.AddInt32(&calls, 1)
		if start >= end {
			t.Errorf("empty chunk [%d, %d)", start, end)
		}
		for i := start; i < end; i++ {
			atomic.AddInt32(&seen[i], 1)
		}
	})
	if calls > 4 {
		t.Errorf("expected at most 4 chunks, got %d", calls)
	}
	for i, h := range seen {
		if h != 1 {
			t.Fatalf("index %d covered %d times", i, h)
		}
	}
}

func TestNumWorkers(t *testing.T) {
	if got := NumWorkers(7); got != 7 {
		t.Errorf("NumWorkers(7) = %d", got)
	}
	if got := NumWorkers(0); got < 1 {
		t.Errorf("NumWorkers(0) = %d, want >= 1", got)
	}
	if got := NumWorkers(-3); got < 1 {
		t.Errorf("NumWorkers(-3) = %d, want >= 1", got)
	}
}
