package workerpool

import (
	"sync/atomic"
	"testing"
)

func TestRunCoversWholeRange(t *testing.T) {
	const n = 1000
	var seen = make([]int32, n)
	Run(8, n, func(worker, lo, hi int) {
		for i := lo; i < hi; i++ {
			atomic.AddInt32(&seen[i], 1)
		}
	})
	for i, c := range seen {
		if c != 1 {
			t.Fatalf("index %d visited %d times, want 1", i, c)
		}
	}
}

func TestRunSingleWorker(t *testing.T) {
	var total int
	Run(1, 10, func(worker, lo, hi int) {
		total += hi - lo
	})
	if total != 10 {
		t.Fatalf("total = %d, want 10", total)
	}
}

func TestRunPropagatesPanic(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic to propagate")
		}
	}()
	Run(4, 100, func(worker, lo, hi int) {
		if worker == 2 {
			panic("boom")
		}
	})
}
