package tablebase

import (
	"sync/atomic"

	"github.com/gomatetb/matetb/internal/workerpool"
)

// solverBatch sizes sweep batches the same way the forward expander
// sizes level batches: enough per worker to amortize dispatch overhead,
// never below a floor that keeps small tables from serializing.
func solverBatch(n, workers int) int {
	var b = n / (workers * 32)
	if b < 128 {
		b = 128
	}
	return b
}

// Solve runs repeated backward sweeps over tb until a full sweep changes
// nothing: a fixed-point relaxation where each node's score converges to
// the max, over its children, of the one-ply Tau transform. Scores are
// read and written through sync/atomic the whole time; the termination
// test only trusts a sweep whose change counter is exactly zero, the
// only way to witness the fixed point under concurrent, lock-free score
// updates.
func Solve(tb Table, workers int) (sweeps int) {
	var n = len(tb)
	if n == 0 {
		return 0
	}
	var batch = solverBatch(n, workers)
	var numBatches = (n + batch - 1) / batch

	for {
		sweeps++
		var changed int64

		workerpool.Run(workers, numBatches, func(worker, lo, hi int) {
			// Batch b covers [n-(b+1)*batch, n-b*batch), so batch 0 is
			// the highest-index batch: sweeping high-to-low tends to
			// relax a node's children before the node itself within a
			// single pass, since children are mostly later positions.
			for b := lo; b < hi; b++ {
				var batchHi = n - b*batch
				var batchLo = n - (b+1)*batch
				if batchLo < 0 {
					batchLo = 0
				}
				for j := batchHi - 1; j >= batchLo; j-- {
					if relaxNode(tb, j) {
						atomic.AddInt64(&changed, 1)
					}
				}
			}
		})

		if changed == 0 {
			return sweeps
		}
	}
}

// relaxNode recomputes node j's best achievable score from its
// children's current scores and writes it whenever it differs from the
// stored score, in either direction. The compare-and-swap loop re-reads
// the stored score after a lost race but does not compare directions, so
// a value computed from older child reads can replace a newer one; such
// a write counts as a change, and Solve keeps sweeping until a full sweep
// changes nothing.
func relaxNode(tb Table, j int) (changed bool) {
	var best = None
	for _, child := range tb[j].Children {
		var s = atomic.LoadInt32(&tb[child].Score)
		if s != 0 {
			s = Tau(s)
		}
		if best == None || s > best {
			best = s
		}
	}
	if best == None {
		return false
	}
	for {
		var cur = atomic.LoadInt32(&tb[j].Score)
		if cur == best {
			return false
		}
		if atomic.CompareAndSwapInt32(&tb[j].Score, cur, best) {
			return true
		}
	}
}
