package tablebase

import (
	"github.com/gomatetb/matetb/internal/chessrules"
	"github.com/gomatetb/matetb/internal/postore"
	"github.com/gomatetb/matetb/internal/workerpool"
)

// BuildGraph fills tb[idx].Children for every non-terminal node by
// re-generating its legal moves (unfiltered — the move filter's only
// role was pruning enumeration, not graph edges) and looking each child
// up in store. Children not present in store (because they were pruned
// from enumeration, or lie beyond the depth bound) are simply omitted.
//
// Runs the store's shards across workers goroutines; no locking is
// needed on tb[idx].Children because the store's key-index bijection
// means each index is written by exactly one worker.
func BuildGraph(store *postore.Store, tb Table, workers int) {
	var snapshots = make([]map[chessrules.PackedBoard]uint32, store.NumShards())
	store.RangeShards(func(shardIndex int, items map[chessrules.PackedBoard]uint32) {
		snapshots[shardIndex] = items
	})

	workerpool.Run(workers, len(snapshots), func(worker, lo, hi int) {
		for s := lo; s < hi; s++ {
			for pfen, idx := range snapshots[s] {
				if tb.ScoreOf(idx) != ScoreUnknown {
					continue
				}
				var pos, ok = chessrules.Unpack(pfen)
				if !ok {
					continue
				}
				var ml = chessrules.GenerateLegalMoves(&pos)
				var children = make([]uint32, 0, len(ml))
				var child chessrules.Position
				for _, mv := range ml {
					if !pos.MakeMove(mv, &child) {
						continue
					}
					var childKey = chessrules.Pack(&child)
					if childIdx, ok := store.Lookup(childKey); ok {
						children = append(children, childIdx)
					}
				}
				tb[idx].Children = children
			}
		}
	})
}
