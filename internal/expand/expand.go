// Package expand implements level-synchronized forward enumeration: the
// BFS-style expander that walks the restricted game tree breadth-first,
// assigning dense node indices via the position store and recording
// terminal mates along the way.
package expand

import (
	"sync"

	"github.com/gomatetb/matetb/internal/book"
	"github.com/gomatetb/matetb/internal/chessrules"
	"github.com/gomatetb/matetb/internal/postore"
	"github.com/gomatetb/matetb/internal/restrict"
	"github.com/gomatetb/matetb/internal/tablebase"
	"github.com/gomatetb/matetb/internal/workerpool"
)

// Result carries the enumerated table and store back to the caller.
type Result struct {
	Store *postore.Store
	Table tablebase.Table
	// Depth is the enumeration depth actually reached (<= MaxDepth).
	Depth int
}

// terminalMate records the index of a terminal mate found during a batch;
// it is merged into the node table only after the final node count (and
// thus the table's size) is known.
type terminalMate struct {
	index uint32
}

// Run enumerates the restricted game tree from root breadth-first,
// bounded by maxDepth, using workers goroutines per level. materWhite
// selects which color is restricted by filter and overlaid by overlay.
func Run(root *chessrules.Position, materWhite bool, filter *restrict.Filter, overlay book.Book, maxDepth, workers int) Result {
	var store = postore.New(workers)
	var currentLevel = []chessrules.PackedBoard{chessrules.Pack(root)}

	var mu sync.Mutex
	var terminals []terminalMate
	var reachedDepth int

	for depth := 0; len(currentLevel) > 0 && depth <= maxDepth; depth++ {
		reachedDepth = depth
		var batchSize = len(currentLevel) / (workers * 8)
		if batchSize < 128 {
			batchSize = 128
		}
		var numBatches = (len(currentLevel) + batchSize - 1) / batchSize
		if numBatches < 1 {
			numBatches = 1
		}

		var nextLevels = make([][]chessrules.PackedBoard, numBatches)
		var localTerminals = make([][]terminalMate, numBatches)

		workerpool.Run(workers, numBatches, func(worker, lo, hi int) {
			for b := lo; b < hi; b++ {
				var start = b * batchSize
				var end = start + batchSize
				if end > len(currentLevel) {
					end = len(currentLevel)
				}
				var next []chessrules.PackedBoard
				var mine []terminalMate
				for _, pfen := range currentLevel[start:end] {
					expandOne(store, filter, overlay, materWhite, pfen, &next, &mine)
				}
				nextLevels[b] = next
				localTerminals[b] = mine
			}
		})

		var nextLevel []chessrules.PackedBoard
		for _, l := range nextLevels {
			nextLevel = append(nextLevel, l...)
		}
		mu.Lock()
		for _, l := range localTerminals {
			terminals = append(terminals, l...)
		}
		mu.Unlock()

		currentLevel = nextLevel
	}

	var tb = tablebase.New(store.Len())
	for _, t := range terminals {
		tb.SetScore(t.index, -tablebase.Mate)
	}

	return Result{Store: store, Table: tb, Depth: reachedDepth}
}

// expandOne processes a single position in the enumeration frontier,
// appending newly-discovered child boards to next and any terminal-mate
// discovery to terminals. Returns immediately if pfen was already in
// the store (seen via another path at an earlier or equal depth).
func expandOne(store *postore.Store, filter *restrict.Filter, overlay book.Book, materWhite bool, pfen chessrules.PackedBoard, next *[]chessrules.PackedBoard, terminals *[]terminalMate) {
	var isNew bool
	var index uint32
	store.InsertIfAbsent(pfen, func(idx uint32) {
		isNew = true
		index = idx
	}, nil)
	if !isNew {
		return
	}

	var pos, ok = chessrules.Unpack(pfen)
	if !ok {
		return
	}
	var ml = chessrules.GenerateLegalMoves(&pos)

	if len(ml) == 0 && pos.IsCheck() {
		*terminals = append(*terminals, terminalMate{index: index})
		return
	}

	if pos.WhiteMove == materWhite {
		if fen := pos.ShortFEN(); overlay != nil {
			if uci, found := overlay.Lookup(fen); found {
				if mv, ok := chessrules.ParseUCI(&pos, uci); ok {
					appendChild(&pos, mv, next)
				}
				return
			}
		}
		for _, mv := range ml {
			if filter == nil || filter.Allowed(&pos, ml, mv, materWhite) {
				appendChild(&pos, mv, next)
			}
		}
		return
	}

	for _, mv := range ml {
		appendChild(&pos, mv, next)
	}
}

func appendChild(pos *chessrules.Position, mv chessrules.Move, next *[]chessrules.PackedBoard) {
	var child chessrules.Position
	if !pos.MakeMove(mv, &child) {
		return
	}
	*next = append(*next, chessrules.Pack(&child))
}
