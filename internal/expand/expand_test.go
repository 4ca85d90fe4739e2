package expand

import (
	"testing"

	"github.com/gomatetb/matetb/internal/chessrules"
	"github.com/gomatetb/matetb/internal/tablebase"
)

func TestRunFindsImmediateMate(t *testing.T) {
	// White king d6, queen d7, rook g1, black king f8: Qd7-e7 is
	// checkmate (the rook covers g8 and g7, the queen covers e8 and f7,
	// and the king cannot capture the queen defended by Kd6).
	var root, err = chessrules.NewPositionFromFEN("5k2/3Q4/3K4/8/8/8/8/6R1 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	var result = Run(&root, true, nil, nil, 1, 2)
	if result.Store.Len() == 0 {
		t.Fatal("expected at least the root to be enumerated")
	}

	var rootKey = chessrules.Pack(&root)
	var rootIdx, ok = result.Store.Lookup(rootKey)
	if !ok {
		t.Fatal("root not found in store")
	}

	var foundMate bool
	var ml = chessrules.GenerateLegalMoves(&root)
	var child chessrules.Position
	for _, mv := range ml {
		if !root.MakeMove(mv, &child) {
			continue
		}
		var childIdx, ok = result.Store.Lookup(chessrules.Pack(&child))
		if !ok {
			continue
		}
		if result.Table.ScoreOf(childIdx) == -tablebase.Mate {
			foundMate = true
		}
	}
	if !foundMate {
		t.Fatalf("expected some child of root index %d to be a recorded terminal mate", rootIdx)
	}
}

func TestRunRespectsDepthBound(t *testing.T) {
	var root, err = chessrules.NewPositionFromFEN(chessrules.InitialPositionFen)
	if err != nil {
		t.Fatal(err)
	}
	var result = Run(&root, true, nil, nil, 0, 2)
	if result.Depth != 0 {
		t.Errorf("Depth = %d, want 0", result.Depth)
	}
	if result.Store.Len() != 1 {
		t.Errorf("Store.Len() = %d, want 1 (root only)", result.Store.Len())
	}
}
