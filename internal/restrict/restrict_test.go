package restrict

import (
	"testing"

	"github.com/gomatetb/matetb/internal/chessrules"
)

func mustPos(t *testing.T, fen string) chessrules.Position {
	t.Helper()
	var p, err = chessrules.NewPositionFromFEN(fen)
	if err != nil {
		t.Fatalf("NewPositionFromFEN(%q): %v", fen, err)
	}
	return p
}

func TestAllowedIgnoresDefender(t *testing.T) {
	var p = mustPos(t, "8/8/8/1p6/6k1/1p2Q3/p1p1p3/rbrbK3 w - - 0 1")
	var ml = chessrules.GenerateLegalMoves(&p)
	var f = Filter{ExcludeFrom: map[int]bool{chessrules.SquareA1: true}}
	for _, mv := range ml {
		if !f.Allowed(&p, ml, mv, false) {
			t.Fatalf("defender move %v rejected, restrictions must not apply to the defender", mv)
		}
	}
}

func TestExcludeFromRejectsMaterMove(t *testing.T) {
	var p = mustPos(t, "8/8/8/1p6/6k1/1p2Q3/p1p1p3/rbrbK3 w - - 0 1")
	var ml = chessrules.GenerateLegalMoves(&p)
	var f = Filter{ExcludeFrom: map[int]bool{chessrules.SquareE1: true}}
	for _, mv := range ml {
		if mv.From() == chessrules.SquareE1 && f.Allowed(&p, ml, mv, true) {
			t.Fatalf("move from e1 should have been excluded: %v", mv)
		}
	}
}

func TestFilterLeavesPositionUnchanged(t *testing.T) {
	var p = mustPos(t, "8/8/8/1p6/6k1/1p2Q3/p1p1p3/rbrbK3 w - - 0 1")
	var before = p
	var ml = chessrules.GenerateLegalMoves(&p)
	var f = Filter{
		ExcludeToAttacked:      true,
		ExcludeAllowingCapture: true,
	}
	for _, mv := range ml {
		f.Allowed(&p, ml, mv, true)
	}
	if p != before {
		t.Fatalf("Allowed mutated the caller's position")
	}
}

func TestExcludeCapturesOf(t *testing.T) {
	var p = mustPos(t, "4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1")
	var ml = chessrules.GenerateLegalMoves(&p)
	var f = Filter{ExcludeCapturesOf: map[byte]bool{'p': true}}
	for _, mv := range ml {
		if mv.IsCapture() && !f.Allowed(&p, ml, mv, true) {
			// only pawn captures should be rejected here
			if mv.CapturedPiece() != chessrules.Pawn {
				t.Fatalf("non-pawn capture unexpectedly rejected: %v", mv)
			}
		}
	}
}
