// Package restrict implements the move filter: a pure predicate deciding
// whether a candidate move by the mating side is admissible under the
// active restriction set. The defender is never restricted.
package restrict

import "github.com/gomatetb/matetb/internal/chessrules"

// Filter holds the configured restriction set. The zero value allows
// every move.
type Filter struct {
	ExcludeUCI    map[string]bool
	ExcludeSAN    map[string]bool
	ExcludeFrom   map[int]bool
	ExcludeTo     map[int]bool

	ExcludeCaptures   bool
	ExcludeCapturesOf map[byte]bool // lowercase piece symbols

	ExcludeToAttacked bool

	ExcludePromotionTo map[byte]bool

	// Allowing-response sub-filters: a move is rejected if, after playing
	// it, any defender reply matches one of these.
	ExcludeToCapturable    bool
	ExcludeAllowingCapture bool
	ExcludeAllowingFrom    map[int]bool
	ExcludeAllowingTo      map[int]bool
	ExcludeAllowingUCI     map[string]bool
	ExcludeAllowingSAN     map[string]bool
}

func (f *Filter) hasAllowingSubFilter() bool {
	return f.ExcludeToCapturable || f.ExcludeAllowingCapture ||
		len(f.ExcludeAllowingFrom) > 0 || len(f.ExcludeAllowingTo) > 0 ||
		len(f.ExcludeAllowingUCI) > 0 || len(f.ExcludeAllowingSAN) > 0
}

var pieceSymbols = "pnbrqk"

func pieceSymbol(pieceType int) byte {
	if pieceType < chessrules.Pawn || pieceType > chessrules.King {
		return 0
	}
	return pieceSymbols[pieceType-chessrules.Pawn]
}

// Allowed reports whether move is admissible from pos. pos.WhiteMove
// must already reflect whose turn it is; materWhite says which color is
// the mating side. ml is pos's full legal move list, used for SAN
// disambiguation and for generating defender replies when an
// allowing-response sub-filter is active.
//
// Allowed always leaves pos unchanged: any probe move it plays to check
// an allowing-response sub-filter is made into a scratch Position, never
// mutating the caller's board.
func (f *Filter) Allowed(pos *chessrules.Position, ml []chessrules.Move, move chessrules.Move, materWhite bool) bool {
	if pos.WhiteMove != materWhite {
		return true
	}

	if f.ExcludeUCI[chessrules.MoveToUCI(move)] {
		return false
	}
	if len(f.ExcludeSAN) > 0 && f.ExcludeSAN[chessrules.MoveToSAN(pos, ml, move)] {
		return false
	}
	if f.ExcludeFrom[move.From()] {
		return false
	}
	if f.ExcludeTo[move.To()] {
		return false
	}

	if move.IsCapture() {
		if f.ExcludeCaptures {
			return false
		}
		if len(f.ExcludeCapturesOf) > 0 {
			var captured = move.CapturedPiece()
			if f.ExcludeCapturesOf[pieceSymbol(captured)] {
				return false
			}
		}
	}

	if f.ExcludeToAttacked {
		var child chessrules.Position
		if pos.MakeMove(move, &child) {
			if child.AttackedBySide(move.To(), child.WhiteMove) {
				return false
			}
		}
	}

	if move.Promotion() != chessrules.Empty && len(f.ExcludePromotionTo) > 0 {
		if f.ExcludePromotionTo[pieceSymbol(move.Promotion())] {
			return false
		}
	}

	if f.hasAllowingSubFilter() {
		var child chessrules.Position
		if !pos.MakeMove(move, &child) {
			return true
		}
		var replies = chessrules.GenerateLegalMoves(&child)
		for _, reply := range replies {
			if f.ExcludeToCapturable && reply.To() == move.To() && reply.IsCapture() {
				return false
			}
			if f.ExcludeAllowingCapture && reply.IsCapture() {
				return false
			}
			if f.ExcludeAllowingFrom[reply.From()] {
				return false
			}
			if f.ExcludeAllowingTo[reply.To()] {
				return false
			}
			if len(f.ExcludeAllowingUCI) > 0 && f.ExcludeAllowingUCI[chessrules.MoveToUCI(reply)] {
				return false
			}
			if len(f.ExcludeAllowingSAN) > 0 && f.ExcludeAllowingSAN[chessrules.MoveToSAN(&child, replies, reply)] {
				return false
			}
		}
	}

	return true
}
