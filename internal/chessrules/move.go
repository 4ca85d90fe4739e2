package chessrules

import "strings"

type Move int32

const MoveEmpty = Move(0)

func makeMove(from, to, movingPiece, capturedPiece int) Move {
	return Move(from ^ (to << 6) ^ (movingPiece << 12) ^ (capturedPiece << 15))
}

func makePawnMove(from, to, capturedPiece, promotion int) Move {
	return Move(from ^ (to << 6) ^ (Pawn << 12) ^ (capturedPiece << 15) ^ (promotion << 18))
}

func (m Move) From() int {
	return int(m & 63)
}

func (m Move) To() int {
	return int((m >> 6) & 63)
}

func (m Move) MovingPiece() int {
	return int((m >> 12) & 7)
}

func (m Move) CapturedPiece() int {
	return int((m >> 15) & 7)
}

func (m Move) Promotion() int {
	return int((m >> 18) & 7)
}

// String renders the move in UCI notation (from-square, to-square, optional
// promotion letter).
func (m Move) String() string {
	if m == MoveEmpty {
		return "0000"
	}
	var sPromotion = ""
	if m.Promotion() != Empty {
		sPromotion = string("nbrq"[m.Promotion()-Knight])
	}
	return SquareName(m.From()) + SquareName(m.To()) + sPromotion
}

// MoveToUCI renders mv in UCI long algebraic notation.
func MoveToUCI(m Move) string {
	return m.String()
}

// ParseUCI resolves a UCI move string against the legal moves available
// from pos. The second result is false if no legal move matches.
func ParseUCI(pos *Position, uci string) (Move, bool) {
	for _, mv := range GenerateLegalMoves(pos) {
		if strings.EqualFold(mv.String(), uci) {
			return mv, true
		}
	}
	return MoveEmpty, false
}

func moveToSANCore(pos *Position, ml []Move, mv Move) string {
	const PieceNames = "NBRQK"
	if mv == whiteKingSideCastle || mv == blackKingSideCastle {
		return "O-O"
	}
	if mv == whiteQueenSideCastle || mv == blackQueenSideCastle {
		return "O-O-O"
	}
	var strPiece, strCapture, strFrom, strTo, strPromotion string
	if mv.MovingPiece() != Pawn {
		strPiece = string(PieceNames[mv.MovingPiece()-Knight])
	}
	strTo = SquareName(mv.To())
	if mv.CapturedPiece() != Empty {
		strCapture = "x"
		if mv.MovingPiece() == Pawn {
			strFrom = SquareName(mv.From())[:1]
		}
	}
	if mv.Promotion() != Empty {
		strPromotion = "=" + string(PieceNames[mv.Promotion()-Knight])
	}
	var ambiguity = false
	var uniqCol = true
	var uniqRow = true
	for _, mv1 := range ml {
		if mv1.From() == mv.From() {
			continue
		}
		if mv1.To() != mv.To() {
			continue
		}
		if mv1.MovingPiece() != mv.MovingPiece() {
			continue
		}
		ambiguity = true
		if File(mv1.From()) == File(mv.From()) {
			uniqCol = false
		}
		if Rank(mv1.From()) == Rank(mv.From()) {
			uniqRow = false
		}
	}
	if ambiguity {
		if uniqCol {
			strFrom = SquareName(mv.From())[:1]
		} else if uniqRow {
			strFrom = SquareName(mv.From())[1:2]
		} else {
			strFrom = SquareName(mv.From())
		}
	}
	return strPiece + strFrom + strCapture + strTo + strPromotion
}

// MoveToSAN renders mv as Standard Algebraic Notation relative to pos,
// appending '+' or '#' when the resulting position is check or checkmate
// (matching the exclude-SAN examples in the preset table, e.g. "Qxh1+").
func MoveToSAN(pos *Position, ml []Move, mv Move) string {
	var san = moveToSANCore(pos, ml, mv)
	var child Position
	if !pos.MakeMove(mv, &child) {
		return san
	}
	if !child.IsCheck() {
		return san
	}
	if len(GenerateLegalMoves(&child)) == 0 {
		return san + "#"
	}
	return san + "+"
}

// ParseMoveSAN resolves a SAN move string (optionally with trailing
// +/#/?/! annotations) against the legal moves available from pos.
func ParseMoveSAN(pos *Position, san string) Move {
	var index = strings.IndexAny(san, "+#?!")
	if index >= 0 {
		san = san[:index]
	}
	var ml = GenerateLegalMoves(pos)
	for _, mv := range ml {
		if san == moveToSANCore(pos, ml, mv) {
			return mv
		}
	}
	return MoveEmpty
}
