// Package pv reconstructs the principal variation from a solved
// tablebase and formats the generator's output lines.
package pv

import (
	"strconv"
	"strings"

	"github.com/gomatetb/matetb/internal/chessrules"
	"github.com/gomatetb/matetb/internal/postore"
	"github.com/gomatetb/matetb/internal/tablebase"
)

// probe transforms the score of the position reached by playing move
// from pos: None if the child isn't in the store (filtered out of
// enumeration), else the one-ply negation-with-sign rule applied to its
// stored score.
func probe(store *postore.Store, tb tablebase.Table, pos *chessrules.Position, move chessrules.Move) (int32, chessrules.Position) {
	var child chessrules.Position
	if !pos.MakeMove(move, &child) {
		return tablebase.None, child
	}
	var idx, ok = store.Lookup(chessrules.Pack(&child))
	if !ok {
		return tablebase.None, child
	}
	var s = tb.ScoreOf(idx)
	if s != 0 {
		s = tablebase.Tau(s)
	}
	return s, child
}

// RootScore returns root's own stored score translated to the mater's
// perspective. Node scores are relative to the node's own side to move,
// so this negates the stored value whenever root's side to move is not
// the mater. ok is false if root was never enumerated (e.g. it lies
// beyond the depth bound). Used when root itself has no legal moves,
// since RootLines has nothing to probe in that case.
func RootScore(store *postore.Store, tb tablebase.Table, root *chessrules.Position, materWhite bool) (int32, bool) {
	var idx, ok = store.Lookup(chessrules.Pack(root))
	if !ok {
		return 0, false
	}
	var s = tb.ScoreOf(idx)
	if root.WhiteMove != materWhite && s != 0 {
		s = -s
	}
	return s, true
}

// Line is one root alternative: the move played and its transformed
// score, used for MultiPV output and best-move selection.
type Line struct {
	Move  chessrules.Move
	Score int32
	PV    []chessrules.Move
}

// RootLines probes every legal move from root and returns one Line per
// move, sorted by descending score with None treated as worst.
func RootLines(store *postore.Store, tb tablebase.Table, root *chessrules.Position, materWhite bool) []Line {
	var ml = chessrules.GenerateLegalMoves(root)
	var lines = make([]Line, 0, len(ml))
	for _, mv := range ml {
		var score, child = probe(store, tb, root, mv)
		var line = Line{Move: mv, Score: score}
		if score != tablebase.None && score != 0 {
			line.PV = append([]chessrules.Move{mv}, Reconstruct(store, tb, &child, materWhite)...)
		} else {
			line.PV = []chessrules.Move{mv}
		}
		lines = append(lines, line)
	}

	sortLinesDescending(lines)
	return lines
}

func sortLinesDescending(lines []Line) {
	for i := 1; i < len(lines); i++ {
		for j := i; j > 0 && less(lines[j-1], lines[j]); j-- {
			lines[j-1], lines[j] = lines[j], lines[j-1]
		}
	}
}

// less reports whether a ranks below b in RootLines' descending order
// (NONE is worst, otherwise the lower score ranks below), in which case
// sortLinesDescending moves b ahead of a.
func less(a, b Line) bool {
	if a.Score == tablebase.None {
		return true
	}
	if b.Score == tablebase.None {
		return false
	}
	return a.Score < b.Score
}

// Reconstruct walks the principal variation greedily from pos, at each
// step picking the legal move with the highest transformed score.
// Terminates on a game-over draw (Reconstruct returns nil) and appends
// no trailing marker here — cmd/matetb's output appends DrawSuffix for
// the position the PV ends in.
func Reconstruct(store *postore.Store, tb tablebase.Table, pos *chessrules.Position, materWhite bool) []chessrules.Move {
	var ml = chessrules.GenerateLegalMoves(pos)
	if len(ml) == 0 {
		return nil
	}
	if reason := pos.DrawReason(len(ml)); reason != chessrules.NotDrawn {
		return nil
	}

	var bestMove chessrules.Move
	var bestScore = tablebase.None
	var bestChild chessrules.Position
	var found bool
	for _, mv := range ml {
		var score, child = probe(store, tb, pos, mv)
		if !found || greater(score, bestScore) {
			bestMove, bestScore, bestChild = mv, score, child
			found = true
		}
	}
	if !found {
		return nil
	}

	var rest = Reconstruct(store, tb, &bestChild, materWhite)
	return append([]chessrules.Move{bestMove}, rest...)
}

func greater(a, b int32) bool {
	if b == tablebase.None {
		return a != tablebase.None
	}
	if a == tablebase.None {
		return false
	}
	return a > b
}

// DrawSuffix returns "; draw by 50mr" if pos is the defender's turn and
// a 50-move-rule draw; else "".
func DrawSuffix(pos *chessrules.Position, legalMoveCount int, materWhite bool) string {
	if pos.WhiteMove == materWhite {
		return ""
	}
	if pos.DrawReason(legalMoveCount) == chessrules.FiftyMoveRule {
		return "; draw by 50mr"
	}
	return ""
}

// FormatUCIs joins moves as space-separated UCI tokens.
func FormatUCIs(moves []chessrules.Move) string {
	var tokens = make([]string, len(moves))
	for i, mv := range moves {
		tokens[i] = chessrules.MoveToUCI(mv)
	}
	return strings.Join(tokens, " ")
}

// ChessDBLink builds the https://chessdb.cn query URL for rootFen and a
// formatted PV string, substituting spaces with underscores as the
// query parameter requires.
func ChessDBLink(rootFen, pvStr string) string {
	var s = "https://chessdb.cn/queryc_en/?" + rootFen + " moves " + pvStr
	return strings.ReplaceAll(s, " ", "_")
}

// FormatMultiPV renders one "multipv N score ... pv ..." line per Line,
// 1-indexed, matching output()'s MultiPV block.
func FormatMultiPV(lines []Line) []string {
	var out = make([]string, len(lines))
	for i, line := range lines {
		var pvStr = FormatUCIs(line.PV)
		if line.Score == tablebase.None {
			out[i] = formatMultiPVNone(i + 1)
			continue
		}
		var scoreStr = formatScore(line.Score)
		out[i] = "multipv " + strconv.Itoa(i+1) + " score " + scoreStr + " pv " + pvStr
	}
	return out
}

func formatMultiPVNone(n int) string {
	return "multipv " + strconv.Itoa(n) + " score None"
}

func formatScore(score int32) string {
	var s = "cp " + strconv.Itoa(int(score))
	if score != 0 {
		if n, ok := tablebase.MateDistance(score); ok {
			s += " mate " + strconv.Itoa(int(n))
		}
	}
	return s
}
