// Package book builds and serves the opening book overlay: an immutable
// mapping from a short-FEN position to a single forced UCI move for the
// mating side, built once from user-supplied opening lines that may each
// contain one wildcard expansion.
package book

import (
	"fmt"
	"strings"

	"github.com/gomatetb/matetb/internal/chessrules"
)

// Book is a read-only short-FEN to UCI-move mapping, consulted during
// enumeration to override the move filter at positions it covers.
type Book map[string]string

// Lookup returns the forced move for fen and whether one was recorded.
func (b Book) Lookup(fen string) (string, bool) {
	mv, ok := b[fen]
	return mv, ok
}

func splitTokens(s string) []string {
	return strings.Fields(s)
}

// Build parses openingMoves (comma-separated lines, each a
// space-separated list of UCI moves optionally containing one '*'
// wildcard), expands wildcard lines against rootFen's legal replies, and
// replays every resulting line to record the mater's forced move at
// every position it visits. materWhite selects which side is the mater.
func Build(rootFen string, materWhite bool, openingMoves string) (Book, error) {
	var lines [][]string

	for _, rawLine := range strings.Split(openingMoves, ",") {
		var stars = strings.Count(rawLine, "*")
		if stars > 1 {
			return nil, fmt.Errorf("opening book: more than one '*' in line %q", rawLine)
		}

		var beforeStar, afterStar = rawLine, ""
		if stars == 1 {
			var idx = strings.Index(rawLine, "*")
			beforeStar, afterStar = rawLine[:idx], rawLine[idx+1:]
		}
		var prefix = splitTokens(beforeStar)

		if stars == 0 {
			lines = append(lines, prefix)
			continue
		}

		var suffix = splitTokens(afterStar)
		var pos, err = chessrules.NewPositionFromFEN(rootFen)
		if err != nil {
			return nil, fmt.Errorf("opening book: %w", err)
		}
		for _, uci := range prefix {
			var mv, ok = chessrules.ParseUCI(&pos, uci)
			if !ok {
				return nil, fmt.Errorf("opening book: illegal move %s in line %q", uci, rawLine)
			}
			var child chessrules.Position
			if !pos.MakeMove(mv, &child) {
				return nil, fmt.Errorf("opening book: illegal move %s in line %q", uci, rawLine)
			}
			pos = child
		}

		for _, reply := range chessrules.GenerateLegalMoves(&pos) {
			var candidate = append(append([]string{}, prefix...), chessrules.MoveToUCI(reply))
			if lineAlreadyPresent(lines, candidate) {
				continue
			}
			var newLine = append(append([]string{}, candidate...), suffix...)
			lines = append(lines, newLine)
		}
	}

	var result = make(Book)
	for _, moves := range lines {
		var pos, err = chessrules.NewPositionFromFEN(rootFen)
		if err != nil {
			return nil, fmt.Errorf("opening book: %w", err)
		}
		for _, uci := range moves {
			if pos.WhiteMove == materWhite {
				var fen = pos.ShortFEN()
				if existing, ok := result[fen]; ok && existing != uci {
					return nil, fmt.Errorf("opening book: cannot specify both %s and %s for position %s", uci, existing, fen)
				}
				result[fen] = uci
			}

			var mv, ok = chessrules.ParseUCI(&pos, uci)
			if !ok {
				return nil, fmt.Errorf("opening book: illegal move %s in position %s", uci, pos.ShortFEN())
			}
			var child chessrules.Position
			if !pos.MakeMove(mv, &child) {
				return nil, fmt.Errorf("opening book: illegal move %s in position %s", uci, pos.ShortFEN())
			}
			pos = child
		}
	}
	return result, nil
}

// lineAlreadyPresent reports whether any line in lines matches candidate
// token-by-token through len(candidate) tokens (the "already present"
// rule: a longer pre-existing line sharing candidate's prefix, including
// the newly expanded move, means this expansion is redundant).
func lineAlreadyPresent(lines [][]string, candidate []string) bool {
	for _, existing := range lines {
		if len(existing) < len(candidate) {
			continue
		}
		var match = true
		for i, tok := range candidate {
			if existing[i] != tok {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}
