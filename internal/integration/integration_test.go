// Package integration drives the full enumerate -> build-graph -> solve
// -> root-lines pipeline the way cmd/matetb's run() does, against the
// boundary conditions and end-to-end scenarios the generator is meant
// to satisfy.
package integration

import (
	"testing"

	"github.com/gomatetb/matetb/internal/config"
	"github.com/gomatetb/matetb/internal/expand"
	"github.com/gomatetb/matetb/internal/pv"
	"github.com/gomatetb/matetb/internal/tablebase"
)

func solve(cfg *config.Config) expand.Result {
	var result = expand.Run(&cfg.Root, cfg.MaterWhite, &cfg.Filter, cfg.Book, cfg.Depth, cfg.Workers)
	tablebase.BuildGraph(result.Store, result.Table, cfg.Workers)
	tablebase.Solve(result.Table, cfg.Workers)
	return result
}

func TestRootTerminalMateAtDepthZero(t *testing.T) {
	// Fool's mate, 1.f3 e5 2.g4 Qh4#: white to move with no legal moves
	// and in check, so the root is itself checkmate. Black delivered it,
	// so black is the mater; a negative bm sign is the EPD's way of
	// saying the mater is the side NOT to move, overriding the "side to
	// move is mating" default. The root score should be MATE from
	// black's perspective even though depth=0 enumerates nothing beyond
	// the root itself.
	var cfg, err = config.Validate(config.Flags{
		EPD:   "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w - - bm #-1;",
		Depth: 0,
	})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.MaterWhite {
		t.Fatalf("MaterWhite = true, want false (black delivered the mate)")
	}

	var result = solve(cfg)
	if result.Depth != 0 {
		t.Fatalf("Depth = %d, want 0", result.Depth)
	}

	var score, ok = pv.RootScore(result.Store, result.Table, &cfg.Root, cfg.MaterWhite)
	if !ok {
		t.Fatal("root not found in store")
	}
	if score != tablebase.Mate {
		t.Fatalf("RootScore = %d, want %d (Mate)", score, tablebase.Mate)
	}
	if n, ok := tablebase.MateDistance(score); !ok || n != 0 {
		t.Fatalf("MateDistance(score) = (%d,%v), want (0,true)", n, ok)
	}
}

func TestRootTerminalStalemateIsNoMate(t *testing.T) {
	// Textbook queen stalemate: black king h8 has no legal move (g7, g8,
	// h7 are all covered by the queen) and is not in check, so the root
	// is a draw regardless of who the mater is.
	var cfg, err = config.Validate(config.Flags{
		EPD:   "7k/5K2/6Q1/8/8/8/8/8 b - -",
		Depth: 0,
	})
	if err != nil {
		t.Fatal(err)
	}

	var result = solve(cfg)
	var score, ok = pv.RootScore(result.Store, result.Table, &cfg.Root, cfg.MaterWhite)
	if !ok {
		t.Fatal("root not found in store")
	}
	if score == tablebase.Mate {
		t.Fatalf("RootScore = Mate, want not-Mate for a stalemate root")
	}
}

// rookVsKingPawnFlags is scenario 2 from the named end-to-end scenarios:
// a king+rook vs king+pawn ending where excludeAllowingCapture and
// excludeAllowingMoves "h2h1q" keep the search from chasing promotion
// lines the rook can't stop, converging on bm #6 within depth 11.
func rookVsKingPawnFlags(workers int) config.Flags {
	return config.Flags{
		EPD:                    "8/8/7p/5K1k/R7/8/8/8 w - -",
		ExcludeAllowingCapture: true,
		ExcludeAllowingMoves:   "h2h1q",
		Depth:                  11,
		Concurrency:            workers,
	}
}

func TestNamedScenarioRookVsKingPawn(t *testing.T) {
	var cfg, err = config.Validate(rookVsKingPawnFlags(2))
	if err != nil {
		t.Fatal(err)
	}

	var result = solve(cfg)
	var lines = pv.RootLines(result.Store, result.Table, &cfg.Root, cfg.MaterWhite)
	if len(lines) == 0 {
		t.Fatal("no root lines")
	}
	var best = lines[0]
	if n, ok := tablebase.MateDistance(best.Score); !ok || n != 6 {
		t.Fatalf("best line mate distance = (%d,%v), want (6,true)", n, ok)
	}
}

func TestConcurrencyDeterminism(t *testing.T) {
	var bestAt = func(workers int) (int32, int) {
		var cfg, err = config.Validate(rookVsKingPawnFlags(workers))
		if err != nil {
			t.Fatal(err)
		}
		var result = solve(cfg)
		var lines = pv.RootLines(result.Store, result.Table, &cfg.Root, cfg.MaterWhite)
		if len(lines) == 0 {
			t.Fatal("no root lines")
		}
		return lines[0].Score, len(lines[0].PV)
	}

	var score1, pvLen1 = bestAt(1)
	var score4, pvLen4 = bestAt(4)
	var score16, pvLen16 = bestAt(16)

	if score1 != score4 || score1 != score16 {
		t.Errorf("best score differs across concurrency: 1=%d 4=%d 16=%d", score1, score4, score16)
	}
	if pvLen1 != pvLen4 || pvLen1 != pvLen16 {
		t.Errorf("PV length differs across concurrency: 1=%d 4=%d 16=%d", pvLen1, pvLen4, pvLen16)
	}
}
