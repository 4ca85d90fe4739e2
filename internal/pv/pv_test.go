package pv

import (
	"testing"

	"github.com/gomatetb/matetb/internal/chessrules"
	"github.com/gomatetb/matetb/internal/expand"
	"github.com/gomatetb/matetb/internal/tablebase"
)

func TestRootLinesFindsMateInOne(t *testing.T) {
	var root, err = chessrules.NewPositionFromFEN("5k2/3Q4/3K4/8/8/8/8/6R1 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	var result = expand.Run(&root, true, nil, nil, 1, 2)
	tablebase.BuildGraph(result.Store, result.Table, 2)
	tablebase.Solve(result.Table, 2)

	var lines = RootLines(result.Store, result.Table, &root, true)
	if len(lines) == 0 {
		t.Fatal("no root lines")
	}
	var best = lines[0]
	if n, ok := tablebase.MateDistance(best.Score); !ok || n != 1 {
		t.Fatalf("best line mate distance = (%d,%v), want (1,true); best move %v", n, ok, best.Move)
	}
	if chessrules.MoveToUCI(best.Move) != "d7e7" {
		t.Errorf("best move = %v, want d7e7", best.Move)
	}
}

func TestChessDBLinkReplacesSpaces(t *testing.T) {
	var got = ChessDBLink("4k3/8/8/8/8/8/8/4K3 w - -", "e1e2 e8e7")
	var want = "https://chessdb.cn/queryc_en/?4k3/8/8/8/8/8/8/4K3_w_-_-_moves_e1e2_e8e7"
	if got != want {
		t.Errorf("ChessDBLink = %q, want %q", got, want)
	}
}
