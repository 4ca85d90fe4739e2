package chessrules

import "testing"

// https://www.chessprogramming.org/Perft_Results
func TestPerft(t *testing.T) {
	var tests = []struct {
		fen   string
		depth int
		nodes int
	}{
		{
			fen:   InitialPositionFen,
			depth: 5,
			nodes: 4865609,
		},
		{
			fen:   "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
			depth: 4,
			nodes: 4085603,
		},
		{
			fen:   "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
			depth: 5,
			nodes: 674624,
		},
	}
	for i, test := range tests {
		var p, err = NewPositionFromFEN(test.fen)
		if err != nil {
			t.Fatal(err)
		}
		var nodes = perft(&p, test.depth)
		if nodes != test.nodes {
			t.Errorf("test %d: perft(%d) = %d, want %d", i, test.depth, nodes, test.nodes)
		}
	}
}

func perft(p *Position, depth int) int {
	var result = 0
	var buffer [MaxMoves]Move
	var child Position
	for _, move := range GenerateMoves(buffer[:], p) {
		if p.MakeMove(move, &child) {
			if depth > 1 {
				result += perft(&child, depth-1)
			} else {
				result++
			}
		}
	}
	return result
}

func TestPackUnpackRoundTrip(t *testing.T) {
	var fens = []string{
		InitialPositionFen,
		"8/8/8/4k3/8/8/4K3/4R3 w - - 0 1",
		"4k3/8/8/8/8/8/4P3/4K3 w - - 3 25",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	}
	for _, fen := range fens {
		var p, err = NewPositionFromFEN(fen)
		if err != nil {
			t.Fatal(err)
		}
		var packed = Pack(&p)
		var q, ok = Unpack(packed)
		if !ok {
			t.Fatalf("Unpack rejected board packed from %q", fen)
		}
		if q.ShortFEN() != p.ShortFEN() {
			t.Errorf("round trip mismatch: %q != %q", q.ShortFEN(), p.ShortFEN())
		}
		if q.Rule50 != p.Rule50 {
			t.Errorf("rule50 mismatch: %d != %d", q.Rule50, p.Rule50)
		}
	}
}
