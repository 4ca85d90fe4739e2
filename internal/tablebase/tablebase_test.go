package tablebase

import "testing"

func TestTauMatchesScore2Mate(t *testing.T) {
	if got := Tau(0); got != 0 {
		t.Errorf("Tau(0) = %d, want 0", got)
	}
	if got := Tau(-Mate); got != Mate-1 {
		t.Errorf("Tau(-Mate) = %d, want %d", got, Mate-1)
	}
	if got := Tau(Mate - 1); got != -(Mate - 2) {
		t.Errorf("Tau(Mate-1) = %d, want %d", got, -(Mate - 2))
	}
}

func TestMateDistanceMateInOne(t *testing.T) {
	var n, ok = MateDistance(Mate - 1)
	if !ok || n != 1 {
		t.Errorf("MateDistance(Mate-1) = (%d, %v), want (1, true)", n, ok)
	}
}

func TestMateDistanceUnknownNotMate(t *testing.T) {
	if _, ok := MateDistance(ScoreUnknown); ok {
		t.Errorf("MateDistance(ScoreUnknown) claimed to be a mate")
	}
	if _, ok := MateDistance(None); ok {
		t.Errorf("MateDistance(None) claimed to be a mate")
	}
}

// TestSolveMateInOneChain builds a 3-node chain: node 2 is a terminal
// mate (defender checkmated, no children); node 1 (mater to move) has
// node 2 as its only child; node 0 (defender to move) has node 1 as its
// only child. Solving should propagate mate-in-1 up to node 1 and, at
// node 0, the defender to move being mated in 1 (MateDistance -1).
func TestSolveMateInOneChain(t *testing.T) {
	var tb = New(3)
	tb[2].Score = -Mate
	tb[1].Children = []uint32{2}
	tb[0].Children = []uint32{1}

	Solve(tb, 4)

	if tb[1].Score != Mate-1 {
		t.Errorf("node 1 score = %d, want %d (mate in 1)", tb[1].Score, Mate-1)
	}
	if tb[0].Score != -(Mate - 2) {
		t.Errorf("node 0 score = %d, want %d (mated in 1)", tb[0].Score, -(Mate - 2))
	}

	if n, ok := MateDistance(tb[1].Score); !ok || n != 1 {
		t.Errorf("MateDistance(node1) = (%d,%v), want (1,true)", n, ok)
	}
	if n, ok := MateDistance(tb[0].Score); !ok || n != -1 {
		t.Errorf("MateDistance(node0) = (%d,%v), want (-1,true)", n, ok)
	}
}

func TestSolveIdempotent(t *testing.T) {
	var tb = New(3)
	tb[2].Score = -Mate
	tb[1].Children = []uint32{2}
	tb[0].Children = []uint32{1}

	Solve(tb, 2)
	var snapshot = make([]int32, len(tb))
	for i := range tb {
		snapshot[i] = tb[i].Score
	}

	var sweeps = Solve(tb, 2)
	if sweeps != 1 {
		t.Errorf("re-running Solve took %d sweeps, want 1 (idempotent)", sweeps)
	}
	for i := range tb {
		if tb[i].Score != snapshot[i] {
			t.Errorf("node %d score changed on idempotent re-solve: %d -> %d", i, snapshot[i], tb[i].Score)
		}
	}
}

func TestSolveNodeWithNoChildrenUnchanged(t *testing.T) {
	var tb = New(1)
	Solve(tb, 4)
	if tb[0].Score != ScoreUnknown {
		t.Errorf("childless node score = %d, want unchanged %d", tb[0].Score, ScoreUnknown)
	}
}
