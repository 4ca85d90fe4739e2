// Package tablebase holds the dense node table populated by enumeration,
// filled in by the backward graph builder, and mutated in place by the
// fixed-point solver.
package tablebase

import "sync/atomic"

// Score sentinels and bound. Mate is the shortest-possible-distance
// score; None marks a position that was pruned out of the store and so
// has no known score at all.
const (
	ScoreUnknown int32 = 0
	None         int32 = 30001
	Mate         int32 = 30000
)

// Node holds one position's score and outgoing edges in the backward
// move graph. Score is read/written exclusively through atomic ops;
// Children is written by exactly one worker during graph building and
// is safe to read directly everywhere after, since node indices are a
// bijection with store entries fixed before graph building starts.
type Node struct {
	Score    int32
	Children []uint32
}

// Table is the dense node array tb[0..N). It is allocated once
// enumeration has produced the final node count and never resized
// afterward.
type Table []Node

// New allocates a Table of size n with every score at ScoreUnknown.
func New(n int) Table {
	return make(Table, n)
}

// ScoreOf atomically loads node i's score.
func (t Table) ScoreOf(i uint32) int32 {
	return atomic.LoadInt32(&t[i].Score)
}

// SetScore atomically stores score into node i's Score field, used only
// during terminal-mate seeding where no concurrent writer for the same
// index exists yet.
func (t Table) SetScore(i uint32, score int32) {
	atomic.StoreInt32(&t[i].Score, score)
}

// Sign returns -1, 0, or 1 matching the mathematical sign of s.
func Sign(s int32) int32 {
	switch {
	case s > 0:
		return 1
	case s < 0:
		return -1
	default:
		return 0
	}
}

// Tau is the one-ply negation-with-sign-increment rule that converts a
// child's score into its contribution at the parent: Tau(0) = 0,
// Tau(s) = -s + sign(s) for s != 0.
func Tau(s int32) int32 {
	if s == 0 {
		return 0
	}
	return -s + Sign(s)
}

// MateDistance converts a stored score to its human-facing #N move count:
// positive when the side to move mates, negative when the side to move
// is mated. ok is false if score is not a proven mate (i.e. it's ScoreUnknown or
// None).
func MateDistance(score int32) (n int32, ok bool) {
	switch {
	case score > 0 && score < Mate+1:
		return (Mate - score + 1) / 2, true
	case score < 0 && score > -(Mate+1):
		return -(Mate + score) / 2, true
	default:
		return 0, false
	}
}
