package chessrules

import (
	"math/bits"
	"testing"
)

func TestFirstOne(t *testing.T) {
	tests := []struct {
		name  string
		value uint64
	}{
		{"A", FileAMask},
		{"H", FileHMask},
		{"1", Rank1Mask},
		{"8", Rank8Mask},
		{"bishop", 0x0004085000500800},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var want = bits.TrailingZeros64(tt.value)
			if got := FirstOne(tt.value); got != want {
				t.Errorf("FirstOne(%#x) = %d, want %d", tt.value, got, want)
			}
		})
	}
}

func TestMoreThanOne(t *testing.T) {
	tests := []struct {
		name  string
		value uint64
		want  bool
	}{
		{"zero", 0, false},
		{"one", 1, false},
		{"far one", 1 << 60, false},
		{"two ones", 3, true},
		{"two ones apart", 1<<6 | 1<<25, true},
		{"three ones apart", 1<<6 | 1<<25 | 1<<36, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MoreThanOne(tt.value); got != tt.want {
				t.Errorf("MoreThanOne(%#x) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestPopCount(t *testing.T) {
	tests := []uint64{0, 1, FileAMask, Rank1Mask, ^uint64(0)}
	for _, v := range tests {
		if got := PopCount(v); got != bits.OnesCount64(v) {
			t.Errorf("PopCount(%#x) = %d, want %d", v, got, bits.OnesCount64(v))
		}
	}
}

func TestBetweenMask(t *testing.T) {
	if betweenMask[SquareA1][SquareA8]&SquareMask[SquareA4] == 0 {
		t.Errorf("expected A4 between A1 and A8")
	}
	if betweenMask[SquareA1][SquareB3] != 0 {
		t.Errorf("expected no between mask for squares sharing no rook/bishop ray")
	}
	if betweenMask[SquareA1][SquareA1] != 0 {
		t.Errorf("expected empty between mask for identical squares")
	}
}
