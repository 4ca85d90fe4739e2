// Package presets carries known-good restriction sets for specific root
// EPDs, used when the caller supplies no restriction flags of its own.
// Each entry was hand-tuned against a particular stalemate-avoidance
// puzzle: without it, enumeration either explodes before maxDepth or
// converges on a shorter, unintended mate.
package presets

import (
	"strings"

	"github.com/gomatetb/matetb/internal/chessrules"
	"github.com/gomatetb/matetb/internal/restrict"
)

// Preset is the override applied when the normalized root EPD matches.
// Depth of 0 leaves the caller's --depth alone. Warning, when non-empty,
// is printed once: some of these positions were tuned by hand and a
// faithful generator would need search, not just restriction, to find
// the stated mate.
type Preset struct {
	Filter       restrict.Filter
	OpeningMoves string
	Depth        int
	Warning      string
}

var table = map[string]*Preset{}

func register(p *Preset, epds ...string) {
	for _, epd := range epds {
		table[epd] = p
	}
}

// Lookup returns the preset registered for a normalized EPD (board,
// side to move, castling, en passant fields only — no operations), if
// any.
func Lookup(epd string) (*Preset, bool) {
	p, ok := table[epd]
	return p, ok
}

func squareSet(s string) map[int]bool {
	var out = map[int]bool{}
	for _, name := range strings.Fields(s) {
		var sq = chessrules.ParseSquare(name)
		if sq != chessrules.SquareNone {
			out[sq] = true
		}
	}
	return out
}

func stringSet(s string) map[string]bool {
	var out = map[string]bool{}
	for _, tok := range strings.Fields(s) {
		out[tok] = true
	}
	return out
}

func pieceSet(s string) map[byte]bool {
	var out = map[byte]bool{}
	for i := 0; i < len(s); i++ {
		out[s[i]] = true
	}
	return out
}

func init() {
	register(&Preset{
		Filter: restrict.Filter{
			ExcludeAllowingCapture: true,
			ExcludeAllowingUCI:     stringSet("h2h1q"),
		},
		Depth: 11,
	}, "8/8/7p/5K1k/R7/8/8/8 w - -")

	register(&Preset{
		Filter: restrict.Filter{
			ExcludeAllowingCapture: true,
			ExcludeAllowingFrom:    squareSet("g1"),
			ExcludeAllowingUCI:     stringSet("e6e5 e5e4"),
		},
	}, "8/4p2p/8/8/8/8/6p1/2B1K1kb w - -")

	register(&Preset{
		Filter: restrict.Filter{
			ExcludeFrom:        squareSet("b1"),
			ExcludeCaptures:    true,
			ExcludePromotionTo: pieceSet("qrb"),
			ExcludeToCapturable: true,
		},
	}, "8/8/7P/8/pp6/kp6/1p6/1Kb5 w - -")

	register(&Preset{
		Filter: restrict.Filter{
			ExcludeFrom:         squareSet("g1"),
			ExcludeToCapturable: true,
		},
		Depth: 13,
	}, "8/6Q1/8/7k/8/6p1/6p1/6Kb w - -", "8/8/8/8/Q7/5kp1/6p1/6Kb w - -")

	register(&Preset{
		Filter: restrict.Filter{
			ExcludeFrom:         squareSet("b1"),
			ExcludeTo:           squareSet("b3"),
			ExcludeToCapturable: true,
		},
		Depth: 15,
	}, "8/3Q4/8/1r6/kp6/bp6/1p6/1K6 w - -")

	register(&Preset{
		Filter: restrict.Filter{
			ExcludeFrom:         squareSet("c1"),
			ExcludeTo:           squareSet("b2"),
			ExcludeToCapturable: true,
		},
	}, "k7/2Q5/8/2p5/1pp5/1pp5/prp5/nbK5 w - -")

	register(&Preset{
		Filter: restrict.Filter{
			ExcludeFrom:         squareSet("b1"),
			ExcludeToCapturable: true,
		},
		OpeningMoves: "c7c8q",
	}, "8/2P5/8/8/8/1p2k1p1/1p1pppp1/1Kbrqbrn w - -")

	register(&Preset{
		Filter: restrict.Filter{
			ExcludeFrom:         squareSet("e2"),
			ExcludeToCapturable: true,
		},
	}, "8/8/1p6/1p6/1p6/1p6/pppbK3/rbk3N1 w - -")

	register(&Preset{
		Filter: restrict.Filter{
			ExcludeFrom:         squareSet("c1"),
			ExcludeToCapturable: true,
		},
	}, "8/8/8/6r1/8/6B1/p1p5/k1Kb4 w - -", "k7/8/1Qp5/2p5/2p5/6p1/2p1ppp1/2Kbrqrn w - -")

	register(&Preset{
		Filter: restrict.Filter{
			ExcludeFrom:         squareSet("e1"),
			ExcludePromotionTo:  pieceSet("qrb"),
			ExcludeToCapturable: true,
		},
	}, "8/8/8/2p5/1pp5/brpp4/1pprp2P/qnkbK3 w - -")

	register(&Preset{
		Filter: restrict.Filter{
			ExcludeFrom:         squareSet("f1"),
			ExcludeToCapturable: true,
		},
	}, "4k3/6Q1/8/8/5p2/1p1p1p2/1ppp1p2/nrqrbK2 w - -")

	register(&Preset{
		Filter: restrict.Filter{
			ExcludeFrom:         squareSet("e1"),
			ExcludePromotionTo:  pieceSet("qrb"),
			ExcludeToCapturable: true,
		},
		OpeningMoves: "f1e1",
	}, "8/8/8/2p5/1pp5/brpp4/qpprp2P/1nkbnK2 w - -")

	register(&Preset{
		Filter: restrict.Filter{
			ExcludeFrom:         squareSet("e1"),
			ExcludePromotionTo:  pieceSet("qrb"),
			ExcludeToCapturable: true,
		},
		OpeningMoves: "f2e1",
	}, "8/8/8/2p5/1pp5/brpp4/qpprpK1P/1nkbn3 w - -")

	register(&Preset{
		Filter: restrict.Filter{
			ExcludeFrom:         squareSet("d2"),
			ExcludeToCapturable: true,
		},
	}, "8/p7/8/8/8/3p1b2/pp1K1N2/qk6 w - -")

	register(&Preset{
		Filter: restrict.Filter{
			ExcludeFrom:         squareSet("b1"),
			ExcludeToCapturable: true,
		},
	}, "k7/8/1Q6/8/8/6p1/1p1pppp1/1Kbrqbrn w - -")

	register(&Preset{
		Filter: restrict.Filter{
			ExcludeFrom:         squareSet("c1"),
			ExcludeTo:           squareSet("a3 c3"),
			ExcludeToCapturable: true,
		},
	}, "8/8/2p5/2p5/p1p5/rbp5/p1p2Q2/n1K4k w - -", "8/2p5/2p5/8/p1p5/rbp5/p1p2Q2/n1K4k w - -")

	register(&Preset{
		Filter: restrict.Filter{
			ExcludeFrom:         squareSet("f1"),
			ExcludeTo:           squareSet("h1"),
			ExcludeToCapturable: true,
		},
	},
		"4k3/6Q1/8/5p2/5p2/1p3p2/1ppp1p2/nrqrbK2 w - -",
		"4k3/6Q1/8/8/8/1p3p2/1ppp1p2/nrqrbK2 w - -",
		"8/7p/4k3/5p2/3Q1p2/5p2/5p1p/5Kbr w - -",
	)

	register(&Preset{
		Filter: restrict.Filter{
			ExcludeFrom:            squareSet("d1"),
			ExcludeAllowingCapture: true,
		},
	},
		"8/8/8/8/6k1/8/2Qp1pp1/3Kbrrb w - -",
		"8/3Q4/8/2kp4/8/1p1p4/pp1p4/rrbK4 w - -",
		"8/8/8/6k1/3Q4/8/3p1pp1/3Kbrrb w - -",
		"k7/8/8/2Q5/3p4/1p1p4/pp1p4/rrbK4 w - -",
		"7k/8/8/8/8/5Qp1/3p1pp1/3Kbrrn w - -",
		"6k1/8/5Q2/8/8/8/3p1pp1/3Kbrrb w - -",
		"4Q3/6k1/8/8/8/8/3p1pp1/3Kbrrb w - -",
		"5k2/8/4Q3/8/8/8/3p1pp1/3Kbrrb w - -",
		"6k1/8/8/8/8/3Q4/3p1pp1/3Kbrrb w - -",
		"8/8/8/1p6/1k6/3Q4/pp1p4/rrbK4 w - -",
		"4k3/8/3Q4/8/8/8/3p1pp1/3Kbrrb w - -",
		"4k3/2Q5/8/8/8/8/3p1pp1/3Kbrrb w - -",
		"8/8/8/8/1Q6/3k4/3p1pp1/3Kbrrb w - -",
		"8/8/6k1/Q7/8/8/3p1pp1/3Kbrrb w - -",
		"8/8/2k5/8/3p4/Qp1p4/pp1p4/rrbK4 w - -",
		"8/3k4/3p1Q2/8/8/1p1p4/pp1p4/rrbK4 w - -",
		"8/1p6/1Q6/8/2kp4/3p4/pp1p4/rrbK4 w - -",
		"8/6p1/4Q3/6k1/8/8/3p1pp1/3Kbrrb w - -",
		"2k5/3p4/1Q6/8/8/1p1p4/pp1p4/rrbK4 w - -",
		"4k3/3p4/5Q2/8/8/1p1p4/pp1p4/rrbK4 w - -",
		"3Q4/8/8/8/k7/8/3p1pp1/3Kbrrb w - -",
		"8/2Q5/8/8/1k1p4/4p1p1/3prpp1/3Kbbrn w - -",
	)

	register(&Preset{
		Filter: restrict.Filter{
			ExcludeFrom:       squareSet("e1"),
			ExcludeTo:         squareSet("a1 c1"),
			ExcludeToAttacked: true,
		},
	}, "8/8/8/1p6/6k1/1Q6/p1p1p3/rbrbK3 b - -", "8/8/8/1p6/6k1/1p2Q3/p1p1p3/rbrbK3 w - -")

	register(&Preset{
		Filter: restrict.Filter{
			ExcludeFrom:       squareSet("d1"),
			ExcludeToAttacked: true,
		},
		OpeningMoves: "c2d1",
	}, "7k/8/5p2/8/8/8/P1Kp1pp1/4brrb w - -")

	register(&Preset{
		Filter: restrict.Filter{
			ExcludeFrom:       squareSet("d1"),
			ExcludeCaptures:   true,
			ExcludeToAttacked: true,
		},
	}, "8/1p6/8/3p3k/3p4/6Q1/pp1p4/rrbK4 w - -")

	register(&Preset{
		Filter: restrict.Filter{
			ExcludeFrom:            squareSet("e1"),
			ExcludeAllowingCapture: true,
		},
	},
		"6Q1/8/7k/8/8/6p1/4p1pb/4Kbrr w - -",
		"2Q5/k7/8/8/8/8/1pp1p3/brrbK3 w - -",
		"8/8/3p4/1Q6/8/2k5/ppp1p3/brrbK3 w - -",
		"8/1p2k3/8/8/5Q2/8/ppp1p3/qrrbK3 w - -",
		"8/1p2k3/8/8/5Q2/8/ppp1p3/bqrbK3 w - -",
	)

	register(&Preset{
		Filter: restrict.Filter{
			ExcludeFrom:            squareSet("b3"),
			ExcludeAllowingCapture: true,
			ExcludeAllowingFrom:    squareSet("b1 h1"),
			ExcludeAllowingUCI:     stringSet("c3c2"),
		},
	}, "8/7p/7p/7p/1p3Q1p/1Kp5/nppr4/qrk5 w - -")

	register(&Preset{
		Filter: restrict.Filter{
			ExcludeFrom:       squareSet("d1"),
			ExcludeToAttacked: true,
		},
	},
		"8/1p6/4k3/8/3p1Q2/3p4/pp1p4/rrbK4 w - -",
		"8/6pp/5p2/k7/3p4/1Q2p3/3prpp1/3Kbqrb w - -",
	)

	register(&Preset{
		Filter: restrict.Filter{
			ExcludeFrom:            squareSet("c1 g2"),
			ExcludeTo:              squareSet("a1 g3"),
			ExcludeAllowingCapture: true,
			ExcludeAllowingFrom:    squareSet("h5"),
		},
	}, "5Q2/p1p5/p1p5/6rp/7k/6p1/p1p3P1/rbK5 w - -")

	register(&Preset{
		Filter: restrict.Filter{
			ExcludeSAN: stringSet(strings.Join([]string{
				"Ra2 Ra3 Ra4 Ra5 Ra6 Ra7 Ra8",
				"Rb2 Rb3 Rb4 Rb5 Rb6 Rb7 Rb8",
				"Rc2 Rc3 Rc4 Rc5 Rc6 Rc7 Rc8",
				"Rd2 Rd3 Rd4 Rd5 Rd6 Rd7 Rd8",
				"Re2 Re3 Re4 Re5 Re6 Re7 Re8",
				"Rf2 Rf3 Rf4 Rf5 Rf6 Rf7 Rf8",
				"Rg2 Rg3 Rg4 Rg5 Rg6 Rg7 Rg8",
				"Rh2 Rh3 Rh4 Rh5 Rh6 Rh7 Rh8",
			}, " ")),
			ExcludeAllowingCapture: true,
			ExcludeAllowingFrom:    squareSet("a1 d1 f1 h1"),
		},
		OpeningMoves: "e8e1 d6e4 e1e4 f3f2 f1f2 * e4e1, e8e1 d6e4 e1e4 * e4e1, e8e1 * f1f2",
	},
		"4R3/1n1p4/3n4/8/8/p4p2/7p/5K1k w - -",
		"4R3/1n1p1p2/3n4/8/8/p4p2/7p/5K1k w - -",
		"4R3/pn1p1p1p/p2n4/8/8/p4p2/7p/5K1k w - -",
	)

	register(&Preset{
		Filter: restrict.Filter{
			ExcludeFrom:            squareSet("f1"),
			ExcludeTo:              squareSet("h1"),
			ExcludeAllowingCapture: true,
			ExcludeAllowingFrom:    squareSet("b3 h5 h4"),
		},
		OpeningMoves: "g7g8q",
	}, "8/1p4Pp/1p6/1p6/1p5p/5r1k/5p1p/5Kbr w - -")

	register(&Preset{
		Filter: restrict.Filter{
			ExcludeFrom:            squareSet("f1"),
			ExcludeTo:              squareSet("h1"),
			ExcludeAllowingCapture: true,
			ExcludeAllowingFrom:    squareSet("b3 h5 h4"),
		},
		OpeningMoves: "g7g8q g2h3 e2f1, g7g8q f3g3 g8d5 g3f3 d5f3, g7g8q f3g3 g8d5 g2h3 d5e6 g3g4 e2f1, g7g8q f3g3 g8d5 g2h3 d5e6 h3g2 e6e4 g3f3 e4f3, g7g8q f3g3 g8d5 g2h3 d5e6 h3g2 e6e4 g2h3 e2f1",
	}, "8/6Pp/8/8/7p/5r2/4Kpkp/6br w - -", "8/1p4Pp/1p6/1p6/1p5p/5r2/4Kpkp/6br w - -")

	register(&Preset{
		Filter: restrict.Filter{
			ExcludeSAN:             stringSet("Nb6 Nb5 Nc4"),
			ExcludeFrom:            squareSet("a4 b3 d3"),
			ExcludeAllowingCapture: true,
		},
		Warning: "An engine may be needed (not implemented yet).",
	},
		"8/8/8/8/NK6/1B1N4/2rpn1pp/2bk1brq w - -",
		"8/7p/8/8/NK6/1B1N4/2rpn1pp/2bk1brq w - -",
		"8/5ppp/5p2/8/NK6/1B1N4/2rpn1pp/2bk1brq w - -",
	)

	register(&Preset{
		Filter: restrict.Filter{
			ExcludeSAN:             stringSet("Kh1 Kg1 Kg2 Kg3 Kg4 Kh4"),
			ExcludeTo:              squareSet("b2 c2 d2 e2"),
			ExcludeAllowingCapture: true,
			ExcludeAllowingFrom:    squareSet("b2 c2 d2 e2"),
			ExcludeAllowingSAN:     stringSet("Ke3 Kf3 Kh1 Kg2 Kh2"),
		},
		OpeningMoves: "f7f8q f1e1 f8a3 * a3g3 e1f1 g3g1",
	},
		"8/5P2/8/8/8/n7/1pppp2K/br1r1kn1 w - -",
		"8/3p1P2/8/8/8/n7/1pppp2K/br1r1kn1 w - -",
		"8/2pp1P2/8/8/8/n7/1pppp2K/br1r1kn1 w - -",
		"8/pppp1P2/8/8/8/n7/1pppp2K/br1r1kn1 w - -",
	)

	register(&Preset{
		Filter: restrict.Filter{
			ExcludeFrom:            squareSet("d3 e2"),
			ExcludeAllowingCapture: true,
			ExcludeAllowingFrom:    squareSet("b2 h2 h1"),
			ExcludeAllowingSAN:     stringSet("Be4 Bd5 Bc6 Bb7 Ba8 Bg4 Bh5"),
		},
		Warning: "An engine may be needed (not implemented yet).",
	},
		"7K/8/8/8/4n3/pp1N3p/rp2N1br/bR3n1k w - -",
		"7K/8/8/7p/p3n3/1p1N3p/rp2N1br/bR3n1k w - -",
		"7K/3p4/4p3/1p5p/p3n3/1p1N3p/rp2N1br/bR3n1k w - -",
	)

	register(&Preset{
		Filter: restrict.Filter{
			ExcludeSAN:             stringSet("Rf2"),
			ExcludeFrom:            squareSet("f3 e4"),
			ExcludeAllowingCapture: true,
		},
	},
		"8/8/6p1/6Pb/p3P1k1/P1p1PNnr/2P1PKRp/7B w - -",
		"8/4p3/6p1/6Pb/p3P1k1/P1p1PNnr/2P1PKRp/7B w - -",
		"8/p1p1p3/2p3p1/6Pb/p3P1k1/P1p1PNnr/2P1PKRp/7B w - -",
	)

	register(&Preset{
		Filter: restrict.Filter{
			ExcludeFrom:            squareSet("a3 b3 b4 b7 c6 g2"),
			ExcludeAllowingCapture: true,
			ExcludeAllowingFrom:    squareSet("a8 b5 b6 c7 e2 f1 g3 g2 d3"),
			ExcludeTo:              squareSet("a8"),
			ExcludeToCapturable:    true,
			ExcludeUCI:        stringSet("f1c4 e2c4 e2d1 e2f3 e2g4 e2h5 f1g2 f1h3 d3c2 d3b1 d3e4 d3f5 d3g6 d3h7"),
		},
		Warning: "An engine may be needed (not implemented yet).",
	},
		"n1K5/bNp5/1pP5/1k4p1/1N2pnp1/PP2p1p1/4rpP1/5B2 w - -",
		"n1K5/bNp1p3/1pP5/1k4p1/1N3np1/PP2p1p1/4rpP1/5B2 w - -",
		"n1K5/bNp1p1p1/1pP5/1k6/1N3np1/PP2p1p1/4rpP1/5B2 w - -",
		"n1K5/bNp1p1p1/1pP3p1/1k2p3/1N3n2/PP4p1/4rpP1/5B2 w - -",
	)

	register(&Preset{
		Filter: restrict.Filter{
			ExcludeFrom:            squareSet("d2 e3 g1"),
			ExcludeTo:              squareSet("g3"),
			ExcludeAllowingFrom:    squareSet("a1 a2 d5"),
			ExcludeAllowingCapture: true,
		},
		Warning: "An engine may be needed (not implemented yet).",
	},
		"8/8/8/3p2p1/p2np1K1/p3N1pp/rb1N2pr/k1n3Rb w - -",
		"8/8/8/3p2p1/p2np1Kp/p3N1p1/rb1N2pr/k1n3Rb w - -",
		"8/4p3/3p4/p5p1/3n2Kp/p3N1p1/rb1N2pr/k1n3Rb w - -",
	)

	{
		var f = restrict.Filter{
			ExcludeFrom:            squareSet("d5 e7 g7 e8"),
			ExcludeTo:              squareSet("d6 a1 b2 b3 d1 d2 d3"),
			ExcludeSAN: stringSet("Qxf2 Qxf3 Qxf4 Qxf5 Qxf6 Qxf7 Qxg8 Qxg2 Qxg3 Qxg4 Qxg5 " +
				"Qxg6 Qxg7 Qxg8 Qxh1 Qxh1+ Rb1 Rb2 Rb3 Rb4 Rb5 Rb6 Rb7 Rb8 " +
				"Rd1 Rd2 Rd3 Rd4 Rd5 Rd6 Rd7 Rd8 Re1 Re2 Re3 Re4 Re5 Re6 " +
				"Re7 Re8 Rf1 Rf2 Rf3 Rf4 Rf5 Rf6 Rf7 Rf8 Rg1 Rg2 Rg3 Rg4 " +
				"Rg5 Rg6 Rg7 Rg8 Rh1 Rh2 Rh3 Rh4 Rh5 Rh6 Rh7 Rh8"),
			ExcludeUCI: stringSet("d8e6 d8c6 d8b7 f7h8 f7h6 f7g5 f7e5 f7d6 g8f6 g8e7 h6g4 " +
				"h6f5 h6f7 f7f8n"),
			ExcludeToCapturable: true,
			ExcludePromotionTo:  pieceSet("qrb"),
			ExcludeAllowingFrom: squareSet("c7 a1 b2 b3 d1 d2 d3 g7 h6 f7 g8 e8 d8 e7 h8 c8 b8 a8"),
			ExcludeAllowingTo:   squareSet("f1 g1 f6 d5"),
			ExcludeAllowingUCI:  stringSet("a2a3 c2c3"),
			ExcludeAllowingSAN:  stringSet("Nxf7 Nxf6 Nxf7+ Nxf6+"),
		}
		register(&Preset{
			Filter:  f,
			Warning: "An engine may be needed (not implemented yet).",
		},
			"2RN1qN1/5P2/3p1P2/3P4/1K6/1p1p1pp1/1p1p1np1/bk1b2Q1 w - -",
			"2RN1qN1/5P2/3p1P2/3P4/8/Kp1p1pp1/1p1p1np1/bk1b2Q1 w - -",
			"3N1qN1/1Kn2P2/3p1Pp1/3P1pp1/R7/1p1p4/1p1p1n2/bk1b2Q1 w - -",
		)
		register(&Preset{
			Filter:       f,
			OpeningMoves: "b4a4 * b6g1",
			Warning:      "An engine may be needed (not implemented yet).",
		},
			"3N1qN1/1Kn2P2/1Q1p1Pp1/3P1pp1/1R6/1p1p4/kp1p4/b2b3n w - -",
		)
	}

	register(&Preset{
		Filter: restrict.Filter{
			ExcludeFrom:            squareSet("a3"),
			ExcludeTo:              squareSet("a1"),
			ExcludeAllowingCapture: true,
			ExcludeAllowingFrom:    squareSet("a1 h1"),
			ExcludeAllowingSAN:     stringSet("Kb1 Kc2 Kd1 Kd2"),
		},
	},
		"8/p7/8/p7/b3Q3/K7/p1r5/rk6 w - -",
		"8/p7/8/p7/b3Q3/K6p/p1r5/rk6 w - -",
		"8/p6p/7p/p6p/b3Q2p/K6p/p1r5/rk6 w - -",
	)

	register(&Preset{
		Filter: restrict.Filter{
			ExcludeFrom:         squareSet("d1 f1 h1 b2 b3 a5 b6 d6"),
			ExcludeTo:           squareSet("c8"),
			ExcludeAllowingFrom: squareSet("d3 d4 a6 b7 c8 d7"),
			ExcludeAllowingTo:   squareSet("d1 f1 h1"),
		},
		OpeningMoves: "h5d1",
		Warning:      "An engine may be needed (not implemented yet).",
	},
		"r1b5/1pKp4/pP1P4/P6B/3pn3/1P1k4/1P6/5N1N w - -",
		"r1b5/1pKp4/pP1P4/P6B/3pn2p/1P1k4/1P6/5N1N w - -",
		"r1b5/1pKp4/pP1P1p1p/P4p1B/3pn2p/1P1k4/1P6/5N1N w - -",
	)

	register(&Preset{
		Filter: restrict.Filter{
			ExcludeCaptures: true,
			ExcludeFrom:     squareSet("h1"),
		},
		Warning: "An engine may be needed (not implemented yet).",
	},
		"8/1p1p4/3p2p1/5pP1/1p3P1k/1P1p1P1p/1P1P1P1K/7B w - -",
	)

	register(&Preset{
		Filter: restrict.Filter{
			ExcludeFrom:            squareSet("b2 d1 e1 b5 c6"),
			ExcludeTo:              squareSet("a8 b6 c7 b3"),
			ExcludeUCI:               stringSet("e2g1 e2c1 e2c3 e2d4 e2f4 g3h1 g3h5 g3f5 g3e4 g3f1"),
			ExcludeToCapturable:    true,
			ExcludePromotionTo:     pieceSet("qrbn"),
			ExcludeAllowingFrom:    squareSet("a8 b6 c7 h2 f1"),
		},
		Warning: "An engine may be needed (not implemented yet).",
	},
		"n7/b1p1K3/1pP5/1P6/7p/1p4Pn/1P2N1br/3NRn1k w - -",
		"n7/b1p1K3/1pP5/1P6/6pp/1p4Pn/1P2N1br/3NRn1k w - -",
		"n7/b1p1K3/1pP5/1P4p1/6pp/1p4Pn/1P2N1br/3NRn1k w - -",
		"n7/b1p1K3/1pP4p/1P4p1/6p1/1p4Pn/1P2N1br/3NRn1k w - -",
	)
}
