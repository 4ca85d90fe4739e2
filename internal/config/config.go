// Package config validates the CLI flags (see cmd/matetb) into the
// parameters the rest of the generator needs: a legal root position,
// which side is mating, the active move filter, and the opening book.
package config

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gomatetb/matetb/internal/book"
	"github.com/gomatetb/matetb/internal/chessrules"
	"github.com/gomatetb/matetb/internal/presets"
	"github.com/gomatetb/matetb/internal/restrict"
)

// UnboundedDepth is the --depth default: effectively unlimited, matching
// the original generator's MAX_DEPTH sentinel. A preset only overrides
// depth when the caller left it at this sentinel.
const UnboundedDepth = math.MaxInt32

// ValidationError names the offending flag alongside its raw value, the
// way common.NewPositionFromFEN reports a bad FEN string.
type ValidationError struct {
	Flag  string
	Value string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("--%s=%q: %v", e.Flag, e.Value, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

func fail(flag, value string, err error) error {
	return &ValidationError{Flag: flag, Value: value, Err: err}
}

// Flags mirrors the CLI surface, one field per flag, all strings/bools/
// ints so cmd/matetb can fill it directly from the standard flag
// package without an intermediate struct.
type Flags struct {
	EPD          string
	Depth        int
	OpeningMoves string

	ExcludeMoves string
	ExcludeSANs  string
	ExcludeFrom  string
	ExcludeTo    string

	ExcludeCaptures   bool
	ExcludeCapturesOf string

	ExcludeToAttacked   bool
	ExcludeToCapturable bool

	ExcludePromotionTo string

	ExcludeAllowingCapture bool
	ExcludeAllowingFrom    string
	ExcludeAllowingTo      string
	ExcludeAllowingMoves   string
	ExcludeAllowingSANs    string

	OutFile     string
	Verbose     int
	Concurrency int
}

// hasOwnRestriction reports whether the user supplied any restriction
// flag, i.e. whether presets.Lookup should be consulted at all.
func (f Flags) hasOwnRestriction() bool {
	return f.OpeningMoves != "" || f.ExcludeMoves != "" || f.ExcludeSANs != "" ||
		f.ExcludeFrom != "" || f.ExcludeTo != "" || f.ExcludeCaptures ||
		f.ExcludeCapturesOf != "" || f.ExcludeToAttacked || f.ExcludeToCapturable ||
		f.ExcludePromotionTo != "" || f.ExcludeAllowingCapture ||
		f.ExcludeAllowingFrom != "" || f.ExcludeAllowingTo != "" ||
		f.ExcludeAllowingMoves != "" || f.ExcludeAllowingSANs != ""
}

// Config is the validated, ready-to-run configuration.
type Config struct {
	Root        chessrules.Position
	RootFEN     string
	MaterWhite  bool
	Filter      restrict.Filter
	Book        book.Book
	Depth       int
	Workers     int
	OutFile     string
	Verbose     int
	Warning     string
}

// Validate turns f into a Config, applying a known preset when f carries
// no restriction flags of its own, and building the opening book overlay
// from the resolved opening moves.
func Validate(f Flags) (*Config, error) {
	var tokens = strings.Fields(f.EPD)
	if len(tokens) < 4 {
		return nil, fail("epd", f.EPD, fmt.Errorf("expected at least 4 space-separated EPD fields"))
	}
	var rootFEN = strings.Join(tokens[0:4], " ")

	var materWhite = tokens[1] == "w"
	if n, ok := findBM(tokens[4:]); ok {
		materWhite = (n > 0) == (tokens[1] == "w")
	}

	var root, err = chessrules.NewPositionFromFEN(rootFEN)
	if err != nil {
		return nil, fail("epd", f.EPD, err)
	}

	var depth = f.Depth
	var openingMoves = f.OpeningMoves
	var filter restrict.Filter
	var warning string

	if f.hasOwnRestriction() {
		filter, err = buildFilter(f)
		if err != nil {
			return nil, err
		}
	} else if p, ok := presets.Lookup(rootFEN); ok {
		filter = p.Filter
		openingMoves = p.OpeningMoves
		warning = p.Warning
		if p.Depth != 0 && depth == UnboundedDepth {
			depth = p.Depth
		}
	}

	var overlay book.Book
	if openingMoves != "" {
		overlay, err = book.Build(rootFEN, materWhite, openingMoves)
		if err != nil {
			return nil, fail("openingMoves", openingMoves, err)
		}
	}

	var workers = f.Concurrency
	if workers < 1 {
		workers = 1
	}

	return &Config{
		Root:       root,
		RootFEN:    rootFEN,
		MaterWhite: materWhite,
		Filter:     filter,
		Book:       overlay,
		Depth:      depth,
		Workers:    workers,
		OutFile:    f.OutFile,
		Verbose:    f.Verbose,
		Warning:    warning,
	}, nil
}

// findBM looks for a "bm #<N>;" operation among the EPD's trailing
// tokens and returns its signed mate number.
func findBM(ops []string) (int, bool) {
	for i, tok := range ops {
		if tok != "bm" || i+1 >= len(ops) {
			continue
		}
		var val = strings.TrimSuffix(ops[i+1], ";")
		val = strings.TrimPrefix(val, "#")
		var n, err = strconv.Atoi(val)
		if err != nil {
			continue
		}
		return n, true
	}
	return 0, false
}

func buildFilter(f Flags) (restrict.Filter, error) {
	var squares = func(flag, s string) (map[int]bool, error) {
		var out = map[int]bool{}
		for _, name := range strings.Fields(s) {
			var sq = chessrules.ParseSquare(name)
			if sq == chessrules.SquareNone {
				return nil, fail(flag, s, fmt.Errorf("unknown square %q", name))
			}
			out[sq] = true
		}
		return out, nil
	}
	var tokens = func(s string) map[string]bool {
		var out = map[string]bool{}
		for _, tok := range strings.Fields(s) {
			out[tok] = true
		}
		return out
	}
	var pieces = func(flag, s string) (map[byte]bool, error) {
		var out = map[byte]bool{}
		for i := 0; i < len(s); i++ {
			if !strings.ContainsRune("pnbrqk", rune(s[i])) {
				return nil, fail(flag, s, fmt.Errorf("unknown piece letter %q", string(s[i])))
			}
			out[s[i]] = true
		}
		return out, nil
	}

	var filter restrict.Filter
	var err error

	filter.ExcludeUCI = tokens(f.ExcludeMoves)
	filter.ExcludeSAN = tokens(f.ExcludeSANs)
	if filter.ExcludeFrom, err = squares("excludeFrom", f.ExcludeFrom); err != nil {
		return filter, err
	}
	if filter.ExcludeTo, err = squares("excludeTo", f.ExcludeTo); err != nil {
		return filter, err
	}
	filter.ExcludeCaptures = f.ExcludeCaptures
	if filter.ExcludeCapturesOf, err = pieces("excludeCapturesOf", f.ExcludeCapturesOf); err != nil {
		return filter, err
	}
	filter.ExcludeToAttacked = f.ExcludeToAttacked
	filter.ExcludeToCapturable = f.ExcludeToCapturable
	if filter.ExcludePromotionTo, err = pieces("excludePromotionTo", f.ExcludePromotionTo); err != nil {
		return filter, err
	}
	filter.ExcludeAllowingCapture = f.ExcludeAllowingCapture
	if filter.ExcludeAllowingFrom, err = squares("excludeAllowingFrom", f.ExcludeAllowingFrom); err != nil {
		return filter, err
	}
	if filter.ExcludeAllowingTo, err = squares("excludeAllowingTo", f.ExcludeAllowingTo); err != nil {
		return filter, err
	}
	filter.ExcludeAllowingUCI = tokens(f.ExcludeAllowingMoves)
	filter.ExcludeAllowingSAN = tokens(f.ExcludeAllowingSANs)

	return filter, nil
}
