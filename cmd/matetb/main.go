// Command matetb proves (or bounds) the best forced mate for a position
// by constructing a restricted game-tree tablebase and solving it by
// retrograde analysis.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/gomatetb/matetb/internal/chessrules"
	"github.com/gomatetb/matetb/internal/config"
	"github.com/gomatetb/matetb/internal/expand"
	"github.com/gomatetb/matetb/internal/logging"
	"github.com/gomatetb/matetb/internal/postore"
	"github.com/gomatetb/matetb/internal/pv"
	"github.com/gomatetb/matetb/internal/tablebase"
	"golang.org/x/sync/errgroup"
)

const defaultEPD = "8/8/8/1p6/6k1/1p2Q3/p1p1p3/rbrbK3 w - - bm #36;"

func main() {
	var err = run()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	var f config.Flags
	flag.StringVar(&f.EPD, "epd", defaultEPD, "EPD for the root position; if bm is absent, the side to move is assumed to be mating")
	flag.IntVar(&f.Depth, "depth", config.UnboundedDepth, "maximal depth for the game tree")
	flag.StringVar(&f.OpeningMoves, "openingMoves", "", "comma separated opening lines in UCI notation, one '*' placeholder allowed per line")
	flag.StringVar(&f.ExcludeMoves, "excludeMoves", "", "space separated UCI moves that are not allowed")
	flag.StringVar(&f.ExcludeSANs, "excludeSANs", "", "space separated SAN moves that are not allowed")
	flag.StringVar(&f.ExcludeFrom, "excludeFrom", "", "space separated squares that pieces should never move from")
	flag.StringVar(&f.ExcludeTo, "excludeTo", "", "space separated squares that pieces should never move to")
	flag.BoolVar(&f.ExcludeCaptures, "excludeCaptures", false, "never capture")
	flag.StringVar(&f.ExcludeCapturesOf, "excludeCapturesOf", "", "piece letters that should never be captured, e.g. \"qrbn\"")
	flag.BoolVar(&f.ExcludeToAttacked, "excludeToAttacked", false, "never move to an attacked square")
	flag.BoolVar(&f.ExcludeToCapturable, "excludeToCapturable", false, "never move to a square that risks capture")
	flag.StringVar(&f.ExcludePromotionTo, "excludePromotionTo", "", "piece letters that should never be promoted to, e.g. \"qrb\"")
	flag.BoolVar(&f.ExcludeAllowingCapture, "excludeAllowingCapture", false, "avoid moves that allow a capture in reply")
	flag.StringVar(&f.ExcludeAllowingFrom, "excludeAllowingFrom", "", "squares the opponent should not be allowed to move from in reply")
	flag.StringVar(&f.ExcludeAllowingTo, "excludeAllowingTo", "", "squares the opponent should not be allowed to move to in reply")
	flag.StringVar(&f.ExcludeAllowingMoves, "excludeAllowingMoves", "", "UCI moves the opponent should not be allowed to make in reply")
	flag.StringVar(&f.ExcludeAllowingSANs, "excludeAllowingSANs", "", "SAN moves the opponent should not be allowed to make in reply")
	flag.StringVar(&f.OutFile, "outFile", "", "optional output file for the tablebase")
	flag.IntVar(&f.Verbose, "verbose", 0, "verbosity level 0..4")
	flag.IntVar(&f.Concurrency, "concurrency", 4, "number of worker goroutines")
	flag.Parse()

	var logger = logging.New(logging.Level(f.Verbose))

	var cfg, err = config.Validate(f)
	if err != nil {
		return err
	}
	if cfg.Warning != "" {
		logger.Errorf("!! WARNING: %s", cfg.Warning)
	}
	logger.Infof("root: %s, mater: %s, depth: %d, workers: %d", cfg.RootFEN, materLabel(cfg.MaterWhite), cfg.Depth, cfg.Workers)

	var depth = cfg.Depth
	var g, ctx = errgroup.WithContext(context.Background())
	var result expand.Result
	var tb tablebase.Table
	var store *postore.Store

	g.Go(func() error {
		logger.Infof("Phase: enumerate")
		result = expand.Run(&cfg.Root, cfg.MaterWhite, &cfg.Filter, cfg.Book, depth, cfg.Workers)
		store, tb = result.Store, result.Table
		logger.Infof("Enumerated %d positions to depth %d", store.Len(), result.Depth)
		return ctx.Err()
	})
	if err := g.Wait(); err != nil {
		return err
	}

	g, ctx = errgroup.WithContext(context.Background())
	g.Go(func() error {
		logger.Infof("Phase: build graph")
		tablebase.BuildGraph(store, tb, cfg.Workers)
		return ctx.Err()
	})
	if err := g.Wait(); err != nil {
		return err
	}

	g, ctx = errgroup.WithContext(context.Background())
	var sweeps int
	g.Go(func() error {
		logger.Infof("Phase: solve")
		sweeps = tablebase.Solve(tb, cfg.Workers)
		return ctx.Err()
	})
	if err := g.Wait(); err != nil {
		return err
	}
	logger.Debugf("Solver converged after %d sweeps", sweeps)

	if cfg.OutFile != "" {
		if err := writeOutFile(cfg.OutFile, store, tb); err != nil {
			return err
		}
	}

	output(logger, store, tb, &cfg.Root, cfg.RootFEN, cfg.MaterWhite, f.Verbose)
	return nil
}

func materLabel(materWhite bool) string {
	if materWhite {
		return "white"
	}
	return "black"
}

func output(logger *logging.Logger, store *postore.Store, tb tablebase.Table, root *chessrules.Position, rootFEN string, materWhite bool, verbose int) {
	if len(chessrules.GenerateLegalMoves(root)) == 0 {
		outputRootTerminal(store, tb, root, rootFEN, materWhite)
		return
	}

	var lines = pv.RootLines(store, tb, root, materWhite)
	if len(lines) == 0 || lines[0].Score == tablebase.None || lines[0].Score == 0 {
		fmt.Println("No mate found.")
	} else {
		var n, _ = tablebase.MateDistance(lines[0].Score)
		var pvStr = pv.FormatUCIs(lines[0].PV)
		var end = *root
		for _, mv := range lines[0].PV {
			var child chessrules.Position
			if !end.MakeMove(mv, &child) {
				break
			}
			end = child
		}
		pvStr += pv.DrawSuffix(&end, len(chessrules.GenerateLegalMoves(&end)), materWhite)
		fmt.Printf("Matetrack:\n%s bm #%d; PV: %s;\n", rootFEN, n, pvStr)
	}

	if verbose < 1 {
		return
	}
	fmt.Println("MultiPV:")
	for _, line := range pv.FormatMultiPV(lines) {
		fmt.Println(line)
	}
	if verbose < 2 {
		return
	}
	for _, line := range lines {
		if len(line.PV) == 0 {
			continue
		}
		fmt.Println(pv.ChessDBLink(rootFEN, pv.FormatUCIs(line.PV)))
	}
}

// outputRootTerminal handles the boundary case where root itself has no
// legal moves: there is nothing to probe via RootLines, so the result
// comes straight from root's own stored score. Root is a forced mate
// for the mater only if it is itself checkmate delivered against the
// other side, i.e. score == Mate from the mater's perspective; a
// stalemate root, or a root where the mater is the one checkmated,
// reports no mate.
func outputRootTerminal(store *postore.Store, tb tablebase.Table, root *chessrules.Position, rootFEN string, materWhite bool) {
	var score, ok = pv.RootScore(store, tb, root, materWhite)
	if !ok || score != tablebase.Mate {
		fmt.Println("No mate found.")
		return
	}
	var n, _ = tablebase.MateDistance(score)
	fmt.Printf("Matetrack:\n%s bm #%d; PV: ;\n", rootFEN, n)
}

func writeOutFile(path string, store *postore.Store, tb tablebase.Table) error {
	var f, err = os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	var w = bufio.NewWriter(f)
	defer w.Flush()

	var writeErr error
	store.Range(func(key chessrules.PackedBoard, idx uint32) {
		if writeErr != nil {
			return
		}
		var pos, ok = chessrules.Unpack(key)
		if !ok {
			return
		}
		var score = tb.ScoreOf(idx)
		var line = pos.ShortFEN()
		if score != 0 && score != tablebase.None {
			if n, ok := tablebase.MateDistance(score); ok {
				line += fmt.Sprintf(" bm #%d;", n)
			}
		}
		_, writeErr = fmt.Fprintln(w, line)
	})
	return writeErr
}
