// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"

	"github.com/lgbarn/chesscore/internal/config"
)

var (
	// Position commands
	startFEN  = flag.String("fen", "", "Start position for -perft, -moves and -ascii (default: initial position)")
	perft     = flag.Int("perft", 0, "Count leaf nodes of the move tree to depth N")
	divide    = flag.Bool("divide", false, "With -perft, print the count below each root move")
	listMoves = flag.Bool("moves", false, "List the legal moves of the start position")
	showBoard = flag.Bool("ascii", false, "Print the start position as a diagram")

	// Loading
	strictMode = flag.Bool("strict", false, "Accept only exact SAN and honour FEN only with SetUp \"1\"")
	encoding   = flag.String("encoding", "auto", "Input encoding: auto, utf8, latin1")
	workers    = flag.Int("workers", 0, "Number of worker threads (0 = auto-detect based on CPU cores)")

	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	lineLength   = flag.Int("w", 80, "Maximum line length (0 = one line of movetext)")
	jsonOutput   = flag.Bool("J", false, "Output in JSON format")
	noComments   = flag.Bool("C", false, "Don't output comments")

	// Duplicate detection
	suppressDuplicates = flag.Bool("D", false, "Suppress duplicate games")
	duplicateFile      = flag.String("d", "", "Output duplicates to this file")
	checkFile          = flag.String("c", "", "Check file for duplicate detection")
	duplicateCapacity  = flag.Int("duplicate-capacity", 0, "Maximum duplicate hash table entries (0 = unlimited)")
	positionOnly       = flag.Bool("position-only", false, "Treat games reaching the same final position as duplicates")
	databaseDir        = flag.String("db", "", "Directory of a persistent duplicate index (needs -D)")

	// Filtering options
	minMoves        = flag.Int("minmoves", 0, "Minimum number of moves")
	maxMoves        = flag.Int("maxmoves", 0, "Maximum number of moves (0 = no limit)")
	checkmateFilter = flag.Bool("checkmate", false, "Only output games ending in checkmate")
	stalemateFilter = flag.Bool("stalemate", false, "Only output games ending in stalemate")
	drawFilter      = flag.Bool("draw", false, "Only output games ending in a drawn position")

	// Annotations
	addPlyCount    = flag.Bool("plycount", false, "Add PlyCount tag")
	addFENComments = flag.Bool("fencomments", false, "Add FEN comment after each move")
	addHashcodeTag = flag.Bool("addhashcode", false, "Add HashCode tag")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")

	// Other options
	quiet   = flag.Bool("s", false, "Silent mode (no game count)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	applyPositionFlags(cfg)
	applyContentFlags(cfg)
	applyMoveBoundsFlags(cfg)
	applyFilterFlags(cfg)
	applyAnnotationFlags(cfg)
	applyDuplicateFlags(cfg)

	enc, ok := config.ParseEncoding(*encoding)
	if !ok {
		return fmt.Errorf("unknown encoding %q", *encoding)
	}
	cfg.Encoding = enc
	cfg.StrictMoves = *strictMode
	cfg.Workers = *workers

	if *quiet {
		cfg.Verbosity = 0
	}
	return nil
}

// applyPositionFlags configures the single-position commands.
func applyPositionFlags(cfg *config.Config) {
	cfg.StartFEN = *startFEN
	cfg.PerftDepth = *perft
	cfg.Divide = *divide
	cfg.ListMoves = *listMoves
	cfg.ShowBoard = *showBoard
}

// applyContentFlags configures content output settings.
func applyContentFlags(cfg *config.Config) {
	cfg.Output.KeepComments = !*noComments
	if *lineLength >= 0 {
		cfg.Output.MaxLineLength = uint(*lineLength)
	}
	if *jsonOutput {
		cfg.Output.Format = config.JSON
	} else {
		cfg.Output.Format = config.PGN
	}
	cfg.Output.OutputFilename = *outputFile
}

// applyMoveBoundsFlags configures move bounds.
func applyMoveBoundsFlags(cfg *config.Config) {
	if *minMoves <= 0 && *maxMoves <= 0 {
		return
	}

	cfg.Filter.CheckMoveBounds = true
	cfg.Filter.UpperMoveBound = ^uint(0)
	if *minMoves > 0 {
		cfg.Filter.LowerMoveBound = uint(*minMoves)
	}
	if *maxMoves > 0 {
		cfg.Filter.UpperMoveBound = uint(*maxMoves)
	}
}

// applyFilterFlags configures game filter settings.
func applyFilterFlags(cfg *config.Config) {
	cfg.Filter.MatchCheckmate = *checkmateFilter
	cfg.Filter.MatchStalemate = *stalemateFilter
	cfg.Filter.MatchDraw = *drawFilter
}

// applyAnnotationFlags configures annotation settings.
func applyAnnotationFlags(cfg *config.Config) {
	cfg.Annotation.AddPlyCount = *addPlyCount
	cfg.Annotation.AddFENComments = *addFENComments
	cfg.Annotation.AddHashTag = *addHashcodeTag
}

// applyDuplicateFlags configures duplicate detection settings.
func applyDuplicateFlags(cfg *config.Config) {
	cfg.Duplicate.Suppress = *suppressDuplicates
	cfg.Duplicate.MaxCapacity = *duplicateCapacity
	cfg.Duplicate.ExactMatch = !*positionOnly
	cfg.Duplicate.DatabaseDir = *databaseDir
}
