// chesscore validates, replays and re-emits chess games in PGN format, and
// answers move generation queries about single positions.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/lgbarn/chesscore/internal/config"
	"github.com/lgbarn/chesscore/internal/hashing"
	"github.com/lgbarn/chesscore/internal/store"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chesscore version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	if hasPositionCommand(cfg) {
		if err := runPositionCommands(context.Background(), cfg, cfg.OutputFile); err != nil {
			fmt.Fprintf(cfg.LogFile, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	setupDuplicateFile(cfg)
	ctx := newProcessingContext(cfg)
	db := setupDuplicateDetector(ctx)

	err := processAllInputs(ctx, flag.Args())
	if closeErr := ctx.Close(); err == nil {
		err = closeErr
	}
	if db != nil {
		if closeErr := db.Close(); err == nil {
			err = closeErr
		}
	}
	if err != nil {
		fmt.Fprintf(cfg.LogFile, "Error: %v\n", err)
		os.Exit(1)
	}

	if cfg.Verbosity > 0 {
		reportStatistics(cfg.LogFile, ctx.stats, ctx.detector != nil)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if cfg.Output.OutputFilename == "" {
		return
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(cfg.Output.OutputFilename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(cfg.Output.OutputFilename)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", cfg.Output.OutputFilename, err)
		os.Exit(1)
	}
	cfg.SetOutput(file)
}

// setupDuplicateFile configures the duplicate output file.
func setupDuplicateFile(cfg *config.Config) {
	if *duplicateFile == "" {
		return
	}

	file, err := os.Create(*duplicateFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating duplicate file %s: %v\n", *duplicateFile, err)
		os.Exit(1)
	}
	cfg.Duplicate.DuplicateFile = file
}

// setupDuplicateDetector attaches the duplicate detector, its persistent
// index and the check file games to ctx. It returns the opened index.
func setupDuplicateDetector(ctx *ProcessingContext) *store.Store {
	cfg := ctx.cfg
	if !cfg.Duplicate.Suppress && cfg.Duplicate.DuplicateFile == nil && *checkFile == "" {
		return nil
	}

	ctx.detector = hashing.NewThreadSafeDuplicateDetector(cfg.Duplicate.ExactMatch, cfg.Duplicate.MaxCapacity)

	if *checkFile != "" {
		file, err := os.Open(*checkFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening check file %s: %v\n", *checkFile, err)
			os.Exit(1)
		}
		checked, loaded, err := loadCheckFile(file, *checkFile, cfg)
		file.Close() //nolint:errcheck,gosec // G104: read-only file
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading check file %s: %v\n", *checkFile, err)
			os.Exit(1)
		}
		ctx.detector.LoadFromDetector(checked)

		if cfg.Verbosity > 0 {
			fmt.Fprintf(cfg.LogFile, "Loaded %s games from check file\n", humanize.Comma(int64(loaded)))
		}
	}

	if cfg.Duplicate.DatabaseDir == "" {
		return nil
	}
	db, err := store.Open(cfg.Duplicate.DatabaseDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	ctx.detector.SetBackend(db)
	ctx.store = db

	if cfg.Verbosity > 0 {
		if n, err := db.Count(); err == nil {
			fmt.Fprintf(cfg.LogFile, "Duplicate index holds %s games\n", humanize.Comma(int64(n)))
		}
	}
	return db
}

// processAllInputs processes all input files or stdin.
func processAllInputs(ctx *ProcessingContext, args []string) error {
	if len(args) == 0 {
		return ctx.processInput(os.Stdin, "stdin")
	}

	for _, filename := range args {
		file, err := os.Open(filename) //nolint:gosec // G304: CLI tool opens user-specified files
		if err != nil {
			fmt.Fprintf(ctx.cfg.LogFile, "Error opening file %s: %v\n", filename, err)
			continue
		}

		err = ctx.processInput(file, filename)
		file.Close() //nolint:errcheck,gosec // G104: read-only file
		if err != nil {
			return err
		}
	}
	return nil
}

// reportStatistics prints the final statistics.
func reportStatistics(w io.Writer, st Statistics, duplicates bool) {
	games := humanize.Comma(int64(st.Games))
	out := humanize.Comma(int64(st.Output))
	if duplicates {
		fmt.Fprintf(w, "%s game(s) output, %s duplicate(s), %s error(s) out of %s.\n",
			out, humanize.Comma(int64(st.Duplicates)), humanize.Comma(int64(st.Errors)), games)
		return
	}
	fmt.Fprintf(w, "%s game(s) output, %s error(s) out of %s.\n",
		out, humanize.Comma(int64(st.Errors)), games)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chesscore [options] [input-files...]\n\n")
	fmt.Fprintf(os.Stderr, "Replays chess games in PGN format and writes them back in canonical form.\n")
	fmt.Fprintf(os.Stderr, "With -perft, -moves or -ascii it reports on a single position instead.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}
