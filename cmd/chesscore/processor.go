// processor.go - Game loading, filtering and output
package main

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/lgbarn/chesscore"
	"github.com/lgbarn/chesscore/internal/config"
	"github.com/lgbarn/chesscore/internal/errors"
	"github.com/lgbarn/chesscore/internal/hashing"
	"github.com/lgbarn/chesscore/internal/output"
	"github.com/lgbarn/chesscore/internal/parser"
	"github.com/lgbarn/chesscore/internal/store"
	"github.com/lgbarn/chesscore/internal/worker"
)

// ProcessingContext holds all processing state
type ProcessingContext struct {
	cfg       *config.Config
	detector  *hashing.ThreadSafeDuplicateDetector
	store     *store.Store
	writer    output.GameWriter
	dupWriter output.GameWriter
	stats     Statistics
}

// Statistics counts what happened to the games read.
type Statistics struct {
	Games      int
	Output     int
	Duplicates int
	Filtered   int
	Errors     int
}

// newProcessingContext creates the game writers for cfg. The caller attaches
// a detector and store when duplicates are tracked.
func newProcessingContext(cfg *config.Config) *ProcessingContext {
	ctx := &ProcessingContext{
		cfg:    cfg,
		writer: output.NewGameWriter(cfg.OutputFile, cfg),
	}
	if cfg.Duplicate.DuplicateFile != nil {
		ctx.dupWriter = output.NewGameWriter(cfg.Duplicate.DuplicateFile, cfg)
	}
	return ctx
}

// Close flushes the writers. JSON output is written here.
func (ctx *ProcessingContext) Close() error {
	var firstErr error
	for _, w := range []output.GameWriter{ctx.writer, ctx.dupWriter} {
		if w == nil {
			continue
		}
		if err := w.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// decodeInput wraps r so that it yields UTF-8.
func decodeInput(r io.Reader, enc config.Encoding) (io.Reader, error) {
	switch enc {
	case config.EncodingUTF8:
		return r, nil
	case config.EncodingLatin1:
		return transform.NewReader(r, charmap.ISO8859_1.NewDecoder()), nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if utf8.Valid(data) {
		return bytes.NewReader(data), nil
	}
	return transform.NewReader(bytes.NewReader(data), charmap.ISO8859_1.NewDecoder()), nil
}

// loadGame replays one game's text.
func loadGame(job worker.Job, strict bool) worker.Result {
	result := worker.Result{Index: job.Index, Source: job.Source}
	game, err := chesscore.New()
	if err != nil {
		result.Err = err
		return result
	}
	if err := game.LoadPGN(job.Text, chesscore.LoadPGNOptions{Strict: strict}); err != nil {
		result.Err = err
		return result
	}
	result.Game = game
	return result
}

// loadGames replays every game, in parallel when there are enough of them.
// Results come back in input order.
func loadGames(raws []*parser.RawGame, name string, cfg *config.Config) []worker.Result {
	jobs := make([]worker.Job, len(raws))
	for i, raw := range raws {
		jobs[i] = worker.Job{Index: i, Source: name, Text: raw.Text}
	}

	numWorkers := workerCount(cfg)
	if numWorkers <= 1 || len(jobs) <= 2 {
		results := make([]worker.Result, len(jobs))
		for i, job := range jobs {
			results[i] = loadGame(job, cfg.StrictMoves)
		}
		return results
	}

	pool := worker.New(func(job worker.Job) worker.Result {
		return loadGame(job, cfg.StrictMoves)
	}, worker.WithWorkers(numWorkers), worker.WithBuffer(min(len(jobs), 100)))
	return pool.LoadAll(jobs)
}

// processInput reads, replays and writes every game in r.
func (ctx *ProcessingContext) processInput(r io.Reader, name string) error {
	cfg := ctx.cfg
	cfg.CurrentInputFile = name

	decoded, err := decodeInput(r, cfg.Encoding)
	if err != nil {
		return errors.Wrapf(err, "reading %s", name)
	}
	raws := parser.All(decoded)

	for i, result := range loadGames(raws, name, cfg) {
		ctx.stats.Games++
		if result.Err != nil {
			ctx.reportError(&errors.GameError{
				Err:     result.Err,
				GameNum: i + 1,
				File:    name,
				Line:    raws[i].Line,
			})
			continue
		}
		if err := ctx.handleGame(result.Game); err != nil {
			return err
		}
	}
	return nil
}

// reportError logs a game that could not be loaded.
func (ctx *ProcessingContext) reportError(gameErr *errors.GameError) {
	ctx.stats.Errors++
	var pgnErr *errors.PGNError
	if errors.As(gameErr.Err, &pgnErr) {
		gameErr.PlyNum = pgnErr.Ply
	}
	if ctx.cfg.Verbosity > 0 {
		fmt.Fprintf(ctx.cfg.LogFile, "%v\n", gameErr)
	}
}

// handleGame filters, annotates, deduplicates and writes one loaded game.
func (ctx *ProcessingContext) handleGame(game *chesscore.Game) error {
	cfg := ctx.cfg
	if !matchesFilters(game, cfg.Filter) {
		ctx.stats.Filtered++
		return nil
	}

	hash, err := strconv.ParseUint(game.Hash(), 16, 64)
	if err != nil {
		return err
	}
	annotateGame(game, cfg.Annotation)
	rec := game.Record()
	if cfg.Annotation.AddFENComments {
		appendFENComments(rec)
	}

	if ctx.detector != nil {
		sig := hashing.NewSignature(hash, game.History())
		duplicate, err := ctx.detector.CheckAndAdd(sig)
		if err != nil {
			return errors.Wrap(err, "duplicate index")
		}
		if duplicate {
			ctx.stats.Duplicates++
			if ctx.dupWriter != nil {
				return ctx.dupWriter.WriteGame(rec)
			}
			return nil
		}
		if ctx.store != nil {
			if err := ctx.store.Record(hash, rec); err != nil {
				return errors.Wrap(err, "duplicate index")
			}
		}
	}

	ctx.stats.Output++
	return ctx.writer.WriteGame(rec)
}

// matchesFilters applies the move bounds and final position conditions.
// With several position conditions set, any one of them suffices.
func matchesFilters(game *chesscore.Game, f *config.FilterConfig) bool {
	if f.CheckMoveBounds {
		moves := uint((len(game.History()) + 1) / 2)
		if moves < f.LowerMoveBound || moves > f.UpperMoveBound {
			return false
		}
	}

	if !f.MatchCheckmate && !f.MatchStalemate && !f.MatchDraw {
		return true
	}
	return (f.MatchCheckmate && game.IsCheckmate()) ||
		(f.MatchStalemate && game.IsStalemate()) ||
		(f.MatchDraw && game.IsDraw())
}

// annotateGame adds the configured tags.
func annotateGame(game *chesscore.Game, a *config.AnnotationConfig) {
	if a.AddPlyCount {
		game.SetHeader("PlyCount", strconv.Itoa(len(game.History())))
	}
	if a.AddHashTag {
		game.SetHeader("HashCode", game.Hash())
	}
}

// appendFENComments appends the FEN reached to every move's comment.
func appendFENComments(rec *output.GameRecord) {
	for i := range rec.Moves {
		m := &rec.Moves[i]
		comment := m.FEN
		if m.Comment != nil && *m.Comment != "" {
			comment = *m.Comment + " " + m.FEN
		}
		m.Comment = &comment
	}
}

// loadCheckFile records the games of a check file as already seen.
func loadCheckFile(r io.Reader, name string, cfg *config.Config) (*hashing.DuplicateDetector, int, error) {
	decoded, err := decodeInput(r, cfg.Encoding)
	if err != nil {
		return nil, 0, errors.Wrapf(err, "reading %s", name)
	}

	detector := hashing.NewDuplicateDetector(cfg.Duplicate.ExactMatch, cfg.Duplicate.MaxCapacity)
	loaded := 0
	for _, result := range loadGames(parser.All(decoded), name, cfg) {
		if result.Err != nil {
			continue
		}
		hash, err := strconv.ParseUint(result.Game.Hash(), 16, 64)
		if err != nil {
			return nil, 0, err
		}
		if _, err := detector.CheckAndAdd(hashing.NewSignature(hash, result.Game.History())); err != nil {
			return nil, 0, err
		}
		loaded++
	}
	return detector, loaded, nil
}
