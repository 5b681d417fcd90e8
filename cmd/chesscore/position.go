// position.go - Commands that inspect a single position
package main

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"

	"github.com/lgbarn/chesscore"
	"github.com/lgbarn/chesscore/internal/config"
)

// hasPositionCommand reports whether the flags ask for a position command
// rather than PGN processing.
func hasPositionCommand(cfg *config.Config) bool {
	return cfg.PerftDepth > 0 || cfg.ListMoves || cfg.ShowBoard
}

// runPositionCommands prints the diagram, move list and perft count of the
// start position, in that order.
func runPositionCommands(ctx context.Context, cfg *config.Config, w io.Writer) error {
	var opts []chesscore.Option
	if cfg.StartFEN != "" {
		opts = append(opts, chesscore.WithFEN(cfg.StartFEN))
	}
	game, err := chesscore.New(opts...)
	if err != nil {
		return err
	}

	if cfg.ShowBoard {
		fmt.Fprintln(w, game.ASCII())
	}
	if cfg.ListMoves {
		fmt.Fprintln(w, strings.Join(game.Moves(chesscore.MovesOptions{}), " "))
	}
	if cfg.PerftDepth <= 0 {
		return nil
	}

	if !cfg.Divide {
		nodes := game.Perft(cfg.PerftDepth)
		fmt.Fprintf(w, "perft(%d) = %s\n", cfg.PerftDepth, humanize.Comma(int64(nodes)))
		return nil
	}

	counts, err := divideCounts(ctx, game, cfg.PerftDepth, workerCount(cfg))
	if err != nil {
		return err
	}
	total := 0
	for _, c := range counts {
		fmt.Fprintf(w, "%s: %d\n", c.san, c.nodes)
		total += c.nodes
	}
	fmt.Fprintf(w, "\nMoves: %d\nNodes: %s\n", len(counts), humanize.Comma(int64(total)))
	return nil
}

// rootCount is the perft count below one root move.
type rootCount struct {
	san   string
	nodes int
}

// divideCounts runs perft(depth-1) below every root move in parallel. Each
// goroutine works on its own game built from the position after the move.
func divideCounts(ctx context.Context, game *chesscore.Game, depth, numWorkers int) ([]rootCount, error) {
	moves := game.VerboseMoves(chesscore.MovesOptions{})
	counts := make([]rootCount, len(moves))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(numWorkers)
	for i, m := range moves {
		i, m := i, m
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			child, err := chesscore.New(chesscore.WithFEN(m.After))
			if err != nil {
				return fmt.Errorf("position after %s: %w", m.SAN, err)
			}
			counts[i] = rootCount{san: m.SAN, nodes: child.Perft(depth - 1)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return counts, nil
}

// workerCount returns the configured worker count, or one per CPU.
func workerCount(cfg *config.Config) int {
	if cfg.Workers > 0 {
		return cfg.Workers
	}
	return runtime.NumCPU()
}
