package testutil

import (
	"testing"

	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/engine"
	"github.com/lgbarn/chesscore/internal/parser"
)

// Well-known test positions.
const (
	KiwipeteFEN = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	Perft3FEN   = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	Perft4FEN   = "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"
	Perft5FEN   = "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8"
)

// MustPosition loads fen or aborts the test.
func MustPosition(t testing.TB, fen string) *engine.Position {
	t.Helper()
	pos, err := engine.NewPositionFromFEN(fen)
	if err != nil {
		t.Fatalf("failed to load FEN %q: %v", fen, err)
	}
	return pos
}

// MustPlay plays each SAN move on pos, aborting the test on the first one
// that is not legal. It returns the moves played.
func MustPlay(t testing.TB, pos *engine.Position, sans ...string) []chess.Move {
	t.Helper()
	played := make([]chess.Move, 0, len(sans))
	for _, san := range sans {
		m, ok := pos.MoveFromSAN(san, false)
		if !ok {
			t.Fatalf("move %q is not legal in %s", san, pos.FEN(false))
		}
		pos.MakeMove(m)
		played = append(played, m)
	}
	return played
}

// ParseTestGame parses a PGN string and returns the game, or nil if
// parsing fails. Use this for tests where parse failure is an acceptable
// outcome.
func ParseTestGame(pgn string) *parser.Game {
	game, err := parser.Parse(pgn)
	if err != nil {
		return nil
	}
	return game
}

// MustParseGame parses a PGN string and returns the game.
// It calls t.Fatal if parsing fails.
func MustParseGame(t testing.TB, pgn string) *parser.Game {
	t.Helper()
	game, err := parser.Parse(pgn)
	if err != nil {
		t.Fatalf("failed to parse test game: %v\n%s", err, pgn)
	}
	return game
}

// MainLine returns the SAN text of the main line of a parsed game.
func MainLine(game *parser.Game) []string {
	var moves []string
	for node := game.Root; len(node.Variations) > 0; {
		node = node.Variations[0]
		moves = append(moves, node.Move)
	}
	return moves
}
