package engine_test

import (
	"testing"

	"github.com/lgbarn/chesscore/internal/engine"
	"github.com/lgbarn/chesscore/internal/testutil"
)

func TestPerftStartingPosition(t *testing.T) {
	pos := testutil.MustPosition(t, engine.InitialFEN)

	tests := []struct {
		depth    int
		expected int
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
		{4, 197281},
		// {5, 4865609},
	}

	for _, tc := range tests {
		if got := pos.Perft(tc.depth); got != tc.expected {
			t.Errorf("Perft(%d) = %d, want %d", tc.depth, got, tc.expected)
		}
	}
	testutil.AssertEqual(t, pos.FEN(false), engine.InitialFEN, "perft must leave the position untouched")
}

func TestPerftKnownPositions(t *testing.T) {
	tests := []struct {
		name     string
		fen      string
		expected []int
	}{
		{"kiwipete", testutil.KiwipeteFEN, []int{48, 2039, 97862}},
		{"rook endgame", testutil.Perft3FEN, []int{14, 191, 2812, 43238}},
		{"promotions", testutil.Perft4FEN, []int{6, 264, 9467}},
		{"discovered checks", testutil.Perft5FEN, []int{44, 1486, 62379}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			pos := testutil.MustPosition(t, tt.fen)
			for i, want := range tt.expected {
				depth := i + 1
				if got := pos.Perft(depth); got != want {
					t.Errorf("Perft(%d) = %d, want %d", depth, got, want)
				}
			}
		})
	}
}

func TestPerftZeroDepth(t *testing.T) {
	pos := testutil.MustPosition(t, engine.InitialFEN)
	testutil.AssertEqual(t, pos.Perft(0), 1)
}
