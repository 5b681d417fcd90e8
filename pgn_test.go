package chesscore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgbarn/chesscore"
	chesserrors "github.com/lgbarn/chesscore/internal/errors"
)

const rosterHeaders = "[Event \"?\"]\n[Site \"?\"]\n[Date \"????.??.??\"]\n[Round \"?\"]\n"

const scholarsMate = rosterHeaders +
	"[White \"Plunky\"]\n[Black \"Plinkity\"]\n[Result \"1-0\"]\n\n" +
	"1. e4 e5 2. Qh5 Nc6 3. Bc4 Nf6 4. Qxf7# 1-0"

func scholarsGame(t *testing.T) *chesscore.Game {
	t.Helper()
	g := newGame(t)
	g.Header("White", "Plunky", "Black", "Plinkity")
	play(t, g, "e4", "e5", "Qh5", "Nc6", "Bc4", "Nf6", "Qxf7#")
	g.SetHeader("Result", "1-0")
	return g
}

func TestPGN(t *testing.T) {
	t.Run("empty game", func(t *testing.T) {
		g := newGame(t)
		assert.Equal(t, rosterHeaders+"[White \"?\"]\n[Black \"?\"]\n[Result \"*\"]\n*", g.PGN(chesscore.PGNOptions{}))
	})

	t.Run("scholar's mate", func(t *testing.T) {
		assert.Equal(t, scholarsMate, scholarsGame(t).PGN(chesscore.PGNOptions{}))
	})

	t.Run("wrapped", func(t *testing.T) {
		want := rosterHeaders +
			"[White \"Plunky\"]\n[Black \"Plinkity\"]\n[Result \"1-0\"]\n\n" +
			"1. e4 e5 2. Qh5 Nc6\n3. Bc4 Nf6 4. Qxf7#\n1-0"
		assert.Equal(t, want, scholarsGame(t).PGN(chesscore.PGNOptions{MaxWidth: 20}))
	})

	t.Run("comments", func(t *testing.T) {
		g := newGame(t)
		g.SetComment("start")
		play(t, g, "e4")
		g.SetComment("good {move}")
		want := rosterHeaders + "[White \"?\"]\n[Black \"?\"]\n[Result \"*\"]\n\n" +
			"{start} 1. e4 {good [move]} *"
		assert.Equal(t, want, g.PGN(chesscore.PGNOptions{}))
	})

	t.Run("black to move first", func(t *testing.T) {
		fen := "4k3/8/8/8/8/8/4P3/4K3 b - - 0 10"
		g := newGame(t, chesscore.WithFEN(fen))
		play(t, g, "Kd7", "e4")
		want := rosterHeaders + "[White \"?\"]\n[Black \"?\"]\n[Result \"*\"]\n" +
			"[SetUp \"1\"]\n[FEN \"" + fen + "\"]\n\n" +
			"10. ... Kd7 11. e4 *"
		assert.Equal(t, want, g.PGN(chesscore.PGNOptions{}))
	})
}

func TestLoadPGN(t *testing.T) {
	g := newGame(t)
	require.NoError(t, g.LoadPGN(scholarsMate, chesscore.LoadPGNOptions{}))

	assert.Equal(t, []string{"e4", "e5", "Qh5", "Nc6", "Bc4", "Nf6", "Qxf7#"}, g.History())
	assert.True(t, g.IsCheckmate())
	assert.Equal(t, "Plunky", g.Headers()["White"])
	assert.Equal(t, scholarsMate, g.PGN(chesscore.PGNOptions{}))
}

func TestLoadPGNIdempotent(t *testing.T) {
	g := newGame(t, chesscore.WithFEN("r3k2r/pp3ppp/8/8/8/8/PP3PPP/R3K2R w KQkq - 0 15"))
	g.Header("Event", `Club "Open"`, "Annotator", "Someone")
	g.SetComment("a quiet position")
	play(t, g, "O-O", "O-O-O", "Rad1")
	g.SetComment("doubling soon")
	play(t, g, "Rxd1", "Rxd1", "a5", "--", "a4")

	for _, opts := range []chesscore.PGNOptions{{}, {MaxWidth: 30}, {MaxWidth: 10, Newline: "\r\n"}} {
		text := g.PGN(opts)
		loaded := newGame(t)
		require.NoError(t, loaded.LoadPGN(text, chesscore.LoadPGNOptions{}), text)
		assert.Equal(t, text, loaded.PGN(opts))
		assert.Equal(t, g.FEN(), loaded.FEN())
		assert.Equal(t, g.History(), loaded.History())
	}
}

func TestLoadPGNWrappedCommentAfterMove(t *testing.T) {
	g := newGame(t)
	play(t, g, "e4")
	g.SetComment("king pawn opening here")
	play(t, g, "e5", "Nf3")
	g.SetComment("develops")
	play(t, g, "Nc6")

	opts := chesscore.PGNOptions{MaxWidth: 20}
	text := g.PGN(opts)
	assert.Contains(t, text, "1. e4 {king pawn\nopening here} e5 2.\nNf3 {develops} Nc6 *")

	loaded := newGame(t)
	require.NoError(t, loaded.LoadPGN(text, chesscore.LoadPGNOptions{}), text)
	assert.Equal(t, text, loaded.PGN(opts))
	assert.Equal(t, g.History(), loaded.History())
	assert.Equal(t, g.Comments(), loaded.Comments())
}

func TestLoadPGNBlackFirst(t *testing.T) {
	g := newGame(t, chesscore.WithFEN("4k3/8/8/8/8/8/4P3/4K3 b - - 0 10"))
	play(t, g, "Kd7", "e4")
	text := g.PGN(chesscore.PGNOptions{})

	loaded := newGame(t)
	require.NoError(t, loaded.LoadPGN(text, chesscore.LoadPGNOptions{}), text)
	assert.Equal(t, text, loaded.PGN(chesscore.PGNOptions{}))
	assert.Equal(t, g.FEN(), loaded.FEN())
	assert.Equal(t, []string{"Kd7", "e4"}, loaded.History())
}

func TestLoadPGNResult(t *testing.T) {
	g := newGame(t)
	require.NoError(t, g.LoadPGN("1. e4 e5 1-0", chesscore.LoadPGNOptions{}))
	assert.Equal(t, "1-0", g.Headers()["Result"])

	require.NoError(t, g.LoadPGN("1. e4 e5", chesscore.LoadPGNOptions{}))
	assert.Equal(t, "*", g.Headers()["Result"])
}

func TestLoadPGNInvalidMove(t *testing.T) {
	g := newGame(t)
	play(t, g, "e4")

	err := g.LoadPGN("1. e4 e4 *", chesscore.LoadPGNOptions{})
	require.EqualError(t, err, "Invalid move in PGN: e4")
	require.ErrorIs(t, err, chesserrors.ErrInvalidPGN)
	var pgnErr *chesserrors.PGNError
	require.ErrorAs(t, err, &pgnErr)
	assert.Equal(t, 2, pgnErr.Ply)

	assert.Equal(t, []string{"e4"}, g.History(), "failed load must keep the game")
	assert.Equal(t, afterE4, g.FEN())
}

func TestLoadPGNStrict(t *testing.T) {
	setupOnly := "[SetUp \"1\"]\n\n1. e4 *"
	g := newGame(t)
	err := g.LoadPGN(setupOnly, chesscore.LoadPGNOptions{Strict: true})
	require.ErrorIs(t, err, chesserrors.ErrMissingTag)
	require.EqualError(t, err, "Invalid PGN: FEN tag must be supplied with SetUp tag")
	require.NoError(t, g.LoadPGN(setupOnly, chesscore.LoadPGNOptions{}))
	assert.Equal(t, []string{"e4"}, g.History())

	fenOnly := "[FEN \"4k3/8/8/8/8/8/4P3/4K3 w - - 0 1\"]\n\n1. e4 *"
	require.NoError(t, g.LoadPGN(fenOnly, chesscore.LoadPGNOptions{Strict: true}))
	assert.Equal(t, afterE4, g.FEN(), "strict mode ignores FEN without SetUp")
	require.NoError(t, g.LoadPGN(fenOnly, chesscore.LoadPGNOptions{}))
	assert.Equal(t, "4k3/8/8/8/4P3/8/8/4K3 b - - 0 1", g.FEN())

	require.Error(t, g.LoadPGN("1. e2e4 *", chesscore.LoadPGNOptions{Strict: true}))
	require.NoError(t, g.LoadPGN("1. e2e4 *", chesscore.LoadPGNOptions{}))
	assert.Equal(t, []string{"e4"}, g.History())
}

func TestLoadPGNSyntaxError(t *testing.T) {
	g := newGame(t)
	err := g.LoadPGN("1. e4 )", chesscore.LoadPGNOptions{})
	require.ErrorIs(t, err, chesserrors.ErrParseFailure)
	var parseErr *chesserrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 1, parseErr.Line)
	assert.Equal(t, chesscore.DefaultPosition, g.FEN())
}

func TestLoadPGNNewlineChar(t *testing.T) {
	g := newGame(t)
	text := "[White \"A\"]|[Black \"B\"]||1. e4 *"
	require.NoError(t, g.LoadPGN(text, chesscore.LoadPGNOptions{NewlineChar: `\|`}))
	assert.Equal(t, "A", g.Headers()["White"])
	assert.Equal(t, "B", g.Headers()["Black"])
	assert.Equal(t, []string{"e4"}, g.History())

	require.Error(t, g.LoadPGN(text, chesscore.LoadPGNOptions{NewlineChar: "("}))
}

func TestLoadPGNCommentsAndVariations(t *testing.T) {
	g := newGame(t)
	require.NoError(t, g.LoadPGN("{start} 1. e4 {king pawn} (1. d4 d5) e5 *", chesscore.LoadPGNOptions{}))

	assert.Equal(t, []string{"e4", "e5"}, g.History())
	assert.Equal(t, []chesscore.PositionComment{
		{FEN: chesscore.DefaultPosition, Comment: "start"},
		{FEN: afterE4, Comment: "king pawn"},
	}, g.Comments())
}

func TestLoadPGNNullMove(t *testing.T) {
	g := newGame(t)
	require.NoError(t, g.LoadPGN("1. e4 -- 2. d4 *", chesscore.LoadPGNOptions{}))
	assert.Equal(t, []string{"e4", "--", "d4"}, g.History())
	assert.Contains(t, g.PGN(chesscore.PGNOptions{}), "1. e4 -- 2. d4 *")
}
