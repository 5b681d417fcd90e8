package chesscore

import (
	"strconv"

	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/engine"
)

// Game is a position with its history, headers and comments.
type Game struct {
	pos       *engine.Position
	tags      *chess.Tags
	comments  map[string]string // FEN -> comment
	positions map[uint64]int    // hash -> occurrences along the history
}

// Option configures New.
type Option func(*newOptions)

type newOptions struct {
	fen            string
	skipValidation bool
}

// WithFEN starts the game from fen instead of the standard position.
func WithFEN(fen string) Option {
	return func(o *newOptions) { o.fen = fen }
}

// WithSkipValidation loads the starting FEN without validating it. The
// caller is responsible for the FEN describing a usable position; a board
// without kings, for example, gives undefined results.
func WithSkipValidation() Option {
	return func(o *newOptions) { o.skipValidation = true }
}

// New returns a game at the standard starting position, or at the position
// given by WithFEN. An invalid FEN is reported as an *errors.FENError.
func New(opts ...Option) (*Game, error) {
	o := newOptions{fen: DefaultPosition}
	for _, opt := range opts {
		opt(&o)
	}
	g := &Game{pos: engine.NewPosition()}
	g.Clear(false)
	var loadOpts []LoadOption
	if o.skipValidation {
		loadOpts = append(loadOpts, SkipValidation())
	}
	if err := g.Load(o.fen, loadOpts...); err != nil {
		return nil, err
	}
	return g, nil
}

// LoadOption configures Load.
type LoadOption func(*loadOptions)

type loadOptions struct {
	skipValidation  bool
	preserveHeaders bool
}

// SkipValidation disables FEN validation. See WithSkipValidation.
func SkipValidation() LoadOption {
	return func(o *loadOptions) { o.skipValidation = true }
}

// PreserveHeaders keeps the current header tags across the load.
func PreserveHeaders() LoadOption {
	return func(o *loadOptions) { o.preserveHeaders = true }
}

// Load replaces the game with the position described by fen. Trailing FEN
// fields may be omitted. On error the game is left unchanged.
func (g *Game) Load(fen string, opts ...LoadOption) error {
	var o loadOptions
	for _, opt := range opts {
		opt(&o)
	}
	pos := engine.NewPosition()
	if err := pos.Load(fen, o.skipValidation); err != nil {
		return err
	}
	g.Clear(o.preserveHeaders)
	g.pos = pos
	g.updateSetup()
	g.positions[pos.Hash()]++
	return nil
}

// Clear empties the board and drops history and comments. Header tags are
// reset to the template unless preserveHeaders is set.
func (g *Game) Clear(preserveHeaders bool) {
	g.pos.Clear()
	if !preserveHeaders || g.tags == nil {
		g.tags = chess.NewTags()
	}
	g.comments = make(map[string]string)
	g.positions = make(map[uint64]int)
}

// Reset returns to the standard starting position with fresh headers.
func (g *Game) Reset() {
	_ = g.Load(DefaultPosition)
}

// updateSetup keeps the SetUp and FEN headers in step with the starting
// position while no move has been played.
func (g *Game) updateSetup() {
	if g.pos.Ply() > 0 {
		return
	}
	fen := g.pos.FEN(false)
	if fen != DefaultPosition {
		g.tags.Set(chess.SetUpTag, "1")
		g.tags.Set(chess.FENTag, fen)
	} else {
		g.tags.Unset(chess.SetUpTag)
		g.tags.Unset(chess.FENTag)
	}
}

// FEN returns the current position. The en-passant square is only written
// when a legal en-passant capture exists.
func (g *Game) FEN() string {
	return g.pos.FEN(false)
}

// FENWithEnPassant returns the current position, writing the stored
// en-passant target whenever one exists if force is set.
func (g *Game) FENWithEnPassant(force bool) string {
	return g.pos.FEN(force)
}

// Get returns the piece on the named square.
func (g *Game) Get(square string) (Piece, bool) {
	sq, ok := chess.ParseSquare(square)
	if !ok {
		return chess.NoPiece, false
	}
	piece := g.pos.Get(sq)
	return piece, !piece.IsEmpty()
}

// Put places piece on the named square. It fails for an unknown square or
// piece, or a second king of one colour.
func (g *Game) Put(piece Piece, square string) bool {
	sq, ok := chess.ParseSquare(square)
	if !ok || !g.pos.Put(piece, sq) {
		return false
	}
	g.updateSetup()
	return true
}

// Remove takes the piece off the named square.
func (g *Game) Remove(square string) (Piece, bool) {
	sq, ok := chess.ParseSquare(square)
	if !ok {
		return chess.NoPiece, false
	}
	piece, ok := g.pos.Remove(sq)
	if ok {
		g.updateSetup()
	}
	return piece, ok
}

// Turn returns the side to move.
func (g *Game) Turn() Colour {
	return g.pos.Turn()
}

// SetTurn passes the move to c with a null move. It returns false when c
// is already to move or the side to move is in check.
func (g *Game) SetTurn(c Colour) bool {
	if g.pos.Turn() == c {
		return false
	}
	_, err := g.Move(chess.NullMoveString, false)
	return err == nil
}

// MoveNumber returns the full-move number.
func (g *Game) MoveNumber() int {
	return g.pos.MoveNumber()
}

// InCheck reports whether the side to move is in check.
func (g *Game) InCheck() bool {
	return g.pos.InCheck()
}

// IsCheckmate reports whether the side to move is checkmated.
func (g *Game) IsCheckmate() bool {
	return g.pos.IsCheckmate()
}

// IsStalemate reports whether the side to move has no legal move and is
// not in check.
func (g *Game) IsStalemate() bool {
	return g.pos.IsStalemate()
}

// IsInsufficientMaterial reports whether neither side can mate.
func (g *Game) IsInsufficientMaterial() bool {
	return g.pos.IsInsufficientMaterial()
}

// IsThreefoldRepetition reports whether any position of the game has
// occurred three times.
func (g *Game) IsThreefoldRepetition() bool {
	for _, n := range g.positions {
		if n >= 3 {
			return true
		}
	}
	return false
}

// IsDrawByFiftyMoves reports whether 100 half-moves have passed without a
// capture or pawn move.
func (g *Game) IsDrawByFiftyMoves() bool {
	return g.pos.IsDrawByFiftyMoves()
}

// IsDraw reports any drawn state.
func (g *Game) IsDraw() bool {
	return g.IsDrawByFiftyMoves() ||
		g.IsStalemate() ||
		g.IsInsufficientMaterial() ||
		g.IsThreefoldRepetition()
}

// IsGameOver reports checkmate or a draw. It is derived from the current
// state on every call; moves may still be played after the game is over.
func (g *Game) IsGameOver() bool {
	return g.IsCheckmate() || g.IsDraw()
}

// SquareColour returns "light" or "dark" for the named square.
func (g *Game) SquareColour(square string) (string, bool) {
	sq, ok := chess.ParseSquare(square)
	if !ok {
		return "", false
	}
	return sq.SquareColour(), true
}

// CastlingRights returns the castling rights of c.
func (g *Game) CastlingRights(c Colour) (kingside, queenside bool) {
	rights := g.pos.Castling(c)
	return rights&chess.KingsideCastle != 0, rights&chess.QueensideCastle != 0
}

// SetCastlingRights sets the castling rights of c. Rights whose king or
// rook is away from home are not granted; the result reports whether the
// requested rights hold afterwards.
func (g *Game) SetCastlingRights(c Colour, kingside, queenside bool) bool {
	var rights uint8
	if kingside {
		rights |= chess.KingsideCastle
	}
	if queenside {
		rights |= chess.QueensideCastle
	}
	g.pos.SetCastling(c, rights)
	g.updateSetup()
	return g.pos.Castling(c) == rights
}

// IsAttacked reports whether a piece of colour by attacks the named square.
func (g *Game) IsAttacked(square string, by Colour) bool {
	sq, ok := chess.ParseSquare(square)
	return ok && g.pos.Attacked(by, sq)
}

// Attackers returns the squares of the by pieces attacking square.
func (g *Game) Attackers(square string, by Colour) []string {
	sq, ok := chess.ParseSquare(square)
	if !ok {
		return nil
	}
	return squareNames(g.pos.Attackers(by, sq))
}

// FindPiece returns the squares holding piece in board order.
func (g *Game) FindPiece(piece Piece) []string {
	return squareNames(g.pos.FindPiece(piece))
}

func squareNames(squares []chess.Square) []string {
	names := make([]string, len(squares))
	for i, sq := range squares {
		names[i] = sq.String()
	}
	return names
}

// Perft counts the leaf nodes of the legal move tree to depth.
func (g *Game) Perft(depth int) int {
	return g.pos.Perft(depth)
}

// Hash returns the position hash as lower-case hex.
func (g *Game) Hash() string {
	return strconv.FormatUint(g.pos.Hash(), 16)
}
