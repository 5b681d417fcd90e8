/*
Package chesscore is a chess rules library: legal move generation, SAN and
FEN conversion, draw and mate detection, and PGN reading and writing.

A Game holds one position together with its move history, header tags and
position comments:

	game, _ := chesscore.New()
	game.Move("e4", false)
	game.Move("e5", false)
	fmt.Println(game.FEN())
	fmt.Println(game.PGN(chesscore.PGNOptions{MaxWidth: 80}))

A Game is not safe for concurrent use. Independent games may be used from
different goroutines.
*/
package chesscore

import (
	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/engine"
)

// Colour is a side.
type Colour = chess.Colour

// PieceType is a piece kind without colour.
type PieceType = chess.PieceType

// Piece is a coloured piece.
type Piece = chess.Piece

// TagPair is a single PGN header.
type TagPair = chess.TagPair

const (
	White = chess.White
	Black = chess.Black
)

const (
	NoPieceType = chess.NoPieceType
	Pawn        = chess.Pawn
	Knight      = chess.Knight
	Bishop      = chess.Bishop
	Rook        = chess.Rook
	Queen       = chess.Queen
	King        = chess.King
)

// DefaultPosition is the FEN of the standard starting position.
const DefaultPosition = engine.InitialFEN

// Move is a played or playable move with its derived notations.
type Move struct {
	Colour    Colour
	From      string
	To        string
	Piece     PieceType
	Captured  PieceType // NoPieceType when nothing is captured
	Promotion PieceType // NoPieceType unless the move promotes
	Flags     string    // flag letters: n c b e p k q and - for a null move
	SAN       string
	LAN       string
	Before    string // FEN before the move
	After     string // FEN after the move

	flags chess.MoveFlags
}

// IsCapture reports whether the move captures, en passant included.
func (m *Move) IsCapture() bool { return m.flags.Has(chess.FlagCapture | chess.FlagEPCapture) }

// IsPromotion reports whether the move promotes a pawn.
func (m *Move) IsPromotion() bool { return m.flags.Has(chess.FlagPromotion) }

// IsEnPassant reports whether the move is an en-passant capture.
func (m *Move) IsEnPassant() bool { return m.flags.Has(chess.FlagEPCapture) }

// IsKingsideCastle reports whether the move is O-O.
func (m *Move) IsKingsideCastle() bool { return m.flags.Has(chess.FlagKingsideCastle) }

// IsQueensideCastle reports whether the move is O-O-O.
func (m *Move) IsQueensideCastle() bool { return m.flags.Has(chess.FlagQueensideCastle) }

// IsBigPawn reports whether the move is a two-square pawn advance.
func (m *Move) IsBigPawn() bool { return m.flags.Has(chess.FlagBigPawn) }

// IsNullMove reports whether the move only passes the turn.
func (m *Move) IsNullMove() bool { return m.flags.Has(chess.FlagNullMove) }

func (m *Move) String() string { return m.SAN }

// newMove derives the public form of m, which must be legal in pos. pos is
// not modified.
func newMove(pos *engine.Position, m chess.Move) *Move {
	pm := &Move{
		Colour:    m.Colour,
		Piece:     m.Piece,
		Captured:  m.Captured,
		Promotion: m.Promotion,
		Flags:     m.Flags.String(),
		SAN:       pos.MoveToSAN(m, pos.LegalMoves()),
		LAN:       m.LAN(),
		Before:    pos.FEN(false),
		After:     pos.FENAfter(m),
		flags:     m.Flags,
	}
	if !m.IsNull() {
		pm.From = m.From.String()
		pm.To = m.To.String()
	}
	return pm
}

// BoardSquare is an occupied square in the grid returned by Board.
type BoardSquare struct {
	Square string
	Type   PieceType
	Colour Colour
}

// ParsePiece converts a FEN piece letter ("P", "n", ...) to a piece.
func ParsePiece(symbol string) (Piece, bool) {
	if len(symbol) != 1 {
		return chess.NoPiece, false
	}
	return chess.PieceFromSymbol(symbol[0])
}
