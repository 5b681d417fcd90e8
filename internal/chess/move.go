package chess

import "strings"

// MoveFlags describes the kind of a move. Exactly one of FlagNormal,
// FlagCapture, FlagBigPawn and FlagEPCapture is set for ordinary moves;
// FlagPromotion combines with FlagNormal or FlagCapture.
type MoveFlags uint16

const (
	FlagNormal MoveFlags = 1 << iota
	FlagCapture
	FlagBigPawn
	FlagEPCapture
	FlagPromotion
	FlagKingsideCastle
	FlagQueensideCastle
	FlagNullMove
)

var flagLetters = []struct {
	flag   MoveFlags
	letter byte
}{
	{FlagNormal, 'n'},
	{FlagCapture, 'c'},
	{FlagBigPawn, 'b'},
	{FlagEPCapture, 'e'},
	{FlagPromotion, 'p'},
	{FlagKingsideCastle, 'k'},
	{FlagQueensideCastle, 'q'},
	{FlagNullMove, '-'},
}

// String returns the flag letters in canonical order, e.g. "cp".
func (f MoveFlags) String() string {
	var sb strings.Builder
	for _, fl := range flagLetters {
		if f&fl.flag != 0 {
			sb.WriteByte(fl.letter)
		}
	}
	return sb.String()
}

// Has reports whether any of the given flags are set.
func (f MoveFlags) Has(flags MoveFlags) bool {
	return f&flags != 0
}

// Move is the internal move representation used by the engine.
// Captured and Promotion are NoPieceType when absent.
type Move struct {
	Colour    Colour
	From      Square
	To        Square
	Piece     PieceType
	Captured  PieceType
	Promotion PieceType
	Flags     MoveFlags
}

// NewNullMove returns a null move for the given side.
func NewNullMove(c Colour) Move {
	return Move{
		Colour: c,
		From:   NoSquare,
		To:     NoSquare,
		Piece:  King,
		Flags:  FlagNullMove,
	}
}

// IsCapture returns true if this move captures a piece (including en passant).
func (m Move) IsCapture() bool {
	return m.Flags.Has(FlagCapture | FlagEPCapture)
}

// IsPromotion returns true if this move is a pawn promotion.
func (m Move) IsPromotion() bool {
	return m.Flags.Has(FlagPromotion)
}

// IsCastle returns true if this move is a castling move.
func (m Move) IsCastle() bool {
	return m.Flags.Has(FlagKingsideCastle | FlagQueensideCastle)
}

// IsNull returns true if this is a null move.
func (m Move) IsNull() bool {
	return m.Flags.Has(FlagNullMove)
}

// LAN returns the long algebraic form of the move, e.g. "e7e8q".
func (m Move) LAN() string {
	if m.IsNull() {
		return NullMoveString
	}
	s := m.From.String() + m.To.String()
	if m.Promotion != NoPieceType {
		s += string(m.Promotion.Symbol())
	}
	return s
}
