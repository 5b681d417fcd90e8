// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Letter returns the FEN side-to-move letter for the colour.
func (c Colour) Letter() byte {
	if c == White {
		return 'w'
	}
	return 'b'
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// ParseColour converts a side-to-move letter ("w" or "b") to a colour.
func ParseColour(s string) (Colour, bool) {
	switch s {
	case "w":
		return White, true
	case "b":
		return Black, true
	}
	return White, false
}

// PieceType represents a chess piece type without colour.
type PieceType int

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceTypes
)

// PromotionTypes lists promotion targets in generation order.
var PromotionTypes = [...]PieceType{Queen, Rook, Bishop, Knight}

// String returns the string representation of a piece type.
func (p PieceType) String() string {
	names := []string{"none", "pawn", "knight", "bishop", "rook", "queen", "king"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "unknown"
}

// Symbol returns the lowercase letter for the piece type ('p', 'n', ...).
func (p PieceType) Symbol() byte {
	symbols := []byte{' ', 'p', 'n', 'b', 'r', 'q', 'k'}
	if p >= 0 && int(p) < len(symbols) {
		return symbols[p]
	}
	return '?'
}

// Letter returns the uppercase SAN letter for the piece type.
func (p PieceType) Letter() byte {
	return p.Symbol() - 'a' + 'A'
}

// ParsePieceType converts a piece letter of either case to a piece type.
func ParsePieceType(c byte) PieceType {
	switch c {
	case 'p', 'P':
		return Pawn
	case 'n', 'N':
		return Knight
	case 'b', 'B':
		return Bishop
	case 'r', 'R':
		return Rook
	case 'q', 'Q':
		return Queen
	case 'k', 'K':
		return King
	default:
		return NoPieceType
	}
}

// Piece is a coloured piece. The zero value is an empty square.
type Piece struct {
	Type   PieceType
	Colour Colour
}

// NoPiece is the empty square.
var NoPiece = Piece{}

// W creates a white piece.
func W(t PieceType) Piece {
	return Piece{Type: t, Colour: White}
}

// B creates a black piece.
func B(t PieceType) Piece {
	return Piece{Type: t, Colour: Black}
}

// IsEmpty reports whether p represents an empty square.
func (p Piece) IsEmpty() bool {
	return p.Type == NoPieceType
}

// Is reports whether p is a piece of the given type and colour.
func (p Piece) Is(t PieceType, c Colour) bool {
	return p.Type == t && p.Colour == c
}

// Symbol returns the FEN letter for the piece: uppercase for White.
func (p Piece) Symbol() byte {
	s := p.Type.Symbol()
	if p.Colour == White {
		return s - 'a' + 'A'
	}
	return s
}

// String returns the FEN letter for the piece, or "." when empty.
func (p Piece) String() string {
	if p.IsEmpty() {
		return "."
	}
	return string(p.Symbol())
}

// PieceFromSymbol converts a FEN letter to a piece.
func PieceFromSymbol(c byte) (Piece, bool) {
	t := ParsePieceType(c)
	if t == NoPieceType {
		return NoPiece, false
	}
	colour := White
	if c >= 'a' && c <= 'z' {
		colour = Black
	}
	return Piece{Type: t, Colour: colour}, true
}

// Castling right bits, kept per colour.
const (
	KingsideCastle  uint8 = 1 << 0
	QueensideCastle uint8 = 1 << 1
)

// NullMoveString is the PGN representation of a null move.
const NullMoveString = "--"
