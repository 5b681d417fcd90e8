package chess

// Square is an index into a 0x88 board: 128 cells laid out as 8 ranks of
// 16 files, where only the low 8 files of each rank are on the board.
// Rank 8 occupies the start of the array, so a8 is 0 and h1 is 119.
type Square int

// NoSquare marks an absent square (no en-passant target, missing king).
const NoSquare Square = -1

// Board dimensions.
const (
	BoardSize  = 8
	NumCells   = 128
	OffBoard   = 0x88
	RankStride = 16
)

// Named squares used by castling and tests.
const (
	A8 Square = 0
	B8 Square = 1
	C8 Square = 2
	D8 Square = 3
	E8 Square = 4
	F8 Square = 5
	G8 Square = 6
	H8 Square = 7
	A1 Square = 112
	B1 Square = 113
	C1 Square = 114
	D1 Square = 115
	E1 Square = 116
	F1 Square = 117
	G1 Square = 118
	H1 Square = 119
)

// MakeSquare builds a square from a 0-based file (a=0) and a 0-based
// row counted from rank 8 (rank 8 = 0).
func MakeSquare(file, row int) Square {
	return Square(row<<4 | file)
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s >= 0 && s < NumCells && s&OffBoard == 0
}

// File returns the 0-based file (a=0).
func (s Square) File() int {
	return int(s) & 15
}

// Rank returns the 0-based row counted from rank 8 (rank 8 = 0).
func (s Square) Rank() int {
	return int(s) >> 4
}

// RankChar returns the rank digit '1'-'8'.
func (s Square) RankChar() byte {
	return byte('8' - s.Rank())
}

// FileChar returns the file letter 'a'-'h'.
func (s Square) FileChar() byte {
	return byte('a' + s.File())
}

// String returns the algebraic name of the square, e.g. "e4".
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{s.FileChar(), s.RankChar()})
}

// IsLight reports whether the square is a light square (h1 is light).
func (s Square) IsLight() bool {
	return (s.File()+s.Rank())%2 == 0
}

// SquareColour returns "light" or "dark".
func (s Square) SquareColour() string {
	if s.IsLight() {
		return "light"
	}
	return "dark"
}

// ParseSquare converts an algebraic square name to a Square.
func ParseSquare(name string) (Square, bool) {
	if len(name) != 2 {
		return NoSquare, false
	}
	f, r := name[0], name[1]
	if f < 'a' || f > 'h' || r < '1' || r > '8' {
		return NoSquare, false
	}
	return MakeSquare(int(f-'a'), int('8'-r)), true
}

// AllSquares returns every on-board square in FEN order (a8..h8, ..., a1..h1).
func AllSquares() []Square {
	squares := make([]Square, 0, BoardSize*BoardSize)
	for sq := A8; sq <= H1; sq++ {
		if !sq.Valid() {
			sq += 7
			continue
		}
		squares = append(squares, sq)
	}
	return squares
}

// PawnStartRow returns the row a colour's pawns start on.
func PawnStartRow(c Colour) int {
	if c == White {
		return 6
	}
	return 1
}

// PromotionRow returns the row a colour's pawns promote on.
func PromotionRow(c Colour) int {
	if c == White {
		return 0
	}
	return 7
}

// PawnForward returns the square offset of a single pawn step for c.
func PawnForward(c Colour) Square {
	if c == White {
		return -RankStride
	}
	return RankStride
}
