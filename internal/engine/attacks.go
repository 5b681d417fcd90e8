package engine

import (
	"github.com/lgbarn/chesscore/internal/chess"
)

// Piece-type bits used in attackTable.
const (
	maskPawn uint8 = 1 << iota
	maskKnight
	maskBishop
	maskRook
	maskQueen
	maskKing
)

var pieceMasks = [chess.NumPieceTypes]uint8{
	chess.Pawn:   maskPawn,
	chess.Knight: maskKnight,
	chess.Bishop: maskBishop,
	chess.Rook:   maskRook,
	chess.Queen:  maskQueen,
	chess.King:   maskKing,
}

// Move offsets on the 0x88 board.
var (
	knightOffsets = []chess.Square{-18, -33, -31, -14, 18, 33, 31, 14}
	bishopOffsets = []chess.Square{-17, -15, 17, 15}
	rookOffsets   = []chess.Square{-16, 1, 16, -1}
	royalOffsets  = []chess.Square{-17, -16, -15, 1, 17, 16, 15, -1}
)

var pieceOffsets = [chess.NumPieceTypes][]chess.Square{
	chess.Knight: knightOffsets,
	chess.Bishop: bishopOffsets,
	chess.Rook:   rookOffsets,
	chess.Queen:  royalOffsets,
	chess.King:   royalOffsets,
}

// attackTable and rayTable are indexed by (attacker - target) + 119.
// attackTable holds the piece types that can cover that difference on an
// empty board; rayTable holds the step that walks from attacker to target.
var (
	attackTable [240]uint8
	rayTable    [240]chess.Square
)

const diffOffset = 119

func init() {
	initAttackTables()
}

func initAttackTables() {
	for _, d := range knightOffsets {
		attackTable[-d+diffOffset] |= maskKnight
	}
	for _, d := range royalOffsets {
		diagonal := d == 15 || d == -15 || d == 17 || d == -17
		for k := chess.Square(1); k <= 7; k++ {
			idx := -d*k + diffOffset
			var mask uint8
			switch {
			case diagonal && k == 1:
				mask = maskPawn | maskBishop | maskQueen | maskKing
			case diagonal:
				mask = maskBishop | maskQueen
			case k == 1:
				mask = maskRook | maskQueen | maskKing
			default:
				mask = maskRook | maskQueen
			}
			attackTable[idx] |= mask
			rayTable[idx] = d
		}
	}
}

// Attacked reports whether any piece of colour by attacks sq.
func (p *Position) Attacked(by chess.Colour, sq chess.Square) bool {
	found := false
	p.scanAttackers(by, sq, func(chess.Square) bool {
		found = true
		return false
	})
	return found
}

// Attackers returns the squares of all pieces of colour by that attack sq.
func (p *Position) Attackers(by chess.Colour, sq chess.Square) []chess.Square {
	var squares []chess.Square
	p.scanAttackers(by, sq, func(from chess.Square) bool {
		squares = append(squares, from)
		return true
	})
	return squares
}

// scanAttackers calls visit for each attacker in board order until visit
// returns false.
func (p *Position) scanAttackers(by chess.Colour, target chess.Square, visit func(chess.Square) bool) {
	if !target.Valid() {
		return
	}
	for i := chess.A8; i <= chess.H1; i++ {
		if !i.Valid() {
			i += 7
			continue
		}
		piece := p.board[i]
		if piece.IsEmpty() || piece.Colour != by {
			continue
		}
		diff := i - target
		if diff == 0 {
			continue
		}
		idx := diff + diffOffset
		if attackTable[idx]&pieceMasks[piece.Type] == 0 {
			continue
		}

		switch piece.Type {
		case chess.Pawn:
			if (diff > 0 && piece.Colour == chess.White) || (diff <= 0 && piece.Colour == chess.Black) {
				if !visit(i) {
					return
				}
			}
			continue
		case chess.Knight, chess.King:
			if !visit(i) {
				return
			}
			continue
		}

		step := rayTable[idx]
		blocked := false
		for j := i + step; j != target; j += step {
			if !p.board[j].IsEmpty() {
				blocked = true
				break
			}
		}
		if !blocked && !visit(i) {
			return
		}
	}
}

// kingAttacked reports whether the king of colour c is attacked.
// A missing king is never attacked.
func (p *Position) kingAttacked(c chess.Colour) bool {
	sq := p.kings[c]
	if sq == chess.NoSquare {
		return false
	}
	return p.Attacked(c.Opposite(), sq)
}

// InCheck reports whether the side to move is in check.
func (p *Position) InCheck() bool {
	return p.kingAttacked(p.turn)
}
