package engine

import (
	"github.com/lgbarn/chesscore/internal/chess"
)

// FiftyMoveLimit is the half-move clock value at which a draw may be claimed.
const FiftyMoveLimit = 100

// IsCheckmate reports whether the side to move is checkmated.
func (p *Position) IsCheckmate() bool {
	return p.InCheck() && len(p.LegalMoves()) == 0
}

// IsStalemate reports whether the side to move has no legal move and is
// not in check.
func (p *Position) IsStalemate() bool {
	return !p.InCheck() && len(p.LegalMoves()) == 0
}

// IsDrawByFiftyMoves reports whether the half-move clock has reached 100.
func (p *Position) IsDrawByFiftyMoves() bool {
	return p.halfMoves >= FiftyMoveLimit
}

// IsInsufficientMaterial returns true for K v K, K+minor v K and positions
// where the only other pieces are bishops all standing on one square colour.
func (p *Position) IsInsufficientMaterial() bool {
	var counts [chess.NumPieceTypes]int
	numPieces := 0
	lightBishops, bishops := 0, 0

	for _, sq := range chess.AllSquares() {
		piece := p.board[sq]
		if piece.IsEmpty() {
			continue
		}
		counts[piece.Type]++
		numPieces++
		if piece.Type == chess.Bishop {
			bishops++
			if sq.IsLight() {
				lightBishops++
			}
		}
	}

	switch {
	case numPieces == 2:
		return true
	case numPieces == 3 && (counts[chess.Bishop] == 1 || counts[chess.Knight] == 1):
		return true
	case numPieces == counts[chess.Bishop]+2:
		return lightBishops == 0 || lightBishops == bishops
	}
	return false
}

// FindPiece returns the squares holding piece, in board order. An empty
// piece matches nothing.
func (p *Position) FindPiece(piece chess.Piece) []chess.Square {
	if piece.IsEmpty() {
		return nil
	}
	var squares []chess.Square
	for _, sq := range chess.AllSquares() {
		if p.board[sq] == piece {
			squares = append(squares, sq)
		}
	}
	return squares
}

// Perft counts the leaf nodes of the legal move tree to the given depth.
func (p *Position) Perft(depth int) int {
	if depth <= 0 {
		return 1
	}
	us := p.turn
	nodes := 0
	for _, m := range p.Moves(GenOptions{}) {
		p.MakeMove(m)
		if !p.kingAttacked(us) {
			if depth > 1 {
				nodes += p.Perft(depth - 1)
			} else {
				nodes++
			}
		}
		p.UndoMove()
	}
	return nodes
}
