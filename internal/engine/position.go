// Package engine provides chess move generation, validation and board manipulation
// on a 0x88 board.
package engine

import (
	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/hashing"
)

// frame is the state needed to undo one move.
type frame struct {
	move       chess.Move
	kings      [2]chess.Square
	turn       chess.Colour
	castling   [2]uint8
	epSquare   chess.Square
	halfMoves  int
	moveNumber int
	hash       uint64
}

// historyStack holds the frames of every move made on a position, oldest first.
type historyStack struct {
	frames []frame
}

func (h *historyStack) push(f frame) {
	h.frames = append(h.frames, f)
}

func (h *historyStack) pop() (frame, bool) {
	if len(h.frames) == 0 {
		return frame{}, false
	}
	f := h.frames[len(h.frames)-1]
	h.frames = h.frames[:len(h.frames)-1]
	return f, true
}

func (h *historyStack) len() int {
	return len(h.frames)
}

func (h *historyStack) clone() historyStack {
	return historyStack{frames: append([]frame(nil), h.frames...)}
}

// Position is a mutable chess position with its move history.
// It is not safe for concurrent use; Clone it for parallel work.
type Position struct {
	board      [chess.NumCells]chess.Piece
	kings      [2]chess.Square
	turn       chess.Colour
	castling   [2]uint8
	epSquare   chess.Square
	halfMoves  int
	moveNumber int
	hash       uint64
	history    historyStack
}

// NewPosition returns an empty board with White to move.
func NewPosition() *Position {
	p := &Position{}
	p.Clear()
	return p
}

// NewPositionFromFEN returns a position loaded from a validated FEN string.
func NewPositionFromFEN(fen string) (*Position, error) {
	p := NewPosition()
	if err := p.Load(fen, false); err != nil {
		return nil, err
	}
	return p, nil
}

// Clear empties the board and resets all state and history.
func (p *Position) Clear() {
	p.board = [chess.NumCells]chess.Piece{}
	p.kings = [2]chess.Square{chess.NoSquare, chess.NoSquare}
	p.turn = chess.White
	p.castling = [2]uint8{}
	p.epSquare = chess.NoSquare
	p.halfMoves = 0
	p.moveNumber = 1
	p.history = historyStack{}
	p.hash = p.ComputeHash()
}

// Clone returns an independent copy of the position, history included.
func (p *Position) Clone() *Position {
	c := *p
	c.history = p.history.clone()
	return &c
}

// scratch returns a copy without history for transient make/undo work.
func (p *Position) scratch() *Position {
	c := *p
	c.history = historyStack{}
	return &c
}

// Get returns the piece on sq, or chess.NoPiece.
func (p *Position) Get(sq chess.Square) chess.Piece {
	if !sq.Valid() {
		return chess.NoPiece
	}
	return p.board[sq]
}

// Turn returns the side to move.
func (p *Position) Turn() chess.Colour {
	return p.turn
}

// King returns the square of the given side's king, or NoSquare.
func (p *Position) King(c chess.Colour) chess.Square {
	return p.kings[c]
}

// Castling returns the castling rights bits of a side.
func (p *Position) Castling(c chess.Colour) uint8 {
	return p.castling[c]
}

// EnPassant returns the stored en-passant target square, or NoSquare.
func (p *Position) EnPassant() chess.Square {
	return p.epSquare
}

// HalfMoves returns the half-move clock.
func (p *Position) HalfMoves() int {
	return p.halfMoves
}

// MoveNumber returns the full-move number.
func (p *Position) MoveNumber() int {
	return p.moveNumber
}

// Hash returns the incremental position hash.
func (p *Position) Hash() uint64 {
	return p.hash
}

// Ply returns the number of moves in the history.
func (p *Position) Ply() int {
	return p.history.len()
}

// History returns the moves played, oldest first.
func (p *Position) History() []chess.Move {
	moves := make([]chess.Move, len(p.history.frames))
	for i, f := range p.history.frames {
		moves[i] = f.move
	}
	return moves
}

// Put places a piece on sq. It fails for an invalid piece or square and
// for a second king of the same colour. Castling rights and the
// en-passant target are re-derived afterwards.
func (p *Position) Put(piece chess.Piece, sq chess.Square) bool {
	if !p.place(piece, sq) {
		return false
	}
	p.updateCastlingRights()
	p.updateEnPassant()
	p.hash = p.ComputeHash()
	return true
}

// Remove takes the piece off sq and returns it.
func (p *Position) Remove(sq chess.Square) (chess.Piece, bool) {
	piece := p.Get(sq)
	if piece.IsEmpty() {
		return chess.NoPiece, false
	}
	if piece.Type == chess.King {
		p.kings[piece.Colour] = chess.NoSquare
	}
	p.board[sq] = chess.NoPiece
	p.updateCastlingRights()
	p.updateEnPassant()
	p.hash = p.ComputeHash()
	return piece, true
}

// SetCastling overrides the castling rights of a side. Rights whose king
// or rook is not on its home square are dropped again.
func (p *Position) SetCastling(c chess.Colour, rights uint8) {
	p.castling[c] = rights & (chess.KingsideCastle | chess.QueensideCastle)
	p.updateCastlingRights()
	p.hash = p.ComputeHash()
}

func (p *Position) place(piece chess.Piece, sq chess.Square) bool {
	if piece.Type <= chess.NoPieceType || piece.Type >= chess.NumPieceTypes || !sq.Valid() {
		return false
	}
	if piece.Colour != chess.White && piece.Colour != chess.Black {
		return false
	}
	if piece.Type == chess.King && p.kings[piece.Colour] != chess.NoSquare && p.kings[piece.Colour] != sq {
		return false
	}
	if current := p.board[sq]; current.Type == chess.King {
		p.kings[current.Colour] = chess.NoSquare
	}
	p.board[sq] = piece
	if piece.Type == chess.King {
		p.kings[piece.Colour] = sq
	}
	return true
}

// updateCastlingRights drops rights whose king or rook has left its home square.
func (p *Position) updateCastlingRights() {
	whiteKingHome := p.board[chess.E1].Is(chess.King, chess.White)
	blackKingHome := p.board[chess.E8].Is(chess.King, chess.Black)

	if !whiteKingHome || !p.board[chess.A1].Is(chess.Rook, chess.White) {
		p.castling[chess.White] &^= chess.QueensideCastle
	}
	if !whiteKingHome || !p.board[chess.H1].Is(chess.Rook, chess.White) {
		p.castling[chess.White] &^= chess.KingsideCastle
	}
	if !blackKingHome || !p.board[chess.A8].Is(chess.Rook, chess.Black) {
		p.castling[chess.Black] &^= chess.QueensideCastle
	}
	if !blackKingHome || !p.board[chess.H8].Is(chess.Rook, chess.Black) {
		p.castling[chess.Black] &^= chess.KingsideCastle
	}
}

// updateEnPassant clears the en-passant target unless a pawn that just made
// a double step could be captured by a pawn of the side to move.
func (p *Position) updateEnPassant() {
	ep := p.epSquare
	if ep == chess.NoSquare {
		return
	}
	forward := chess.PawnForward(p.turn)
	start := ep + forward
	current := ep - forward
	if !ep.Valid() || !start.Valid() || !current.Valid() ||
		!p.board[start].IsEmpty() || !p.board[ep].IsEmpty() ||
		!p.board[current].Is(chess.Pawn, p.turn.Opposite()) {
		p.epSquare = chess.NoSquare
		return
	}
	for _, sq := range [2]chess.Square{current + 1, current - 1} {
		if sq.Valid() && p.board[sq].Is(chess.Pawn, p.turn) {
			return
		}
	}
	p.epSquare = chess.NoSquare
}

// ComputeHash recomputes the position hash from scratch.
func (p *Position) ComputeHash() uint64 {
	var h uint64
	for _, sq := range chess.AllSquares() {
		h ^= hashing.PieceKey(p.board[sq], sq)
	}
	h ^= hashing.EnPassantKey(p.epSquare)
	h ^= hashing.CastlingKey(p.castling[chess.White], p.castling[chess.Black])
	if p.turn == chess.Black {
		h ^= hashing.SideKey()
	}
	return h
}
