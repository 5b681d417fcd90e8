package engine

import (
	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/hashing"
)

// rookHome describes the rook square tied to a castling right.
type rookHome struct {
	square chess.Square
	right  uint8
}

var rookHomes = [2][2]rookHome{
	chess.White: {{chess.A1, chess.QueensideCastle}, {chess.H1, chess.KingsideCastle}},
	chess.Black: {{chess.A8, chess.QueensideCastle}, {chess.H8, chess.KingsideCastle}},
}

// MakeMove plays m without checking legality. The move must come from Moves
// (or be a null move) for the position to stay consistent.
func (p *Position) MakeMove(m chess.Move) {
	us := p.turn
	them := us.Opposite()

	p.history.push(frame{
		move:       m,
		kings:      p.kings,
		turn:       p.turn,
		castling:   p.castling,
		epSquare:   p.epSquare,
		halfMoves:  p.halfMoves,
		moveNumber: p.moveNumber,
		hash:       p.hash,
	})

	if m.IsNull() {
		p.hash ^= hashing.EnPassantKey(p.epSquare)
		p.epSquare = chess.NoSquare
		p.halfMoves++
		if us == chess.Black {
			p.moveNumber++
		}
		p.turn = them
		p.hash ^= hashing.SideKey()
		return
	}

	p.hash ^= hashing.EnPassantKey(p.epSquare)
	p.hash ^= p.castlingKey()

	if m.Flags.Has(chess.FlagCapture) {
		p.hash ^= hashing.PieceKey(p.board[m.To], m.To)
	}

	moving := p.board[m.From]
	p.hash ^= hashing.PieceKey(moving, m.From)
	p.board[m.From] = chess.NoPiece
	p.board[m.To] = moving
	p.hash ^= hashing.PieceKey(moving, m.To)

	if m.Flags.Has(chess.FlagEPCapture) {
		victim := m.To - chess.PawnForward(us)
		p.hash ^= hashing.PieceKey(p.board[victim], victim)
		p.board[victim] = chess.NoPiece
	}

	if m.Promotion != chess.NoPieceType {
		promoted := chess.Piece{Type: m.Promotion, Colour: us}
		p.hash ^= hashing.PieceKey(moving, m.To)
		p.hash ^= hashing.PieceKey(promoted, m.To)
		p.board[m.To] = promoted
	}

	if moving.Type == chess.King {
		p.kings[us] = m.To

		var rookFrom, rookTo chess.Square
		switch {
		case m.Flags.Has(chess.FlagKingsideCastle):
			rookFrom, rookTo = m.To+1, m.To-1
		case m.Flags.Has(chess.FlagQueensideCastle):
			rookFrom, rookTo = m.To-2, m.To+1
		}
		if rookFrom != rookTo {
			rook := p.board[rookFrom]
			p.hash ^= hashing.PieceKey(rook, rookFrom)
			p.board[rookFrom] = chess.NoPiece
			p.board[rookTo] = rook
			p.hash ^= hashing.PieceKey(rook, rookTo)
		}
		p.castling[us] = 0
	}

	if p.castling[us] != 0 {
		for _, home := range rookHomes[us] {
			if m.From == home.square && p.castling[us]&home.right != 0 {
				p.castling[us] &^= home.right
				break
			}
		}
	}
	if p.castling[them] != 0 {
		for _, home := range rookHomes[them] {
			if m.To == home.square && p.castling[them]&home.right != 0 {
				p.castling[them] &^= home.right
				break
			}
		}
	}
	p.hash ^= p.castlingKey()

	p.epSquare = chess.NoSquare
	if m.Flags.Has(chess.FlagBigPawn) {
		if p.enemyPawnBeside(m.To, them) {
			p.epSquare = m.To - chess.PawnForward(us)
			p.hash ^= hashing.EnPassantKey(p.epSquare)
		}
	}

	if moving.Type == chess.Pawn || m.IsCapture() {
		p.halfMoves = 0
	} else {
		p.halfMoves++
	}
	if us == chess.Black {
		p.moveNumber++
	}
	p.turn = them
	p.hash ^= hashing.SideKey()
}

// enemyPawnBeside reports whether a pawn of colour them stands next to sq
// on the same rank.
func (p *Position) enemyPawnBeside(sq chess.Square, them chess.Colour) bool {
	for _, side := range [2]chess.Square{sq - 1, sq + 1} {
		if side.Valid() && p.board[side].Is(chess.Pawn, them) {
			return true
		}
	}
	return false
}

// UndoMove takes back the last move. It returns false when there is no
// history.
func (p *Position) UndoMove() (chess.Move, bool) {
	f, ok := p.history.pop()
	if !ok {
		return chess.Move{}, false
	}
	m := f.move

	p.kings = f.kings
	p.turn = f.turn
	p.castling = f.castling
	p.epSquare = f.epSquare
	p.halfMoves = f.halfMoves
	p.moveNumber = f.moveNumber
	p.hash = f.hash

	if m.IsNull() {
		return m, true
	}

	us := p.turn
	them := us.Opposite()

	p.board[m.From] = chess.Piece{Type: m.Piece, Colour: us}
	p.board[m.To] = chess.NoPiece

	if m.Captured != chess.NoPieceType {
		if m.Flags.Has(chess.FlagEPCapture) {
			p.board[m.To-chess.PawnForward(us)] = chess.Piece{Type: chess.Pawn, Colour: them}
		} else {
			p.board[m.To] = chess.Piece{Type: m.Captured, Colour: them}
		}
	}

	var rookFrom, rookTo chess.Square
	switch {
	case m.Flags.Has(chess.FlagKingsideCastle):
		rookFrom, rookTo = m.To-1, m.To+1
	case m.Flags.Has(chess.FlagQueensideCastle):
		rookFrom, rookTo = m.To+1, m.To-2
	}
	if rookFrom != rookTo {
		p.board[rookTo] = p.board[rookFrom]
		p.board[rookFrom] = chess.NoPiece
	}

	return m, true
}

// FENAfter returns the FEN of the position reached by m without touching p.
func (p *Position) FENAfter(m chess.Move) string {
	scratch := p.scratch()
	scratch.MakeMove(m)
	return scratch.FEN(false)
}

func (p *Position) castlingKey() uint64 {
	return hashing.CastlingKey(p.castling[chess.White], p.castling[chess.Black])
}
