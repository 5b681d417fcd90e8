package engine

import (
	"github.com/lgbarn/chesscore/internal/chess"
)

// GenOptions restricts move generation.
type GenOptions struct {
	// Legal filters out moves that leave the mover's king attacked.
	Legal bool
	// Piece restricts generation to one piece type (NoPieceType = all).
	Piece chess.PieceType
	// Square restricts generation to moves from one square when SingleSquare is set.
	Square       chess.Square
	SingleSquare bool
}

// AllLegal generates every legal move.
var AllLegal = GenOptions{Legal: true}

// LegalMoves returns all legal moves for the side to move.
func (p *Position) LegalMoves() []chess.Move {
	return p.Moves(AllLegal)
}

// Moves generates moves for the side to move in board order (a8..h1),
// followed by castling moves. When the side to move has no king the
// pseudo-legal list is returned unfiltered.
func (p *Position) Moves(opts GenOptions) []chess.Move {
	us := p.turn
	them := us.Opposite()
	moves := make([]chess.Move, 0, 48)

	first, last := chess.A8, chess.H1
	singleSquare := false
	if opts.SingleSquare {
		if !opts.Square.Valid() {
			return nil
		}
		first, last = opts.Square, opts.Square
		singleSquare = true
	}

	for from := first; from <= last; from++ {
		if !from.Valid() {
			from += 7
			continue
		}
		piece := p.board[from]
		if piece.IsEmpty() || piece.Colour == them {
			continue
		}
		if opts.Piece != chess.NoPieceType && opts.Piece != piece.Type {
			continue
		}
		if piece.Type == chess.Pawn {
			moves = p.pawnMoves(moves, from)
			continue
		}
		moves = p.pieceMoves(moves, from, piece.Type)
	}

	if opts.Piece == chess.NoPieceType || opts.Piece == chess.King {
		if !singleSquare || last == p.kings[us] {
			moves = p.castlingMoves(moves)
		}
	}

	if !opts.Legal || p.kings[us] == chess.NoSquare {
		return moves
	}

	legal := moves[:0]
	for _, m := range moves {
		p.MakeMove(m)
		if !p.kingAttacked(us) {
			legal = append(legal, m)
		}
		p.UndoMove()
	}
	return legal
}

func (p *Position) pawnMoves(moves []chess.Move, from chess.Square) []chess.Move {
	us := p.turn
	them := us.Opposite()
	forward := chess.PawnForward(us)

	to := from + forward
	if to.Valid() && p.board[to].IsEmpty() {
		moves = addMove(moves, us, from, to, chess.Pawn, chess.NoPieceType, chess.FlagNormal)
		to = from + 2*forward
		if from.Rank() == chess.PawnStartRow(us) && p.board[to].IsEmpty() {
			moves = addMove(moves, us, from, to, chess.Pawn, chess.NoPieceType, chess.FlagBigPawn)
		}
	}

	sides := [2]chess.Square{-1, 1}
	if us == chess.Black {
		sides = [2]chess.Square{1, -1}
	}
	for _, side := range sides {
		to = from + forward + side
		if !to.Valid() {
			continue
		}
		target := p.board[to]
		switch {
		case !target.IsEmpty() && target.Colour == them:
			moves = addMove(moves, us, from, to, chess.Pawn, target.Type, chess.FlagCapture)
		case to == p.epSquare:
			moves = addMove(moves, us, from, to, chess.Pawn, chess.Pawn, chess.FlagEPCapture)
		}
	}
	return moves
}

func (p *Position) pieceMoves(moves []chess.Move, from chess.Square, pt chess.PieceType) []chess.Move {
	us := p.turn
	for _, offset := range pieceOffsets[pt] {
		to := from
		for {
			to += offset
			if !to.Valid() {
				break
			}
			target := p.board[to]
			if target.IsEmpty() {
				moves = addMove(moves, us, from, to, pt, chess.NoPieceType, chess.FlagNormal)
			} else {
				if target.Colour != us {
					moves = addMove(moves, us, from, to, pt, target.Type, chess.FlagCapture)
				}
				break
			}
			if pt == chess.Knight || pt == chess.King {
				break
			}
		}
	}
	return moves
}

func (p *Position) castlingMoves(moves []chess.Move) []chess.Move {
	us := p.turn
	them := us.Opposite()
	king := p.kings[us]
	if king == chess.NoSquare || p.castling[us] == 0 {
		return moves
	}
	empty := func(sq chess.Square) bool {
		return sq.Valid() && p.board[sq].IsEmpty()
	}
	safe := func(sq chess.Square) bool {
		return !p.Attacked(them, sq)
	}

	if p.castling[us]&chess.KingsideCastle != 0 {
		to := king + 2
		if empty(king+1) && empty(to) && safe(king) && safe(king+1) && safe(to) {
			moves = addMove(moves, us, king, to, chess.King, chess.NoPieceType, chess.FlagKingsideCastle)
		}
	}
	if p.castling[us]&chess.QueensideCastle != 0 {
		to := king - 2
		if empty(king-1) && empty(king-2) && empty(king-3) && safe(king) && safe(king-1) && safe(to) {
			moves = addMove(moves, us, king, to, chess.King, chess.NoPieceType, chess.FlagQueensideCastle)
		}
	}
	return moves
}

// addMove appends a move, expanding pawn moves onto the last rank into
// the four promotions.
func addMove(moves []chess.Move, c chess.Colour, from, to chess.Square, pt, captured chess.PieceType, flags chess.MoveFlags) []chess.Move {
	if pt == chess.Pawn && (to.Rank() == 0 || to.Rank() == 7) {
		for _, promo := range chess.PromotionTypes {
			moves = append(moves, chess.Move{
				Colour:    c,
				From:      from,
				To:        to,
				Piece:     pt,
				Captured:  captured,
				Promotion: promo,
				Flags:     flags | chess.FlagPromotion,
			})
		}
		return moves
	}
	return append(moves, chess.Move{
		Colour:   c,
		From:     from,
		To:       to,
		Piece:    pt,
		Captured: captured,
		Flags:    flags,
	})
}
