package chesscore

import (
	"encoding/json"

	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/engine"
	"github.com/lgbarn/chesscore/internal/errors"
)

// MovesOptions filters the moves returned by Moves and VerboseMoves.
type MovesOptions struct {
	Square string    // only moves from this square, "" for all
	Piece  PieceType // only moves of this piece type, NoPieceType for all
}

func (g *Game) generate(opts MovesOptions) []chess.Move {
	gen := engine.GenOptions{Legal: true, Piece: opts.Piece}
	if opts.Square != "" {
		sq, ok := chess.ParseSquare(opts.Square)
		if !ok {
			return nil
		}
		gen.Square, gen.SingleSquare = sq, true
	}
	return g.pos.Moves(gen)
}

// Moves returns the legal moves in SAN.
func (g *Game) Moves(opts MovesOptions) []string {
	moves := g.generate(opts)
	legal := g.pos.LegalMoves()
	sans := make([]string, len(moves))
	for i, m := range moves {
		sans[i] = g.pos.MoveToSAN(m, legal)
	}
	return sans
}

// VerboseMoves returns the legal moves with all derived fields.
func (g *Game) VerboseMoves(opts MovesOptions) []*Move {
	moves := g.generate(opts)
	verbose := make([]*Move, len(moves))
	for i, m := range moves {
		verbose[i] = newMove(g.pos, m)
	}
	return verbose
}

// Move plays a move given in SAN. Unless strict is set, common variants
// are accepted too: "0-0", long algebraic ("e2e4", "Nb1c3"), a missing
// capture mark and needless disambiguation. "--" plays a null move, which
// is refused while in check.
func (g *Game) Move(san string, strict bool) (*Move, error) {
	m, ok := g.pos.MoveFromSAN(san, strict)
	if !ok {
		return nil, &errors.MoveError{Move: san}
	}
	return g.play(m)
}

// MoveRequest names a move by its squares. Promotion is the promotion
// piece letter ("q", "r", "b" or "n") and is required for promotions.
type MoveRequest struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Promotion string `json:"promotion,omitempty"`
}

// MoveCoords plays the legal move matching req.
func (g *Game) MoveCoords(req MoveRequest) (*Move, error) {
	from, fromOK := chess.ParseSquare(req.From)
	to, toOK := chess.ParseSquare(req.To)
	if fromOK && toOK {
		promotion := chess.NoPieceType
		if len(req.Promotion) == 1 {
			promotion = chess.ParsePieceType(req.Promotion[0])
		}
		for _, m := range g.pos.Moves(engine.GenOptions{Legal: true, Square: from, SingleSquare: true}) {
			if m.To == to && (m.Promotion == chess.NoPieceType || m.Promotion == promotion) {
				return g.play(m)
			}
		}
	}
	text, _ := json.Marshal(req)
	return nil, &errors.MoveError{Move: string(text)}
}

func (g *Game) play(m chess.Move) (*Move, error) {
	if m.IsNull() && g.pos.InCheck() {
		return nil, errors.ErrNullMoveInCheck
	}
	pm := newMove(g.pos, m)
	g.pos.MakeMove(m)
	g.positions[g.pos.Hash()]++
	return pm, nil
}

// Undo takes back the last move and returns it, or nil when there is no
// history.
func (g *Game) Undo() *Move {
	hash := g.pos.Hash()
	m, ok := g.pos.UndoMove()
	if !ok {
		return nil
	}
	if g.positions[hash]--; g.positions[hash] <= 0 {
		delete(g.positions, hash)
	}
	return newMove(g.pos, m)
}

// History returns the moves played in SAN, oldest first.
func (g *Game) History() []string {
	var sans []string
	g.replay(func(pos *engine.Position, m chess.Move) {
		sans = append(sans, pos.MoveToSAN(m, pos.LegalMoves()))
	})
	return sans
}

// VerboseHistory returns the moves played with all derived fields.
func (g *Game) VerboseHistory() []*Move {
	var moves []*Move
	g.replay(func(pos *engine.Position, m chess.Move) {
		moves = append(moves, newMove(pos, m))
	})
	return moves
}

// replay walks the history on a copy of the position, calling visit with
// the position before each move.
func (g *Game) replay(visit func(pos *engine.Position, m chess.Move)) {
	pos := g.pos.Clone()
	moves := pos.History()
	for range moves {
		pos.UndoMove()
	}
	for _, m := range moves {
		visit(pos, m)
		pos.MakeMove(m)
	}
}
