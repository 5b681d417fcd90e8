package chesscore

import (
	"strings"

	"github.com/lgbarn/chesscore/internal/chess"
)

// Header sets each name/value pair in kv and returns the headers that hold
// a value. A trailing name without a value is ignored.
func (g *Game) Header(kv ...string) map[string]string {
	for i := 0; i+1 < len(kv); i += 2 {
		g.tags.Set(kv[i], kv[i+1])
	}
	return g.Headers()
}

// SetHeader sets one header and returns the headers that hold a value.
func (g *Game) SetHeader(name, value string) map[string]string {
	return g.Header(name, value)
}

// RemoveHeader resets a header to its placeholder ("?" for most roster
// tags) or clears it. It reports false for a tag the game has never had.
func (g *Game) RemoveHeader(name string) bool {
	return g.tags.Remove(name)
}

// Headers returns the headers that hold a value.
func (g *Game) Headers() map[string]string {
	return g.tags.Map()
}

// HeaderEntries returns the headers that hold a value in output order.
func (g *Game) HeaderEntries() []TagPair {
	return g.tags.Entries()
}

// PositionComment is a comment with the FEN of the position it belongs to.
type PositionComment struct {
	FEN     string
	Comment string
}

// Comment returns the comment on the current position.
func (g *Game) Comment() (string, bool) {
	c, ok := g.comments[g.FEN()]
	return c, ok
}

// SetComment attaches a comment to the current position. The first '{'
// and '}' are replaced by '[' and ']' so the text survives PGN output.
func (g *Game) SetComment(comment string) {
	comment = strings.Replace(comment, "{", "[", 1)
	comment = strings.Replace(comment, "}", "]", 1)
	g.comments[g.FEN()] = comment
}

// RemoveComment deletes the comment on the current position and returns it.
func (g *Game) RemoveComment() (string, bool) {
	fen := g.FEN()
	c, ok := g.comments[fen]
	delete(g.comments, fen)
	return c, ok
}

// Comments returns the comments of the positions along the game, in game
// order. Comments on positions no longer reached are discarded.
func (g *Game) Comments() []PositionComment {
	g.pruneComments()
	var out []PositionComment
	for _, fen := range g.reachedFENs() {
		if c, ok := g.comments[fen]; ok {
			out = append(out, PositionComment{FEN: fen, Comment: c})
		}
	}
	return out
}

// RemoveComments deletes every comment and returns the ones still reached.
func (g *Game) RemoveComments() []PositionComment {
	out := g.Comments()
	g.comments = make(map[string]string)
	return out
}

// reachedFENs lists the FEN of the starting position and of the position
// after each move.
func (g *Game) reachedFENs() []string {
	rec := g.Record()
	fens := []string{rec.InitialFEN}
	for _, m := range rec.Moves {
		fens = append(fens, m.FEN)
	}
	return fens
}

func (g *Game) pruneComments() {
	reached := make(map[string]string, len(g.comments))
	for _, fen := range g.reachedFENs() {
		if c, ok := g.comments[fen]; ok {
			reached[fen] = c
		}
	}
	g.comments = reached
}

// Board returns the board as rows from rank 8 to rank 1, files a to h.
// Empty squares are nil.
func (g *Game) Board() [8][8]*BoardSquare {
	var grid [8][8]*BoardSquare
	for _, sq := range chess.AllSquares() {
		piece := g.pos.Get(sq)
		if piece.IsEmpty() {
			continue
		}
		grid[sq.Rank()][sq.File()] = &BoardSquare{
			Square: sq.String(),
			Type:   piece.Type,
			Colour: piece.Colour,
		}
	}
	return grid
}

// ASCII draws the board for debugging.
func (g *Game) ASCII() string {
	var sb strings.Builder
	sb.WriteString("   +------------------------+\n")
	for _, sq := range chess.AllSquares() {
		if sq.File() == 0 {
			sb.WriteByte(' ')
			sb.WriteByte(sq.RankChar())
			sb.WriteString(" |")
		}
		symbol := byte('.')
		if piece := g.pos.Get(sq); !piece.IsEmpty() {
			symbol = piece.Symbol()
		}
		sb.WriteByte(' ')
		sb.WriteByte(symbol)
		sb.WriteByte(' ')
		if sq.File() == 7 {
			sb.WriteString("|\n")
		}
	}
	sb.WriteString("   +------------------------+\n")
	sb.WriteString("     a  b  c  d  e  f  g  h")
	return sb.String()
}
