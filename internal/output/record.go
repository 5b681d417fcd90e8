package output

import "github.com/lgbarn/chesscore/internal/chess"

// GameRecord is a replayed game flattened for output. Moves hold the main
// line only; each move carries the comment attached to the position it
// produced.
type GameRecord struct {
	Headers      []chess.TagPair
	StartComment *string
	Moves        []MoveRecord
	Result       string
	InitialFEN   string
	FinalFEN     string
}

// MoveRecord is one played move with its derived notations.
type MoveRecord struct {
	Colour     chess.Colour
	MoveNumber int
	SAN        string
	LAN        string
	From       string
	To         string
	Piece      chess.PieceType
	Captured   chess.PieceType
	Promotion  chess.PieceType
	FEN        string
	Comment    *string
}

// Header returns the value of the named header.
func (r *GameRecord) Header(name string) (string, bool) {
	for _, tag := range r.Headers {
		if tag.Name == name {
			return tag.Value, true
		}
	}
	return "", false
}

// result returns the termination token for the movetext.
func (r *GameRecord) result() string {
	if r.Result != "" {
		return r.Result
	}
	if v, ok := r.Header("Result"); ok && v != "" {
		return v
	}
	return "*"
}

// withoutComments returns a shallow copy with every comment dropped.
func (r *GameRecord) withoutComments() *GameRecord {
	c := *r
	c.StartComment = nil
	c.Moves = make([]MoveRecord, len(r.Moves))
	for i, m := range r.Moves {
		m.Comment = nil
		c.Moves[i] = m
	}
	return &c
}
