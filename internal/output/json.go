package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/chesscore/internal/chess"
)

// JSONGame represents a game in JSON format.
type JSONGame struct {
	Tags       map[string]string `json:"tags"`
	Comment    string            `json:"comment,omitempty"`
	Moves      []JSONMove        `json:"moves,omitempty"`
	Result     string            `json:"result,omitempty"`
	PlyCount   int               `json:"plyCount,omitempty"`
	FinalFEN   string            `json:"finalFEN,omitempty"`
	InitialFEN string            `json:"initialFEN,omitempty"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	MoveNumber int    `json:"moveNumber,omitempty"`
	Color      string `json:"color"` // "white" or "black"
	SAN        string `json:"san"`
	UCI        string `json:"uci,omitempty"`
	From       string `json:"from,omitempty"`
	To         string `json:"to,omitempty"`
	Piece      string `json:"piece,omitempty"`
	Captured   string `json:"captured,omitempty"`
	Promotion  string `json:"promotion,omitempty"`
	Comment    string `json:"comment,omitempty"`
	FEN        string `json:"fen,omitempty"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// WriteGamesJSON writes games as one indented JSON document.
func WriteGamesJSON(w io.Writer, games []*GameRecord) error {
	jsonGames := make([]*JSONGame, len(games))
	for i, game := range games {
		jsonGames[i] = GameToJSON(game)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(&JSONOutput{Games: jsonGames})
}

// GameToJSON converts a game record to JSON format.
func GameToJSON(rec *GameRecord) *JSONGame {
	jg := &JSONGame{
		Tags:       copyTags(rec.Headers),
		Result:     rec.result(),
		PlyCount:   len(rec.Moves),
		InitialFEN: rec.InitialFEN,
		FinalFEN:   rec.FinalFEN,
	}
	if rec.StartComment != nil {
		jg.Comment = *rec.StartComment
	}

	if len(rec.Moves) > 0 {
		jg.Moves = make([]JSONMove, len(rec.Moves))
		for i := range rec.Moves {
			jg.Moves[i] = convertMove(&rec.Moves[i])
		}
	}
	return jg
}

// copyTags copies game tags and ensures seven tag roster has values.
func copyTags(tags []chess.TagPair) map[string]string {
	result := make(map[string]string, len(tags)+len(chess.SevenTagRoster))
	for _, tag := range tags {
		result[tag.Name] = tag.Value
	}
	for _, tag := range chess.SevenTagRoster {
		if _, ok := result[tag]; !ok {
			result[tag], _ = chess.RosterDefault(tag)
		}
	}
	return result
}

func convertMove(m *MoveRecord) JSONMove {
	jm := JSONMove{
		Color:     m.Colour.String(),
		SAN:       m.SAN,
		UCI:       m.LAN,
		From:      m.From,
		To:        m.To,
		Piece:     pieceTypeName(m.Piece),
		Captured:  pieceTypeName(m.Captured),
		Promotion: pieceTypeName(m.Promotion),
		FEN:       m.FEN,
	}
	if m.Colour == chess.White {
		jm.MoveNumber = m.MoveNumber
	}
	if m.Comment != nil {
		jm.Comment = *m.Comment
	}
	return jm
}

// pieceTypeName returns the piece type as a string, "" for no piece.
func pieceTypeName(p chess.PieceType) string {
	if p == chess.NoPieceType {
		return ""
	}
	return p.String()
}
