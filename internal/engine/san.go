package engine

import (
	"regexp"
	"strings"

	"github.com/lgbarn/chesscore/internal/chess"
)

var (
	sanDecorationRe = regexp.MustCompile(`[+#]?[?!]*$`)
	sanTwoSquaresRe = regexp.MustCompile(`[a-h]\d.*[a-h]\d`)
	sanFullRe       = regexp.MustCompile(`([pnbrqkPNBRQK])?([a-h][1-8])x?-?([a-h][1-8])([qrbnQRBN])?`)
	sanPartialRe    = regexp.MustCompile(`([pnbrqkPNBRQK])?([a-h]?[1-8]?)x?-?([a-h][1-8])([qrbnQRBN])?`)
)

// StrippedSAN removes the promotion '=' and any trailing check, mate and
// annotation marks, so "e8=Q+!?" becomes "e8Q".
func StrippedSAN(san string) string {
	san = strings.Replace(san, "=", "", 1)
	return sanDecorationRe.ReplaceAllString(san, "")
}

// MoveToSAN renders m in Standard Algebraic Notation. legal is the list of
// legal moves used to choose a disambiguator.
func (p *Position) MoveToSAN(m chess.Move, legal []chess.Move) string {
	var sb strings.Builder
	switch {
	case m.Flags.Has(chess.FlagKingsideCastle):
		sb.WriteString("O-O")
	case m.Flags.Has(chess.FlagQueensideCastle):
		sb.WriteString("O-O-O")
	case m.IsNull():
		return chess.NullMoveString
	default:
		if m.Piece != chess.Pawn {
			sb.WriteByte(m.Piece.Letter())
			sb.WriteString(Disambiguator(m, legal))
		}
		if m.IsCapture() {
			if m.Piece == chess.Pawn {
				sb.WriteByte(m.From.FileChar())
			}
			sb.WriteByte('x')
		}
		sb.WriteString(m.To.String())
		if m.Promotion != chess.NoPieceType {
			sb.WriteByte('=')
			sb.WriteByte(m.Promotion.Letter())
		}
	}

	scratch := p.scratch()
	scratch.MakeMove(m)
	if scratch.InCheck() {
		if len(scratch.LegalMoves()) == 0 {
			sb.WriteByte('#')
		} else {
			sb.WriteByte('+')
		}
	}
	return sb.String()
}

// Disambiguator returns the from-square qualifier needed to tell m apart
// from other moves of the same piece type to the same square: the file if
// that suffices, else the rank, else the full square.
func Disambiguator(m chess.Move, legal []chess.Move) string {
	ambiguities, sameRank, sameFile := 0, 0, 0
	for _, other := range legal {
		if other.Piece != m.Piece || other.From == m.From || other.To != m.To {
			continue
		}
		ambiguities++
		if other.From.Rank() == m.From.Rank() {
			sameRank++
		}
		if other.From.File() == m.From.File() {
			sameFile++
		}
	}
	if ambiguities == 0 {
		return ""
	}
	from := m.From.String()
	switch {
	case sameRank > 0 && sameFile > 0:
		return from
	case sameFile > 0:
		return from[1:]
	default:
		return from[:1]
	}
}

// inferPieceType guesses the moving piece from the first letter of a SAN
// string. A lowercase file letter means a pawn unless the text names two
// squares (e.g. "e2e4"), in which case no filter applies. ok is false when
// the letter names no piece at all, so nothing can match.
func inferPieceType(san string) (pt chess.PieceType, ok bool) {
	if san == "" {
		return chess.NoPieceType, true
	}
	c := san[0]
	if c >= 'a' && c <= 'h' {
		if sanTwoSquaresRe.MatchString(san) {
			return chess.NoPieceType, true
		}
		return chess.Pawn, true
	}
	if c == 'o' || c == 'O' {
		return chess.King, true
	}
	pt = chess.ParsePieceType(c)
	return pt, pt != chess.NoPieceType
}

func (p *Position) movesForPiece(pt chess.PieceType, ok bool) []chess.Move {
	if !ok {
		return nil
	}
	return p.Moves(GenOptions{Legal: true, Piece: pt})
}

// MoveFromSAN finds the legal move written as san. Strict mode accepts only
// exact SAN (decorations aside). Otherwise it also accepts castling with
// zeros, long algebraic ("e2e4", "e2-e4", "Nb1c3", "f7f8q"), missing 'x'
// and needless disambiguation; the first matching move in generation order
// wins.
func (p *Position) MoveFromSAN(san string, strict bool) (chess.Move, bool) {
	clean := StrippedSAN(san)
	if !strict {
		switch clean {
		case "0-0":
			clean = "O-O"
		case "0-0-0":
			clean = "O-O-O"
		}
	}

	if clean == chess.NullMoveString {
		return chess.NewNullMove(p.turn), true
	}

	moves := p.movesForPiece(inferPieceType(clean))
	for _, m := range moves {
		if clean == StrippedSAN(p.MoveToSAN(m, moves)) {
			return m, true
		}
	}
	if strict {
		return chess.Move{}, false
	}

	var piece, from, to, promotion string
	overlyDisambiguated := false
	matches := sanFullRe.FindStringSubmatch(clean)
	if matches == nil {
		matches = sanPartialRe.FindStringSubmatch(clean)
	}
	if matches != nil {
		piece, from, to, promotion = matches[1], matches[2], matches[3], matches[4]
		if len(from) == 1 {
			overlyDisambiguated = true
		}
	}
	if to == "" {
		return chess.Move{}, false
	}

	if piece != "" {
		moves = p.movesForPiece(chess.ParsePieceType(piece[0]), true)
	} else {
		moves = p.movesForPiece(inferPieceType(clean))
	}

	toSq, _ := chess.ParseSquare(to)
	fromSq, fromOK := chess.ParseSquare(from)
	pieceMatches := func(m chess.Move) bool {
		return piece == "" || chess.ParsePieceType(piece[0]) == m.Piece
	}
	promotionMatches := func(m chess.Move) bool {
		return promotion == "" || chess.ParsePieceType(promotion[0]) == m.Promotion
	}

	for _, m := range moves {
		switch {
		case from == "":
			if clean == strings.Replace(StrippedSAN(p.MoveToSAN(m, moves)), "x", "", 1) {
				return m, true
			}
		case pieceMatches(m) && fromOK && fromSq == m.From && toSq == m.To && promotionMatches(m):
			return m, true
		case overlyDisambiguated:
			square := m.From.String()
			if pieceMatches(m) && toSq == m.To && (from[0] == square[0] || from[0] == square[1]) && promotionMatches(m) {
				return m, true
			}
		}
	}
	return chess.Move{}, false
}
