package engine

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var (
	fenFieldSep      = regexp.MustCompile(`\s+`)
	fenEnPassantRe   = regexp.MustCompile(`^(-|[abcdefgh][36])$`)
	fenCastlingBadRe = regexp.MustCompile(`[^kKqQ-]`)
	fenSideRe        = regexp.MustCompile(`^(w|b)$`)
)

// fenDefaults fill in omitted trailing fields: castling, en passant,
// half-move clock and move number.
var fenDefaults = []string{"-", "-", "0", "1"}

func fenFields(fen string) []string {
	return fenFieldSep.Split(fen, -1)
}

// NormalizeFEN pads a FEN with two to five fields out to six fields using
// the defaults "- - 0 1". Other inputs are returned unchanged.
func NormalizeFEN(fen string) string {
	fields := fenFields(fen)
	if len(fields) >= 2 && len(fields) < 6 {
		fields = append(fields, fenDefaults[len(fenDefaults)-(6-len(fields)):]...)
		return strings.Join(fields, " ")
	}
	return fen
}

func fenError(reason string) error {
	return &errors.FENError{Reason: "Invalid FEN: " + reason}
}

// ValidateFEN checks a six-field FEN string and reports the first failing
// criterion as an *errors.FENError.
func ValidateFEN(fen string) error {
	fields := fenFields(fen)
	if len(fields) != 6 {
		return fenError("must contain six space-delimited fields")
	}

	if n, ok := parseLeadingInt(fields[5]); !ok || n <= 0 {
		return fenError("move number must be a positive integer")
	}
	if n, ok := parseLeadingInt(fields[4]); !ok || n < 0 {
		return fenError("half move counter number must be a non-negative integer")
	}
	if !fenEnPassantRe.MatchString(fields[3]) {
		return fenError("en-passant square is invalid")
	}
	if fenCastlingBadRe.MatchString(fields[2]) {
		return fenError("castling availability is invalid")
	}
	if !fenSideRe.MatchString(fields[1]) {
		return fenError("side-to-move is invalid")
	}

	rows := strings.Split(fields[0], "/")
	if len(rows) != 8 {
		return fenError("piece data does not contain 8 '/'-delimited rows")
	}
	for _, row := range rows {
		if err := validateFENRow(row); err != nil {
			return err
		}
	}

	ep, side := fields[3], fields[1]
	if len(ep) == 2 && ((ep[1] == '3' && side == "w") || (ep[1] == '6' && side == "b")) {
		return fenError("illegal en-passant square")
	}

	for _, k := range []struct {
		colour string
		symbol string
	}{{"white", "K"}, {"black", "k"}} {
		switch n := strings.Count(fields[0], k.symbol); {
		case n == 0:
			return fenError("missing " + k.colour + " king")
		case n > 1:
			return fenError("too many " + k.colour + " kings")
		}
	}

	if strings.ContainsAny(rows[0]+rows[7], "pP") {
		return fenError("some pawns are on the edge rows")
	}
	return nil
}

func validateFENRow(row string) error {
	sum := 0
	previousWasNumber := false
	for i := 0; i < len(row); i++ {
		c := row[i]
		if c >= '0' && c <= '9' {
			if previousWasNumber {
				return fenError("piece data is invalid (consecutive number)")
			}
			sum += int(c - '0')
			previousWasNumber = true
			continue
		}
		if !strings.ContainsRune("prnbqkPRNBQK", rune(c)) {
			return fenError("piece data is invalid (invalid piece)")
		}
		sum++
		previousWasNumber = false
	}
	if sum != 8 {
		return fenError("piece data is invalid (too many squares in rank)")
	}
	return nil
}

// parseLeadingInt parses an optional sign followed by leading digits,
// ignoring anything after them. It fails when no digit is present.
func parseLeadingInt(s string) (int, bool) {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	start := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == start {
		return 0, false
	}
	n, err := strconv.Atoi(s[:i])
	if err != nil {
		return 0, false
	}
	return n, true
}

// Load replaces the position with the one described by fen. Fields may be
// omitted from the end. With skipValidation the caller is responsible for
// the result being a sensible position (kings present, etc).
func (p *Position) Load(fen string, skipValidation bool) error {
	fen = NormalizeFEN(fen)
	if !skipValidation {
		if err := ValidateFEN(fen); err != nil {
			return err
		}
	}

	fields := fenFields(fen)
	for len(fields) < 6 {
		fields = append(fields, [...]string{"", "w", "-", "-", "0", "1"}[len(fields)])
	}

	p.Clear()
	parsePiecePlacement(p, fields[0])

	if fields[1] == "b" {
		p.turn = chess.Black
	}
	parseCastlingRights(p, fields[2])
	if sq, ok := chess.ParseSquare(fields[3]); ok {
		p.epSquare = sq
	}
	p.halfMoves, _ = parseLeadingInt(fields[4])
	p.moveNumber, _ = parseLeadingInt(fields[5])

	p.hash = p.ComputeHash()
	return nil
}

// parsePiecePlacement parses the piece placement field of a FEN string.
func parsePiecePlacement(p *Position, placement string) {
	sq := chess.A8
	for i := 0; i < len(placement) && sq <= chess.H1; i++ {
		c := placement[i]
		switch {
		case c == '/':
			sq += 8
		case c >= '0' && c <= '9':
			sq += chess.Square(c - '0')
		default:
			if piece, ok := chess.PieceFromSymbol(c); ok {
				p.place(piece, sq)
			}
			sq++
		}
	}
}

// parseCastlingRights sets only the rights named in the field.
func parseCastlingRights(p *Position, field string) {
	for _, r := range field {
		switch r {
		case 'K':
			p.castling[chess.White] |= chess.KingsideCastle
		case 'Q':
			p.castling[chess.White] |= chess.QueensideCastle
		case 'k':
			p.castling[chess.Black] |= chess.KingsideCastle
		case 'q':
			p.castling[chess.Black] |= chess.QueensideCastle
		}
	}
}

// FEN renders the position. The en-passant square is written only when
// forceEnPassant is set or the side to move has a legal en-passant capture.
func (p *Position) FEN(forceEnPassant bool) string {
	var sb strings.Builder
	writePiecePlacement(&sb, p)
	sb.WriteByte(' ')
	sb.WriteByte(p.turn.Letter())
	sb.WriteByte(' ')
	writeCastlingRights(&sb, p)
	sb.WriteByte(' ')
	sb.WriteString(p.fenEnPassant(forceEnPassant))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.halfMoves))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.moveNumber))
	return sb.String()
}

func writePiecePlacement(sb *strings.Builder, p *Position) {
	empty := 0
	for sq := chess.A8; sq <= chess.H1; sq++ {
		if piece := p.board[sq]; piece.IsEmpty() {
			empty++
		} else {
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(piece.Symbol())
		}
		if !(sq + 1).Valid() {
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
			}
			if sq != chess.H1 {
				sb.WriteByte('/')
			}
			empty = 0
			sq += 8
		}
	}
}

func writeCastlingRights(sb *strings.Builder, p *Position) {
	start := sb.Len()
	if p.castling[chess.White]&chess.KingsideCastle != 0 {
		sb.WriteByte('K')
	}
	if p.castling[chess.White]&chess.QueensideCastle != 0 {
		sb.WriteByte('Q')
	}
	if p.castling[chess.Black]&chess.KingsideCastle != 0 {
		sb.WriteByte('k')
	}
	if p.castling[chess.Black]&chess.QueensideCastle != 0 {
		sb.WriteByte('q')
	}
	if sb.Len() == start {
		sb.WriteByte('-')
	}
}

// fenEnPassant tries each capturing pawn on a scratch copy so the
// position itself is never touched.
func (p *Position) fenEnPassant(force bool) string {
	ep := p.epSquare
	if ep == chess.NoSquare {
		return "-"
	}
	if force {
		return ep.String()
	}
	bigPawn := ep - chess.PawnForward(p.turn)
	for _, sq := range [2]chess.Square{bigPawn + 1, bigPawn - 1} {
		if !sq.Valid() || !p.board[sq].Is(chess.Pawn, p.turn) {
			continue
		}
		scratch := p.scratch()
		scratch.MakeMove(chess.Move{
			Colour:   p.turn,
			From:     sq,
			To:       ep,
			Piece:    chess.Pawn,
			Captured: chess.Pawn,
			Flags:    chess.FlagEPCapture,
		})
		if !scratch.kingAttacked(p.turn) {
			return ep.String()
		}
	}
	return "-"
}
