package chesscore

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/engine"
	"github.com/lgbarn/chesscore/internal/errors"
	"github.com/lgbarn/chesscore/internal/output"
	"github.com/lgbarn/chesscore/internal/parser"
)

// PGNOptions controls PGN output.
type PGNOptions struct {
	Newline  string // line separator, "\n" when empty
	MaxWidth int    // movetext width, 0 for a single line
}

// LoadPGNOptions controls PGN loading.
type LoadPGNOptions struct {
	// Strict accepts only exact SAN and honours FEN only with SetUp "1".
	Strict bool
	// NewlineChar is a regular expression matching the line separator of
	// the input. The default accepts "\n" and "\r\n".
	NewlineChar string
}

const defaultNewlineChar = `\r?\n`

// Record returns the game flattened for output.
func (g *Game) Record() *output.GameRecord {
	rec := &output.GameRecord{
		Headers:  g.tags.Entries(),
		FinalFEN: g.pos.FEN(false),
	}
	first := true
	g.replay(func(pos *engine.Position, m chess.Move) {
		if first {
			rec.InitialFEN = pos.FEN(false)
			rec.StartComment = g.commentAt(rec.InitialFEN)
			first = false
		}
		after := pos.FENAfter(m)
		mr := output.MoveRecord{
			Colour:     m.Colour,
			MoveNumber: pos.MoveNumber(),
			SAN:        pos.MoveToSAN(m, pos.LegalMoves()),
			LAN:        m.LAN(),
			Piece:      m.Piece,
			Captured:   m.Captured,
			Promotion:  m.Promotion,
			FEN:        after,
			Comment:    g.commentAt(after),
		}
		if !m.IsNull() {
			mr.From, mr.To = m.From.String(), m.To.String()
		}
		rec.Moves = append(rec.Moves, mr)
	})
	if first {
		rec.InitialFEN = rec.FinalFEN
		rec.StartComment = g.commentAt(rec.FinalFEN)
	}
	return rec
}

func (g *Game) commentAt(fen string) *string {
	if c, ok := g.comments[fen]; ok {
		return &c
	}
	return nil
}

// PGN renders the game: header tags, the main line with comments, and the
// Result tag as the termination marker.
func (g *Game) PGN(opts PGNOptions) string {
	return output.FormatPGN(g.Record(), output.Options{
		Newline:  opts.Newline,
		MaxWidth: opts.MaxWidth,
	})
}

// LoadPGN replaces the game with the one in text. Headers are copied, a
// FEN tag sets the starting position and the main line is replayed;
// variations are parsed but not played. Syntax errors are returned as
// *errors.ParseError, unplayable moves and a missing FEN as
// *errors.PGNError. On error the game is left unchanged.
func (g *Game) LoadPGN(text string, opts LoadPGNOptions) error {
	if opts.NewlineChar != "" && opts.NewlineChar != defaultNewlineChar {
		re, err := regexp.Compile(opts.NewlineChar)
		if err != nil {
			return fmt.Errorf("newline pattern: %w", err)
		}
		text = re.ReplaceAllString(text, "\n")
	}

	parsed, err := parser.Parse(text)
	if err != nil {
		return err
	}

	loaded, _ := New()
	if err := loaded.replayParsed(parsed, opts.Strict); err != nil {
		return err
	}
	*g = *loaded
	return nil
}

func (g *Game) replayParsed(parsed *parser.Game, strict bool) error {
	fen := ""
	for _, tag := range parsed.Headers {
		if strings.EqualFold(tag.Name, chess.FENTag) {
			fen = tag.Value
		}
		g.tags.Set(tag.Name, tag.Value)
	}

	if strict {
		if setup, _ := parsed.Header(chess.SetUpTag); setup == "1" {
			value, ok := parsed.Header(chess.FENTag)
			if !ok {
				return &errors.PGNError{
					Reason: "Invalid PGN: FEN tag must be supplied with SetUp tag",
					Err:    errors.ErrMissingTag,
				}
			}
			fen = value
		} else {
			fen = ""
		}
	}
	if fen != "" {
		if err := g.Load(fen, PreserveHeaders()); err != nil {
			return err
		}
	}

	if parsed.Root.Comment != nil {
		g.comments[g.FEN()] = *parsed.Root.Comment
	}
	for ply, node := range parsed.MainLine() {
		m, ok := g.pos.MoveFromSAN(node.Move, strict)
		if !ok {
			return &errors.PGNError{
				Reason: "Invalid move in PGN: " + node.Move,
				Move:   node.Move,
				Ply:    ply + 1,
			}
		}
		g.pos.MakeMove(m)
		g.positions[g.pos.Hash()]++
		if node.Comment != nil {
			g.comments[g.FEN()] = *node.Comment
		}
	}

	if result := parsed.Result; result != "" {
		if current, _ := g.tags.Get(chess.ResultTag); current != result {
			g.tags.Set(chess.ResultTag, result)
		}
	}
	return nil
}
