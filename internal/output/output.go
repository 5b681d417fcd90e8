// Package output renders replayed games as PGN text or JSON.
package output

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/lgbarn/chesscore/internal/chess"
)

// Options controls PGN rendering.
type Options struct {
	// Newline separates header lines and wrapped movetext lines
	Newline string
	// MaxWidth is the movetext line width, 0 to keep it on one line
	MaxWidth int
}

// FormatPGN renders a game as PGN. Headers come first, followed by a blank
// line when there are moves, then the movetext and the result token.
func FormatPGN(rec *GameRecord, opts Options) string {
	newline := opts.Newline
	if newline == "" {
		newline = "\n"
	}

	var out []string
	for _, tag := range rec.Headers {
		out = append(out, "["+tag.Name+` "`+escapeTagValue(tag.Value)+`"]`+newline)
	}
	if len(rec.Headers) > 0 && len(rec.Moves) > 0 {
		out = append(out, newline)
	}

	tokens := movetextTokens(rec)
	if opts.MaxWidth <= 0 {
		return strings.Join(out, "") + strings.Join(tokens, " ")
	}

	w := &movetextWriter{out: out, newline: newline, maxWidth: opts.MaxWidth}
	for i, token := range tokens {
		w.writeToken(i, token)
	}
	return strings.Join(w.out, "")
}

// movetextTokens groups the movetext into unbreakable units: a move number
// with its white and black moves, comments attached to the preceding move,
// and the result.
func movetextTokens(rec *GameRecord) []string {
	appendComment := func(s string, comment *string) string {
		if comment == nil {
			return s
		}
		if s != "" {
			s += " "
		}
		return s + "{" + *comment + "}"
	}

	var tokens []string
	if len(rec.Moves) == 0 {
		if c := appendComment("", rec.StartComment); c != "" {
			tokens = append(tokens, c)
		}
	}

	var group string
	comment := rec.StartComment
	for i, m := range rec.Moves {
		group = appendComment(group, comment)
		if i == 0 && m.Colour == chess.Black {
			prefix := strconv.Itoa(m.MoveNumber) + ". ..."
			if group != "" {
				group += " " + prefix
			} else {
				group = prefix
			}
		} else if m.Colour == chess.White {
			if group != "" {
				tokens = append(tokens, group)
			}
			group = strconv.Itoa(m.MoveNumber) + "."
		}
		group += " " + m.SAN
		comment = m.Comment
	}
	if group != "" {
		tokens = append(tokens, appendComment(group, comment))
	}
	return append(tokens, rec.result())
}

// movetextWriter lays tokens out in lines no wider than maxWidth. Tokens
// holding a comment may be broken at spaces; others move to a new line.
type movetextWriter struct {
	out      []string
	newline  string
	maxWidth int
	width    int
}

func (w *movetextWriter) strip() bool {
	if n := len(w.out); n > 0 && w.out[n-1] == " " {
		w.out = w.out[:n-1]
		return true
	}
	return false
}

func (w *movetextWriter) writeToken(i int, token string) {
	n := utf8.RuneCountInString(token)
	if w.width+n > w.maxWidth && strings.Contains(token, "{") {
		if i != 0 {
			w.out = append(w.out, " ")
			w.width++
		}
		w.wrapComment(token)
		return
	}
	switch {
	case w.width+n > w.maxWidth && i != 0:
		w.strip()
		w.out = append(w.out, w.newline)
		w.width = 0
	case i != 0:
		w.out = append(w.out, " ")
		w.width++
	}
	w.out = append(w.out, token)
	w.width += n
}

func (w *movetextWriter) wrapComment(token string) {
	for _, word := range strings.Split(token, " ") {
		if word == "" {
			continue
		}
		n := utf8.RuneCountInString(word)
		if w.width+n > w.maxWidth {
			for w.strip() {
				w.width--
			}
			w.out = append(w.out, w.newline)
			w.width = 0
		}
		w.out = append(w.out, word, " ")
		w.width += n + 1
	}
	if w.strip() {
		w.width--
	}
}

// escapeTagValue escapes special characters in tag values.
func escapeTagValue(s string) string {
	// Fast path: if no escaping needed, return original string
	if !strings.ContainsAny(s, "\\\"") {
		return s
	}
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	return s
}
