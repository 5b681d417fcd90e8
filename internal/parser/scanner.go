package parser

import (
	"bufio"
	"io"
	"strings"
)

// RawGame is the unparsed text of one game in a PGN stream.
type RawGame struct {
	Text string
	Line int // line number of the game's first line, 1-based
}

// Scanner splits a PGN stream into the text of individual games. A game
// ends when a tag line follows movetext, or when the line after a
// termination marker starts something new. Lines starting with '%' are
// escape lines and are dropped.
type Scanner struct {
	reader  *bufio.Reader
	lineNum int
	pending string
	hasLine bool
	eof     bool
}

// NewScanner creates a scanner reading from r.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{reader: bufio.NewReader(r)}
}

// readLine reads the next line from input, keeping the newline.
func (s *Scanner) readLine() (string, bool) {
	if s.hasLine {
		s.hasLine = false
		return s.pending, true
	}
	if s.eof {
		return "", false
	}
	line, err := s.reader.ReadString('\n')
	if err != nil {
		s.eof = true
		if len(line) == 0 {
			return "", false
		}
	}
	s.lineNum++
	return line, true
}

func (s *Scanner) unread(line string) {
	s.pending = line
	s.hasLine = true
}

// Next returns the next game, or nil at end of input.
func (s *Scanner) Next() *RawGame {
	var sb strings.Builder
	start := 0
	inMovetext := false
	terminated := false
	inComment := false

	for {
		line, ok := s.readLine()
		if !ok {
			break
		}
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(line, "%") {
			continue
		}
		if trimmed == "" {
			if sb.Len() > 0 {
				sb.WriteString(line)
			}
			continue
		}

		isTag := !inComment && strings.HasPrefix(trimmed, "[")
		trailingComment := terminated && strings.HasPrefix(trimmed, "{")
		if (isTag && inMovetext) || (terminated && !trailingComment) {
			s.unread(line)
			break
		}

		if sb.Len() == 0 {
			start = s.lineNum
		}
		sb.WriteString(line)
		if isTag {
			continue
		}

		inMovetext = true
		var code string
		code, inComment = stripComments(trimmed, inComment)
		terminated = !inComment && (endsWithResult(code) || trailingComment)
	}

	text := sb.String()
	if strings.TrimSpace(text) == "" {
		return nil
	}
	return &RawGame{Text: text, Line: start}
}

// stripComments returns the part of line outside comments and whether a
// brace comment is still open at its end. Brace comments do not nest.
func stripComments(line string, inComment bool) (string, bool) {
	var sb strings.Builder
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case inComment:
			inComment = c != '}'
		case c == '{':
			inComment = true
		case c == ';':
			return sb.String(), false
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String(), inComment
}

func endsWithResult(code string) bool {
	fields := strings.Fields(code)
	if len(fields) == 0 {
		return false
	}
	switch fields[len(fields)-1] {
	case "1-0", "0-1", "1/2-1/2", "*":
		return true
	}
	return false
}

// All reads every game from r.
func All(r io.Reader) []*RawGame {
	s := NewScanner(r)
	var games []*RawGame
	for game := s.Next(); game != nil; game = s.Next() {
		games = append(games, game)
	}
	return games
}
