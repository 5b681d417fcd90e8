package parser

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/lgbarn/chesscore/internal/errors"
)

// endOfInput describes the expectation that nothing follows.
const endOfInput = "end of input"

// location is a 1-based line and column.
type location struct {
	line, column int
}

// pegParser holds the backtracking state shared by the grammar rules.
// Failures are only recorded at the furthest offset reached; named rules
// silence the failures of their sub-expressions and report their own name.
type pegParser struct {
	input    string
	pos      int
	failPos  int
	expected []string
	silent   int

	locations map[int]location
}

func newPEGParser(input string) *pegParser {
	return &pegParser{
		input:     input,
		locations: map[int]location{0: {line: 1, column: 1}},
	}
}

func (p *pegParser) atEOF() bool {
	return p.pos >= len(p.input)
}

func (p *pegParser) fail(description string) {
	if p.silent > 0 || p.pos < p.failPos {
		return
	}
	if p.pos > p.failPos {
		p.failPos = p.pos
		p.expected = p.expected[:0]
	}
	p.expected = append(p.expected, description)
}

// literal matches s exactly.
func (p *pegParser) literal(s string) bool {
	if strings.HasPrefix(p.input[p.pos:], s) {
		p.pos += len(s)
		return true
	}
	p.fail(strconv.Quote(s))
	return false
}

// class matches one byte accepted by match. description is the class as
// written in the grammar, e.g. "[0-9]".
func (p *pegParser) class(description string, match func(byte) bool) bool {
	if !p.atEOF() && match(p.input[p.pos]) {
		p.pos++
		return true
	}
	p.fail(description)
	return false
}

// any matches a single character.
func (p *pegParser) any() bool {
	if p.atEOF() {
		p.fail("any character")
		return false
	}
	_, size := utf8.DecodeRuneInString(p.input[p.pos:])
	p.pos += size
	return true
}

// named runs rule with failures silenced and records name if it fails.
// The position is restored on failure.
func (p *pegParser) named(name string, rule func() bool) bool {
	start := p.pos
	p.silent++
	ok := rule()
	p.silent--
	if !ok {
		p.pos = start
		p.fail(name)
	}
	return ok
}

// optional runs rule and rewinds if it fails.
func (p *pegParser) optional(rule func() bool) bool {
	start := p.pos
	if !rule() {
		p.pos = start
		return false
	}
	return true
}

// lookahead reports whether rule would match here, without consuming
// input or recording failures.
func (p *pegParser) lookahead(rule func() bool) bool {
	start := p.pos
	p.silent++
	ok := rule()
	p.silent--
	p.pos = start
	return ok
}

func (p *pegParser) text(start int) string {
	return p.input[start:p.pos]
}

// locate converts a byte offset into a line and column. Results are cached
// and later lookups resume from the nearest cached offset before them.
func (p *pegParser) locate(offset int) location {
	if loc, ok := p.locations[offset]; ok {
		return loc
	}
	from := 0
	for cached := range p.locations {
		if cached < offset && cached > from {
			from = cached
		}
	}
	loc := p.locations[from]
	for i := from; i < offset && i < len(p.input); {
		r, size := utf8.DecodeRuneInString(p.input[i:])
		if r == '\n' {
			loc.line++
			loc.column = 1
		} else {
			loc.column++
		}
		i += size
	}
	p.locations[offset] = loc
	return loc
}

// syntaxError builds the error for the furthest failure.
func (p *pegParser) syntaxError() *errors.ParseError {
	expected := dedupeSorted(p.expected)
	loc := p.locate(p.failPos)
	err := &errors.ParseError{
		Expected: expected,
		Offset:   p.failPos,
		Line:     loc.line,
		Column:   loc.column,
	}

	found := endOfInput
	if p.failPos < len(p.input) {
		r, _ := utf8.DecodeRuneInString(p.input[p.failPos:])
		err.Found = string(r)
		found = strconv.Quote(err.Found)
	} else {
		err.AtEOF = true
	}
	err.Message = fmt.Sprintf("Expected %s but %s found.", describeExpected(expected), found)
	return err
}

func dedupeSorted(in []string) []string {
	out := append([]string(nil), in...)
	sort.Strings(out)
	n := 0
	for i, s := range out {
		if i == 0 || s != out[n-1] {
			out[n] = s
			n++
		}
	}
	return out[:n]
}

// describeExpected joins descriptions as English: "A", "A or B",
// "A, B, or C".
func describeExpected(expected []string) string {
	switch len(expected) {
	case 0:
		return "nothing"
	case 1:
		return expected[0]
	case 2:
		return expected[0] + " or " + expected[1]
	default:
		return strings.Join(expected[:len(expected)-1], ", ") + ", or " + expected[len(expected)-1]
	}
}
