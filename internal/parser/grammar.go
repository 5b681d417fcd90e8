package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/lgbarn/chesscore/internal/chess"
)

var lineBreaks = regexp.MustCompile(`[\r\n]+`)

// Parse parses a single PGN game. An empty string is a game with no tags
// and no moves. Syntax errors are returned as *errors.ParseError.
func Parse(text string) (*Game, error) {
	p := newPEGParser(text)
	game, ok := p.pgn()
	if !ok {
		return nil, p.syntaxError()
	}
	return game, nil
}

// pgn := tagPairSection moveTextSection
func (p *pegParser) pgn() (*Game, bool) {
	headers := p.tagPairSection()
	root, result, ok := p.moveTextSection()
	if !ok {
		return nil, false
	}
	return &Game{Headers: headers, Root: root, Result: result}, true
}

// _ := [ \t\r\n]*
func (p *pegParser) whitespace() {
	for !p.atEOF() {
		switch p.input[p.pos] {
		case ' ', '\t', '\r', '\n':
			p.pos++
		default:
			return
		}
	}
}

// tagPairSection := tagPair* _
func (p *pegParser) tagPairSection() []chess.TagPair {
	var tags []chess.TagPair
	for {
		var tag chess.TagPair
		if !p.optional(func() bool {
			var ok bool
			tag, ok = p.tagPair()
			return ok
		}) {
			break
		}
		tags = append(tags, tag)
	}
	p.whitespace()
	return tags
}

// tagPair := _ '[' _ tagName _ tagValue _ ']'
func (p *pegParser) tagPair() (chess.TagPair, bool) {
	var tag chess.TagPair
	p.whitespace()
	if !p.literal("[") {
		return tag, false
	}
	p.whitespace()
	start := p.pos
	if !p.named("tag name", func() bool {
		if !p.class("[A-Za-z0-9_]", isTagNameByte) {
			return false
		}
		for p.class("[A-Za-z0-9_]", isTagNameByte) {
		}
		return true
	}) {
		return tag, false
	}
	tag.Name = p.text(start)
	p.whitespace()

	value, ok := p.tagValue()
	if !ok {
		return tag, false
	}
	tag.Value = value
	p.whitespace()
	return tag, p.literal("]")
}

func isTagNameByte(c byte) bool {
	return c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z' || c >= '0' && c <= '9' || c == '_'
}

// tagValue := '"' ( '\\' any / [^"] )* '"'
func (p *pegParser) tagValue() (string, bool) {
	if !p.literal(`"`) {
		return "", false
	}
	var sb strings.Builder
	for {
		start := p.pos
		if p.literal(`\`) {
			escaped := p.pos
			if !p.any() {
				p.pos = start
				break
			}
			sb.WriteString(p.text(escaped))
			continue
		}
		if !p.class(`[^"]`, func(c byte) bool { return c != '"' }) {
			break
		}
		sb.WriteString(p.text(start))
	}
	if !p.literal(`"`) {
		return "", false
	}
	return sb.String(), true
}

// moveTextSection := line _ gameTerminationMarker? _ EOF
func (p *pegParser) moveTextSection() (*Node, string, bool) {
	root := p.line()
	p.whitespace()

	var result string
	var trailing *string
	p.optional(func() bool {
		var ok bool
		result, trailing, ok = p.gameTerminationMarker()
		return ok
	})
	p.whitespace()
	if !p.atEOF() {
		p.fail(endOfInput)
		return nil, "", false
	}

	if trailing != nil {
		last := root
		for len(last.Variations) > 0 {
			last = last.Variations[0]
		}
		last.Comment = trailing
	}
	return root, result, true
}

// line := comment? move*
//
// The returned root holds the leading comment; the moves hang off it as a
// chain through Variations[0], with each move's alternatives after it.
func (p *pegParser) line() *Node {
	root := &Node{}
	p.optional(func() bool {
		comment, ok := p.comment()
		if ok {
			root.Comment = &comment
		}
		return ok
	})

	parent := root
	for {
		var node *Node
		if !p.optional(func() bool {
			var ok bool
			node, ok = p.move()
			return ok
		}) {
			break
		}
		alternatives := node.Variations
		node.Variations = nil
		parent.Variations = append([]*Node{node}, alternatives...)
		parent = node
	}
	return root
}

// move := _ moveNumber? _ san suffixAnnotation? nag* _ comment? _ variation*
//
// The returned node's Variations holds the alternatives to the move itself.
func (p *pegParser) move() (*Node, bool) {
	p.whitespace()
	p.optional(p.moveNumber)
	p.whitespace()

	san, ok := p.san()
	if !ok {
		return nil, false
	}
	node := &Node{Move: san}

	start := p.pos
	if p.suffixAnnotation() {
		node.Suffix = p.text(start)
	}
	for {
		var nag int
		if !p.optional(func() bool {
			var ok bool
			nag, ok = p.nag()
			return ok
		}) {
			break
		}
		node.NAGs = append(node.NAGs, nag)
	}
	p.whitespace()
	p.optional(func() bool {
		comment, ok := p.comment()
		if ok {
			node.Comment = &comment
		}
		return ok
	})
	p.whitespace()

	for {
		var variation *Node
		if !p.optional(func() bool {
			var ok bool
			variation, ok = p.variation()
			return ok
		}) {
			break
		}
		if len(variation.Variations) == 0 {
			continue
		}
		first := variation.Variations[0]
		first.LineComment = variation.Comment
		node.Variations = append(node.Variations, first)
		node.Variations = append(node.Variations, variation.Variations[1:]...)
	}
	return node, true
}

// moveNumber := [0-9]+ !('-' / '/') (_ '.')*
//
// Dots may be spaced, as in "10. ... Kd7". The lookahead keeps "0-0"
// and the results "1-0" and "1/2-1/2" from being read as a move number.
func (p *pegParser) moveNumber() bool {
	return p.named("move number", func() bool {
		if !p.class("[0-9]", isDigit) {
			return false
		}
		for p.class("[0-9]", isDigit) {
		}
		if p.lookahead(func() bool { return p.literal("-") || p.literal("/") }) {
			return false
		}
		for {
			save := p.pos
			p.whitespace()
			if !p.literal(".") {
				p.pos = save
				return true
			}
		}
	})
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isSANByte(c byte) bool {
	return isTagNameByte(c) && c != '_' || strings.IndexByte("+#=:-", c) >= 0
}

// san := ('--' / '0-0-0' / '0-0') [+#]? / [a-zA-Z] [a-zA-Z0-9+#=:-]*
func (p *pegParser) san() (string, bool) {
	start := p.pos
	ok := p.named("standard algebraic notation", func() bool {
		if p.literal("--") || p.literal("0-0-0") || p.literal("0-0") {
			p.class("[+#]", func(c byte) bool { return c == '+' || c == '#' })
			return true
		}
		isLetter := func(c byte) bool { return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' }
		if !p.class("[a-zA-Z]", isLetter) {
			return false
		}
		for p.class("[a-zA-Z0-9+#=:-]", isSANByte) {
		}
		return true
	})
	return p.text(start), ok
}

// suffixAnnotation := [!?] [!?]?
func (p *pegParser) suffixAnnotation() bool {
	isMark := func(c byte) bool { return c == '!' || c == '?' }
	return p.named("suffix annotation", func() bool {
		if !p.class("[!?]", isMark) {
			return false
		}
		p.class("[!?]", isMark)
		return true
	})
}

// nag := _ '$' [0-9]+
func (p *pegParser) nag() (int, bool) {
	var start int
	ok := p.named("NAG", func() bool {
		p.whitespace()
		if !p.literal("$") {
			return false
		}
		start = p.pos
		if !p.class("[0-9]", isDigit) {
			return false
		}
		for p.class("[0-9]", isDigit) {
		}
		return true
	})
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(p.text(start))
	return n, err == nil
}

// comment := braceComment / restOfLineComment
func (p *pegParser) comment() (string, bool) {
	var text string
	if p.named("brace comment", func() bool {
		if !p.literal("{") {
			return false
		}
		start := p.pos
		for p.class("[^}]", func(c byte) bool { return c != '}' }) {
		}
		text = lineBreaks.ReplaceAllString(p.text(start), " ")
		return p.literal("}")
	}) {
		return text, true
	}
	if p.named("rest of line comment", func() bool {
		if !p.literal(";") {
			return false
		}
		start := p.pos
		for p.class(`[^\r\n]`, func(c byte) bool { return c != '\r' && c != '\n' }) {
		}
		text = strings.TrimSpace(p.text(start))
		return true
	}) {
		return text, true
	}
	return "", false
}

// variation := _ '(' line _ ')'
func (p *pegParser) variation() (*Node, bool) {
	p.whitespace()
	if !p.literal("(") {
		return nil, false
	}
	root := p.line()
	p.whitespace()
	if !p.literal(")") {
		return nil, false
	}
	return root, true
}

// gameTerminationMarker := ('1-0' / '0-1' / '1/2-1/2' / '*') _ comment?
func (p *pegParser) gameTerminationMarker() (string, *string, bool) {
	var result string
	var trailing *string
	ok := p.named("game termination marker", func() bool {
		start := p.pos
		if !(p.literal("1-0") || p.literal("0-1") || p.literal("1/2-1/2") || p.literal("*")) {
			return false
		}
		result = p.text(start)
		p.whitespace()
		p.optional(func() bool {
			comment, ok := p.comment()
			if ok {
				trailing = &comment
			}
			return ok
		})
		return true
	})
	return result, trailing, ok
}
