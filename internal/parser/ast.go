// Package parser turns PGN text into a tree of tag pairs, moves, comments
// and variations. It knows nothing about chess rules: move text is kept
// verbatim for the caller to replay.
package parser

import "github.com/lgbarn/chesscore/internal/chess"

// Game is a parsed PGN game.
type Game struct {
	Headers []chess.TagPair
	Root    *Node
	Result  string // termination marker, or "" when absent
}

// Node is one position in the move tree. The root carries only the comment
// written before the first move. Variations[0] continues the line; later
// entries are alternatives to it.
type Node struct {
	Move       string
	Suffix     string
	NAGs       []int
	Comment    *string
	Variations []*Node

	// LineComment is the comment written before the first move of a
	// variation. It is only set on the first node of an alternative line.
	LineComment *string
}

// Header returns the value of the named tag.
func (g *Game) Header(name string) (string, bool) {
	for _, tag := range g.Headers {
		if tag.Name == name {
			return tag.Value, true
		}
	}
	return "", false
}

// MainLine returns the main-line nodes in order, excluding the root.
func (g *Game) MainLine() []*Node {
	var nodes []*Node
	for node := g.Root; node != nil && len(node.Variations) > 0; {
		node = node.Variations[0]
		nodes = append(nodes, node)
	}
	return nodes
}

// Last returns the final main-line node, or the root for a game with no moves.
func (g *Game) Last() *Node {
	node := g.Root
	for len(node.Variations) > 0 {
		node = node.Variations[0]
	}
	return node
}

// PlyCount returns the number of main-line moves.
func (g *Game) PlyCount() int {
	return len(g.MainLine())
}
