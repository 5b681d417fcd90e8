// Package hashing provides position hash keys and duplicate detection for chess games.
package hashing

import (
	"github.com/lgbarn/chesscore/internal/chess"
)

// Zobrist keys for position hashing, generated from a fixed seed so that
// hashes are stable across runs and processes.
var (
	pieceKeys     [2][chess.NumPieceTypes][chess.NumCells]uint64
	enPassantKeys [8]uint64
	castlingKeys  [16]uint64
	sideKey       uint64
)

func init() {
	initKeys()
}

type prng struct {
	state uint64
}

func newPRNG(seed uint64) *prng {
	return &prng{state: seed}
}

// xorshift64*
func (p *prng) next() uint64 {
	p.state ^= p.state >> 12
	p.state ^= p.state << 25
	p.state ^= p.state >> 27
	return p.state * 0x2545F4914F6CDD1D
}

func initKeys() {
	rng := newPRNG(0x98F107A2BEEF1234)

	for c := chess.White; c <= chess.Black; c++ {
		for pt := chess.Pawn; pt <= chess.King; pt++ {
			for _, sq := range chess.AllSquares() {
				pieceKeys[c][pt][sq] = rng.next()
			}
		}
	}

	for file := range enPassantKeys {
		enPassantKeys[file] = rng.next()
	}

	for i := range castlingKeys {
		castlingKeys[i] = rng.next()
	}

	sideKey = rng.next()
}

// PieceKey returns the key for a piece on a square.
func PieceKey(p chess.Piece, sq chess.Square) uint64 {
	if p.IsEmpty() || !sq.Valid() {
		return 0
	}
	return pieceKeys[p.Colour][p.Type][sq]
}

// EnPassantKey returns the key for an en-passant target square.
// NoSquare hashes to zero.
func EnPassantKey(sq chess.Square) uint64 {
	if !sq.Valid() {
		return 0
	}
	return enPassantKeys[sq.File()]
}

// CastlingKey returns the key for the combined castling rights of both sides.
func CastlingKey(white, black uint8) uint64 {
	return castlingKeys[(white&3)|(black&3)<<2]
}

// SideKey returns the key XORed in when Black is to move.
func SideKey() uint64 {
	return sideKey
}
