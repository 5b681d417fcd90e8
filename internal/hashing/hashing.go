package hashing

import (
	"github.com/cespare/xxhash/v2"
)

// GameSignature stores identifying information about a game.
type GameSignature struct {
	// Hash is the Zobrist hash of the final position
	Hash uint64
	// MoveCount is the number of half-moves in the game
	MoveCount int
	// SequenceHash is a hash of the SAN move sequence
	SequenceHash uint64
}

// NewSignature builds the signature of a game from its final position hash
// and its main-line moves in SAN.
func NewSignature(finalHash uint64, moves []string) GameSignature {
	return GameSignature{
		Hash:         finalHash,
		MoveCount:    len(moves),
		SequenceHash: SequenceHash(moves),
	}
}

// SequenceHash hashes a move sequence. Moves are separated by a space so
// that "e4 e5" and "e4e 5" differ.
func SequenceHash(moves []string) uint64 {
	d := xxhash.New()
	for _, m := range moves {
		_, _ = d.WriteString(m)
		_, _ = d.WriteString(" ")
	}
	return d.Sum64()
}

// Backend persists signatures beyond the lifetime of a detector.
type Backend interface {
	Signatures(hash uint64) ([]GameSignature, error)
	Add(sig GameSignature) error
}

// DuplicateDetector tracks seen games for duplicate detection.
type DuplicateDetector struct {
	// hashTable stores seen signatures keyed by final position hash
	hashTable map[uint64][]GameSignature
	// useExactMatch also requires the move sequences to match
	useExactMatch bool
	// maxCapacity limits stored signatures (0 = unlimited)
	maxCapacity int
	entries     int
	// duplicateCount tracks number of duplicates found
	duplicateCount int
	backend        Backend
}

// NewDuplicateDetector creates a new duplicate detector.
// maxCapacity of 0 means unlimited capacity.
func NewDuplicateDetector(exactMatch bool, maxCapacity int) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:     make(map[uint64][]GameSignature),
		useExactMatch: exactMatch,
		maxCapacity:   maxCapacity,
	}
}

// SetBackend attaches a persistent store consulted after the in-memory table.
func (d *DuplicateDetector) SetBackend(b Backend) {
	d.backend = b
}

// CheckAndAdd checks if a game is a duplicate and records it.
// Returns true if the game is a duplicate.
func (d *DuplicateDetector) CheckAndAdd(sig GameSignature) (bool, error) {
	for _, existing := range d.hashTable[sig.Hash] {
		if d.signaturesMatch(sig, existing) {
			d.duplicateCount++
			return true, nil
		}
	}

	if d.backend != nil {
		stored, err := d.backend.Signatures(sig.Hash)
		if err != nil {
			return false, err
		}
		for _, existing := range stored {
			if d.signaturesMatch(sig, existing) {
				d.duplicateCount++
				d.remember(sig)
				return true, nil
			}
		}
		if err := d.backend.Add(sig); err != nil {
			return false, err
		}
	}

	d.remember(sig)
	return false, nil
}

func (d *DuplicateDetector) remember(sig GameSignature) {
	if d.IsFull() {
		return
	}
	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	d.entries++
}

// signaturesMatch checks if two game signatures match.
func (d *DuplicateDetector) signaturesMatch(a, b GameSignature) bool {
	if a.Hash != b.Hash {
		return false
	}
	if a.MoveCount != b.MoveCount {
		return false
	}
	if d.useExactMatch && a.SequenceHash != b.SequenceHash {
		return false
	}
	return true
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of signatures held in memory.
func (d *DuplicateDetector) UniqueCount() int {
	return d.entries
}

// IsFull returns true if the detector has reached its capacity limit.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.entries >= d.maxCapacity
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]GameSignature)
	d.entries = 0
	d.duplicateCount = 0
}
