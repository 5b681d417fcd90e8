package hashing

import (
	"errors"
	"testing"

	"github.com/lgbarn/chesscore/internal/chess"
)

func TestKeysAreDistinct(t *testing.T) {
	seen := make(map[uint64]string)
	add := func(k uint64, name string) {
		t.Helper()
		if k == 0 {
			t.Errorf("%s key is zero", name)
		}
		if prev, ok := seen[k]; ok {
			t.Errorf("%s key collides with %s", name, prev)
		}
		seen[k] = name
	}

	for _, sq := range chess.AllSquares() {
		add(PieceKey(chess.W(chess.Pawn), sq), "white pawn "+sq.String())
		add(PieceKey(chess.B(chess.King), sq), "black king "+sq.String())
	}
	for file := 0; file < 8; file++ {
		add(EnPassantKey(chess.MakeSquare(file, 2)), "ep file")
	}
	add(SideKey(), "side")
}

func TestKeysAreStable(t *testing.T) {
	e4, _ := chess.ParseSquare("e4")
	first := PieceKey(chess.W(chess.Knight), e4)
	initKeys()
	if got := PieceKey(chess.W(chess.Knight), e4); got != first {
		t.Errorf("PieceKey changed after re-init: %x != %x", got, first)
	}
}

func TestEmptyInputsHashToZero(t *testing.T) {
	if PieceKey(chess.NoPiece, chess.A1) != 0 {
		t.Error("PieceKey(NoPiece) != 0")
	}
	if EnPassantKey(chess.NoSquare) != 0 {
		t.Error("EnPassantKey(NoSquare) != 0")
	}
}

func TestEnPassantKeyIsPerFile(t *testing.T) {
	e3, _ := chess.ParseSquare("e3")
	e6, _ := chess.ParseSquare("e6")
	if EnPassantKey(e3) != EnPassantKey(e6) {
		t.Error("en-passant keys on the same file differ")
	}
}

func TestCastlingKeyCombinesSides(t *testing.T) {
	if CastlingKey(chess.KingsideCastle, 0) == CastlingKey(0, chess.KingsideCastle) {
		t.Error("white and black kingside rights share a key")
	}
	all := chess.KingsideCastle | chess.QueensideCastle
	if CastlingKey(all, all) != castlingKeys[15] {
		t.Error("full rights do not map to index 15")
	}
}

func TestSequenceHash(t *testing.T) {
	a := SequenceHash([]string{"e4", "e5"})
	b := SequenceHash([]string{"e4", "e5"})
	c := SequenceHash([]string{"e4e", "5"})
	if a != b {
		t.Error("identical sequences hash differently")
	}
	if a == c {
		t.Error("sequence separator ignored")
	}
}

func TestDuplicateDetector(t *testing.T) {
	detector := NewDuplicateDetector(false, 0)
	sig := NewSignature(0xABCDEF, []string{"e4", "e5"})

	if dup, err := detector.CheckAndAdd(sig); err != nil || dup {
		t.Errorf("first game: dup=%v err=%v; want false, nil", dup, err)
	}
	if dup, _ := detector.CheckAndAdd(sig); !dup {
		t.Error("duplicate game was not detected")
	}
	if detector.DuplicateCount() != 1 {
		t.Errorf("DuplicateCount() = %d; want 1", detector.DuplicateCount())
	}
	if detector.UniqueCount() != 1 {
		t.Errorf("UniqueCount() = %d; want 1", detector.UniqueCount())
	}

	detector.Reset()
	if detector.DuplicateCount() != 0 || detector.UniqueCount() != 0 {
		t.Error("Reset() did not clear the detector")
	}
}

func TestDuplicateDetectorExactMatch(t *testing.T) {
	first := NewSignature(42, []string{"Nf3", "Nf6", "d4"})
	transposed := NewSignature(42, []string{"d4", "Nf6", "Nf3"})

	loose := NewDuplicateDetector(false, 0)
	loose.CheckAndAdd(first)
	if dup, _ := loose.CheckAndAdd(transposed); !dup {
		t.Error("loose detector should treat transposition as duplicate")
	}

	exact := NewDuplicateDetector(true, 0)
	exact.CheckAndAdd(first)
	if dup, _ := exact.CheckAndAdd(transposed); dup {
		t.Error("exact detector should not treat transposition as duplicate")
	}
}

func TestDuplicateDetectorCapacity(t *testing.T) {
	detector := NewDuplicateDetector(false, 2)
	for i := uint64(1); i <= 3; i++ {
		detector.CheckAndAdd(NewSignature(i, nil))
	}
	if !detector.IsFull() {
		t.Error("IsFull() = false; want true")
	}
	if detector.UniqueCount() != 2 {
		t.Errorf("UniqueCount() = %d; want 2", detector.UniqueCount())
	}
	if dup, _ := detector.CheckAndAdd(NewSignature(3, nil)); dup {
		t.Error("signature dropped at capacity should not be a duplicate")
	}
}

type memBackend struct {
	sigs map[uint64][]GameSignature
	err  error
}

func (m *memBackend) Signatures(hash uint64) ([]GameSignature, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.sigs[hash], nil
}

func (m *memBackend) Add(sig GameSignature) error {
	m.sigs[sig.Hash] = append(m.sigs[sig.Hash], sig)
	return nil
}

func TestDuplicateDetectorBackend(t *testing.T) {
	backend := &memBackend{sigs: make(map[uint64][]GameSignature)}
	sig := NewSignature(7, []string{"e4"})

	first := NewDuplicateDetector(false, 0)
	first.SetBackend(backend)
	if dup, _ := first.CheckAndAdd(sig); dup {
		t.Fatal("first game reported as duplicate")
	}

	second := NewDuplicateDetector(false, 0)
	second.SetBackend(backend)
	if dup, _ := second.CheckAndAdd(sig); !dup {
		t.Error("game seen by an earlier run was not detected through the backend")
	}
}

func TestDuplicateDetectorBackendError(t *testing.T) {
	boom := errors.New("boom")
	detector := NewDuplicateDetector(false, 0)
	detector.SetBackend(&memBackend{err: boom})
	if _, err := detector.CheckAndAdd(NewSignature(1, nil)); !errors.Is(err, boom) {
		t.Errorf("CheckAndAdd error = %v; want %v", err, boom)
	}
}
