package hashing

import (
	"testing"
)

var benchMoveLists = map[string][]string{
	"Short":  {"e4", "e5", "Nf3", "Nc6"},
	"Medium": {"e4", "c5", "Nf3", "d6", "d4", "cxd4", "Nxd4", "Nf6", "Nc3", "a6", "Be3", "e5", "Nb3", "Be6", "f3", "Be7"},
}

func BenchmarkSequenceHash(b *testing.B) {
	for name, moves := range benchMoveLists {
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				SequenceHash(moves)
			}
		})
	}
}

func BenchmarkDuplicateDetector(b *testing.B) {
	detector := NewDuplicateDetector(false, 0)
	sigs := make([]GameSignature, 1000)
	for i := range sigs {
		sigs[i] = NewSignature(uint64(i)*0x9E3779B97F4A7C15, benchMoveLists["Short"])
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		detector.CheckAndAdd(sigs[i%len(sigs)])
	}
}
