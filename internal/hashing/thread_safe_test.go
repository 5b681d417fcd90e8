package hashing

import (
	"sync"
	"testing"
)

func TestThreadSafeDuplicateDetector_Concurrent(t *testing.T) {
	detector := NewThreadSafeDuplicateDetector(false, 0)
	sig := NewSignature(0x1234, []string{"d4", "d5"})

	const numGames = 100
	const numWorkers = 10
	gamesPerWorker := numGames / numWorkers

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < gamesPerWorker; j++ {
				if _, err := detector.CheckAndAdd(sig); err != nil {
					t.Error(err)
				}
			}
		}()
	}
	wg.Wait()

	if detector.DuplicateCount() != numGames-1 {
		t.Errorf("DuplicateCount() = %d; want %d", detector.DuplicateCount(), numGames-1)
	}
	if detector.UniqueCount() != 1 {
		t.Errorf("UniqueCount() = %d; want 1", detector.UniqueCount())
	}
}

func TestThreadSafeDuplicateDetector_LoadFromDetector(t *testing.T) {
	src := NewDuplicateDetector(false, 0)
	src.CheckAndAdd(NewSignature(1, nil))
	src.CheckAndAdd(NewSignature(2, nil))

	detector := NewThreadSafeDuplicateDetector(false, 0)
	detector.LoadFromDetector(src)
	if detector.UniqueCount() != 2 {
		t.Errorf("UniqueCount() = %d; want 2", detector.UniqueCount())
	}
	if dup, _ := detector.CheckAndAdd(NewSignature(2, nil)); !dup {
		t.Error("loaded signature not detected as duplicate")
	}
}

func TestThreadSafeDuplicateDetector_IsFull(t *testing.T) {
	detector := NewThreadSafeDuplicateDetector(false, 1)
	if detector.IsFull() {
		t.Error("empty detector reports full")
	}
	detector.CheckAndAdd(NewSignature(1, nil))
	if !detector.IsFull() {
		t.Error("IsFull() = false after reaching capacity")
	}
}
