package postore

import (
	"sync"
	"testing"

	"github.com/gomatetb/matetb/internal/chessrules"
)

func key(b byte) chessrules.PackedBoard {
	var k chessrules.PackedBoard
	k[0] = b
	return k
}

func TestInsertIfAbsentDeduplicates(t *testing.T) {
	var s = New(4)
	var k = key(1)

	var newCount, existingCount int
	var firstIdx uint32

	var isNew = s.InsertIfAbsent(k, func(idx uint32) {
		newCount++
		firstIdx = idx
	}, func(idx uint32) {
		existingCount++
	})
	if !isNew || newCount != 1 {
		t.Fatalf("first insert: isNew=%v newCount=%d", isNew, newCount)
	}

	var isNewAgain = s.InsertIfAbsent(k, func(idx uint32) {
		newCount++
	}, func(idx uint32) {
		existingCount++
		if idx != firstIdx {
			t.Errorf("onExisting got index %d, want %d", idx, firstIdx)
		}
	})
	if isNewAgain || existingCount != 1 || newCount != 1 {
		t.Fatalf("second insert: isNewAgain=%v newCount=%d existingCount=%d", isNewAgain, newCount, existingCount)
	}
}

func TestInsertIfAbsentConcurrentDistinctKeys(t *testing.T) {
	var s = New(8)
	const n = 2000
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(b byte) {
			defer wg.Done()
			s.InsertIfAbsent(key(b), nil, nil)
		}(byte(i % 256))
	}
	wg.Wait()
	if s.Len() != 256 {
		t.Fatalf("Len() = %d, want 256 (byte(i%%256) only has 256 distinct keys)", s.Len())
	}
}

func TestLenIsBijection(t *testing.T) {
	var s = New(4)
	var seen = make(map[uint32]bool)
	for i := 0; i < 500; i++ {
		s.InsertIfAbsent(key(byte(i)), func(idx uint32) {
			if seen[idx] {
				t.Fatalf("index %d assigned twice", idx)
			}
			seen[idx] = true
		}, nil)
	}
	if s.Len() != len(seen) {
		t.Fatalf("Len() = %d, want %d", s.Len(), len(seen))
	}
	for i := uint32(0); i < uint32(s.Len()); i++ {
		if !seen[i] {
			t.Fatalf("index %d never assigned, bijection violated", i)
		}
	}
}
