// Package postore implements the position store: a deduplicating
// concurrent map from packed board to dense node index, sharded into
// many independently-locked shards so insert-if-absent never contends on
// one global lock.
package postore

import (
	"hash/fnv"
	"sync"
	"sync/atomic"

	"github.com/gomatetb/matetb/internal/chessrules"
)

type shard struct {
	mu    sync.Mutex
	items map[chessrules.PackedBoard]uint32
}

// Store is a sharded concurrent map from PackedBoard to a dense,
// monotonically-assigned uint32 index. The zero value is not usable;
// construct with New.
type Store struct {
	shards []shard
	count  uint32 // atomic: next index to allocate
}

// minShards is the floor on shard count, chosen to actually remove lock
// contention at the worker counts this generator runs with.
const minShards = 16

// New builds a Store sized for concurrency workers. Shard count is the
// next power of two at or above max(minShards, concurrency*4).
func New(concurrency int) *Store {
	var want = concurrency * 4
	if want < minShards {
		want = minShards
	}
	var n = 1
	for n < want {
		n <<= 1
	}
	return &Store{shards: make([]shard, n)}
}

func (s *Store) shardFor(key chessrules.PackedBoard) *shard {
	var h = fnv.New64a()
	h.Write(key[:])
	var idx = h.Sum64() & uint64(len(s.shards)-1)
	return &s.shards[idx]
}

// Lookup returns the index stored for key without inserting it, used by
// the graph builder and PV reconstruction, both of which must never grow
// the store after enumeration has frozen its size.
func (s *Store) Lookup(key chessrules.PackedBoard) (uint32, bool) {
	var sh = s.shardFor(key)
	sh.mu.Lock()
	idx, ok := sh.items[key]
	sh.mu.Unlock()
	return idx, ok
}

// InsertIfAbsent looks up key; if absent, allocates a fresh index via
// atomic fetch-and-increment, stores it, and calls onNew(index). If
// present, calls onExisting(value). Returns true iff a new insertion
// occurred. Safe for concurrent use across different keys without a
// single global lock; concurrent calls for the SAME key serialize on
// that key's shard lock.
func (s *Store) InsertIfAbsent(key chessrules.PackedBoard, onNew func(index uint32), onExisting func(index uint32)) bool {
	var sh = s.shardFor(key)
	sh.mu.Lock()
	if sh.items == nil {
		sh.items = make(map[chessrules.PackedBoard]uint32)
	}
	if idx, ok := sh.items[key]; ok {
		sh.mu.Unlock()
		if onExisting != nil {
			onExisting(idx)
		}
		return false
	}
	var idx = atomic.AddUint32(&s.count, 1) - 1
	sh.items[key] = idx
	sh.mu.Unlock()
	if onNew != nil {
		onNew(idx)
	}
	return true
}

// Len returns the number of distinct keys inserted so far. Safe to call
// once no insertions are in flight (after enumeration completes).
func (s *Store) Len() int {
	return int(atomic.LoadUint32(&s.count))
}

// Range calls f once for every stored (key, index) pair across all
// shards. f must not call back into InsertIfAbsent; Range is meant for
// the read-only graph-building and output phases after enumeration has
// frozen the store's size.
func (s *Store) Range(f func(key chessrules.PackedBoard, index uint32)) {
	for i := range s.shards {
		var sh = &s.shards[i]
		sh.mu.Lock()
		for k, v := range sh.items {
			f(k, v)
		}
		sh.mu.Unlock()
	}
}

// RangeShards calls f once for every shard with a snapshot-safe iterator
// restricted to that shard, letting callers fan shard iteration out
// across workers (graph building parallelizes over the store's own
// key/value pairs, one goroutine per shard range).
func (s *Store) RangeShards(f func(shardIndex int, items map[chessrules.PackedBoard]uint32)) {
	for i := range s.shards {
		var sh = &s.shards[i]
		sh.mu.Lock()
		f(i, sh.items)
		sh.mu.Unlock()
	}
}

// NumShards returns the shard count, for callers that want to fan work
// out by shard instead of by Range's single-goroutine walk.
func (s *Store) NumShards() int {
	return len(s.shards)
}
