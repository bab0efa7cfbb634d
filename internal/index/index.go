// Package index provides the in-memory hash table implementation for the
// ignitedb key-value store. This package embodies the core Bitcask
// architectural principle: keep every key in memory with minimal metadata
// while the values themselves live on disk.
//
// The index enables O(1) key lookups through a lock-striped hash table
// while keeping storage overhead minimal, so the system can handle datasets
// significantly larger than available RAM while maintaining excellent read
// performance.
package index

import (
	stdErrors "errors"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/iamNilotpal/ignitedb/pkg/errors"
	"go.uber.org/zap"
)

var (
	ErrIndexClosed = stdErrors.New("operation failed: cannot access closed index")
)

// New creates and initializes a new Index instance. The returned Index is
// immediately ready for concurrent use.
func New(config *Config) (*Index, error) {
	if config == nil || config.Logger == nil {
		return nil, errors.NewValidationError(
			nil, errors.ErrorCodeInvalidInput, "Index configuration is required",
		).WithField("config").WithRule("required").WithProvided(config)
	}

	idx := &Index{log: config.Logger}
	for i := range idx.shards {
		idx.shards[i] = &shard{entries: make(map[string]RecordPointer, 64)}
	}
	return idx, nil
}

// shardFor returns the shard responsible for key.
func (idx *Index) shardFor(key string) *shard {
	h := xxhash.Sum64String(key)
	return idx.shards[h%shardCount]
}

// Get looks up key and reports whether it is present.
func (idx *Index) Get(key string) (RecordPointer, bool) {
	s := idx.shardFor(key)
	s.mu.RLock()
	defer s.mu.RUnlock()
	ptr, ok := s.entries[key]
	return ptr, ok
}

// Set inserts or overwrites the entry for key, returning the previous
// pointer and whether one existed.
func (idx *Index) Set(key string, ptr RecordPointer) (RecordPointer, bool) {
	s := idx.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()
	prev, existed := s.entries[key]
	s.entries[key] = ptr
	return prev, existed
}

// Delete removes the entry for key, returning the removed pointer and
// whether one existed.
func (idx *Index) Delete(key string) (RecordPointer, bool) {
	s := idx.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()
	prev, existed := s.entries[key]
	if existed {
		delete(s.entries, key)
	}
	return prev, existed
}

// Len returns the total number of live keys across all shards.
func (idx *Index) Len() int {
	total := 0
	for _, s := range idx.shards {
		s.mu.RLock()
		total += len(s.entries)
		s.mu.RUnlock()
	}
	return total
}

// Range calls fn once for every entry in the index. fn must not call back
// into the Index; Range holds each shard's lock only for the duration of
// that shard's iteration, so entries in other shards may change
// concurrently with the call.
func (idx *Index) Range(fn func(key string, ptr RecordPointer)) {
	for _, s := range idx.shards {
		s.mu.RLock()
		for k, v := range s.entries {
			fn(k, v)
		}
		s.mu.RUnlock()
	}
}

// RewriteSlot updates every entry whose FileSlot equals from to to instead.
// Used after roll-over (active -> newly-immutable slot). Compaction does not
// use it: it sets each rewritten key's new pointer individually.
func (idx *Index) RewriteSlot(from, to int) {
	var wg sync.WaitGroup
	wg.Add(len(idx.shards))
	for _, s := range idx.shards {
		go func(s *shard) {
			defer wg.Done()
			s.mu.Lock()
			for k, v := range s.entries {
				if v.FileSlot == from {
					v.FileSlot = to
					s.entries[k] = v
				}
			}
			s.mu.Unlock()
		}(s)
	}
	wg.Wait()
}

// Close gracefully shuts down the Index, releasing all entries. A second
// Close returns ErrIndexClosed; Get, Set, Delete and Range do not check
// whether the Index has been closed.
func (idx *Index) Close() error {
	if !idx.closed.CompareAndSwap(false, true) {
		return ErrIndexClosed
	}

	idx.log.Infow("closing index")

	for _, s := range idx.shards {
		s.mu.Lock()
		clear(s.entries)
		s.mu.Unlock()
	}

	idx.log.Infow("index closed")
	return nil
}
