package index

import (
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

// shardCount is the number of independent lock-striped shards the index is
// split into. Each shard guards its own map and mutex, so concurrent
// lookups against different keys rarely contend on the same lock.
const shardCount = 32

// RecordPointer contains the minimum metadata required to locate a record on
// disk: which file slot holds it, and the byte offset within that file where
// its header begins. This is the primary memory consumer in the system, so
// it carries nothing beyond what a read needs.
type RecordPointer struct {
	// FileOffset is the byte position within FileSlot's file where the
	// record's header begins.
	FileOffset int64

	// FileSlot identifies which file holds the record: logstore.ActiveSlot
	// for the active file, or an index into the immutable file list
	// otherwise. Roll-over and compaction rewrite this field en masse when
	// a file changes identity (active -> immutable, or immutable -> slot 0
	// of a fresh compacted file).
	FileSlot int
}

// shard is one lock-striped partition of the index.
type shard struct {
	mu      sync.RWMutex
	entries map[string]RecordPointer
}

// Index is the in-memory hash table mapping every live key to the location
// of the record that last defined its value. It keeps all keys in memory
// for O(1) lookup while storing only the tiny RecordPointer per key, so the
// system can hold datasets much larger than RAM. Lookups and updates are
// sharded by xxhash of the key across shardCount independent locks to keep
// contention low under concurrent access.
type Index struct {
	log    *zap.SugaredLogger
	shards [shardCount]*shard
	closed atomic.Bool
}

// Config encapsulates the configuration parameters required to initialize
// an Index.
type Config struct {
	Logger *zap.SugaredLogger // Provides structured logging capabilities for Index operations.
}
