// Package engine provides the core database engine implementation for the
// ignitedb storage system.
//
// The engine is the central coordinator for all key/value operations. It
// orchestrates three subsystems:
//   - index: the in-memory key -> (file, offset) hash table.
//   - logstore: the append-only log file and log directory.
//   - compaction: the pluggable policy deciding when to reclaim space, and
//     the routine that does it.
//
// Operations are synchronous and single-threaded by design: one logical
// write happens at a time, matching the single-writer discipline the
// on-disk format requires.
package engine

import (
	"errors"
	"sync"
	"sync/atomic"

	"github.com/iamNilotpal/ignitedb/internal/compaction"
	"github.com/iamNilotpal/ignitedb/internal/index"
	"github.com/iamNilotpal/ignitedb/internal/logstore"
	"github.com/iamNilotpal/ignitedb/pkg/filesys"
	"github.com/iamNilotpal/ignitedb/pkg/options"
	"go.uber.org/zap"
)

var (
	// ErrEngineClosed is returned when attempting to perform operations on a closed engine.
	ErrEngineClosed = errors.New("operation failed: cannot access closed engine")
)

// Engine is the main database engine that coordinates the index, the log
// directory, and compaction. It is the primary interface for Set/Get/Remove
// operations and manages the lifecycle of all internal components.
type Engine struct {
	options *options.Options
	log     *zap.SugaredLogger
	closed  atomic.Bool

	// writeMu serializes Set/Remove and the roll-over/compaction they may
	// trigger, matching the single-writer discipline the on-disk format
	// requires. The index's own sharded locking covers concurrent reads.
	writeMu sync.Mutex

	index     *index.Index
	dir       *logstore.Directory
	policy    compaction.Policy
	deadMu    sync.Mutex
	deadCount int
}

// Config holds all the parameters needed to initialize a new Engine instance.
type Config struct {
	Options *options.Options
	Logger  *zap.SugaredLogger
}

// Open initializes a new Engine instance over the configured data directory:
// it opens or creates the log directory, builds the index, hydrates it by
// replaying every record in every file in creation order, and wires the
// configured compaction policy.
func Open(config *Config) (*Engine, error) {
	if config == nil || config.Options == nil || config.Logger == nil {
		return nil, ErrEngineClosed
	}

	logDir := config.Options.DataDir + config.Options.LogOptions.Directory
	if err := filesys.CreateDir(logDir, 0o755, true); err != nil {
		return nil, err
	}

	dir, err := logstore.Open(logDir)
	if err != nil {
		return nil, err
	}

	idx, err := index.New(&index.Config{Logger: config.Logger})
	if err != nil {
		dir.Close()
		return nil, err
	}

	e := &Engine{
		options: config.Options,
		log:     config.Logger,
		index:   idx,
		dir:     dir,
		policy:  buildPolicy(config.Options.CompactionOptions),
	}

	if err := e.hydrate(); err != nil {
		idx.Close()
		dir.Close()
		return nil, err
	}

	return e, nil
}

// Close gracefully shuts down the engine, closing the index and every open
// log file handle.
func (e *Engine) Close() error {
	if !e.closed.CompareAndSwap(false, true) {
		return ErrEngineClosed
	}

	e.log.Infow("closing engine")

	if err := e.index.Close(); err != nil {
		return err
	}
	return e.dir.Close()
}
