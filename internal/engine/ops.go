package engine

import (
	"github.com/iamNilotpal/ignitedb/internal/codec"
	"github.com/iamNilotpal/ignitedb/internal/index"
	"github.com/iamNilotpal/ignitedb/internal/logstore"
	ierrors "github.com/iamNilotpal/ignitedb/pkg/errors"
)

// Set encodes a Set(key,value) record, appends it to the active file, and
// updates the index to point at it. If the write pushes the active file
// past the configured size limit, the engine rolls over to a new active
// file and rewrites every index entry pointing at the old one. Compaction
// runs synchronously afterward if the active policy fires.
func (e *Engine) Set(key, value string) error {
	e.writeMu.Lock()
	defer e.writeMu.Unlock()

	active := e.dir.ActiveFile()
	offset, err := active.Append(codec.NewSet(key, value))
	if err != nil {
		return err
	}

	prev, existed := e.index.Set(key, index.RecordPointer{FileSlot: logstore.ActiveSlot, FileOffset: offset})
	if existed && prev.FileSlot != logstore.ActiveSlot {
		e.bumpDeadCount(1)
	}

	if active.Len() > int64(e.options.LogOptions.FileSizeLimit) {
		newSlot, err := e.dir.RollOver()
		if err != nil {
			return err
		}
		e.index.RewriteSlot(logstore.ActiveSlot, newSlot)
	}

	return e.maybeCompact()
}

// Get looks up key in the index and, on a hit, reads the record at the
// stored location. The record must decode as Set(key,_); anything else is a
// policy violation. Returns ("", false, nil) on a miss.
func (e *Engine) Get(key string) (string, bool, error) {
	ptr, ok := e.index.Get(key)
	if !ok {
		return "", false, nil
	}

	f, ok := e.dir.FileAt(ptr.FileSlot)
	if !ok {
		return "", false, ierrors.NewEngineError(nil, ierrors.ErrorCodeCorruptLog, "index points at unknown file slot").
			WithKey(key).WithOperation("Get")
	}

	rec, err := f.ReadAt(ptr.FileOffset)
	if err != nil {
		return "", false, err
	}
	if rec.Kind != codec.KindSet || rec.Key != key {
		return "", false, ierrors.NewPolicyViolationError("Get", nil).WithKey(key)
	}

	return rec.Value, true, nil
}

// Remove appends a Remove(key) record and deletes the index entry. Fails
// with a key-not-found EngineError, without writing anything, if the key is
// already absent. Compaction runs synchronously afterward if the active
// policy fires.
func (e *Engine) Remove(key string) error {
	e.writeMu.Lock()
	defer e.writeMu.Unlock()

	if _, ok := e.index.Get(key); !ok {
		return ierrors.NewKeyNotFoundEngineError(key)
	}

	active := e.dir.ActiveFile()
	if _, err := active.Append(codec.NewRemove(key)); err != nil {
		return err
	}

	prev, existed := e.index.Delete(key)
	if existed && prev.FileSlot != logstore.ActiveSlot {
		e.bumpDeadCount(1)
	}

	if active.Len() > int64(e.options.LogOptions.FileSizeLimit) {
		newSlot, err := e.dir.RollOver()
		if err != nil {
			return err
		}
		e.index.RewriteSlot(logstore.ActiveSlot, newSlot)
	}

	return e.maybeCompact()
}
