package compaction

import (
	"github.com/iamNilotpal/ignitedb/internal/codec"
	"github.com/iamNilotpal/ignitedb/internal/index"
	"github.com/iamNilotpal/ignitedb/internal/logstore"
	ierrors "github.com/iamNilotpal/ignitedb/pkg/errors"
	"go.uber.org/zap"
)

// rewrite records where a key's entry must end up after the sweep below
// finishes, since the index can't be mutated while Range is iterating it.
type rewrite struct {
	key    string
	offset int64
}

// Run executes the compaction routine: it rewrites every live record
// reachable from an immutable-file index entry into a single new file and
// unlinks the old immutable files. It does not touch the dead-record
// counter; the caller resets that after Run succeeds. The precondition is that at least one immutable file is open;
// Run is a no-op if not. Run is not re-entrant and assumes single-writer
// discipline, matching the engine's synchronous, non-concurrent access
// pattern.
func Run(dir *logstore.Directory, idx *index.Index, log *zap.SugaredLogger) error {
	if dir.ImmutableCount() == 0 {
		return nil
	}

	newFile, err := logstore.OpenFile(dir.Dir(), logstore.NewCompactedName())
	if err != nil {
		return err
	}

	var rewrites []rewrite
	var rangeErr error

	idx.Range(func(key string, ptr index.RecordPointer) {
		if rangeErr != nil || ptr.FileSlot == logstore.ActiveSlot {
			return
		}

		f, ok := dir.ImmutableAt(ptr.FileSlot)
		if !ok {
			rangeErr = ierrors.NewEngineError(nil, ierrors.ErrorCodeCorruptLog, "index points at unknown file slot").
				WithKey(key).WithOperation("Compact")
			return
		}

		rec, err := f.ReadAt(ptr.FileOffset)
		if err != nil {
			rangeErr = err
			return
		}
		if rec.Kind != codec.KindSet {
			rangeErr = ierrors.NewPolicyViolationError("Compact", nil).WithKey(key)
			return
		}

		offset, err := newFile.Append(rec)
		if err != nil {
			rangeErr = err
			return
		}

		rewrites = append(rewrites, rewrite{key: key, offset: offset})
	})

	if rangeErr != nil {
		newFile.Unlink()
		return rangeErr
	}

	for _, rw := range rewrites {
		idx.Set(rw.key, index.RecordPointer{FileSlot: 0, FileOffset: rw.offset})
	}

	if err := dir.ReplaceImmutables(newFile); err != nil {
		return err
	}

	log.Infow("compaction complete", "records_rewritten", len(rewrites))
	return nil
}
