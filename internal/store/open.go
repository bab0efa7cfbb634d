package store

import (
	"os"

	"github.com/iamNilotpal/ignitedb/internal/baseline"
	"github.com/iamNilotpal/ignitedb/internal/engine"
	"github.com/iamNilotpal/ignitedb/internal/logstore"
	ierrors "github.com/iamNilotpal/ignitedb/pkg/errors"
	"github.com/iamNilotpal/ignitedb/pkg/filesys"
	"github.com/iamNilotpal/ignitedb/pkg/options"
	"go.uber.org/zap"
)

// Name identifies which backend a caller wants, or leaves the choice to
// whatever a prior run already committed to the data directory.
type Name string

const (
	Primary  Name = "kvs"
	Baseline Name = "sled"
	Auto     Name = ""
)

// Open inspects the log directory for marker files left by a previous run
// and opens the requested backend, failing with an EngineMismatch error if
// the directory is already owned by the other one. An empty requested name
// defers to whatever the directory already contains, defaulting to the
// primary engine for a fresh directory.
func Open(requested Name, opts *options.Options, log *zap.SugaredLogger) (Store, error) {
	logDir := opts.DataDir + opts.LogOptions.Directory
	if err := filesys.CreateDir(logDir, 0o755, true); err != nil {
		return nil, err
	}

	hasEngineFiles, hasBaselineMarker, err := inspect(logDir)
	if err != nil {
		return nil, err
	}

	want := requested
	if want == Auto {
		if hasBaselineMarker && !hasEngineFiles {
			want = Baseline
		} else {
			want = Primary
		}
	}

	switch want {
	case Primary:
		if hasBaselineMarker {
			return nil, ierrors.NewEngineMismatchError(logDir, string(Primary))
		}
		return engine.Open(&engine.Config{Options: opts, Logger: log})

	case Baseline:
		if hasEngineFiles {
			return nil, ierrors.NewEngineMismatchError(logDir, string(Baseline))
		}
		return baseline.Open(logDir)

	default:
		return nil, ierrors.NewConfigurationValidationError("engine", "unknown engine: "+string(requested))
	}
}

// inspect reports whether logDir already contains files owned by the
// primary engine, by the baseline store, or neither (a fresh directory).
func inspect(logDir string) (hasEngineFiles, hasBaselineMarker bool, err error) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return false, false, ierrors.NewStorageError(err, ierrors.ErrorCodeIO, "read log directory").WithPath(logDir)
	}

	for _, entry := range entries {
		name := entry.Name()
		switch {
		case logstore.IsEngineFile(name):
			hasEngineFiles = true
		case logstore.IsBaselineMarker(name):
			hasBaselineMarker = true
		}
	}

	return hasEngineFiles, hasBaselineMarker, nil
}
