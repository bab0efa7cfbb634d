package engine

import (
	"github.com/iamNilotpal/ignitedb/internal/compaction"
	"github.com/iamNilotpal/ignitedb/pkg/options"
)

// buildPolicy translates the configured CompactionOptions into a concrete
// compaction.Policy.
func buildPolicy(opts *options.CompactionOptions) compaction.Policy {
	if opts == nil {
		return compaction.MaxFiles{N: compaction.DefaultMaxFiles}
	}

	switch opts.Policy {
	case options.CompactionPolicyMaxDeadRecords:
		return compaction.MaxDeadRecords{M: opts.MaxDeadRecords}
	case options.CompactionPolicyNever:
		return compaction.Never{}
	default:
		return compaction.MaxFiles{N: opts.MaxFiles}
	}
}

// bumpDeadCount adjusts the dead-record counter by delta, guarding it with
// its own mutex since it's read and written outside of writeMu's hold in
// hydration.
func (e *Engine) bumpDeadCount(delta int) {
	e.deadMu.Lock()
	e.deadCount += delta
	e.deadMu.Unlock()
}

func (e *Engine) resetDeadCount() {
	e.deadMu.Lock()
	e.deadCount = 0
	e.deadMu.Unlock()
}

func (e *Engine) currentDeadCount() int {
	e.deadMu.Lock()
	defer e.deadMu.Unlock()
	return e.deadCount
}

// maybeCompact evaluates the active compaction policy and runs the
// compaction routine synchronously if it fires. Must be called with
// writeMu held.
func (e *Engine) maybeCompact() error {
	ctx := compaction.Context{
		OpenImmutableFiles: e.dir.ImmutableCount(),
		DeadCommands:       e.currentDeadCount(),
	}

	if !e.policy.ShouldCompact(ctx) {
		return nil
	}

	if err := compaction.Run(e.dir, e.index, e.log); err != nil {
		return err
	}
	e.resetDeadCount()
	return nil
}
