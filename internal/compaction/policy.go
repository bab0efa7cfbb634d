// Package compaction implements the pluggable compaction policy and the
// routine that reclaims space by rewriting live records from immutable
// files into a single fresh file.
package compaction

// Context carries the state a Policy inspects to decide whether compaction
// should run right now.
type Context struct {
	// OpenImmutableFiles is the number of immutable files currently open
	// in the log directory.
	OpenImmutableFiles int

	// DeadCommands is the number of persisted records superseded by a
	// later write for the same key since the last compaction.
	DeadCommands int
}

// Policy is the single-method capability every compaction policy must
// implement.
type Policy interface {
	ShouldCompact(ctx Context) bool
}

// MaxFiles fires once the number of open immutable files exceeds N.
type MaxFiles struct {
	N int
}

func (p MaxFiles) ShouldCompact(ctx Context) bool {
	return ctx.OpenImmutableFiles > p.N
}

// MaxDeadRecords fires once the dead-record count exceeds M.
type MaxDeadRecords struct {
	M int
}

func (p MaxDeadRecords) ShouldCompact(ctx Context) bool {
	return ctx.DeadCommands > p.M
}

// Never never fires. Used for benchmarks that want to measure write
// throughput without compaction overhead.
type Never struct{}

func (Never) ShouldCompact(Context) bool { return false }

const (
	// DefaultMaxFiles is MaxFiles' conventional default N.
	DefaultMaxFiles = 8

	// DefaultMaxDeadRecords is MaxDeadRecords' conventional default M.
	DefaultMaxDeadRecords = 1024
)
