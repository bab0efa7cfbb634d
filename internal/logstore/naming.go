// Package logstore implements the on-disk log file and log directory: C3
// and C4 of the storage engine. File names carry a fixed-width RFC-3339-style
// UTC timestamp so that lexicographic order matches creation order; a
// reserved suffix identifies files belonging to this engine and distinguishes
// its directory from one managed by the baseline store.
package logstore

import (
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"
)

const (
	// EngineSuffix is the reserved file extension identifying a log file
	// belonging to this engine.
	EngineSuffix = ".ignite"

	// CompactedPrefix is prepended to a compaction output's name so it
	// sorts strictly before any file created after it.
	CompactedPrefix = "0000-"

	// timestampLayout is a fixed-width RFC-3339 variant: the nanosecond
	// component is always zero-padded to 9 digits (rather than trimmed, as
	// time.RFC3339Nano does), which is required for lexicographic order to
	// match chronological order.
	timestampLayout = "2006-01-02T15:04:05.000000000Z"
)

// baselineMarkers are the file names the external baseline store (the
// embedded B-tree backend used for benchmark comparisons) is known to
// create at the root of its data directory. Their presence signals that a
// directory belongs to that store, not this engine.
var baselineMarkers = []string{"conf", "db"}

// nameCounter disambiguates file names created within the same
// nanosecond, which a fast clock can otherwise produce back to back.
var nameCounter uint64

// newTimestamp returns a fixed-width UTC timestamp suitable for a file name,
// monotonically increasing across calls within a process even if wall-clock
// resolution doesn't change between them.
func newTimestamp() string {
	ts := time.Now().UTC().Format(timestampLayout)
	seq := atomic.AddUint64(&nameCounter, 1)
	if seq == 1 {
		return ts
	}
	// Extremely unlikely in practice (it takes multiple file creations
	// within the same nanosecond), but append a disambiguator so names
	// never collide under the lexicographic sort the directory relies on.
	return ts[:len(ts)-1] + "-" + itoa(seq) + "Z"
}

func itoa(n uint64) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}

// NewActiveName generates a file name for a fresh active (or, once rolled
// over, immutable) log file.
func NewActiveName() string {
	return newTimestamp() + EngineSuffix
}

// NewCompactedName generates a file name for a compaction output: it sorts
// before any file produced by NewActiveName from this point forward.
func NewCompactedName() string {
	return CompactedPrefix + newTimestamp() + EngineSuffix
}

// IsEngineFile reports whether name belongs to this engine.
func IsEngineFile(name string) bool {
	return strings.HasSuffix(name, EngineSuffix)
}

// IsCompactedName reports whether name is a compaction output.
func IsCompactedName(name string) bool {
	return strings.HasPrefix(name, CompactedPrefix)
}

// IsBaselineMarker reports whether name is one of the baseline store's
// known marker files.
func IsBaselineMarker(name string) bool {
	for _, marker := range baselineMarkers {
		if name == marker {
			return true
		}
	}
	return false
}

// JoinDir joins a directory and a file name using the OS path separator.
func JoinDir(dir, name string) string {
	return filepath.Join(dir, name)
}
