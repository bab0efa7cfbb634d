// Package options provides data structures and functions for configuring
// the Ignite database. It defines various parameters that control Ignite's
// storage behavior, performance, and maintenance operations, such as
// directory paths, log file sizing, and compaction policy selection.
package options

import (
	"strings"
)

// CompactionPolicyName selects one of the built-in compaction policies.
type CompactionPolicyName string

const (
	CompactionPolicyMaxFiles       CompactionPolicyName = "max_files"
	CompactionPolicyMaxDeadRecords CompactionPolicyName = "max_dead_records"
	CompactionPolicyNever          CompactionPolicyName = "never"
)

// logOptions defines configurable parameters for the log directory.
type logOptions struct {
	// FileSizeLimit is the maximum size a log file may grow to before
	// roll-over. Checked after the write that causes the overflow, so a
	// file may exceed this by one record.
	//
	//  - Default: 1 MiB
	//  - Minimum: 64 KiB
	//  - Maximum: 4 GiB
	FileSizeLimit uint64 `json:"fileSizeLimit"`

	// Directory specifies where log files are stored, relative to DataDir.
	//
	// Default: "/log"
	Directory string `json:"directory"`
}

// CompactionOptions configures which compaction policy the engine evaluates
// after every write.
type CompactionOptions struct {
	// Policy selects one of the built-in policies.
	//
	// Default: "max_files"
	Policy CompactionPolicyName `json:"policy"`

	// MaxFiles is the threshold for the max_files policy: compaction fires
	// when the number of open immutable files exceeds this.
	//
	// Default: 8
	MaxFiles int `json:"maxFiles"`

	// MaxDeadRecords is the threshold for the max_dead_records policy:
	// compaction fires when the dead-record count exceeds this.
	//
	// Default: 1024
	MaxDeadRecords int `json:"maxDeadRecords"`
}

// Options defines the configuration parameters for Ignite DB. It provides
// control over storage, performance, and maintenance aspects.
type Options struct {
	// DataDir specifies the base path where files will be stored.
	//
	// Default: "/var/lib/ignitedb"
	DataDir string `json:"dataDir"`

	// LogOptions configures log file sizing and location.
	LogOptions *logOptions `json:"logOptions"`

	// CompactionOptions configures which compaction policy is active.
	CompactionOptions *CompactionOptions `json:"compactionOptions"`
}

// OptionFunc is a function type that modifies the Ignite system's configuration.
type OptionFunc func(*Options)

// WithDefaultOptions applies a predefined set of default configuration
// values to the Options struct.
func WithDefaultOptions() OptionFunc {
	return func(o *Options) {
		opts := NewDefaultOptions()
		o.DataDir = opts.DataDir
		o.LogOptions = opts.LogOptions
		o.CompactionOptions = opts.CompactionOptions
	}
}

// WithDataDir sets the primary data directory for Ignite.
func WithDataDir(directory string) OptionFunc {
	return func(o *Options) {
		directory = strings.TrimSpace(directory)
		if directory != "" {
			o.DataDir = directory
		}
	}
}

// WithLogDir sets the directory specifically for storing log files.
func WithLogDir(directory string) OptionFunc {
	return func(o *Options) {
		directory = strings.TrimSpace(directory)
		if directory != "" {
			o.LogOptions.Directory = directory
		}
	}
}

// WithFileSizeLimit sets the roll-over threshold for log files.
func WithFileSizeLimit(size uint64) OptionFunc {
	return func(o *Options) {
		if size >= MinFileSizeLimit && size <= MaxFileSizeLimit {
			o.LogOptions.FileSizeLimit = size
		}
	}
}

// WithCompactionPolicy selects which built-in compaction policy is active.
func WithCompactionPolicy(policy CompactionPolicyName) OptionFunc {
	return func(o *Options) {
		switch policy {
		case CompactionPolicyMaxFiles, CompactionPolicyMaxDeadRecords, CompactionPolicyNever:
			o.CompactionOptions.Policy = policy
		}
	}
}

// WithMaxFiles sets the threshold N for the max_files compaction policy.
func WithMaxFiles(n int) OptionFunc {
	return func(o *Options) {
		if n > 0 {
			o.CompactionOptions.MaxFiles = n
		}
	}
}

// WithMaxDeadRecords sets the threshold M for the max_dead_records
// compaction policy.
func WithMaxDeadRecords(m int) OptionFunc {
	return func(o *Options) {
		if m > 0 {
			o.CompactionOptions.MaxDeadRecords = m
		}
	}
}
