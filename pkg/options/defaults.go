package options

const (
	// Specifies the default base directory where IgniteDB will store its data files.
	// If no other directory is specified during initialization, this path will be used.
	DefaultDataDir = "/var/lib/ignitedb"

	// MinFileSizeLimit is the smallest size a log file is allowed to roll
	// over at.
	MinFileSizeLimit uint64 = 64 * 1024

	// MaxFileSizeLimit is the largest size a log file is allowed to roll
	// over at.
	MaxFileSizeLimit uint64 = 4 * 1024 * 1024 * 1024

	// DefaultFileSizeLimit is the conventional roll-over threshold: 1 MiB.
	DefaultFileSizeLimit uint64 = 1024 * 1024

	// DefaultLogDirectory is the default subdirectory within the main data
	// directory where log files are stored.
	DefaultLogDirectory = "/log"

	// DefaultCompactionPolicy names the built-in policy used when none is
	// configured explicitly.
	DefaultCompactionPolicy = CompactionPolicyMaxFiles

	// DefaultMaxFiles is MaxFiles(N)'s default N.
	DefaultMaxFiles = 8

	// DefaultMaxDeadRecords is MaxDeadRecords(M)'s default M.
	DefaultMaxDeadRecords = 1024
)

// Holds the default configuration settings for an IgniteDB instance.
var defaultOptions = Options{
	DataDir: DefaultDataDir,
	LogOptions: &logOptions{
		Directory:     DefaultLogDirectory,
		FileSizeLimit: DefaultFileSizeLimit,
	},
	CompactionOptions: &CompactionOptions{
		Policy:         DefaultCompactionPolicy,
		MaxFiles:       DefaultMaxFiles,
		MaxDeadRecords: DefaultMaxDeadRecords,
	},
}

func NewDefaultOptions() Options {
	opts := defaultOptions
	logOpts := *defaultOptions.LogOptions
	compactionOpts := *defaultOptions.CompactionOptions
	opts.LogOptions = &logOpts
	opts.CompactionOptions = &compactionOpts
	return opts
}
