// Package logger builds the structured loggers used across every Ignite
// subsystem. It centralizes zap construction so that engine, index,
// compaction, and server code all emit logs with the same encoding, level,
// and base fields. The client package does not log.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a production-style, JSON-encoded *zap.SugaredLogger tagged with
// the given service name. It favors zap's production defaults (ISO8601
// timestamps, stacktraces on error) over development niceties since this is
// the logger shipped in server and client binaries alike.
func New(service string) *zap.SugaredLogger {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	log, err := cfg.Build()
	if err != nil {
		// Building the production config only fails on a malformed encoder
		// config, which never happens for the static config above.
		log = zap.NewNop()
	}

	return log.Named(service).Sugar()
}

// NewDevelopment builds a human-readable, colorized logger for local runs and
// tests where structured JSON output is noise rather than signal.
func NewDevelopment(service string) *zap.SugaredLogger {
	log, err := zap.NewDevelopment()
	if err != nil {
		log = zap.NewNop()
	}
	return log.Named(service).Sugar()
}
