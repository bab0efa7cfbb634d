package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/iamNilotpal/ignitedb/pkg/logger"
	"github.com/iamNilotpal/ignitedb/pkg/options"
	"github.com/stretchr/testify/require"
)

func newTestOptions(t *testing.T) *options.Options {
	t.Helper()
	opts := options.NewDefaultOptions()
	opts.DataDir = t.TempDir()
	opts.LogOptions.Directory = ""
	return &opts
}

// S6 — engine mismatch.
func TestOpenEngineMismatch(t *testing.T) {
	opts := newTestOptions(t)
	require.NoError(t, os.WriteFile(filepath.Join(opts.DataDir, "conf"), []byte{}, 0o644))

	log := logger.NewDevelopment("store-test")

	_, err := Open(Primary, opts, log)
	require.Error(t, err)

	backend, err := Open(Baseline, opts, log)
	require.NoError(t, err)
	require.NoError(t, backend.Close())
}

func TestOpenAutoDefaultsToPrimaryOnFreshDirectory(t *testing.T) {
	opts := newTestOptions(t)
	log := logger.NewDevelopment("store-test")

	backend, err := Open(Auto, opts, log)
	require.NoError(t, err)
	defer backend.Close()

	require.NoError(t, backend.Set("k", "v"))
	v, ok, err := backend.Get("k")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "v", v)
}
