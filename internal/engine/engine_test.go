package engine

import (
	"strings"
	"testing"

	"github.com/iamNilotpal/ignitedb/pkg/logger"
	"github.com/iamNilotpal/ignitedb/pkg/options"
	ierrors "github.com/iamNilotpal/ignitedb/pkg/errors"
	"github.com/stretchr/testify/require"
)

func newTestOptions(t *testing.T) *options.Options {
	t.Helper()
	opts := options.NewDefaultOptions()
	opts.DataDir = t.TempDir()
	opts.LogOptions.Directory = ""
	return &opts
}

func openTestEngine(t *testing.T, opts *options.Options) *Engine {
	t.Helper()
	e, err := Open(&Config{Options: opts, Logger: logger.NewDevelopment("engine-test")})
	require.NoError(t, err)
	return e
}

// S1 — basic round trip.
func TestBasicRoundTrip(t *testing.T) {
	e := openTestEngine(t, newTestOptions(t))
	defer e.Close()

	require.NoError(t, e.Set("foo", "bar"))

	v, ok, err := e.Get("foo")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "bar", v)

	require.NoError(t, e.Remove("foo"))

	_, ok, err = e.Get("foo")
	require.NoError(t, err)
	require.False(t, ok)

	err = e.Remove("foo")
	require.Error(t, err)
	ee, ok := ierrors.AsEngineError(err)
	require.True(t, ok)
	require.Equal(t, ierrors.ErrorCodeKeyNotFound, ee.Code())
}

// S2 — overwrite.
func TestOverwrite(t *testing.T) {
	e := openTestEngine(t, newTestOptions(t))
	defer e.Close()

	require.NoError(t, e.Set("k", "v1"))
	require.NoError(t, e.Set("k", "v2"))

	v, ok, err := e.Get("k")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "v2", v)
}

// S3 — restart recovery.
func TestRestartRecovery(t *testing.T) {
	opts := newTestOptions(t)

	e1 := openTestEngine(t, opts)
	require.NoError(t, e1.Set("a", "1"))
	require.NoError(t, e1.Set("b", "2"))
	require.NoError(t, e1.Remove("a"))
	require.NoError(t, e1.Close())

	e2 := openTestEngine(t, opts)
	defer e2.Close()

	_, ok, err := e2.Get("a")
	require.NoError(t, err)
	require.False(t, ok)

	v, ok, err := e2.Get("b")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "2", v)
}

// S4 — roll-over.
func TestRollOverOnSizeLimit(t *testing.T) {
	opts := newTestOptions(t)
	opts.LogOptions.FileSizeLimit = options.MinFileSizeLimit

	e := openTestEngine(t, opts)
	defer e.Close()

	value := strings.Repeat("x", int(options.MinFileSizeLimit/2))
	keys := []string{"k1", "k2", "k3"}
	for _, k := range keys {
		require.NoError(t, e.Set(k, value))
	}

	require.Equal(t, 2, e.dir.ImmutableCount()+1)
	require.Equal(t, 1, e.dir.ImmutableCount())

	for _, k := range keys {
		v, ok, err := e.Get(k)
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, value, v)
	}
}

// S5 — compaction under MaxFiles.
func TestCompactionFiresUnderMaxFiles(t *testing.T) {
	opts := newTestOptions(t)
	opts.LogOptions.FileSizeLimit = options.MinFileSizeLimit
	opts.CompactionOptions.Policy = options.CompactionPolicyMaxFiles
	opts.CompactionOptions.MaxFiles = 2

	e := openTestEngine(t, opts)
	defer e.Close()

	// Two ~32 KiB values per 64 KiB file forces a roll-over every other
	// write; six keys produces the three immutable files MaxFiles(2) fires
	// on (it fires once the count exceeds 2).
	value := strings.Repeat("y", int(options.MinFileSizeLimit/2))
	keys := []string{"a", "b", "c", "d", "e", "f"}
	for _, k := range keys {
		require.NoError(t, e.Set(k, value))
	}

	require.Equal(t, 1, e.dir.ImmutableCount())

	for _, k := range keys {
		v, ok, err := e.Get(k)
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, value, v)
	}
}
