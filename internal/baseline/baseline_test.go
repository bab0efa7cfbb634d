package baseline

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBaselineSetGetRemove(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir)
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Set("k", "v1"))

	v, ok, err := s.Get("k")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "v1", v)

	require.NoError(t, s.Set("k", "v2"))
	v, ok, err = s.Get("k")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "v2", v)

	require.NoError(t, s.Remove("k"))

	_, ok, err = s.Get("k")
	require.NoError(t, err)
	require.False(t, ok)

	err = s.Remove("k")
	require.Error(t, err)
}

func TestBaselineGetMissingKey(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir)
	require.NoError(t, err)
	defer s.Close()

	_, ok, err := s.Get("missing")
	require.NoError(t, err)
	require.False(t, ok)
}
