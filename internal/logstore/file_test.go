package logstore

import (
	"os"
	"testing"

	"github.com/iamNilotpal/ignitedb/internal/codec"
	"github.com/stretchr/testify/require"
)

func TestFileAppendAndReadAt(t *testing.T) {
	dir := t.TempDir()
	f, err := OpenFile(dir, NewActiveName())
	require.NoError(t, err)
	defer f.Close()

	offsetA, err := f.Append(codec.NewSet("a", "1"))
	require.NoError(t, err)
	require.Zero(t, offsetA)

	offsetB, err := f.Append(codec.NewSet("bb", "22"))
	require.NoError(t, err)
	require.Equal(t, int64(codec.HeaderSize+2), offsetB)

	recA, err := f.ReadAt(offsetA)
	require.NoError(t, err)
	require.Equal(t, "a", recA.Key)
	require.Equal(t, "1", recA.Value)

	recB, err := f.ReadAt(offsetB)
	require.NoError(t, err)
	require.Equal(t, "bb", recB.Key)
	require.Equal(t, "22", recB.Value)
}

func TestFileLenTracksAppends(t *testing.T) {
	dir := t.TempDir()
	f, err := OpenFile(dir, NewActiveName())
	require.NoError(t, err)
	defer f.Close()

	require.Zero(t, f.Len())
	_, err = f.Append(codec.NewSet("k", "v"))
	require.NoError(t, err)
	require.Equal(t, int64(codec.HeaderSize+1+1), f.Len())
}

func TestFileReopenPreservesLength(t *testing.T) {
	dir := t.TempDir()
	name := NewActiveName()

	f1, err := OpenFile(dir, name)
	require.NoError(t, err)
	_, err = f1.Append(codec.NewSet("k", "v"))
	require.NoError(t, err)
	require.NoError(t, f1.Close())

	f2, err := OpenFile(dir, name)
	require.NoError(t, err)
	defer f2.Close()
	require.Equal(t, int64(codec.HeaderSize+1+1), f2.Len())
}

func TestFileUnlinkRemovesFromDisk(t *testing.T) {
	dir := t.TempDir()
	f, err := OpenFile(dir, NewActiveName())
	require.NoError(t, err)
	require.NoError(t, f.Unlink())

	_, err = os.Stat(JoinDir(dir, f.Name()))
	require.True(t, os.IsNotExist(err))
}
