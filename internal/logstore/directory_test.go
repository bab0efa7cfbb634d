package logstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/iamNilotpal/ignitedb/internal/codec"
	"github.com/stretchr/testify/require"
)

func TestOpenFreshDirectoryCreatesActiveFile(t *testing.T) {
	dir := t.TempDir()
	d, err := Open(dir)
	require.NoError(t, err)
	defer d.Close()

	require.Zero(t, d.ImmutableCount())
	require.NotNil(t, d.ActiveFile())
}

func TestOpenRejectsBaselineOwnedDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "db"), []byte{}, 0o644))

	_, err := Open(dir)
	require.Error(t, err)
}

func TestRollOverDemotesActiveFile(t *testing.T) {
	dir := t.TempDir()
	d, err := Open(dir)
	require.NoError(t, err)
	defer d.Close()

	oldActive := d.ActiveFile()
	slot, err := d.RollOver()
	require.NoError(t, err)
	require.Equal(t, 0, slot)
	require.Equal(t, 1, d.ImmutableCount())

	demoted, ok := d.FileAt(slot)
	require.True(t, ok)
	require.Equal(t, oldActive, demoted)
	require.NotEqual(t, oldActive, d.ActiveFile())
}

func TestOpenReopensExistingFilesInOrder(t *testing.T) {
	dir := t.TempDir()
	d, err := Open(dir)
	require.NoError(t, err)
	_, err = d.ActiveFile().Append(codec.NewSet("k", "v"))
	require.NoError(t, err)
	_, err = d.RollOver()
	require.NoError(t, err)
	require.NoError(t, d.Close())

	reopened, err := Open(dir)
	require.NoError(t, err)
	defer reopened.Close()

	require.Equal(t, 1, reopened.ImmutableCount())
	files := reopened.AllFilesInOrder()
	require.Len(t, files, 2)
}

func TestReplaceImmutablesUnlinksOldFiles(t *testing.T) {
	dir := t.TempDir()
	d, err := Open(dir)
	require.NoError(t, err)
	defer d.Close()

	_, err = d.RollOver()
	require.NoError(t, err)
	oldName := d.immutables[0].Name()

	replacement, err := OpenFile(dir, NewCompactedName())
	require.NoError(t, err)
	require.NoError(t, d.ReplaceImmutables(replacement))

	_, err = os.Stat(filepath.Join(dir, oldName))
	require.True(t, os.IsNotExist(err))
	require.Equal(t, 1, d.ImmutableCount())
}
