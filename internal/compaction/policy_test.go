package compaction

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMaxFilesPolicy(t *testing.T) {
	p := MaxFiles{N: 3}
	require.False(t, p.ShouldCompact(Context{OpenImmutableFiles: 3}))
	require.True(t, p.ShouldCompact(Context{OpenImmutableFiles: 4}))
}

func TestMaxDeadRecordsPolicy(t *testing.T) {
	p := MaxDeadRecords{M: 10}
	require.False(t, p.ShouldCompact(Context{DeadCommands: 10}))
	require.True(t, p.ShouldCompact(Context{DeadCommands: 11}))
}

func TestNeverPolicy(t *testing.T) {
	p := Never{}
	require.False(t, p.ShouldCompact(Context{OpenImmutableFiles: 1 << 20, DeadCommands: 1 << 20}))
}
