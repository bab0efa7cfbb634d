package index

import (
	"testing"

	"github.com/iamNilotpal/ignitedb/pkg/logger"
	"github.com/stretchr/testify/require"
)

func newTestIndex(t *testing.T) *Index {
	t.Helper()
	idx, err := New(&Config{Logger: logger.NewDevelopment("index-test")})
	require.NoError(t, err)
	return idx
}

func TestIndexSetGetDelete(t *testing.T) {
	idx := newTestIndex(t)

	_, existed := idx.Set("a", RecordPointer{FileSlot: 0, FileOffset: 10})
	require.False(t, existed)

	ptr, ok := idx.Get("a")
	require.True(t, ok)
	require.Equal(t, RecordPointer{FileSlot: 0, FileOffset: 10}, ptr)

	prev, existed := idx.Set("a", RecordPointer{FileSlot: 1, FileOffset: 20})
	require.True(t, existed)
	require.Equal(t, RecordPointer{FileSlot: 0, FileOffset: 10}, prev)

	removed, existed := idx.Delete("a")
	require.True(t, existed)
	require.Equal(t, RecordPointer{FileSlot: 1, FileOffset: 20}, removed)

	_, ok = idx.Get("a")
	require.False(t, ok)
}

func TestIndexLenAndRange(t *testing.T) {
	idx := newTestIndex(t)
	idx.Set("a", RecordPointer{FileSlot: 0, FileOffset: 0})
	idx.Set("b", RecordPointer{FileSlot: 0, FileOffset: 10})
	idx.Set("c", RecordPointer{FileSlot: 0, FileOffset: 20})
	require.Equal(t, 3, idx.Len())

	seen := make(map[string]RecordPointer)
	idx.Range(func(key string, ptr RecordPointer) { seen[key] = ptr })
	require.Len(t, seen, 3)
}

func TestIndexRewriteSlot(t *testing.T) {
	const activeSlot = -1
	idx := newTestIndex(t)
	idx.Set("a", RecordPointer{FileSlot: activeSlot, FileOffset: 0})
	idx.Set("b", RecordPointer{FileSlot: 2, FileOffset: 5})

	idx.RewriteSlot(activeSlot, 7)

	a, _ := idx.Get("a")
	require.Equal(t, 7, a.FileSlot)

	b, _ := idx.Get("b")
	require.Equal(t, 2, b.FileSlot)
}

func TestIndexCloseIsIdempotentFailure(t *testing.T) {
	idx := newTestIndex(t)
	require.NoError(t, idx.Close())
	require.ErrorIs(t, idx.Close(), ErrIndexClosed)
}
