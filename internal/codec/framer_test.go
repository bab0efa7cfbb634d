package codec

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFramerReadOneCleanEOF(t *testing.T) {
	f := NewFramer()
	rec, n, err := f.ReadOne(bytes.NewReader(nil))
	require.NoError(t, err)
	require.Nil(t, rec)
	require.Zero(t, n)
}

func TestFramerReadOneDecodesSingleRecord(t *testing.T) {
	var buf bytes.Buffer
	_, err := Encode(&buf, NewSet("k", "v"))
	require.NoError(t, err)

	f := NewFramer()
	rec, n, err := f.ReadOne(&buf)
	require.NoError(t, err)
	require.NotNil(t, rec)
	require.Equal(t, "k", rec.Key)
	require.Equal(t, "v", rec.Value)
	require.EqualValues(t, HeaderSize+1+1, n)
}

func TestFramerReadOneConsumesExactlyOneRecordFromConcatenation(t *testing.T) {
	var buf bytes.Buffer
	_, err := Encode(&buf, NewSet("a", "1"))
	require.NoError(t, err)
	_, err = Encode(&buf, NewSet("bb", "22"))
	require.NoError(t, err)

	f := NewFramer()
	first, _, err := f.ReadOne(&buf)
	require.NoError(t, err)
	require.Equal(t, "a", first.Key)

	second, _, err := f.ReadOne(&buf)
	require.NoError(t, err)
	require.Equal(t, "bb", second.Key)

	third, n, err := f.ReadOne(&buf)
	require.NoError(t, err)
	require.Nil(t, third)
	require.Zero(t, n)
}

func TestFramerReadOneMidRecordEOFIsMalformed(t *testing.T) {
	var buf bytes.Buffer
	_, err := Encode(&buf, NewSet("key", "value"))
	require.NoError(t, err)

	truncated := buf.Bytes()[:HeaderSize+1]
	f := NewFramer()
	rec, _, err := f.ReadOne(bytes.NewReader(truncated))
	require.Error(t, err)
	require.Nil(t, rec)
}

func TestFramerReadOneShortHeaderIsMalformed(t *testing.T) {
	f := NewFramer()
	rec, _, err := f.ReadOne(bytes.NewReader([]byte{1, 2, 3}))
	require.Error(t, err)
	require.Nil(t, rec)
}
