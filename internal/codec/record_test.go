package codec

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeSetByteLayout(t *testing.T) {
	var buf bytes.Buffer
	n, err := Encode(&buf, NewSet("hi", "there"))
	require.NoError(t, err)
	require.EqualValues(t, HeaderSize+2+5, n)

	got := buf.Bytes()
	require.Len(t, got, HeaderSize+2+5)

	keyLength, valueLength, err := DecodeHeader(got[:HeaderSize])
	require.NoError(t, err)
	require.EqualValues(t, 2, keyLength)
	require.EqualValues(t, 5, valueLength)
	require.Equal(t, "hithere", string(got[HeaderSize:]))
}

func TestEncodeGetAndRemoveUseSentinels(t *testing.T) {
	var buf bytes.Buffer
	_, err := Encode(&buf, NewGet("k"))
	require.NoError(t, err)

	_, valueLength, err := DecodeHeader(buf.Bytes()[:HeaderSize])
	require.NoError(t, err)
	require.Equal(t, SentinelGet, valueLength)
	require.Equal(t, KindGet, KindFromValueLength(valueLength))

	buf.Reset()
	_, err = Encode(&buf, NewRemove("k"))
	require.NoError(t, err)

	_, valueLength, err = DecodeHeader(buf.Bytes()[:HeaderSize])
	require.NoError(t, err)
	require.Equal(t, SentinelRemove, valueLength)
	require.Equal(t, KindRemove, KindFromValueLength(valueLength))
}

func TestDecodeBodyRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	original := NewSet("key", "value")
	_, err := Encode(&buf, original)
	require.NoError(t, err)

	keyLength, valueLength, err := DecodeHeader(buf.Bytes()[:HeaderSize])
	require.NoError(t, err)

	rec, err := DecodeBody(keyLength, valueLength, buf.Bytes()[HeaderSize:])
	require.NoError(t, err)
	require.Equal(t, original, rec)
}

func TestDecodeBodyRejectsInvalidUTF8(t *testing.T) {
	body := []byte{0xff, 0xfe}
	_, err := DecodeBody(2, 0, body)
	require.Error(t, err)
}

func TestDecodeBodyShortBufferIsMalformed(t *testing.T) {
	_, err := DecodeBody(10, 0, []byte("short"))
	require.Error(t, err)
}

func TestDecodeHeaderRejectsShortHeader(t *testing.T) {
	_, _, err := DecodeHeader([]byte{1, 2, 3})
	require.Error(t, err)
}
