package codec

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResponseWriteAndFromBytes(t *testing.T) {
	cases := []Response{
		SuccessfulSet(),
		SuccessfulRm(),
		KeyNotFound(),
		SuccessfulGet("a value"),
		Err("something broke"),
	}

	for _, want := range cases {
		var buf bytes.Buffer
		_, err := want.Write(&buf)
		require.NoError(t, err)

		got := ResponseFromBytes(buf.Bytes())
		require.Equal(t, want, got)
	}
}

func TestResponseFromBytesEmptyIsErr(t *testing.T) {
	resp := ResponseFromBytes(nil)
	require.Equal(t, TagErr, resp.Tag)
}

func TestResponseFromBytesUnknownTagIsErr(t *testing.T) {
	resp := ResponseFromBytes([]byte{'z'})
	require.Equal(t, TagErr, resp.Tag)
}

func TestResponseFromBytesInvalidUTF8PayloadIsErr(t *testing.T) {
	resp := ResponseFromBytes(append([]byte{byte(TagSuccessfulGet)}, 0xff, 0xfe))
	require.Equal(t, TagErr, resp.Tag)
}

func TestReadResponse(t *testing.T) {
	var buf bytes.Buffer
	_, err := SuccessfulGet("value").Write(&buf)
	require.NoError(t, err)

	resp, err := ReadResponse(&buf)
	require.NoError(t, err)
	require.Equal(t, SuccessfulGet("value"), resp)
}
