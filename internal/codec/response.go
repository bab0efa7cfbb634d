package codec

import (
	"errors"
	"io"
	"unicode/utf8"
)

// ResponseTag identifies which of the five response variants a byte stream
// carries.
type ResponseTag byte

const (
	TagSuccessfulSet ResponseTag = 's'
	TagSuccessfulRm  ResponseTag = 'r'
	TagSuccessfulGet ResponseTag = 'g'
	TagKeyNotFound   ResponseTag = 'n'
	TagErr           ResponseTag = 'e'
)

// Response is a single wire response: a tag byte plus, for SuccessfulGet and
// Err, a UTF-8 payload.
type Response struct {
	Tag     ResponseTag
	Payload string
}

func SuccessfulSet() Response { return Response{Tag: TagSuccessfulSet} }
func SuccessfulRm() Response  { return Response{Tag: TagSuccessfulRm} }
func KeyNotFound() Response   { return Response{Tag: TagKeyNotFound} }

func SuccessfulGet(value string) Response {
	return Response{Tag: TagSuccessfulGet, Payload: value}
}

func Err(message string) Response {
	return Response{Tag: TagErr, Payload: message}
}

// Write serializes the response as a tag byte followed by the payload, if
// any, and returns the number of bytes written.
func (r Response) Write(w io.Writer) (int64, error) {
	n, err := w.Write([]byte{byte(r.Tag)})
	written := int64(n)
	if err != nil {
		return written, err
	}
	if r.Tag == TagSuccessfulGet || r.Tag == TagErr {
		pn, err := io.WriteString(w, r.Payload)
		written += int64(pn)
		if err != nil {
			return written, err
		}
	}
	return written, nil
}

// ResponseFromBytes decodes a complete response buffer (as read to EOF by
// the client). It returns an Err-tagged response (not a Go error) for
// invalid UTF-8 payloads or an unrecognized/empty leading byte, matching the
// wire contract: malformed responses are reported to the caller as ordinary
// Err variants, not decode failures.
func ResponseFromBytes(buf []byte) Response {
	if len(buf) == 0 {
		return Err("Invalid start byte")
	}

	tag := ResponseTag(buf[0])
	payload := buf[1:]

	switch tag {
	case TagSuccessfulSet:
		return SuccessfulSet()
	case TagSuccessfulRm:
		return SuccessfulRm()
	case TagKeyNotFound:
		return KeyNotFound()
	case TagSuccessfulGet:
		if !utf8.Valid(payload) {
			return Err("Invalid utf8")
		}
		return SuccessfulGet(string(payload))
	case TagErr:
		if !utf8.Valid(payload) {
			return Err("Invalid utf8")
		}
		return Err(string(payload))
	default:
		return Err("Invalid start byte")
	}
}

// ReadResponse reads a full response from r until EOF and decodes it. It is
// the counterpart to Write for readers that consume an entire connection's
// worth of bytes, mirroring the client's read-to-EOF contract.
func ReadResponse(r io.Reader) (Response, error) {
	buf, err := io.ReadAll(r)
	if err != nil && !errors.Is(err, io.EOF) {
		return Response{}, err
	}
	return ResponseFromBytes(buf), nil
}
