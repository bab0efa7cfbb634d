// Package codec implements the wire and on-disk record format shared by the
// storage engine, the server, and the client: a fixed 12-byte header
// (4-byte big-endian key length, 8-byte big-endian value length) followed by
// the key and, for Set records, the value. Two reserved value-length
// sentinels distinguish Get and Remove from Set without a separate tag byte.
package codec

import (
	"encoding/binary"
	"io"
	"math"

	ierrors "github.com/iamNilotpal/ignitedb/pkg/errors"
)

// Kind identifies which of the three record variants a Record represents.
type Kind uint8

const (
	KindSet Kind = iota
	KindGet
	KindRemove
)

func (k Kind) String() string {
	switch k {
	case KindSet:
		return "Set"
	case KindGet:
		return "Get"
	case KindRemove:
		return "Remove"
	default:
		return "Unknown"
	}
}

const (
	// HeaderSize is the fixed byte length of every record header:
	// 4 bytes key_length + 8 bytes value_length, both big-endian.
	HeaderSize = 12

	// SentinelGet is the reserved value_length that marks a Get record.
	SentinelGet uint64 = math.MaxUint64

	// SentinelRemove is the reserved value_length that marks a Remove record.
	SentinelRemove uint64 = math.MaxUint64 - 1
)

// Record is a single logical unit read from or written to the log or the
// wire. Get is never persisted; hydration must reject it if found on disk.
type Record struct {
	Kind  Kind
	Key   string
	Value string
}

// NewSet builds a Set record.
func NewSet(key, value string) Record { return Record{Kind: KindSet, Key: key, Value: value} }

// NewGet builds a Get record.
func NewGet(key string) Record { return Record{Kind: KindGet, Key: key} }

// NewRemove builds a Remove record.
func NewRemove(key string) Record { return Record{Kind: KindRemove, Key: key} }

// valueLengthOnWire returns the value_length header field for this record:
// the sentinel for Get/Remove, or the literal byte length of Value for Set.
func (r Record) valueLengthOnWire() uint64 {
	switch r.Kind {
	case KindGet:
		return SentinelGet
	case KindRemove:
		return SentinelRemove
	default:
		return uint64(len(r.Value))
	}
}

// ValueLengthOnDisk returns the number of value bytes that follow the key on
// disk for a given value_length header field: 0 for the Get/Remove
// sentinels, the literal value otherwise.
func ValueLengthOnDisk(valueLength uint64) uint64 {
	if valueLength == SentinelGet || valueLength == SentinelRemove {
		return 0
	}
	return valueLength
}

// KindFromValueLength maps a decoded value_length header field to the record
// kind it denotes.
func KindFromValueLength(valueLength uint64) Kind {
	switch valueLength {
	case SentinelGet:
		return KindGet
	case SentinelRemove:
		return KindRemove
	default:
		return KindSet
	}
}

// Len returns the total on-disk/wire byte length of this record:
// 12 + key length + value length on disk.
func (r Record) Len() int {
	return HeaderSize + len(r.Key) + int(ValueLengthOnDisk(r.valueLengthOnWire()))
}

// Encode writes the header followed by the key and, for Set, the value, to
// w. It returns the total number of bytes written. It fails only on writer
// I/O error.
func Encode(w io.Writer, r Record) (int64, error) {
	var header [HeaderSize]byte
	binary.BigEndian.PutUint32(header[0:4], uint32(len(r.Key)))
	binary.BigEndian.PutUint64(header[4:12], r.valueLengthOnWire())

	n, err := w.Write(header[:])
	if err != nil {
		return int64(n), ierrors.NewCodecError(err, ierrors.ErrorCodeIO, "write record header").
			WithOperation("Encode")
	}
	written := int64(n)

	if len(r.Key) > 0 {
		n, err = io.WriteString(w, r.Key)
		written += int64(n)
		if err != nil {
			return written, ierrors.NewCodecError(err, ierrors.ErrorCodeIO, "write record key").
				WithOperation("Encode")
		}
	}

	if r.Kind == KindSet && len(r.Value) > 0 {
		n, err = io.WriteString(w, r.Value)
		written += int64(n)
		if err != nil {
			return written, ierrors.NewCodecError(err, ierrors.ErrorCodeIO, "write record value").
				WithOperation("Encode")
		}
	}

	return written, nil
}

// DecodeHeader reads the key_length and value_length fields out of a
// 12-byte header buffer. The caller must supply exactly HeaderSize bytes;
// the framer is responsible for never calling this with fewer.
func DecodeHeader(header []byte) (keyLength uint32, valueLength uint64, err error) {
	if len(header) < HeaderSize {
		return 0, 0, ierrors.NewCodecError(nil, ierrors.ErrorCodeMalformedRecord, "short record header").
			WithOperation("DecodeHeader").
			WithDetail("have_bytes", len(header)).
			WithDetail("want_bytes", HeaderSize)
	}
	keyLength = binary.BigEndian.Uint32(header[0:4])
	valueLength = binary.BigEndian.Uint64(header[4:12])
	return keyLength, valueLength, nil
}

// DecodeBody builds a Record from the key_length/value_length header fields
// and the body bytes that follow the header (key then, for Set, value). It
// fails with MalformedRecord if body is shorter than the header promises, or
// if the key or value bytes are not valid UTF-8.
func DecodeBody(keyLength uint32, valueLength uint64, body []byte) (Record, error) {
	kind := KindFromValueLength(valueLength)
	valueOnDisk := ValueLengthOnDisk(valueLength)

	need := int64(keyLength) + int64(valueOnDisk)
	if int64(len(body)) < need {
		return Record{}, ierrors.NewCodecError(nil, ierrors.ErrorCodeMalformedRecord, "short record body").
			WithOperation("DecodeBody").
			WithDetail("have_bytes", len(body)).
			WithDetail("want_bytes", need)
	}

	keyBytes := body[:keyLength]
	if !isValidUTF8(keyBytes) {
		return Record{}, ierrors.NewCodecError(nil, ierrors.ErrorCodeMalformedRecord, "invalid utf8 in key").
			WithOperation("DecodeBody")
	}

	rec := Record{Kind: kind, Key: string(keyBytes)}
	if kind == KindSet {
		valueBytes := body[keyLength : int64(keyLength)+int64(valueOnDisk)]
		if !isValidUTF8(valueBytes) {
			return Record{}, ierrors.NewCodecError(nil, ierrors.ErrorCodeMalformedRecord, "invalid utf8 in value").
				WithOperation("DecodeBody")
		}
		rec.Value = string(valueBytes)
	}

	return rec, nil
}
