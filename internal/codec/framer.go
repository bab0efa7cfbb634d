package codec

import (
	"errors"
	"io"
	"syscall"

	ierrors "github.com/iamNilotpal/ignitedb/pkg/errors"
)

// Framer reads one complete Record at a time from a possibly-chunked byte
// source, resuming across short reads. It owns a reusable scratch buffer so
// that repeated calls to ReadOne do not allocate on the hot path.
type Framer struct {
	scratch []byte
}

// NewFramer builds a Framer with a scratch buffer pre-sized for a header
// plus a small body; it grows on demand for larger records.
func NewFramer() *Framer {
	return &Framer{scratch: make([]byte, HeaderSize, HeaderSize+256)}
}

// ReadOne reads exactly one record from src. It returns (nil, 0, nil) when
// src reports clean EOF before any header byte is read. It returns a
// decoded record and the exact number of bytes consumed from src on
// success. It returns a MalformedRecord-classed error when EOF occurs
// mid-record, the header decodes to an impossible length, or the body
// fails UTF-8 validation. ReadOne never reads past the end of the current
// record.
func (f *Framer) ReadOne(src io.Reader) (*Record, int64, error) {
	header := f.scratch[:HeaderSize]
	n, err := readFullRetrying(src, header)
	if err != nil {
		if errors.Is(err, io.EOF) && n == 0 {
			return nil, 0, nil
		}
		return nil, int64(n), ierrors.NewCodecError(err, ierrors.ErrorCodeMalformedRecord, "eof mid record header").
			WithOperation("ReadOne")
	}

	keyLength, valueLength, err := DecodeHeader(header)
	if err != nil {
		return nil, int64(n), err
	}

	bodyLen := int64(keyLength) + int64(ValueLengthOnDisk(valueLength))
	if bodyLen < 0 || bodyLen > int64(^uint32(0)) {
		return nil, int64(n), ierrors.NewCodecError(nil, ierrors.ErrorCodeMalformedRecord, "impossible record length").
			WithOperation("ReadOne").
			WithDetail("key_length", keyLength).
			WithDetail("value_length", valueLength)
	}

	if int64(cap(f.scratch)) < int64(HeaderSize)+bodyLen {
		grown := make([]byte, HeaderSize+bodyLen)
		f.scratch = grown
	}
	body := f.scratch[HeaderSize : HeaderSize+bodyLen]

	bn, err := readFullRetrying(src, body)
	totalRead := int64(n) + int64(bn)
	if err != nil {
		return nil, totalRead, ierrors.NewCodecError(err, ierrors.ErrorCodeMalformedRecord, "eof mid record body").
			WithOperation("ReadOne")
	}

	rec, err := DecodeBody(keyLength, valueLength, body)
	if err != nil {
		return nil, totalRead, err
	}

	return &rec, totalRead, nil
}

// readFullRetrying is io.ReadFull but retries on EINTR-class transient
// errors instead of surfacing them to the caller, per the framer contract.
func readFullRetrying(r io.Reader, buf []byte) (int, error) {
	total := 0
	for total < len(buf) {
		n, err := r.Read(buf[total:])
		total += n
		if err != nil {
			if errors.Is(err, syscall.EINTR) {
				continue
			}
			if err == io.EOF {
				if total == 0 {
					return total, io.EOF
				}
				return total, io.ErrUnexpectedEOF
			}
			return total, err
		}
		if n == 0 && err == nil {
			// Reader made no progress without reporting an error or EOF;
			// treat as EOF rather than spinning.
			if total == 0 {
				return total, io.EOF
			}
			return total, io.ErrUnexpectedEOF
		}
	}
	return total, nil
}
