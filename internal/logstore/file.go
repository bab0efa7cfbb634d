package logstore

import (
	"io"
	"os"
	"sync"

	"github.com/iamNilotpal/ignitedb/internal/codec"
	ierrors "github.com/iamNilotpal/ignitedb/pkg/errors"
)

// File wraps a single append-only log file: an opaque file handle plus a
// cached byte length. Appends happen only to the active file; reads happen
// against any file, active or immutable.
type File struct {
	mu     sync.Mutex
	path   string
	name   string
	handle *os.File
	length int64
}

// OpenFile opens or creates the log file at dir/name with create+append+read
// semantics and reads its current length from file metadata.
func OpenFile(dir, name string) (*File, error) {
	path := JoinDir(dir, name)
	handle, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR|os.O_APPEND, 0o644)
	if err != nil {
		return nil, ierrors.ClassifyFileOpenError(err, path, name)
	}

	stat, err := handle.Stat()
	if err != nil {
		handle.Close()
		return nil, ierrors.NewStorageError(err, ierrors.ErrorCodeIO, "stat log file").
			WithPath(path).WithFileName(name)
	}

	return &File{path: path, name: name, handle: handle, length: stat.Size()}, nil
}

// Name returns the file's base name.
func (f *File) Name() string {
	return f.name
}

// Len returns the file's current byte length.
func (f *File) Len() int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.length
}

// Append encodes and writes rec to the end of the file, returning the byte
// offset at which the record's header begins.
func (f *File) Append(rec codec.Record) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	offset := f.length
	n, err := codec.Encode(f.handle, rec)
	if err != nil {
		return 0, ierrors.NewStorageError(err, ierrors.ErrorCodeIO, "append record").
			WithPath(f.path).WithFileName(f.name).WithOffset(int(offset))
	}
	f.length += n
	return offset, nil
}

// ReadAt seeks to offset and reads exactly one record via the stream
// framer. It does not move the file's append cursor (O_APPEND writes always
// target end-of-file regardless of the descriptor's read position).
func (f *File) ReadAt(offset int64) (codec.Record, error) {
	sr := io.NewSectionReader(f.handle, offset, f.Len()-offset)
	framer := codec.NewFramer()
	rec, _, err := framer.ReadOne(sr)
	if err != nil {
		return codec.Record{}, ierrors.NewStorageError(err, ierrors.ErrorCodeIO, "read record").
			WithPath(f.path).WithFileName(f.name).WithOffset(int(offset))
	}
	if rec == nil {
		return codec.Record{}, ierrors.NewStorageError(nil, ierrors.ErrorCodeSegmentCorrupted, "no record at offset").
			WithPath(f.path).WithFileName(f.name).WithOffset(int(offset))
	}
	return *rec, nil
}

// ReadFrom returns a reader over the file's contents from offset to its
// current length; hydration calls it with offset 0 and feeds it to a framer
// to replay every record in order.
func (f *File) ReadFrom(offset int64) *io.SectionReader {
	return io.NewSectionReader(f.handle, offset, f.Len()-offset)
}

// Close closes the underlying file handle.
func (f *File) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.handle.Close()
}

// Unlink closes and removes the file from the filesystem.
func (f *File) Unlink() error {
	f.mu.Lock()
	path := f.path
	f.handle.Close()
	f.mu.Unlock()

	if err := os.Remove(path); err != nil {
		return ierrors.NewStorageError(err, ierrors.ErrorCodeIO, "unlink log file").WithPath(path)
	}
	return nil
}
