package logstore

import (
	"os"
	"sort"
	"sync"

	ierrors "github.com/iamNilotpal/ignitedb/pkg/errors"
)

// ActiveSlot is the reserved file-slot sentinel denoting "the active file",
// as opposed to a specific immutable-file index.
const ActiveSlot = -1

// Directory holds an ordered sequence of immutable files followed by exactly
// one active file, all within a single filesystem directory.
type Directory struct {
	mu         sync.RWMutex
	dir        string
	immutables []*File
	active     *File
}

// Open scans dir for engine files, sorts them lexicographically ascending,
// and opens the last one as active and the rest as immutable. If dir has no
// engine files, a fresh active file is created. A directory containing a
// baseline-store marker file causes EngineMismatch.
func Open(dir string) (*Directory, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, ierrors.NewStorageError(err, ierrors.ErrorCodeIO, "read log directory").WithPath(dir)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if IsBaselineMarker(name) {
			return nil, ierrors.NewEngineMismatchError(dir, "primary")
		}
		if IsEngineFile(name) {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	d := &Directory{dir: dir}

	if len(names) == 0 {
		active, err := OpenFile(dir, NewActiveName())
		if err != nil {
			return nil, err
		}
		d.active = active
		return d, nil
	}

	for _, name := range names[:len(names)-1] {
		f, err := OpenFile(dir, name)
		if err != nil {
			return nil, err
		}
		d.immutables = append(d.immutables, f)
	}

	active, err := OpenFile(dir, names[len(names)-1])
	if err != nil {
		return nil, err
	}
	d.active = active

	return d, nil
}

// Dir returns the filesystem directory this Directory was opened over.
func (d *Directory) Dir() string {
	return d.dir
}

// ActiveFile returns the current active (writable) file.
func (d *Directory) ActiveFile() *File {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.active
}

// ImmutableAt returns the immutable file at the given slot.
func (d *Directory) ImmutableAt(slot int) (*File, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if slot < 0 || slot >= len(d.immutables) {
		return nil, false
	}
	return d.immutables[slot], true
}

// ImmutableCount returns the number of open immutable files.
func (d *Directory) ImmutableCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.immutables)
}

// FileAt resolves a file-slot value (ActiveSlot or an immutable index) to
// its File.
func (d *Directory) FileAt(slot int) (*File, bool) {
	if slot == ActiveSlot {
		return d.ActiveFile(), true
	}
	return d.ImmutableAt(slot)
}

// AllFilesInOrder returns every file in creation order: immutables first
// (oldest to newest), then the active file. Used by hydration.
func (d *Directory) AllFilesInOrder() []*File {
	d.mu.RLock()
	defer d.mu.RUnlock()
	files := make([]*File, 0, len(d.immutables)+1)
	files = append(files, d.immutables...)
	files = append(files, d.active)
	return files
}

// RollOver demotes the current active file to the end of the immutable
// list and creates a fresh active file. It returns the slot the former
// active file now occupies in the immutable list, so the caller can rewrite
// any index entries that pointed at ActiveSlot to point there instead.
func (d *Directory) RollOver() (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	newFile, err := OpenFile(d.dir, NewActiveName())
	if err != nil {
		return 0, err
	}

	d.immutables = append(d.immutables, d.active)
	slot := len(d.immutables) - 1
	d.active = newFile
	return slot, nil
}

// ReplaceImmutables unlinks every current immutable file and replaces the
// immutable list with a single element, newFile, at slot 0. Used only by
// compaction.
func (d *Directory) ReplaceImmutables(newFile *File) error {
	d.mu.Lock()
	old := d.immutables
	d.immutables = []*File{newFile}
	d.mu.Unlock()

	for _, f := range old {
		if err := f.Unlink(); err != nil {
			return err
		}
	}
	return nil
}

// Close closes every open file handle in the directory.
func (d *Directory) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	var firstErr error
	for _, f := range d.immutables {
		if err := f.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if err := d.active.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}
