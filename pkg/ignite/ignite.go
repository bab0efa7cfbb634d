// Package ignite provides a high-performance key/value data store
// designed for fast read and write operations, inspired by Bitcask.
// It combines an in-memory hash table (the index) with an append-only log
// structure on disk to achieve high throughput. It is designed for
// applications requiring fast read and write operations, such as caching,
// session management, and real-time data processing, aiming to provide a
// simple, efficient, and reliable solution for persistent key/value storage
// in Go applications.
package ignite

import (
	"github.com/iamNilotpal/ignitedb/internal/store"
	"github.com/iamNilotpal/ignitedb/pkg/logger"
	"github.com/iamNilotpal/ignitedb/pkg/options"
)

// Instance represents a running Ignite key/value data store. It encapsulates
// the backend store handling reads and writes and the configuration options
// applied to this instance.
//
// Instance is the primary entry point for interacting with the Ignite store,
// providing methods for setting, getting, and deleting key-value pairs.
type Instance struct {
	backend store.Store
	options *options.Options
}

// NewInstance creates and initializes a new Ignite DB instance. engineName
// selects which backend to open (store.Primary, store.Baseline, or
// store.Auto to defer to whatever the data directory already contains);
// most callers want store.Auto.
func NewInstance(service string, engineName store.Name, opts ...options.OptionFunc) (*Instance, error) {
	log := logger.New(service)

	defaultOpts := options.NewDefaultOptions()
	for _, opt := range opts {
		opt(&defaultOpts)
	}

	backend, err := store.Open(engineName, &defaultOpts, log)
	if err != nil {
		return nil, err
	}

	return &Instance{backend: backend, options: &defaultOpts}, nil
}

// Set stores a key-value pair in the database. If the key already exists,
// its value is overwritten. The value is written to the append-only log (or
// committed to the baseline store) before returning; the primary engine
// does not fsync each record.
func (i *Instance) Set(key, value string) error {
	return i.backend.Set(key, value)
}

// Get retrieves the value associated with the given key. The second return
// value reports whether the key was found.
func (i *Instance) Get(key string) (string, bool, error) {
	return i.backend.Get(key)
}

// Delete removes a key-value pair from the database. It fails if the key
// does not exist.
func (i *Instance) Delete(key string) error {
	return i.backend.Remove(key)
}

// Close gracefully shuts down the Ignite DB instance, flushing any pending
// writes and closing open file handles.
func (i *Instance) Close() error {
	return i.backend.Close()
}
