// Package baseline is a thin passthrough adapter to go.etcd.io/bbolt, an
// embedded B-tree store. It exists only as a benchmark comparison point for
// the primary append-only engine and implements the same operation set
// (internal/store.Store) so the server can dispatch to either backend
// uninterrupted.
package baseline

import (
	"path/filepath"

	ierrors "github.com/iamNilotpal/ignitedb/pkg/errors"
	"go.etcd.io/bbolt"
)

// markerFileName is the file bbolt creates within the data directory; its
// presence is how a caller distinguishes a baseline-owned directory from
// one owned by the primary engine (see internal/logstore's marker
// detection).
const markerFileName = "db"

var bucketName = []byte("ignitedb")

// Store wraps a single bbolt database file.
type Store struct {
	db *bbolt.DB
}

// Open opens (creating if needed) the bbolt database file at dir/db and
// ensures its single bucket exists.
func Open(dir string) (*Store, error) {
	path := filepath.Join(dir, markerFileName)

	db, err := bbolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, ierrors.NewStorageError(err, ierrors.ErrorCodeIO, "open baseline store").WithPath(path)
	}

	if err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	}); err != nil {
		db.Close()
		return nil, ierrors.NewStorageError(err, ierrors.ErrorCodeIO, "create baseline bucket").WithPath(path)
	}

	return &Store{db: db}, nil
}

// Set stores value under key, overwriting any existing value.
func (s *Store) Set(key, value string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketName).Put([]byte(key), []byte(value))
	})
}

// Get looks up key, returning (value, true, nil) on a hit or ("", false,
// nil) on a miss.
func (s *Store) Get(key string) (string, bool, error) {
	var value []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		if v := tx.Bucket(bucketName).Get([]byte(key)); v != nil {
			value = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return "", false, err
	}
	if value == nil {
		return "", false, nil
	}
	return string(value), true, nil
}

// Remove deletes key, failing with a key-not-found error if it was already
// absent, matching the primary engine's contract.
func (s *Store) Remove(key string) error {
	found := false
	err := s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketName)
		if v := b.Get([]byte(key)); v == nil {
			return nil
		}
		found = true
		return b.Delete([]byte(key))
	})
	if err != nil {
		return err
	}
	if !found {
		return ierrors.NewKeyNotFoundEngineError(key)
	}
	return nil
}

// Close closes the underlying bbolt database.
func (s *Store) Close() error {
	return s.db.Close()
}
