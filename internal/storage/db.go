// Package storage provides the persistence layer for OrarioDoc: a durable
// Badger-backed document store, a legacy flat-file store, and the one-time
// migration between them.
package storage

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	badger "github.com/dgraph-io/badger/v4"

	"github.com/mbelotti-dev/orariodoc/internal/model"
)

// ErrKeyNotFound is returned when a key is not found in the database.
var ErrKeyNotFound = errors.New("key not found")

// IsErrKeyNotFound returns true if the error is a key not found error.
func IsErrKeyNotFound(err error) bool {
	return errors.Is(err, ErrKeyNotFound) || errors.Is(err, badger.ErrKeyNotFound)
}

// DB wraps a Badger database connection.
type DB struct {
	db   *badger.DB
	path string
}

// DefaultPath returns the default database path following the XDG spec.
func DefaultPath() string {
	return filepath.Join(xdg.DataHome, model.AppName, "db")
}

// DefaultLegacyPath returns the default location of the legacy flat store.
func DefaultLegacyPath() string {
	return filepath.Join(xdg.DataHome, model.AppName, model.LegacyFileName)
}

// OpenDB opens or creates a Badger database at the given path. An empty
// path selects in-memory mode, used by tests.
func OpenDB(path string, inMemory bool) (*DB, error) {
	var badgerOpts badger.Options

	if inMemory || path == "" {
		badgerOpts = badger.DefaultOptions("").WithInMemory(true)
		path = ""
	} else {
		if err := os.MkdirAll(path, 0755); err != nil {
			return nil, err
		}
		badgerOpts = badger.DefaultOptions(path)
	}

	// Reduce logging noise
	badgerOpts = badgerOpts.WithLoggingLevel(badger.ERROR)

	db, err := badger.Open(badgerOpts)
	if err != nil {
		return nil, err
	}

	return &DB{db: db, path: path}, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

// Path returns the database directory, empty for in-memory databases.
func (d *DB) Path() string {
	return d.path
}

// GetBytes retrieves raw bytes by key.
func (d *DB) GetBytes(key string) ([]byte, error) {
	var result []byte
	err := d.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return ErrKeyNotFound
			}
			return err
		}

		return item.Value(func(val []byte) error {
			result = make([]byte, len(val))
			copy(result, val)
			return nil
		})
	})
	return result, err
}

// SetBytes stores raw bytes under the given key.
func (d *DB) SetBytes(key string, data []byte) error {
	return d.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

// Exists checks if a key exists in the database.
func (d *DB) Exists(key string) (bool, error) {
	var exists bool
	err := d.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get([]byte(key))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				exists = false
				return nil
			}
			return err
		}
		exists = true
		return nil
	})
	return exists, err
}

// Update runs fn inside a single read-write Badger transaction.
func (d *DB) Update(fn func(txn *badger.Txn) error) error {
	return d.db.Update(fn)
}
