package storage

import (
	"encoding/json"
	"fmt"
	"os"

	badger "github.com/dgraph-io/badger/v4"

	"github.com/mbelotti-dev/orariodoc/internal/apperr"
	"github.com/mbelotti-dev/orariodoc/internal/logging"
	"github.com/mbelotti-dev/orariodoc/internal/model"
)

// DurableStore is the primary backend: the whole schedule document stored
// as one JSON record in Badger under model.KeyAppData, with the migration
// sentinel under model.KeyMigrationFlag.
type DurableStore struct {
	db         *DB
	legacyPath string
}

// NewDurableStore wraps an open database and the legacy file location used
// as the migration source.
func NewDurableStore(db *DB, legacyPath string) *DurableStore {
	return &DurableStore{db: db, legacyPath: legacyPath}
}

// Read loads the schedule document. A missing record yields the default
// empty document, never an error.
func (s *DurableStore) Read() (*model.AppData, error) {
	raw, err := s.db.GetBytes(model.KeyAppData)
	if err != nil {
		if IsErrKeyNotFound(err) {
			return model.NewAppData(), nil
		}
		return nil, apperr.NewStorageError("read", err)
	}

	data := &model.AppData{}
	if err := json.Unmarshal(raw, data); err != nil {
		return nil, apperr.NewStorageError("read", err)
	}
	data.Normalize()
	return data, nil
}

// Write persists the schedule document under the primary key.
func (s *DurableStore) Write(data *model.AppData) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return apperr.NewStorageError("write", err)
	}
	if err := s.db.SetBytes(model.KeyAppData, raw); err != nil {
		return apperr.NewStorageError("write", err)
	}
	return nil
}

// Migrated reports whether the one-time migration has completed.
func (s *DurableStore) Migrated() (bool, error) {
	flag, err := s.db.Exists(model.KeyMigrationFlag)
	if err != nil {
		return false, apperr.NewStorageError("migrate", err)
	}
	return flag, nil
}

// Migrate transfers the legacy flat-file document into the durable store,
// exactly once. The state machine has two states: not started, and
// migrated (terminal, permanent).
//
//   - Flag already set: no-op, regardless of what the legacy file holds
//     now (no re-sync).
//   - Legacy data present and valid JSON: write it under the primary key
//     and set the flag in one transaction. Concurrent attempts write the
//     same source bytes, so last-write-wins is harmless.
//   - Legacy data absent or unparseable: set the flag only. A parse
//     failure is logged but never fatal; the app proceeds with the empty
//     default document.
//
// Backend failures surface as a StorageError; callers treat it as
// recoverable and fall back to the empty document rather than blocking
// startup.
func (s *DurableStore) Migrate() error {
	done, err := s.Migrated()
	if err != nil {
		return err
	}
	if done {
		return nil
	}

	raw, err := os.ReadFile(s.legacyPath)
	if err != nil && !os.IsNotExist(err) {
		return apperr.NewStorageError("migrate", err)
	}

	var payload []byte
	if len(raw) > 0 {
		data := &model.AppData{}
		if jerr := json.Unmarshal(raw, data); jerr != nil {
			merr := &apperr.MigrationError{Cause: fmt.Errorf("%w: %v", apperr.ErrLegacyCorrupted, jerr)}
			logging.Warn("legacy data unreadable, migrating nothing",
				"error", merr, "path", s.legacyPath)
		} else {
			data.Normalize()
			// Re-marshal so the stored record is normalized, not the
			// raw legacy bytes.
			payload, err = json.Marshal(data)
			if err != nil {
				return apperr.NewStorageError("migrate", err)
			}
		}
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		if payload != nil {
			if err := txn.Set([]byte(model.KeyAppData), payload); err != nil {
				return err
			}
		}
		return txn.Set([]byte(model.KeyMigrationFlag), []byte("true"))
	})
	if err != nil {
		return apperr.NewStorageError("migrate", err)
	}

	if payload != nil {
		logging.Info("legacy data migrated to durable store", "path", s.legacyPath)
	} else {
		logging.Debug("migration completed with nothing to migrate")
	}
	return nil
}

// Close closes the underlying database.
func (s *DurableStore) Close() error {
	return s.db.Close()
}
