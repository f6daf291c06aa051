package storage

import (
	"encoding/json"
	"os"

	"github.com/mbelotti-dev/orariodoc/internal/apperr"
	"github.com/mbelotti-dev/orariodoc/internal/model"
)

// LegacyStore is the flat-file key-value backend that predates the durable
// store: one JSON file holding the whole schedule document. It survives as
// the migration source and as the fallback backend when the durable store
// cannot be opened.
type LegacyStore struct {
	path string
}

// OpenLegacy opens the legacy store at the given file path, creating the
// parent directory if needed. A missing file is fine; it reads as the
// empty document.
func OpenLegacy(path string) (*LegacyStore, error) {
	if err := ensureParentDir(path); err != nil {
		return nil, apperr.NewStorageError("open", err)
	}
	return &LegacyStore{path: path}, nil
}

// Path returns the legacy file location.
func (s *LegacyStore) Path() string {
	return s.path
}

// Read loads the schedule document from the flat file. A missing file
// yields the default empty document.
func (s *LegacyStore) Read() (*model.AppData, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
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

// Write persists the schedule document to the flat file.
func (s *LegacyStore) Write(data *model.AppData) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return apperr.NewStorageError("write", err)
	}
	if err := os.WriteFile(s.path, raw, 0600); err != nil {
		return apperr.NewStorageError("write", err)
	}
	return nil
}

// Migrate is a no-op: in legacy-only mode there is no durable store to
// migrate into, and the data is already where reads will find it.
func (s *LegacyStore) Migrate() error {
	return nil
}

// Close is a no-op; the file is opened per operation.
func (s *LegacyStore) Close() error {
	return nil
}
