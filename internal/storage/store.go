package storage

import (
	"os"
	"path/filepath"

	"github.com/mbelotti-dev/orariodoc/internal/apperr"
	"github.com/mbelotti-dev/orariodoc/internal/logging"
	"github.com/mbelotti-dev/orariodoc/internal/model"
)

// Store is the document store consumed by the schedule service. Read
// returns the default empty document when nothing is stored yet; "no data"
// is never an error, only genuine backend failure is.
type Store interface {
	// Read loads the schedule document.
	Read() (*model.AppData, error)
	// Write persists the schedule document, replacing the previous one.
	Write(data *model.AppData) error
	// Migrate runs the one-time legacy migration. It is idempotent and
	// safe to invoke on every startup.
	Migrate() error
	// Close releases backend resources.
	Close() error
}

// Options configures backend selection.
type Options struct {
	// Path is the durable database directory. Empty string uses in-memory
	// mode (tests).
	Path string
	// InMemory forces in-memory mode regardless of Path.
	InMemory bool
	// LegacyPath is the legacy flat-file location. Empty string uses the
	// default XDG path.
	LegacyPath string
}

// DefaultOptions returns options pointing at the default XDG locations.
func DefaultOptions() Options {
	return Options{
		Path:       DefaultPath(),
		LegacyPath: DefaultLegacyPath(),
	}
}

// Open resolves the storage backend once at startup: the durable Badger
// store when it can be opened, otherwise the legacy flat-file store. The
// choice is fixed for the lifetime of the process; there is no per-call
// fallback. If neither backend is usable an error is returned and the
// caller fails visibly.
func Open(opts Options) (Store, error) {
	legacyPath := opts.LegacyPath
	if legacyPath == "" {
		legacyPath = DefaultLegacyPath()
	}

	db, err := OpenDB(opts.Path, opts.InMemory)
	if err == nil {
		return NewDurableStore(db, legacyPath), nil
	}

	logging.Warn("durable store unavailable, falling back to legacy store",
		"error", err, "path", opts.Path)

	legacy, lerr := OpenLegacy(legacyPath)
	if lerr != nil {
		return nil, apperr.Wrap(apperr.ErrNoBackend, lerr.Error())
	}
	return legacy, nil
}

// ensureParentDir creates the parent directory of a file path.
func ensureParentDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0755)
}
