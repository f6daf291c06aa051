// Package schedule implements the timetable use cases: conflict detection
// and the add/update/delete orchestration over the document store.
package schedule

import (
	"github.com/google/uuid"

	"github.com/mbelotti-dev/orariodoc/internal/apperr"
	"github.com/mbelotti-dev/orariodoc/internal/logging"
	"github.com/mbelotti-dev/orariodoc/internal/model"
	"github.com/mbelotti-dev/orariodoc/internal/storage"
	"github.com/mbelotti-dev/orariodoc/internal/validate"
)

// Service composes the validator, the conflict detector and the document
// store into the schedule use cases. Each mutating operation is a
// read-modify-write cycle with no lock held between read and write: two
// interleaved calls can lose the first write. That window is accepted for
// the single-user case; the backend serializes individual writes but not
// the compound cycle.
type Service struct {
	store storage.Store
}

// New creates a schedule service over the given store. The store is an
// explicit handle, constructed once per app instance; the service keeps no
// other state.
func New(store storage.Store) *Service {
	return &Service{store: store}
}

// Init runs the one-time migration, then loads the document for the
// initial render. Migration and read failures are downgraded: the caller
// gets the empty default document and the app starts anyway.
func (s *Service) Init() (*model.AppData, error) {
	if err := s.store.Migrate(); err != nil {
		logging.Warn("migration failed, continuing", "error", err)
	}
	data, err := s.store.Read()
	if err != nil {
		logging.Warn("read failed after migration, using empty document", "error", err)
		return model.NewAppData(), nil
	}
	return data, nil
}

// Get loads the current document without touching migration state.
func (s *Service) Get() (*model.AppData, error) {
	return s.store.Read()
}

// Save validates and persists a candidate lesson.
//
// With an empty excludeID the candidate is appended under a fresh id. With
// excludeID set, the lesson with that id is replaced in place, keeping its
// id and position; a missing id is a NotFoundError. Validation and
// conflict checks fail fast before any write, so a rejected save leaves
// the store untouched.
func (s *Service) Save(candidate model.Lesson, excludeID string) (*model.Lesson, error) {
	if msgs := validate.Lesson(candidate.Name, candidate.Day, candidate.Start, candidate.Duration); len(msgs) > 0 {
		return nil, apperr.NewValidationError(msgs)
	}

	data, err := s.store.Read()
	if err != nil {
		return nil, err
	}

	if conflicts := FindConflicts(data.Lessons, candidate, excludeID); len(conflicts) > 0 {
		names := make([]string, len(conflicts))
		for i := range conflicts {
			names[i] = conflicts[i].Label()
		}
		return nil, apperr.NewConflictError(names)
	}

	if excludeID != "" {
		idx := data.FindLesson(excludeID)
		if idx < 0 {
			return nil, &apperr.NotFoundError{ID: excludeID}
		}
		candidate.ID = excludeID
		data.Lessons[idx] = candidate
	} else {
		candidate.ID = newLessonID()
		data.Lessons = append(data.Lessons, candidate)
	}

	if err := s.store.Write(data); err != nil {
		return nil, err
	}

	logging.Debug("lesson saved", "id", candidate.ID, "day", candidate.Day, "start", candidate.Start)
	return &candidate, nil
}

// Remove deletes the lesson with the given id and returns it. A missing id
// is a no-op, not an error: the returned lesson is nil and the document is
// written back unchanged in content.
func (s *Service) Remove(id string) (*model.Lesson, error) {
	data, err := s.store.Read()
	if err != nil {
		return nil, err
	}

	var removed *model.Lesson
	kept := data.Lessons[:0]
	for _, l := range data.Lessons {
		if l.ID == id && removed == nil {
			lesson := l
			removed = &lesson
			continue
		}
		kept = append(kept, l)
	}
	data.Lessons = kept

	if err := s.store.Write(data); err != nil {
		return nil, err
	}

	if removed != nil {
		logging.Debug("lesson removed", "id", id)
	}
	return removed, nil
}

// Settings returns the persisted settings map.
func (s *Service) Settings() (model.Settings, error) {
	data, err := s.store.Read()
	if err != nil {
		return nil, err
	}
	return data.Settings, nil
}

// SetSetting writes one settings key. Same read-modify-write caveats as
// Save.
func (s *Service) SetSetting(key string, value any) error {
	data, err := s.store.Read()
	if err != nil {
		return err
	}
	data.Settings[key] = value
	return s.store.Write(data)
}

// Replace overwrites the whole document. Used by import in replace mode;
// every lesson must already be validated by the caller.
func (s *Service) Replace(data *model.AppData) error {
	data.Normalize()
	return s.store.Write(data)
}

// newLessonID returns a fresh opaque lesson id. UUIDv7 keeps ids sortable
// by creation time without being interpreted anywhere.
func newLessonID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// NewV7 only fails when the random source does; fall back to v4.
		return uuid.NewString()
	}
	return id.String()
}
