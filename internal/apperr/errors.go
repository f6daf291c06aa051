// Package apperr provides the error taxonomy for OrarioDoc.
// It defines five kinds: ValidationError and ConflictError (fixable by the
// user before any write happens), NotFoundError (stale reference),
// StorageError (backend failure) and MigrationError (non-fatal, downgraded
// to an empty document).
package apperr

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common conditions.
var (
	ErrLessonNotFound  = errors.New("lesson not found")
	ErrNoBackend       = errors.New("no usable storage backend")
	ErrLegacyCorrupted = errors.New("legacy data is not valid JSON")
)

// ValidationError carries every field-level problem found on a candidate
// lesson. It is produced before any store interaction.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return "invalid lesson: " + strings.Join(e.Errors, "; ")
}

// NewValidationError creates a ValidationError from accumulated messages.
func NewValidationError(msgs []string) *ValidationError {
	return &ValidationError{Errors: msgs}
}

// ConflictError reports the lessons a candidate overlaps with on the same
// day. Names identifies the conflicting lessons for display.
type ConflictError struct {
	Names []string
}

func (e *ConflictError) Error() string {
	return "lesson conflicts with: " + strings.Join(e.Names, ", ")
}

// NewConflictError creates a ConflictError from conflicting lesson labels.
func NewConflictError(names []string) *ConflictError {
	return &ConflictError{Names: names}
}

// NotFoundError is returned when an edit or explicit lookup references a
// lesson id no longer present.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("lesson '%s' no longer exists", e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return ErrLessonNotFound
}

// StorageError wraps a failure of the persistence backend.
type StorageError struct {
	Op    string // The operation that failed (read, write, open, migrate)
	Cause error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s failed: %v", e.Op, e.Cause)
}

func (e *StorageError) Unwrap() error {
	return e.Cause
}

// NewStorageError creates a StorageError with operation context.
func NewStorageError(op string, cause error) *StorageError {
	return &StorageError{Op: op, Cause: cause}
}

// MigrationError wraps a parse or I/O failure during the one-time legacy
// migration. It is always downgraded by callers: the app proceeds with the
// empty default document and never blocks startup on it.
type MigrationError struct {
	Cause error
}

func (e *MigrationError) Error() string {
	return fmt.Sprintf("migration failed: %v", e.Cause)
}

func (e *MigrationError) Unwrap() error {
	return e.Cause
}

// IsValidation checks if an error is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsConflict checks if an error is a ConflictError.
func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}

// IsNotFound checks if an error is a NotFoundError.
func IsNotFound(err error) bool {
	var ne *NotFoundError
	return errors.As(err, &ne) || errors.Is(err, ErrLessonNotFound)
}

// AsValidation extracts a ValidationError from an error chain.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}

// AsConflict extracts a ConflictError from an error chain.
func AsConflict(err error) (*ConflictError, bool) {
	var ce *ConflictError
	ok := errors.As(err, &ce)
	return ce, ok
}

// AsStorage extracts a StorageError from an error chain.
func AsStorage(err error) (*StorageError, bool) {
	var se *StorageError
	ok := errors.As(err, &se)
	return se, ok
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with formatted additional context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
