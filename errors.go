package userdb

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that no user has the requested id.
// Returned by FindByID, Update and Delete; callers treat it as a normal outcome.
//
// Usage example:
//
//	user, err := store.FindByID(ctx, 7)
//	if errors.Is(err, userdb.ErrNotFound) {
//	    // report the miss
//	}
var ErrNotFound = errors.New("userdb: record not found")

// ValidationError reports input that violates a record rule. No statement is executed
// once a ValidationError is returned. Several of them may be combined with multierr.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// IsValidation reports whether err is, or contains, a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// StorageError wraps a failure reported by the database engine or the file system.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return "userdb: " + e.Op + ": " + e.Err.Error()
}

func (e *StorageError) Unwrap() error { return e.Err }

// wrapStorage turns an engine error into a StorageError and passes the
// package's own outcomes (not found, validation, already wrapped) through unchanged.
func wrapStorage(op string, err error) error {
	if err == nil {
		return nil
	}
	var se *StorageError
	if errors.Is(err, ErrNotFound) || IsValidation(err) || errors.As(err, &se) {
		return err
	}
	return &StorageError{Op: op, Err: err}
}
