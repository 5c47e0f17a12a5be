package command

import (
	"errors"
	"fmt"

	"github.com/arllen133/userdb"
)

// Process exit statuses.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// usageError marks malformed command lines (unknown commands, flags or arguments).
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }

func (e *usageError) Unwrap() error { return e.err }

func usageErrorf(format string, args ...any) error {
	return &usageError{err: fmt.Errorf(format, args...)}
}

// ExitCode maps an error returned by the command tree to a process exit status.
// Validation and usage problems exit with 2, storage and other failures with 1.
// Not-found outcomes are not errors and never reach this function.
func ExitCode(err error) int {
	var ue *usageError
	switch {
	case err == nil:
		return ExitOK
	case userdb.IsValidation(err), errors.As(err, &ue):
		return ExitUsage
	default:
		return ExitFailure
	}
}
