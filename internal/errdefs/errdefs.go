package errdefs

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrConflict         = errors.New("conflict")
	ErrPermissionDenied = errors.New("permission denied")
	ErrWrongRole        = errors.New("wrong role")
	ErrValidation       = errors.New("validation error")
	ErrAuthentication   = errors.New("authentication error")
	ErrNotInBatch       = errors.New("student not in batch")
)

var (
	ErrAlreadyExists     = fmt.Errorf("already exists: %w", ErrConflict)
	ErrInvalidState      = fmt.Errorf("invalid state: %w", ErrConflict)
	ErrAlreadySubmitted  = fmt.Errorf("already submitted: %w", ErrAlreadyExists)
	ErrNotOwnedByStudent = fmt.Errorf("submission not owned by student: %w", ErrPermissionDenied)
)

// Error carries a human readable message and unwraps to its kind.
type Error struct {
	kind error
	msg  string
}

func (e *Error) Error() string {
	return e.msg
}

func (e *Error) Unwrap() error {
	return e.kind
}

func Newf(kind error, format string, args ...any) error {
	return &Error{kind: kind, msg: fmt.Sprintf(format, args...)}
}
