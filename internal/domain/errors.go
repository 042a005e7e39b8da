package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Error kinds. Handlers translate these to HTTP status codes.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrMissingHeader   = errors.New("missing or invalid header")
	ErrNotFound        = errors.New("resource not found")
	ErrConflict        = errors.New("resource conflict")
	ErrStorage         = errors.New("storage error")
)

// Error carries an error kind, a message safe to show to clients and an
// optional underlying cause.
type Error struct {
	Kind    error
	Message string
	Err     error
}

// NewError creates an Error of the given kind.
func NewError(kind error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// WrapError creates an Error of the given kind that wraps cause.
func WrapError(kind error, cause error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Err: cause}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Is reports whether target is the kind of this error.
func (e *Error) Is(target error) bool {
	return e.Kind == target
}

func (e *Error) Unwrap() error {
	return e.Err
}

// MessageOf returns the client-facing message of err.
func MessageOf(err error) string {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr.Message
	}
	return err.Error()
}

// DuplicateSleepLogError is returned both by the advisory existence check and
// by the store's unique constraint.
func DuplicateSleepLogError(userID uuid.UUID, date datatypes.Date) *Error {
	return NewError(ErrConflict, "sleep log already exists for user %s on date %s", userID, FormatDate(date))
}
