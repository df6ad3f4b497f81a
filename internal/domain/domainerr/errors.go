// Package domainerr holds the error categories shared by every domain
// package. Specific rule violations are declared as *Error sentinels next to
// the entity they guard and match both themselves and their Kind via errors.Is.
package domainerr

import (
	"errors"
	"fmt"
)

// Kind sentinels. Callers branch on these; the HTTP adapter maps them to
// status codes.
var (
	ErrValidation = errors.New("validation error")
	ErrConflict   = errors.New("state conflict")
	ErrNotFound   = errors.New("not found")
	// ErrStorage marks load/save failures of the document. It never wraps
	// one of the three domain kinds above.
	ErrStorage = errors.New("storage unavailable")
)

type Error struct {
	Kind    error
	Code    string
	Field   string
	Message string
}

func (e *Error) Error() string {
	if e.Field != "" {
		return e.Field + ": " + e.Message
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Kind }

// Validation declares a rule violation on a single input field.
func Validation(code, field, msg string) *Error {
	return &Error{Kind: ErrValidation, Code: code, Field: field, Message: msg}
}

func Conflict(code, msg string) *Error {
	return &Error{Kind: ErrConflict, Code: code, Message: msg}
}

func NotFound(code, msg string) *Error {
	return &Error{Kind: ErrNotFound, Code: code, Message: msg}
}

// OnField copies a validation error onto another field, keeping its code.
// The copy still matches the original through errors.Is.
func OnField(err *Error, field string) error {
	return &fieldError{e: Error{Kind: err.Kind, Code: err.Code, Field: field, Message: err.Message}, origin: err}
}

type fieldError struct {
	e      Error
	origin *Error
}

func (f *fieldError) Error() string        { return f.e.Error() }
func (f *fieldError) Unwrap() error        { return f.e.Kind }
func (f *fieldError) Is(target error) bool { return target == f.origin }

func (f *fieldError) As(target any) bool {
	if t, ok := target.(**Error); ok {
		*t = &f.e
		return true
	}
	return false
}

// KindOf reports which of the kind sentinels err belongs to, or nil.
func KindOf(err error) error {
	for _, k := range []error{ErrValidation, ErrConflict, ErrNotFound, ErrStorage} {
		if errors.Is(err, k) {
			return k
		}
	}
	return nil
}

// Storage wraps an infrastructure failure of op so it matches ErrStorage.
func Storage(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStorage, op, err)
}
