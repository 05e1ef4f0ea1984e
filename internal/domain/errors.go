package domain

import (
	"errors"
)

// ErrorKind discriminates business failures. Boundary code switches on
// the kind (via errors.Is against the matching sentinel), never on
// message text.
type ErrorKind int

const (
	KindValidation ErrorKind = iota
	KindConflict
	KindNotFound
	KindNotInRelation
)

// Sentinel errors - use with errors.Is()
var (
	ErrValidation    = errors.New("validation failed")
	ErrConflict      = errors.New("already exists")
	ErrNotFound      = errors.New("not found")
	ErrNotInRelation = errors.New("not in relation")
)

// FieldDetail is a field-level error record surfaced to API clients.
type FieldDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// BusinessError is the single typed failure raised by services and
// repositories for business-rule violations. It carries an explicit
// Kind plus structured field details.
type BusinessError struct {
	Kind    ErrorKind
	Message string
	Details []FieldDetail
}

// Error implements the error interface
func (e *BusinessError) Error() string {
	return e.Message
}

// Is allows errors.Is() to match against the sentinel of this error's kind
func (e *BusinessError) Is(target error) bool {
	switch e.Kind {
	case KindValidation:
		return target == ErrValidation
	case KindConflict:
		return target == ErrConflict
	case KindNotFound:
		return target == ErrNotFound
	case KindNotInRelation:
		return target == ErrNotInRelation
	}
	return false
}

// NewConflict builds a Conflict error with a single field detail.
func NewConflict(message, field, code string) *BusinessError {
	return &BusinessError{
		Kind:    KindConflict,
		Message: message,
		Details: []FieldDetail{{Field: field, Message: message, Code: code}},
	}
}

// NewNotFound builds a NotFound error with no field details.
func NewNotFound(message string) *BusinessError {
	return &BusinessError{
		Kind:    KindNotFound,
		Message: message,
	}
}

// NewNotInRelation builds the failure for removing an absent association.
func NewNotInRelation(message string) *BusinessError {
	return &BusinessError{
		Kind:    KindNotInRelation,
		Message: message,
	}
}

// NewValidation builds a Validation error from field details.
func NewValidation(message string, details []FieldDetail) *BusinessError {
	return &BusinessError{
		Kind:    KindValidation,
		Message: message,
		Details: details,
	}
}
