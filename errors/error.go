package errors

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/dynalabs/rategraph/errors/class"
)

// compile time check for the Error interfaces.
var _ ClassError = &Error{}

// Error is the common error definition used in the rategraph project.
type Error struct {
	// ID is a unique error instance identification number.
	ID uuid.UUID

	// Classification defines the error classification.
	Classification class.Class

	// Detail contains the detailed information.
	Detail string

	// InternalMessage is a message used as a string for the
	// golang error interface implementation.
	InternalMessage string

	// Operation is the operation name when the error occurred.
	Operation string
}

// New creates new error instance with given 'class' and message 'message'.
func New(c class.Class, message string) *Error {
	return &Error{
		ID:              uuid.New(),
		Classification:  c,
		InternalMessage: message,
	}
}

// Newf creates new error instance with provided 'class' with formatted message.
func Newf(c class.Class, format string, args ...interface{}) *Error {
	return &Error{
		ID:              uuid.New(),
		Classification:  c,
		InternalMessage: fmt.Sprintf(format, args...),
	}
}

// Class implements ClassError interface.
func (e *Error) Class() class.Class {
	return e.Classification
}

// Error implements error interface.
func (e *Error) Error() string {
	return e.InternalMessage
}

// SetDetail sets the error 'detail' and returns itself.
func (e *Error) SetDetail(detail string) *Error {
	e.Detail = detail
	return e
}

// SetDetailf sets the error's formatted detail and returns itself.
func (e *Error) SetDetailf(format string, args ...interface{}) *Error {
	e.Detail = fmt.Sprintf(format, args...)
	return e
}

// SetOperation sets the error's operation and returns itself.
func (e *Error) SetOperation(operation string) *Error {
	e.Operation = operation
	return e
}

// WrapDetail wraps the 'detail' for given error. Wrapping appends the new
// detail to the front of the error detail message.
func (e *Error) WrapDetail(detail string) *Error {
	return e.wrapDetail(detail)
}

// WrapDetailf wraps the detail with provided formatting for given error.
func (e *Error) WrapDetailf(format string, args ...interface{}) *Error {
	return e.wrapDetail(fmt.Sprintf(format, args...))
}

func (e *Error) wrapDetail(detail string) *Error {
	if e.Detail == "" {
		e.Detail = detail
	} else {
		e.Detail = detail + " " + e.Detail
	}
	return e
}
