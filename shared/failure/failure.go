package failure

import (
	"errors"
)

// Code classifies a Failure so callers can decide where and how to report it.
type Code int

const (
	// CodeRejected is a business-rule precondition that did not hold.
	CodeRejected Code = iota + 1
	// CodeInputFormat is user input with the wrong shape.
	CodeInputFormat
	// CodeStatement is a single statement that failed to execute.
	CodeStatement
	// CodeUnavailable is a lost or unusable database connection.
	CodeUnavailable
)

// Failure is a wrapper for error messages and codes.
type Failure struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`

	cause error
}

var InvalidCredentials = &Failure{Code: CodeRejected, Message: "invalid credentials"}
var AccessDenied = &Failure{Code: CodeRejected, Message: "access denied"}
var AlreadyBooked = &Failure{Code: CodeRejected, Message: "room is already booked"}

// Error returns the failure message.
func (e *Failure) Error() string {
	return e.Message
}

// Unwrap exposes the driver error behind a Statement or Unavailable failure.
func (e *Failure) Unwrap() error {
	return e.cause
}

// Is matches failures by code and message so predefined failures work with errors.Is.
func (e *Failure) Is(target error) bool {
	var fail *Failure
	if !errors.As(target, &fail) {
		return false
	}

	return e.Code == fail.Code && e.Message == fail.Message
}

// Rejected returns a new Failure for a business rule that refused the operation.
func Rejected(msg string) error {
	return &Failure{
		Code:    CodeRejected,
		Message: msg,
	}
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return Rejected(entityName + " not found")
}

// InputFormat returns a new Failure for malformed input.
func InputFormat(msg string) error {
	return &Failure{
		Code:    CodeInputFormat,
		Message: msg,
	}
}

// Statement returns a new Failure with the message derived from the failing statement error.
func Statement(err error) error {
	if err != nil {
		return &Failure{
			Code:    CodeStatement,
			Message: err.Error(),
			cause:   err,
		}
	}

	return nil
}

// Unavailable returns a new Failure for a connection that can no longer serve statements.
func Unavailable(err error) error {
	if err != nil {
		return &Failure{
			Code:    CodeUnavailable,
			Message: err.Error(),
			cause:   err,
		}
	}

	return nil
}

// GetCode returns the failure code of an error interface.
func GetCode(err error) Code {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return CodeStatement
}

// IsRejected reports whether err is a business-rule rejection.
func IsRejected(err error) bool {
	return err != nil && GetCode(err) == CodeRejected
}
