package utils

import (
	"errors"
	"fmt"
)

// ErrorKind classifies application errors so callers can decide how to react
// without parsing message text.
type ErrorKind string

const (
	KindValidation    ErrorKind = "validation"
	KindAuthorization ErrorKind = "authorization"
	KindState         ErrorKind = "state"
	KindConflict      ErrorKind = "conflict"
	KindPayment       ErrorKind = "payment"
	KindNotFound      ErrorKind = "not_found"
)

// AppError is the error type returned by all service-layer operations.
type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewValidationError(msg string) error {
	return &AppError{Kind: KindValidation, Message: msg}
}

func NewAuthorizationError(msg string) error {
	return &AppError{Kind: KindAuthorization, Message: msg}
}

func NewStateError(msg string) error {
	return &AppError{Kind: KindState, Message: msg}
}

func NewConflictError(msg string) error {
	return &AppError{Kind: KindConflict, Message: msg}
}

func NewPaymentError(msg string, err error) error {
	return &AppError{Kind: KindPayment, Message: msg, Err: err}
}

func NewNotFoundError(msg string) error {
	return &AppError{Kind: KindNotFound, Message: msg}
}

// KindOf returns the ErrorKind of err, or an empty kind for plain errors.
func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return ""
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}
