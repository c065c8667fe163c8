package models

import "errors"

// ErrorKind classifies an AppError into one of the four failure modes
// the API can produce. Translation to HTTP status codes happens only at
// the handler boundary.
type ErrorKind int

const (
	ErrInvalidInput ErrorKind = iota // malformed or missing input
	ErrNotFound                      // referenced entity does not exist
	ErrConflict                      // duplicate unique key
	ErrStorage                       // underlying persistence failure
)

// AppError is the closed error type shared by services and
// repositories. Message is always safe to return to the caller.
type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewInvalidInput(message string) *AppError {
	return &AppError{Kind: ErrInvalidInput, Message: message}
}

func NewNotFound(message string) *AppError {
	return &AppError{Kind: ErrNotFound, Message: message}
}

func NewConflict(message string) *AppError {
	return &AppError{Kind: ErrConflict, Message: message}
}

// NewStorageError wraps an unexpected persistence failure. The original
// error stays reachable through Unwrap for logging.
func NewStorageError(message string, err error) *AppError {
	return &AppError{Kind: ErrStorage, Message: message, Err: err}
}

// KindOf extracts the ErrorKind from err. Errors that are not AppErrors
// report ErrStorage, the catch-all for unclassified failures.
func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return ErrStorage
}
