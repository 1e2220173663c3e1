package errors

import (
	"errors"
	"fmt"
)

// Common application errors with proper types for error handling

var (
	// ErrValidationFailed indicates a submitted form violated its field constraints
	ErrValidationFailed = errors.New("validation failed")

	// ErrStorageUnavailable indicates the document store connection is missing or lost
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrStorageWriteFailed indicates the document store rejected a write
	ErrStorageWriteFailed = errors.New("storage write failed")

	// ErrInvalidInput indicates invalid input data
	ErrInvalidInput = errors.New("invalid input")

	// ErrInternal indicates an internal server error
	ErrInternal = errors.New("internal error")
)

// StorageUnavailableError creates a storage unavailable error for an operation.
// The cause is kept in the chain for logging but never surfaced to clients.
func StorageUnavailableError(operation string, cause error) error {
	if cause == nil {
		return fmt.Errorf("%s: %w", operation, ErrStorageUnavailable)
	}
	return fmt.Errorf("%s: %w: %w", operation, ErrStorageUnavailable, cause)
}

// StorageWriteError creates a storage write error for an operation
func StorageWriteError(operation string, cause error) error {
	if cause == nil {
		return fmt.Errorf("%s: %w", operation, ErrStorageWriteFailed)
	}
	return fmt.Errorf("%s: %w: %w", operation, ErrStorageWriteFailed, cause)
}

// InvalidInputError creates an invalid input error with context
func InvalidInputError(field, reason string) error {
	return fmt.Errorf("%s: %s: %w", field, reason, ErrInvalidInput)
}

// InternalError creates an internal error with context
func InternalError(msg string) error {
	return fmt.Errorf("%s: %w", msg, ErrInternal)
}

// Is checks if an error matches a target error (works with wrapped errors)
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target any) bool {
	return errors.As(err, target)
}
