// Package errors provides structured error types for the godocker library.
package errors

import (
	"errors"
	"fmt"
)

// ErrorType represents the category of error that occurred.
type ErrorType string

const (
	// ErrorTypeConnection represents socket connect failures
	ErrorTypeConnection ErrorType = "connection"
	// ErrorTypeProtocol represents malformed or non-HTTP peer responses
	ErrorTypeProtocol ErrorType = "protocol"
	// ErrorTypeServer represents daemon-side failures (status >= 500)
	ErrorTypeServer ErrorType = "server"
	// ErrorTypeIO represents read/write errors on an established connection
	ErrorTypeIO ErrorType = "io"
	// ErrorTypeValidation represents invalid caller-supplied input
	ErrorTypeValidation ErrorType = "validation"
)

// Error represents a structured error with context information.
type Error struct {
	Type       ErrorType `json:"type"`
	Message    string    `json:"message"`
	Cause      error     `json:"cause,omitempty"`
	Address    string    `json:"address,omitempty"`
	StatusCode int       `json:"status_code,omitempty"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches the target type.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Type == t.Type
	}
	return false
}

// NewConnectionError creates a socket connect error.
func NewConnectionError(address string, cause error) *Error {
	return &Error{
		Type:    ErrorTypeConnection,
		Message: fmt.Sprintf("failed to connect to %s", address),
		Cause:   cause,
		Address: address,
	}
}

// NewProtocolError creates a protocol error.
func NewProtocolError(message string, cause error) *Error {
	return &Error{
		Type:    ErrorTypeProtocol,
		Message: message,
		Cause:   cause,
	}
}

// NewServerError creates a daemon-side error for a status code >= 500.
func NewServerError(statusCode int) *Error {
	return &Error{
		Type:       ErrorTypeServer,
		Message:    fmt.Sprintf("daemon replied with status %d", statusCode),
		StatusCode: statusCode,
	}
}

// NewIOError creates an I/O error.
func NewIOError(operation string, cause error) *Error {
	return &Error{
		Type:    ErrorTypeIO,
		Message: fmt.Sprintf("I/O error during %s", operation),
		Cause:   cause,
	}
}

// NewValidationError creates a validation error.
func NewValidationError(message string) *Error {
	return &Error{
		Type:    ErrorTypeValidation,
		Message: message,
	}
}

// GetErrorType returns the error type if it's a structured error.
func GetErrorType(err error) ErrorType {
	var e *Error
	if errors.As(err, &e) {
		return e.Type
	}
	return ""
}

// IsConnectionError checks if an error is a connect failure.
func IsConnectionError(err error) bool {
	return GetErrorType(err) == ErrorTypeConnection
}

// IsProtocolError checks if an error indicates a malformed peer response.
func IsProtocolError(err error) bool {
	return GetErrorType(err) == ErrorTypeProtocol
}

// IsServerError checks if an error is a daemon-side failure. When it is, the
// second return value carries the status code the daemon replied with.
func IsServerError(err error) (bool, int) {
	var e *Error
	if errors.As(err, &e) && e.Type == ErrorTypeServer {
		return true, e.StatusCode
	}
	return false, 0
}
