// Package errors defines the stable error codes surfaced by semdiff.
// The comparison engine itself never fails on well-formed value trees;
// every code here belongs to the I/O, decode, config, or storage layers
// that run before or after it.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents stable error codes for all failure modes
type ErrorCode string

const (
	// IOError indicates a file could not be opened or read
	IOError ErrorCode = "IO_ERROR"
	// DecodeError indicates a document could not be decoded
	DecodeError ErrorCode = "DECODE_ERROR"
	// UsageError indicates invalid flags or arguments
	UsageError ErrorCode = "USAGE_ERROR"
	// ConfigError indicates an invalid configuration or rules file
	ConfigError ErrorCode = "CONFIG_ERROR"
	// StoreError indicates a history database failure
	StoreError ErrorCode = "STORE_ERROR"
	// InternalError indicates an unexpected error
	InternalError ErrorCode = "INTERNAL_ERROR"
)

// SemdiffError represents a semdiff error with code and message
type SemdiffError struct {
	Code    ErrorCode   `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
	cause   error       // Underlying error (not exported to JSON)
}

// New creates a new SemdiffError
func New(code ErrorCode, message string, cause error) *SemdiffError {
	return &SemdiffError{
		Code:    code,
		Message: message,
		cause:   cause,
	}
}

// Error implements the error interface
func (e *SemdiffError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *SemdiffError) Unwrap() error {
	return e.cause
}

// WithDetails adds details to the error
func (e *SemdiffError) WithDetails(details interface{}) *SemdiffError {
	e.Details = details
	return e
}

// CodeOf returns the error code carried by err, or InternalError when err
// is not a SemdiffError.
func CodeOf(err error) ErrorCode {
	var se *SemdiffError
	if errors.As(err, &se) {
		return se.Code
	}
	return InternalError
}
