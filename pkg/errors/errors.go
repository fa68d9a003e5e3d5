// Package errors provides the structured error type used across insightdump.
//
// The render engine itself never returns errors; these codes cover the
// layers around it (configuration, input decoding, export, transport).
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Input errors
	ErrFileAccess        ErrorCode = "FILE_ACCESS"
	ErrDecode            ErrorCode = "DECODE"
	ErrUnsupportedFormat ErrorCode = "UNSUPPORTED_FORMAT"

	// Output errors
	ErrFileWrite ErrorCode = "FILE_WRITE"
	ErrDirCreate ErrorCode = "DIR_CREATE"
	ErrExport    ErrorCode = "EXPORT"
	ErrResponse  ErrorCode = "RESPONSE"
	ErrServe     ErrorCode = "SERVE"
)

// InsightError represents a structured error with code and details
type InsightError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *InsightError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *InsightError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is an InsightError with the same code
func (e *InsightError) Is(target error) bool {
	var targetErr *InsightError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new InsightError with the given code and message
func New(code ErrorCode, message string) *InsightError {
	return &InsightError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new InsightError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *InsightError {
	return &InsightError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an InsightError
func Wrap(err error, code ErrorCode, message string) *InsightError {
	if err == nil {
		return nil
	}
	return &InsightError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *InsightError {
	if err == nil {
		return nil
	}
	return &InsightError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *InsightError) WithDetail(key string, value interface{}) *InsightError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var insightErr *InsightError
	if errors.As(err, &insightErr) {
		return insightErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an InsightError
func GetErrorCode(err error) ErrorCode {
	var insightErr *InsightError
	if errors.As(err, &insightErr) {
		return insightErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not an InsightError
func GetErrorDetails(err error) map[string]interface{} {
	var insightErr *InsightError
	if errors.As(err, &insightErr) {
		return insightErr.Details
	}
	return nil
}
