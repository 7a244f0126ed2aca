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

	// Merge pipeline errors
	ErrMissingSource  ErrorCode = "MISSING_SOURCE"
	ErrSourceNotFound ErrorCode = "SOURCE_NOT_FOUND"
	ErrSourceRead     ErrorCode = "SOURCE_READ"
	ErrSourceDecode   ErrorCode = "SOURCE_DECODE"
	ErrTemplateRead   ErrorCode = "TEMPLATE_READ"
	ErrTransform      ErrorCode = "TRANSFORM"
	ErrInvalidLabel   ErrorCode = "INVALID_LABEL"
	ErrWrite          ErrorCode = "WRITE"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"
)

// fatalCodes lists the codes that must escape the merge recovery boundary.
var fatalCodes = map[ErrorCode]bool{
	ErrWrite:       true,
	ErrConfigLoad:  true,
	ErrConfigValid: true,
}

// MergeError represents a structured error with code and details.
//
// Error() returns the human message alone so it can be printed verbatim on
// the log sink; the code and wrapped cause stay reachable through the struct
// and Unwrap.
type MergeError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *MergeError) Error() string {
	if e.Message == "" && e.Wrapped != nil {
		return e.Wrapped.Error()
	}
	return e.Message
}

// Describe returns the message prefixed with the error code, for diagnostics
func (e *MergeError) Describe() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Error())
}

// Unwrap implements the errors.Unwrap interface
func (e *MergeError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *MergeError) Is(target error) bool {
	var targetErr *MergeError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new MergeError with the given code and message
func New(code ErrorCode, message string) *MergeError {
	return &MergeError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new MergeError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *MergeError {
	return &MergeError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a MergeError. An empty message keeps
// the wrapped error's text as the visible message.
func Wrap(err error, code ErrorCode, message string) *MergeError {
	if err == nil {
		return nil
	}
	return &MergeError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *MergeError {
	if err == nil {
		return nil
	}
	return &MergeError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *MergeError) WithDetail(key string, value interface{}) *MergeError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *MergeError) WithDetails(details map[string]interface{}) *MergeError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var mergeErr *MergeError
	if errors.As(err, &mergeErr) {
		return mergeErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a MergeError
func GetErrorCode(err error) ErrorCode {
	var mergeErr *MergeError
	if errors.As(err, &mergeErr) {
		return mergeErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a MergeError
func GetErrorDetails(err error) map[string]interface{} {
	var mergeErr *MergeError
	if errors.As(err, &mergeErr) {
		return mergeErr.Details
	}
	return nil
}

// IsFatal reports whether err carries a code that aborts the invocation
// instead of being logged and swallowed.
func IsFatal(err error) bool {
	if err == nil {
		return false
	}
	return fatalCodes[GetErrorCode(err)]
}
