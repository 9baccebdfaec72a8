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
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Catalog and sequence errors
	ErrCatalogInvalid     ErrorCode = "CATALOG_INVALID"
	ErrUnknownComponent   ErrorCode = "UNKNOWN_COMPONENT"
	ErrPermanentComponent ErrorCode = "PERMANENT_COMPONENT"
	ErrIndexOutOfRange    ErrorCode = "INDEX_OUT_OF_RANGE"

	// Pattern, ticket and URL errors
	ErrInvalidPattern ErrorCode = "INVALID_PATTERN"
	ErrInvalidTicket  ErrorCode = "INVALID_TICKET"
	ErrInvalidURL     ErrorCode = "INVALID_URL"

	// Output errors
	ErrRender ErrorCode = "RENDER"
)

// TicketlinkError represents a structured error with code and details
type TicketlinkError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *TicketlinkError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *TicketlinkError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface. Two errors are equal when their codes match.
func (e *TicketlinkError) Is(target error) bool {
	var targetErr *TicketlinkError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new TicketlinkError with the given code and message
func New(code ErrorCode, message string) *TicketlinkError {
	return &TicketlinkError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new TicketlinkError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *TicketlinkError {
	return &TicketlinkError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a TicketlinkError
func Wrap(err error, code ErrorCode, message string) *TicketlinkError {
	if err == nil {
		return nil
	}
	return &TicketlinkError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *TicketlinkError {
	if err == nil {
		return nil
	}
	return &TicketlinkError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *TicketlinkError) WithDetail(key string, value interface{}) *TicketlinkError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *TicketlinkError) WithDetails(details map[string]interface{}) *TicketlinkError {
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
	var tlErr *TicketlinkError
	if errors.As(err, &tlErr) {
		return tlErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a TicketlinkError
func GetErrorCode(err error) ErrorCode {
	var tlErr *TicketlinkError
	if errors.As(err, &tlErr) {
		return tlErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a TicketlinkError
func GetErrorDetails(err error) map[string]interface{} {
	var tlErr *TicketlinkError
	if errors.As(err, &tlErr) {
		return tlErr.Details
	}
	return nil
}
