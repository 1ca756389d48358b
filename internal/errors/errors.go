package errors

import (
	"errors"
	"fmt"
)

// AppError is an application-specific error type
type AppError struct {
	Code    string
	Message string
	// Details carries the upstream-supplied error payload, when one exists
	Details string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithDetails returns a copy of the error carrying the given details
func (e *AppError) WithDetails(details string) *AppError {
	cp := *e
	cp.Details = details
	return &cp
}

// creates a new AppError
func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// wraps an error with a code and message
func Wrap(err error, code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// As returns the first AppError in err's chain
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// CodeOf returns the code of the first AppError in err's chain,
// or CodeInternal when there is none.
func CodeOf(err error) string {
	if appErr, ok := As(err); ok {
		return appErr.Code
	}
	return CodeInternal
}

// DetailsOf returns the upstream details of err, falling back to its message
func DetailsOf(err error) string {
	if err == nil {
		return ""
	}
	if appErr, ok := As(err); ok && appErr.Details != "" {
		return appErr.Details
	}
	return err.Error()
}

// Error code constants
const (
	CodeInternal         = "INTERNAL_ERROR"
	CodeNotFound         = "NOT_FOUND"
	CodeInvalidArg       = "INVALID_ARGUMENT"
	CodeExternal         = "EXTERNAL_ERROR"
	CodeMissingQuery     = "MISSING_QUERY"      // No channel query text was supplied
	CodeMissingChannelID = "MISSING_CHANNEL_ID" // No channel ID was supplied for a video listing
)
