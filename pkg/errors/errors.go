package errors

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a failure class; tests match on it instead of messages
type ErrorCode string

const (
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Input files
	ErrRulesRead  ErrorCode = "RULES_READ"
	ErrEmailsRead ErrorCode = "EMAILS_READ"

	// A rule whose translated pattern is not a valid regexp
	ErrRuleCompile ErrorCode = "RULE_COMPILE"

	// Configuration
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
)

// CheckError is a coded error. Details is nil until WithDetail is called.
type CheckError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

func (e *CheckError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *CheckError) Unwrap() error {
	return e.Wrapped
}

// Is matches any CheckError with the same code
func (e *CheckError) Is(target error) bool {
	var other *CheckError
	return errors.As(target, &other) && e.Code == other.Code
}

// WithDetail attaches a key/value pair and returns e for chaining
func (e *CheckError) WithDetail(key string, value interface{}) *CheckError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

func New(code ErrorCode, message string) *CheckError {
	return &CheckError{Code: code, Message: message}
}

func Newf(code ErrorCode, format string, args ...interface{}) *CheckError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap returns nil when err is nil
func Wrap(err error, code ErrorCode, message string) *CheckError {
	if err == nil {
		return nil
	}
	return &CheckError{Code: code, Message: message, Wrapped: err}
}

// Wrapf returns nil when err is nil
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *CheckError {
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// IsErrorCode reports whether the outermost CheckError in err's chain carries code
func IsErrorCode(err error, code ErrorCode) bool {
	var checkErr *CheckError
	return errors.As(err, &checkErr) && checkErr.Code == code
}

// GetErrorCode returns the outermost code in err's chain, or ErrUnknown
func GetErrorCode(err error) ErrorCode {
	var checkErr *CheckError
	if errors.As(err, &checkErr) {
		return checkErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the outermost CheckError's details, or nil
func GetErrorDetails(err error) map[string]interface{} {
	var checkErr *CheckError
	if errors.As(err, &checkErr) {
		return checkErr.Details
	}
	return nil
}
