package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is the error type shared by every layer.
// Design notes:
// 1. Code is the business error code; its first three digits are the HTTP status
// 2. Message is the client-facing detail text
// 3. Err is the internal cause, logged but never serialized
// 4. Fields carries per-field validation failures
type AppError struct {
	Code    int          `json:"code"`
	Message string       `json:"message"`
	Fields  []FieldError `json:"fields,omitempty"`
	Err     error        `json:"-"`
}

// FieldError is a single request validation failure.
type FieldError struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap supports errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Err
}

// HTTPStatus derives the HTTP status from the code prefix.
func (e *AppError) HTTPStatus() int {
	status := e.Code / 100
	if status < 400 || status > 599 {
		return http.StatusInternalServerError
	}
	return status
}

// New creates an AppError.
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an infrastructure failure (database, cache, disk) as an internal error.
func Wrap(err error, message string) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: message,
		Err:     err,
	}
}

// WrapCode wraps err keeping a specific code.
func WrapCode(err error, code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Validation builds a request validation error from field failures.
func Validation(fields ...FieldError) *AppError {
	return &AppError{
		Code:    ErrCodeValidation,
		Message: "request validation failed",
		Fields:  fields,
	}
}

// =========================================
// Error codes
// =========================================
// Layout: the first three digits are the HTTP status, the last two the detail.
// - 404xx: missing resources
// - 405xx: unsupported method on a known route
// - 422xx: request validation
// - 429xx: rate limited
// - 500xx: infrastructure failures

const (
	ErrCodeInternal      = 50000
	ErrCodeDatabaseError = 50001
	ErrCodeCacheError    = 50002
	ErrCodeStorageError  = 50003

	ErrCodeNotFound     = 40400
	ErrCodeBookNotFound = 40402

	ErrCodeMethodNotAllowed = 40500

	ErrCodeValidation = 42200
	ErrCodeBindError  = 42202

	ErrCodeTooManyRequests = 42900
)

// =========================================
// Predefined errors
// =========================================

var (
	ErrInternal = New(ErrCodeInternal, "Internal Server Error")

	ErrNotFound     = New(ErrCodeNotFound, "Not Found")
	ErrBookNotFound = New(ErrCodeBookNotFound, "Book not found")

	ErrTooManyRequests = New(ErrCodeTooManyRequests, "Too Many Requests")
)

// IsAppError reports whether err is or wraps an AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts the AppError, wrapping anything else as internal.
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, "Internal Server Error")
}

// IsCode reports whether err carries the given code.
func IsCode(err error, code int) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}
