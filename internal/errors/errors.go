// Package errors defines the service error taxonomy and its HTTP mapping.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes returned to clients.
const (
	CodeValidation          = "validation_error"
	CodeUnauthorized        = "unauthorized"
	CodeNotFound            = "not_found"
	CodeInternal            = "internal_error"
	CodeStoreNotInitialized = "store_not_initialized"
	CodeRateLimitExceeded   = "rate_limit_exceeded"
	CodeMethodNotAllowed    = "method_not_allowed"
)

// ServiceError is the error type surfaced by handlers. Every failure that
// crosses the HTTP boundary is mapped to one of these.
type ServiceError struct {
	Code       string                 `json:"code"`
	Message    string                 `json:"message"`
	HTTPStatus int                    `json:"-"`
	Details    map[string]interface{} `json:"details,omitempty"`
	cause      error
}

func (e *ServiceError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the underlying cause to errors.Is/errors.As.
func (e *ServiceError) Unwrap() error { return e.cause }

// WithDetails attaches a key/value pair to the error and returns it.
func (e *ServiceError) WithDetails(key string, value interface{}) *ServiceError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithCause attaches an underlying error and returns the ServiceError.
func (e *ServiceError) WithCause(err error) *ServiceError {
	e.cause = err
	return e
}

// Validation reports malformed or missing input.
func Validation(message string) *ServiceError {
	return &ServiceError{
		Code:       CodeValidation,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

// Unauthorized reports a missing or unresolvable credential.
func Unauthorized(message string) *ServiceError {
	return &ServiceError{
		Code:       CodeUnauthorized,
		Message:    message,
		HTTPStatus: http.StatusUnauthorized,
	}
}

// NotFound reports an operation targeting a record that does not exist.
func NotFound(message string) *ServiceError {
	return &ServiceError{
		Code:       CodeNotFound,
		Message:    message,
		HTTPStatus: http.StatusNotFound,
	}
}

// Internal reports an unexpected failure.
func Internal(message string, cause error) *ServiceError {
	return &ServiceError{
		Code:       CodeInternal,
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
		cause:      cause,
	}
}

// StoreNotInitialized reports that the backing document store is not
// configured. The server keeps running; data operations fail with this.
func StoreNotInitialized() *ServiceError {
	return &ServiceError{
		Code:       CodeStoreNotInitialized,
		Message:    "document store is not configured",
		HTTPStatus: http.StatusInternalServerError,
	}
}

// MethodNotAllowed reports an HTTP method the route does not support.
func MethodNotAllowed() *ServiceError {
	return &ServiceError{
		Code:       CodeMethodNotAllowed,
		Message:    "method not allowed",
		HTTPStatus: http.StatusMethodNotAllowed,
	}
}

// RateLimitExceeded reports that a client exceeded its request budget.
func RateLimitExceeded(limit int, window string) *ServiceError {
	e := &ServiceError{
		Code:       CodeRateLimitExceeded,
		Message:    "rate limit exceeded",
		HTTPStatus: http.StatusTooManyRequests,
	}
	return e.WithDetails("limit", limit).WithDetails("window", window)
}

// FromError returns err as a *ServiceError, wrapping unknown errors as
// internal so that handlers never leak raw error text with a 200-family
// status.
func FromError(err error) *ServiceError {
	var se *ServiceError
	if errors.As(err, &se) {
		return se
	}
	return Internal("internal server error", err)
}
