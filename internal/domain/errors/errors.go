package errors

import (
	"net/http"

	"beacon/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
	Retryable() bool   // Whether the caller may usefully retry the operation
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
	retryable bool
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Retryable reports whether the failure is transient.
func (e *BaseError) Retryable() bool {
	return e.retryable
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
		retryable: e.retryable,
	}
}

// AsRetryable marks the error as transient.
func (e *BaseError) AsRetryable() *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   e.details,
		retryable: true,
	}
}

// Predefined error types
var (
	// Validation errors, surfaced before any network call is made.
	ErrEmptyFields = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_FIELDS",
		"Please fill in all fields",
		"",
	)

	ErrInvalidEmail = NewBaseError(
		http.StatusBadRequest,
		"INVALID_EMAIL",
		"Please enter a valid email address",
		"",
	)

	ErrWeakPassword = NewBaseError(
		http.StatusBadRequest,
		"WEAK_PASSWORD",
		"Password must be at least 6 characters",
		"",
	)

	// Identity-provider errors mapped to fixed user-facing messages.
	ErrEmailInUse = NewBaseError(
		http.StatusConflict,
		"EMAIL_IN_USE",
		"Email already in use",
		"",
	)

	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrWrongPassword = NewBaseError(
		http.StatusUnauthorized,
		"WRONG_PASSWORD",
		"Incorrect password",
		"",
	)

	ErrAccountDisabled = NewBaseError(
		http.StatusForbidden,
		"ACCOUNT_DISABLED",
		"This account has been disabled",
		"",
	)

	ErrTooManyAttempts = NewBaseError(
		http.StatusTooManyRequests,
		"TOO_MANY_ATTEMPTS",
		"Too many attempts, please try again later",
		"",
	).AsRetryable()

	// Display-name uniqueness is enforced at registration time so that the
	// name-based login lookup stays unambiguous.
	ErrNameTaken = NewBaseError(
		http.StatusConflict,
		"NAME_TAKEN",
		"Display name already taken",
		"",
	)

	// Session errors.
	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"Sign in to continue",
		"",
	)

	ErrSessionExpired = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_EXPIRED",
		"Your session has expired, please sign in again",
		"",
	)

	// Transient infrastructure failures, kept distinct from "not found".
	ErrStoreUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"STORE_UNAVAILABLE",
		"Service temporarily unavailable, please try again",
		"",
	).AsRetryable()

	ErrProviderUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"PROVIDER_UNAVAILABLE",
		"Service temporarily unavailable, please try again",
		"",
	).AsRetryable()

	// General errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Invalid input",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// ProviderError carries an unmapped identity-provider failure: the raw
// provider message is surfaced to the user, and the transport classification
// decides whether a retry can help.
type ProviderError struct {
	code      string
	message   string
	retryable bool
	err       error
}

// NewProviderError wraps a raw provider failure that has no fixed mapping.
func NewProviderError(code, message string, retryable bool, err error) AppError {
	return &ProviderError{
		code:      code,
		message:   message,
		retryable: retryable,
		err:       err,
	}
}

// Error implements the error interface
func (e *ProviderError) Error() string {
	return e.message
}

// Unwrap exposes the underlying provider error for errors.Is/As.
func (e *ProviderError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *ProviderError) HTTPCode() int {
	if e.retryable {
		return http.StatusServiceUnavailable
	}

	return http.StatusBadGateway
}

// ErrorCode returns the business error code
func (e *ProviderError) ErrorCode() string {
	if e.code == "" {
		return "PROVIDER_ERROR"
	}

	return e.code
}

// Message returns the user-friendly error message
func (e *ProviderError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *ProviderError) Details() string {
	if e.err == nil {
		return ""
	}

	return e.err.Error()
}

// Retryable reports whether the failure is transient.
func (e *ProviderError) Retryable() bool {
	return e.retryable
}
