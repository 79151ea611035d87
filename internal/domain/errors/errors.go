package errors

import (
	"net/http"

	"its/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
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
	if e.details == "" {
		return e.message
	}

	return e.message + ": " + e.details
}

// Is matches any BaseError carrying the same business code, so copies made by
// WithDetails still satisfy errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
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

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Validation
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	// Duplication
	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"username is already taken",
		"",
	)

	ErrEmailAlreadyExists = NewBaseError(
		http.StatusConflict,
		"EMAIL_ALREADY_EXISTS",
		"email is already registered",
		"",
	)

	ErrShipAlreadyExists = NewBaseError(
		http.StatusConflict,
		"SHIP_ALREADY_EXISTS",
		"space ship with this name already exists",
		"",
	)

	ErrPlanetAlreadyExists = NewBaseError(
		http.StatusConflict,
		"PLANET_ALREADY_EXISTS",
		"planet with this name already exists",
		"",
	)

	// Lookup
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"user not found",
		"",
	)

	ErrPlanetNotFound = NewBaseError(
		http.StatusNotFound,
		"PLANET_NOT_FOUND",
		"planet not found",
		"",
	)

	ErrShipNotFound = NewBaseError(
		http.StatusNotFound,
		"SHIP_NOT_FOUND",
		"space ship not found",
		"",
	)

	ErrMissionNotFound = NewBaseError(
		http.StatusNotFound,
		"MISSION_NOT_FOUND",
		"mission not found",
		"",
	)

	// Authorization
	ErrOwnershipViolation = NewBaseError(
		http.StatusForbidden,
		"OWNERSHIP_VIOLATION",
		"attempt to access private data by a user who is not its owner",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"wrong username or password",
		"",
	)

	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"missing or invalid access token",
		"",
	)

	ErrPermissionDenied = NewBaseError(
		http.StatusForbidden,
		"PERMISSION_DENIED",
		"role does not allow this operation",
		"",
	)

	ErrRateLimited = NewBaseError(
		http.StatusTooManyRequests,
		"RATE_LIMITED",
		"too many requests",
		"",
	)

	// State conflicts
	ErrMissionStateConflict = NewBaseError(
		http.StatusConflict,
		"MISSION_STATE_CONFLICT",
		"mission status does not allow this operation",
		"",
	)

	ErrPlanetInUse = NewBaseError(
		http.StatusConflict,
		"PLANET_IN_USE",
		"planet is referenced by missions",
		"",
	)

	ErrShipNotAvailable = NewBaseError(
		http.StatusConflict,
		"SHIP_NOT_AVAILABLE",
		"space ship is not free",
		"",
	)

	// Configuration
	ErrConfiguration = NewBaseError(
		http.StatusInternalServerError,
		"CONFIGURATION_INVALID",
		"required configuration value is missing or invalid",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"password processing failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
