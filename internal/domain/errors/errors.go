package errors

import (
	"net/http"

	"carewatch/internal/errors"
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
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches errors that carry the same business code, so WithDetails copies still
// satisfy errors.Is against the predefined values.
func (e *BaseError) Is(target error) bool {
	other, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == other.errorCode
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
	// Validation errors: malformed input rejected before any state mutation
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrInvalidCoordinates = NewBaseError(
		http.StatusBadRequest,
		"INVALID_COORDINATES",
		"Coordinates are outside geographic bounds",
		"",
	)

	ErrInvalidGeofence = NewBaseError(
		http.StatusBadRequest,
		"INVALID_GEOFENCE",
		"Geofence definition is invalid",
		"",
	)

	ErrInvalidConfidence = NewBaseError(
		http.StatusBadRequest,
		"INVALID_CONFIDENCE",
		"Confidence must be between 0 and 100",
		"",
	)

	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	// Resource lookups
	ErrGeofenceNotFound = NewBaseError(
		http.StatusNotFound,
		"GEOFENCE_NOT_FOUND",
		"Geofence not found",
		"",
	)

	ErrEmergencyNotFound = NewBaseError(
		http.StatusNotFound,
		"EMERGENCY_NOT_FOUND",
		"Emergency not found",
		"",
	)

	ErrWanderingNotFound = NewBaseError(
		http.StatusNotFound,
		"WANDERING_NOT_FOUND",
		"Wandering detection not found",
		"",
	)

	// State machine errors
	ErrInvalidTransition = NewBaseError(
		http.StatusConflict,
		"INVALID_TRANSITION",
		"The requested status change is not allowed",
		"",
	)

	ErrStateConflict = NewBaseError(
		http.StatusConflict,
		"STATE_CONFLICT",
		"Request conflicts with the current state",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
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

// Unwrap exposes the driver error
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
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// ChannelDeliveryError describes a failed push/SMS/email attempt. It is logged and audited
// by the cascade but never returned to callers.
type ChannelDeliveryError struct {
	Channel    string
	GuardianID string
	Err        error
}

// NewChannelDeliveryError creates a channel delivery error
func NewChannelDeliveryError(channel, guardianID string, err error) *ChannelDeliveryError {
	return &ChannelDeliveryError{
		Channel:    channel,
		GuardianID: guardianID,
		Err:        err,
	}
}

// Error implements the error interface
func (e *ChannelDeliveryError) Error() string {
	return e.Channel + " delivery to guardian " + e.GuardianID + " failed: " + e.Err.Error()
}

// Unwrap exposes the underlying channel error
func (e *ChannelDeliveryError) Unwrap() error {
	return e.Err
}
