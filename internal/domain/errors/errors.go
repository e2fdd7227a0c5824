package errors

import (
	"net/http"

	"tuikigai/internal/errors"
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
	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Los datos ingresados no son válidos",
		"",
	)

	ErrInvalidPurchaseKind = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PURCHASE_KIND",
		"Tipo de compra desconocido",
		"",
	)

	// Checkout-related errors
	ErrSubmissionInFlight = NewBaseError(
		http.StatusConflict,
		"SUBMISSION_IN_FLIGHT",
		"Tu compra ya se está procesando",
		"",
	)

	ErrPurchaseCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"PURCHASE_CREATION_FAILED",
		"No pudimos registrar tu compra, inténtalo de nuevo",
		"",
	)

	ErrPreferenceCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"PREFERENCE_CREATION_FAILED",
		"No pudimos iniciar el pago, inténtalo de nuevo",
		"",
	)

	// Promo-related errors
	ErrPromoCodeInvalid = NewBaseError(
		http.StatusBadRequest,
		"PROMO_CODE_INVALID",
		"El código ingresado no es válido",
		"",
	)

	ErrPromoRedemptionFailed = NewBaseError(
		http.StatusInternalServerError,
		"PROMO_REDEMPTION_FAILED",
		"No pudimos redimir tu código, inténtalo de nuevo",
		"",
	)

	// Callback-related errors
	ErrCallbackMalformed = NewBaseError(
		http.StatusBadRequest,
		"CALLBACK_MALFORMED",
		"Notificación de pago incompleta",
		"",
	)

	// Purchase lookup errors
	ErrPurchaseNotFound = NewBaseError(
		http.StatusNotFound,
		"PURCHASE_NOT_FOUND",
		"No encontramos la compra",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Error interno del sistema",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Recurso no encontrado",
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
	return "Error al acceder a la base de datos"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
