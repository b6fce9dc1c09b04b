// Package errors provides custom error types for the ledgerbook services.
// All service-layer errors use AppError so callers get consistent error
// codes and HTTP responses never leak internal details.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Monetary value errors.
var (
	ErrInvalidAmount = &AppError{Code: "INVALID_AMOUNT", Message: "Malformed monetary amount", StatusCode: http.StatusBadRequest}
)

// Account errors.
var (
	ErrAccountNotFound = &AppError{Code: "ACCOUNT_NOT_FOUND", Message: "Account not found", StatusCode: http.StatusNotFound}
)

// Category errors.
var (
	ErrCategoryNotFound    = &AppError{Code: "CATEGORY_NOT_FOUND", Message: "Category not found", StatusCode: http.StatusNotFound}
	ErrUnknownCategoryKind = &AppError{Code: "UNKNOWN_CATEGORY_KIND", Message: "Unrecognized category kind", StatusCode: http.StatusBadRequest}
)

// Ledger errors.
var (
	ErrUnsupportedOperationKind = &AppError{Code: "UNSUPPORTED_OPERATION_KIND", Message: "This operation kind is not supported", StatusCode: http.StatusBadRequest}
	ErrConstraintViolation      = &AppError{Code: "CONSTRAINT_VIOLATION", Message: "A storage constraint was violated", StatusCode: http.StatusConflict}
	ErrTransactionFailed        = &AppError{Code: "TRANSACTION_FAILED", Message: "The ledger transaction was rolled back", StatusCode: http.StatusInternalServerError}
)
