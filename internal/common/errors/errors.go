package errors

import "fmt"

// ErrorCode identifies a class of application error.
type ErrorCode string

const (
	ErrCodeInternal       ErrorCode = "INTERNAL_ERROR"
	ErrCodeValidation     ErrorCode = "VALIDATION_ERROR"
	ErrCodeNotFound       ErrorCode = "NOT_FOUND"
	ErrCodeAuthentication ErrorCode = "AUTHENTICATION_ERROR"
	ErrCodeDependency     ErrorCode = "DEPENDENCY_ERROR"
	ErrCodePersistence    ErrorCode = "PERSISTENCE_ERROR"
)

// AppError is a typed application error carrying a code for the HTTP layer.
type AppError struct {
	Code    ErrorCode
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// IsInternal reports whether the error should be logged with full detail
// while the client sees only a generic message.
func (e *AppError) IsInternal() bool {
	return e.Code == ErrCodeInternal || e.Code == ErrCodeDependency || e.Code == ErrCodePersistence
}

// New creates an application error.
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Wrap annotates an underlying error with a code and message.
func Wrap(err error, code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message, Cause: err}
}

// NewValidationError creates a validation error for a missing or bad field.
func NewValidationError(message string) *AppError {
	return New(ErrCodeValidation, message)
}

// NewNotFoundError creates a "not found" error for a resource.
func NewNotFoundError(resource string) *AppError {
	return New(ErrCodeNotFound, fmt.Sprintf("%s not found", resource))
}

// NewAuthenticationError creates an OTP or signature mismatch error.
func NewAuthenticationError(message string) *AppError {
	return New(ErrCodeAuthentication, message)
}

// NewDependencyError wraps a failed mail or gateway call.
func NewDependencyError(operation string, err error) *AppError {
	return Wrap(err, ErrCodeDependency, fmt.Sprintf("%s failed", operation))
}

// NewPersistenceError wraps a failed store read or write.
func NewPersistenceError(operation string, err error) *AppError {
	return Wrap(err, ErrCodePersistence, fmt.Sprintf("%s failed", operation))
}

// AsAppError casts err to *AppError if possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if err != nil {
		appErr, _ = err.(*AppError)
	}
	return appErr, appErr != nil
}
