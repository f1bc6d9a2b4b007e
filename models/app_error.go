package models

import "fmt"

type ErrorKind string

const (
	ValidationErrorKind   ErrorKind = "validation"
	InvalidStateErrorKind ErrorKind = "invalid_state"
	DuplicateErrorKind    ErrorKind = "duplicate"
	NotFoundErrorKind     ErrorKind = "not_found"
	PermissionErrorKind   ErrorKind = "permission"
	ExternalErrorKind     ErrorKind = "external"
)

// AppError is the typed error surfaced by lib handlers.
// Controllers map Kind to an HTTP status, everything else becomes a 500.
type AppError struct {
	Kind    ErrorKind
	Message string
	Field   string
}

func (e *AppError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

func NewValidationError(field, message string) *AppError {
	return &AppError{Kind: ValidationErrorKind, Message: message, Field: field}
}

func NewValidationErrorf(field, format string, args ...interface{}) *AppError {
	return &AppError{Kind: ValidationErrorKind, Message: fmt.Sprintf(format, args...), Field: field}
}

func NewInvalidStateError(format string, args ...interface{}) *AppError {
	return &AppError{Kind: InvalidStateErrorKind, Message: fmt.Sprintf(format, args...)}
}

func NewDuplicateError(format string, args ...interface{}) *AppError {
	return &AppError{Kind: DuplicateErrorKind, Message: fmt.Sprintf(format, args...)}
}

func NewNotFoundError(format string, args ...interface{}) *AppError {
	return &AppError{Kind: NotFoundErrorKind, Message: fmt.Sprintf(format, args...)}
}

func NewPermissionError(message string) *AppError {
	return &AppError{Kind: PermissionErrorKind, Message: message}
}

func NewExternalError(format string, args ...interface{}) *AppError {
	return &AppError{Kind: ExternalErrorKind, Message: fmt.Sprintf(format, args...)}
}

func GetErrorKind(err error) (ErrorKind, bool) {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Kind, true
	}
	return "", false
}

func IsNotFound(err error) bool {
	kind, ok := GetErrorKind(err)
	return ok && kind == NotFoundErrorKind
}

func IsInvalidState(err error) bool {
	kind, ok := GetErrorKind(err)
	return ok && kind == InvalidStateErrorKind
}

func IsDuplicate(err error) bool {
	kind, ok := GetErrorKind(err)
	return ok && kind == DuplicateErrorKind
}
