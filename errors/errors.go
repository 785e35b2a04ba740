package errors

import (
	"fmt"
	"net/http"
	"strings"
)

// AppError is the unified application error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Retryable indicates if the operation can be retried.
	Retryable bool `json:"retryable"`
	// HTTPStatus is the recommended HTTP status code for this error.
	HTTPStatus int `json:"-"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError with automatic retryable detection.
func New(code ErrorCode, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Retryable:  IsRetryableCode(code),
	}
}

// --- Container errors ---

// UnresolvableDependency reports that key has no binding. path is the chain of
// keys being resolved when the lookup failed, outermost first, ending with key.
func UnresolvableDependency(key string, path []string) *AppError {
	details := map[string]any{"binding": key}
	msg := fmt.Sprintf("no binding registered for %q", key)
	if len(path) > 1 {
		details["path"] = append([]string(nil), path...)
		msg += " (required by " + strings.Join(path, " -> ") + ")"
	}
	return &AppError{
		Code: ErrCodeUnresolvableDependency, Message: msg,
		HTTPStatus: http.StatusInternalServerError, Retryable: false, Details: details,
	}
}

// DependencyCycle reports a binding that transitively requires itself. It shares
// the unresolvable-dependency code: a cyclic graph can never be satisfied.
func DependencyCycle(key string, path []string) *AppError {
	return &AppError{
		Code:       ErrCodeUnresolvableDependency,
		Message:    fmt.Sprintf("dependency cycle on %q: %s", key, strings.Join(path, " -> ")),
		HTTPStatus: http.StatusInternalServerError, Retryable: false,
		Details: map[string]any{"binding": key, "path": append([]string(nil), path...), "reason": "cycle"},
	}
}

// ConstructionFailed wraps an error returned by the constructor bound to key.
func ConstructionFailed(key string, cause error) *AppError {
	return &AppError{
		Code: ErrCodeConstructionFailed, Message: fmt.Sprintf("constructor for %q failed", key),
		HTTPStatus: http.StatusInternalServerError, Retryable: false,
		Details: map[string]any{"binding": key}, Cause: cause,
	}
}

// WrongType reports that the instance resolved for key is not the expected type.
func WrongType(key, got, want string) *AppError {
	return &AppError{
		Code: ErrCodeWrongType, Message: fmt.Sprintf("binding %q produced %s, expected %s", key, got, want),
		HTTPStatus: http.StatusInternalServerError, Retryable: false,
		Details: map[string]any{"binding": key, "got": got, "want": want},
	}
}

// RegistryFrozen reports a registration attempted after the registry was built.
func RegistryFrozen(key string) *AppError {
	return &AppError{
		Code: ErrCodeRegistryFrozen, Message: fmt.Sprintf("registry already built, cannot register %q", key),
		HTTPStatus: http.StatusInternalServerError, Retryable: false,
		Details: map[string]any{"binding": key},
	}
}

// ContainerClosed reports a resolution attempted after the resolver scope ended.
func ContainerClosed(key string) *AppError {
	return &AppError{
		Code: ErrCodeContainerClosed, Message: fmt.Sprintf("container closed, cannot resolve %q", key),
		HTTPStatus: http.StatusInternalServerError, Retryable: false,
		Details: map[string]any{"binding": key},
	}
}

// InvalidBinding reports a malformed registration.
func InvalidBinding(key, reason string) *AppError {
	return &AppError{
		Code: ErrCodeInvalidBinding, Message: fmt.Sprintf("invalid binding %q: %s", key, reason),
		HTTPStatus: http.StatusInternalServerError, Retryable: false,
		Details: map[string]any{"binding": key},
	}
}

// --- Request errors ---

// InvalidInput creates a new AppError for invalid input.
func InvalidInput(field, reason string) *AppError {
	details := make(map[string]any)
	if field != "" {
		details["field"] = field
	}
	return &AppError{
		Code: ErrCodeInvalidInput, Message: fmt.Sprintf("Invalid input: %s", reason),
		HTTPStatus: http.StatusBadRequest, Retryable: false, Details: details,
	}
}

// Validation creates a new AppError for validation errors.
func Validation(message string) *AppError {
	return &AppError{
		Code: ErrCodeInvalidInput, Message: message,
		HTTPStatus: http.StatusBadRequest, Retryable: false,
	}
}

// Internal creates a new AppError for an internal error.
func Internal(cause error) *AppError {
	return &AppError{
		Code: ErrCodeInternal, Message: "An unexpected error occurred.",
		HTTPStatus: http.StatusInternalServerError, Retryable: false, Cause: cause,
	}
}

// ExternalServiceError creates a new AppError for an error from an external service.
func ExternalServiceError(service string, cause error) *AppError {
	return &AppError{
		Code: ErrCodeExternalService, Message: fmt.Sprintf("The %s service encountered an error. Please try again.", service),
		HTTPStatus: http.StatusBadGateway, Retryable: true,
		Details: map[string]any{"service": service}, Cause: cause,
	}
}
