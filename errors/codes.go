package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Container errors
const (
	// ErrCodeUnresolvableDependency indicates no binding exists for a requested key
	// or for one of its transitive requirements.
	ErrCodeUnresolvableDependency ErrorCode = "UNRESOLVABLE_DEPENDENCY"
	// ErrCodeConstructionFailed indicates a bound constructor returned an error.
	ErrCodeConstructionFailed ErrorCode = "CONSTRUCTION_FAILED"
	// ErrCodeWrongType indicates a resolved instance is not of the requested type.
	ErrCodeWrongType ErrorCode = "WRONG_TYPE"
	// ErrCodeRegistryFrozen indicates a registration attempted after Build.
	ErrCodeRegistryFrozen ErrorCode = "REGISTRY_FROZEN"
	// ErrCodeContainerClosed indicates a resolution attempted after Close.
	ErrCodeContainerClosed ErrorCode = "CONTAINER_CLOSED"
	// ErrCodeInvalidBinding indicates a malformed registration.
	ErrCodeInvalidBinding ErrorCode = "INVALID_BINDING"
)

// Validation errors
const (
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
)

// Internal errors
const (
	// ErrCodeInternal indicates an internal error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
	// ErrCodeExternalService indicates an error from an external collaborator.
	ErrCodeExternalService ErrorCode = "EXTERNAL_SERVICE_ERROR"
)

// Nothing in the container retries; only a remote weather collaborator would.
var retryableCodes = map[ErrorCode]bool{
	ErrCodeExternalService: true,
}

// IsRetryableCode returns true if the error code indicates a retryable error.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
