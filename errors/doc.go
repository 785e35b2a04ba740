// Package errors provides the structured error type shared by the containers,
// the weather service and the HTTP surface. Every error carries a
// machine-readable code, an HTTP status mapping and retryable detection.
package errors
