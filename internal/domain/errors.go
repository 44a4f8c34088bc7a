package domain

import "errors"

// Domain errors represent error conditions in the itemd domain.
// These errors are returned by the public API and can be checked with errors.Is.
var (
	// ErrNotFound is returned when an item id does not resolve in the store.
	ErrNotFound = errors.New("itemd: item not found")

	// ErrInterrupted is returned when a unit of work is canceled or hits a
	// transient failure mid-flight.
	ErrInterrupted = errors.New("itemd: processing interrupted")

	// ErrAlreadyRunning is returned when Start() is called on a running server.
	ErrAlreadyRunning = errors.New("itemd: already running")

	// ErrNotRunning is returned when Stop() is called on a stopped server.
	ErrNotRunning = errors.New("itemd: not running")

	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("itemd: invalid configuration")
)

// BatchError is the terminal failure of one batch run.
// It wraps exactly one cause: the first unit failure observed by the
// processor. A failed batch returns no partial results.
type BatchError struct {
	Cause error
}

// Error implements the error interface.
func (e *BatchError) Error() string {
	return "itemd: batch processing failed: " + e.Cause.Error()
}

// Unwrap exposes the underlying cause for errors.Is and errors.As.
func (e *BatchError) Unwrap() error {
	return e.Cause
}
