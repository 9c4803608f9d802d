// Package domain defines domain-level errors for the predictions feature.
package domain

import "errors"

var (
	// ErrMissingFields indicates that one of the required project
	// parameters was absent or out of range.
	ErrMissingFields = errors.New("all fields are required")

	// ErrEngineUnavailable indicates that the recommendation engine exited
	// non-zero, timed out, or produced no parsable output. The engine's
	// diagnostics are logged server-side and never reach the caller.
	ErrEngineUnavailable = errors.New("recommendation engine unavailable")
)
