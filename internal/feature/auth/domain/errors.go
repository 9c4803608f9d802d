// Package domain defines domain-level errors for the auth feature.
package domain

import "errors"

// Domain errors for account operations. Upper layers map these to HTTP
// responses; anything not listed here is treated as an internal fault.
var (
	// ErrEmailAlreadyExists indicates a signup with an email that is
	// already registered.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound indicates that no user matched the given criteria.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials is returned for every login failure. Unknown
	// email and wrong password are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrMissingFields indicates that a required field was empty.
	ErrMissingFields = errors.New("all fields are required")
)
