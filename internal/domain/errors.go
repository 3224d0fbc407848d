package domain

import "errors"

// Sentinel errors shared across repositories and services.
var (
	// ErrNotFound is returned when a lookup or update matches no row.
	ErrNotFound = errors.New("not found")

	// ErrConstraint is returned when an insert or update violates a data
	// constraint. The offending detail is logged, never propagated.
	ErrConstraint = errors.New("constraint violation")

	// ErrInvalidCredentials is returned on any login failure. Unknown
	// username and wrong password collapse into this same value.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
