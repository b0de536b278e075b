// Package common defines sentinel errors and small helpers shared by the
// client and the reference server. Callers match errors with errors.Is.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEmail = errors.New("email already registered")

	// Import/export errors.
	ErrParse = errors.New("malformed database JSON")

	// Service-level errors.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrValidation         = errors.New("validation error")
	ErrNotAdmin           = errors.New("admin login required")
	ErrNotLoggedIn        = errors.New("not logged in")
	ErrInternal           = errors.New("internal error")

	// Token errors.
	ErrInvalidToken = errors.New("invalid token")
)
