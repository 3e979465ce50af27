// Package shared defines sentinel errors and small helpers used across
// FinanzApp layers. Callers match these values with errors.Is; the CLI
// front-end turns them into user-facing messages.
package shared

import "errors"

var (
	// repository / storage errors
	ErrNotFound = errors.New("not found")
	ErrStorage  = errors.New("storage failure")

	// auth errors
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrInvalidToken       = errors.New("invalid session token")

	// input errors
	ErrValidation = errors.New("validation error")
)
