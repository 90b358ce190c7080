// Package common defines shared sentinel errors used across BeerVault
// components. Callers should use errors.Is to match these values.
package common

import (
	"errors"
	"fmt"
)

var (
	// Store-level errors.
	ErrorNotFound = errors.New("not found")

	// ErrorValidation is the class every validation failure wraps, so callers
	// can match either the class or the specific cause with errors.Is.
	ErrorValidation = errors.New("validation error")

	// Validation causes.
	ErrorEmailTaken         = errors.New("email already registered")
	ErrorUsernameTaken      = errors.New("username already taken")
	ErrorWeakPassword       = errors.New("password must be at least 6 characters")
	ErrorMissingName        = errors.New("name is required")
	ErrorZeroRating         = errors.New("rating is required")
	ErrorNotOwner           = errors.New("entry belongs to another account")
	ErrorInvalidCredentials = errors.New("invalid email or password")

	// Transport-level errors. These are logged and swallowed at the
	// coordinator boundary; only startup surfaces them.
	ErrorUnavailable = errors.New("backend unavailable")
)

// Validation wraps cause under ErrorValidation.
func Validation(cause error) error {
	return fmt.Errorf("%w: %w", ErrorValidation, cause)
}
