// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Validation errors.
	ErrUnknownCategory     = errors.New("unknown product category")
	ErrUnknownJurisdiction = errors.New("unknown jurisdiction")
	ErrNoJurisdictions     = errors.New("at least one jurisdiction is required")

	// Database errors.
	ErrNotFound = errors.New("not found")

	// Configuration errors.
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}

// IsValidation reports whether err is a request-validation error that should
// surface as a rejected request rather than a server fault.
func IsValidation(err error) bool {
	return errors.Is(err, ErrUnknownCategory) ||
		errors.Is(err, ErrUnknownJurisdiction) ||
		errors.Is(err, ErrNoJurisdictions)
}
