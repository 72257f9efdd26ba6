package domain

import (
	"errors"
	"fmt"
)

var (
	ErrMerchantExists     = errors.New("account already has a merchant store")
	ErrMerchantNotFound   = errors.New("merchant not found")
	ErrProductNotFound    = errors.New("product not found")
	ErrTooManyImages      = errors.New("a product can carry at most five images")
	ErrInvalidEmail       = errors.New("please enter a valid email address")
	ErrEmailInUse         = errors.New("email already in use")
	ErrWeakPassword       = errors.New("password should be at least 6 characters")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrSessionExpired     = errors.New("session expired or revoked")
	ErrEmailNotVerified   = errors.New("email address is not verified")
	ErrNotMerchant        = errors.New("account has no merchant store")
	ErrNotOwner           = errors.New("product belongs to another merchant")
)

// ValidationError reports a missing or malformed input field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation reports whether err is a field validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
