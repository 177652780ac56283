// internal/app/system/authutil/authutil.go
// Package authutil provides password hashing, password strength rules,
// and email validation for the admin account features.
package authutil

import (
	"errors"
	"strings"
)

// Common validation errors
var (
	ErrEmailRequired = errors.New("Email is required.")
	ErrInvalidEmail  = errors.New("Please enter a valid email address.")
)

// NormalizeEmail lowercases and trims an email address so lookups
// are consistent regardless of how the address was typed.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateEmail checks that an email address is present and plausibly
// formed. It checks for a single @ with a dotted domain after it.
func ValidateEmail(email string) error {
	if email == "" {
		return ErrEmailRequired
	}
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return ErrInvalidEmail
	}
	// Local part must not be empty
	if len(parts[0]) == 0 {
		return ErrInvalidEmail
	}
	// Domain must contain at least one dot after @
	domain := parts[1]
	dotIdx := strings.LastIndex(domain, ".")
	if dotIdx < 1 || dotIdx >= len(domain)-1 {
		return ErrInvalidEmail
	}
	return nil
}
