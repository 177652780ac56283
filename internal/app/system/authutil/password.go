// internal/app/system/authutil/password.go
package authutil

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Password validation constants
const (
	MinPasswordLength = 8
	MaxPasswordLength = 128
	BcryptCost        = 12
)

// PasswordSymbols are the special characters accepted by the strength check.
const PasswordSymbols = "!@#$%^&*"

// Password validation errors
var (
	ErrPasswordTooShort = errors.New("Password must be at least 8 characters.")
	ErrPasswordTooLong  = errors.New("Password must be less than 128 characters.")
	ErrPasswordWeak     = errors.New("Password must contain at least one number and one special character (!@#$%^&*).")
)

// PasswordRules returns a human-readable description of the password rules.
// This can be displayed on registration and reset forms.
func PasswordRules() string {
	return "Password must be at least 8 characters and include at least one number and one special character (!@#$%^&*)."
}

// ValidatePassword checks if a password meets the requirements:
// minimum length, at least one digit, and at least one symbol
// from PasswordSymbols. Returns nil if valid.
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	if len(password) > MaxPasswordLength {
		return ErrPasswordTooLong
	}

	hasDigit := strings.ContainsAny(password, "0123456789")
	hasSymbol := strings.ContainsAny(password, PasswordSymbols)
	if !hasDigit || !hasSymbol {
		return ErrPasswordWeak
	}

	return nil
}

// HashPassword hashes a password using bcrypt.
// The password should be validated with ValidatePassword first.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword compares a plain-text password with a bcrypt hash.
// Returns true if the password matches, false otherwise.
func CheckPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
