// Package validation holds the pure input predicates called by the
// registration and password-change flows before any state is mutated.
package validation

import (
	"regexp"
	"strings"
)

// DefaultMinPasswordLength is the minimum password length policy applied
// when no explicit configuration is given.
const DefaultMinPasswordLength = 6

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@(.+)$`)

// IsValidEmail reports whether the given string looks like an email address.
// Blank or whitespace-only input is never valid.
func IsValidEmail(email string) bool {
	if strings.TrimSpace(email) == "" {
		return false
	}
	return emailPattern.MatchString(email)
}

// IsValidPassword reports whether the password satisfies the minimum-length
// policy. A non-positive minLength falls back to DefaultMinPasswordLength.
func IsValidPassword(password string, minLength int) bool {
	if minLength <= 0 {
		minLength = DefaultMinPasswordLength
	}
	return len(password) >= minLength
}
