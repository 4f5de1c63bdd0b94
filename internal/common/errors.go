// Package common defines shared constants and sentinel errors used across
// MyContacts components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Directory-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Registration and credential-change errors. Reasons are attached
	// with %w wrapping at the call site.
	ErrInvalidRegistration = errors.New("invalid registration")
	ErrIncorrectPassword   = errors.New("incorrect password")
	ErrInvalidNewPassword  = errors.New("invalid new password")

	// ErrHasherUnavailable indicates the configured credential hasher
	// cannot be constructed or used. This is a fatal configuration error:
	// the composition root must refuse to start rather than risk storing
	// an unhashed credential.
	ErrHasherUnavailable = errors.New("hasher unavailable")

	// Auth errors (invalid or malformed access token).
	ErrInvalidToken = errors.New("invalid token")
)
