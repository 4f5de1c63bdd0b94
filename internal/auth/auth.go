// Package auth provides the interchangeable authentication strategies,
// the single-slot active session, and access-token handling.
package auth

import (
	"context"

	"github.com/dmitrijs2005/mycontacts/internal/users"
)

// Authenticator resolves an email plus credential to a registered user.
// The credential's meaning depends on the strategy: a raw password for
// BasicAuth, an opaque token for TokenAuth.
//
// Strategies are pure lookup + verification: they never mutate the
// directory or the user. Failures are reported uniformly as
// common.ErrorUnauthorized with no distinction between "unknown email"
// and "bad credential".
type Authenticator interface {
	Authenticate(ctx context.Context, email, credential string) (*users.User, error)
}
