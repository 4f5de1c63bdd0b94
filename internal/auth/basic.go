package auth

import (
	"context"
	"crypto/subtle"

	"github.com/dmitrijs2005/mycontacts/internal/common"
	"github.com/dmitrijs2005/mycontacts/internal/cryptox"
	"github.com/dmitrijs2005/mycontacts/internal/users"
)

// BasicAuth verifies a raw password by hashing it and comparing against the
// user's stored hash.
type BasicAuth struct {
	directory *users.Directory
	hasher    cryptox.Hasher
}

func NewBasicAuth(directory *users.Directory, hasher cryptox.Hasher) *BasicAuth {
	return &BasicAuth{directory: directory, hasher: hasher}
}

func (b *BasicAuth) Authenticate(ctx context.Context, email, password string) (*users.User, error) {
	user, err := b.directory.Get(email)
	if err != nil {
		return nil, common.ErrorUnauthorized
	}

	hash, err := b.hasher.Hash(password)
	if err != nil {
		return nil, common.ErrorInternal
	}

	if subtle.ConstantTimeCompare([]byte(hash), []byte(user.PasswordHash())) != 1 {
		return nil, common.ErrorUnauthorized
	}

	return user, nil
}
