package auth

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/mycontacts/internal/common"
	"github.com/dmitrijs2005/mycontacts/internal/logging"
	"github.com/dmitrijs2005/mycontacts/internal/users"
)

// TokenAuth treats the credential as a capability token. The current policy
// is a mock: any non-blank token for a known email succeeds, and no external
// identity provider is contacted. The strategy lives behind the
// Authenticator interface precisely so a real provider can be substituted
// later; do not harden the mock beyond this contract.
//
// Each attempt is logged for audit purposes.
type TokenAuth struct {
	directory *users.Directory
	logger    logging.Logger
}

func NewTokenAuth(directory *users.Directory, logger logging.Logger) *TokenAuth {
	return &TokenAuth{directory: directory, logger: logger}
}

func (t *TokenAuth) Authenticate(ctx context.Context, email, token string) (*users.User, error) {
	// Correlation id for the provider exchange, so the audit lines of one
	// attempt can be tied together.
	exchangeID, err := common.MakeRandHexString(8)
	if err != nil {
		return nil, common.ErrorInternal
	}
	log := t.logger.With("exchange_id", exchangeID)

	log.Info(ctx, "connecting to external identity provider", "email", email)
	log.Info(ctx, "validating token")

	if strings.TrimSpace(token) == "" {
		log.Warn(ctx, "token validation failed: user not found or invalid token", "email", email)
		return nil, common.ErrorUnauthorized
	}

	user, err := t.directory.Get(email)
	if err != nil {
		log.Warn(ctx, "token validation failed: user not found or invalid token", "email", email)
		return nil, common.ErrorUnauthorized
	}

	log.Info(ctx, "token validation successful (mocked)", "email", email)
	return user, nil
}
