// Package users holds the account data model (user, profile, directory)
// and the service with the registration and mutation flows.
package users

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/dmitrijs2005/mycontacts/internal/common"
	"github.com/dmitrijs2005/mycontacts/internal/config"
	"github.com/dmitrijs2005/mycontacts/internal/cryptox"
	"github.com/dmitrijs2005/mycontacts/internal/logging"
	"github.com/dmitrijs2005/mycontacts/internal/validation"
)

// premiumSelector is the only tier-selector value that yields a premium
// account; the comparison is case-insensitive.
const premiumSelector = "PREMIUM"

// RegistrationRequest carries the raw registration input. All fields arrive
// from the presentation layer with no pre-validation guaranteed.
type RegistrationRequest struct {
	Email       string
	FirstName   string
	LastName    string
	Password    string
	AccountType string
}

// Service implements registration, profile updates and password changes on
// top of an injected directory and credential hasher.
type Service struct {
	directory         *Directory
	hasher            cryptox.Hasher
	passwordMinLength int
	logger            logging.Logger
}

func NewService(directory *Directory, hasher cryptox.Hasher, cfg *config.Config, logger logging.Logger) *Service {
	if logger == nil {
		logger = logging.NewZapLogger(zap.NewNop())
	}
	minLength := validation.DefaultMinPasswordLength
	if cfg != nil && cfg.PasswordMinLength > 0 {
		minLength = cfg.PasswordMinLength
	}
	return &Service{
		directory:         directory,
		hasher:            hasher,
		passwordMinLength: minLength,
		logger:            logger,
	}
}

// Register creates an account and inserts it into the directory. It fails
// with ErrInvalidRegistration on a malformed email, a duplicate email, or
// an undersized password; nothing is mutated on failure.
//
// Any account-type selector other than "PREMIUM" (case-insensitive) falls
// back to a free account, typos included. That leniency is inherited
// behavior and kept on purpose.
func (s *Service) Register(ctx context.Context, req RegistrationRequest) (*User, error) {
	if !validation.IsValidEmail(req.Email) {
		return nil, fmt.Errorf("%w: invalid email format", common.ErrInvalidRegistration)
	}
	if s.directory.Has(req.Email) {
		return nil, fmt.Errorf("%w: email is already registered", common.ErrInvalidRegistration)
	}
	if !validation.IsValidPassword(req.Password, s.passwordMinLength) {
		return nil, fmt.Errorf("%w: password must be at least %d characters", common.ErrInvalidRegistration, s.passwordMinLength)
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing credential: %w", err)
	}

	profile := Profile{FirstName: req.FirstName, LastName: req.LastName}

	var user *User
	if strings.EqualFold(req.AccountType, premiumSelector) {
		user = NewPremiumUser(req.Email, hash, profile)
	} else {
		user = NewFreeUser(req.Email, hash, profile)
	}

	if err := s.directory.Add(user); err != nil {
		return nil, fmt.Errorf("%w: email is already registered", common.ErrInvalidRegistration)
	}

	s.logger.Info(ctx, "user registered", "email", user.Email(), "type", user.UserType())

	return user, nil
}

// UpdateProfile applies only the fields the caller supplied: a blank or
// whitespace-only value keeps the existing one. The modified copy is
// written back through the copy-on-write setter.
func (s *Service) UpdateProfile(ctx context.Context, user *User, firstName, lastName string) error {
	profile := user.Profile()

	if strings.TrimSpace(firstName) != "" {
		profile.FirstName = firstName
	}
	if strings.TrimSpace(lastName) != "" {
		profile.LastName = lastName
	}

	user.SetProfile(profile)

	s.logger.Info(ctx, "profile updated", "email", user.Email())
	return nil
}

// ChangePassword verifies the current raw password against the stored hash
// (ErrIncorrectPassword on mismatch), validates the new password
// (ErrInvalidNewPassword), then hashes and stores it. On any failure the
// original hash is left intact.
func (s *Service) ChangePassword(ctx context.Context, user *User, currentPassword, newPassword string) error {
	currentHash, err := s.hasher.Hash(currentPassword)
	if err != nil {
		return fmt.Errorf("hashing credential: %w", err)
	}
	if subtle.ConstantTimeCompare([]byte(currentHash), []byte(user.PasswordHash())) != 1 {
		return common.ErrIncorrectPassword
	}

	if !validation.IsValidPassword(newPassword, s.passwordMinLength) {
		return fmt.Errorf("%w: password must be at least %d characters", common.ErrInvalidNewPassword, s.passwordMinLength)
	}

	newHash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("hashing credential: %w", err)
	}
	user.SetPasswordHash(newHash)

	s.logger.Info(ctx, "password changed", "email", user.Email())
	return nil
}
