package users

import (
	"github.com/dmitrijs2005/mycontacts/internal/contacts"
)

// Tier is the closed set of account classifications. Free and premium
// accounts differ only by this label.
type Tier int

const (
	TierFree Tier = iota
	TierPremium
)

// Account-type labels as rendered to the user.
const (
	FreeAccountLabel    = "Free Account"
	PremiumAccountLabel = "Premium Account"
)

// User is the aggregate root owning a profile, a credential hash and an
// ordered contact list. The email is the unique, immutable key within the
// Directory. Fields are unexported so the copy-on-read/write and snapshot
// rules cannot be bypassed.
type User struct {
	email        string
	passwordHash string
	profile      Profile
	tier         Tier
	contacts     []contacts.Contact
}

func newUser(email, passwordHash string, profile Profile, tier Tier) *User {
	return &User{
		email:        email,
		passwordHash: passwordHash,
		profile:      profile.Copy(),
		tier:         tier,
	}
}

// NewFreeUser creates a free-tier user from an email, a hashed credential
// and an initial profile.
func NewFreeUser(email, passwordHash string, profile Profile) *User {
	return newUser(email, passwordHash, profile, TierFree)
}

// NewPremiumUser creates a premium-tier user.
func NewPremiumUser(email, passwordHash string, profile Profile) *User {
	return newUser(email, passwordHash, profile, TierPremium)
}

func (u *User) Email() string { return u.email }

func (u *User) PasswordHash() string { return u.passwordHash }

func (u *User) SetPasswordHash(passwordHash string) {
	u.passwordHash = passwordHash
}

// Profile returns an independent copy of the stored profile.
func (u *User) Profile() Profile {
	return u.profile.Copy()
}

// SetProfile stores an independent copy of the given profile.
func (u *User) SetProfile(p Profile) {
	u.profile = p.Copy()
}

func (u *User) Tier() Tier { return u.tier }

// UserType returns the account-type label for the user's tier.
func (u *User) UserType() string {
	switch u.tier {
	case TierPremium:
		return PremiumAccountLabel
	default:
		return FreeAccountLabel
	}
}

// AddContact appends a contact to the user's list. Duplicates are allowed;
// a nil contact is a no-op, not an error.
func (u *User) AddContact(c contacts.Contact) {
	if c == nil {
		return
	}
	u.contacts = append(u.contacts, c)
}

// Contacts returns a defensive snapshot of the contact list in insertion
// order. Mutating the returned slice does not affect the stored list.
func (u *User) Contacts() []contacts.Contact {
	out := make([]contacts.Contact, len(u.contacts))
	copy(out, u.contacts)
	return out
}
