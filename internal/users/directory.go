package users

import (
	"sync"

	"github.com/dmitrijs2005/mycontacts/internal/common"
)

// Directory is the authoritative email → User registry and the single
// source of truth for account existence. Entries are added only by
// registration and never removed. Instances are injected rather than
// ambient so tests can construct isolated directories.
//
// A single RWMutex guards the map; contention is expected to be low since
// the system assumes one logical actor at a time.
type Directory struct {
	mu    sync.RWMutex
	users map[string]*User
}

func NewDirectory() *Directory {
	return &Directory{users: make(map[string]*User)}
}

// Add registers a user under their email. Returns ErrorAlreadyExists if the
// email is taken.
func (d *Directory) Add(u *User) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.users[u.Email()]; ok {
		return common.ErrorAlreadyExists
	}
	d.users[u.Email()] = u
	return nil
}

// Get looks up a user by email. Returns ErrorNotFound for unknown emails.
func (d *Directory) Get(email string) (*User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	u, ok := d.users[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return u, nil
}

// Has reports whether the email is registered.
func (d *Directory) Has(email string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	_, ok := d.users[email]
	return ok
}

// Count returns the number of registered users.
func (d *Directory) Count() int {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return len(d.users)
}
