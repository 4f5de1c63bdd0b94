// Package contacts defines the contact entities a user keeps in their
// personal list: people and organizations.
package contacts

import (
	"fmt"

	"github.com/google/uuid"
)

// Contact is the common surface of the contact variants. All fields are
// free-form strings; no cross-validation is applied.
type Contact interface {
	ID() string
	Name() string
	PhoneNumber() string
	Email() string

	// ContactType returns the variant tag ("Person" or "Organization").
	ContactType() string

	// DisplayDetails renders the contact as a single human-readable line,
	// common fields first, variant-specific field appended.
	DisplayDetails() string
}

// details carries the attributes shared by every contact variant.
type details struct {
	id          string
	name        string
	phoneNumber string
	email       string
}

func newDetails(name, phoneNumber, email string) details {
	return details{
		id:          uuid.NewString(),
		name:        name,
		phoneNumber: phoneNumber,
		email:       email,
	}
}

func (d details) ID() string          { return d.id }
func (d details) Name() string        { return d.name }
func (d details) PhoneNumber() string { return d.phoneNumber }
func (d details) Email() string       { return d.email }

func (d details) displayDetails() string {
	return fmt.Sprintf("Name: %s | Phone: %s | Email: %s", d.name, d.phoneNumber, d.email)
}
