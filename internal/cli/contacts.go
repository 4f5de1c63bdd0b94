package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/mycontacts/internal/contacts"
)

// AddPerson prompts for the person-contact fields and appends the contact
// to the logged-in user's list.
func (a *App) AddPerson(ctx context.Context) error {
	user, ok := a.currentUser()
	if !ok {
		return nil
	}

	name, err := GetSimpleText(a.reader, "Name", a.out)
	if err != nil {
		return err
	}
	phone, err := GetSimpleText(a.reader, "Phone", a.out)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	relationship, err := GetSimpleText(a.reader, "Relationship", a.out)
	if err != nil {
		return err
	}

	user.AddContact(contacts.NewPersonContact(name, phone, email, relationship))

	fmt.Fprintln(a.out, "Person contact added successfully.")
	return nil
}

// AddOrganization prompts for the organization-contact fields and appends
// the contact to the logged-in user's list.
func (a *App) AddOrganization(ctx context.Context) error {
	user, ok := a.currentUser()
	if !ok {
		return nil
	}

	name, err := GetSimpleText(a.reader, "Organization name", a.out)
	if err != nil {
		return err
	}
	phone, err := GetSimpleText(a.reader, "Phone", a.out)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	website, err := GetSimpleText(a.reader, "Website URL", a.out)
	if err != nil {
		return err
	}

	user.AddContact(contacts.NewOrganizationContact(name, phone, email, website))

	fmt.Fprintln(a.out, "Organization contact added successfully.")
	return nil
}

// ListContacts prints the user's contacts in insertion order.
func (a *App) ListContacts(ctx context.Context) error {
	user, ok := a.currentUser()
	if !ok {
		return nil
	}

	list := user.Contacts()
	if len(list) == 0 {
		fmt.Fprintln(a.out, "Your contact list is empty.")
		return nil
	}

	fmt.Fprintln(a.out, "--- Your Contacts ---")
	for i, c := range list {
		fmt.Fprintf(a.out, "%d. [%s] %s\n", i+1, c.ContactType(), c.DisplayDetails())
	}
	return nil
}
