package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/mycontacts/internal/common"
	"github.com/dmitrijs2005/mycontacts/internal/users"
)

// Register prompts for the account fields and creates the account.
// Validation failures are reported to the user and do not abort the loop.
func (a *App) Register(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	firstName, err := GetSimpleText(a.reader, "Enter first name", a.out)
	if err != nil {
		return err
	}
	lastName, err := GetSimpleText(a.reader, "Enter last name", a.out)
	if err != nil {
		return err
	}

	password, err := GetPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	accountType, err := GetSimpleText(a.reader, "Account type (FREE/PREMIUM)", a.out)
	if err != nil {
		return err
	}

	_, err = a.users.Register(ctx, users.RegistrationRequest{
		Email:       email,
		FirstName:   firstName,
		LastName:    lastName,
		Password:    string(password),
		AccountType: accountType,
	})
	if err != nil {
		if errors.Is(err, common.ErrInvalidRegistration) {
			fmt.Fprintf(a.out, "Registration failed: %v\n", err)
			return nil
		}
		a.logger.Error(ctx, "registration error", "error", err)
		fmt.Fprintln(a.out, "An unexpected error occurred during registration.")
		return err
	}

	fmt.Fprintln(a.out, "Registration successful! You can now log in.")
	return nil
}
