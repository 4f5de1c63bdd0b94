package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/mycontacts/internal/common"
)

// ViewProfile prints the logged-in user's profile details.
func (a *App) ViewProfile(ctx context.Context) error {
	user, ok := a.currentUser()
	if !ok {
		return nil
	}

	profile := user.Profile()
	fmt.Fprintln(a.out, "--- Profile Details ---")
	fmt.Fprintf(a.out, "Name: %s %s\n", profile.FirstName, profile.LastName)
	fmt.Fprintf(a.out, "Email: %s\n", user.Email())
	fmt.Fprintf(a.out, "Account type: %s\n", user.UserType())
	return nil
}

// UpdateProfile prompts for new name fields. Pressing Enter keeps the
// existing value.
func (a *App) UpdateProfile(ctx context.Context) error {
	user, ok := a.currentUser()
	if !ok {
		return nil
	}

	profile := user.Profile()

	firstName, err := GetSimpleText(a.reader, fmt.Sprintf("New first name (press Enter to keep %q)", profile.FirstName), a.out)
	if err != nil {
		return err
	}
	lastName, err := GetSimpleText(a.reader, fmt.Sprintf("New last name (press Enter to keep %q)", profile.LastName), a.out)
	if err != nil {
		return err
	}

	if err := a.users.UpdateProfile(ctx, user, firstName, lastName); err != nil {
		a.logger.Error(ctx, "profile update error", "error", err)
		fmt.Fprintln(a.out, "An unexpected error occurred while updating the profile.")
		return err
	}

	fmt.Fprintln(a.out, "Profile updated successfully!")
	return nil
}

// ChangePassword verifies the current password and stores a new one.
func (a *App) ChangePassword(ctx context.Context) error {
	user, ok := a.currentUser()
	if !ok {
		return nil
	}

	currentPassword, err := GetPassword("Enter current password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(currentPassword)

	newPassword, err := GetPassword("Enter new password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(newPassword)

	err = a.users.ChangePassword(ctx, user, string(currentPassword), string(newPassword))
	switch {
	case err == nil:
		fmt.Fprintln(a.out, "Password changed successfully!")
		return nil
	case errors.Is(err, common.ErrIncorrectPassword):
		fmt.Fprintln(a.out, "Password change failed: incorrect current password.")
		return nil
	case errors.Is(err, common.ErrInvalidNewPassword):
		fmt.Fprintf(a.out, "Password change failed: %v\n", err)
		return nil
	default:
		a.logger.Error(ctx, "password change error", "error", err)
		fmt.Fprintln(a.out, "An unexpected error occurred while changing the password.")
		return err
	}
}
