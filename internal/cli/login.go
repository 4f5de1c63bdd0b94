package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/mycontacts/internal/auth"
	"github.com/dmitrijs2005/mycontacts/internal/common"
)

// Login authenticates with the password strategy and starts a session.
// On success an access token is minted for later inspection or token login.
func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := GetPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.basic.Authenticate(ctx, email, string(password))
	if err != nil {
		fmt.Fprintln(a.out, "Login failed: invalid credentials.")
		return nil
	}

	a.session.Start(user)

	token, err := auth.GenerateToken(user.Email(), []byte(a.config.SecretKey), a.config.AccessTokenValidityDuration)
	if err != nil {
		a.logger.Warn(ctx, "could not mint access token", "error", err)
	} else {
		a.accessToken = token
	}

	fmt.Fprintf(a.out, "Login successful! Welcome back, %s!\n", user.Profile().FirstName)
	return nil
}

// TokenLogin authenticates with the token strategy and starts a session.
func (a *App) TokenLogin(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	token, err := GetSimpleText(a.reader, "Enter token", a.out)
	if err != nil {
		return err
	}

	user, err := a.tokens.Authenticate(ctx, email, token)
	if err != nil {
		fmt.Fprintln(a.out, "Login failed: invalid credentials.")
		return nil
	}

	a.session.Start(user)

	fmt.Fprintf(a.out, "Login successful! Welcome back, %s!\n", user.Profile().FirstName)
	return nil
}

// Logout ends the session. Safe to call when nobody is logged in.
func (a *App) Logout(ctx context.Context) error {
	a.session.End()
	a.accessToken = ""
	fmt.Fprintln(a.out, "Logged out successfully.")
	return nil
}
