package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/mycontacts/internal/auth"
)

// ShowToken prints the access token minted at the last password login and
// whom it was issued for.
func (a *App) ShowToken(ctx context.Context) error {
	if _, ok := a.currentUser(); !ok {
		return nil
	}

	if a.accessToken == "" {
		fmt.Fprintln(a.out, "No access token. Log in with your password to get one.")
		return nil
	}

	email, err := auth.EmailFromToken(a.accessToken, []byte(a.config.SecretKey))
	if err != nil {
		fmt.Fprintln(a.out, "Access token is no longer valid.")
		return nil
	}

	fmt.Fprintf(a.out, "Access token (issued for %s):\n%s\n", email, a.accessToken)
	return nil
}
