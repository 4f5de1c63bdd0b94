package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/mycontacts/internal/auth"
	"github.com/dmitrijs2005/mycontacts/internal/config"
	"github.com/dmitrijs2005/mycontacts/internal/cryptox"
	"github.com/dmitrijs2005/mycontacts/internal/logging"
	"github.com/dmitrijs2005/mycontacts/internal/users"
)

// App wires the directory, the users service, the authentication
// strategies and the active session behind the interactive commands.
type App struct {
	config    *config.Config
	logger    logging.Logger
	users     *users.Service
	directory *users.Directory
	basic     auth.Authenticator
	tokens    auth.Authenticator
	session   *auth.ActiveSession

	// accessToken is the JWT minted at the last password login, kept so
	// the user can inspect it via the token command.
	accessToken string

	reader *bufio.Reader
	out    io.Writer
}

// NewApp builds the application around a fresh in-memory directory.
//
// The credential hasher is constructed and probed here: a hasher that
// cannot be built or cannot hash is a fatal configuration error, so the
// caller must refuse to start rather than let a flow run without hashing.
func NewApp(cfg *config.Config, logger logging.Logger) (*App, error) {
	hasher, err := cryptox.New(cfg.HashAlgorithm, cfg.HashSalt)
	if err != nil {
		return nil, err
	}
	if _, err := hasher.Hash("startup-probe"); err != nil {
		return nil, err
	}

	directory := users.NewDirectory()
	service := users.NewService(directory, hasher, cfg, logger)

	return &App{
		config:    cfg,
		logger:    logger,
		users:     service,
		directory: directory,
		basic:     auth.NewBasicAuth(directory, hasher),
		tokens:    auth.NewTokenAuth(directory, logger),
		session:   auth.NewActiveSession(nil),
		reader:    bufio.NewReader(os.Stdin),
		out:       os.Stdout,
	}, nil
}

// Run starts the interactive loop on stdin and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to MyContacts! (type 'help' for commands)")
	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}

func (a *App) isLoggedIn() bool {
	return a.session.IsLoggedIn()
}

func (a *App) status() string {
	if !a.session.IsLoggedIn() {
		return ""
	}
	u := a.session.User()
	return fmt.Sprintf("(%s %s)", u.Email(), u.UserType())
}

// currentUser returns the logged-in user, printing a hint when nobody is.
// Commands that require a session call this first.
func (a *App) currentUser() (*users.User, bool) {
	u := a.session.User()
	if u == nil {
		fmt.Fprintln(a.out, "Please log in first.")
		return nil, false
	}
	return u, true
}
