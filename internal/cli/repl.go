package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	TokenLogin(ctx context.Context) error
	ViewProfile(ctx context.Context) error
	UpdateProfile(ctx context.Context) error
	ChangePassword(ctx context.Context) error
	AddPerson(ctx context.Context) error
	AddOrganization(ctx context.Context) error
	ListContacts(ctx context.Context) error
	ShowToken(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the MyContacts CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - register       — create an account
//	  - login          — authenticate with a password
//	  - tokenlogin     — authenticate with a token
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help           — show available commands
//	  - profile        — view profile details
//	  - update         — update profile fields
//	  - passwd         — change the password
//	  - addperson      — add a person contact
//	  - addorg         — add an organization contact
//	  - list           — list contacts
//	  - token          — show the current access token
//	  - logout         — log out
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("mc> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: profile, update, passwd, addperson, addorg, (l)ist, token, logout, exit")
			} else {
				printlnFn("Available commands: register, login, tokenlogin, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "tokenlogin":
			_ = a.TokenLogin(ctx)

		case "profile":
			_ = a.ViewProfile(ctx)

		case "update":
			_ = a.UpdateProfile(ctx)

		case "passwd":
			_ = a.ChangePassword(ctx)

		case "addperson":
			_ = a.AddPerson(ctx)

		case "addorg":
			_ = a.AddOrganization(ctx)

		case "l", "list":
			_ = a.ListContacts(ctx)

		case "token":
			_ = a.ShowToken(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
