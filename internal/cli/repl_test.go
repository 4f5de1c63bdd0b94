package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	calls []string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error {
	f.calls = append(f.calls, "register")
	return nil
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) TokenLogin(ctx context.Context) error {
	f.calls = append(f.calls, "tokenlogin")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) ViewProfile(ctx context.Context) error {
	f.calls = append(f.calls, "profile")
	return nil
}
func (f *fakeExec) UpdateProfile(ctx context.Context) error {
	f.calls = append(f.calls, "update")
	return nil
}
func (f *fakeExec) ChangePassword(ctx context.Context) error {
	f.calls = append(f.calls, "passwd")
	return nil
}
func (f *fakeExec) AddPerson(ctx context.Context) error {
	f.calls = append(f.calls, "addperson")
	return nil
}
func (f *fakeExec) AddOrganization(ctx context.Context) error {
	f.calls = append(f.calls, "addorg")
	return nil
}
func (f *fakeExec) ListContacts(ctx context.Context) error {
	f.calls = append(f.calls, "list")
	return nil
}
func (f *fakeExec) ShowToken(ctx context.Context) error {
	f.calls = append(f.calls, "token")
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}

func silencePrintln(t *testing.T) {
	t.Helper()
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"help",
		"profile",
		"addperson",
		"list",
		"passwd",
		"foobar",
		"logout",
		"exit",
	}, "\n"))

	exec := &fakeExec{loggedIn: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	wantOrder := []string{"login", "profile", "addperson", "list", "passwd", "logout"}
	if len(exec.calls) < len(wantOrder) {
		t.Fatalf("few calls: %+v", exec.calls)
	}
	idx := 0
	for _, c := range exec.calls {
		if idx < len(wantOrder) && c == wantOrder[idx] {
			idx++
		}
	}
	if idx != len(wantOrder) {
		t.Fatalf("commands order mismatch: got %v, want subseq %v", exec.calls, wantOrder)
	}
}

func TestRunREPL_UnknownAndQuit(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader("frobnicate\n\nquit\n")
	exec := &fakeExec{loggedIn: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}

func TestRunREPL_ExitsOnEOF(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader("tokenlogin\n")
	exec := &fakeExec{}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "" }, sc)

	if len(exec.calls) != 1 || exec.calls[0] != "tokenlogin" {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}
