package auth

import (
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/dmitrijs2005/mycontacts/internal/users"
)

// ActiveSession is the single-slot holder for the currently logged-in user.
// At any moment either no user is logged in or exactly one is. The session
// only references the user; the Directory remains the owner.
//
// The session is per-App state for one interactive actor and carries no
// locking.
type ActiveSession struct {
	clock     clockwork.Clock
	id        string
	user      *users.User
	startedAt time.Time
}

// NewActiveSession creates an empty session. A nil clock falls back to the
// real clock; tests inject a fake one.
func NewActiveSession(clock clockwork.Clock) *ActiveSession {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &ActiveSession{clock: clock}
}

// Start sets the current user, overwriting any prior session (last writer
// wins). A nil user is a no-op.
func (s *ActiveSession) Start(user *users.User) {
	if user == nil {
		return
	}
	s.user = user
	s.id = uuid.NewString()
	s.startedAt = s.clock.Now()
}

// End clears the session. Safe to call when no session is active.
func (s *ActiveSession) End() {
	s.user = nil
	s.id = ""
	s.startedAt = time.Time{}
}

// User returns the logged-in user, or nil when nobody is logged in.
func (s *ActiveSession) User() *users.User {
	return s.user
}

func (s *ActiveSession) IsLoggedIn() bool {
	return s.user != nil
}

// ID returns the identifier minted for the current session, empty when
// logged out.
func (s *ActiveSession) ID() string {
	return s.id
}

// StartedAt returns when the current session began, zero when logged out.
func (s *ActiveSession) StartedAt() time.Time {
	return s.startedAt
}
