package auth

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/mycontacts/internal/users"
)

func TestActiveSession_StartAndEnd(t *testing.T) {
	clock := clockwork.NewFakeClock()
	s := NewActiveSession(clock)
	u := users.NewFreeUser("a@b.com", "hash", users.Profile{})

	assert.False(t, s.IsLoggedIn())
	assert.Nil(t, s.User())

	s.Start(u)

	assert.True(t, s.IsLoggedIn())
	assert.Same(t, u, s.User())
	assert.NotEmpty(t, s.ID())
	assert.Equal(t, clock.Now(), s.StartedAt())

	s.End()

	assert.False(t, s.IsLoggedIn())
	assert.Nil(t, s.User())
	assert.Empty(t, s.ID())
	assert.True(t, s.StartedAt().IsZero())
}

func TestActiveSession_EndIsIdempotent(t *testing.T) {
	s := NewActiveSession(nil)

	s.End()
	s.End()

	assert.False(t, s.IsLoggedIn())
}

func TestActiveSession_LastWriterWins(t *testing.T) {
	clock := clockwork.NewFakeClock()
	s := NewActiveSession(clock)

	first := users.NewFreeUser("a@b.com", "hash", users.Profile{})
	second := users.NewPremiumUser("p@b.com", "hash", users.Profile{})

	s.Start(first)
	firstID := s.ID()

	clock.Advance(time.Minute)
	s.Start(second)

	assert.Same(t, second, s.User())
	assert.NotEqual(t, firstID, s.ID())
	assert.Equal(t, clock.Now(), s.StartedAt())
}

func TestActiveSession_StartNilIsNoop(t *testing.T) {
	s := NewActiveSession(clockwork.NewFakeClock())

	s.Start(nil)

	assert.False(t, s.IsLoggedIn())

	u := users.NewFreeUser("a@b.com", "hash", users.Profile{})
	s.Start(u)
	require.True(t, s.IsLoggedIn())

	// A nil Start must not clobber an existing session either.
	s.Start(nil)
	assert.Same(t, u, s.User())
}
