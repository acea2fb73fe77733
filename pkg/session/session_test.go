package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSessionIsGuest(t *testing.T) {
	s := New()
	assert.False(t, s.Authenticated())
	assert.False(t, s.Offline())
	_, ok := s.User()
	assert.False(t, ok)
}

func TestLoginDemoAccount(t *testing.T) {
	s := New()
	s.SetOffline(true)

	u, err := s.Login(" "+DemoEmail, DemoPassword)
	require.NoError(t, err)
	assert.Equal(t, "Traveller_01", u.Username)
	assert.True(t, s.Authenticated())
	assert.False(t, s.Offline(), "signing in leaves offline mode")
}

func TestLoginRejectsOtherCredentials(t *testing.T) {
	s := New()
	_, err := s.Login(DemoEmail, "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.False(t, s.Authenticated())
}

func TestRegisterRequiresAllFields(t *testing.T) {
	s := New()
	_, err := s.Register("nova", "", "pw")
	assert.ErrorIs(t, err, ErrMissingFields)

	u, err := s.Register("nova", "nova@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "nova", u.Username)
	assert.Empty(t, u.Stats.BooksRead)
}

func TestLogout(t *testing.T) {
	s := New()
	_, err := s.Login(DemoEmail, DemoPassword)
	require.NoError(t, err)
	s.Logout()
	assert.False(t, s.Authenticated())
	assert.False(t, s.Offline())
}

func TestCycleAvatarWraps(t *testing.T) {
	s := New()
	s.CycleAvatar() // no user: no-op

	_, err := s.Login(DemoEmail, DemoPassword)
	require.NoError(t, err)
	for i := 0; i < len(Avatars); i++ {
		s.CycleAvatar()
	}
	u, _ := s.User()
	assert.Equal(t, Avatars[0], u.Avatar)
}
