// Package session is the mock authentication collaborator. It answers the
// two questions the dock's auth gate asks (is anyone signed in, is the shell
// in offline mode) and holds the signed-in user for the header and profile
// views. Credentials are fixed; nothing is persisted.
package session

import (
	"errors"
	"strings"
)

// Demo credentials accepted by Login.
const (
	DemoEmail    = "1@gmail.com"
	DemoPassword = "1"
)

var (
	// ErrInvalidCredentials is returned by Login for anything but the demo
	// account.
	ErrInvalidCredentials = errors.New("session: invalid credentials")
	// ErrMissingFields is returned by Register when a field is blank.
	ErrMissingFields = errors.New("session: all fields are required")
)

// Avatars is the palette the profile view cycles through.
var Avatars = []string{
	"#3b82f6", "#8b5cf6", "#f43f5e", "#10b981", "#475569", "#f59e0b",
}

// Stats summarizes a user's reading history.
type Stats struct {
	TotalReadingHours float64
	BooksRead         []string
	BooksPublished    []string
}

// User is the signed-in account.
type User struct {
	Username string
	Email    string
	Avatar   string // hex color
	Stats    Stats
}

// Session tracks the signed-in user and the offline flag.
type Session struct {
	user    *User
	offline bool
}

// New returns a signed-out, online session.
func New() *Session {
	return &Session{}
}

// Authenticated reports whether a user is signed in.
func (s *Session) Authenticated() bool {
	return s.user != nil
}

// Offline reports whether offline mode is active.
func (s *Session) Offline() bool {
	return s.offline
}

// SetOffline toggles offline mode.
func (s *Session) SetOffline(v bool) {
	s.offline = v
}

// User returns the signed-in user.
func (s *Session) User() (User, bool) {
	if s.user == nil {
		return User{}, false
	}
	return *s.user, true
}

// Login signs in the demo account. Signing in clears offline mode.
func (s *Session) Login(email, password string) (User, error) {
	if strings.TrimSpace(email) != DemoEmail || password != DemoPassword {
		return User{}, ErrInvalidCredentials
	}
	u := User{
		Username: "Traveller_01",
		Email:    DemoEmail,
		Avatar:   Avatars[0],
		Stats: Stats{
			TotalReadingHours: 142.5,
			BooksRead:         []string{"The Three-Body Problem", "Dune", "Neuromancer", "Foundation"},
			BooksPublished:    []string{"My Notes on Mars", "Orbital Mechanics 101"},
		},
	}
	s.signIn(u)
	return u, nil
}

// Register creates a fresh account and signs it in.
func (s *Session) Register(username, email, password string) (User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" || password == "" {
		return User{}, ErrMissingFields
	}
	u := User{Username: username, Email: email, Avatar: Avatars[3]}
	s.signIn(u)
	return u, nil
}

// Logout signs out and leaves offline mode.
func (s *Session) Logout() {
	s.user = nil
	s.offline = false
}

// CycleAvatar advances the signed-in user's avatar color.
func (s *Session) CycleAvatar() {
	if s.user == nil {
		return
	}
	next := 0
	for i, c := range Avatars {
		if c == s.user.Avatar {
			next = (i + 1) % len(Avatars)
			break
		}
	}
	s.user.Avatar = Avatars[next]
}

func (s *Session) signIn(u User) {
	s.user = &u
	s.offline = false
}
