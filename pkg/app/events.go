// Package app provides the shared vocabulary of the orbit-reader shell: the
// bubbletea message types pages use to request dock and session changes, the
// Page interface every content view implements, the Env snapshot pages render
// from, and the commands that drive the frame and hide timers.
//
// Pages never mutate the dock machine or the session directly. They return
// commands that emit the events below and the root model applies them, so
// every transition flows through one Update loop.
package app

import (
	"time"

	"gitlab.com/tinyland/lab/orbit-reader/pkg/anchor"
	"gitlab.com/tinyland/lab/orbit-reader/pkg/menu"
	"gitlab.com/tinyland/lab/orbit-reader/pkg/prefs"
	"gitlab.com/tinyland/lab/orbit-reader/pkg/visibility"
)

// FrameEvent is sent by the frame ticker while an animation is running.
type FrameEvent struct {
	Time time.Time
}

// HideEvent delivers a scheduled hide back into the update loop.
type HideEvent struct {
	Token visibility.Token
}

// PrefsEvent carries preferences reloaded from disk by the watcher.
type PrefsEvent struct {
	Prefs prefs.Prefs
}

// PrefsSavedEvent reports the result of a background preferences write.
type PrefsSavedEvent struct {
	Path string
	Err  error
}

// SelectBookEvent opens a book in the reader.
type SelectBookEvent struct {
	ID string
}

// PreferredDockEvent changes the preferred dock edge.
type PreferredDockEvent struct {
	Edge anchor.Edge
}

// AutoHideEvent toggles auto-hide.
type AutoHideEvent struct {
	On bool
}

// OmniWakeEvent toggles omni-directional wake.
type OmniWakeEvent struct {
	On bool
}

// LanguageEvent switches the interface language.
type LanguageEvent struct {
	Lang menu.Language
}

// ThemeChangeEvent switches the active color theme.
type ThemeChangeEvent struct {
	Theme string
}

// LoginEvent asks the session to sign in.
type LoginEvent struct {
	Email    string
	Password string
}

// RegisterEvent asks the session to create an account and sign it in.
type RegisterEvent struct {
	Username string
	Email    string
	Password string
}

// AuthFailedEvent is routed to the auth page when a sign-in is rejected.
type AuthFailedEvent struct {
	Err error
}

// Session and overlay requests.
type (
	LogoutEvent      struct{}
	OpenAuthEvent    struct{}
	CloseAuthEvent   struct{}
	OpenProfileEvent struct{}
	AvatarEvent      struct{}
)

// StatusEvent flashes a message in the status bar.
type StatusEvent struct {
	Text string
}
