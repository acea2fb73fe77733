package app

import (
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"gitlab.com/tinyland/lab/orbit-reader/pkg/dock"
	"gitlab.com/tinyland/lab/orbit-reader/pkg/library"
	"gitlab.com/tinyland/lab/orbit-reader/pkg/menu"
	"gitlab.com/tinyland/lab/orbit-reader/pkg/session"
	"gitlab.com/tinyland/lab/orbit-reader/pkg/theme"
)

// Page is a content view shown behind the orb while its menu item is
// active. Pages keep their own cursor and input state and report intent by
// returning commands that emit events.
type Page interface {
	// ID returns the menu item ID the page is shown for.
	ID() string

	// Update receives non-input messages routed to the page, such as
	// textinput blinks and AuthFailedEvent.
	Update(msg tea.Msg) tea.Cmd

	// HandleKey processes a key press while the page is active.
	HandleKey(env Env, key tea.KeyMsg) tea.Cmd

	// HandleMouse processes a click or wheel event that did not hit the orb
	// layer or the header.
	HandleMouse(env Env, msg tea.MouseMsg) tea.Cmd

	// View renders the page into exactly width x height cells.
	View(env Env, width, height int) string
}

// Capturer is implemented by pages that take raw text input. While Capturing
// reports true the root model forwards every key except the quit binding.
type Capturer interface {
	Capturing() bool
}

// Resetter is implemented by pages that clear their state each time they are
// opened.
type Resetter interface {
	Reset() tea.Cmd
}

// Env is the read-only state pages render from. It is rebuilt by the root
// model on every call.
type Env struct {
	Lang   menu.Language
	Theme  theme.Theme
	Styles theme.Styles
	State  dock.State
	Mobile bool

	User     session.User
	SignedIn bool
	Offline  bool

	Book    library.Book
	HasBook bool

	Zones *zone.Manager
}

// Mark wraps s in a hit-test zone. Without a zone manager s is returned
// unchanged.
func (e Env) Mark(id, s string) string {
	if e.Zones == nil {
		return s
	}
	return e.Zones.Mark(id, s)
}

// Hit reports whether msg falls inside zone id.
func (e Env) Hit(id string, msg tea.MouseMsg) bool {
	if e.Zones == nil {
		return false
	}
	z := e.Zones.Get(id)
	return z != nil && z.InBounds(msg)
}

// Clicked reports whether msg is a left-button press inside zone id.
func (e Env) Clicked(id string, msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress &&
		msg.Button == tea.MouseButtonLeft &&
		e.Hit(id, msg)
}
