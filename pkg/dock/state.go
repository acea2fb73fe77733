// Package dock owns the orb's dock/visibility state. All mutation goes
// through Machine's transition methods, each of which leaves the invariants
// below holding:
//
//   - OmniWake implies AutoHide.
//   - Preferred is never center (enforced by anchor.Edge).
//   - Turning omni-wake off resets Preferred to the left edge and snaps a
//     docked orb there.
//   - The orb is visible iff it is centered, auto-hide is off, or the pointer
//     is interacting with it.
package dock

import "gitlab.com/tinyland/lab/orbit-reader/pkg/anchor"

// State is a read-only snapshot of the machine.
type State struct {
	Dock        anchor.Position
	Preferred   anchor.Edge
	ActiveItem  string // "" when only the orb is shown
	AutoHide    bool
	OmniWake    bool
	Interacting bool
}

// Visible derives orb visibility. It is recomputed on every call.
func (s State) Visible() bool {
	return !s.Dock.IsDocked() || !s.AutoHide || s.Interacting
}

// Sensors reports whether the edge hover strips are live.
func (s State) Sensors() bool {
	return s.Dock.IsDocked()
}

// Preferences is the user-tunable subset of State.
type Preferences struct {
	Preferred anchor.Edge
	AutoHide  bool
	OmniWake  bool
}

// Change describes one observable state change.
type Change struct {
	Cause  string
	Before State
	After  State
}

// Navigated reports whether the active item changed.
func (c Change) Navigated() bool {
	return c.Before.ActiveItem != c.After.ActiveItem
}

// AuthStatus is consulted by the auth gate. SetOffline is driven by the
// offline menu item and by the auth overlay.
type AuthStatus interface {
	Authenticated() bool
	Offline() bool
	SetOffline(bool)
}

// openAccess treats every caller as signed in; used when no AuthStatus is
// supplied.
type openAccess struct{ offline bool }

func (o *openAccess) Authenticated() bool { return true }
func (o *openAccess) Offline() bool       { return o.offline }
func (o *openAccess) SetOffline(v bool)   { o.offline = v }
