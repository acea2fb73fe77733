package dock

import (
	"time"

	"go.uber.org/zap"

	"gitlab.com/tinyland/lab/orbit-reader/pkg/anchor"
	"gitlab.com/tinyland/lab/orbit-reader/pkg/menu"
	"gitlab.com/tinyland/lab/orbit-reader/pkg/visibility"
)

// Transition causes reported in Change.Cause.
const (
	CauseClickOrb      = "click-orb"
	CauseClickItem     = "click-item"
	CauseOffline       = "offline"
	CauseAuthGate      = "auth-gate"
	CausePreferredDock = "preferred-dock"
	CauseAutoHide      = "auto-hide"
	CauseOmniWake      = "omni-wake"
	CauseEdgeEnter     = "edge-enter"
	CauseInteraction   = "interaction"
	CauseLogin         = "login"
	CauseLogout        = "logout"
	CauseOpenAuth      = "open-auth"
	CauseCloseAuth     = "close-auth"
	CauseOpenProfile   = "open-profile"
	CauseSelectBook    = "select-book"
)

// Machine is the dock state machine. It is not safe for concurrent use; the
// host's event loop serializes calls.
type Machine struct {
	dock      anchor.Position
	preferred anchor.Edge
	active    string
	autoHide  bool
	omniWake  bool
	book      string

	reveal    time.Duration
	timer     *visibility.Timer
	auth      AuthStatus
	log       *zap.Logger
	observers []func(Change)
}

// Option configures a Machine.
type Option func(*Machine)

// WithLogger sets the transition logger.
func WithLogger(l *zap.Logger) Option {
	return func(m *Machine) {
		if l != nil {
			m.log = l
		}
	}
}

// WithRevealGrace sets how long a preferred-dock change keeps an auto-hidden
// orb revealed.
func WithRevealGrace(d time.Duration) Option {
	return func(m *Machine) {
		if d > 0 {
			m.reveal = d
		}
	}
}

// WithAuth sets the collaborator consulted by the auth gate. Without it every
// caller is treated as signed in.
func WithAuth(a AuthStatus) Option {
	return func(m *Machine) {
		if a != nil {
			m.auth = a
		}
	}
}

// New creates a machine in the initial state: centered, preferring the left
// edge, auto-hide and omni-wake off. A nil timer gets an unscheduled one.
func New(timer *visibility.Timer, opts ...Option) *Machine {
	if timer == nil {
		timer = visibility.New(nil, 0)
	}
	m := &Machine{
		dock:      anchor.Center,
		preferred: anchor.LeftEdge,
		reveal:    visibility.PreferenceGrace,
		timer:     timer,
		auth:      &openAccess{},
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	timer.Subscribe(func(v bool) {
		after := m.Snapshot()
		before := after
		before.Interacting = !v
		m.emit(Change{Cause: CauseInteraction, Before: before, After: after})
	})
	return m
}

// Snapshot returns the current state.
func (m *Machine) Snapshot() State {
	return State{
		Dock:        m.dock,
		Preferred:   m.preferred,
		ActiveItem:  m.active,
		AutoHide:    m.autoHide,
		OmniWake:    m.omniWake,
		Interacting: m.timer.Interacting(),
	}
}

// Visible reports whether the orb should be shown right now.
func (m *Machine) Visible() bool {
	return m.Snapshot().Visible()
}

// Preferences returns the user-tunable settings.
func (m *Machine) Preferences() Preferences {
	return Preferences{Preferred: m.preferred, AutoHide: m.autoHide, OmniWake: m.omniWake}
}

// CurrentBook returns the ID of the book last opened with SelectBook.
func (m *Machine) CurrentBook() string {
	return m.book
}

// OnChange registers fn to receive every state change.
func (m *Machine) OnChange(fn func(Change)) {
	m.observers = append(m.observers, fn)
}

// ClickOrb recenters the orb and clears the active item.
func (m *Machine) ClickOrb() {
	m.apply(CauseClickOrb, func() {
		m.dock = anchor.Center
		m.active = ""
	})
}

// ClickMenuItem handles a ring button press. The special item switches to
// offline mode; otherwise unauthenticated online users are sent to the auth
// overlay. Pressing the already active item does nothing. With omni-wake off
// the orb docks at the preferred edge; with it on the orb stays where it was
// last summoned.
func (m *Machine) ClickMenuItem(item menu.Item) {
	if item.Special {
		m.SelectOffline()
		return
	}
	if !m.auth.Authenticated() && !m.auth.Offline() {
		m.apply(CauseAuthGate, func() {
			m.dock = anchor.Center
			m.active = menu.Auth
		})
		return
	}
	if m.active == item.ID {
		return
	}
	m.apply(CauseClickItem, func() {
		if !m.omniWake {
			m.dock = m.preferred.Position()
		}
		m.active = item.ID
	})
}

// SelectOffline enters offline mode and recenters with nothing active.
func (m *Machine) SelectOffline() {
	m.auth.SetOffline(true)
	m.apply(CauseOffline, func() {
		m.active = ""
		m.dock = anchor.Center
	})
}

// SetPreferredDock changes the preferred edge. A docked orb moves there at
// once and, under auto-hide, is revealed briefly so the move is visible.
func (m *Machine) SetPreferredDock(e anchor.Edge) {
	m.apply(CausePreferredDock, func() {
		m.preferred = e
		if !m.dock.IsDocked() {
			return
		}
		m.dock = e.Position()
		if m.autoHide {
			m.timer.Start()
			m.timer.EndAfter(m.reveal)
		}
	})
}

// SetAutoHide toggles auto-hide. Turning it off also turns omni-wake off.
func (m *Machine) SetAutoHide(v bool) {
	m.apply(CauseAutoHide, func() {
		m.autoHide = v
		if !v && m.omniWake {
			m.disableOmniWake()
		}
	})
}

// SetOmniWake toggles omni-directional wake. Enabling it requires auto-hide;
// the request is ignored (and false returned) otherwise. Disabling it resets
// the preferred edge to left and snaps a docked orb there.
func (m *Machine) SetOmniWake(v bool) bool {
	if v && !m.autoHide {
		return false
	}
	m.apply(CauseOmniWake, func() {
		if v {
			m.omniWake = true
			return
		}
		m.disableOmniWake()
	})
	return true
}

func (m *Machine) disableOmniWake() {
	m.omniWake = false
	m.preferred = anchor.LeftEdge
	if m.dock.IsDocked() {
		m.dock = anchor.Left
	}
}

// EdgeEnter handles the pointer entering an edge sensor. Sensors are inert
// while centered. With omni-wake the orb relocates to the entered edge.
// Under auto-hide the orb is revealed when omni-wake is on or the entered
// edge is the one it is docked at.
func (m *Machine) EdgeEnter(e anchor.Edge) {
	if !m.dock.IsDocked() {
		return
	}
	m.apply(CauseEdgeEnter, func() {
		current := m.dock
		if m.omniWake {
			m.dock = e.Position()
		}
		if m.autoHide && (m.omniWake || e.Position() == current) {
			m.timer.Start()
		}
	})
}

// PointerEnter marks the start of pointer interaction with the orb or ring.
func (m *Machine) PointerEnter() {
	m.timer.Start()
}

// PointerLeave schedules the end of pointer interaction after the grace
// window.
func (m *Machine) PointerLeave() {
	m.timer.End()
}

// Expire delivers a scheduled hide. Stale tokens are ignored.
func (m *Machine) Expire(tok visibility.Token) bool {
	return m.timer.Expire(tok)
}

// LoginSucceeded closes the auth overlay after a successful sign-in.
func (m *Machine) LoginSucceeded() {
	m.auth.SetOffline(false)
	m.apply(CauseLogin, func() {
		m.active = ""
		m.dock = anchor.Center
	})
}

// Logout returns to the auth overlay.
func (m *Machine) Logout() {
	m.auth.SetOffline(false)
	m.apply(CauseLogout, func() {
		m.active = menu.Auth
		m.dock = anchor.Center
	})
}

// OpenAuth opens the auth overlay from the header, leaving offline mode.
func (m *Machine) OpenAuth() {
	m.auth.SetOffline(false)
	m.apply(CauseOpenAuth, func() {
		m.active = menu.Auth
	})
}

// CloseAuth dismisses the auth overlay.
func (m *Machine) CloseAuth() {
	if m.active != menu.Auth {
		return
	}
	m.apply(CauseCloseAuth, func() {
		m.active = ""
	})
}

// OpenProfile opens the profile view from the header user button.
func (m *Machine) OpenProfile() {
	if m.active == menu.Profile {
		return
	}
	m.apply(CauseOpenProfile, func() {
		m.active = menu.Profile
		m.dock = m.preferred.Position()
	})
}

// SelectBook opens a book in the reader and docks at the preferred edge.
func (m *Machine) SelectBook(id string) {
	m.book = id
	m.apply(CauseSelectBook, func() {
		m.dock = m.preferred.Position()
		m.active = menu.Reader
	})
}

// ApplyPreferences routes stored preferences through the transition methods
// so the invariants hold for any input. Only settings that differ from the
// current ones are applied; an identical set leaves the orb where it is.
func (m *Machine) ApplyPreferences(p Preferences) {
	if p.AutoHide != m.autoHide {
		m.SetAutoHide(p.AutoHide)
	}
	if p.OmniWake != m.omniWake {
		m.SetOmniWake(p.OmniWake)
	}
	if p.Preferred != m.preferred {
		m.SetPreferredDock(p.Preferred)
	}
}

func (m *Machine) apply(cause string, fn func()) {
	before := m.Snapshot()
	fn()
	after := m.Snapshot()
	if before == after {
		return
	}
	m.emit(Change{Cause: cause, Before: before, After: after})
}

func (m *Machine) emit(c Change) {
	m.log.Debug("dock transition",
		zap.String("cause", c.Cause),
		zap.Stringer("dock", c.After.Dock),
		zap.Stringer("preferred", c.After.Preferred),
		zap.String("active", c.After.ActiveItem),
		zap.Bool("auto_hide", c.After.AutoHide),
		zap.Bool("omni_wake", c.After.OmniWake),
		zap.Bool("visible", c.After.Visible()),
	)
	for _, fn := range m.observers {
		fn(c)
	}
}
