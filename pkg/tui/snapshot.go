package tui

import (
	"gitlab.com/tinyland/lab/orbit-reader/pkg/anchor"
	"gitlab.com/tinyland/lab/orbit-reader/pkg/config"
	"gitlab.com/tinyland/lab/orbit-reader/pkg/render"
	"gitlab.com/tinyland/lab/orbit-reader/pkg/session"
)

// SnapshotOptions selects the frame Snapshot draws.
type SnapshotOptions struct {
	Width  int
	Height int

	// Dock is where the orb sits. A docked orb has the library open.
	Dock anchor.Position
	// Hidden turns on auto-hide and leaves a docked orb at rest, tucked
	// away. Otherwise a docked auto-hide orb is drawn revealed.
	Hidden bool
}

// Snapshot renders one static frame with every element on its target, for
// non-interactive output. The demo account is signed in.
func Snapshot(cfg *config.Config, o SnapshotOptions) string {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	c := *cfg
	omni := c.Dock.OmniWake
	c.Dock.OmniWake = false
	if e, ok := o.Dock.Edge(); ok {
		c.Dock.Preferred = e
	}

	sess := session.New()
	_, _ = sess.Login(session.DemoEmail, session.DemoPassword)
	m := New(Options{Config: &c, Session: sess})
	m.resize(o.Width, o.Height)
	if !m.ready {
		return ""
	}

	if o.Dock.IsDocked() {
		m.machine.ClickMenuItem(m.items[0])
	}
	if o.Hidden {
		m.machine.SetAutoHide(true)
	}
	if omni {
		m.machine.SetOmniWake(true)
	}
	if !o.Hidden {
		m.machine.PointerEnter()
	}
	m.syncScene()
	return m.frame(render.Targets(m.scene))
}
