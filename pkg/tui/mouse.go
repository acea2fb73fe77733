package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/orbit-reader/pkg/anchor"
	"gitlab.com/tinyland/lab/orbit-reader/pkg/render"
	"gitlab.com/tinyland/lab/orbit-reader/pkg/views"
)

// handleMouse gives the orb layer first claim on every event, then the
// header, then the active page.
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	target := m.orbTarget(msg)
	m.setHover(target)
	if msg.Action == tea.MouseActionMotion {
		return nil
	}

	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		switch {
		case target == render.ZoneOrb:
			m.ringActive = false
			m.machine.ClickOrb()
			return nil
		case strings.HasPrefix(target, "item:"):
			for _, el := range m.scene.Items {
				if el.ID == target {
					m.ring.Set(el.Item.ID)
					m.machine.ClickMenuItem(el.Item)
				}
			}
			return nil
		}
	}

	env := m.env()
	if cmd, ok := views.HeaderMouse(env, msg); ok {
		return cmd
	}
	if p := m.page(env.State.ActiveItem); p != nil {
		return p.HandleMouse(env, msg)
	}
	return nil
}

// orbTarget returns the orb-layer zone under msg: a visible menu item, then
// the visible orb, then an edge sensor. Zones the current scene does not
// draw are skipped, since their last scanned bounds may be stale.
func (m *Model) orbTarget(msg tea.MouseMsg) string {
	if m.zones == nil {
		return ""
	}
	in := func(id string) bool {
		z := m.zones.Get(id)
		return z != nil && z.InBounds(msg)
	}
	sc := m.scene
	if sc.ShowOrb {
		for _, el := range sc.Items {
			if el.Interactive && in(el.ID) {
				return el.ID
			}
		}
		if sc.Visible && in(sc.Orb.ID) {
			return sc.Orb.ID
		}
	}
	for _, s := range sc.Sensors {
		if id := render.SensorZone(s.Edge); in(id) {
			return id
		}
	}
	return ""
}

// setHover turns pointer movement across orb-layer zones into enter and
// leave transitions. Every zone left ends the interaction; entering a
// sensor is an edge enter, entering the orb or an item starts one.
func (m *Model) setHover(target string) {
	if target == m.hover {
		return
	}
	prev := m.hover
	m.hover = target
	if prev != "" {
		m.machine.PointerLeave()
	}
	if target == "" {
		return
	}
	if e, ok := sensorEdge(target); ok {
		m.machine.EdgeEnter(e)
		return
	}
	m.machine.PointerEnter()
}

func sensorEdge(id string) (anchor.Edge, bool) {
	for _, e := range anchor.Edges() {
		if render.SensorZone(e) == id {
			return e, true
		}
	}
	return anchor.Edge{}, false
}
