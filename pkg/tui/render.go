package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"gitlab.com/tinyland/lab/orbit-reader/pkg/render"
	"gitlab.com/tinyland/lab/orbit-reader/pkg/views"
)

// View renders the header, the active page and the status bar, with the orb
// layer composited on top at the animator's current poses.
func (m Model) View() string {
	if !m.ready {
		return ""
	}
	return m.frame(m.anim.Pose)
}

// frame draws one full screen. Page zones are scanned before the orb layer
// is composited over them, so cutting background lines around orb cells
// never splits a page zone marker.
func (m Model) frame(poses render.PoseFunc) string {
	env := m.env()
	bar := m.statusBar(m.width)
	bodyH := max(m.height-1-lipgloss.Height(bar), 0)

	body := lipgloss.Place(m.width, bodyH, lipgloss.Left, lipgloss.Top, "")
	if p := m.page(env.State.ActiveItem); p != nil {
		body = p.View(env, m.width, bodyH)
	}
	rows := []string{views.Header(env, m.width)}
	if bodyH > 0 {
		rows = append(rows, body)
	}
	rows = append(rows, bar)
	bg := strings.Join(rows, "\n")
	if m.zones != nil {
		bg = m.zones.Scan(bg)
	}

	comp := render.Compositor{Metrics: m.metrics, Theme: m.theme, Zones: m.zones}
	out := comp.Draw(m.scene, poses, m.width, m.height).Over(bg)
	if m.zones != nil {
		out = m.zones.Scan(out)
	}
	return out
}

// statusBar renders the key hints at the bottom of the screen, prefixed by
// the focused ring item or the last status message. Each line is padded
// or truncated to exactly width cells.
func (m Model) statusBar(width int) string {
	if width <= 0 {
		return ""
	}
	var msg string
	switch {
	case m.ringActive:
		if it, ok := m.ringItem(); ok {
			msg = m.styles.Accent.Render("› " + string(it.Icon) + " " + it.Label)
		}
	case m.status != "":
		msg = m.styles.Base.Render(m.status)
	}

	hints := m.help.View(m.keys)
	lines := strings.Split(hints, "\n")
	if msg != "" {
		if m.help.ShowAll {
			lines = append(lines, msg)
		} else {
			lines[0] = msg + m.styles.Dim.Render("  |  ") + lines[0]
		}
	}
	for i, l := range lines {
		lines[i] = lipgloss.PlaceHorizontal(width, lipgloss.Left, ansi.Truncate(l, width, ""))
	}
	return strings.Join(lines, "\n")
}
