// Package views holds the content pages shown behind the orb (library,
// reader, settings, profile and the auth overlay) and the header bar.
// Pages render from an app.Env and report intent by emitting app events;
// none of them touch the dock machine or the session directly.
package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"gitlab.com/tinyland/lab/orbit-reader/pkg/app"
	"gitlab.com/tinyland/lab/orbit-reader/pkg/theme"
)

// fill crops body to width x height and pads it with spaces to exactly that
// size.
func fill(width, height int, body string) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	lines := strings.Split(body, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for i, l := range lines {
		lines[i] = ansi.Truncate(l, width, "")
	}
	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top, strings.Join(lines, "\n"))
}

// gutter is the horizontal margin kept clear for a docked orb.
func gutter(width int) int {
	return max(width/12, 2)
}

// indent shifts every line of s right by n cells.
func indent(s string, n int) string {
	return lipgloss.NewStyle().PaddingLeft(n).Render(s)
}

// button renders a bordered button. on selects the highlighted style and
// focused underlines the label.
func button(st theme.Styles, label string, on, focused bool) string {
	s := st.Button
	if on {
		s = st.ButtonOn
	}
	if focused {
		s = s.Underline(true)
	}
	return s.Render(label)
}

// toggle renders an on/off switch.
func toggle(st theme.Styles, on, enabled bool) string {
	switch {
	case !enabled:
		return st.Dim.Render("(○  )")
	case on:
		return st.Accent.Render("(  ●)")
	default:
		return st.Dim.Render("(●  )")
	}
}

// cursor marks the focused row.
func cursor(st theme.Styles, focused bool) string {
	if focused {
		return st.Accent.Render("›") + " "
	}
	return "  "
}

// rule draws a horizontal divider.
func rule(st theme.Styles, width int) string {
	return st.Dim.Render(strings.Repeat("─", max(width, 0)))
}

// wrap reflows s to width cells.
func wrap(s string, width int) string {
	if width <= 0 {
		return s
	}
	return lipgloss.NewStyle().Width(width).Render(s)
}

// zoneID namespaces a page control for hit testing.
func zoneID(page, control string) string {
	return page + ":" + control
}

// mark is app.Env.Mark with a page namespace.
func mark(env app.Env, page, control, s string) string {
	return env.Mark(zoneID(page, control), s)
}
