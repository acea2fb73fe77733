package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/orbit-reader/pkg/anchor"
	"gitlab.com/tinyland/lab/orbit-reader/pkg/app"
	"gitlab.com/tinyland/lab/orbit-reader/pkg/menu"
	"gitlab.com/tinyland/lab/orbit-reader/pkg/theme"
)

// Settings controls, in focus order.
const (
	CtlDockTop    = "dock-top"
	CtlDockBottom = "dock-bottom"
	CtlDockLeft   = "dock-left"
	CtlDockRight  = "dock-right"
	CtlAutoHide   = "auto-hide"
	CtlOmniWake   = "omni-wake"
	CtlLangEN     = "lang-en"
	CtlLangZH     = "lang-zh"
	CtlTheme      = "theme"
)

var dockControls = []struct {
	id   string
	edge anchor.Edge
	icon string
}{
	{CtlDockTop, anchor.TopEdge, "↑"},
	{CtlDockBottom, anchor.BottomEdge, "↓"},
	{CtlDockLeft, anchor.LeftEdge, "←"},
	{CtlDockRight, anchor.RightEdge, "→"},
}

var settingsOrder = []string{
	CtlDockTop, CtlDockBottom, CtlDockLeft, CtlDockRight,
	CtlAutoHide, CtlOmniWake,
	CtlLangEN, CtlLangZH,
	CtlTheme,
}

var settingsKeys = struct {
	Prev, Next, Activate key.Binding
}{
	Prev:     key.NewBinding(key.WithKeys("up", "k", "left", "h")),
	Next:     key.NewBinding(key.WithKeys("down", "j", "right", "l")),
	Activate: key.NewBinding(key.WithKeys("enter", " ")),
}

// Settings edits the dock preferences, language and theme. While omni-wake
// is on the dock anchor buttons are shown highlighted and do nothing; the
// omni-wake switch is disabled while auto-hide is off.
type Settings struct {
	focus app.Focus
}

// NewSettings creates the settings page.
func NewSettings() *Settings {
	return &Settings{focus: app.NewFocus(settingsOrder...)}
}

func (s *Settings) ID() string { return menu.Settings }

// Focused returns the focused control.
func (s *Settings) Focused() string { return s.focus.Current() }

func (s *Settings) Update(tea.Msg) tea.Cmd { return nil }

func (s *Settings) HandleKey(env app.Env, msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, settingsKeys.Prev):
		s.focus.Backward()
	case key.Matches(msg, settingsKeys.Next):
		s.focus.Forward()
	case key.Matches(msg, settingsKeys.Activate):
		return s.Activate(env, s.focus.Current())
	}
	return nil
}

func (s *Settings) HandleMouse(env app.Env, msg tea.MouseMsg) tea.Cmd {
	for _, id := range settingsOrder {
		if env.Clicked(zoneID(menu.Settings, id), msg) {
			return s.Activate(env, id)
		}
	}
	return nil
}

// Activate returns the event control id asks for in the current state, or
// nil when the control is inert.
func (s *Settings) Activate(env app.Env, id string) tea.Cmd {
	s.focus.Set(id)
	st := env.State
	for _, d := range dockControls {
		if d.id == id {
			if st.OmniWake {
				return nil
			}
			return app.Emit(app.PreferredDockEvent{Edge: d.edge})
		}
	}
	switch id {
	case CtlAutoHide:
		return app.Emit(app.AutoHideEvent{On: !st.AutoHide})
	case CtlOmniWake:
		if !st.AutoHide {
			return nil
		}
		return app.Emit(app.OmniWakeEvent{On: !st.OmniWake})
	case CtlLangEN:
		return app.Emit(app.LanguageEvent{Lang: menu.English})
	case CtlLangZH:
		return app.Emit(app.LanguageEvent{Lang: menu.Chinese})
	case CtlTheme:
		return app.Emit(app.ThemeChangeEvent{Theme: theme.Next(env.Theme.Name).Name})
	}
	return nil
}

func (s *Settings) View(env app.Env, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	tx := tr(env.Lang)
	pad := gutter(width)
	inner := max(width-2*pad, 1)

	left := lipgloss.JoinVertical(lipgloss.Left, s.dockSection(env), "", s.languageSection(env))
	right := lipgloss.JoinVertical(lipgloss.Left, s.behaviorSection(env, inner), "", s.themeSection(env))

	var body string
	if inner >= 2*lipgloss.Width(left)+4 {
		colW := inner / 2
		body = lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.NewStyle().Width(colW).Render(left),
			lipgloss.NewStyle().Width(colW).Render(right),
		)
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left, left, "", right)
	}

	out := "\n" + env.Styles.Title.Render(tx.SettingsTitle) + "\n\n" + body
	return fill(width, height, indent(out, pad))
}

func (s *Settings) ctl(env app.Env, id, rendered string) string {
	return mark(env, menu.Settings, id, rendered)
}

func (s *Settings) dockSection(env app.Env) string {
	st, tx := env.Styles, tr(env.Lang)
	omni := env.State.OmniWake
	labels := map[anchor.Edge]string{
		anchor.TopEdge: tx.Top, anchor.BottomEdge: tx.Bottom,
		anchor.LeftEdge: tx.Left, anchor.RightEdge: tx.Right,
	}

	heading := st.Accent.Render("▣ ") + st.Title.Render(tx.Interface)
	label := st.Dim.Render(strings.ToUpper(tx.DockAnchor))
	if omni {
		label += "  " + st.Accent.Render("◉ "+tx.ActiveAll)
	}

	btns := make([]string, 0, len(dockControls))
	for _, d := range dockControls {
		on := omni || env.State.Preferred == d.edge
		btns = append(btns, s.ctl(env, d.id,
			button(st, d.icon+" "+labels[d.edge], on, s.focus.Current() == d.id)))
	}
	row1 := lipgloss.JoinHorizontal(lipgloss.Top, btns[0], " ", btns[1])
	row2 := lipgloss.JoinHorizontal(lipgloss.Top, btns[2], " ", btns[3])

	desc := st.Dim.Render(tx.DockDesc)
	if omni {
		desc = st.Accent.Render(tx.DockDescOmni)
	}
	return lipgloss.JoinVertical(lipgloss.Left, heading, "", label, row1, row2, desc)
}

func (s *Settings) languageSection(env app.Env) string {
	st, tx := env.Styles, tr(env.Lang)
	en := s.ctl(env, CtlLangEN, button(st, "English", env.Lang == menu.English, s.focus.Current() == CtlLangEN))
	zh := s.ctl(env, CtlLangZH, button(st, "中文 (Chinese)", env.Lang == menu.Chinese, s.focus.Current() == CtlLangZH))
	heading := st.Accent.Render("文 ") + st.Title.Render(tx.Language)
	return lipgloss.JoinVertical(lipgloss.Left, heading, "", lipgloss.JoinHorizontal(lipgloss.Top, en, " ", zh))
}

func (s *Settings) behaviorSection(env app.Env, width int) string {
	st, tx := env.Styles, tr(env.Lang)
	descW := max(min(width/2, 48)-8, 16)

	row := func(id, title, desc string, on, enabled bool) string {
		titleStyle, descStyle := st.Base, st.Dim
		if !enabled {
			titleStyle = st.Dim
		}
		text := lipgloss.JoinVertical(lipgloss.Left,
			cursor(st, s.focus.Current() == id)+titleStyle.Render(title),
			indent(descStyle.Render(wrap(desc, descW)), 2),
		)
		return s.ctl(env, id, lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.NewStyle().Width(descW+4).Render(text),
			toggle(st, on, enabled),
		))
	}

	heading := st.Accent.Render("◈ ") + st.Title.Render(tx.Behavior)
	autoHide := row(CtlAutoHide, tx.AutoHide, tx.AutoHideDesc, env.State.AutoHide, true)
	omni := row(CtlOmniWake, tx.OmniWake, tx.OmniWakeDesc, env.State.OmniWake && env.State.AutoHide, env.State.AutoHide)
	return lipgloss.JoinVertical(lipgloss.Left, heading, "", autoHide, "", omni)
}

func (s *Settings) themeSection(env app.Env) string {
	st, tx := env.Styles, tr(env.Lang)
	heading := st.Accent.Render("◐ ") + st.Title.Render(tx.Theme)
	btn := s.ctl(env, CtlTheme, button(st, env.Theme.Name+" ›", false, s.focus.Current() == CtlTheme))
	return lipgloss.JoinVertical(lipgloss.Left, heading, "", btn)
}
