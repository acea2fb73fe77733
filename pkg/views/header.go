package views

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/orbit-reader/pkg/app"
	"gitlab.com/tinyland/lab/orbit-reader/pkg/menu"
)

// Header zones.
const (
	ZoneLogin = "header:login"
	ZoneUser  = "header:user"
)

// Header renders the top bar: a connection badge and either the login button
// or the signed-in user. The badge is dropped on mobile viewports.
func Header(env app.Env, width int) string {
	if width <= 0 {
		return ""
	}
	st := env.Styles
	s := menu.T(env.Lang)

	var parts []string
	if !env.Mobile {
		parts = append(parts, badge(env))
	}
	if env.SignedIn {
		chip := lipgloss.NewStyle().
			Background(lipgloss.Color(env.User.Avatar)).
			Foreground(lipgloss.Color("#ffffff")).
			Bold(true).
			Render(" " + initials(env.User.Username) + " ")
		parts = append(parts, env.Mark(ZoneUser, chip+" "+st.Title.Render(strings.ToUpper(env.User.Username))))
	} else {
		label := "→ " + strings.ToUpper(s.Login)
		style := st.Accent
		if env.State.ActiveItem == menu.Auth {
			style = st.ItemActive.Reverse(true)
		}
		parts = append(parts, env.Mark(ZoneLogin, style.Render(" "+label+" ")))
	}

	right := strings.Join(parts, "  ")
	return lipgloss.PlaceHorizontal(width, lipgloss.Right, right+" ")
}

func badge(env app.Env) string {
	st := env.Styles
	s := menu.T(env.Lang)
	switch {
	case env.SignedIn:
		return st.Online.Render("● " + strings.ToUpper(s.StatusOnline))
	case env.Offline:
		return st.Offline.Render("⊘ " + strings.ToUpper(s.StatusOffline))
	default:
		return st.Dim.Render("◌ " + strings.ToUpper(s.StatusGuest))
	}
}

// HeaderMouse handles clicks on the header buttons. The user button opens
// the profile unless it is already active.
func HeaderMouse(env app.Env, msg tea.MouseMsg) (tea.Cmd, bool) {
	switch {
	case env.SignedIn && env.Clicked(ZoneUser, msg):
		if env.State.ActiveItem == menu.Profile {
			return nil, true
		}
		return app.Emit(app.OpenProfileEvent{}), true
	case !env.SignedIn && env.Clicked(ZoneLogin, msg):
		return app.Emit(app.OpenAuthEvent{}), true
	}
	return nil, false
}

func initials(name string) string {
	r := []rune(name)
	if len(r) > 2 {
		r = r[:2]
	}
	return strings.ToUpper(string(r))
}
