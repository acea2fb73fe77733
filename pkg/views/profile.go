package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/orbit-reader/pkg/app"
	"gitlab.com/tinyland/lab/orbit-reader/pkg/menu"
)

// Profile controls.
const (
	CtlAvatar   = "avatar"
	CtlPassword = "password"
	CtlLogout   = "logout"
	CtlSave     = "save"
	CtlCancel   = "cancel"
)

var profileKeys = struct {
	Prev, Next, Activate key.Binding
}{
	Prev:     key.NewBinding(key.WithKeys("left", "h", "up", "k")),
	Next:     key.NewBinding(key.WithKeys("right", "l", "down", "j")),
	Activate: key.NewBinding(key.WithKeys("enter", " ")),
}

// Profile shows the signed-in user's card, stats and reading lists. The
// password form is local: saving only flashes a confirmation.
type Profile struct {
	focus   app.Focus
	editing bool
	pass    textinput.Model
	flash   bool
}

// NewProfile creates the profile page.
func NewProfile() *Profile {
	ti := textinput.New()
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '•'
	ti.Prompt = "⚿ "
	ti.CharLimit = 64
	return &Profile{focus: app.NewFocus(CtlAvatar, CtlPassword, CtlLogout), pass: ti}
}

func (p *Profile) ID() string { return menu.Profile }

// Capturing reports whether the password form is open.
func (p *Profile) Capturing() bool { return p.editing }

// Editing reports whether the password form is open.
func (p *Profile) Editing() bool { return p.editing }

// Reset closes the password form and clears the confirmation.
func (p *Profile) Reset() tea.Cmd {
	p.closeForm()
	p.flash = false
	return nil
}

func (p *Profile) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	p.pass, cmd = p.pass.Update(msg)
	return cmd
}

func (p *Profile) HandleKey(env app.Env, msg tea.KeyMsg) tea.Cmd {
	if !env.SignedIn {
		return nil
	}
	if p.editing {
		switch msg.Type {
		case tea.KeyEnter:
			return p.activate(CtlSave)
		case tea.KeyEsc:
			return p.activate(CtlCancel)
		}
		var cmd tea.Cmd
		p.pass, cmd = p.pass.Update(msg)
		return cmd
	}
	switch {
	case key.Matches(msg, profileKeys.Prev):
		p.focus.Backward()
	case key.Matches(msg, profileKeys.Next):
		p.focus.Forward()
	case key.Matches(msg, profileKeys.Activate):
		return p.activate(p.focus.Current())
	}
	return nil
}

func (p *Profile) HandleMouse(env app.Env, msg tea.MouseMsg) tea.Cmd {
	if !env.SignedIn {
		return nil
	}
	ids := []string{CtlAvatar, CtlPassword, CtlLogout}
	if p.editing {
		ids = []string{CtlAvatar, CtlSave, CtlCancel}
	}
	for _, id := range ids {
		if env.Clicked(zoneID(menu.Profile, id), msg) {
			return p.activate(id)
		}
	}
	return nil
}

func (p *Profile) activate(id string) tea.Cmd {
	p.focus.Set(id)
	switch id {
	case CtlAvatar:
		return app.Emit(app.AvatarEvent{})
	case CtlPassword:
		p.editing = true
		p.flash = false
		return p.pass.Focus()
	case CtlSave:
		p.closeForm()
		p.flash = true
	case CtlCancel:
		p.closeForm()
	case CtlLogout:
		return app.Emit(app.LogoutEvent{})
	}
	return nil
}

func (p *Profile) closeForm() {
	p.editing = false
	p.pass.Reset()
	p.pass.Blur()
}

func (p *Profile) View(env app.Env, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	st, tx := env.Styles, tr(env.Lang)
	if !env.SignedIn {
		return app.Centered(width, height,
			st.Dim.Render("☺"), "", st.Dim.Render(tx.NoProfile))
	}
	u := env.User
	pad := gutter(width)
	inner := max(width-2*pad, 1)

	avatar := lipgloss.NewStyle().
		Background(lipgloss.Color(u.Avatar)).
		Foreground(lipgloss.Color("#ffffff")).
		Bold(true).
		Padding(1, 3).
		Render(initials(u.Username))
	avatar = lipgloss.JoinVertical(lipgloss.Center, avatar,
		mark(env, menu.Profile, CtlAvatar, button(st, "✎ "+tx.Avatar, false, p.focus.Current() == CtlAvatar)))

	var actions string
	if p.editing {
		p.pass.Placeholder = tx.NewPass
		actions = lipgloss.JoinHorizontal(lipgloss.Center,
			p.pass.View(), " ",
			mark(env, menu.Profile, CtlSave, button(st, tx.Save, true, false)), " ",
			mark(env, menu.Profile, CtlCancel, button(st, "✕", false, false)),
		)
	} else {
		actions = lipgloss.JoinHorizontal(lipgloss.Top,
			mark(env, menu.Profile, CtlPassword, button(st, "⚿ "+tx.ChangePass, false, p.focus.Current() == CtlPassword)), " ",
			mark(env, menu.Profile, CtlLogout, p.logoutButton(env, tx.Logout)),
		)
	}
	ident := lipgloss.JoinVertical(lipgloss.Left,
		st.Title.Render(u.Username),
		st.Dim.Render("✉ "+u.Email),
		"",
		actions,
	)
	if p.flash {
		ident = lipgloss.JoinVertical(lipgloss.Left, ident, st.Online.Render("✓ "+tx.PassUpdated))
	}
	card := lipgloss.JoinHorizontal(lipgloss.Top, avatar, "   ", ident)

	stat := func(val, label string) string {
		return lipgloss.NewStyle().Width(max(inner/3, 14)).Render(
			st.Title.Render(val) + "\n" + st.Dim.Render(strings.ToUpper(label)))
	}
	stats := lipgloss.JoinHorizontal(lipgloss.Top,
		stat(fmt.Sprintf("%.1fh", u.Stats.TotalReadingHours), tx.StatHours),
		stat(fmt.Sprint(len(u.Stats.BooksRead)), tx.StatRead),
		stat(fmt.Sprint(len(u.Stats.BooksPublished)), tx.StatPub),
	)

	list := func(title string, items []string, bullet lipgloss.Style) string {
		lines := []string{st.Title.Render(title)}
		if len(items) == 0 {
			lines = append(lines, st.Dim.Italic(true).Render(tx.Empty))
		}
		for _, it := range items {
			lines = append(lines, bullet.Render("•")+" "+st.Base.Render(it))
		}
		return lipgloss.NewStyle().Width(max(inner/2, 20)).Render(strings.Join(lines, "\n"))
	}
	lists := lipgloss.JoinHorizontal(lipgloss.Top,
		list("❡ "+tx.History, u.Stats.BooksRead, st.Online),
		list("✎ "+tx.Works, u.Stats.BooksPublished, st.Accent),
	)

	out := lipgloss.JoinVertical(lipgloss.Left, "", card, "", rule(st, inner), "", stats, "", lists)
	return fill(width, height, indent(out, pad))
}

func (p *Profile) logoutButton(env app.Env, label string) string {
	s := env.Styles.Button.
		Foreground(env.Styles.Danger.GetForeground()).
		BorderForeground(env.Styles.Danger.GetForeground())
	if p.focus.Current() == CtlLogout {
		s = s.Underline(true)
	}
	return s.Render("⏻ " + label)
}
