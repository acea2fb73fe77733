package views

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/orbit-reader/pkg/app"
	"gitlab.com/tinyland/lab/orbit-reader/pkg/menu"
	"gitlab.com/tinyland/lab/orbit-reader/pkg/session"
)

// AuthMode selects the form shown by the auth overlay.
type AuthMode int

const (
	ModeLogin AuthMode = iota
	ModeRegister
)

// Auth overlay controls.
const (
	CtlClose  = "close"
	CtlCard   = "card"
	CtlSubmit = "submit"
	CtlSwitch = "switch"
)

const (
	fieldUsername = iota
	fieldEmail
	fieldPassword
	fieldCount
)

var fieldIDs = [fieldCount]string{"field-username", "field-email", "field-password"}

var authKeys = struct {
	Next, Prev, Submit, Close, Switch key.Binding
}{
	Next:   key.NewBinding(key.WithKeys("tab", "down")),
	Prev:   key.NewBinding(key.WithKeys("shift+tab", "up")),
	Submit: key.NewBinding(key.WithKeys("enter")),
	Close:  key.NewBinding(key.WithKeys("esc")),
	Switch: key.NewBinding(key.WithKeys("ctrl+r")),
}

type authError int

const (
	errNone authError = iota
	errCredentials
	errFields
)

// Auth is the sign-in and registration overlay. It validates that every
// registration field is filled; credential checks are left to the session
// via LoginEvent and RegisterEvent, and rejections come back as
// AuthFailedEvent.
type Auth struct {
	mode   AuthMode
	inputs [fieldCount]textinput.Model
	field  int
	err    authError
}

// NewAuth creates the overlay in login mode.
func NewAuth() *Auth {
	a := &Auth{}
	placeholders := [fieldCount]string{"John Doe", "name@example.com", "••••••••"}
	prompts := [fieldCount]string{"☺ ", "✉ ", "⚿ "}
	for i := range a.inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.Prompt = prompts[i]
		ti.CharLimit = 128
		ti.Width = 28
		a.inputs[i] = ti
	}
	a.inputs[fieldPassword].EchoMode = textinput.EchoPassword
	a.inputs[fieldPassword].EchoCharacter = '•'
	a.focusField(fieldEmail)
	return a
}

func (a *Auth) ID() string { return menu.Auth }

// Capturing is always true: every key goes to the form.
func (a *Auth) Capturing() bool { return true }

// Mode returns the current form.
func (a *Auth) Mode() AuthMode { return a.mode }

// Field returns the index of the focused input.
func (a *Auth) Field() int { return a.field }

// Reset clears the form and returns to login mode.
func (a *Auth) Reset() tea.Cmd {
	for i := range a.inputs {
		a.inputs[i].Reset()
	}
	a.mode = ModeLogin
	a.err = errNone
	return a.focusField(fieldEmail)
}

func (a *Auth) Update(msg tea.Msg) tea.Cmd {
	if ev, ok := msg.(app.AuthFailedEvent); ok {
		a.err = errCredentials
		if errors.Is(ev.Err, session.ErrMissingFields) {
			a.err = errFields
		}
		return nil
	}
	cmds := make([]tea.Cmd, 0, fieldCount)
	for i := range a.inputs {
		var cmd tea.Cmd
		a.inputs[i], cmd = a.inputs[i].Update(msg)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (a *Auth) HandleKey(_ app.Env, msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, authKeys.Close):
		return app.Emit(app.CloseAuthEvent{})
	case key.Matches(msg, authKeys.Switch):
		return a.toggleMode()
	case key.Matches(msg, authKeys.Submit):
		return a.submit()
	case key.Matches(msg, authKeys.Next):
		return a.focusField(a.step(1))
	case key.Matches(msg, authKeys.Prev):
		return a.focusField(a.step(-1))
	}
	var cmd tea.Cmd
	a.inputs[a.field], cmd = a.inputs[a.field].Update(msg)
	return cmd
}

// HandleMouse closes the overlay on a click outside the card.
func (a *Auth) HandleMouse(env app.Env, msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	switch {
	case env.Clicked(zoneID(menu.Auth, CtlClose), msg):
		return app.Emit(app.CloseAuthEvent{})
	case env.Clicked(zoneID(menu.Auth, CtlSubmit), msg):
		return a.submit()
	case env.Clicked(zoneID(menu.Auth, CtlSwitch), msg):
		return a.toggleMode()
	}
	for _, f := range a.fields() {
		if env.Clicked(zoneID(menu.Auth, fieldIDs[f]), msg) {
			return a.focusField(f)
		}
	}
	if env.Zones != nil && !env.Hit(zoneID(menu.Auth, CtlCard), msg) {
		return app.Emit(app.CloseAuthEvent{})
	}
	return nil
}

// fields returns the inputs shown in the current mode, in tab order.
func (a *Auth) fields() []int {
	if a.mode == ModeRegister {
		return []int{fieldUsername, fieldEmail, fieldPassword}
	}
	return []int{fieldEmail, fieldPassword}
}

func (a *Auth) step(d int) int {
	fs := a.fields()
	i := 0
	for j, f := range fs {
		if f == a.field {
			i = j
		}
	}
	return fs[(i+d+len(fs))%len(fs)]
}

func (a *Auth) focusField(f int) tea.Cmd {
	a.field = f
	for i := range a.inputs {
		a.inputs[i].Blur()
	}
	return a.inputs[f].Focus()
}

func (a *Auth) toggleMode() tea.Cmd {
	a.err = errNone
	if a.mode == ModeLogin {
		a.mode = ModeRegister
		return a.focusField(fieldUsername)
	}
	a.mode = ModeLogin
	return a.focusField(fieldEmail)
}

func (a *Auth) submit() tea.Cmd {
	a.err = errNone
	user := strings.TrimSpace(a.inputs[fieldUsername].Value())
	email := strings.TrimSpace(a.inputs[fieldEmail].Value())
	pass := a.inputs[fieldPassword].Value()

	if a.mode == ModeRegister {
		if user == "" || email == "" || pass == "" {
			a.err = errFields
			return nil
		}
		return app.Emit(app.RegisterEvent{Username: user, Email: email, Password: pass})
	}
	return app.Emit(app.LoginEvent{Email: email, Password: pass})
}

func (a *Auth) View(env app.Env, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	st, tx := env.Styles, tr(env.Lang)

	icon, title, submit, sw := "⇥", tx.LoginTitle, tx.LoginBtn, tx.SwitchRegister
	if a.mode == ModeRegister {
		icon, title, submit, sw = "✚", tx.RegisterTitle, tx.RegisterBtn, tx.SwitchLogin
	}
	labels := [fieldCount]string{tx.Username, tx.Email, tx.Password}

	closeBtn := mark(env, menu.Auth, CtlClose, st.Dim.Render("✕ "+tx.Close))
	lines := []string{
		lipgloss.PlaceHorizontal(36, lipgloss.Right, closeBtn),
		lipgloss.PlaceHorizontal(36, lipgloss.Center, st.Accent.Render(icon)),
		lipgloss.PlaceHorizontal(36, lipgloss.Center, st.Title.Render(title)),
		"",
	}
	for _, f := range a.fields() {
		label := st.Dim.Render(strings.ToUpper(labels[f]))
		if f == a.field {
			label = st.Accent.Render(strings.ToUpper(labels[f]))
		}
		lines = append(lines, label, mark(env, menu.Auth, fieldIDs[f], a.inputs[f].View()), "")
	}
	switch a.err {
	case errCredentials:
		lines = append(lines, st.Danger.Render(wrap("⚠ "+tx.ErrCredentials, 36)), "")
	case errFields:
		lines = append(lines, st.Danger.Render(wrap("⚠ "+tx.ErrFields, 36)), "")
	}
	lines = append(lines,
		lipgloss.PlaceHorizontal(36, lipgloss.Center,
			mark(env, menu.Auth, CtlSubmit, st.ButtonOn.Render(submit+" →"))),
		"",
		lipgloss.PlaceHorizontal(36, lipgloss.Center,
			mark(env, menu.Auth, CtlSwitch, st.Dim.Underline(true).Render(sw))),
	)

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(env.Theme.Accent)).
		Padding(0, 2).
		Render(strings.Join(lines, "\n"))
	card = mark(env, menu.Auth, CtlCard, card)
	return fill(width, height, lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card))
}
