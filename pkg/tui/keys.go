package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/orbit-reader/pkg/anchor"
	"gitlab.com/tinyland/lab/orbit-reader/pkg/app"
	"gitlab.com/tinyland/lab/orbit-reader/pkg/theme"
)

// keyMap holds the global bindings. Pages see every key these leave alone.
type keyMap struct {
	Orb      key.Binding
	Next     key.Binding
	Prev     key.Binding
	Activate key.Binding
	Items    key.Binding
	Peek     key.Binding
	Language key.Binding
	Theme    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Orb: key.NewBinding(
			key.WithKeys("o", "esc"),
			key.WithHelp("o/esc", "orb"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "ring"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "ring back"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Items: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6"),
			key.WithHelp("1-6", "menu"),
		),
		Peek: key.NewBinding(
			key.WithKeys("ctrl+up", "ctrl+down", "ctrl+left", "ctrl+right"),
			key.WithHelp("ctrl+←↑↓→", "wake edge"),
		),
		Language: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "language"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Orb, k.Next, k.Items, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Orb, k.Next, k.Prev, k.Activate},
		{k.Items, k.Peek},
		{k.Language, k.Theme, k.Help, k.Quit},
	}
}

// peekEdge maps a ctrl+arrow to the edge it wakes.
func peekEdge(msg tea.KeyMsg) (anchor.Edge, bool) {
	switch msg.String() {
	case "ctrl+up":
		return anchor.TopEdge, true
	case "ctrl+down":
		return anchor.BottomEdge, true
	case "ctrl+left":
		return anchor.LeftEdge, true
	case "ctrl+right":
		return anchor.RightEdge, true
	}
	return anchor.Edge{}, false
}

// itemIndex maps a digit key to a ring index.
func itemIndex(msg tea.KeyMsg) int {
	s := msg.String()
	if len(s) != 1 || s[0] < '1' || s[0] > '9' {
		return -1
	}
	return int(s[0] - '1')
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyCtrlC {
		return tea.Quit
	}
	env := m.env()
	p := m.page(env.State.ActiveItem)
	if c, ok := p.(app.Capturer); ok && c.Capturing() {
		m.ringActive = false
		return p.HandleKey(env, msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Orb):
		m.ringActive = false
		m.machine.ClickOrb()
	case key.Matches(msg, m.keys.Next):
		m.focusRing(m.ring.Forward)
	case key.Matches(msg, m.keys.Prev):
		m.focusRing(m.ring.Backward)
	case m.ringActive && key.Matches(msg, m.keys.Activate):
		m.ringActive = false
		if it, ok := m.ringItem(); ok {
			m.machine.ClickMenuItem(it)
		}
	case key.Matches(msg, m.keys.Items):
		if i := itemIndex(msg); i >= 0 && i < len(m.items) {
			m.ringActive = false
			m.ring.Set(m.items[i].ID)
			m.machine.ClickMenuItem(m.items[i])
		}
	case key.Matches(msg, m.keys.Peek):
		e, _ := peekEdge(msg)
		m.machine.EdgeEnter(e)
		m.machine.PointerLeave()
	case key.Matches(msg, m.keys.Language):
		m.setLanguage(m.lang.Next())
		return m.savePrefs()
	case key.Matches(msg, m.keys.Theme):
		m.setTheme(theme.Next(m.theme.Name))
		return m.savePrefs()
	default:
		m.ringActive = false
		if p != nil {
			return p.HandleKey(env, msg)
		}
	}
	return nil
}

// focusRing moves the ring cursor. The first press only gives the ring
// focus. Either way the orb is woken for one grace period.
func (m *Model) focusRing(move func()) {
	if m.ringActive {
		move()
	}
	m.ringActive = true
	m.machine.PointerEnter()
	m.machine.PointerLeave()
}
