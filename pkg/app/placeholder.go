package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/orbit-reader/pkg/menu"
)

// PlaceholderPage shows a large icon and a caption in the middle of the
// content area. It backs menu items that have no content yet.
type PlaceholderPage struct {
	id    string
	icon  rune
	label func(menu.Language) string
}

// NewPlaceholder creates a PlaceholderPage for item id. label is looked up on
// every render so language switches apply at once.
func NewPlaceholder(id string, icon rune, label func(menu.Language) string) *PlaceholderPage {
	return &PlaceholderPage{id: id, icon: icon, label: label}
}

// ID returns the menu item ID.
func (p *PlaceholderPage) ID() string {
	return p.id
}

// Update is a no-op.
func (p *PlaceholderPage) Update(_ tea.Msg) tea.Cmd {
	return nil
}

// HandleKey is a no-op.
func (p *PlaceholderPage) HandleKey(_ Env, _ tea.KeyMsg) tea.Cmd {
	return nil
}

// HandleMouse is a no-op.
func (p *PlaceholderPage) HandleMouse(_ Env, _ tea.MouseMsg) tea.Cmd {
	return nil
}

// View renders the icon and caption centered in width x height.
func (p *PlaceholderPage) View(env Env, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	return Centered(width, height,
		env.Styles.Dim.Render(string(p.icon)),
		"",
		env.Styles.Dim.Render(p.label(env.Lang)),
	)
}

// Centered stacks lines in the middle of a width x height block, each line
// centered horizontally. Lines past height are dropped.
func Centered(width, height int, lines ...string) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	var out []string
	topPad := max((height-len(lines))/2, 0)
	for i := 0; i < topPad; i++ {
		out = append(out, "")
	}
	for _, l := range lines {
		out = append(out, lipgloss.PlaceHorizontal(width, lipgloss.Center, l))
	}
	for len(out) < height {
		out = append(out, "")
	}
	if len(out) > height {
		out = out[:height]
	}
	return lipgloss.NewStyle().Width(width).Render(strings.Join(out, "\n"))
}
