// Package theme holds the named color palettes used by the orb, the menu
// ring and the views. Themes are registered by lowercase name; user themes
// can be loaded from TOML files at startup.
package theme

import (
	"sort"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// DefaultName is the theme used when a requested name is unknown.
const DefaultName = "nebula"

// Theme defines the complete color palette. All colors are "#RRGGBB".
type Theme struct {
	Name string

	// Base colors
	Background string
	Foreground string
	Dim        string
	Accent     string

	// Orb gradient, brightest first, plus the halo drawn around a lit orb.
	OrbCore string
	OrbMid  string
	OrbRim  string
	OrbGlow string

	// Menu ring
	Item       string
	ItemActive string
	Special    string // the offline item

	// Header and status
	Online  string
	Offline string
	Danger  string

	HelpKey  string
	HelpDesc string
}

var (
	mu       sync.RWMutex
	registry = map[string]Theme{}
)

func init() {
	thRegisterBuiltins()
}

// Get returns a named theme, falling back to DefaultName if not found.
func Get(name string) Theme {
	mu.RLock()
	defer mu.RUnlock()
	if t, ok := registry[strings.ToLower(name)]; ok {
		return t
	}
	return registry[DefaultName]
}

// Lookup is Get without the fallback.
func Lookup(name string) (Theme, bool) {
	mu.RLock()
	defer mu.RUnlock()
	t, ok := registry[strings.ToLower(name)]
	return t, ok
}

// Names returns all available theme names sorted alphabetically.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Next returns the theme registered after name, wrapping around.
func Next(name string) Theme {
	names := Names()
	for i, n := range names {
		if n == strings.ToLower(name) {
			return Get(names[(i+1)%len(names)])
		}
	}
	return Get(DefaultName)
}

// Register adds or replaces a theme under its lowercase name.
func Register(t Theme) {
	mu.Lock()
	defer mu.Unlock()
	registry[strings.ToLower(t.Name)] = t
}

// Styles are the lipgloss styles derived from a theme.
type Styles struct {
	Base       lipgloss.Style
	Dim        lipgloss.Style
	Accent     lipgloss.Style
	Title      lipgloss.Style
	Item       lipgloss.Style
	ItemActive lipgloss.Style
	Special    lipgloss.Style
	Online     lipgloss.Style
	Offline    lipgloss.Style
	Danger     lipgloss.Style
	HelpKey    lipgloss.Style
	HelpDesc   lipgloss.Style
	Button     lipgloss.Style
	ButtonOn   lipgloss.Style
}

// Styles builds the style set for t.
func (t Theme) Styles() Styles {
	fg := func(c string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
	}
	return Styles{
		Base:       fg(t.Foreground),
		Dim:        fg(t.Dim),
		Accent:     fg(t.Accent),
		Title:      fg(t.Foreground).Bold(true),
		Item:       fg(t.Item),
		ItemActive: fg(t.ItemActive).Bold(true),
		Special:    fg(t.Special),
		Online:     fg(t.Online),
		Offline:    fg(t.Offline),
		Danger:     fg(t.Danger),
		HelpKey:    fg(t.HelpKey),
		HelpDesc:   fg(t.HelpDesc),
		Button: fg(t.Foreground).Padding(0, 1).
			Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color(t.Dim)),
		ButtonOn: fg(t.ItemActive).Bold(true).Padding(0, 1).
			Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color(t.Accent)),
	}
}
