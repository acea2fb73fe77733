package theme

import (
	"bytes"
	"fmt"
	"os"
	"regexp"

	"github.com/BurntSushi/toml"
)

// thTOMLTheme is the TOML-serializable representation of a Theme.
type thTOMLTheme struct {
	Name   string       `toml:"name"`
	Base   thTOMLBase   `toml:"base"`
	Orb    thTOMLOrb    `toml:"orb"`
	Menu   thTOMLMenu   `toml:"menu"`
	Status thTOMLStatus `toml:"status"`
	Help   thTOMLHelp   `toml:"help"`
}

type thTOMLBase struct {
	Background string `toml:"background"`
	Foreground string `toml:"foreground"`
	Dim        string `toml:"dim"`
	Accent     string `toml:"accent"`
}

type thTOMLOrb struct {
	Core string `toml:"core"`
	Mid  string `toml:"mid"`
	Rim  string `toml:"rim"`
	Glow string `toml:"glow"`
}

type thTOMLMenu struct {
	Item    string `toml:"item"`
	Active  string `toml:"active"`
	Special string `toml:"special"`
}

type thTOMLStatus struct {
	Online  string `toml:"online"`
	Offline string `toml:"offline"`
	Danger  string `toml:"danger"`
}

type thTOMLHelp struct {
	Key  string `toml:"key"`
	Desc string `toml:"desc"`
}

var thHexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// LoadFromTOML parses a TOML theme definition from raw bytes.
func LoadFromTOML(data []byte) (Theme, error) {
	var tt thTOMLTheme
	if err := toml.Unmarshal(data, &tt); err != nil {
		return Theme{}, fmt.Errorf("theme: parse TOML: %w", err)
	}

	t := Theme{
		Name:       tt.Name,
		Background: tt.Base.Background,
		Foreground: tt.Base.Foreground,
		Dim:        tt.Base.Dim,
		Accent:     tt.Base.Accent,

		OrbCore: tt.Orb.Core,
		OrbMid:  tt.Orb.Mid,
		OrbRim:  tt.Orb.Rim,
		OrbGlow: tt.Orb.Glow,

		Item:       tt.Menu.Item,
		ItemActive: tt.Menu.Active,
		Special:    tt.Menu.Special,

		Online:  tt.Status.Online,
		Offline: tt.Status.Offline,
		Danger:  tt.Status.Danger,

		HelpKey:  tt.Help.Key,
		HelpDesc: tt.Help.Desc,
	}

	if err := thValidateTheme(t); err != nil {
		return Theme{}, err
	}

	return t, nil
}

// LoadFile reads a TOML theme from path and registers it.
func LoadFile(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("theme: read %s: %w", path, err)
	}
	t, err := LoadFromTOML(data)
	if err != nil {
		return Theme{}, fmt.Errorf("theme: %s: %w", path, err)
	}
	Register(t)
	return t, nil
}

// SaveToTOML serializes a theme to TOML bytes.
func SaveToTOML(t Theme) ([]byte, error) {
	tt := thTOMLTheme{
		Name: t.Name,
		Base: thTOMLBase{
			Background: t.Background,
			Foreground: t.Foreground,
			Dim:        t.Dim,
			Accent:     t.Accent,
		},
		Orb: thTOMLOrb{
			Core: t.OrbCore,
			Mid:  t.OrbMid,
			Rim:  t.OrbRim,
			Glow: t.OrbGlow,
		},
		Menu: thTOMLMenu{
			Item:    t.Item,
			Active:  t.ItemActive,
			Special: t.Special,
		},
		Status: thTOMLStatus{
			Online:  t.Online,
			Offline: t.Offline,
			Danger:  t.Danger,
		},
		Help: thTOMLHelp{
			Key:  t.HelpKey,
			Desc: t.HelpDesc,
		},
	}

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	if err := enc.Encode(tt); err != nil {
		return nil, fmt.Errorf("theme: encode TOML: %w", err)
	}
	return buf.Bytes(), nil
}

// thColorFields lists every color field by its TOML path.
func thColorFields(t Theme) map[string]string {
	return map[string]string{
		"base.background": t.Background,
		"base.foreground": t.Foreground,
		"base.dim":        t.Dim,
		"base.accent":     t.Accent,
		"orb.core":        t.OrbCore,
		"orb.mid":         t.OrbMid,
		"orb.rim":         t.OrbRim,
		"orb.glow":        t.OrbGlow,
		"menu.item":       t.Item,
		"menu.active":     t.ItemActive,
		"menu.special":    t.Special,
		"status.online":   t.Online,
		"status.offline":  t.Offline,
		"status.danger":   t.Danger,
		"help.key":        t.HelpKey,
		"help.desc":       t.HelpDesc,
	}
}

// thValidateTheme checks that all required fields are present and colors are
// valid hex.
func thValidateTheme(t Theme) error {
	if t.Name == "" {
		return fmt.Errorf("theme: missing required field %q", "name")
	}
	for field, value := range thColorFields(t) {
		if value == "" {
			return fmt.Errorf("theme: missing required field %q", field)
		}
		if !thHexColorRegex.MatchString(value) {
			return fmt.Errorf("theme: invalid hex color %q for field %q (expected #RRGGBB)", value, field)
		}
	}
	return nil
}
