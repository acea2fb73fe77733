// Package prefs persists the user-tunable dock settings and language as a
// small YAML file, and watches that file for edits made while the reader is
// running.
package prefs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"gitlab.com/tinyland/lab/orbit-reader/pkg/anchor"
	"gitlab.com/tinyland/lab/orbit-reader/pkg/dock"
	"gitlab.com/tinyland/lab/orbit-reader/pkg/menu"
)

// Prefs is the persisted preference set.
type Prefs struct {
	Preferred anchor.Edge   `yaml:"preferred"`
	AutoHide  bool          `yaml:"auto_hide"`
	OmniWake  bool          `yaml:"omni_wake"`
	Language  menu.Language `yaml:"language"`
	Theme     string        `yaml:"theme,omitempty"`
}

// FromDock combines machine preferences with the UI language and theme.
func FromDock(p dock.Preferences, lang menu.Language, theme string) Prefs {
	return Prefs{
		Preferred: p.Preferred,
		AutoHide:  p.AutoHide,
		OmniWake:  p.OmniWake,
		Language:  lang,
		Theme:     theme,
	}
}

// Dock returns the machine-facing subset.
func (p Prefs) Dock() dock.Preferences {
	return dock.Preferences{Preferred: p.Preferred, AutoHide: p.AutoHide, OmniWake: p.OmniWake}
}

// Decode parses and validates YAML preferences. A missing language defaults
// to English.
func Decode(data []byte) (Prefs, error) {
	var p Prefs
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Prefs{}, fmt.Errorf("prefs: decode: %w", err)
	}
	if p.Language == "" {
		p.Language = menu.English
	}
	if _, err := menu.ParseLanguage(string(p.Language)); err != nil {
		return Prefs{}, fmt.Errorf("prefs: %w", err)
	}
	return p, nil
}

// Load reads preferences from path. found is false when the file does not
// exist.
func Load(path string) (p Prefs, found bool, err error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Prefs{}, false, nil
	}
	if err != nil {
		return Prefs{}, false, fmt.Errorf("prefs: read: %w", err)
	}
	p, err = Decode(data)
	if err != nil {
		return Prefs{}, true, fmt.Errorf("%s: %w", path, err)
	}
	return p, true, nil
}

// Save writes p to path atomically, creating the directory if needed.
func Save(path string, p Prefs) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("prefs: encode: %w", err)
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("prefs: %w", err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("prefs: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("prefs: write: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("prefs: sync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("prefs: close: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("prefs: rename: %w", err)
	}
	return nil
}
