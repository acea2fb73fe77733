package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"gitlab.com/tinyland/lab/orbit-reader/pkg/anchor"
	"gitlab.com/tinyland/lab/orbit-reader/pkg/geometry"
	"gitlab.com/tinyland/lab/orbit-reader/pkg/theme"
	"gitlab.com/tinyland/lab/orbit-reader/pkg/visibility"
)

const appName = "orbit-reader"

// Load reads configuration from the standard config path.
// Search order:
//  1. $XDG_CONFIG_HOME/orbit-reader/config.toml
//  2. ~/.config/orbit-reader/config.toml
//
// If no file exists, returns DefaultConfig() with env overrides applied.
func Load() (*Config, error) {
	for _, p := range configSearchPaths() {
		if _, err := os.Stat(p); err == nil {
			return LoadFromFile(p)
		}
	}
	cfg := DefaultConfig()
	applyEnvOverrides(cfg)
	return cfg, cfg.Validate()
}

// LoadFromFile reads configuration from a specific file path. A missing file
// yields the defaults.
func LoadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := DefaultConfig()
			applyEnvOverrides(cfg)
			return cfg, cfg.Validate()
		}
		return nil, fmt.Errorf("config: %w", err)
	}
	defer f.Close()
	cfg, err := LoadFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadFromReader reads configuration from an io.Reader. Unset keys keep
// their defaults; a dock preset fills the dock keys the input leaves out.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	md, err := toml.NewDecoder(r).Decode(cfg)
	if err != nil {
		return nil, err
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		keys := make([]string, len(undec))
		for i, k := range undec {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: unknown keys %s", ErrInvalid, strings.Join(keys, ", "))
	}
	if name := cfg.Dock.Preset; name != "" {
		p, ok := DockPreset(name)
		if !ok {
			return nil, fmt.Errorf("%w: unknown dock preset %q (want one of %s)",
				ErrInvalid, name, strings.Join(PresetNames(), ", "))
		}
		applyPreset(&cfg.Dock, p, func(key string) bool {
			return md.IsDefined("dock", key)
		})
	}
	applyEnvOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultConfig returns the default configuration with sensible defaults.
func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()

	return &Config{
		General: GeneralConfig{
			LogLevel:     "info",
			LogFile:      filepath.Join(xdgCacheHome(home), appName, "orbit.log"),
			Language:     "en",
			PrefsFile:    filepath.Join(xdgConfigHome(home), appName, "prefs.yaml"),
			PersistPrefs: true,
		},
		Dock: DockConfig{
			Preferred:        anchor.LeftEdge,
			Grace:            Duration{visibility.DefaultGrace},
			PreferenceReveal: Duration{visibility.PreferenceGrace},
		},
		Display: DisplayConfig{
			Theme:              theme.DefaultName,
			MobileBreakpointPx: geometry.DefaultMobileBreakpoint,
			CellWidthPx:        8,
			CellHeightPx:       16,
			FPS:                60,
		},
		Animation: AnimationConfig{
			Stiffness: 100,
			Damping:   20,
			Mass:      1,
			Stagger:   Duration{20 * time.Millisecond},
		},
		Logging: LoggingConfig{
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

// applyEnvOverrides checks environment variables and overrides config values.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("ORBIT_THEME"); v != "" {
		cfg.Display.Theme = v
	}
	if v := os.Getenv("ORBIT_LANG"); v != "" {
		cfg.General.Language = v
	}
	if v := os.Getenv("ORBIT_LOG_LEVEL"); v != "" {
		cfg.General.LogLevel = v
	}
}

// configSearchPaths returns the ordered list of config file paths to try.
func configSearchPaths() []string {
	home, _ := os.UserHomeDir()
	var paths []string

	xdg := xdgConfigHome(home)
	paths = append(paths, filepath.Join(xdg, appName, "config.toml"))

	// If XDG_CONFIG_HOME was explicitly set, also try the fallback default.
	defaultXDG := filepath.Join(home, ".config")
	if xdg != defaultXDG {
		paths = append(paths, filepath.Join(defaultXDG, appName, "config.toml"))
	}

	return paths
}

// xdgConfigHome returns XDG_CONFIG_HOME or ~/.config as fallback.
func xdgConfigHome(home string) string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	return filepath.Join(home, ".config")
}

// xdgCacheHome returns XDG_CACHE_HOME or ~/.cache as fallback.
func xdgCacheHome(home string) string {
	if v := os.Getenv("XDG_CACHE_HOME"); v != "" {
		return v
	}
	return filepath.Join(home, ".cache")
}
