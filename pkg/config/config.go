package config

import "gitlab.com/tinyland/lab/orbit-reader/pkg/anchor"

// Config is the complete orbit-reader configuration.
type Config struct {
	General   GeneralConfig   `toml:"general"`
	Dock      DockConfig      `toml:"dock"`
	Display   DisplayConfig   `toml:"display"`
	Animation AnimationConfig `toml:"animation"`
	Logging   LoggingConfig   `toml:"logging"`
}

// GeneralConfig holds process-wide settings.
type GeneralConfig struct {
	LogLevel     string `toml:"log_level"`
	LogFile      string `toml:"log_file"`
	Language     string `toml:"language"`
	PrefsFile    string `toml:"prefs_file"`
	PersistPrefs bool   `toml:"persist_prefs"`
}

// DockConfig seeds the dock state machine at startup. Stored preferences,
// when enabled, override these.
type DockConfig struct {
	Preset           string      `toml:"preset"`
	Preferred        anchor.Edge `toml:"preferred"`
	AutoHide         bool        `toml:"auto_hide"`
	OmniWake         bool        `toml:"omni_wake"`
	Grace            Duration    `toml:"grace"`
	PreferenceReveal Duration    `toml:"preference_reveal"`
}

// DisplayConfig controls how pixel geometry maps onto the terminal.
type DisplayConfig struct {
	Theme              string  `toml:"theme"`
	ThemeFile          string  `toml:"theme_file"`
	MobileBreakpointPx float64 `toml:"mobile_breakpoint_px"`
	CellWidthPx        float64 `toml:"cell_width_px"`
	CellHeightPx       float64 `toml:"cell_height_px"`
	FPS                int     `toml:"fps"`
}

// AnimationConfig describes the spring used for every animated element.
type AnimationConfig struct {
	Stiffness float64  `toml:"stiffness"`
	Damping   float64  `toml:"damping"`
	Mass      float64  `toml:"mass"`
	Stagger   Duration `toml:"stagger"`
}

// LoggingConfig controls log file rotation.
type LoggingConfig struct {
	MaxSizeMB  int  `toml:"max_size_mb"`
	MaxBackups int  `toml:"max_backups"`
	MaxAgeDays int  `toml:"max_age_days"`
	Compress   bool `toml:"compress"`
}
