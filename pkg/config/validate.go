package config

import (
	"errors"
	"fmt"

	"go.uber.org/zap/zapcore"

	"gitlab.com/tinyland/lab/orbit-reader/pkg/menu"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Validate checks value ranges and cross-field constraints.
func (c *Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if _, err := zapcore.ParseLevel(c.General.LogLevel); err != nil {
		bad("general.log_level %q", c.General.LogLevel)
	}
	if _, err := menu.ParseLanguage(c.General.Language); err != nil {
		bad("general.language %q", c.General.Language)
	}
	if c.General.PersistPrefs && c.General.PrefsFile == "" {
		bad("general.prefs_file is required when persist_prefs is set")
	}

	if c.Dock.OmniWake && !c.Dock.AutoHide {
		bad("dock.omni_wake requires dock.auto_hide")
	}
	if c.Dock.Grace.Duration <= 0 {
		bad("dock.grace must be positive")
	}
	if c.Dock.PreferenceReveal.Duration <= 0 {
		bad("dock.preference_reveal must be positive")
	}

	if c.Display.Theme == "" {
		bad("display.theme is empty")
	}
	if c.Display.MobileBreakpointPx <= 0 {
		bad("display.mobile_breakpoint_px must be positive")
	}
	if c.Display.CellWidthPx <= 0 || c.Display.CellHeightPx <= 0 {
		bad("display cell size must be positive")
	}
	if c.Display.FPS < 1 || c.Display.FPS > 240 {
		bad("display.fps %d out of range 1-240", c.Display.FPS)
	}

	if c.Animation.Stiffness <= 0 || c.Animation.Mass <= 0 {
		bad("animation stiffness and mass must be positive")
	}
	if c.Animation.Damping < 0 {
		bad("animation.damping must not be negative")
	}

	if c.Logging.MaxSizeMB < 0 || c.Logging.MaxBackups < 0 || c.Logging.MaxAgeDays < 0 {
		bad("logging limits must not be negative")
	}

	return errors.Join(errs...)
}
