package config

import (
	"sort"

	"gitlab.com/tinyland/lab/orbit-reader/pkg/anchor"
)

// DockPreset returns the dock settings for a named preset.
func DockPreset(name string) (DockConfig, bool) {
	switch name {
	case "classic":
		return classicPreset(), true
	case "tucked":
		return tuckedPreset(), true
	case "roaming":
		return roamingPreset(), true
	default:
		return DockConfig{}, false
	}
}

// PresetNames returns the known preset names, sorted.
func PresetNames() []string {
	names := []string{"classic", "tucked", "roaming"}
	sort.Strings(names)
	return names
}

// classicPreset keeps the orb in view at the left edge.
func classicPreset() DockConfig {
	return DockConfig{
		Preset:    "classic",
		Preferred: anchor.LeftEdge,
	}
}

// tuckedPreset hides the orb at the right edge until hovered.
func tuckedPreset() DockConfig {
	return DockConfig{
		Preset:    "tucked",
		Preferred: anchor.RightEdge,
		AutoHide:  true,
	}
}

// roamingPreset lets any screen edge summon the orb.
//
//	auto_hide = true
//	omni_wake = true
func roamingPreset() DockConfig {
	return DockConfig{
		Preset:    "roaming",
		Preferred: anchor.LeftEdge,
		AutoHide:  true,
		OmniWake:  true,
	}
}

// applyPreset fills every dock key the file left undefined from the preset.
func applyPreset(d *DockConfig, p DockConfig, defined func(key string) bool) {
	if !defined("preferred") {
		d.Preferred = p.Preferred
	}
	if !defined("auto_hide") {
		d.AutoHide = p.AutoHide
	}
	if !defined("omni_wake") {
		d.OmniWake = p.OmniWake
	}
}
