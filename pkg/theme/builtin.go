package theme

// thRegisterBuiltins registers all built-in themes in the registry.
func thRegisterBuiltins() {
	for _, t := range []Theme{
		thNebulaTheme(),
		thAuroraTheme(),
		thEmberTheme(),
		thMonoTheme(),
	} {
		Register(t)
	}
}

// thNebulaTheme returns the default deep-slate theme with a blue orb.
func thNebulaTheme() Theme {
	return Theme{
		Name:       "nebula",
		Background: "#020617",
		Foreground: "#e2e8f0",
		Dim:        "#64748b",
		Accent:     "#3b82f6",

		OrbCore: "#bfdbfe",
		OrbMid:  "#3b82f6",
		OrbRim:  "#1e3a8a",
		OrbGlow: "#60a5fa",

		Item:       "#94a3b8",
		ItemActive: "#60a5fa",
		Special:    "#10b981",

		Online:  "#10b981",
		Offline: "#f59e0b",
		Danger:  "#f43f5e",

		HelpKey:  "#60a5fa",
		HelpDesc: "#64748b",
	}
}

// thAuroraTheme returns a green and violet night-sky theme.
func thAuroraTheme() Theme {
	return Theme{
		Name:       "aurora",
		Background: "#0b1320",
		Foreground: "#d8f3dc",
		Dim:        "#52796f",
		Accent:     "#8b5cf6",

		OrbCore: "#b7f5d0",
		OrbMid:  "#34d399",
		OrbRim:  "#4c1d95",
		OrbGlow: "#a78bfa",

		Item:       "#84a98c",
		ItemActive: "#a78bfa",
		Special:    "#34d399",

		Online:  "#34d399",
		Offline: "#fbbf24",
		Danger:  "#fb7185",

		HelpKey:  "#a78bfa",
		HelpDesc: "#52796f",
	}
}

// thEmberTheme returns a warm orange theme.
func thEmberTheme() Theme {
	return Theme{
		Name:       "ember",
		Background: "#1c1210",
		Foreground: "#fde6d4",
		Dim:        "#8a6a5c",
		Accent:     "#ea580c",

		OrbCore: "#fed7aa",
		OrbMid:  "#f97316",
		OrbRim:  "#7c2d12",
		OrbGlow: "#fb923c",

		Item:       "#c2a391",
		ItemActive: "#fb923c",
		Special:    "#84cc16",

		Online:  "#84cc16",
		Offline: "#facc15",
		Danger:  "#ef4444",

		HelpKey:  "#fb923c",
		HelpDesc: "#8a6a5c",
	}
}

// thMonoTheme returns a grayscale theme for low-color terminals.
func thMonoTheme() Theme {
	return Theme{
		Name:       "mono",
		Background: "#000000",
		Foreground: "#d0d0d0",
		Dim:        "#6c6c6c",
		Accent:     "#ffffff",

		OrbCore: "#ffffff",
		OrbMid:  "#a8a8a8",
		OrbRim:  "#4e4e4e",
		OrbGlow: "#8a8a8a",

		Item:       "#8a8a8a",
		ItemActive: "#ffffff",
		Special:    "#bcbcbc",

		Online:  "#bcbcbc",
		Offline: "#8a8a8a",
		Danger:  "#ffffff",

		HelpKey:  "#ffffff",
		HelpDesc: "#6c6c6c",
	}
}
