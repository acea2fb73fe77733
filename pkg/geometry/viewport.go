package geometry

// DefaultMobileBreakpoint is the viewport width (px) below which the compact
// mobile geometry is used.
const DefaultMobileBreakpoint = 768

// Viewport selects between the two geometry tables.
type Viewport uint8

const (
	// Desktop is the wide layout.
	Desktop Viewport = iota
	// Mobile is the compact layout used below the breakpoint.
	Mobile
)

// String returns "desktop" or "mobile".
func (v Viewport) String() string {
	if v == Mobile {
		return "mobile"
	}
	return "desktop"
}

// Classify returns the viewport class for a window width in pixels using
// DefaultMobileBreakpoint.
func Classify(widthPx float64) Viewport {
	return ClassifyWith(widthPx, DefaultMobileBreakpoint)
}

// ClassifyWith returns Mobile when widthPx is strictly below breakpoint.
// A non-positive breakpoint falls back to DefaultMobileBreakpoint.
func ClassifyWith(widthPx, breakpoint float64) Viewport {
	if breakpoint <= 0 {
		breakpoint = DefaultMobileBreakpoint
	}
	if widthPx < breakpoint {
		return Mobile
	}
	return Desktop
}
