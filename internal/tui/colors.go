package tui

// Color constants for the homekeep TUI theme
const (
	// Base Colors
	ColorAppBackground = ""        // Use terminal default background
	ColorBorder        = "#3F4A3C" // Muted green-grey

	// Text Colors
	ColorPrimaryText   = "#ECF0E8" // Field labels, user input, titles
	ColorSecondaryText = "#B3BCAD" // Secondary text
	ColorDisabledText  = "#6E7568" // Disabled/muted text
	ColorHelpText      = "240"     // Dark grey for help text

	// Accent Colors (green pantry theme)
	ColorAccentMain   = "#3F9142" // Headers, accent elements, active borders
	ColorAccentBright = "#7BC47F" // Highlights, selected row

	// State Colors
	ColorError   = "#EF4444" // Errors
	ColorWarning = "#F59E0B" // Expiring soon
	ColorDanger  = "#B45309" // Expired / empty amount
)
