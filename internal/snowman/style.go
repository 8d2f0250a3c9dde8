package snowman

import "github.com/vovakirdan/tui-snowman/internal/core"

// Style holds the colors used by the renderer. The glyphs, the part
// thresholds, and the end-state messages are fixed by the game rules and
// are not part of the style.
type Style struct {
	Snow    core.Color // Snowman body
	Coal    core.Color // Eyes, mouth, buttons
	Carrot  core.Color // Nose
	Hat     core.Color // Hat brim and crown
	Status  core.Color // Reveal-state line and HUD
	Success core.Color // Win message
	Failure core.Color // Loss message
}

// DefaultStyle returns the built-in color scheme.
func DefaultStyle() Style {
	return Style{
		Snow:    core.ColorBrightWhite,
		Coal:    core.ColorGray,
		Carrot:  core.ColorOrange,
		Hat:     core.ColorBlue,
		Status:  core.ColorWhite,
		Success: core.ColorBrightGreen,
		Failure: core.ColorBrightRed,
	}
}
