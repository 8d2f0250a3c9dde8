// Package config provides YAML-based appearance configuration for the
// snowman game. Only presentation is configurable; the puzzle word, the
// placeholder glyph, and the game rules are fixed.
package config

import (
	"github.com/vovakirdan/tui-snowman/internal/core"
	"github.com/vovakirdan/tui-snowman/internal/snowman"
)

// Config is the top-level configuration.
type Config struct {
	Theme ThemeConfig `yaml:"theme"`
	UI    UIConfig    `yaml:"ui"`
}

// ThemeConfig names the colors used by the renderer.
type ThemeConfig struct {
	Snow    string `yaml:"snow"`
	Coal    string `yaml:"coal"`
	Carrot  string `yaml:"carrot"`
	Hat     string `yaml:"hat"`
	Status  string `yaml:"status"`
	Success string `yaml:"success"`
	Failure string `yaml:"failure"`
}

// UIConfig holds platform-level display options.
type UIConfig struct {
	ShowHelp bool `yaml:"show_help"`
}

// colorNames maps config color names to core colors.
var colorNames = map[string]core.Color{
	"default":        core.ColorDefault,
	"red":            core.ColorRed,
	"green":          core.ColorGreen,
	"yellow":         core.ColorYellow,
	"blue":           core.ColorBlue,
	"magenta":        core.ColorMagenta,
	"cyan":           core.ColorCyan,
	"white":          core.ColorWhite,
	"bright-red":     core.ColorBrightRed,
	"bright-green":   core.ColorBrightGreen,
	"bright-yellow":  core.ColorBrightYellow,
	"bright-blue":    core.ColorBrightBlue,
	"bright-magenta": core.ColorBrightMagenta,
	"bright-cyan":    core.ColorBrightCyan,
	"bright-white":   core.ColorBrightWhite,
	"orange":         core.ColorOrange,
	"gray":           core.ColorGray,
}

// ParseColor resolves a color name to a core color. Unknown names fall
// back to the given default so a typo in a theme never breaks the game.
func ParseColor(name string, fallback core.Color) core.Color {
	if c, ok := colorNames[name]; ok {
		return c
	}
	return fallback
}

// Style converts the theme into a render style, falling back to the
// built-in scheme for unknown or missing color names.
func (t ThemeConfig) Style() snowman.Style {
	def := snowman.DefaultStyle()
	return snowman.Style{
		Snow:    ParseColor(t.Snow, def.Snow),
		Coal:    ParseColor(t.Coal, def.Coal),
		Carrot:  ParseColor(t.Carrot, def.Carrot),
		Hat:     ParseColor(t.Hat, def.Hat),
		Status:  ParseColor(t.Status, def.Status),
		Success: ParseColor(t.Success, def.Success),
		Failure: ParseColor(t.Failure, def.Failure),
	}
}
