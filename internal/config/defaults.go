package config

import (
	_ "embed"
)

//go:embed defaults/snowman.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Theme: ThemeConfig{
			Snow:    "bright-white",
			Coal:    "gray",
			Carrot:  "orange",
			Hat:     "blue",
			Status:  "white",
			Success: "bright-green",
			Failure: "bright-red",
		},
		UI: UIConfig{
			ShowHelp: true,
		},
	}
}
