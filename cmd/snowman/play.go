package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snowman/internal/config"
	"github.com/vovakirdan/tui-snowman/internal/core"
	"github.com/vovakirdan/tui-snowman/internal/platform/tui"
	"github.com/vovakirdan/tui-snowman/internal/snowman"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start a game in the current terminal.

Controls:
  a-z        - Guess a letter
  r          - Play again (after the game ends)
  Esc/Ctrl+C - Quit

Examples:
  snowman play
  snowman play --config ./my-theme.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	// Load appearance config
	appCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Detect terminal size
	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	game := snowman.New()
	game.SetStyle(appCfg.Theme.Style())

	if err := tui.Run(game, cfg, appCfg.UI.ShowHelp); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
