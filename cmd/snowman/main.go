// snowman is a terminal word-guessing game: a fixed word hides behind
// underscores, you guess letters, and a snowman loses one part for every
// wrong guess. Seven wrong guesses and the game is over.
//
// Usage:
//
//	snowman play             - Play in the current terminal
//	snowman serve            - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>  - Path to a custom appearance config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snowman",
	Short: "Snowman - A word-guessing game in your terminal",
	Long: `Snowman is a terminal word-guessing game. A fixed word hides behind
underscores; guess it one letter at a time. Every guess that reveals
nothing new melts a piece of the snowman, and after seven wrong guesses
the snowman is gone.

Available commands:
  play     - Play in the current terminal
  serve    - Start SSH server for remote play

Examples:
  snowman play
  snowman play --config ./my-theme.yaml
  snowman serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to appearance config YAML")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
}
