package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for a game session. Letter keys are
// deliberately not bound here: any single character is a guess, so only
// session-control keys get bindings.
type KeyMap struct {
	Guess   key.Binding // Display-only entry for the help footer
	Restart key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the default key bindings. Restart starts disabled
// and is enabled once the game ends.
func DefaultKeyMap() KeyMap {
	km := KeyMap{
		Guess: key.NewBinding(
			// Never matched directly; the key list exists so the help
			// footer shows the entry
			key.WithKeys("a-z"),
			key.WithHelp("a-z", "guess a letter"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "play again"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
	km.Restart.SetEnabled(false)
	return km
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Guess, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Guess, k.Restart, k.Quit},
	}
}
