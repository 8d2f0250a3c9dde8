// Package tui provides the Bubble Tea integration for the snowman game.
// It handles the terminal UI loop, input mapping, and display. There is no
// tick loop: the game is purely event-driven, so a frame is rendered only
// after a key press or a resize.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snowman/internal/core"
	"github.com/vovakirdan/tui-snowman/internal/snowman"
)

// Model is the Bubble Tea model for one game session.
type Model struct {
	game     *snowman.Game
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	showHelp bool
	quitting bool
}

// NewModel creates a Bubble Tea model for the given game.
func NewModel(game *snowman.Game, cfg core.RuntimeConfig, showHelp bool) Model {
	helpModel := help.New()
	helpModel.Width = cfg.ScreenW

	return Model{
		game:     game,
		screen:   core.NewScreen(cfg.ScreenW, gameHeight(cfg.ScreenH, showHelp)),
		config:   cfg,
		keys:     DefaultKeyMap(),
		help:     helpModel,
		showHelp: showHelp,
	}
}

// gameHeight returns the screen-buffer height, reserving one row for the
// help footer when it is shown.
func gameHeight(h int, showHelp bool) int {
	if showHelp {
		return core.Max(1, h-1)
	}
	return core.Max(1, h)
}

// Init performs no startup work: the first View call is the setup render.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	}

	return m, nil
}

// handleKey processes keyboard input. Plain character keys are guesses;
// everything else is session control.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Restart) && m.game.GameOver():
		// 'r' restarts only after the game has ended; during play it is
		// an ordinary guess
		m.game.Reset()
		m.keys.Restart.SetEnabled(false)
		return m, nil
	}

	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
		m.game.Guess(msg.Runes[0])
		m.keys.Restart.SetEnabled(m.game.GameOver())
	}

	return m, nil
}

// handleResize processes window resize events. Game state survives a
// resize; only the buffer is rebuilt.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, gameHeight(msg.Height, m.showHelp))
	m.help.Width = msg.Width
	return m, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	out := RenderScreen(m.screen)

	if m.showHelp {
		out += "\n" + m.help.View(m.keys)
	}
	return out
}

// Run starts the Bubble Tea program for an interactive terminal session.
func Run(game *snowman.Game, cfg core.RuntimeConfig, showHelp bool) error {
	model := NewModel(game, cfg, showHelp)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
