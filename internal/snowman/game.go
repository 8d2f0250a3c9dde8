package snowman

import (
	"fmt"

	"github.com/vovakirdan/tui-snowman/internal/core"
)

// puzzleWord is the embedded puzzle. It is deliberately a constant:
// the game has no word lists and no randomization.
const puzzleWord = "winter wonderland"

// Phase represents the current phase of a game.
type Phase int

const (
	PhaseActive Phase = iota
	PhaseWon
	PhaseLost
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseActive:
		return "active"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Game holds the state of one game instance: the puzzle word, the reveal
// state, the wrong-guess counter, and the accepting-input gate. All state
// lives on the struct so multiple instances can coexist (one per SSH
// session, for example).
type Game struct {
	word      string
	revealed  []rune
	wrong     int
	accepting bool
	style     Style
}

// New creates a game over the embedded puzzle word.
func New() *Game {
	return NewWithWord(puzzleWord)
}

// NewWithWord creates a game over a specific word. Words consist of
// letters and spaces.
func NewWithWord(word string) *Game {
	g := &Game{
		word:  word,
		style: DefaultStyle(),
	}
	g.Reset()
	return g
}

// Reset starts a fresh game: all positions masked, no wrong guesses,
// input accepted.
func (g *Game) Reset() {
	g.revealed = MaskWord(g.word)
	g.wrong = 0
	g.accepting = true
}

// SetStyle overrides the rendering style.
func (g *Game) SetStyle(s Style) {
	g.style = s
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snowman"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snowman"
}

// Guess processes a single guessed character. Guesses are ignored once
// the game has reached a terminal state. A guess that reveals no new
// position counts as wrong: a letter absent from the word, an
// already-revealed letter, or any non-letter key.
func (g *Game) Guess(r rune) {
	if !g.accepting {
		return
	}

	next := ApplyGuess(r, g.word, g.revealed)
	if runesEqual(next, g.revealed) {
		g.wrong++
	}
	g.revealed = next

	g.resolve()
}

// resolve closes the accepting-input gate when the game reaches a
// terminal state. The transition is one-way; calling resolve again is a
// no-op. Win is checked before loss.
func (g *Game) resolve() {
	if !g.accepting {
		return
	}
	switch {
	case string(g.revealed) == g.word:
		g.accepting = false
	case g.wrong >= MaxWrongGuesses:
		g.accepting = false
	}
}

// Phase returns the current game phase. Win takes priority over loss.
func (g *Game) Phase() Phase {
	switch {
	case string(g.revealed) == g.word:
		return PhaseWon
	case g.wrong >= MaxWrongGuesses:
		return PhaseLost
	default:
		return PhaseActive
	}
}

// AcceptingInput reports whether the game still accepts guesses.
func (g *Game) AcceptingInput() bool {
	return g.accepting
}

// WrongGuesses returns the current wrong-guess count.
func (g *Game) WrongGuesses() int {
	return g.wrong
}

// Word returns the puzzle word.
func (g *Game) Word() string {
	return g.word
}

// Revealed returns the current reveal state as a string: revealed letters
// and spaces literal, unrevealed positions as the placeholder glyph.
func (g *Game) Revealed() string {
	return string(g.revealed)
}

// GameOver reports whether the game has ended.
func (g *Game) GameOver() bool {
	return !g.accepting
}

// EndMessage returns the end-of-game message and its color. The result is
// only meaningful once the game is over: "Game Over" in the failure color
// on a loss, or a wrong-guess summary in the success color on a win.
func (g *Game) EndMessage() (string, core.Color) {
	if g.Phase() == PhaseLost {
		return "Game Over", g.style.Failure
	}
	switch g.wrong {
	case 0:
		return "No wrong guesses!", g.style.Success
	case 1:
		return "One wrong guess!", g.style.Success
	default:
		return fmt.Sprintf("%d wrong guesses.", g.wrong), g.style.Success
	}
}
