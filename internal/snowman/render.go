package snowman

import (
	"fmt"

	"github.com/vovakirdan/tui-snowman/internal/core"
)

// Render draws the current game state into the screen buffer. It is a
// pure projection of state: rendering never mutates the game beyond the
// idempotent terminal-state check, so it can run headlessly in tests.
func (g *Game) Render(dst *core.Screen) {
	// Terminal-state detection runs on every render cycle as well as on
	// every guess; resolve is a no-op once the gate has closed.
	g.resolve()

	dst.Clear()
	g.renderHUD(dst)

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		g.renderTooSmall(dst)
		return
	}

	if !g.accepting {
		// One end message instead of the illustration
		text, color := g.EndMessage()
		dst.DrawTextCenteredColor(dst.Height()/2, text, color)
		return
	}

	// Draw bodies first, features on top: iterate in reverse removal order
	l := newLayout(dst.Width(), dst.Height())
	for i := len(parts) - 1; i >= 0; i-- {
		p := parts[i]
		if g.wrong < p.threshold {
			p.draw(g, dst, l)
		}
	}

	g.renderStatus(dst)
}

// renderTooSmall draws a boxed prompt asking the player to resize.
func (g *Game) renderTooSmall(dst *core.Screen) {
	const hint = "Resize to continue"
	boxW := len(hint) + 4
	box := core.NewRect((dst.Width()-boxW)/2, dst.Height()/2-1, boxW, 4)
	dst.DrawBox(box, g.style.Status)
	dst.DrawTextCentered(dst.Height()/2, "Window too small")
	dst.DrawTextCentered(dst.Height()/2+1, hint)
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s — Wrong guesses: %d/%d", g.Title(), g.wrong, MaxWrongGuesses)
	dst.DrawTextColor(0, 0, hud, g.style.Status)
	dst.DrawHLine(0, 1, dst.Width(), '─', g.style.Status)
}

// renderStatus draws the reveal state below the illustration.
func (g *Game) renderStatus(dst *core.Screen) {
	dst.DrawTextCenteredColor(dst.Height()-2, g.Revealed(), g.style.Status)
}
