package snowman

import "github.com/vovakirdan/tui-snowman/internal/core"

// Illustration glyphs.
const (
	snowRune   = '*'
	coalRune   = 'o'
	carrotRune = '>'
	hatRune    = '#'
)

// part is one independently-toggleable piece of the snowman. A part is
// visible only while the wrong-guess count is strictly below its
// threshold, so parts disappear in slice order as wrong guesses
// accumulate and never come back.
type part struct {
	name      string
	threshold int
	draw      func(g *Game, dst *core.Screen, l layout)
}

// parts lists the snowman pieces in removal order.
var parts = []part{
	{"buttons", 1, (*Game).drawButtons},
	{"mouth", 2, (*Game).drawMouth},
	{"nose", 3, (*Game).drawNose},
	{"eyes", 4, (*Game).drawEyes},
	{"hat", 5, (*Game).drawHat},
	{"upper body", 6, (*Game).drawUpperBody},
	{"lower body", 7, (*Game).drawLowerBody},
}

// VisibleParts returns the names of the parts still visible at the given
// wrong-guess count, in removal order.
func VisibleParts(wrong int) []string {
	var names []string
	for _, p := range parts {
		if wrong < p.threshold {
			names = append(names, p.name)
		}
	}
	return names
}

// layout anchors the illustration for the current screen. All part
// geometry is relative to the horizontal center cx and the snowman's
// bottom row base.
type layout struct {
	cx   int
	base int
}

// newLayout computes the illustration anchor for a screen of the given size.
func newLayout(w, h int) layout {
	return layout{
		cx:   w / 2,
		base: h - 4,
	}
}

// Minimum screen size for the full illustration plus HUD and status line.
const (
	minScreenW = 24
	minScreenH = 19
)

func (g *Game) drawLowerBody(dst *core.Screen, l layout) {
	dst.FillEllipse(l.cx, l.base-3, 9, 3, snowRune, g.style.Snow)
}

func (g *Game) drawUpperBody(dst *core.Screen, l layout) {
	dst.FillEllipse(l.cx, l.base-8, 6, 2, snowRune, g.style.Snow)
}

func (g *Game) drawHat(dst *core.Screen, l layout) {
	// Brim sits on the head, crown above it
	dst.DrawHLine(l.cx-5, l.base-11, 11, hatRune, g.style.Hat)
	dst.DrawRect(core.NewRect(l.cx-3, l.base-13, 7, 2), hatRune, g.style.Hat)
}

func (g *Game) drawEyes(dst *core.Screen, l layout) {
	dst.SetCell(l.cx-2, l.base-9, coalRune, g.style.Coal)
	dst.SetCell(l.cx+2, l.base-9, coalRune, g.style.Coal)
}

func (g *Game) drawNose(dst *core.Screen, l layout) {
	// Carrot pointing right, rooted at the face center
	dst.FillTriangle(l.cx, l.base-9, l.cx, l.base-7, l.cx+3, l.base-8, carrotRune, g.style.Carrot)
}

func (g *Game) drawMouth(dst *core.Screen, l layout) {
	dst.DrawHLine(l.cx-2, l.base-7, 5, coalRune, g.style.Coal)
}

func (g *Game) drawButtons(dst *core.Screen, l layout) {
	dst.SetCell(l.cx, l.base-5, coalRune, g.style.Coal)
	dst.SetCell(l.cx, l.base-3, coalRune, g.style.Coal)
	dst.SetCell(l.cx, l.base-1, coalRune, g.style.Coal)
}
