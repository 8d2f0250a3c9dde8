package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	// Check that it's initialized with blank cells
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')  // Should not panic
	s.Set(100, 0, 'A') // Should not panic
	s.Set(0, -1, 'A')  // Should not panic
	s.Set(0, 100, 'A') // Should not panic

	// Out of bounds get should return space
	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenSetCellColor(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetCell(3, 4, '*', ColorBrightGreen)

	cell := s.GetCell(3, 4)
	if cell.Rune != '*' {
		t.Errorf("GetCell rune = %q, expected '*'", cell.Rune)
	}
	if cell.Color != ColorBrightGreen {
		t.Errorf("GetCell color = %d, expected ColorBrightGreen", cell.Color)
	}

	// Out of bounds cell reads are blank
	oob := s.GetCell(-1, 0)
	if oob.Rune != ' ' || oob.Color != ColorDefault {
		t.Errorf("Out of bounds GetCell = %+v, expected blank", oob)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			s.SetCell(x, y, 'X', ColorRed)
		}
	}

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			cell := s.GetCell(x, y)
			if cell.Rune != ' ' || cell.Color != ColorDefault {
				t.Errorf("After Clear, expected blank at (%d, %d), got %+v", x, y, cell)
			}
		}
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.Set(2, 2, 'A')
	s.Set(9, 9, 'B')

	s.Resize(5, 5)

	if s.Width() != 5 || s.Height() != 5 {
		t.Errorf("Resize dimensions = %dx%d, expected 5x5", s.Width(), s.Height())
	}
	if s.Get(2, 2) != 'A' {
		t.Error("Content inside new bounds should survive a resize")
	}

	s.Resize(12, 12)
	if s.Get(2, 2) != 'A' {
		t.Error("Content should survive growing the screen")
	}
	if s.Get(11, 11) != ' ' {
		t.Error("New cells after growing should be blank")
	}
}

func TestDrawText(t *testing.T) {
	s := NewScreen(20, 5)

	s.DrawText(2, 1, "hello")
	if got := strings.TrimRight(s.Row(1), " "); got != "  hello" {
		t.Errorf("Row(1) = %q, expected %q", got, "  hello")
	}

	// Clipping at the right edge should not panic
	s.DrawText(18, 2, "clip")
	if s.Get(18, 2) != 'c' || s.Get(19, 2) != 'l' {
		t.Error("DrawText should write the visible prefix when clipped")
	}
}

func TestDrawTextCenteredColor(t *testing.T) {
	s := NewScreen(11, 3)

	s.DrawTextCenteredColor(1, "abc", ColorBrightRed)

	// "abc" centered in width 11 starts at x=4
	if s.Get(4, 1) != 'a' || s.Get(5, 1) != 'b' || s.Get(6, 1) != 'c' {
		t.Errorf("centered text misplaced, row = %q", s.Row(1))
	}
	if s.GetCell(5, 1).Color != ColorBrightRed {
		t.Error("centered text should carry the requested color")
	}
}

func TestDrawRect(t *testing.T) {
	s := NewScreen(10, 10)

	s.DrawRect(NewRect(2, 2, 3, 2), '#', ColorGray)

	for y := 2; y < 4; y++ {
		for x := 2; x < 5; x++ {
			if s.Get(x, y) != '#' {
				t.Errorf("DrawRect missed (%d, %d)", x, y)
			}
		}
	}
	if s.Get(5, 2) != ' ' || s.Get(2, 4) != ' ' {
		t.Error("DrawRect should not paint outside the rectangle")
	}
}

func TestDrawBox(t *testing.T) {
	s := NewScreen(10, 10)

	s.DrawBox(NewRect(1, 1, 5, 4), ColorWhite)

	corners := []struct {
		x, y int
		want rune
	}{
		{1, 1, '┌'},
		{5, 1, '┐'},
		{1, 4, '└'},
		{5, 4, '┘'},
	}
	for _, c := range corners {
		if got := s.Get(c.x, c.y); got != c.want {
			t.Errorf("corner (%d, %d) = %q, expected %q", c.x, c.y, got, c.want)
		}
	}

	if s.Get(3, 1) != '─' || s.Get(3, 4) != '─' {
		t.Error("horizontal edges should use '─'")
	}
	if s.Get(1, 2) != '│' || s.Get(5, 3) != '│' {
		t.Error("vertical edges should use '│'")
	}
	if s.Get(3, 2) != ' ' {
		t.Error("DrawBox should leave the interior blank")
	}
}

func TestFillEllipse(t *testing.T) {
	s := NewScreen(21, 11)

	s.FillEllipse(10, 5, 6, 3, '*', ColorWhite)

	// Center and axis extremes are inside
	inside := [][2]int{{10, 5}, {4, 5}, {16, 5}, {10, 2}, {10, 8}}
	for _, p := range inside {
		if s.Get(p[0], p[1]) != '*' {
			t.Errorf("FillEllipse should cover (%d, %d)", p[0], p[1])
		}
	}

	// Bounding-box corners are outside
	outside := [][2]int{{4, 2}, {16, 2}, {4, 8}, {16, 8}}
	for _, p := range outside {
		if s.Get(p[0], p[1]) != ' ' {
			t.Errorf("FillEllipse should not cover corner (%d, %d)", p[0], p[1])
		}
	}
}

func TestFillEllipseDegenerate(t *testing.T) {
	s := NewScreen(5, 5)

	// Zero radius falls back to a single cell
	s.FillEllipse(2, 2, 0, 0, 'x', ColorDefault)
	if s.Get(2, 2) != 'x' {
		t.Error("Zero-radius ellipse should draw its center")
	}
}

func TestFillTriangle(t *testing.T) {
	s := NewScreen(12, 8)

	// Right-pointing triangle
	s.FillTriangle(2, 1, 2, 5, 9, 3, '>', ColorOrange)

	// All vertices covered
	verts := [][2]int{{2, 1}, {2, 5}, {9, 3}}
	for _, p := range verts {
		if s.Get(p[0], p[1]) != '>' {
			t.Errorf("FillTriangle should cover vertex (%d, %d)", p[0], p[1])
		}
	}

	// Interior point covered
	if s.Get(4, 3) != '>' {
		t.Error("FillTriangle should cover interior points")
	}

	// Points clearly outside stay blank
	if s.Get(9, 1) != ' ' || s.Get(9, 5) != ' ' {
		t.Error("FillTriangle should not paint outside the triangle")
	}
}
