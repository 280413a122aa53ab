package core

import "testing"

func TestCanvasScale(t *testing.T) {
	c := NewCanvas(NewScreen(80, 24), 640, 240)

	if c.Width() != 640 || c.Height() != 240 {
		t.Errorf("logical size = %vx%v, expected 640x240", c.Width(), c.Height())
	}
	if c.Empty() {
		t.Error("canvas with cells should not be empty")
	}
	if got := c.MeasureText("abcd"); got != 32 {
		t.Errorf("MeasureText = %v, expected 32", got)
	}
}

func TestCanvasFillRect(t *testing.T) {
	c := NewCanvas(NewScreen(80, 24), 640, 240)

	// Exactly cells (1,1)-(2,2): pixels x 8..24, y 10..30.
	c.FillRect(8, 10, 16, 20, ColorGreen)

	s := c.Screen()
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			inside := x >= 1 && x <= 2 && y >= 1 && y <= 2
			filled := s.Get(x, y) == '█'
			if inside != filled {
				t.Errorf("cell (%d,%d) filled=%v, expected %v", x, y, filled, inside)
			}
		}
	}
	if s.GetCell(1, 1).Color != ColorGreen {
		t.Errorf("fill color = %d, expected ColorGreen", s.GetCell(1, 1).Color)
	}
}

func TestCanvasFillRectSmallerThanCell(t *testing.T) {
	c := NewCanvas(NewScreen(80, 24), 640, 240)

	c.FillRect(17, 21, 2, 2, ColorYellow)

	if c.Screen().Get(2, 2) != '█' {
		t.Error("sub-cell rectangle should paint the cell under its centre")
	}
}

func TestCanvasShade(t *testing.T) {
	c := NewCanvas(NewScreen(10, 10), 100, 100)
	c.DrawText(0, 0, "hi", ColorWhite)

	c.FillRect(0, 0, 100, 100, ColorShade)

	cell := c.Screen().GetCell(0, 0)
	if cell.Rune != 'h' || cell.Color != ColorDarkGray {
		t.Errorf("shade should dim existing cells, got %+v", cell)
	}
}

func TestCanvasEmpty(t *testing.T) {
	c := NewCanvas(NewScreen(0, 0), 640, 240)

	if !c.Empty() {
		t.Error("zero-size screen should make an empty canvas")
	}

	// Must not panic
	c.FillRect(0, 0, 10, 10, ColorRed)
	c.DrawText(0, 0, "x", ColorRed)

	c.Resize(80, 24)
	if c.Empty() {
		t.Error("resized canvas should not be empty")
	}
}
