package core

import (
	"math"
	"unicode/utf8"
)

// Canvas is a raster surface addressed in logical pixels and backed by a
// character Screen. Each screen cell covers a block of pixels; a cell is
// painted when its centre falls inside a filled rectangle.
type Canvas struct {
	screen *Screen
	width  float64 // logical width in pixels
	height float64 // logical height in pixels
	cellW  float64 // pixels per column
	cellH  float64 // pixels per row
}

// NewCanvas maps a logical width×height pixel field onto screen.
func NewCanvas(screen *Screen, width, height float64) *Canvas {
	c := &Canvas{screen: screen, width: width, height: height}
	c.rescale()
	return c
}

func (c *Canvas) rescale() {
	c.cellW, c.cellH = 0, 0
	if c.screen.Width() > 0 {
		c.cellW = c.width / float64(c.screen.Width())
	}
	if c.screen.Height() > 0 {
		c.cellH = c.height / float64(c.screen.Height())
	}
}

// Screen returns the underlying character buffer.
func (c *Canvas) Screen() *Screen {
	return c.screen
}

// Resize changes the character grid the pixel field is mapped onto.
func (c *Canvas) Resize(cols, rows int) {
	c.screen.Resize(cols, rows)
	c.rescale()
}

// Width returns the logical width in pixels.
func (c *Canvas) Width() float64 {
	return c.width
}

// Height returns the logical height in pixels.
func (c *Canvas) Height() float64 {
	return c.height
}

// Empty reports whether the canvas has no drawable area.
func (c *Canvas) Empty() bool {
	return c.cellW == 0 || c.cellH == 0
}

// Clear blanks the whole frame.
func (c *Canvas) Clear() {
	c.screen.Clear()
}

// FillRect paints the pixel rectangle with a flat color.
// Rectangles smaller than a cell still paint the cell under their centre.
func (c *Canvas) FillRect(x, y, w, h float64, col Color) {
	if c.Empty() || w <= 0 || h <= 0 {
		return
	}
	r := c.cells(x, y, w, h)
	if col != ColorShade {
		c.screen.DrawRect(r, col.FillRune(), col)
		return
	}
	for cy := r.Y; cy < r.Bottom(); cy++ {
		for cx := r.X; cx < r.Right(); cx++ {
			c.screen.Recolor(cx, cy, ColorDarkGray)
		}
	}
}

// cells returns the screen cells covered by a pixel rectangle.
func (c *Canvas) cells(x, y, w, h float64) Rect {
	x0, x1 := span(x, w, c.cellW)
	y0, y1 := span(y, h, c.cellH)
	return NewRect(x0, y0, x1-x0, y1-y0)
}

// span converts a pixel interval to a half-open range of cell indices.
func span(pos, size, cell float64) (int, int) {
	start := int(math.Ceil(pos/cell - 0.5))
	end := int(math.Ceil((pos+size)/cell - 0.5))
	if end <= start {
		start = int(math.Floor((pos + size/2) / cell))
		end = start + 1
	}
	return start, end
}

// DrawText writes text with its first character in the cell containing
// pixel (x, y).
func (c *Canvas) DrawText(x, y float64, text string, col Color) {
	if c.Empty() {
		return
	}
	cx := int(math.Floor(x / c.cellW))
	cy := int(math.Floor(y / c.cellH))
	c.screen.DrawText(cx, cy, text, col)
}

// MeasureText returns the width of text in pixels.
func (c *Canvas) MeasureText(text string) float64 {
	return float64(utf8.RuneCountInString(text)) * c.cellW
}
