package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorDarkGray

	// ColorShade does not paint a glyph: filling with it recolors whatever
	// is already in the cell to ColorDarkGray.
	ColorShade
)

// FillRune returns the glyph used when a rectangle is filled with c.
func (c Color) FillRune() rune {
	switch c {
	case ColorDarkGray:
		return '▒'
	default:
		return '█'
	}
}
