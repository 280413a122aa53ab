package tensio

import (
	"github.com/vovakirdan/tensio/internal/core"
)

// Sprite is one pixel-art frame. Each byte of Rows indexes Palette; bytes
// missing from Palette are transparent. A sprite is stretched to whatever
// box it is drawn into.
type Sprite struct {
	Rows    []string
	Palette map[byte]core.Color
}

// SpriteSet is the art asset the renderer asks for frames.
type SpriteSet interface {
	Player(frame int, airborne bool) Sprite
	Obstacle(kind ObstacleKind) Sprite
}

var palette = map[byte]core.Color{
	'C': core.ColorBrightCyan,
	'W': core.ColorBrightWhite,
	'K': core.ColorGray,
	'D': core.ColorDarkGray,
	'G': core.ColorBrightGreen,
	'R': core.ColorBrightRed,
	'B': core.ColorBrightBlue,
	'Y': core.ColorBrightYellow,
	'O': core.ColorOrange,
}

var (
	playerRun = [RunFrames][]string{
		{".CC.", "CWCC", ".CC.", "C..C"},
		{".CC.", "CWCC", ".CC.", ".CC."},
		{".CC.", "CWCC", ".CC.", "C.C."},
		{".CC.", "CWCC", ".CC.", ".C.C"},
	}
	playerAir = []string{".CC.", "CWCC", "CCC.", ".C.."}

	obstacleArt = [obstacleKindCount][]string{
		ObstacleSwitch: {"KGKGK", "KKKKK"},
		ObstacleServer: {"KKK", "KGK", "KKK", "KRK"},
		ObstacleUPS:    {"DDDD", "DYOD", "DDDD"},
		ObstacleRack:   {"KKK", "KBK", "KKK", "KBK", "KKK", "K.K"},
	}
)

type defaultSprites struct{}

// DefaultSprites returns the built-in sprite table.
func DefaultSprites() SpriteSet {
	return defaultSprites{}
}

func (defaultSprites) Player(frame int, airborne bool) Sprite {
	if airborne {
		return Sprite{Rows: playerAir, Palette: palette}
	}
	if frame < 0 || frame >= RunFrames {
		frame = 0
	}
	return Sprite{Rows: playerRun[frame], Palette: palette}
}

func (defaultSprites) Obstacle(kind ObstacleKind) Sprite {
	if kind < 0 || kind >= obstacleKindCount {
		kind = ObstacleSwitch
	}
	return Sprite{Rows: obstacleArt[kind], Palette: palette}
}
