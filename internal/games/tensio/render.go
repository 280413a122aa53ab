package tensio

import (
	"fmt"

	"github.com/vovakirdan/tensio/internal/core"
)

// Surface is an immediate-mode raster target addressed in field pixels.
// core.Canvas implements it.
type Surface interface {
	Width() float64
	Height() float64
	Clear()
	FillRect(x, y, w, h float64, c core.Color)
	DrawText(x, y float64, text string, c core.Color)
	MeasureText(text string) float64
}

// Render paints s onto dst using the built-in sprites.
func Render(dst Surface, s *Session) {
	RenderWith(dst, s, DefaultSprites())
}

// RenderWith paints s onto dst. It reads the session and never modifies it.
func RenderWith(dst Surface, s *Session, sprites SpriteSet) {
	dst.Clear()
	drawSkyline(dst, s.BackgroundOffset)
	drawGround(dst, s.GroundOffset)

	if s.Phase == PhaseStart {
		drawStartScreen(dst, s, sprites)
		return
	}

	for _, c := range s.Collectibles {
		if c.Collected {
			continue
		}
		b := c.Box()
		dst.FillRect(b.X, b.Y, b.W, b.H, core.ColorBrightYellow)
	}
	for _, o := range s.Obstacles {
		drawSprite(dst, sprites.Obstacle(o.Kind), o.Box())
	}
	drawSprite(dst, sprites.Player(s.Player.Frame, !s.Player.Grounded), s.Player.Box())
	drawHUD(dst, s)

	if s.Phase == PhaseDead {
		drawDeathOverlay(dst, s)
	}
}

func drawSkyline(dst Surface, offset float64) {
	// Two blocks per tile: a tall rack row and a short one.
	for x := -offset; x < dst.Width(); x += SkylineTileWidth {
		dst.FillRect(x+16, GroundLine-90, 40, 90, core.ColorDarkGray)
		dst.FillRect(x+88, GroundLine-50, 48, 50, core.ColorDarkGray)
	}
}

func drawGround(dst Surface, offset float64) {
	dst.FillRect(0, GroundLine, dst.Width(), dst.Height()-GroundLine, core.ColorGray)
	for x := -offset; x < dst.Width(); x += GroundTileWidth {
		dst.FillRect(x, GroundLine+10, GroundTileWidth/2, dst.Height()-GroundLine-10, core.ColorDarkGray)
	}
}

func drawSprite(dst Surface, sp Sprite, box core.Box) {
	if len(sp.Rows) == 0 {
		return
	}
	ph := box.H / float64(len(sp.Rows))
	for r, line := range sp.Rows {
		if len(line) == 0 {
			continue
		}
		pw := box.W / float64(len(line))
		for c := 0; c < len(line); c++ {
			col, ok := sp.Palette[line[c]]
			if !ok {
				continue
			}
			dst.FillRect(box.X+float64(c)*pw, box.Y+float64(r)*ph, pw, ph, col)
		}
	}
}

func drawStartScreen(dst Surface, s *Session, sprites SpriteSet) {
	drawCentered(dst, 50, "T E N S I O", core.ColorBrightCyan)
	if s.HighScore > 0 {
		drawCentered(dst, 80, fmt.Sprintf("HIGH SCORE %d", s.HighScore), core.ColorBrightYellow)
	}
	drawCentered(dst, 110, "SPACE / UP / CLICK to start", core.ColorWhite)
	drawSprite(dst, sprites.Player(0, false), s.Player.Box())
}

func drawHUD(dst Surface, s *Session) {
	dst.DrawText(8, 2, fmt.Sprintf("SCORE %05d", s.Score), core.ColorBrightWhite)
	hi := fmt.Sprintf("HI %05d", s.HighScore)
	dst.DrawText((dst.Width()-dst.MeasureText(hi))/2, 2, hi, core.ColorYellow)
	spd := fmt.Sprintf("SPD %.1fx", s.Speed/BaseSpeed)
	dst.DrawText(dst.Width()-dst.MeasureText(spd)-8, 2, spd, core.ColorCyan)
}

func drawDeathOverlay(dst Surface, s *Session) {
	dst.FillRect(0, 0, dst.Width(), dst.Height(), core.ColorShade)
	drawCentered(dst, 60, "GAME OVER", core.ColorBrightRed)
	drawCentered(dst, 90, fmt.Sprintf("SCORE %d", s.Score), core.ColorBrightWhite)
	if s.IsNewHighScore {
		drawCentered(dst, 110, "NEW HIGH SCORE!", core.ColorBrightYellow)
	}
	drawCentered(dst, 140, "SPACE / UP / CLICK to restart", core.ColorWhite)
}

func drawCentered(dst Surface, y float64, text string, c core.Color) {
	dst.DrawText((dst.Width()-dst.MeasureText(text))/2, y, text, c)
}
