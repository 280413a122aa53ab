package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/tensio/internal/core"
)

func TestRenderScreenText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab", core.ColorRed)
	s.SetWithColor(2, 0, 'c', core.ColorGreen)
	s.SetWithColor(0, 1, '▒', core.ColorDarkGray)

	got := ansi.Strip(RenderScreen(s))
	want := "abc   \n▒     "
	if got != want {
		t.Errorf("RenderScreen() = %q, expected %q", got, want)
	}
}

func TestRenderScreenEmpty(t *testing.T) {
	if got := RenderScreen(core.NewScreen(0, 0)); got != "" {
		t.Errorf("RenderScreen(empty) = %q, expected empty", got)
	}
}

func TestColorStylesCoverPalette(t *testing.T) {
	for c := core.ColorDefault; c < core.ColorShade; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("no style for color %d", c)
		}
	}
	if strings.Count(ansi.Strip(RenderScreen(core.NewScreen(3, 3))), "\n") != 2 {
		t.Error("expected one line per row")
	}
}
