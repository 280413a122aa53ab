package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tensio/internal/games/tensio"
	"github.com/vovakirdan/tensio/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Tensio in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Space/Up/Enter/Click - Start, jump, restart
  Q/Esc/Ctrl+C         - Quit
  ?                    - Toggle help

The game pauses when the terminal loses focus.

Examples:
  tensio play
  tensio play --seed 42
  tensio play --fps 30 --db ""`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	logFile, err := openLogFile(cfg.Log.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		logFile = nopCloser{os.Stderr}
	}
	defer logFile.Close()
	logger := newLogger(cfg, logFile, "tensio")

	scores, closeScores := openScores(cfg, logger)
	defer closeScores()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Debug("starting", "seed", seed, "width", width, "height", height, "fps", cfg.Display.FPS)

	ctrl := tensio.NewController(scores, tensio.NewRand(seed), logger)
	if err := tui.Run(ctrl, cfg, width, height); err != nil {
		if errors.Is(err, tensio.ErrNoSurface) {
			fmt.Fprintf(os.Stderr, "Error: terminal too small (%dx%d)\n", width, height)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		closeScores()
		os.Exit(1)
	}
}
