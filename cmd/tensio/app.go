package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tensio/internal/config"
	"github.com/vovakirdan/tensio/internal/storage"
)

// loadConfig loads the configuration and applies explicitly set flags.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	applyFlags(&cfg, cmd.Flags().Changed("fps"), cmd.Flags().Changed("db"))
	return cfg, nil
}

func applyFlags(cfg *config.Config, fpsSet, dbSet bool) {
	if fpsSet && flagFPS > 0 {
		cfg.Display.FPS = flagFPS
	}
	if dbSet {
		cfg.Storage.Path = flagDBPath
	}
}

// newLogger builds the application logger writing to w.
func newLogger(cfg config.Config, w io.Writer, prefix string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           cfg.LogLevel(),
	})
}

// openLogFile opens the configured log file for appending. An empty path
// yields io.Discard.
func openLogFile(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{io.Discard}, nil
	}
	path, err := storage.ExpandHome(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// openScores opens the high score store. When the database cannot be
// opened the game still runs with an in-memory store.
func openScores(cfg config.Config, logger *log.Logger) (*storage.HighScores, func()) {
	if cfg.Storage.Path == "" {
		logger.Info("high scores kept in memory")
		return storage.NewHighScores(storage.NewMemoryKV(), logger), func() {}
	}

	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		logger.Warn("could not open high score database, using memory", "path", cfg.Storage.Path, "error", err)
		return storage.NewHighScores(storage.NewMemoryKV(), logger), func() {}
	}
	return storage.NewHighScores(store, logger), func() {
		if err := store.Close(); err != nil {
			logger.Warn("could not close high score database", "error", err)
		}
	}
}
