// Package config provides YAML-based configuration loading for Tensio.
// Gameplay tuning is fixed in the engine; this covers the shell around it.
package config

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

// Config is the complete application configuration.
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
	Server  ServerConfig  `yaml:"server"`
	Keys    KeysConfig    `yaml:"keys"`
}

// DisplayConfig controls the frame rate and the terminal area in use.
type DisplayConfig struct {
	FPS       int `yaml:"fps"`
	MaxWidth  int `yaml:"max_width"`  // 0 = whole terminal
	MaxHeight int `yaml:"max_height"` // 0 = whole terminal
}

// StorageConfig locates the high score database.
type StorageConfig struct {
	Path string `yaml:"path"` // empty = in-memory
}

// LogConfig controls the charmbracelet logger.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// ServerConfig holds the SSH server settings used by `tensio serve`.
type ServerConfig struct {
	Address            string `yaml:"address"`
	HostKey            string `yaml:"host_key"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// KeysConfig lists the key names bound to the two game inputs.
// Names follow Bubble Tea's KeyMsg.String().
type KeysConfig struct {
	Activate []string `yaml:"activate"`
	Exit     []string `yaml:"exit"`
}

const (
	minFPS = 10
	maxFPS = 240
)

// IdleTimeout returns the idle timeout as a duration.
func (s ServerConfig) IdleTimeout() time.Duration {
	return time.Duration(s.IdleTimeoutMinutes) * time.Minute
}

// LogLevel parses Log.Level, falling back to info for unknown names.
func (c Config) LogLevel() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// Validate reports values that cannot be repaired by normalize.
func (c Config) Validate() error {
	if c.Display.MaxWidth < 0 || c.Display.MaxHeight < 0 {
		return fmt.Errorf("config: display size must not be negative (%dx%d)",
			c.Display.MaxWidth, c.Display.MaxHeight)
	}
	if c.Server.IdleTimeoutMinutes < 0 {
		return fmt.Errorf("config: idle_timeout_minutes must not be negative (%d)",
			c.Server.IdleTimeoutMinutes)
	}
	if c.Log.Level != "" {
		if _, err := log.ParseLevel(c.Log.Level); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	return nil
}

// normalize fills holes left by partial files with defaults.
func (c *Config) normalize() {
	def := Default()

	switch {
	case c.Display.FPS <= 0:
		c.Display.FPS = def.Display.FPS
	case c.Display.FPS < minFPS:
		c.Display.FPS = minFPS
	case c.Display.FPS > maxFPS:
		c.Display.FPS = maxFPS
	}
	if c.Server.Address == "" {
		c.Server.Address = def.Server.Address
	}
	if len(c.Keys.Activate) == 0 {
		c.Keys.Activate = def.Keys.Activate
	}
	if len(c.Keys.Exit) == 0 {
		c.Keys.Exit = def.Keys.Exit
	}
}
