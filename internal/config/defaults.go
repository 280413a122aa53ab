package config

import (
	_ "embed"
)

//go:embed defaults/tensio.yaml
var defaultYAML []byte

// Default returns the hardcoded configuration. It matches the embedded
// defaults/tensio.yaml and is used when that cannot be parsed.
func Default() Config {
	return Config{
		Display: DisplayConfig{
			FPS:       60,
			MaxWidth:  160,
			MaxHeight: 60,
		},
		Storage: StorageConfig{
			Path: "~/.tensio/tensio.db",
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.tensio/tensio.log",
		},
		Server: ServerConfig{
			Address:            ":23235",
			HostKey:            "~/.tensio/host_key",
			IdleTimeoutMinutes: 30,
		},
		Keys: KeysConfig{
			Activate: []string{" ", "up", "w", "enter"},
			Exit:     []string{"q", "esc", "ctrl+c"},
		},
	}
}
