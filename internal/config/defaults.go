package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/t2048.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Variant: "2048",
		DBPath:  "~/.t2048/scores.db",
		Log: LogConfig{
			Level:      "info",
			Timestamps: true,
			File:       "~/.t2048/t2048.log",
		},
		SSH: SSHConfig{
			Address:     ":23234",
			IdleTimeout: 30 * time.Minute,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
