// Package config provides YAML-based configuration loading for t2048.
package config

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/t2048/internal/registry"
)

// Config is the top-level configuration file.
type Config struct {
	Variant string    `yaml:"variant"`
	DBPath  string    `yaml:"db_path"`
	Seed    int64     `yaml:"seed"` // 0 = time based
	Log     LogConfig `yaml:"log"`
	SSH     SSHConfig `yaml:"ssh"`
}

// LogConfig controls the structured logger.
type LogConfig struct {
	Level      string `yaml:"level"` // debug, info, warn, error
	Timestamps bool   `yaml:"timestamps"`

	// File receives logs while a full-screen UI owns the terminal.
	// Empty discards them.
	File string `yaml:"file"`
}

// SSHConfig holds settings for the SSH server.
type SSHConfig struct {
	Address     string        `yaml:"address"`
	HostKeyPath string        `yaml:"host_key_path"` // empty = ~/.t2048/host_key
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// Validate checks values that would otherwise fail late.
func (c Config) Validate() error {
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log.level %q: %w", c.Log.Level, err)
	}
	if !registry.Exists(c.Variant) {
		return fmt.Errorf("config: variant: %w %q", registry.ErrUnknownVariant, c.Variant)
	}
	if c.DBPath == "" {
		return fmt.Errorf("config: db_path must not be empty")
	}
	if c.SSH.IdleTimeout < 0 {
		return fmt.Errorf("config: ssh.idle_timeout must not be negative")
	}
	return nil
}

// LogLevel returns the parsed log level, falling back to info.
func (c Config) LogLevel() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
