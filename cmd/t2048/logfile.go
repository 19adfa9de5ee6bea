package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// uiLogger returns the logger for commands that run a full-screen UI.
// Writing to stderr would draw over the board, so logs go to cfg.Log.File
// instead. The returned func closes the file.
func uiLogger() (*log.Logger, func()) {
	l, closer, err := openLogFile(cfg.Log.File, log.Options{
		ReportTimestamp: cfg.Log.Timestamps,
		Prefix:          "t2048",
		Level:           cfg.LogLevel(),
	})
	if err != nil {
		logger.Warn("logging disabled while playing", "error", err)
		return log.New(io.Discard), func() {}
	}
	return l, func() { closer.Close() }
}

// openLogFile appends logs to path. An empty path discards them.
func openLogFile(path string, opts log.Options) (*log.Logger, io.Closer, error) {
	if path == "" {
		return log.New(io.Discard), io.NopCloser(nil), nil
	}

	if path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, nil, fmt.Errorf("cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	return log.NewWithOptions(f, opts), f, nil
}
