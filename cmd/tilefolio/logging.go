package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/lixenwraith/tilefolio/config"
)

// setupLogging builds the process logger and installs it as the slog default
// The terminal owns stdout, so without a file the terminal backend discards
// logs and the window backend writes to stderr. The returned file is nil
// when no file was opened.
func setupLogging(cfg config.Config) (*slog.Logger, *os.File, error) {
	level, err := config.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, nil, err
	}

	var w io.Writer
	var file *os.File
	switch {
	case cfg.Log.File != "":
		if dir := filepath.Dir(cfg.Log.File); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, nil, fmt.Errorf("creating log directory %s: %w", dir, err)
			}
		}
		file, err = os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file %s: %w", cfg.Log.File, err)
		}
		w = file
	case cfg.Backend == config.BackendTerminal:
		w = io.Discard
	default:
		w = os.Stderr
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger, file, nil
}
