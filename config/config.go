package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/tilefolio/constants"
)

// Backend names
const (
	BackendTerminal = "terminal"
	BackendWindow   = "window"
)

// ErrUnknownBackend is returned for a backend name other than terminal or window
var ErrUnknownBackend = errors.New("unknown backend")

// Config holds all runtime configuration
type Config struct {
	Backend string `yaml:"backend"`
	// Content is an optional world content file replacing the embedded default
	Content string `yaml:"content"`

	Terminal TerminalConfig `yaml:"terminal"`
	Window   WindowConfig   `yaml:"window"`
	Audio    AudioConfig    `yaml:"audio"`
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
}

// TerminalConfig tunes the cell mapping and key emulation
type TerminalConfig struct {
	CellWidth   float64       `yaml:"cell_width"`
	CellHeight  float64       `yaml:"cell_height"`
	HoldWindow  time.Duration `yaml:"hold_window"`
	RepeatDelay time.Duration `yaml:"repeat_delay"`
}

// WindowConfig sizes the Ebitengine window in points
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// AudioConfig controls sound cues
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

// ServerConfig enables the read-only status API when Addr is set
type ServerConfig struct {
	Addr         string        `yaml:"addr"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// LogConfig selects the log destination and level
// An empty File logs to stderr, except the terminal backend which discards.
type LogConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

// Default returns Config with sensible defaults
func Default() Config {
	return Config{
		Backend: BackendTerminal,
		Terminal: TerminalConfig{
			CellWidth:   constants.CellWidth,
			CellHeight:  constants.CellHeight,
			HoldWindow:  constants.KeyHoldWindow,
			RepeatDelay: constants.KeyRepeatDelay,
		},
		Window: WindowConfig{
			Width:  constants.WindowWidth,
			Height: constants.WindowHeight,
			Title:  constants.WindowTitle,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  1,
		},
		Server: ServerConfig{
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 5 * time.Second,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads config from a YAML file over the defaults
// If the file doesn't exist, returns defaults. The result is not validated so
// command-line overrides can still replace bad values; call Validate after.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks values that have no usable fallback
func (c Config) Validate() error {
	switch c.Backend {
	case BackendTerminal, BackendWindow:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, c.Backend)
	}
	if c.Terminal.CellWidth <= 0 || c.Terminal.CellHeight <= 0 {
		return fmt.Errorf("terminal cell size must be positive, got %vx%v", c.Terminal.CellWidth, c.Terminal.CellHeight)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio volume %v outside [0,1]", c.Audio.Volume)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// ParseLevel maps debug, info, warn or error to a slog level
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level %q: %w", s, err)
	}
	return l, nil
}
