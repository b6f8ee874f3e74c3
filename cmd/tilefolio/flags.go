package main

import (
	"flag"
	"fmt"

	"github.com/lixenwraith/tilefolio/config"
)

const defaultConfigPath = "tilefolio.yaml"

// cliFlags holds command-line overrides; only flags given explicitly apply
type cliFlags struct {
	config  string
	backend string
	content string
	addr    string
	log     string
	mute    bool

	set map[string]bool
}

func parseFlags(args []string) (cliFlags, error) {
	var f cliFlags
	fs := flag.NewFlagSet("tilefolio", flag.ContinueOnError)
	fs.StringVar(&f.config, "config", defaultConfigPath, "Config file, missing file uses defaults")
	fs.StringVar(&f.backend, "backend", "", "Backend: terminal, window")
	fs.StringVar(&f.content, "content", "", "World content YAML replacing the built-in world")
	fs.StringVar(&f.addr, "addr", "", "Status API listen address, empty disables")
	fs.StringVar(&f.log, "log", "", "Log file path")
	fs.BoolVar(&f.mute, "mute", false, "Disable audio")

	if err := fs.Parse(args); err != nil {
		return f, err
	}
	f.set = make(map[string]bool)
	fs.Visit(func(fl *flag.Flag) { f.set[fl.Name] = true })
	return f, nil
}

func (f cliFlags) apply(cfg *config.Config) {
	if f.set["backend"] {
		cfg.Backend = f.backend
	}
	if f.set["content"] {
		cfg.Content = f.content
	}
	if f.set["addr"] {
		cfg.Server.Addr = f.addr
	}
	if f.set["log"] {
		cfg.Log.File = f.log
	}
	if f.mute {
		cfg.Audio.Enabled = false
	}
}

// loadConfig reads the config file, applies flag overrides, then validates
// so a flag can replace a bad value from the file
func loadConfig(f cliFlags) (config.Config, error) {
	cfg, err := config.Load(f.config)
	if err != nil {
		return cfg, err
	}
	f.apply(&cfg)
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
