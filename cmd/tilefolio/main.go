package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tilefolio/surface/terminal"
)

// activeScreen is reset by the crash handler, nil for the window backend
var activeScreen tcell.Screen

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			if activeScreen != nil {
				terminal.EmergencyReset(activeScreen, os.Stdout)
			}
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mTILEFOLIO CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flags, err := parseFlags(os.Args[1:])
	if err != nil {
		os.Exit(exitCodeFor(err))
	}

	cfg, err := loadConfig(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tilefolio: %v\n", err)
		os.Exit(1)
	}

	logger, logFile, err := setupLogging(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("fatal", "err", err)
		fmt.Fprintf(os.Stderr, "tilefolio: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// exitCodeFor maps a flag parse error to a process exit code; -h is a success
func exitCodeFor(err error) int {
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	return 2
}
