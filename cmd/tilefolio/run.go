package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/tilefolio/audio"
	"github.com/lixenwraith/tilefolio/config"
	"github.com/lixenwraith/tilefolio/engine"
	"github.com/lixenwraith/tilefolio/render"
	"github.com/lixenwraith/tilefolio/server"
	"github.com/lixenwraith/tilefolio/surface/terminal"
	"github.com/lixenwraith/tilefolio/surface/window"
	"github.com/lixenwraith/tilefolio/world"
)

// run wires the session and blocks until the backend exits
// The backend runs on the calling goroutine because Ebitengine requires the
// main thread; the status API runs in the errgroup beside it.
func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	content, err := loadContent(cfg.Content)
	if err != nil {
		return err
	}
	for _, it := range content.Unreachable() {
		logger.Warn("item outside walkable area", "id", it.ID, "x", it.X, "y", it.Y)
	}
	logger.Info("content loaded", "items", len(content.Items), "gates", len(content.Gates))

	sounds := audio.NewSoundManager(logger)
	sounds.SetVolume(cfg.Audio.Volume)
	if cfg.Audio.Enabled {
		if err := sounds.Initialize(); err != nil {
			logger.Warn("audio initialization failed, continuing without audio", "err", err)
		} else {
			defer sounds.Cleanup()
		}
	}

	snaps := &engine.SnapshotStore{}
	game := engine.NewGame(engine.Options{
		Content:   content,
		Sounds:    sounds,
		Logger:    logger,
		Snapshots: snaps,
	})
	renderer := render.NewDefaultRenderer()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	if cfg.Server.Addr != "" {
		api := server.New(content, snaps, server.Options{
			Addr:         cfg.Server.Addr,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
			Logger:       logger,
		})
		g.Go(func() error {
			if err := api.Run(gctx); err != nil {
				return fmt.Errorf("status api: %w", err)
			}
			return nil
		})
	}

	backendErr := runBackend(gctx, cfg, game, renderer, logger)
	cancel()

	if err := g.Wait(); err != nil {
		return err
	}
	return backendErr
}

func loadContent(path string) (*world.Content, error) {
	if path == "" {
		return world.Default(), nil
	}
	content, err := world.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading content: %w", err)
	}
	return content, nil
}

func runBackend(ctx context.Context, cfg config.Config, game *engine.Game, renderer *render.Renderer, logger *slog.Logger) error {
	switch cfg.Backend {
	case config.BackendWindow:
		w := window.New(ctx, game, renderer, window.Options{
			Width:  cfg.Window.Width,
			Height: cfg.Window.Height,
			Title:  cfg.Window.Title,
			Logger: logger,
		})
		if err := w.Run(); err != nil {
			return fmt.Errorf("window backend: %w", err)
		}
		return nil

	default:
		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("creating terminal screen: %w", err)
		}
		if err := screen.Init(); err != nil {
			return fmt.Errorf("initializing terminal: %w", err)
		}
		activeScreen = screen
		defer func() {
			screen.Fini()
			activeScreen = nil
		}()

		r := terminal.NewRunner(screen, game, renderer, terminal.Options{
			CellWidth:   cfg.Terminal.CellWidth,
			CellHeight:  cfg.Terminal.CellHeight,
			HoldWindow:  cfg.Terminal.HoldWindow,
			RepeatDelay: cfg.Terminal.RepeatDelay,
			Logger:      logger,
		})
		return r.Run(ctx)
	}
}
