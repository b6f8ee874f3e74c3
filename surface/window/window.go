package window

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/tilefolio/constants"
	"github.com/lixenwraith/tilefolio/engine"
	"github.com/lixenwraith/tilefolio/input"
	"github.com/lixenwraith/tilefolio/render"
)

// Options configures the window backend
type Options struct {
	Width  int
	Height int
	Title  string
	// ScaleFactor reports the device scale, defaults to the current monitor
	ScaleFactor func() float64
	// Sampler overrides device input, used by tests
	Sampler Sampler
	Logger  *slog.Logger
}

// Window adapts a Game to ebiten.Game
// Ebitengine calls Update and Draw on its own loop; input is sampled in Update.
type Window struct {
	ctx      context.Context
	game     *engine.Game
	renderer *render.Renderer
	surface  *Surface
	sampler  Sampler
	keys     input.State
	scaleFn  func() float64
	scale    float64
	opts     Options
	logger   *slog.Logger
}

// New creates a window adapter; ctx cancellation ends the loop
func New(ctx context.Context, game *engine.Game, renderer *render.Renderer, opts Options) *Window {
	if opts.Width <= 0 {
		opts.Width = constants.WindowWidth
	}
	if opts.Height <= 0 {
		opts.Height = constants.WindowHeight
	}
	if opts.Title == "" {
		opts.Title = constants.WindowTitle
	}
	if opts.ScaleFactor == nil {
		opts.ScaleFactor = monitorScale
	}
	if opts.Sampler == nil {
		opts.Sampler = &ebitenSampler{}
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Window{
		ctx:      ctx,
		game:     game,
		renderer: renderer,
		surface:  NewSurface(),
		sampler:  opts.Sampler,
		scaleFn:  opts.ScaleFactor,
		scale:    1,
		opts:     opts,
		logger:   opts.Logger,
	}
}

func monitorScale() float64 {
	m := ebiten.Monitor()
	if m == nil {
		return 1
	}
	return m.DeviceScaleFactor()
}

// Run opens the window and blocks until quit or ctx cancellation
func (w *Window) Run() error {
	ebiten.SetWindowSize(w.opts.Width, w.opts.Height)
	ebiten.SetWindowTitle(w.opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(int(math.Round(1 / constants.FrameUpdateInterval.Seconds())))
	ebiten.SetRunnableOnUnfocused(true)

	w.logger.Info("window backend started", "width", w.opts.Width, "height", w.opts.Height)
	err := ebiten.RunGame(w)
	if errors.Is(err, ebiten.Termination) {
		err = nil
	}
	w.logger.Info("window backend stopped")
	return err
}

// Update samples input and advances one frame
func (w *Window) Update() error {
	if w.ctx.Err() != nil {
		return ebiten.Termination
	}
	in := w.sampler
	if in.Quit() {
		return ebiten.Termination
	}

	switch focused := in.Focused(); {
	case !focused && !w.game.Paused():
		w.keys.Clear()
		w.game.Pause()
	case focused && w.game.Paused():
		w.game.Resume()
	}

	for _, k := range input.Keys {
		if in.Pressed(k) {
			w.keys.Press(k)
		} else {
			w.keys.Release(k)
		}
	}

	if in.Escape() {
		w.game.ClosePopup()
	}
	for _, p := range in.Clicks() {
		w.game.Click(p[0]/w.scale, p[1]/w.scale)
	}

	w.game.Frame(w.keys.Snapshot())
	return nil
}

// Draw renders the current frame
func (w *Window) Draw(screen *ebiten.Image) {
	vw, vh := w.game.Viewport()
	w.surface.Begin(screen, vw, vh, w.scale)
	w.renderer.RenderFrame(render.NewContext(w.game), w.surface)
}

// Layout is unused because Window implements LayoutF
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	fw, fh := w.LayoutF(float64(outsideWidth), float64(outsideHeight))
	return int(math.Ceil(fw)), int(math.Ceil(fh))
}

// LayoutF keeps logical units equal to window points and renders at device
// resolution
func (w *Window) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	s := w.scaleFn()
	if s <= 0 {
		s = 1
	}
	w.scale = s
	w.game.SetViewport(outsideWidth, outsideHeight)
	return outsideWidth * s, outsideHeight * s
}
