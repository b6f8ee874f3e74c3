package terminal

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tilefolio/constants"
	"github.com/lixenwraith/tilefolio/engine"
	"github.com/lixenwraith/tilefolio/input"
	"github.com/lixenwraith/tilefolio/render"
)

// Options configures the terminal backend
type Options struct {
	CellWidth  float64
	CellHeight float64
	// RepeatDelay is how long a fresh key press counts as held before the first repeat
	RepeatDelay time.Duration
	// HoldWindow is how long a key counts as held after each repeat
	HoldWindow time.Duration
	// Time drives the hold window, defaults to the monotonic clock
	Time   engine.TimeProvider
	Logger *slog.Logger
}

// Runner drives a Game from tcell events and a frame ticker
// Events and ticks are handled on one goroutine so key state and clicks
// never race the frame.
type Runner struct {
	screen   tcell.Screen
	surface  *Surface
	game     *engine.Game
	renderer *render.Renderer
	keys     input.State
	hold     time.Duration
	delay    time.Duration
	clock    engine.TimeProvider
	logger   *slog.Logger

	// mouseDown tracks button 1 to turn drag reports into one click
	mouseDown bool
}

// NewRunner prepares a runner on an initialized screen
func NewRunner(screen tcell.Screen, game *engine.Game, renderer *render.Renderer, opts Options) *Runner {
	if opts.HoldWindow <= 0 {
		opts.HoldWindow = constants.KeyHoldWindow
	}
	if opts.RepeatDelay <= 0 {
		opts.RepeatDelay = constants.KeyRepeatDelay
	}
	if opts.Time == nil {
		opts.Time = engine.NewMonotonicTimeProvider()
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	r := &Runner{
		screen:   screen,
		surface:  NewSurface(screen, opts.CellWidth, opts.CellHeight),
		game:     game,
		renderer: renderer,
		hold:     opts.HoldWindow,
		delay:    opts.RepeatDelay,
		clock:    opts.Time,
		logger:   opts.Logger,
	}
	game.SetViewport(r.surface.Size())
	return r
}

// Surface returns the cell buffer
func (r *Runner) Surface() *Surface {
	return r.surface
}

// Run loops until ctx is canceled or the user quits
func (r *Runner) Run(ctx context.Context) error {
	r.screen.EnableMouse()
	r.screen.EnableFocus()
	r.screen.HideCursor()

	ticker := time.NewTicker(constants.FrameUpdateInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, constants.EventQueueSize)
	done := make(chan struct{})
	defer close(done)

	go func() {
		defer func() {
			if p := recover(); p != nil {
				EmergencyReset(r.screen, os.Stdout)
				fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", p)
				fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()
		for {
			ev := r.screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	r.logger.Info("terminal backend started")
	for {
		select {
		case <-ctx.Done():
			r.logger.Info("terminal backend stopped", "reason", ctx.Err())
			return nil
		case ev := <-events:
			if !r.HandleEvent(ev) {
				r.logger.Info("quit requested")
				return nil
			}
		case <-ticker.C:
			r.Tick()
		}
	}
}

// Tick expires released keys, advances one frame and draws it
func (r *Runner) Tick() {
	r.keys.Expire(r.clock.Now())
	r.game.Frame(r.keys.Snapshot())
	r.renderer.RenderFrame(render.NewContext(r.game), r.surface)
	r.surface.Flush()
}

// HandleEvent applies one tcell event, returns false to quit
func (r *Runner) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return r.handleKey(ev)

	case *tcell.EventMouse:
		r.handleMouse(ev)

	case *tcell.EventResize:
		r.surface.Resize()
		r.game.SetViewport(r.surface.Size())
		r.screen.Sync()

	case *tcell.EventFocus:
		if ev.Focused {
			r.game.Resume()
		} else {
			r.keys.Clear()
			r.game.Pause()
		}
	}
	return true
}

func (r *Runner) handleKey(ev *tcell.EventKey) bool {
	var k input.Key
	ok := false

	switch ev.Key() {
	case tcell.KeyCtrlC:
		return false
	case tcell.KeyEscape:
		r.game.ClosePopup()
		return true
	case tcell.KeyUp:
		k, ok = input.KeyUp, true
	case tcell.KeyDown:
		k, ok = input.KeyDown, true
	case tcell.KeyLeft:
		k, ok = input.KeyLeft, true
	case tcell.KeyRight:
		k, ok = input.KeyRight, true
	case tcell.KeyRune:
		if ev.Rune() == 'q' || ev.Rune() == 'Q' {
			return false
		}
		k, ok = input.KeyForRune(ev.Rune())
	}

	if ok {
		// Terminals send no key-up. A fresh press must outlast the repeat
		// delay, after which each repeat extends the hold.
		window := r.delay
		if r.keys.Held(k) {
			window = r.hold
		}
		r.keys.PressUntil(k, r.clock.Now().Add(window))
	}
	return true
}

func (r *Runner) handleMouse(ev *tcell.EventMouse) {
	pressed := ev.Buttons()&tcell.Button1 != 0
	if pressed && !r.mouseDown {
		col, row := ev.Position()
		x, y := r.surface.CellCenter(col, row)
		out := r.game.Click(x, y)
		r.logger.Debug("click", "col", col, "row", row, "outcome", out.Kind.String())
	}
	r.mouseDown = pressed
}

// EmergencyReset restores the terminal after a crash
func EmergencyReset(screen tcell.Screen, w io.Writer) {
	if screen != nil {
		func() {
			defer func() { _ = recover() }()
			screen.Fini()
		}()
	}
	// Mouse tracking off, cursor on, leave alt screen, reset attributes
	io.WriteString(w, "\x1b[?1000l\x1b[?1002l\x1b[?1006l\x1b[?25h\x1b[?1049l\x1b[0m")
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}
}
