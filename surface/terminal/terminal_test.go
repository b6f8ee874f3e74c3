package terminal

import (
	"image/color"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/tilefolio/constants"
	"github.com/lixenwraith/tilefolio/engine"
	"github.com/lixenwraith/tilefolio/render"
	"github.com/lixenwraith/tilefolio/world"
)

func newSimScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(cols, rows)
	t.Cleanup(s.Fini)
	return s
}

func bgAt(t *testing.T, s tcell.Screen, col, row int) tcell.Color {
	t.Helper()
	_, _, style, _ := s.GetContent(col, row)
	_, bg, _ := style.Decompose()
	return bg
}

func runeAt(s tcell.Screen, col, row int) rune {
	r, _, _, _ := s.GetContent(col, row)
	return r
}

var (
	black = color.NRGBA{0, 0, 0, 255}
	red   = color.NRGBA{255, 0, 0, 255}
)

func TestSurfaceSizeInUnits(t *testing.T) {
	s := newSimScreen(t, 80, 25)
	surf := NewSurface(s, 0, 0)
	w, h := surf.Size()
	assert.Equal(t, 80*constants.CellWidth, w)
	assert.Equal(t, 25*constants.CellHeight, h)
}

func TestFillRectMapsToCells(t *testing.T) {
	s := newSimScreen(t, 10, 5)
	surf := NewSurface(s, 8, 16)
	surf.Clear(black)

	// Covers cells 1..2 horizontally and row 1
	surf.FillRect(8, 16, 16, 16, red)
	surf.Flush()

	want := tcell.NewRGBColor(255, 0, 0)
	assert.Equal(t, want, bgAt(t, s, 1, 1))
	assert.Equal(t, want, bgAt(t, s, 2, 1))
	assert.NotEqual(t, want, bgAt(t, s, 0, 1))
	assert.NotEqual(t, want, bgAt(t, s, 3, 1))
	assert.NotEqual(t, want, bgAt(t, s, 1, 0))
	assert.NotEqual(t, want, bgAt(t, s, 1, 2))
}

func TestTinyRectPaintsContainingCell(t *testing.T) {
	s := newSimScreen(t, 10, 5)
	surf := NewSurface(s, 8, 16)
	surf.Clear(black)

	surf.FillRect(41, 20, 1, 1, red)
	surf.Flush()
	assert.Equal(t, tcell.NewRGBColor(255, 0, 0), bgAt(t, s, 5, 1))
}

func TestFillRectClipsOffscreen(t *testing.T) {
	s := newSimScreen(t, 4, 2)
	surf := NewSurface(s, 8, 16)
	surf.Clear(black)

	assert.NotPanics(t, func() {
		surf.FillRect(-100, -100, 1000, 1000, red)
		surf.FillCircle(-50, 500, 10, red)
		surf.Line(-10, -10, 500, 500, 1, red)
		surf.Text(-16, 0, "hello", red)
	})
	surf.Flush()
	assert.Equal(t, tcell.NewRGBColor(255, 0, 0), bgAt(t, s, 3, 1))
}

func TestTranslucentFillBlends(t *testing.T) {
	s := newSimScreen(t, 2, 1)
	surf := NewSurface(s, 8, 16)
	surf.Clear(black)
	surf.Text(0, 0, "x", red)

	surf.FillRect(0, 0, 8, 16, color.NRGBA{255, 255, 255, 128})
	surf.Flush()

	assert.Equal(t, 'x', runeAt(s, 0, 0), "translucent fill keeps the glyph")
	bg := bgAt(t, s, 0, 0)
	r, g, b := bg.RGB()
	assert.Greater(t, r, int32(0))
	assert.Less(t, r, int32(255))
	assert.Equal(t, r, g)
	assert.Equal(t, g, b)
}

func TestLineAndText(t *testing.T) {
	s := newSimScreen(t, 10, 3)
	surf := NewSurface(s, 8, 16)
	surf.Clear(black)

	surf.Line(0, 8, 79, 8, 1, red)
	surf.Text(16, 32, "hi", red)
	surf.Flush()

	for col := 0; col < 10; col++ {
		assert.Equal(t, '─', runeAt(s, col, 0))
	}
	assert.Equal(t, 'h', runeAt(s, 2, 2))
	assert.Equal(t, 'i', runeAt(s, 3, 2))
	assert.Equal(t, '│', lineRune(0, 10))
	assert.Equal(t, '╲', lineRune(10, 10))
	assert.Equal(t, '╱', lineRune(10, -10))
}

type runnerRig struct {
	screen tcell.SimulationScreen
	runner *Runner
	game   *engine.Game
	clock  *engine.MockTimeProvider
}

func newRunnerRig(t *testing.T) *runnerRig {
	t.Helper()
	s := newSimScreen(t, 80, 30)
	clock := engine.NewMockTimeProvider(time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC))
	g := engine.NewGame(engine.Options{
		Content: world.Default(),
		Time:    clock,
		Rand:    rand.New(rand.NewPCG(3, 4)),
	})
	r := NewRunner(s, g, render.NewDefaultRenderer(), Options{Time: clock})
	return &runnerRig{screen: s, runner: r, game: g, clock: clock}
}

func (rr *runnerRig) tick(n int) {
	for i := 0; i < n; i++ {
		rr.clock.Advance(constants.FrameUpdateInterval)
		rr.runner.Tick()
	}
}

func TestRunnerSetsViewport(t *testing.T) {
	rr := newRunnerRig(t)
	w, h := rr.game.Viewport()
	assert.Equal(t, 640.0, w)
	assert.Equal(t, 480.0, h)

	rr.screen.SetSize(100, 40)
	rr.runner.HandleEvent(tcell.NewEventResize(100, 40))
	w, h = rr.game.Viewport()
	assert.Equal(t, 800.0, w)
	assert.Equal(t, 640.0, h)
}

func TestRunnerFreshPressOutlastsRepeatDelay(t *testing.T) {
	rr := newRunnerRig(t)
	start := rr.game.Avatar().X

	rr.runner.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone))
	// 500ms repeat delay covers 31 frames of 16ms
	rr.tick(31)
	assert.Equal(t, start+31*constants.AvatarSpeed, rr.game.Avatar().X)

	rr.tick(5)
	assert.Equal(t, start+31*constants.AvatarSpeed, rr.game.Avatar().X, "released when no repeat arrives")
	assert.Equal(t, engine.DirE, rr.game.Avatar().Dir)
}

func TestRunnerRepeatExtendsHoldWindow(t *testing.T) {
	rr := newRunnerRig(t)
	start := rr.game.Avatar().X
	press := tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone)

	rr.runner.HandleEvent(press)
	rr.tick(20)
	// Repeat at 320ms sets a 150ms window: frames up to 464ms stay held
	rr.runner.HandleEvent(press)
	rr.tick(9)
	assert.Equal(t, start+29*constants.AvatarSpeed, rr.game.Avatar().X)

	rr.tick(5)
	assert.Equal(t, start+29*constants.AvatarSpeed, rr.game.Avatar().X, "released after the hold window")
}

func TestRunnerArrowKeys(t *testing.T) {
	rr := newRunnerRig(t)
	start := rr.game.Avatar().Y

	rr.runner.HandleEvent(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
	rr.tick(1)
	assert.Equal(t, start-constants.AvatarSpeed, rr.game.Avatar().Y)
	assert.Equal(t, engine.DirN, rr.game.Avatar().Dir)
}

func TestRunnerQuitKeys(t *testing.T) {
	rr := newRunnerRig(t)
	assert.False(t, rr.runner.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
	assert.False(t, rr.runner.HandleEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)))
	assert.True(t, rr.runner.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)))
}

func TestRunnerClickTravelsThroughGate(t *testing.T) {
	rr := newRunnerRig(t)

	// North gate at (1200,1020) is 180 units above the centered avatar:
	// screen (320, 60) which is cell (40, 3)
	click := tcell.NewEventMouse(40, 3, tcell.Button1, tcell.ModNone)
	rr.runner.HandleEvent(click)
	assert.Equal(t, world.ZoneNorth, rr.game.Zone())
	assert.Equal(t, 1020.0, rr.game.Avatar().Y)

	// Drag reports with the button still held are not new clicks
	before := rr.game.Avatar()
	rr.runner.HandleEvent(tcell.NewEventMouse(40, 3, tcell.Button1, tcell.ModNone))
	assert.Equal(t, before, rr.game.Avatar())
	rr.runner.HandleEvent(tcell.NewEventMouse(40, 3, tcell.ButtonNone, tcell.ModNone))
}

func TestRunnerFocusPauses(t *testing.T) {
	rr := newRunnerRig(t)
	rr.runner.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone))
	rr.runner.HandleEvent(tcell.NewEventFocus(false))
	assert.True(t, rr.game.Paused())

	before := rr.game.Avatar()
	rr.tick(3)
	assert.Equal(t, before, rr.game.Avatar())

	rr.runner.HandleEvent(tcell.NewEventFocus(true))
	assert.False(t, rr.game.Paused())
	rr.tick(1)
	assert.Equal(t, before, rr.game.Avatar(), "held keys are dropped on focus loss")
}

func TestRunnerDrawsFrame(t *testing.T) {
	rr := newRunnerRig(t)
	rr.tick(1)

	// Hint line starts with the zone label
	var got []rune
	for col := 1; col < 12; col++ {
		got = append(got, runeAt(rr.screen, col, 0))
	}
	assert.Equal(t, "Town Square", string(got))
}

func TestRunnerEscClosesPopup(t *testing.T) {
	rr := newRunnerRig(t)
	item, ok := rr.game.Content().Item("welcome")
	require.True(t, ok)

	// Walk diagonally toward the sign, repeating keys inside the hold window
	for i := 0; i < 4; i++ {
		rr.runner.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone))
		rr.runner.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone))
		rr.tick(5)
	}
	require.Less(t, rr.game.Avatar().Pos().Dist(item.Spawn()), constants.ItemProximityRadius)

	sx, sy := rr.game.Camera().WorldToScreen(item.X, item.Y)
	col, row := rr.runner.Surface().CellAt(sx, sy)
	rr.runner.HandleEvent(tcell.NewEventMouse(col, row, tcell.Button1, tcell.ModNone))
	require.True(t, rr.game.Collection().Has("welcome"))
	_, open := rr.game.Popup()
	require.True(t, open)

	rr.runner.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	_, open = rr.game.Popup()
	assert.False(t, open)
}
