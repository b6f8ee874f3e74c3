package window

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/tilefolio/constants"
	"github.com/lixenwraith/tilefolio/engine"
	"github.com/lixenwraith/tilefolio/input"
	"github.com/lixenwraith/tilefolio/render"
	"github.com/lixenwraith/tilefolio/world"
)

type fakeSampler struct {
	pressed [len(input.Keys)]bool
	clicks  [][2]float64
	escape  bool
	quit    bool
	focused bool
}

func (f *fakeSampler) Pressed(k input.Key) bool { return f.pressed[k] }
func (f *fakeSampler) Escape() bool { return f.escape }
func (f *fakeSampler) Quit() bool { return f.quit }
func (f *fakeSampler) Focused() bool { return f.focused }

func (f *fakeSampler) Clicks() [][2]float64 {
	c := f.clicks
	f.clicks = nil
	return c
}

type windowRig struct {
	win     *Window
	game    *engine.Game
	sampler *fakeSampler
	clock   *engine.MockTimeProvider
	cancel  context.CancelFunc
}

func newWindowRig(t *testing.T, scale float64) *windowRig {
	t.Helper()
	clock := engine.NewMockTimeProvider(time.Date(2026, 4, 4, 0, 0, 0, 0, time.UTC))
	g := engine.NewGame(engine.Options{
		Content: world.Default(),
		Time:    clock,
		Rand:    rand.New(rand.NewPCG(5, 6)),
	})
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	s := &fakeSampler{focused: true}
	w := New(ctx, g, render.NewDefaultRenderer(), Options{
		ScaleFactor: func() float64 { return scale },
		Sampler:     s,
	})
	w.LayoutF(640, 480)
	return &windowRig{win: w, game: g, sampler: s, clock: clock, cancel: cancel}
}

func (r *windowRig) update(t *testing.T) {
	t.Helper()
	r.clock.Advance(constants.FrameUpdateInterval)
	require.NoError(t, r.win.Update())
}

func TestLayoutScalesByDevice(t *testing.T) {
	r := newWindowRig(t, 2)
	w, h := r.win.LayoutF(800, 600)
	assert.Equal(t, 1600.0, w)
	assert.Equal(t, 1200.0, h)

	vw, vh := r.game.Viewport()
	assert.Equal(t, 800.0, vw, "logical viewport stays in window points")
	assert.Equal(t, 600.0, vh)

	iw, ih := r.win.Layout(801, 601)
	assert.Equal(t, 1602, iw)
	assert.Equal(t, 1202, ih)
}

func TestUpdateFollowsRealKeyState(t *testing.T) {
	r := newWindowRig(t, 1)
	start := r.game.Avatar().X

	r.sampler.pressed[input.KeyRight] = true
	r.update(t)
	r.update(t)
	assert.Equal(t, start+2*constants.AvatarSpeed, r.game.Avatar().X)

	r.sampler.pressed[input.KeyRight] = false
	r.update(t)
	assert.Equal(t, start+2*constants.AvatarSpeed, r.game.Avatar().X, "key-up stops movement at once")
}

func TestClickUsesLogicalUnits(t *testing.T) {
	r := newWindowRig(t, 2)

	// North gate sits 180 units above the centered avatar at (320, 60)
	r.sampler.clicks = [][2]float64{{640, 120}}
	r.update(t)
	assert.Equal(t, world.ZoneNorth, r.game.Zone())
	assert.Equal(t, 1020.0, r.game.Avatar().Y)
}

func TestFocusLossPauses(t *testing.T) {
	r := newWindowRig(t, 1)
	r.sampler.pressed[input.KeyDown] = true
	r.sampler.focused = false
	r.update(t)
	assert.True(t, r.game.Paused())
	before := r.game.Avatar()
	r.update(t)
	assert.Equal(t, before, r.game.Avatar())

	r.sampler.focused = true
	r.update(t)
	assert.False(t, r.game.Paused())
	assert.Greater(t, r.game.Avatar().Y, before.Y)
}

func TestEscapeClosesPopup(t *testing.T) {
	r := newWindowRig(t, 1)
	r.sampler.escape = true
	r.update(t)
	_, open := r.game.Popup()
	assert.False(t, open)
}

func TestTermination(t *testing.T) {
	r := newWindowRig(t, 1)
	r.sampler.quit = true
	assert.ErrorIs(t, r.win.Update(), ebiten.Termination)

	r = newWindowRig(t, 1)
	r.cancel()
	assert.ErrorIs(t, r.win.Update(), ebiten.Termination)
	assert.Equal(t, int64(0), r.game.FrameNumber(), "no frames after teardown")
}
