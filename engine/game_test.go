package engine

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/tilefolio/constants"
	"github.com/lixenwraith/tilefolio/input"
	"github.com/lixenwraith/tilefolio/panel"
	"github.com/lixenwraith/tilefolio/world"
)

type countingSounds struct {
	collects, gates int
}

func (c *countingSounds) PlayCollect() { c.collects++ }
func (c *countingSounds) PlayGate() { c.gates++ }

type testRig struct {
	game   *Game
	clock  *MockTimeProvider
	sounds *countingSounds
	snaps  *SnapshotStore
}

func newTestRig(t *testing.T) *testRig {
	t.Helper()
	clock := NewMockTimeProvider(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	sounds := &countingSounds{}
	snaps := &SnapshotStore{}
	g := NewGame(Options{
		Content:   world.Default(),
		Time:      clock,
		Rand:      rand.New(rand.NewPCG(7, 11)),
		Sounds:    sounds,
		Snapshots: snaps,
	})
	g.SetViewport(640, 480)
	return &testRig{game: g, clock: clock, sounds: sounds, snaps: snaps}
}

// step runs n frames of 16ms each
func (r *testRig) step(n int, keys input.Snapshot) {
	for i := 0; i < n; i++ {
		r.clock.Advance(constants.FrameUpdateInterval)
		r.game.Frame(keys)
	}
}

func (r *testRig) screenOf(p world.Point) (float64, float64) {
	return r.game.Camera().WorldToScreen(p.X, p.Y)
}

func TestNewGameStartsAtCenter(t *testing.T) {
	r := newTestRig(t)
	a := r.game.Avatar()
	assert.Equal(t, 1200.0, a.X)
	assert.Equal(t, 1200.0, a.Y)
	assert.Equal(t, world.ZoneCenter, r.game.Zone())

	_, ok := r.game.Status().Latest()
	assert.False(t, ok, "no announcement before the first transition")

	snap := r.snaps.Load()
	require.NotNil(t, snap)
	assert.Equal(t, world.ZoneCenter, snap.Zone)
}

func TestWalkingAnnouncesZoneOnce(t *testing.T) {
	r := newTestRig(t)

	// 50 frames at 3 units reaches the hub radius exactly
	r.step(49, keys(input.KeyDown))
	assert.Equal(t, world.ZoneCenter, r.game.Zone())

	r.step(20, keys(input.KeyDown))
	assert.Equal(t, world.ZoneSouth, r.game.Zone())

	recent := r.game.Status().Recent()
	require.Len(t, recent, 1)
	assert.Equal(t, "Entered The Gallery", recent[0].Text)

	// Zone stays a function of position when walking back
	r.step(40, keys(input.KeyUp))
	assert.Equal(t, world.ZoneCenter, r.game.Zone())
	assert.Equal(t, world.Classify(r.game.Avatar().Pos(), world.Point{X: 1200, Y: 1200}), r.game.Zone())
	assert.Len(t, r.game.Status().Recent(), 2)
}

func TestCollectIsIdempotent(t *testing.T) {
	r := newTestRig(t)
	item, ok := r.game.Content().Item("welcome")
	require.True(t, ok)

	r.game.avatar.X, r.game.avatar.Y = item.X+40, item.Y
	sx, sy := r.screenOf(item.Spawn())

	out := r.game.Click(sx, sy)
	assert.Equal(t, OutcomeCollected, out.Kind)
	assert.Equal(t, "welcome", out.Item.ID)
	assert.True(t, r.game.Collection().Has("welcome"))
	assert.Equal(t, constants.BurstSize, r.game.Particles().Len())
	assert.Equal(t, 1, r.sounds.collects)
	latest, _ := r.game.Status().Latest()
	assert.Equal(t, "Found Welcome Sign", latest.Text)

	popup, open := r.game.Popup()
	require.True(t, open)
	assert.Equal(t, "welcome", popup.ID)

	r.game.ClosePopup()
	_, open = r.game.Popup()
	assert.False(t, open)

	out = r.game.Click(sx, sy)
	assert.Equal(t, OutcomeReopened, out.Kind)
	assert.Equal(t, constants.BurstSize, r.game.Particles().Len(), "no second burst")
	assert.Equal(t, 1, r.sounds.collects)
	assert.Len(t, r.game.Status().Recent(), 1, "no second announcement")
	_, open = r.game.Popup()
	assert.True(t, open, "popup reopens")

	assert.True(t, r.snaps.Load().Has("welcome"))
}

func TestCollectRequiresProximity(t *testing.T) {
	r := newTestRig(t)
	item, _ := r.game.Content().Item("welcome")

	// Avatar at hub is about 114 units from the item
	sx, sy := r.screenOf(item.Spawn())
	out := r.game.Click(sx, sy)
	assert.Equal(t, OutcomeNone, out.Kind)
	assert.False(t, r.game.Collection().Has("welcome"))
	assert.Equal(t, 0, r.game.Particles().Len())
}

func TestCollectRequiresPickRadius(t *testing.T) {
	r := newTestRig(t)
	item, _ := r.game.Content().Item("welcome")
	r.game.avatar.X, r.game.avatar.Y = item.X, item.Y+20

	sx, sy := r.screenOf(item.Spawn())
	out := r.game.Click(sx+constants.ItemPickRadius, sy)
	assert.Equal(t, OutcomeNone, out.Kind)

	out = r.game.Click(sx+constants.ItemPickRadius-1, sy)
	assert.Equal(t, OutcomeCollected, out.Kind)
}

func TestGateTeleportIsExact(t *testing.T) {
	r := newTestRig(t)
	var north world.Gate
	for _, g := range r.game.Content().Gates {
		if g.Zone == world.ZoneNorth {
			north = g
		}
	}
	require.NotZero(t, north.Radius)

	sx, sy := r.screenOf(north.Pos())
	out := r.game.Click(sx+5, sy+7)
	require.Equal(t, OutcomeTraveled, out.Kind)

	a := r.game.Avatar()
	assert.Equal(t, north.X, a.X)
	assert.Equal(t, north.Y, a.Y)
	assert.Equal(t, world.ZoneNorth, r.game.Zone())
	assert.Equal(t, 1, r.sounds.gates)

	latest, _ := r.game.Status().Latest()
	assert.Equal(t, "Traveled to The Archive", latest.Text)

	// The next frame sees no transition and stays quiet
	r.step(1, input.Snapshot{})
	assert.Len(t, r.game.Status().Recent(), 1)
	_, ok := r.game.Panel().(panel.Archive)
	assert.True(t, ok)
}

func TestClickOutsideTargetsIsNoop(t *testing.T) {
	r := newTestRig(t)
	before := r.game.Avatar()

	out := r.game.Click(2, 2)
	assert.Equal(t, OutcomeNone, out.Kind)
	assert.Equal(t, before, r.game.Avatar())
	_, ok := r.game.Status().Latest()
	assert.False(t, ok)
}

func TestClickWithoutViewportIsNoop(t *testing.T) {
	r := newTestRig(t)
	r.game.SetViewport(0, 0)
	assert.Equal(t, OutcomeNone, r.game.Click(320, 60).Kind)
}

func TestPausedGameFreezes(t *testing.T) {
	r := newTestRig(t)
	item, _ := r.game.Content().Item("welcome")
	r.game.avatar.X, r.game.avatar.Y = item.X, item.Y
	sx, sy := r.screenOf(item.Spawn())
	r.game.Click(sx, sy)

	r.game.Pause()
	before := r.game.Avatar()
	r.clock.Advance(5 * time.Second)
	r.step(10, keys(input.KeyRight))

	assert.Equal(t, before, r.game.Avatar())
	assert.Equal(t, constants.BurstSize, r.game.Particles().Len())
	assert.True(t, r.snaps.Load().Paused)

	r.game.Resume()
	r.step(1, keys(input.KeyRight))
	assert.Equal(t, before.X+constants.AvatarSpeed, r.game.Avatar().X)
}

func TestParticlesClearAfterLifetime(t *testing.T) {
	r := newTestRig(t)
	item, _ := r.game.Content().Item("welcome")
	r.game.avatar.X, r.game.avatar.Y = item.X, item.Y
	sx, sy := r.screenOf(item.Spawn())
	r.game.Click(sx, sy)

	r.step(37, input.Snapshot{})
	assert.Equal(t, constants.BurstSize, r.game.Particles().Len())
	r.step(1, input.Snapshot{})
	assert.Equal(t, 0, r.game.Particles().Len())
}
