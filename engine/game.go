package engine

import (
	"io"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/lixenwraith/tilefolio/constants"
	"github.com/lixenwraith/tilefolio/input"
	"github.com/lixenwraith/tilefolio/panel"
	"github.com/lixenwraith/tilefolio/world"
)

// SoundPlayer receives audio cues for game events
type SoundPlayer interface {
	PlayCollect()
	PlayGate()
}

type silentSounds struct{}

func (silentSounds) PlayCollect() {}
func (silentSounds) PlayGate() {}

// Options configures a Game
type Options struct {
	Content *world.Content
	// Time defaults to the monotonic clock
	Time TimeProvider
	// Rand seeds particle speeds; nil uses a random seed
	Rand   *rand.Rand
	Sounds SoundPlayer
	Logger *slog.Logger
	// Snapshots receives a copy of the state after each frame, may be nil
	Snapshots *SnapshotStore
}

// Game owns the session state and runs one simulation frame at a time
// All methods must be called from the frame goroutine.
type Game struct {
	content   *world.Content
	avatar    Avatar
	zone      world.Zone
	collected *Collection
	particles *ParticleArena
	resolver  Resolver

	clock     *PausableClock
	lastFrame time.Time
	frame     int64

	viewW, viewH float64

	status    *StatusRegion
	popup     world.Item
	popupOpen bool

	sounds    SoundPlayer
	logger    *slog.Logger
	snapshots *SnapshotStore
}

// NewGame creates a session with the avatar at the world center
func NewGame(opts Options) *Game {
	if opts.Content == nil {
		opts.Content = world.Default()
	}
	if opts.Time == nil {
		opts.Time = NewMonotonicTimeProvider()
	}
	if opts.Sounds == nil {
		opts.Sounds = silentSounds{}
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	clock := NewPausableClock(opts.Time)
	g := &Game{
		content:   opts.Content,
		avatar:    NewAvatar(opts.Content.World),
		collected: NewCollection(),
		particles: NewParticleArena(constants.ParticleArenaSize, opts.Rand),
		resolver:  NewResolver(opts.Content),
		clock:     clock,
		lastFrame: clock.Now(),
		status:    NewStatusRegion(constants.AnnouncementHistory, clock, opts.Logger),
		sounds:    opts.Sounds,
		logger:    opts.Logger,
		snapshots: opts.Snapshots,
	}
	g.zone = world.Classify(g.avatar.Pos(), opts.Content.World.Hub)
	g.publish()
	return g
}

// SetViewport records the logical viewport size used by the camera
func (g *Game) SetViewport(w, h float64) {
	if w != g.viewW || h != g.viewH {
		g.logger.Debug("viewport", "width", w, "height", h)
	}
	g.viewW, g.viewH = w, h
}

// Viewport returns the logical viewport size
func (g *Game) Viewport() (float64, float64) {
	return g.viewW, g.viewH
}

// Frame advances the simulation by one animation frame
// Movement is per-frame; particle aging uses the clock delta capped at
// MaxFrameDelta. While paused the avatar holds still and particles freeze.
func (g *Game) Frame(keys input.Snapshot) {
	now := g.clock.Now()
	dt := now.Sub(g.lastFrame)
	g.lastFrame = now
	if dt < 0 {
		dt = 0
	}
	if dt > constants.MaxFrameDelta {
		dt = constants.MaxFrameDelta
	}

	if !g.clock.IsPaused() {
		g.avatar = Integrate(g.avatar, keys, g.content.World)
		g.syncZone()
	}
	g.particles.Update(dt)
	g.frame++
	g.publish()
}

// syncZone reclassifies the avatar and announces a zone change
func (g *Game) syncZone() bool {
	z := world.Classify(g.avatar.Pos(), g.content.World.Hub)
	if z == g.zone {
		return false
	}
	g.zone = z
	g.status.Announce("Entered " + g.zoneLabel(z))
	return true
}

func (g *Game) zoneLabel(z world.Zone) string {
	if zd, ok := g.content.Zone(z); ok {
		return zd.Label
	}
	return z.String()
}

// Click resolves a click at a screen position and applies its effect
func (g *Game) Click(sx, sy float64) Outcome {
	if g.viewW <= 0 || g.viewH <= 0 {
		return Outcome{}
	}

	out := g.resolver.Resolve(sx, sy, g.Camera(), g.avatar.Pos(), g.collected)
	switch out.Kind {
	case OutcomeCollected:
		g.collected.Collect(out.Item.ID)
		g.particles.Burst(sx, sy)
		g.status.Announce("Found " + out.Item.Name)
		g.sounds.PlayCollect()
		g.openPopup(out.Item)
		g.logger.Info("item collected", "id", out.Item.ID, "total", g.collected.Len())
	case OutcomeReopened:
		g.openPopup(out.Item)
	case OutcomeTraveled:
		g.avatar.X, g.avatar.Y = out.Gate.X, out.Gate.Y
		g.zone = world.Classify(g.avatar.Pos(), g.content.World.Hub)
		g.status.Announce("Traveled to " + g.zoneLabel(g.zone))
		g.sounds.PlayGate()
		g.logger.Info("gate", "zone", out.Gate.Zone, "x", out.Gate.X, "y", out.Gate.Y)
	}
	if out.Kind != OutcomeNone {
		g.publish()
	}
	return out
}

func (g *Game) openPopup(it world.Item) {
	g.popup = it
	g.popupOpen = true
}

// ClosePopup dismisses the item detail popup
func (g *Game) ClosePopup() {
	g.popupOpen = false
}

// Popup returns the item shown in the detail popup
func (g *Game) Popup() (world.Item, bool) {
	return g.popup, g.popupOpen
}

// Pause freezes game time, used when the backend loses focus
func (g *Game) Pause() {
	g.clock.Pause()
	g.publish()
}

// Resume restarts game time
func (g *Game) Resume() {
	g.clock.Resume()
	g.publish()
}

// Paused reports whether game time is frozen
func (g *Game) Paused() bool {
	return g.clock.IsPaused()
}

func (g *Game) Avatar() Avatar { return g.avatar }
func (g *Game) Zone() world.Zone { return g.zone }
func (g *Game) Content() *world.Content { return g.content }
func (g *Game) Particles() *ParticleArena { return g.particles }
func (g *Game) Status() *StatusRegion { return g.status }
func (g *Game) Collection() *Collection { return g.collected }
func (g *Game) FrameNumber() int64 { return g.frame }
func (g *Game) Now() time.Time { return g.clock.Now() }

// Camera returns the current camera for the viewport
func (g *Game) Camera() Camera {
	return CameraFor(g.avatar, g.viewW, g.viewH)
}

// Panel returns the overlay panel of the active zone
func (g *Game) Panel() panel.Panel {
	return panel.For(g.zone, g.content.Panels, g.collected.Has)
}

func (g *Game) publish() {
	if g.snapshots == nil {
		return
	}
	snap := &Snapshot{
		Frame:     g.frame,
		X:         g.avatar.X,
		Y:         g.avatar.Y,
		Dir:       g.avatar.Dir,
		Zone:      g.zone,
		Collected: g.collected.IDs(),
		Paused:    g.clock.IsPaused(),
	}
	if g.popupOpen {
		snap.Popup = g.popup.ID
	}
	g.snapshots.Publish(snap)
}
