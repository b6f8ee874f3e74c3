package render

import (
	"time"

	"github.com/lixenwraith/tilefolio/engine"
	"github.com/lixenwraith/tilefolio/panel"
	"github.com/lixenwraith/tilefolio/world"
)

// Context provides frame state for layers, passed by value
type Context struct {
	Now    time.Time
	Paused bool

	// Viewport in logical units
	Width  float64
	Height float64

	Camera  engine.Camera
	Avatar  engine.Avatar
	Zone    world.Zone
	Content *world.Content

	// Collected reports whether an item id has been collected, may be nil
	Collected func(id string) bool
	Particles *engine.ParticleArena

	Panel     panel.Panel
	Popup     world.Item
	PopupOpen bool

	Announcement    engine.Announcement
	HasAnnouncement bool
}

// NewContext captures the render state of g
func NewContext(g *engine.Game) Context {
	w, h := g.Viewport()
	popup, open := g.Popup()
	ann, hasAnn := g.Status().Latest()
	return Context{
		Now:             g.Now(),
		Paused:          g.Paused(),
		Width:           w,
		Height:          h,
		Camera:          g.Camera(),
		Avatar:          g.Avatar(),
		Zone:            g.Zone(),
		Content:         g.Content(),
		Collected:       g.Collection().Has,
		Particles:       g.Particles(),
		Panel:           g.Panel(),
		Popup:           popup,
		PopupOpen:       open,
		Announcement:    ann,
		HasAnnouncement: hasAnn,
	}
}

func (ctx Context) isCollected(id string) bool {
	return ctx.Collected != nil && ctx.Collected(id)
}

// zoneHue returns the theme hue of z, ok is false without a descriptor
func (ctx Context) zoneHue(z world.Zone) (float64, bool) {
	if ctx.Content == nil {
		return 0, false
	}
	zd, ok := ctx.Content.Zone(z)
	if !ok {
		return 0, false
	}
	return zd.Theme.Hue, true
}
