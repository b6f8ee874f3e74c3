package render

import (
	"image/color"
	"math"
	"unicode/utf8"

	"github.com/lixenwraith/tilefolio/constants"
	"github.com/lixenwraith/tilefolio/engine"
	"github.com/lixenwraith/tilefolio/world"
)

// Avatar sprite geometry, relative to the avatar position
const (
	avatarHalfW  = 6.0
	headTop      = -12.0
	hairHeight   = 4.0
	headHeight   = 10.0
	shirtHeight  = 10.0
	shoesHeight  = 4.0
	itemBaseR    = 10.0
	itemRingR    = 15.0
	collectedDim = 0.35
	ringWidth    = 2.0
)

// BackgroundLayer fills the viewport with the active zone color
type BackgroundLayer struct{}

func (BackgroundLayer) Render(ctx Context, c *Canvas) {
	hue, ok := ctx.zoneHue(ctx.Zone)
	if !ok {
		return
	}
	c.FillRect(0, 0, ctx.Width, ctx.Height, ThemeBackground(hue))
}

// PatternLayer draws the active zone decoration
type PatternLayer struct{}

func (PatternLayer) Render(ctx Context, c *Canvas) {
	if ctx.Content == nil {
		return
	}
	zd, ok := ctx.Content.Zone(ctx.Zone)
	if !ok {
		return
	}
	DrawPattern(c, zd.Theme.Pattern, ctx.Zone, ctx.Camera, ctx.Width, ctx.Height,
		ctx.Content.World.TileSize*2, ThemePattern(zd.Theme.Hue))
}

// WorldLayer draws world-space objects under the camera translation
type WorldLayer struct{}

func (WorldLayer) Render(ctx Context, c *Canvas) {
	if ctx.Content == nil {
		return
	}
	c.Translate(-ctx.Camera.OffsetX, -ctx.Camera.OffsetY)

	hub := ctx.Content.World.Hub
	c.StrokeCircle(hub.X, hub.Y, constants.HubRadius, ringWidth, RgbHubRing)

	for _, g := range ctx.Content.Gates {
		drawGate(ctx, c, g)
	}
	for _, it := range ctx.Content.Items {
		drawItem(ctx, c, it)
	}
	drawAvatar(c, ctx.Avatar)
}

func drawGate(ctx Context, c *Canvas, g world.Gate) {
	zd, ok := ctx.Content.Zone(g.Zone)
	if !ok {
		return
	}
	c.FillCircle(g.X, g.Y, g.Radius, ThemeAccent(zd.Theme.Hue))
	r, _ := utf8.DecodeRuneInString(zd.Label)
	if r == utf8.RuneError {
		return
	}
	centerText(c, g.X, g.Y, string(r), RgbGateLabel)
}

func drawItem(ctx Context, c *Canvas, it world.Item) {
	hue, ok := ctx.zoneHue(it.Zone)
	if !ok {
		return
	}
	col := ThemeAccent(hue)
	glyph := RgbText
	if ctx.isCollected(it.ID) {
		col = WithAlpha(col, collectedDim)
		glyph = WithAlpha(glyph, collectedDim)
	} else {
		c.StrokeCircle(it.X, it.Y, itemRingR, ringWidth, RgbSelection)
	}
	c.FillCircle(it.X, it.Y, itemBaseR, col)
	centerText(c, it.X, it.Y, string(it.Glyph), glyph)
}

func drawAvatar(c *Canvas, a engine.Avatar) {
	left := a.X - avatarHalfW
	w := avatarHalfW * 2
	y := a.Y + headTop

	c.FillRect(left, y, w, headHeight, RgbAvatarSkin)
	c.FillRect(left, y, w, hairHeight, RgbAvatarHair)
	y += headHeight
	c.FillRect(left, y, w, shirtHeight, RgbAvatarShirt)
	y += shirtHeight
	c.FillRect(left, y, w, shoesHeight, RgbAvatarShoes)

	fx, fy := facingPoint(a)
	c.FillRect(fx, fy, 1, 1, RgbFacing)
}

// facingPoint returns the one-unit indicator position just outside the head
func facingPoint(a engine.Avatar) (float64, float64) {
	eyeY := a.Y + headTop + hairHeight + 2
	switch a.Dir {
	case engine.DirN:
		return a.X, a.Y + headTop - 1
	case engine.DirE:
		return a.X + avatarHalfW, eyeY
	case engine.DirW:
		return a.X - avatarHalfW - 1, eyeY
	default:
		return a.X, a.Y + headTop + headHeight - 1
	}
}

// ParticleLayer draws live particles in screen space
type ParticleLayer struct{}

func (ParticleLayer) Render(ctx Context, c *Canvas) {
	if ctx.Particles == nil {
		return
	}
	half := constants.ParticleSize / 2
	ctx.Particles.Each(func(p *engine.Particle) {
		x, y := p.Position()
		col := WithAlpha(HSL(math.Mod(p.Hue, 360), 0.9, 0.6, 255), p.Opacity())
		c.FillRect(x-half, y-half, constants.ParticleSize, constants.ParticleSize, col)
	})
}

// centerText draws s centered on (x, y) assuming fixed-width cells
func centerText(c *Canvas, x, y float64, s string, col color.NRGBA) {
	n := float64(utf8.RuneCountInString(s))
	c.Text(x-n*constants.CellWidth/2, y-constants.TextLineHeight/2, s, col)
}
