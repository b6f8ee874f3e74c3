package render

import "slices"

type layerEntry struct {
	layer    Layer
	priority RenderPriority
}

// Renderer runs registered layers in priority order
type Renderer struct {
	layers []layerEntry
}

// NewRenderer creates an empty renderer
func NewRenderer() *Renderer {
	return &Renderer{layers: make([]layerEntry, 0, 8)}
}

// NewDefaultRenderer registers the standard layer stack
func NewDefaultRenderer() *Renderer {
	r := NewRenderer()
	r.Register(BackgroundLayer{}, PriorityBackground)
	r.Register(PatternLayer{}, PriorityPattern)
	r.Register(WorldLayer{}, PriorityWorld)
	r.Register(ParticleLayer{}, PriorityParticle)
	r.Register(&OverlayLayer{Visible: true}, PriorityOverlay)
	return r
}

// Register queues l to draw at priority; equal priorities draw in registration order
func (r *Renderer) Register(l Layer, priority RenderPriority) {
	pos := slices.IndexFunc(r.layers, func(e layerEntry) bool { return e.priority > priority })
	if pos < 0 {
		pos = len(r.layers)
	}
	r.layers = slices.Insert(r.layers, pos, layerEntry{layer: l, priority: priority})
}

// RenderFrame clears the surface and draws all visible layers
// A zero-size viewport skips the frame.
func (r *Renderer) RenderFrame(ctx Context, s Surface) {
	if ctx.Width <= 0 || ctx.Height <= 0 {
		return
	}
	c := NewCanvas(s)
	c.Clear(RgbVoid)

	for _, entry := range r.layers {
		if vt, ok := entry.layer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		c.Save()
		entry.layer.Render(ctx, c)
		c.Restore()
	}
}
