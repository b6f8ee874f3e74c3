package render

// Layer is one stage of the draw pass
type Layer interface {
	Render(ctx Context, c *Canvas)
}

// VisibilityToggle is optionally implemented for runtime enable/disable
type VisibilityToggle interface {
	IsVisible() bool
}
