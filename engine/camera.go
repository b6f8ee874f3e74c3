package engine

// Camera is the translation that keeps the avatar centered in the viewport
// World objects are drawn at world - Offset; screen clicks map back by adding it.
type Camera struct {
	OffsetX, OffsetY float64
}

// CameraFor centers the viewport on the avatar
func CameraFor(a Avatar, viewW, viewH float64) Camera {
	return Camera{
		OffsetX: a.X - viewW/2,
		OffsetY: a.Y - viewH/2,
	}
}

// WorldToScreen applies the render-time translation
func (c Camera) WorldToScreen(wx, wy float64) (float64, float64) {
	return wx - c.OffsetX, wy - c.OffsetY
}

// ScreenToWorld inverts WorldToScreen
func (c Camera) ScreenToWorld(sx, sy float64) (float64, float64) {
	return sx + c.OffsetX, sy + c.OffsetY
}
