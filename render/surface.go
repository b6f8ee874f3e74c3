package render

import "image/color"

// Surface is a backend drawing target measured in logical world units
// Backends map units onto their own resolution: character cells for the
// terminal, device pixels for the window.
type Surface interface {
	// Size returns the logical viewport size
	Size() (w, h float64)
	Clear(c color.NRGBA)
	FillRect(x, y, w, h float64, c color.NRGBA)
	FillCircle(cx, cy, r float64, c color.NRGBA)
	Line(x1, y1, x2, y2, width float64, c color.NRGBA)
	// Text draws s with its top-left corner at (x, y)
	Text(x, y float64, s string, c color.NRGBA)
}
