package render

import (
	"image/color"
	"math"
)

// arcSegments is the number of line segments in a full circle
const arcSegments = 32

type offset struct {
	x, y float64
}

// Canvas wraps a Surface with a translation stack and derived shapes
type Canvas struct {
	surface Surface
	origin  offset
	stack   []offset
}

// NewCanvas creates a canvas drawing onto s
func NewCanvas(s Surface) *Canvas {
	return &Canvas{surface: s, stack: make([]offset, 0, 4)}
}

// Surface returns the wrapped backend
func (c *Canvas) Surface() Surface {
	return c.surface
}

func (c *Canvas) Size() (float64, float64) {
	return c.surface.Size()
}

// Save pushes the current translation
func (c *Canvas) Save() {
	c.stack = append(c.stack, c.origin)
}

// Restore pops the last saved translation, no-op on an empty stack
func (c *Canvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.origin = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

// Translate shifts the origin for subsequent draws
func (c *Canvas) Translate(dx, dy float64) {
	c.origin.x += dx
	c.origin.y += dy
}

// Origin returns the accumulated translation
func (c *Canvas) Origin() (float64, float64) {
	return c.origin.x, c.origin.y
}

func (c *Canvas) Clear(col color.NRGBA) {
	c.surface.Clear(col)
}

func (c *Canvas) FillRect(x, y, w, h float64, col color.NRGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	c.surface.FillRect(x+c.origin.x, y+c.origin.y, w, h, col)
}

func (c *Canvas) FillCircle(cx, cy, r float64, col color.NRGBA) {
	if r <= 0 {
		return
	}
	c.surface.FillCircle(cx+c.origin.x, cy+c.origin.y, r, col)
}

func (c *Canvas) Line(x1, y1, x2, y2, width float64, col color.NRGBA) {
	c.surface.Line(x1+c.origin.x, y1+c.origin.y, x2+c.origin.x, y2+c.origin.y, width, col)
}

func (c *Canvas) Text(x, y float64, s string, col color.NRGBA) {
	if s == "" {
		return
	}
	c.surface.Text(x+c.origin.x, y+c.origin.y, s, col)
}

// Arc strokes the circle segment from start to end radians, clockwise in
// screen space since y grows downward
func (c *Canvas) Arc(cx, cy, r, start, end, width float64, col color.NRGBA) {
	if r <= 0 || end <= start {
		return
	}
	n := int(math.Ceil((end - start) / (2 * math.Pi) * arcSegments))
	if n < 1 {
		n = 1
	}
	step := (end - start) / float64(n)
	px, py := cx+r*math.Cos(start), cy+r*math.Sin(start)
	for i := 1; i <= n; i++ {
		a := start + step*float64(i)
		x, y := cx+r*math.Cos(a), cy+r*math.Sin(a)
		c.Line(px, py, x, y, width, col)
		px, py = x, y
	}
}

// StrokeCircle outlines a full circle
func (c *Canvas) StrokeCircle(cx, cy, r, width float64, col color.NRGBA) {
	c.Arc(cx, cy, r, 0, 2*math.Pi, width, col)
}

// StrokeRect outlines a rectangle
func (c *Canvas) StrokeRect(x, y, w, h, width float64, col color.NRGBA) {
	c.Line(x, y, x+w, y, width, col)
	c.Line(x+w, y, x+w, y+h, width, col)
	c.Line(x+w, y+h, x, y+h, width, col)
	c.Line(x, y+h, x, y, width, col)
}
