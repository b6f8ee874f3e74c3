package render

import (
	"image/color"
	"math"

	"github.com/lixenwraith/tilefolio/constants"
	"github.com/lixenwraith/tilefolio/engine"
	"github.com/lixenwraith/tilefolio/world"
)

// defaultSpacing is used when the world declares no tile size
const defaultSpacing = 80.0

// minSpacing bounds the per-frame draw count of every pattern
const minSpacing = 2 * constants.MinTileSize

// PatternFunc draws a decorative backdrop in screen space
// Output depends only on the zone, camera and viewport, never on time.
type PatternFunc func(c *Canvas, zone world.Zone, cam engine.Camera, w, h, spacing float64, col color.NRGBA)

var patterns = map[world.Pattern]PatternFunc{
	world.PatternDottedRects: drawDottedRects,
	world.PatternArcs:        drawArcs,
	world.PatternGrid:        drawGrid,
	world.PatternDots:        drawDots,
}

// DrawPattern draws pattern p, unknown patterns draw nothing
func DrawPattern(c *Canvas, p world.Pattern, zone world.Zone, cam engine.Camera, w, h, spacing float64, col color.NRGBA) {
	fn, ok := patterns[p]
	if !ok {
		return
	}
	switch {
	case spacing <= 0:
		spacing = defaultSpacing
	case spacing < minSpacing:
		spacing = minSpacing
	}
	fn(c, zone, cam, w, h, spacing, col)
}

// gridStart returns the first world-aligned grid line at or before the
// viewport edge, in screen space, and its cell index
func gridStart(offset, spacing float64) (float64, int) {
	first := math.Floor(offset / spacing)
	return first*spacing - offset, int(first)
}

func drawDottedRects(c *Canvas, _ world.Zone, cam engine.Camera, w, h, spacing float64, col color.NRGBA) {
	x0, _ := gridStart(cam.OffsetX, spacing)
	y0, _ := gridStart(cam.OffsetY, spacing)
	size := spacing / 8
	for y := y0; y < h+spacing; y += spacing {
		for x := x0; x < w+spacing; x += spacing {
			c.FillRect(x+spacing/2-size/2, y+spacing/2-size/2, size, size, col)
		}
	}
}

func drawArcs(c *Canvas, _ world.Zone, cam engine.Camera, w, h, spacing float64, col color.NRGBA) {
	step := spacing * 2
	x0, ix := gridStart(cam.OffsetX, step)
	y0, iy := gridStart(cam.OffsetY, step)
	for y, j := y0, iy; y < h+step; y, j = y+step, j+1 {
		for x, i := x0, ix; x < w+step; x, i = x+step, i+1 {
			// Alternate quarter orientation on a checkerboard
			start := 0.0
			if (i+j)%2 != 0 {
				start = math.Pi
			}
			c.Arc(x, y, step/2, start, start+math.Pi/2, 1, col)
		}
	}
}

func drawGrid(c *Canvas, _ world.Zone, cam engine.Camera, w, h, spacing float64, col color.NRGBA) {
	x0, _ := gridStart(cam.OffsetX, spacing)
	y0, _ := gridStart(cam.OffsetY, spacing)
	for x := x0; x < w; x += spacing {
		c.Line(x, 0, x, h, 1, col)
	}
	for y := y0; y < h; y += spacing {
		c.Line(0, y, w, y, 1, col)
	}
}

func drawDots(c *Canvas, zone world.Zone, cam engine.Camera, w, h, spacing float64, col color.NRGBA) {
	x0, ix := gridStart(cam.OffsetX, spacing)
	y0, iy := gridStart(cam.OffsetY, spacing)
	r := spacing / 20
	for y, j := y0, iy; y < h+spacing; y, j = y+spacing, j+1 {
		for x, i := x0, ix; x < w+spacing; x, i = x+spacing, i+1 {
			hsh := cellHash(i, j, uint64(zone))
			// Roughly one cell in three carries a dot
			if hsh%3 != 0 {
				continue
			}
			dx := float64((hsh>>8)%1000) / 1000 * spacing
			dy := float64((hsh>>24)%1000) / 1000 * spacing
			c.FillCircle(x+dx, y+dy, r, col)
		}
	}
}

// cellHash mixes grid coordinates with a seed (splitmix64 finalizer)
func cellHash(i, j int, seed uint64) uint64 {
	z := uint64(int64(i))*0x9e3779b97f4a7c15 ^ uint64(int64(j))*0xc2b2ae3d27d4eb4f ^ seed*0x165667b19e3779f9
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
