package world

import (
	"math"

	"github.com/lixenwraith/tilefolio/constants"
)

// Point is a position in world units
type Point struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
}

// Dist returns the Euclidean distance between two points
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Config holds the fixed dimensions of the world
type Config struct {
	Width    float64 `yaml:"width" json:"width"`
	Height   float64 `yaml:"height" json:"height"`
	Hub      Point   `yaml:"hub" json:"hub"`
	TileSize float64 `yaml:"tile_size" json:"tileSize"`
}

// Center returns the midpoint of the world rectangle
func (c Config) Center() Point {
	return Point{X: c.Width / 2, Y: c.Height / 2}
}

// Clamp keeps a position inside the world minus the edge margin
func (c Config) Clamp(x, y float64) (float64, float64) {
	m := constants.WorldEdgeMargin
	return clamp(x, m, c.Width-m), clamp(y, m, c.Height-m)
}

// Reachable reports whether a position lies inside the clamp area
func (c Config) Reachable(p Point) bool {
	m := constants.WorldEdgeMargin
	return p.X >= m && p.X <= c.Width-m && p.Y >= m && p.Y <= c.Height-m
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return (lo + hi) / 2
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Classify returns the zone containing p
// Inside HubRadius the zone is always center. Outside, the dominant axis of
// the offset from the hub decides; equal magnitudes resolve horizontally.
func Classify(p, hub Point) Zone {
	dx := p.X - hub.X
	dy := p.Y - hub.Y
	if math.Hypot(dx, dy) < constants.HubRadius {
		return ZoneCenter
	}
	if math.Abs(dx) >= math.Abs(dy) {
		if dx > 0 {
			return ZoneEast
		}
		return ZoneWest
	}
	if dy < 0 {
		return ZoneNorth
	}
	return ZoneSouth
}
