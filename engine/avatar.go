package engine

import "github.com/lixenwraith/tilefolio/world"

// Direction is the avatar facing
type Direction uint8

const (
	DirS Direction = iota
	DirN
	DirE
	DirW
)

func (d Direction) String() string {
	switch d {
	case DirN:
		return "N"
	case DirE:
		return "E"
	case DirW:
		return "W"
	default:
		return "S"
	}
}

func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Avatar is the visitor's position, last movement intent and facing
type Avatar struct {
	X, Y   float64
	VX, VY float64
	Dir    Direction
}

// NewAvatar places an avatar at the world center facing south
func NewAvatar(cfg world.Config) Avatar {
	c := cfg.Center()
	return Avatar{X: c.X, Y: c.Y, Dir: DirS}
}

// Pos returns the avatar position as a world point
func (a Avatar) Pos() world.Point {
	return world.Point{X: a.X, Y: a.Y}
}
