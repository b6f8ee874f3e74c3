package engine

import (
	"math"

	"github.com/lixenwraith/tilefolio/constants"
	"github.com/lixenwraith/tilefolio/input"
	"github.com/lixenwraith/tilefolio/world"
)

// Integrate advances the avatar by one frame of keyboard intent
// Diagonal intent is normalized so diagonal speed equals axis speed. The
// result is clamped inside the world edge margin.
func Integrate(prev Avatar, keys input.Snapshot, cfg world.Config) Avatar {
	vx, vy := keys.Intent()
	if vx != 0 && vy != 0 {
		vx /= math.Sqrt2
		vy /= math.Sqrt2
	}

	next := prev
	next.X, next.Y = cfg.Clamp(
		prev.X+vx*constants.AvatarSpeed,
		prev.Y+vy*constants.AvatarSpeed,
	)

	if vx != 0 || vy != 0 {
		next.VX, next.VY = vx, vy
	}
	next.Dir = facing(prev.Dir, vx, vy)
	return next
}

// facing picks E/W when horizontal motion dominates, N/S when there is any
// vertical motion otherwise, and keeps the previous facing when idle
// Equal diagonal magnitudes therefore face N/S.
func facing(prev Direction, vx, vy float64) Direction {
	switch {
	case math.Abs(vx) > math.Abs(vy):
		if vx > 0 {
			return DirE
		}
		return DirW
	case vy > 0:
		return DirS
	case vy < 0:
		return DirN
	default:
		return prev
	}
}
