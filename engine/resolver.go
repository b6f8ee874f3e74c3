package engine

import (
	"github.com/lixenwraith/tilefolio/constants"
	"github.com/lixenwraith/tilefolio/world"
)

// OutcomeKind tags the result of resolving a click
type OutcomeKind uint8

const (
	OutcomeNone OutcomeKind = iota
	// OutcomeCollected is a first successful click on an item
	OutcomeCollected
	// OutcomeReopened is a click on an item that was already collected
	OutcomeReopened
	// OutcomeTraveled is a click on a gate
	OutcomeTraveled
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeCollected:
		return "collected"
	case OutcomeReopened:
		return "reopened"
	case OutcomeTraveled:
		return "traveled"
	default:
		return "none"
	}
}

// Outcome is the resolved target of a click
// Item is set for Collected and Reopened, Gate for Traveled.
type Outcome struct {
	Kind OutcomeKind
	Item world.Item
	Gate world.Gate
}

// Resolver maps screen clicks onto items and gates
type Resolver struct {
	content *world.Content
}

// NewResolver creates a resolver over the given content
func NewResolver(content *world.Content) Resolver {
	return Resolver{content: content}
}

// Resolve hit-tests a screen click
// Items are tested first in declaration order; an item needs both the click
// within ItemPickRadius and the avatar within ItemProximityRadius of its
// spawn. Gates are tested next by click distance alone. First match wins.
func (r Resolver) Resolve(sx, sy float64, cam Camera, avatar world.Point, collected *Collection) Outcome {
	if r.content == nil {
		return Outcome{}
	}
	wx, wy := cam.ScreenToWorld(sx, sy)
	click := world.Point{X: wx, Y: wy}

	for _, it := range r.content.Items {
		spawn := it.Spawn()
		if click.Dist(spawn) >= constants.ItemPickRadius {
			continue
		}
		if avatar.Dist(spawn) >= constants.ItemProximityRadius {
			continue
		}
		if collected != nil && collected.Has(it.ID) {
			return Outcome{Kind: OutcomeReopened, Item: it}
		}
		return Outcome{Kind: OutcomeCollected, Item: it}
	}

	for _, g := range r.content.Gates {
		if click.Dist(g.Pos()) < g.Radius {
			return Outcome{Kind: OutcomeTraveled, Gate: g}
		}
	}

	return Outcome{}
}
