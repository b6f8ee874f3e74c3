package constants

import "time"

// Frame Loop Timing Constants
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDelta caps the simulated time of a single frame so a stalled or
	// refocused frame cannot jump particle lifetimes
	MaxFrameDelta = 16 * time.Millisecond

	// EventQueueSize is the buffered capacity of the backend event channel
	EventQueueSize = 256
)

// Movement Constants
const (
	// AvatarSpeed is the distance covered per frame along the intent vector
	AvatarSpeed = 3.0

	// WorldEdgeMargin keeps the avatar this far from every world edge
	WorldEdgeMargin = 50.0
)

// World Constants
const (
	// MinTileSize is the smallest tile size content may declare; zero selects the default
	MinTileSize = 4.0
)

// Zone Constants
const (
	// HubRadius is the radius of the central disk classified as the center zone
	HubRadius = 150.0
)

// Interaction Constants
const (
	// ItemPickRadius is how close a click must land to an item spawn
	ItemPickRadius = 30.0

	// ItemProximityRadius is how close the avatar must stand to an item spawn
	ItemProximityRadius = 80.0
)

// Particle Constants
const (
	// BurstSize is the number of particles spawned per collection burst
	BurstSize = 20

	// BurstMinSpeed and BurstMaxSpeed bound the radial speed in units per tick
	BurstMinSpeed = 3.0
	BurstMaxSpeed = 5.0

	// BurstHueStep is the hue increment between consecutive burst particles
	BurstHueStep = 18.0

	// ParticleLifetime is the lifetime budget of a burst particle
	ParticleLifetime = 600 * time.Millisecond

	// ParticleTick is the simulation tick used to extrapolate particle motion
	ParticleTick = 16 * time.Millisecond

	// ParticleArenaSize is the slot count of the particle arena (eight bursts)
	ParticleArenaSize = BurstSize * 8

	// ParticleSize is the edge length of a drawn particle square
	ParticleSize = 4.0
)
