package engine

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/lixenwraith/tilefolio/constants"
)

// Particle is one slot of the burst arena
// Origin and velocity are in screen space; position is extrapolated at draw time.
type Particle struct {
	OX, OY    float64
	VX, VY    float64
	Hue       float64
	Remaining time.Duration
	Live      bool
}

// Age returns the time since spawn
func (p *Particle) Age() time.Duration {
	return constants.ParticleLifetime - p.Remaining
}

// Position extrapolates the particle from its origin by its age in ticks
func (p *Particle) Position() (float64, float64) {
	ticks := float64(p.Age()) / float64(constants.ParticleTick)
	return p.OX + p.VX*ticks, p.OY + p.VY*ticks
}

// Opacity fades linearly from 1 at spawn to 0 at expiry
func (p *Particle) Opacity() float64 {
	o := float64(p.Remaining) / float64(constants.ParticleLifetime)
	return math.Max(0, math.Min(1, o))
}

// ParticleArena owns a fixed set of particle slots
// Slots are reused in place; a full arena recycles the slot closest to expiry.
type ParticleArena struct {
	slots []Particle
	live  int
	rng   *rand.Rand
}

// NewParticleArena creates an arena with the given slot count
func NewParticleArena(size int, rng *rand.Rand) *ParticleArena {
	if size < constants.BurstSize {
		size = constants.BurstSize
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &ParticleArena{
		slots: make([]Particle, size),
		rng:   rng,
	}
}

// Burst spawns a ring of particles at a screen position
// Particle i leaves at angle i/N of a full turn with a random speed in
// [BurstMinSpeed, BurstMaxSpeed) and a hue stepped by BurstHueStep.
func (a *ParticleArena) Burst(sx, sy float64) {
	n := constants.BurstSize
	for i := 0; i < n; i++ {
		angle := float64(i) / float64(n) * 2 * math.Pi
		speed := constants.BurstMinSpeed + a.rng.Float64()*(constants.BurstMaxSpeed-constants.BurstMinSpeed)

		slot := a.acquire()
		*slot = Particle{
			OX:        sx,
			OY:        sy,
			VX:        math.Cos(angle) * speed,
			VY:        math.Sin(angle) * speed,
			Hue:       math.Mod(float64(i)*constants.BurstHueStep, 360),
			Remaining: constants.ParticleLifetime,
			Live:      true,
		}
	}
}

// acquire returns a free slot, or the live slot with the least remaining time
func (a *ParticleArena) acquire() *Particle {
	victim := -1
	for i := range a.slots {
		if !a.slots[i].Live {
			a.live++
			return &a.slots[i]
		}
		if victim < 0 || a.slots[i].Remaining < a.slots[victim].Remaining {
			victim = i
		}
	}
	return &a.slots[victim]
}

// Update ages every live particle by dt, capped at MaxFrameDelta
func (a *ParticleArena) Update(dt time.Duration) {
	if dt > constants.MaxFrameDelta {
		dt = constants.MaxFrameDelta
	}
	if dt <= 0 || a.live == 0 {
		return
	}
	for i := range a.slots {
		p := &a.slots[i]
		if !p.Live {
			continue
		}
		p.Remaining -= dt
		if p.Remaining <= 0 {
			p.Live = false
			a.live--
		}
	}
}

// Len returns the number of live particles
func (a *ParticleArena) Len() int {
	return a.live
}

// Each calls fn for every live particle
func (a *ParticleArena) Each(fn func(p *Particle)) {
	if a.live == 0 {
		return
	}
	for i := range a.slots {
		if a.slots[i].Live {
			fn(&a.slots[i])
		}
	}
}
