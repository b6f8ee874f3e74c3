package engine

import (
	"math"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/tilefolio/constants"
)

func newTestArena(size int) *ParticleArena {
	return NewParticleArena(size, rand.New(rand.NewPCG(1, 2)))
}

func TestBurstShape(t *testing.T) {
	a := newTestArena(constants.ParticleArenaSize)
	a.Burst(100, 50)
	require.Equal(t, constants.BurstSize, a.Len())

	i := 0
	a.Each(func(p *Particle) {
		assert.Equal(t, 100.0, p.OX)
		assert.Equal(t, 50.0, p.OY)
		assert.Equal(t, constants.ParticleLifetime, p.Remaining)
		assert.Equal(t, float64(i)*constants.BurstHueStep, p.Hue)

		speed := math.Hypot(p.VX, p.VY)
		assert.GreaterOrEqual(t, speed, constants.BurstMinSpeed-1e-9)
		assert.Less(t, speed, constants.BurstMaxSpeed)

		want := float64(i) / float64(constants.BurstSize) * 2 * math.Pi
		got := math.Atan2(p.VY, p.VX)
		if got < 0 {
			got += 2 * math.Pi
		}
		assert.InDelta(t, want, got, 1e-9)
		i++
	})
	assert.Equal(t, constants.BurstSize, i)
}

func TestParticlesExpireAfterLifetime(t *testing.T) {
	a := newTestArena(constants.ParticleArenaSize)
	a.Burst(0, 0)

	frame := constants.MaxFrameDelta
	frames := int(constants.ParticleLifetime / frame)
	for i := 0; i < frames; i++ {
		a.Update(frame)
	}
	// 37 frames of 16ms leave 8ms
	assert.Equal(t, constants.BurstSize, a.Len())

	a.Update(frame)
	assert.Equal(t, 0, a.Len())
	a.Each(func(*Particle) { t.Fatal("no live particle expected") })
}

func TestParticleUpdateCapsDelta(t *testing.T) {
	a := newTestArena(constants.ParticleArenaSize)
	a.Burst(0, 0)

	a.Update(time.Second)
	assert.Equal(t, constants.BurstSize, a.Len())
	a.Each(func(p *Particle) {
		assert.Equal(t, constants.ParticleLifetime-constants.MaxFrameDelta, p.Remaining)
	})
}

func TestParticlePositionAndOpacity(t *testing.T) {
	p := Particle{OX: 10, OY: 20, VX: 4, VY: -2, Remaining: constants.ParticleLifetime, Live: true}
	x, y := p.Position()
	assert.Equal(t, 10.0, x)
	assert.Equal(t, 20.0, y)
	assert.Equal(t, 1.0, p.Opacity())

	p.Remaining -= 10 * constants.ParticleTick
	x, y = p.Position()
	assert.InDelta(t, 50.0, x, 1e-9)
	assert.InDelta(t, 0.0, y, 1e-9)
	assert.InDelta(t, 440.0/600.0, p.Opacity(), 1e-9)
}

func TestArenaRecyclesOldestSlotWhenFull(t *testing.T) {
	a := newTestArena(constants.BurstSize)
	a.Burst(0, 0)
	a.Update(constants.MaxFrameDelta)

	a.Burst(5, 5)
	assert.Equal(t, constants.BurstSize, a.Len())
	a.Each(func(p *Particle) {
		assert.Equal(t, 5.0, p.OX)
		assert.Equal(t, constants.ParticleLifetime, p.Remaining)
	})
}
