package object

import (
	"math"
	"math/rand"
	"sync"
)

// particlePool reuses Particle objects across explosions.
var particlePool = sync.Pool{
	New: func() any {
		return &Particle{}
	},
}

// Particle is a short-lived visual effect fragment.
type Particle struct {
	X, Y        float64
	VX, VY      float64
	Lifetime    float64 // Seconds remaining
	MaxLifetime float64
	Drag        float64 // Velocity kept per 1/60s step
	Symbol      rune
	Fade        bool
}

// NewParticle takes a particle from the pool and initializes it.
func NewParticle(x, y, vx, vy, lifetime float64, symbol rune) *Particle {
	p := particlePool.Get().(*Particle)
	p.X = x
	p.Y = y
	p.VX = vx
	p.VY = vy
	p.Lifetime = lifetime
	p.MaxLifetime = lifetime
	p.Drag = 0.95
	p.Symbol = symbol
	p.Fade = true
	return p
}

// Release returns the particle to the pool.
func (p *Particle) Release() {
	particlePool.Put(p)
}

// SpawnExplosion bursts particles outward in a circle.
func SpawnExplosion(x, y float64, count int, speed, lifetime float64, spawner Spawner, rng *rand.Rand) {
	if spawner == nil || rng == nil {
		return
	}

	symbols := []rune{'#', '@', '*', '%', 'X', 'O', '+'}
	for i := 0; i < count; i++ {
		angle := rng.Float64() * 2 * math.Pi
		spd := speed * (0.5 + rng.Float64())
		life := lifetime * (0.5 + rng.Float64()*0.5)

		p := NewParticle(x, y, math.Cos(angle)*spd, math.Sin(angle)*spd, life, symbols[rng.Intn(len(symbols))])
		spawner.Spawn(p)
	}
}

// SpawnThrust trails exhaust particles behind a thrusting ship.
func SpawnThrust(x, y, angle float64, spawner Spawner, rng *rand.Rand) {
	if spawner == nil || rng == nil {
		return
	}

	count := 1 + rng.Intn(2)
	symbols := []rune{'*', '+', '#', '^', '~'}
	for i := 0; i < count; i++ {
		exhaustAngle := angle + math.Pi + (rng.Float64()-0.5)*0.5
		speed := 8.0 + rng.Float64()*4.0
		lifetime := 0.1 + rng.Float64()*0.15

		p := NewParticle(x, y, math.Cos(exhaustAngle)*speed, math.Sin(exhaustAngle)*speed, lifetime, symbols[rng.Intn(len(symbols))])
		p.Drag = 0.85
		spawner.Spawn(p)
	}
}

// Update moves the particle and expires it.
func (p *Particle) Update(ctx UpdateContext) (bool, error) {
	dt := ctx.Delta.Seconds()

	p.Lifetime -= dt
	if p.Lifetime <= 0 {
		return true, nil
	}

	// Drag is tuned per 60Hz step
	keep := math.Pow(p.Drag, dt*60)
	p.VX *= keep
	p.VY *= keep

	p.X += p.VX * dt
	p.Y += p.VY * dt

	// Particles drift off the edge instead of wrapping

	return false, nil
}

// Draw renders the particle as a pixel, skipping the faded tail of its life.
func (p *Particle) Draw(ctx DrawContext) error {
	if p.Fade && p.MaxLifetime > 0 && p.Lifetime/p.MaxLifetime < 0.25 {
		return nil
	}
	ctx.Canvas.SetFloat(p.X, p.Y)
	return nil
}
