package object

import (
	"math"
	"math/rand"

	"github.com/spacerocks/spacerocks/internal/draw"
)

// Tier is an asteroid size class. Above-minimum tiers split into two
// children of the next tier down when destroyed.
type Tier int

const (
	TierSmall  Tier = 1
	TierMedium Tier = 2
	TierLarge  Tier = 3
)

// Radii are chosen so halving is exact across the split chain: 6 -> 3 -> 1.5.
var tierRadii = map[Tier]float64{
	TierSmall:  1.5,
	TierMedium: 3.0,
	TierLarge:  6.0,
}

var tierSpeeds = map[Tier]float64{
	TierSmall:  15.0,
	TierMedium: 10.0,
	TierLarge:  6.0,
}

// Asteroid is a destructible space rock.
type Asteroid struct {
	X, Y          float64
	VX, VY        float64
	Angle         float64 // Current rotation
	RotationSpeed float64 // Radians/s
	Tier          Tier
	Radius        float64
	Vertices      []float64 // Vertex distances from center, for the jagged outline
	Destroyed     bool
}

// NewAsteroid creates an asteroid at (x,y) moving along the given angle at
// its tier's speed. A negative angle picks a random direction.
func NewAsteroid(rng *rand.Rand, x, y float64, tier Tier, angle float64) *Asteroid {
	radius := tierRadii[tier]
	speed := tierSpeeds[tier]

	if angle < 0 {
		angle = rng.Float64() * 2 * math.Pi
	}

	numVerts := 8 + rng.Intn(5)
	vertices := make([]float64, numVerts)
	for i := range vertices {
		// ±30% jitter for the classic irregular look
		vertices[i] = radius * (0.7 + rng.Float64()*0.6)
	}

	return &Asteroid{
		X:             x,
		Y:             y,
		VX:            math.Cos(angle) * speed,
		VY:            math.Sin(angle) * speed,
		Angle:         rng.Float64() * 2 * math.Pi,
		RotationSpeed: (rng.Float64() - 0.5) * 2.0,
		Tier:          tier,
		Radius:        radius,
		Vertices:      vertices,
	}
}

// Update moves and rotates the asteroid. A destroyed asteroid spawns its
// explosion debris and children, then removes itself.
func (a *Asteroid) Update(ctx UpdateContext) (bool, error) {
	if a.Destroyed {
		SpawnExplosion(a.X, a.Y, int(a.Tier)*4, 20.0, 0.5, ctx.Spawner, ctx.Rand)
		a.split(ctx)
		return true, nil
	}

	dt := ctx.Delta.Seconds()
	a.Angle += a.RotationSpeed * dt
	a.X += a.VX * dt
	a.Y += a.VY * dt
	ctx.Screen.WrapPosition(&a.X, &a.Y)

	return false, nil
}

// split spawns exactly two children at the parent's position with half the
// parent's radius and divergent velocities. Minimum-tier asteroids spawn
// nothing. Divergence policy: the children leave in roughly opposite
// directions around a random base angle.
func (a *Asteroid) split(ctx UpdateContext) {
	if a.Tier <= TierSmall || ctx.Spawner == nil || ctx.Rand == nil {
		return
	}

	base := ctx.Rand.Float64() * 2 * math.Pi
	jitter := (ctx.Rand.Float64() - 0.5) * math.Pi / 2

	for i := 0; i < 2; i++ {
		angle := base
		if i == 1 {
			angle += math.Pi + jitter
		}
		child := NewAsteroid(ctx.Rand, a.X, a.Y, a.Tier-1, angle)
		child.Radius = a.Radius / 2
		ctx.Spawner.Spawn(child)
	}
}

// Draw renders the asteroid as an irregular polygon outline.
func (a *Asteroid) Draw(ctx DrawContext) error {
	numVerts := len(a.Vertices)
	if numVerts < 3 {
		return nil
	}

	points := ctx.Canvas.BorrowPoints(numVerts)
	for i, dist := range a.Vertices {
		vertAngle := a.Angle + float64(i)*2*math.Pi/float64(numVerts)
		points[i] = draw.Point{
			X: a.X + math.Cos(vertAngle)*dist,
			Y: a.Y + math.Sin(vertAngle)*dist,
		}
	}
	ctx.Canvas.DrawPolygon(points, false)

	return nil
}

// MarkDestroyed marks the asteroid for removal and splitting.
func (a *Asteroid) MarkDestroyed() {
	a.Destroyed = true
}

// IsDestroyed reports whether the asteroid is marked for destruction.
func (a *Asteroid) IsDestroyed() bool {
	return a.Destroyed
}

// GetPosition returns the asteroid's center.
func (a *Asteroid) GetPosition() (float64, float64) {
	return a.X, a.Y
}

// GetRadius returns the asteroid's collision radius.
func (a *Asteroid) GetRadius() float64 {
	return a.Radius
}
