package object

import "math"

// ProjectileSpeed is the muzzle speed added to the shooter's velocity.
const ProjectileSpeed = 50.0

// ProjectileLifetime is how long a projectile lives, in seconds.
const ProjectileLifetime = 1.2

// ProjectileRadius is the projectile's collision radius.
const ProjectileRadius = 0.5

// Projectile is a laser bolt fired by the ship. It is consumed on its
// first hit or when its lifetime runs out.
type Projectile struct {
	X, Y      float64
	VX, VY    float64
	Lifetime  float64 // Seconds remaining
	destroyed bool
}

// NewProjectile creates a projectile at (x,y) heading along angle,
// inheriting the shooter's velocity.
func NewProjectile(x, y, angle, shooterVX, shooterVY float64) *Projectile {
	return &Projectile{
		X:        x,
		Y:        y,
		VX:       shooterVX + math.Cos(angle)*ProjectileSpeed,
		VY:       shooterVY + math.Sin(angle)*ProjectileSpeed,
		Lifetime: ProjectileLifetime,
	}
}

// MarkDestroyed consumes the projectile.
func (p *Projectile) MarkDestroyed() {
	p.destroyed = true
	p.Lifetime = 0
}

// IsDestroyed reports whether the projectile is spent.
func (p *Projectile) IsDestroyed() bool {
	return p.destroyed || p.Lifetime <= 0
}

// Update moves the projectile and decrements its lifetime.
func (p *Projectile) Update(ctx UpdateContext) (bool, error) {
	dt := ctx.Delta.Seconds()

	p.Lifetime -= dt
	if p.Lifetime <= 0 {
		return true, nil
	}

	p.X += p.VX * dt
	p.Y += p.VY * dt
	ctx.Screen.WrapPosition(&p.X, &p.Y)

	return false, nil
}

// Draw renders the projectile as a single pixel.
func (p *Projectile) Draw(ctx DrawContext) error {
	ctx.Canvas.SetFloat(p.X, p.Y)
	return nil
}
