package loop

import (
	"github.com/spacerocks/spacerocks/internal/object"
	"github.com/spacerocks/spacerocks/internal/physics"
)

// checkCollisions resolves all collision pairs for the frame:
// projectile-asteroid, asteroid-asteroid, then ship-asteroid.
func checkCollisions(w *World) {
	w.collectCollidables()

	checkProjectileAsteroidCollisions(w)
	checkAsteroidAsteroidCollisions(w)

	if w.Ship != nil && w.State == StatePlaying {
		checkShipCollisions(w)
	}
}

// collectCollidables gathers projectiles and asteroids into reused slices.
func (w *World) collectCollidables() {
	w.projectiles = w.projectiles[:0]
	w.asteroids = w.asteroids[:0]

	for _, obj := range w.Objects {
		switch o := obj.(type) {
		case *object.Projectile:
			w.projectiles = append(w.projectiles, o)
		case *object.Asteroid:
			w.asteroids = append(w.asteroids, o)
		}
	}
}

// checkProjectileAsteroidCollisions resolves projectile hits. A projectile
// is consumed by its first hit in iteration order, so one shot destroys at
// most one asteroid even when rocks overlap.
func checkProjectileAsteroidCollisions(w *World) {
	for _, p := range w.projectiles {
		if p.IsDestroyed() {
			continue
		}
		for _, a := range w.asteroids {
			if a.IsDestroyed() {
				continue
			}
			if physics.CirclesOverlap(p.X, p.Y, object.ProjectileRadius, a.X, a.Y, a.Radius) {
				p.MarkDestroyed()
				a.MarkDestroyed()
				w.Score += asteroidScore(a.Tier)
				w.Events.Explosions++
				break
			}
		}
	}
}

// asteroidScore returns the score for destroying an asteroid tier.
func asteroidScore(tier object.Tier) int {
	switch tier {
	case object.TierLarge:
		return ScoreLargeAsteroid
	case object.TierMedium:
		return ScoreMediumAsteroid
	case object.TierSmall:
		return ScoreSmallAsteroid
	default:
		return 0
	}
}

// checkAsteroidAsteroidCollisions bounces overlapping asteroids off each
// other. The spatial grid prunes the pair set to 3x3 neighborhoods.
func checkAsteroidAsteroidCollisions(w *World) {
	w.grid.Clear()
	for i, a := range w.asteroids {
		if !a.IsDestroyed() {
			w.grid.Insert(a.X, a.Y, i)
		}
	}

	for i, a1 := range w.asteroids {
		if a1.IsDestroyed() {
			continue
		}
		w.grid.QueryAround(a1.X, a1.Y, func(j int) bool {
			if j <= i {
				return false
			}
			a2 := w.asteroids[j]
			if a2.IsDestroyed() {
				return false
			}
			dist := physics.Distance(a1.X, a1.Y, a2.X, a2.Y)
			if dist < a1.Radius+a2.Radius && dist > 0 {
				bounceAsteroids(a1, a2, dist)
			}
			return false
		})
	}
}

// bounceAsteroids applies an elastic collision with area-based mass and
// separates the pair to stop re-collision next frame.
func bounceAsteroids(a1, a2 *object.Asteroid, dist float64) {
	nx := (a2.X - a1.X) / dist
	ny := (a2.Y - a1.Y) / dist

	dvx := a1.VX - a2.VX
	dvy := a1.VY - a2.VY
	dvn := dvx*nx + dvy*ny

	// Already separating
	if dvn < 0 {
		return
	}

	m1 := a1.Radius * a1.Radius
	m2 := a2.Radius * a2.Radius
	totalMass := m1 + m2

	impulse := 2 * dvn / totalMass
	a1.VX -= impulse * m2 * nx
	a1.VY -= impulse * m2 * ny
	a2.VX += impulse * m1 * nx
	a2.VY += impulse * m1 * ny

	overlap := (a1.Radius + a2.Radius) - dist
	if overlap > 0 {
		sep1 := overlap * m2 / totalMass
		sep2 := overlap * m1 / totalMass
		a1.X -= nx * sep1
		a1.Y -= ny * sep1
		a2.X += nx * sep2
		a2.Y += ny * sep2
	}
}

// checkShipCollisions destroys the ship on contact with a live asteroid
// and moves the game to the GameOver countdown.
func checkShipCollisions(w *World) {
	for _, a := range w.asteroids {
		if a.IsDestroyed() {
			continue
		}
		if physics.CirclesOverlap(w.Ship.X, w.Ship.Y, w.Ship.Radius, a.X, a.Y, a.Radius) {
			killShip(w)
			return
		}
	}
}

// killShip removes the ship, spawns its explosion, and starts the
// game-over restart countdown.
func killShip(w *World) {
	ship := w.Ship
	if ship == nil {
		return
	}

	object.SpawnExplosion(ship.X, ship.Y, 20, 25.0, 1.0, w, w.Rand)
	w.Events.Explosions++

	kept := w.Objects[:0]
	for _, obj := range w.Objects {
		if obj != object.Object(ship) {
			kept = append(kept, obj)
		}
	}
	w.Objects = kept
	w.FlushSpawned()

	w.Ship = nil
	w.State = StateGameOver
	w.RestartTimer = RestartCountdownSeconds
}
