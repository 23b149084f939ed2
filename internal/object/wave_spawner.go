package object

import "github.com/spacerocks/spacerocks/internal/physics"

// WaveSpawner refills the field with a fresh wave of large asteroids once
// the previous wave is cleared, ramping the count each time.
type WaveSpawner struct {
	initial      int     // Asteroids in the first wave
	max          int     // Wave size cap
	safeDistance float64 // Minimum spawn distance from the ship
	wave         int     // Waves spawned so far
}

// NewWaveSpawner creates a spawner. The first wave has initial asteroids;
// each following wave adds one, up to max.
func NewWaveSpawner(initial, max int, safeDistance float64) *WaveSpawner {
	if initial < 1 {
		initial = 1
	}
	if max < initial {
		max = initial
	}
	return &WaveSpawner{
		initial:      initial,
		max:          max,
		safeDistance: safeDistance,
	}
}

// Update spawns the next wave when no live asteroids remain.
func (s *WaveSpawner) Update(ctx UpdateContext) (bool, error) {
	if ctx.Spawner == nil || ctx.Rand == nil {
		return false, nil
	}

	for _, obj := range ctx.Objects {
		if a, ok := obj.(*Asteroid); ok && !a.Destroyed {
			return false, nil
		}
	}

	count := s.initial + s.wave
	if count > s.max {
		count = s.max
	}
	s.wave++

	shipX, shipY, hasShip := findShip(ctx.Objects)
	w := float64(ctx.Screen.Width)
	h := float64(ctx.Screen.Height)

	for i := 0; i < count; i++ {
		var x, y float64
		// Rejection-sample a position clear of the ship; bail out after a
		// few tries on small worlds.
		for try := 0; try < 20; try++ {
			x = ctx.Rand.Float64() * w
			y = ctx.Rand.Float64() * h
			if !hasShip || physics.Distance(x, y, shipX, shipY) > s.safeDistance {
				break
			}
		}
		ctx.Spawner.Spawn(NewAsteroid(ctx.Rand, x, y, TierLarge, -1))
	}

	return false, nil
}

// Wave returns how many waves have been spawned.
func (s *WaveSpawner) Wave() int {
	return s.wave
}

// Draw is a no-op; the spawner is not visible.
func (s *WaveSpawner) Draw(DrawContext) error {
	return nil
}

func findShip(objects []Object) (x, y float64, ok bool) {
	for _, obj := range objects {
		if ship, isShip := obj.(*Ship); isShip {
			return ship.X, ship.Y, true
		}
	}
	return 0, 0, false
}
