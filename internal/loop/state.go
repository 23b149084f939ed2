package loop

import (
	"math/rand"
	"time"

	"github.com/spacerocks/spacerocks/internal/object"
	"github.com/spacerocks/spacerocks/internal/physics"
)

// GameState is the current game phase.
type GameState int

const (
	StatePlaying GameState = iota
	StatePaused
	StateGameOver
)

// String returns the phase name for logs.
func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// World owns all game state for one session. It is passed explicitly into
// every subsystem call; there are no process-wide singletons, so multiple
// SSH sessions each run their own world.
type World struct {
	Objects []object.Object
	toSpawn []object.Object

	Screen object.Screen
	Delta  time.Duration
	Input  object.Intent

	State        GameState
	Score        int
	RestartTimer float64 // Counts down while GameOver

	Ship   *object.Ship
	waves  *object.WaveSpawner
	Events object.Events
	Rand   *rand.Rand

	Running bool

	// Per-frame scratch, reused to avoid allocations.
	grid        *physics.SpatialGrid
	projectiles []*object.Projectile
	asteroids   []*object.Asteroid
	pauseHeld   bool
	restartHeld bool
}

// NewWorld creates an initialized world. The rng drives all gameplay
// randomness, so a seeded source gives reproducible sessions.
func NewWorld(rng *rand.Rand) *World {
	return &World{
		Screen:  object.Screen{Width: WorldWidth, Height: WorldHeight},
		State:   StatePlaying,
		Rand:    rng,
		Running: true,
		grid:    physics.NewSpatialGrid(WorldWidth, WorldHeight, collisionCellSize),
	}
}

// AddObject inserts an object immediately.
func (w *World) AddObject(obj object.Object) {
	w.Objects = append(w.Objects, obj)
}

// Spawn queues an object for insertion after the current update cycle.
// Implements object.Spawner.
func (w *World) Spawn(obj object.Object) {
	w.toSpawn = append(w.toSpawn, obj)
}

// FlushSpawned moves all queued objects into the world.
func (w *World) FlushSpawned() {
	w.Objects = append(w.Objects, w.toSpawn...)
	w.toSpawn = w.toSpawn[:0]
}

// UpdateContext builds the context objects receive this frame.
func (w *World) UpdateContext() object.UpdateContext {
	return object.UpdateContext{
		Delta:   w.Delta,
		Input:   w.Input,
		Screen:  w.Screen,
		Spawner: w,
		Objects: w.Objects,
		Events:  &w.Events,
		Rand:    w.Rand,
	}
}
