// Package object contains the game entities: ship, asteroids, projectiles
// and particles.
package object

import (
	"io"
	"math"
	"math/rand"
	"time"

	"github.com/spacerocks/spacerocks/internal/draw"
	"github.com/spacerocks/spacerocks/internal/input"
)

// Intent is an alias for the input package's intent record.
type Intent = input.Intent

// Spawner queues objects created during an update for insertion after the
// current cycle.
type Spawner interface {
	Spawn(obj Object)
}

// Events collects the frame's audio-relevant happenings. The game loop
// resets it before updating and triggers sound playback from it after.
type Events struct {
	Fired      bool // A projectile was fired this frame
	Explosions int  // Asteroids or ships destroyed this frame
	Thrusting  bool // The ship is under thrust this frame
}

// Reset clears all events for the next frame.
func (e *Events) Reset() {
	*e = Events{}
}

// UpdateContext carries everything an object needs during update.
type UpdateContext struct {
	Delta   time.Duration
	Input   Intent
	Screen  Screen
	Spawner Spawner
	Objects []Object
	Events  *Events
	Rand    *rand.Rand
}

// DrawContext provides drawing targets for objects.
type DrawContext struct {
	Canvas *draw.Canvas // High-resolution canvas for shapes
	Writer io.Writer    // Direct terminal output for text overlays
}

// Screen holds the logical world dimensions.
type Screen struct {
	Width  int
	Height int
}

// WrapPosition wraps coordinates around the world edges (toroidal
// topology). The result is always within [0, Width) x [0, Height).
func (s Screen) WrapPosition(x, y *float64) {
	w := float64(s.Width)
	h := float64(s.Height)

	if w > 0 {
		*x = math.Mod(*x, w)
		if *x < 0 {
			*x += w
		}
	}
	if h > 0 {
		*y = math.Mod(*y, h)
		if *y < 0 {
			*y += h
		}
	}
}

// Object is a drawable and updatable game entity.
type Object interface {
	// Update advances the object one frame. Returning true removes it.
	Update(ctx UpdateContext) (remove bool, err error)

	// Draw renders the object.
	Draw(ctx DrawContext) error
}

// Destructible is implemented by objects that can be marked for removal.
type Destructible interface {
	MarkDestroyed()
	IsDestroyed() bool
}

// Releasable is implemented by pooled objects.
type Releasable interface {
	Release()
}

// ReleaseObject returns an object to its pool if it is pooled.
func ReleaseObject(obj Object) {
	if r, ok := obj.(Releasable); ok {
		r.Release()
	}
}
