package object

import (
	"math/rand"
	"testing"
)

func TestAsteroidSplitYieldsTwoHalvedChildren(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	parent := NewAsteroid(rng, 60, 40, TierLarge, 1.0)
	parent.MarkDestroyed()

	spawner := &recordingSpawner{}
	ctx := testCtx(spawner, 1.0/60)
	remove, err := parent.Update(ctx)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !remove {
		t.Error("destroyed asteroid not removed")
	}

	children := spawner.asteroids()
	if len(children) != 2 {
		t.Fatalf("children = %d, want exactly 2", len(children))
	}
	for i, c := range children {
		if c.Radius != parent.Radius/2 {
			t.Errorf("child %d radius = %f, want %f", i, c.Radius, parent.Radius/2)
		}
		if c.Tier != TierMedium {
			t.Errorf("child %d tier = %d, want %d", i, c.Tier, TierMedium)
		}
		if c.X != parent.X || c.Y != parent.Y {
			t.Errorf("child %d spawned at (%f,%f), want parent position (%f,%f)", i, c.X, c.Y, parent.X, parent.Y)
		}
	}

	// Children diverge: their velocities differ from each other
	a, b := children[0], children[1]
	if a.VX == b.VX && a.VY == b.VY {
		t.Errorf("children share velocity (%f,%f)", a.VX, a.VY)
	}
}

func TestMinimumTierAsteroidSpawnsNoChildren(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	small := NewAsteroid(rng, 60, 40, TierSmall, 1.0)
	small.MarkDestroyed()

	spawner := &recordingSpawner{}
	remove, err := small.Update(testCtx(spawner, 1.0/60))
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !remove {
		t.Error("destroyed asteroid not removed")
	}
	if got := spawner.asteroids(); len(got) != 0 {
		t.Errorf("minimum-tier split produced %d children, want 0", len(got))
	}
}

func TestMediumSplitsIntoSmall(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	parent := NewAsteroid(rng, 10, 10, TierMedium, 2.0)
	parent.MarkDestroyed()

	spawner := &recordingSpawner{}
	parent.Update(testCtx(spawner, 1.0/60))

	children := spawner.asteroids()
	if len(children) != 2 {
		t.Fatalf("children = %d, want 2", len(children))
	}
	for _, c := range children {
		if c.Tier != TierSmall {
			t.Errorf("child tier = %d, want %d", c.Tier, TierSmall)
		}
		if c.Radius != 1.5 {
			t.Errorf("child radius = %f, want 1.5", c.Radius)
		}
	}
}

func TestAsteroidMoves(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	a := NewAsteroid(rng, 60, 40, TierLarge, 0) // Angle 0: moving right

	a.Update(testCtx(nil, 1.0))
	if a.X <= 60 {
		t.Errorf("X after 1s = %f, want > 60", a.X)
	}
	if a.Y != 40 {
		t.Errorf("Y after 1s = %f, want unchanged 40", a.Y)
	}
}

func TestDestroyedAsteroidSpawnsDebris(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	a := NewAsteroid(rng, 60, 40, TierLarge, 1.0)
	a.MarkDestroyed()

	spawner := &recordingSpawner{}
	a.Update(testCtx(spawner, 1.0/60))

	particles := 0
	for _, obj := range spawner.spawned {
		if _, ok := obj.(*Particle); ok {
			particles++
		}
	}
	if particles == 0 {
		t.Error("destroyed asteroid spawned no explosion particles")
	}
}
