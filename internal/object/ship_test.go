package object

import (
	"math"
	"testing"
)

func TestShipFiresProjectileFromNose(t *testing.T) {
	spawner := &recordingSpawner{}
	ship := NewShip(60, 40)
	ship.Angle = 0 // Pointing right

	ctx := testCtx(spawner, 1.0/60)
	ctx.Input = Intent{Fire: true}
	ship.Update(ctx)

	projectiles := spawner.projectiles()
	if len(projectiles) != 1 {
		t.Fatalf("projectiles spawned = %d, want 1", len(projectiles))
	}
	p := projectiles[0]
	if p.X <= ship.X {
		t.Errorf("projectile spawned at x=%f, want ahead of ship x=%f", p.X, ship.X)
	}
	if p.VX <= 0 {
		t.Errorf("projectile VX = %f, want positive (ship points right)", p.VX)
	}
	if !ctx.Events.Fired {
		t.Error("Events.Fired not set after firing")
	}
}

// A shot 0.05s after the last one with a 0.2s cooldown must not fire.
func TestShipFireCooldown(t *testing.T) {
	spawner := &recordingSpawner{}
	ship := NewShip(60, 40)
	ship.FireRate = 0.2

	ctx := testCtx(spawner, 1.0/60)
	ctx.Input = Intent{Fire: true}
	ship.Update(ctx)
	if len(spawner.projectiles()) != 1 {
		t.Fatalf("first shot: projectiles = %d, want 1", len(spawner.projectiles()))
	}

	// 0.05s later the cooldown is still active
	ctx = testCtx(spawner, 0.05)
	ctx.Input = Intent{Fire: true}
	ship.Update(ctx)
	if len(spawner.projectiles()) != 1 {
		t.Errorf("shot during cooldown: projectiles = %d, want still 1", len(spawner.projectiles()))
	}

	// After the cooldown elapses, firing works again
	ctx = testCtx(spawner, 0.2)
	ctx.Input = Intent{Fire: true}
	ship.Update(ctx)
	if len(spawner.projectiles()) != 2 {
		t.Errorf("shot after cooldown: projectiles = %d, want 2", len(spawner.projectiles()))
	}
}

func TestShipThrustAccelerates(t *testing.T) {
	ship := NewShip(60, 40)
	ship.Angle = 0

	ctx := testCtx(&recordingSpawner{}, 1.0/60)
	ctx.Input = Intent{Thrust: true}
	ship.Update(ctx)

	if ship.VX <= 0 {
		t.Errorf("VX after thrust = %f, want positive", ship.VX)
	}
	if !ctx.Events.Thrusting {
		t.Error("Events.Thrusting not set while thrusting")
	}
}

func TestShipStrafePerpendicular(t *testing.T) {
	ship := NewShip(60, 40)
	ship.Angle = 0 // Pointing right; strafe left accelerates up (negative Y)

	ctx := testCtx(&recordingSpawner{}, 1.0/60)
	ctx.Input = Intent{StrafeLeft: true}
	ship.Update(ctx)

	if ship.VY >= 0 {
		t.Errorf("VY after strafe left = %f, want negative", ship.VY)
	}
	if math.Abs(ship.VX) > 1e-9 {
		t.Errorf("VX after strafe left = %f, want 0", ship.VX)
	}
}

func TestShipAbsoluteAimOverridesTurning(t *testing.T) {
	ship := NewShip(60, 40)

	ctx := testCtx(nil, 1.0/60)
	ctx.Input = Intent{AimSet: true, AimAngle: 1.25, TurnLeft: true}
	ship.Update(ctx)

	if ship.Angle != 1.25 {
		t.Errorf("Angle = %f, want absolute aim 1.25", ship.Angle)
	}
}

func TestShipCoastingSlowsDown(t *testing.T) {
	ship := NewShip(60, 40)
	ship.VX = 10

	ctx := testCtx(nil, 0.5)
	ship.Update(ctx)

	if ship.VX >= 10 {
		t.Errorf("VX after coasting = %f, want < 10", ship.VX)
	}
}

func TestShipSpeedClamped(t *testing.T) {
	ship := NewShip(60, 40)
	ship.Angle = 0

	ctx := testCtx(&recordingSpawner{}, 0.1)
	ctx.Input = Intent{Thrust: true}
	for i := 0; i < 200; i++ {
		ship.Update(ctx)
	}

	if speed := math.Hypot(ship.VX, ship.VY); speed > ship.MaxSpeed+1e-9 {
		t.Errorf("speed = %f exceeds cap %f", speed, ship.MaxSpeed)
	}
}
