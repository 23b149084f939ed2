package object

import (
	"math"

	"github.com/spacerocks/spacerocks/internal/draw"
)

// Ship is the player-controlled vessel.
type Ship struct {
	X, Y   float64 // Position (center)
	VX, VY float64 // Velocity
	Angle  float64 // Heading in radians, 0 = pointing right

	ThrustPower   float64 // Forward acceleration, units/s²
	RotationSpeed float64 // Radians/s when turning
	MaxSpeed      float64 // Velocity magnitude cap
	Friction      float64 // Fraction of speed kept per second while coasting
	Radius        float64 // Collision radius
	FireRate      float64 // Minimum seconds between shots

	fireCooldown float64
}

// Side thrusters (reverse and strafe) run at a fraction of forward power.
const sideThrustFactor = 0.6

// NewShip creates a ship at the given position, pointing up.
func NewShip(x, y float64) *Ship {
	return &Ship{
		X:             x,
		Y:             y,
		Angle:         -math.Pi / 2,
		ThrustPower:   40.0,
		RotationSpeed: 5.0,
		MaxSpeed:      25.0,
		Friction:      0.6,
		Radius:        2.0,
		FireRate:      0.18,
	}
}

// Update applies the frame's intent to the ship: aim, thrust, strafe,
// friction, movement, and firing.
func (s *Ship) Update(ctx UpdateContext) (bool, error) {
	dt := ctx.Delta.Seconds()
	in := ctx.Input

	// Aim: absolute when the source can provide one, otherwise integrate
	// turn keys.
	if in.AimSet {
		s.Angle = in.AimAngle
	} else {
		if in.TurnLeft {
			s.Angle -= s.RotationSpeed * dt
		}
		if in.TurnRight {
			s.Angle += s.RotationSpeed * dt
		}
	}
	for s.Angle > math.Pi {
		s.Angle -= 2 * math.Pi
	}
	for s.Angle < -math.Pi {
		s.Angle += 2 * math.Pi
	}

	accelerating := false
	accel := func(angle, power float64) {
		s.VX += math.Cos(angle) * power * dt
		s.VY += math.Sin(angle) * power * dt
		accelerating = true
	}

	if in.Thrust {
		accel(s.Angle, s.ThrustPower)
		if ctx.Events != nil {
			ctx.Events.Thrusting = true
		}
		backX := s.X - math.Cos(s.Angle)*s.Radius
		backY := s.Y - math.Sin(s.Angle)*s.Radius
		SpawnThrust(backX, backY, s.Angle, ctx.Spawner, ctx.Rand)
	}
	if in.Reverse {
		accel(s.Angle+math.Pi, s.ThrustPower*sideThrustFactor)
	}
	if in.StrafeLeft {
		accel(s.Angle-math.Pi/2, s.ThrustPower*sideThrustFactor)
	}
	if in.StrafeRight {
		accel(s.Angle+math.Pi/2, s.ThrustPower*sideThrustFactor)
	}

	if !accelerating {
		keep := math.Pow(s.Friction, dt)
		s.VX *= keep
		s.VY *= keep
	}

	speed := math.Hypot(s.VX, s.VY)
	if speed > s.MaxSpeed {
		scale := s.MaxSpeed / speed
		s.VX *= scale
		s.VY *= scale
	}

	s.X += s.VX * dt
	s.Y += s.VY * dt
	ctx.Screen.WrapPosition(&s.X, &s.Y)

	s.fireCooldown -= dt
	if in.Fire && s.fireCooldown <= 0 && ctx.Spawner != nil {
		s.fireCooldown = s.FireRate

		noseX := s.X + math.Cos(s.Angle)*s.Radius*1.8
		noseY := s.Y + math.Sin(s.Angle)*s.Radius*1.8
		ctx.Spawner.Spawn(NewProjectile(noseX, noseY, s.Angle, s.VX, s.VY))
		if ctx.Events != nil {
			ctx.Events.Fired = true
		}
	}

	return false, nil
}

// Draw renders the ship as a triangle pointing along its heading.
func (s *Ship) Draw(ctx DrawContext) error {
	nose := s.Angle
	left := s.Angle + 2.5
	right := s.Angle - 2.5

	points := ctx.Canvas.BorrowPoints(3)
	points[0] = draw.Point{X: s.X + math.Cos(nose)*s.Radius*1.8, Y: s.Y + math.Sin(nose)*s.Radius*1.8}
	points[1] = draw.Point{X: s.X + math.Cos(left)*s.Radius, Y: s.Y + math.Sin(left)*s.Radius}
	points[2] = draw.Point{X: s.X + math.Cos(right)*s.Radius, Y: s.Y + math.Sin(right)*s.Radius}
	ctx.Canvas.DrawPolygon(points, true)

	return nil
}

// GetPosition returns the ship's center.
func (s *Ship) GetPosition() (float64, float64) {
	return s.X, s.Y
}

// GetRadius returns the ship's collision radius.
func (s *Ship) GetRadius() float64 {
	return s.Radius
}
