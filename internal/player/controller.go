// Package player reconciles free-form movement input with the stepped physics
// simulation: ground-adherent walking, limited air control, jumping, and the
// first-person eye pose derived from the body.
package player

import (
	"github.com/chewxy/math32"

	"polyforge/internal/geom"
	"polyforge/internal/physics"
)

// Config tunes locomotion. Zero values are replaced by DefaultConfig fields.
type Config struct {
	MoveSpeed   float32 `yaml:"move_speed"`
	JumpImpulse float32 `yaml:"jump_impulse"`
	// EyeOffset is the camera height above the body center.
	EyeOffset float32 `yaml:"eye_offset"`
	// AirAccel and AirDecel are exponential blend rates (1/s) toward the
	// desired horizontal velocity while airborne, with and without held
	// movement keys.
	AirAccel float32 `yaml:"air_accel"`
	AirDecel float32 `yaml:"air_decel"`
	// GroundProbe extends the ground ray past the body's half height.
	GroundProbe float32 `yaml:"ground_probe"`
	LookSpeed   float32 `yaml:"look_speed"`
}

// DefaultConfig returns the stock movement tuning.
func DefaultConfig() Config {
	return Config{
		MoveSpeed:   6,
		JumpImpulse: 8.5,
		EyeOffset:   0.65,
		AirAccel:    6,
		AirDecel:    6,
		GroundProbe: 0.1,
		LookSpeed:   0.0032,
	}
}

// Move is one frame of movement input: held direction keys and a jump
// command. Pointer deltas go through Look instead.
type Move struct {
	Forward, Back, Left, Right bool
	Jump                       bool
}

func (m Move) anyDirection() bool { return m.Forward || m.Back || m.Left || m.Right }

// pitchLimit keeps the view off the poles.
const pitchLimit = 1.55

// Controller drives one body through the world and derives the viewpoint.
// Look angles live here, never on the body: the body has no rotation.
type Controller struct {
	Body     *physics.Body
	Yaw      float32
	Pitch    float32
	Grounded bool

	world *physics.World
	cfg   Config
}

// New returns a controller for body in world.
func New(world *physics.World, body *physics.Body, cfg Config) *Controller {
	return &Controller{Body: body, world: world, cfg: cfg}
}

// Look applies pointer deltas to the yaw/pitch accumulators. Split from
// Update so the frame loop can aim before snapping and move after authoring.
func (c *Controller) Look(dx, dy float32) {
	c.Yaw -= dx * c.cfg.LookSpeed
	c.Pitch -= dy * c.cfg.LookSpeed
	if c.Pitch > pitchLimit {
		c.Pitch = pitchLimit
	}
	if c.Pitch < -pitchLimit {
		c.Pitch = -pitchLimit
	}
}

// forward is the walk direction on the ground plane (yaw only).
func (c *Controller) forward() geom.Vec3 {
	return geom.Vec3{X: -math32.Sin(c.Yaw), Z: -math32.Cos(c.Yaw)}
}

// right is perpendicular to forward on the ground plane.
func (c *Controller) right() geom.Vec3 {
	return geom.Vec3{X: math32.Cos(c.Yaw), Z: -math32.Sin(c.Yaw)}
}

// ViewDir is the full aim direction including pitch.
func (c *Controller) ViewDir() geom.Vec3 {
	cp := math32.Cos(c.Pitch)
	f := c.forward()
	return geom.Vec3{X: f.X * cp, Y: math32.Sin(c.Pitch), Z: f.Z * cp}
}

// EyePosition is the body position plus the fixed eye offset. Read-only
// projection: the camera never writes the body.
func (c *Controller) EyePosition() geom.Vec3 {
	return c.Body.Position.Add(geom.Vec3{Y: c.cfg.EyeOffset})
}

// Update advances the body by one frame. Order matters: the grounded state
// and velocity writes happen before the physics step consumes them, and the
// grounded write is repeated after the step so contact impulses cannot leave
// residual horizontal drift while standing.
func (c *Controller) Update(mv Move, dt float32) {
	desired := c.desiredVelocity(mv)

	probe := c.Body.Half.Y + c.cfg.GroundProbe
	_, grounded := c.world.RaycastDown(c.Body.Position, probe)
	c.Grounded = grounded

	if grounded {
		c.Body.Velocity.X = desired.X
		c.Body.Velocity.Z = desired.Z
	} else {
		rate := c.cfg.AirDecel
		if mv.anyDirection() {
			rate = c.cfg.AirAccel
		}
		k := 1 - math32.Exp(-rate*dt)
		c.Body.Velocity.X += (desired.X - c.Body.Velocity.X) * k
		c.Body.Velocity.Z += (desired.Z - c.Body.Velocity.Z) * k
	}

	// Jumping never touches horizontal velocity.
	if mv.Jump && grounded {
		c.Body.Velocity.Y = c.cfg.JumpImpulse
	}

	c.world.Step(dt)

	if grounded {
		c.Body.Velocity.X = desired.X
		c.Body.Velocity.Z = desired.Z
	}
}

// desiredVelocity sums the held directions additively (a diagonal is the raw
// sum, normalized once) and scales to the move speed.
func (c *Controller) desiredVelocity(mv Move) geom.Vec3 {
	var sum geom.Vec3
	if mv.Forward {
		sum = sum.Add(c.forward())
	}
	if mv.Back {
		sum = sum.Sub(c.forward())
	}
	if mv.Right {
		sum = sum.Add(c.right())
	}
	if mv.Left {
		sum = sum.Sub(c.right())
	}
	if sum.Length() == 0 {
		return geom.Vec3{}
	}
	return sum.Normalize().Scale(c.cfg.MoveSpeed)
}
