package systems

import (
	"github.com/automoto/doomerang-movement/components"
	"github.com/automoto/doomerang-movement/config"
)

// VerticalDriver names the subsystem that owns vertical velocity this tick.
type VerticalDriver int

const (
	DriverNone VerticalDriver = iota
	DriverFall
	DriverJump
	DriverWallJump
	DriverWallSlide
	DriverDash
)

var driverNames = [...]string{"none", "fall", "jump", "wall_jump", "wall_slide", "dash"}

func (d VerticalDriver) String() string { return driverNames[d] }

// Controller is the motion core for one character. It holds no state of its
// own beyond the last tick's bookkeeping: everything persistent lives in
// State, so hosts may build a Controller per tick.
//
// Hosts call OnVariableTick then OnFixedTick once per frame, never
// concurrently, and clear the input edges between frames.
type Controller struct {
	State  *components.MotionData
	Params *config.MovementConfig
	Body   Body
	Probe  ShapeCaster
	Anim   AnimationSink // optional
	Debug  ProbeRecorder // optional

	driver     VerticalDriver
	writers    [4]VerticalDriver
	numWriters int
}

// OnVariableTick reads intents, runs the timers and decides which behaviors
// start or stop.
func (c *Controller) OnVariableTick(in components.InputData, dt float64) {
	c.countTimers(dt)
	c.jumpChecks(in)
	c.landChecks()
	c.wallSlideChecks()
	c.wallJumpChecks(in)
	c.dashChecks(in)
}

// OnFixedTick samples collisions, integrates every behavior and commits the
// velocity to the body.
func (c *Controller) OnFixedTick(in components.InputData, dt float64) {
	c.numWriters = 0

	c.sampleCollisions()
	c.driver = verticalDriver(c.State)

	c.jumpPhysics(dt)
	c.fallPhysics(dt)
	c.wallSlidePhysics(dt)
	c.wallJumpPhysics(dt)
	c.dashPhysics(dt)
	c.moveHorizontal(in, dt)
	c.applyVelocity()
}

// Driver is the vertical driver chosen by the last fixed tick.
func (c *Controller) Driver() VerticalDriver {
	return c.driver
}

// VerticalWriters lists the subsystems that wrote vertical velocity during
// the last fixed tick.
func (c *Controller) VerticalWriters() []VerticalDriver {
	return append([]VerticalDriver(nil), c.writers[:c.numWriters]...)
}

// verticalDriver picks the one family allowed to integrate vertical
// velocity. Families can overlap (a wall jump suspended under a dash, a
// horizontal ground dash during a jump); precedence resolves them.
func verticalDriver(s *components.MotionData) VerticalDriver {
	switch {
	case s.Dash.Phase == components.DashAir,
		s.Dash.Phase == components.DashGround && s.Dash.Direction.Y != 0,
		s.Dash.Phase == components.DashFastFalling:
		return DriverDash
	case s.Wall.Phase == components.WallSliding:
		return DriverWallSlide
	case s.Wall.Jumping():
		return DriverWallJump
	case s.Jump.Active():
		return DriverJump
	case !s.Grounded:
		return DriverFall
	}
	return DriverNone
}

func (c *Controller) writeVertical(d VerticalDriver, v float64) {
	c.State.Velocity.Y = v
	if c.numWriters < len(c.writers) {
		c.writers[c.numWriters] = d
		c.numWriters++
	}
}

func (c *Controller) play(b config.Behavior) {
	if c.Anim != nil {
		c.Anim.Play(b)
	}
}

func clampCount(n, max int) int {
	if n < 0 {
		return 0
	}
	if n > max {
		return max
	}
	return n
}
