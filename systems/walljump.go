package systems

import (
	"math"

	"github.com/automoto/doomerang-movement/components"
	"github.com/automoto/doomerang-movement/config"
	"github.com/automoto/doomerang-movement/shared/gamemath"
)

// wallJumpBufferArmed holds the post-contact buffer at full while the body
// is on a wall in the air.
func (c *Controller) wallJumpBufferArmed() bool {
	s := c.State
	return !s.Grounded && (s.TouchingWall || s.Wall.Phase == components.WallSliding)
}

func (c *Controller) wallJumpChecks(in components.InputData) {
	s, p := c.State, c.Params

	if c.wallJumpBufferArmed() {
		s.WallJumpPostBufferTimer = p.WallJumpPostBufferTime
	}

	if !in.JumpHeld && !s.TouchingWall {
		switch s.Wall.Phase {
		case components.WallJumpApexHang:
			s.Velocity.Y = 0
			c.startWallJumpFastFall(0, p.TimeForUpwardsCancel)
		case components.WallJumpAscending:
			if s.Velocity.Y > 0 {
				c.startWallJumpFastFall(s.Velocity.Y, 0)
			}
		}
	}

	if in.JumpPressed && !s.Grounded && s.WallJumpPostBufferTimer > 0 {
		c.initiateWallJump()
	}
}

func (c *Controller) initiateWallJump() {
	s, p := c.State, c.Params

	c.stopWallSlide()
	s.Jump = components.JumpState{}
	if s.Dash.Phase == components.DashFastFalling {
		s.Dash.Phase = components.DashIdle
	}

	s.Wall = components.WallState{
		Phase:           components.WallJumpAscending,
		WeightedControl: true,
		LastContact:     s.Wall.LastContact,
	}
	s.JumpBufferTimer = 0
	s.Velocity.Y = p.InitialWallJumpVelocity
	s.Velocity.X = math.Abs(p.WallJumpDirection.X) * c.wallJumpDirection()

	c.play(config.BehaviorWallJump)
}

// wallJumpDirection pushes away from the last wall touched. Without any
// contact on record it pushes away from the facing direction.
func (c *Controller) wallJumpDirection() float64 {
	s := c.State
	if s.Wall.LastContact == nil {
		return -s.Facing.Sign()
	}
	if s.Wall.LastContact.Point.X > c.Body.Bounds().Center().X {
		return -1
	}
	return 1
}

func (c *Controller) startWallJumpFastFall(release, elapsed float64) {
	w := &c.State.Wall
	w.Phase = components.WallJumpFastFalling
	w.FastFallReleaseSpeed = release
	w.FastFallTime = elapsed
}

// clearWallJump drops the slide fall and any wall jump. A slide in
// progress is left to stopWallSlide.
func (c *Controller) clearWallJump() {
	w := &c.State.Wall
	if w.Phase != components.WallSliding {
		w.Phase = components.WallNone
	}
	w.WeightedControl = false
	w.Time = 0
	w.TimePastApex = 0
	w.FastFallTime = 0
}

func (c *Controller) wallJumpPhysics(dt float64) {
	s, p := c.State, c.Params
	if !s.Wall.Jumping() {
		return
	}

	// Control weighting runs on its own clock, even while a dash holds
	// vertical velocity.
	s.Wall.Time += dt
	if s.Wall.Time >= p.TimeTillJumpApex {
		s.Wall.WeightedControl = false
	}

	if c.driver != DriverWallJump {
		return
	}

	if s.BumpedHead {
		s.Wall.WeightedControl = false
		if s.Wall.Phase != components.WallJumpFastFalling {
			c.startWallJumpFastFall(math.Min(s.Velocity.Y, 0), 0)
		}
	}

	v := s.Velocity.Y
	switch s.Wall.Phase {
	case components.WallJumpAscending:
		if v < 0 {
			c.wallJumpDescend()
			v += p.WallJumpGravity * dt
			break
		}
		if gamemath.InverseLerp(p.InitialWallJumpVelocity, 0, v) > p.WallJumpApexThreshold {
			s.Wall.Phase = components.WallJumpApexHang
			s.Wall.TimePastApex = 0
			v = c.wallJumpApexHang(dt)
			break
		}
		v += p.WallJumpGravity * dt

	case components.WallJumpApexHang:
		v = c.wallJumpApexHang(dt)

	case components.WallJumpFalling:
		v += p.WallJumpGravity * dt

	case components.WallJumpFastFalling:
		v = blendFastFall(v, &s.Wall.FastFallTime, s.Wall.FastFallReleaseSpeed,
			p.TimeForUpwardsCancel, p.WallJumpGravity*p.WallJumpGravityOnReleaseMultiplier, dt)
		if v < 0 {
			c.play(config.BehaviorFall)
		}
	}

	c.writeVertical(DriverWallJump, v)
}

func (c *Controller) wallJumpApexHang(dt float64) float64 {
	v, done := apexHang(&c.State.Wall.TimePastApex, c.Params.WallJumpApexHangTime, dt)
	if done {
		c.wallJumpDescend()
	}
	return v
}

func (c *Controller) wallJumpDescend() {
	c.State.Wall.Phase = components.WallJumpFalling
	c.play(config.BehaviorFall)
}
