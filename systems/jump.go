package systems

import (
	"math"

	"github.com/automoto/doomerang-movement/components"
	"github.com/automoto/doomerang-movement/config"
	"github.com/automoto/doomerang-movement/shared/gamemath"
)

// apexReleaseVelocity is written when an apex hang ends so the next tick
// sees a descending body.
const apexReleaseVelocity = -0.01

func (c *Controller) jumpChecks(in components.InputData) {
	s, p := c.State, c.Params

	if in.JumpPressed {
		// On or near a wall the press belongs to the wall jump.
		if s.Wall.Phase == components.WallSliding || (s.TouchingWall && !s.Grounded) {
			return
		}
		if !s.Grounded && s.WallJumpPostBufferTimer > 0 {
			return
		}
		s.JumpBufferTimer = p.JumpBufferTime
		s.Jump.ReleasedDuringBuffer = false
	}

	if !in.JumpHeld {
		if s.JumpBufferTimer > 0 {
			s.Jump.ReleasedDuringBuffer = true
		}
		c.releaseJump()
	}

	if s.JumpBufferTimer <= 0 {
		return
	}

	touchdown := s.Grounded && s.Airborne() && s.Velocity.Y <= 0

	switch {
	case (!s.Jump.Active() || touchdown) && (s.Grounded || s.CoyoteTimer > 0):
		released := s.Jump.ReleasedDuringBuffer
		if touchdown {
			// The landing check runs after this one. Land now so a buffered
			// jump fires on the touchdown tick as a fresh first jump.
			c.land()
		}
		c.initiateJump(1)
		if released {
			c.startFastFall(s.Velocity.Y, 0)
		}

	case c.canExtraJump():
		c.initiateJump(1)

	case s.Jump.Phase == components.JumpFalling &&
		s.Wall.Phase != components.WallSlideFalling &&
		!s.TouchingWall &&
		s.JumpsUsed < p.NumberOfJumpsAllowed-1:
		// Walked off a ledge past coyote time: the ground jump is lost,
		// the air jump still spends its own charge.
		c.initiateJump(2)
	}
}

// canExtraJump covers jumping again while already in the air through a
// jump, a wall jump, a slide fall or a dash.
func (c *Controller) canExtraJump() bool {
	s := c.State
	airborne := s.Jump.Active() ||
		s.Wall.Jumping() ||
		s.Wall.Phase == components.WallSlideFalling ||
		s.Dash.Phase == components.DashAir ||
		s.Dash.Phase == components.DashFastFalling
	return airborne && !s.TouchingWall && s.JumpsUsed < c.Params.NumberOfJumpsAllowed
}

func (c *Controller) initiateJump(charges int) {
	s, p := c.State, c.Params

	if s.JumpsUsed+charges > 1 {
		c.play(config.BehaviorDoubleJump)
	} else {
		c.play(config.BehaviorJump)
	}

	if s.Wall.Phase == components.WallSliding {
		c.stopWallSlide()
	}
	c.clearWallJump()
	if verticalDriver(s) == DriverDash {
		s.Dash.Phase = components.DashIdle
	}

	s.JumpBufferTimer = 0
	s.JumpsUsed = clampCount(s.JumpsUsed+charges, p.NumberOfJumpsAllowed)
	s.Jump = components.JumpState{Phase: components.JumpAscending}
	s.Velocity.Y = p.InitialJumpVelocity
}

// releaseJump starts a fast-fall when the button comes up while rising.
func (c *Controller) releaseJump() {
	s := c.State
	switch s.Jump.Phase {
	case components.JumpApexHang:
		s.Velocity.Y = 0
		c.startFastFall(0, c.Params.TimeForUpwardsCancel)
	case components.JumpAscending:
		if s.Velocity.Y > 0 {
			c.startFastFall(s.Velocity.Y, 0)
		}
	}
}

func (c *Controller) startFastFall(release, elapsed float64) {
	j := &c.State.Jump
	j.Phase = components.JumpFastFalling
	j.FastFallReleaseSpeed = release
	j.FastFallTime = elapsed
}

func (c *Controller) jumpPhysics(dt float64) {
	s, p := c.State, c.Params
	if !s.Jump.Active() || c.driver != DriverJump {
		return
	}

	if s.BumpedHead && s.Jump.Phase != components.JumpFastFalling {
		c.startFastFall(math.Min(s.Velocity.Y, 0), 0)
	}

	v := s.Velocity.Y
	switch s.Jump.Phase {
	case components.JumpAscending:
		if v < 0 {
			c.descend()
			v += p.Gravity * p.GravityOnReleaseMultiplier * dt
			break
		}
		if gamemath.InverseLerp(p.InitialJumpVelocity, 0, v) > p.ApexThreshold {
			s.Jump.Phase = components.JumpApexHang
			s.Jump.TimePastApex = 0
			v = c.jumpApexHang(dt)
			break
		}
		v += p.Gravity * dt

	case components.JumpApexHang:
		v = c.jumpApexHang(dt)

	case components.JumpDescending:
		v += p.Gravity * p.GravityOnReleaseMultiplier * dt

	case components.JumpFastFalling:
		v = blendFastFall(v, &s.Jump.FastFallTime, s.Jump.FastFallReleaseSpeed,
			p.TimeForUpwardsCancel, p.Gravity*p.GravityOnReleaseMultiplier, dt)
		if v < 0 {
			c.play(config.BehaviorFall)
		}
	}

	c.writeVertical(DriverJump, v)
}

func (c *Controller) jumpApexHang(dt float64) float64 {
	v, done := apexHang(&c.State.Jump.TimePastApex, c.Params.ApexHangTime, dt)
	if done {
		c.descend()
	}
	return v
}

func (c *Controller) descend() {
	c.State.Jump.Phase = components.JumpDescending
	c.play(config.BehaviorFall)
}

// apexHang advances a dwell timer. The body holds still until the timer
// reaches hangTime, then gets a tiny downward nudge.
func apexHang(timer *float64, hangTime, dt float64) (v float64, done bool) {
	*timer += dt
	if *timer < hangTime {
		return 0, false
	}
	return apexReleaseVelocity, true
}

// blendFastFall eases from the release speed to zero across window, then
// applies gravity.
func blendFastFall(v float64, elapsed *float64, release, window, gravity, dt float64) float64 {
	if *elapsed >= window {
		v += gravity * dt
	} else {
		v = gamemath.Lerp(release, 0, *elapsed/window)
	}
	*elapsed += dt
	return v
}

func (c *Controller) landChecks() {
	s := c.State
	if s.Grounded && s.Velocity.Y <= 0 && s.Airborne() {
		c.land()
	}
}

func (c *Controller) land() {
	s, p := c.State, c.Params

	c.stopWallSlide()
	c.clearWallJump()
	s.Jump = components.JumpState{}
	s.Wall.Phase = components.WallNone

	s.JumpsUsed = 0
	s.DashesUsed = 0
	s.Velocity.Y = p.GroundedVelocity

	c.resetDashValues()
	if s.Dash.Phase == components.DashAir {
		s.Dash.Phase = components.DashGround
	}
}
