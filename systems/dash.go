package systems

import (
	"github.com/automoto/doomerang-movement/components"
	"github.com/automoto/doomerang-movement/shared/gamemath"
)

// groundDashReady is the cooldown value landing leaves behind so a ground
// dash is available right away.
const groundDashReady = -0.01

func (c *Controller) dashChecks(in components.InputData) {
	s, p := c.State, c.Params
	if !in.DashPressed || s.Dash.Dashing() {
		return
	}

	switch {
	case s.Grounded && s.Dash.GroundCooldown < 0:
		c.initiateDash(in.Move, components.DashGround)

	case !s.Grounded && s.DashesUsed < p.NumberOfDashes:
		c.initiateDash(in.Move, components.DashAir)
		// Dashing right off a wall gives back the jump the wall took.
		if s.WallJumpPostBufferTimer > 0 {
			s.JumpsUsed = clampCount(s.JumpsUsed-1, p.NumberOfJumpsAllowed)
		}
	}
}

func (c *Controller) initiateDash(move gamemath.Vec2, phase components.DashPhase) {
	s, p := c.State, c.Params

	s.Dash = components.DashState{
		Phase:          phase,
		Direction:      gamemath.ResolveDashDirection(move, s.Facing.Sign(), p.DashDiagonalBias),
		GroundCooldown: p.TimeBetweenGroundDashes,
	}
	s.DashesUsed = clampCount(s.DashesUsed+1, p.NumberOfDashes)

	s.Jump = components.JumpState{}
	c.clearWallJump()
	c.stopWallSlide()
}

func (c *Controller) resetDashValues() {
	d := &c.State.Dash
	if d.Phase == components.DashFastFalling {
		d.Phase = components.DashIdle
	}
	d.GroundCooldown = groundDashReady
}

func (c *Controller) dashPhysics(dt float64) {
	s, p := c.State, c.Params

	switch s.Dash.Phase {
	case components.DashGround, components.DashAir:
		s.Dash.Timer += dt
		if s.Dash.Timer >= p.DashTime {
			c.endDash()
			return
		}
		s.Velocity.X = p.DashSpeed * s.Dash.Direction.X
		// A flat ground dash leaves vertical velocity to gravity.
		if c.driver == DriverDash {
			c.writeVertical(DriverDash, p.DashSpeed*s.Dash.Direction.Y)
		}

	case components.DashFastFalling:
		if c.driver != DriverDash {
			return
		}
		// The blend starts from the exit velocity whatever its sign.
		g := p.Gravity * p.DashGravityOnReleaseMultiplier
		v := blendFastFall(s.Velocity.Y, &s.Dash.FastFallTime, s.Dash.FastFallReleaseSpeed, p.DashTimeForUpwardsCancel, g, dt)
		c.writeVertical(DriverDash, v)
	}
}

func (c *Controller) endDash() {
	s := c.State
	if s.Grounded {
		s.DashesUsed = 0
	}
	s.Dash.Phase = components.DashIdle

	// A wall jump that happened during the dash was suspended under it.
	// Blend out of the dash speed instead of resuming the wall jump arc.
	if !s.Jump.Active() && s.Wall.Jumping() && !s.Grounded {
		s.Dash.Phase = components.DashFastFalling
		s.Dash.FastFallTime = 0
		s.Dash.FastFallReleaseSpeed = s.Velocity.Y
	}
}
