package systems

import (
	"github.com/automoto/doomerang-movement/components"
	"github.com/automoto/doomerang-movement/shared/gamemath"
)

func (c *Controller) wallSlideChecks() {
	s := c.State

	switch {
	case s.TouchingWall && !s.Grounded && !s.Dash.Dashing():
		if s.Velocity.Y < 0 && s.Wall.Phase != components.WallSliding {
			c.startWallSlide()
		}

	case s.Wall.Phase == components.WallSliding && !s.TouchingWall && !s.Grounded:
		// Slid off the end of the wall. The grace state keeps the extra
		// jump available and does not spend a charge.
		s.Wall.Phase = components.WallSlideFalling

	default:
		c.stopWallSlide()
	}
}

func (c *Controller) startWallSlide() {
	s, p := c.State, c.Params

	s.Jump = components.JumpState{}
	c.clearWallJump()
	c.resetDashValues()
	if p.ResetDashOnWallSlide {
		s.DashesUsed = 0
	}
	if p.ResetJumpsOnWallSlide {
		s.JumpsUsed = 0
	}
	s.Wall.Phase = components.WallSliding
}

// stopWallSlide ends a slide. Leaving the wall this way spends a jump.
func (c *Controller) stopWallSlide() {
	s := c.State
	if s.Wall.Phase != components.WallSliding {
		return
	}
	s.JumpsUsed = clampCount(s.JumpsUsed+1, c.Params.NumberOfJumpsAllowed)
	s.Wall.Phase = components.WallNone
}

func (c *Controller) wallSlidePhysics(dt float64) {
	s, p := c.State, c.Params
	if s.Wall.Phase != components.WallSliding || c.driver != DriverWallSlide {
		return
	}
	v := gamemath.Lerp(s.Velocity.Y, -p.WallSlideSpeed, p.WallSlideDecelerationSpeed*dt)
	c.writeVertical(DriverWallSlide, v)
}
