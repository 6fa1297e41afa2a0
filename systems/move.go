package systems

import (
	"github.com/automoto/doomerang-movement/components"
	"github.com/automoto/doomerang-movement/config"
	"github.com/automoto/doomerang-movement/shared/gamemath"
)

func (c *Controller) moveHorizontal(in components.InputData, dt float64) {
	s, p := c.State, c.Params
	if s.Dash.Dashing() {
		return
	}

	accel, decel := p.AirAcceleration, p.AirDeceleration
	switch {
	case s.Grounded:
		accel, decel = p.GroundAcceleration, p.GroundDeceleration
	case s.Wall.WeightedControl:
		accel, decel = p.WallJumpMoveAcceleration, p.WallJumpMoveDeceleration
	}

	if !in.Move.IsZero() {
		c.turnCheck(in.Move.X)
		maxSpeed := p.MaxWalkSpeed
		if in.RunHeld {
			maxSpeed = p.MaxRunSpeed
		}
		s.Velocity.X = gamemath.Lerp(s.Velocity.X, in.Move.X*maxSpeed, accel*dt)
	} else {
		s.Velocity.X = gamemath.Lerp(s.Velocity.X, 0, decel*dt)
	}

	if s.Grounded && !s.Jump.Active() && !s.Wall.Jumping() {
		if in.Move.X != 0 {
			c.play(config.BehaviorRun)
		} else {
			c.play(config.BehaviorIdle)
		}
	}
}

func (c *Controller) turnCheck(x float64) {
	s := c.State
	switch {
	case s.Facing == components.FacingRight && x < 0:
		c.turn(components.FacingLeft)
	case s.Facing == components.FacingLeft && x > 0:
		c.turn(components.FacingRight)
	}
}

func (c *Controller) turn(f components.Facing) {
	c.State.Facing = f
	c.Body.Turn(f)
}
