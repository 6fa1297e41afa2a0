package systems

import "github.com/automoto/doomerang-movement/shared/gamemath"

func (c *Controller) applyVelocity() {
	s, p := c.State, c.Params

	if s.Dash.Dashing() {
		s.Velocity.Y = gamemath.ClampSpeed(s.Velocity.Y, p.DashClampSpeed)
	} else {
		s.Velocity.Y = gamemath.Clamp(s.Velocity.Y, -p.MaxFallSpeed, p.MaxRiseSpeed)
	}

	c.Body.SetVelocity(s.Velocity)
}
