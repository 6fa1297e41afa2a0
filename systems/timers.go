package systems

func (c *Controller) countTimers(dt float64) {
	s, p := c.State, c.Params

	s.JumpBufferTimer -= dt

	if s.Grounded {
		s.CoyoteTimer = p.JumpCoyoteTime
	} else {
		s.CoyoteTimer -= dt
	}

	if !c.wallJumpBufferArmed() {
		s.WallJumpPostBufferTimer -= dt
	}

	// Ground dash cooldown only runs on the ground.
	if s.Grounded {
		s.Dash.GroundCooldown -= dt
	}
}
