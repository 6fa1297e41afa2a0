package systems

import (
	"github.com/automoto/doomerang-movement/components"
	"github.com/automoto/doomerang-movement/config"
)

// fallPhysics applies plain gravity when nothing else owns vertical
// velocity and the body is off the ground.
func (c *Controller) fallPhysics(dt float64) {
	s, p := c.State, c.Params
	if c.driver != DriverFall {
		return
	}
	if s.Jump.Phase != components.JumpFalling {
		s.Jump.Phase = components.JumpFalling
		c.play(config.BehaviorFall)
	}
	c.writeVertical(DriverFall, s.Velocity.Y+p.Gravity*dt)
}
