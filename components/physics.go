package components

import (
	"github.com/automoto/doomerang-movement/shared/gamemath"
	"github.com/yohamta/donburi"
)

// PhysicsData is the physical body the host integrates. The motion
// controller is its only writer; collisions stop the object but never feed
// back into Velocity.
type PhysicsData struct {
	Velocity gamemath.Vec2
	Facing   Facing
}

var Physics = donburi.NewComponentType[PhysicsData]()
