package systems

import (
	"github.com/automoto/doomerang-movement/components"
	cfg "github.com/automoto/doomerang-movement/config"
	"github.com/automoto/doomerang-movement/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewEntityController wires a Controller to the components of a character
// entry. Controllers hold no state between ticks, so one is built per
// system pass.
func NewEntityController(e *donburi.Entry, space *components.SpaceData, caster ShapeCaster) *Controller {
	physics := components.Physics.Get(e)
	return &Controller{
		State:  components.Motion.Get(e),
		Params: &cfg.Movement,
		Body: &ObjectBody{
			Space:   space,
			Object:  components.Object.Get(e).Object,
			Physics: physics,
		},
		Probe: caster,
		Anim:  components.Animation.Get(e),
		Debug: components.MotionDebug.Get(e),
	}
}

// UpdateMotionIntent runs the variable pass for every character and clears
// the one-shot input edges afterwards.
func UpdateMotionIntent(ecs *ecs.ECS) {
	space, ok := spaceOf(ecs)
	if !ok {
		return
	}
	caster := NewSpaceCaster(space)
	dt := tickDelta()

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		input := components.Input.Get(e)
		NewEntityController(e, space, caster).OnVariableTick(*input, dt)
		input.ConsumeEdges()
	})
}

// UpdateMotionPhysics runs the fixed pass for every character.
func UpdateMotionPhysics(ecs *ecs.ECS) {
	space, ok := spaceOf(ecs)
	if !ok {
		return
	}
	caster := NewSpaceCaster(space)
	dt := tickDelta()

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		debug := components.MotionDebug.Get(e)
		debug.Reset()

		c := NewEntityController(e, space, caster)
		c.OnFixedTick(*components.Input.Get(e), dt)

		debug.Driver = c.Driver().String()
		debug.VerticalWrites = len(c.VerticalWriters())
	})
}

// UpdateAnimations advances the frame counters of every animated entity.
func UpdateAnimations(ecs *ecs.ECS) {
	for e := range components.Animation.Iter(ecs.World) {
		components.Animation.Get(e).Advance()
	}
}
