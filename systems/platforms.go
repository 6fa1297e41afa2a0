package systems

import (
	"github.com/automoto/doomerang-movement/components"
	"github.com/automoto/doomerang-movement/systems/factory"
	"github.com/automoto/doomerang-movement/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// riderSlop is how far (pixels) above a platform a character's feet may be
// and still ride it.
const riderSlop = 1.0

// UpdatePlatforms advances the platform tweens and carries any character
// standing on a platform along with it.
func UpdatePlatforms(ecs *ecs.ECS) {
	dt := float32(tickDelta())

	var riders []*resolv.Object
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		riders = append(riders, components.Object.Get(e).Object)
	})

	tags.Platform.Each(ecs.World, func(e *donburi.Entry) {
		platform := components.Platform.Get(e)
		obj := components.Object.Get(e).Object

		frac, _, done := platform.Sequence.Update(dt)
		if done {
			platform.Sequence = factory.NewPlatformSequence(platform.Duration)
		}

		dx := platform.OriginX + platform.OffsetX*float64(frac) - obj.X
		dy := platform.OriginY + platform.OffsetY*float64(frac) - obj.Y
		if dx == 0 && dy == 0 {
			return
		}

		var carried []*resolv.Object
		for _, rider := range riders {
			if standsOn(rider, obj) {
				carried = append(carried, rider)
			}
		}

		obj.X += dx
		obj.Y += dy
		obj.Update()

		for _, rider := range carried {
			rider.Y += resolveVertical(rider, dy)
			rider.X += resolveHorizontal(rider, dx)
			rider.Update()
		}
	})
}

func standsOn(rider, platform *resolv.Object) bool {
	bottom := rider.Y + rider.H
	return bottom >= platform.Y-riderSlop && bottom <= platform.Y+riderSlop &&
		spans(rider.X, rider.W, platform.X, platform.W)
}
