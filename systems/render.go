package systems

import (
	"github.com/automoto/doomerang-movement/components"
	cfg "github.com/automoto/doomerang-movement/config"
	"github.com/automoto/doomerang-movement/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawLevel renders solids and moving platforms as flat boxes. The screen
// is the resolv space, one pixel per pixel.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Solid.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e).Object
		vector.FillRect(screen, float32(o.X), float32(o.Y), float32(o.W), float32(o.H), cfg.SolidGray, false)
	})
	tags.Platform.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e).Object
		vector.FillRect(screen, float32(o.X), float32(o.Y), float32(o.W), float32(o.H), cfg.PlatformTan, false)
	})
}

// DrawPlayer renders the character body with a notch on its facing side.
func DrawPlayer(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e).Object
		facing := components.Physics.Get(e).Facing

		vector.FillRect(screen, float32(o.X), float32(o.Y), float32(o.W), float32(o.H), cfg.DarkBlue, false)

		eyeX := o.X + o.W - 5
		if facing == components.FacingLeft {
			eyeX = o.X + 2
		}
		vector.FillRect(screen, float32(eyeX), float32(o.Y+4), 3, 3, cfg.White, false)
	})
}
