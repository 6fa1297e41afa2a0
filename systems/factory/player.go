package factory

import (
	"github.com/automoto/doomerang-movement/archetypes"
	"github.com/automoto/doomerang-movement/components"
	cfg "github.com/automoto/doomerang-movement/config"
	"github.com/automoto/doomerang-movement/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the character with its feet centered on (x, y) in
// resolv pixels, lifted slightly so the first tick starts airborne.
func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	ppu := cfg.Simulation.PixelsPerUnit
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		ppu = components.Space.Get(spaceEntry).PixelsPerUnit
	}
	w := cfg.Body.Width * ppu
	h := cfg.Body.Height * ppu

	obj := resolv.NewObject(x-w/2, y-h-cfg.Body.SpawnOffset*ppu, w, h, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Motion.SetValue(player, components.NewMotionData())
	components.Physics.SetValue(player, components.PhysicsData{
		Facing: components.FacingRight,
	})
	components.Animation.SetValue(player, components.AnimationData{
		Current:  cfg.BehaviorIdle,
		Previous: cfg.BehaviorNone,
		Frame:    cfg.CharacterAnimations[cfg.BehaviorIdle].First,
	})

	return player
}
