package archetypes

import (
	"github.com/automoto/doomerang-movement/components"
	cfg "github.com/automoto/doomerang-movement/config"
	"github.com/automoto/doomerang-movement/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Space = newArchetype(
		components.Space,
	)
	Solid = newArchetype(
		tags.Solid,
		components.Object,
	)
	Platform = newArchetype(
		tags.Platform,
		components.Object,
		components.Platform,
	)
	Player = newArchetype(
		tags.Player,
		components.Motion,
		components.Input,
		components.Physics,
		components.Object,
		components.Animation,
		components.MotionDebug,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
