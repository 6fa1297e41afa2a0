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

// CreateSpace adds the collision space. Width and height are in pixels.
func CreateSpace(ecs *ecs.ECS, width, height, cellSize int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)

	probe := resolv.NewObject(0, 0, 1, 1, tags.ResolvProbe)
	spaceData := &components.SpaceData{
		Space:         resolv.NewSpace(width, height, cellSize, cellSize),
		PixelsPerUnit: cfg.Simulation.PixelsPerUnit,
		HeightPx:      float64(height),
		Probe:         probe,
	}
	spaceData.Add(probe)
	components.Space.Set(space, spaceData)
	return space
}

func addToSpace(ecs *ecs.ECS, obj *resolv.Object) {
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}
