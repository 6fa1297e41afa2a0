package factory

import (
	"github.com/automoto/doomerang-movement/archetypes"
	"github.com/automoto/doomerang-movement/components"
	"github.com/automoto/doomerang-movement/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSolid adds a static block. Every solid is ground; slidable solids
// are also walls the character can slide on.
func CreateSolid(ecs *ecs.ECS, x, y, w, h float64, slidable bool) *donburi.Entry {
	solid := archetypes.Solid.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, solidTags(slidable)...)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = solid

	components.Object.SetValue(solid, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return solid
}

func solidTags(slidable bool) []string {
	if slidable {
		return []string{tags.ResolvSolid, tags.ResolvGround, tags.ResolvWall}
	}
	return []string{tags.ResolvSolid, tags.ResolvGround}
}
