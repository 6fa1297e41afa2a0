package factory

import (
	"github.com/automoto/doomerang-movement/archetypes"
	"github.com/automoto/doomerang-movement/components"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlatform adds a solid that travels from (x, y) by (dx, dy) pixels
// and back, taking duration seconds each way.
func CreatePlatform(ecs *ecs.ECS, x, y, w, h, dx, dy float64, duration float32) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, solidTags(false)...)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = platform
	components.Object.SetValue(platform, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Platform.SetValue(platform, components.PlatformData{
		OriginX:  x,
		OriginY:  y,
		OffsetX:  dx,
		OffsetY:  dy,
		Duration: duration,
		Sequence: NewPlatformSequence(duration),
	})

	return platform
}

// NewPlatformSequence tweens the travel fraction out to 1 and back to 0.
func NewPlatformSequence(duration float32) *gween.Sequence {
	seq := gween.NewSequence()
	seq.Add(
		gween.New(0, 1, duration, ease.InOutQuad),
		gween.New(1, 0, duration, ease.InOutQuad),
	)
	return seq
}
