package systems

import (
	"math"

	"github.com/automoto/doomerang-movement/components"
	"github.com/automoto/doomerang-movement/config"
	"github.com/automoto/doomerang-movement/shared/gamemath"
	"github.com/automoto/doomerang-movement/tags"
	"github.com/solarlune/resolv"
)

// SpaceCaster answers box casts from the resolv spatial hash. resolv only
// reports which objects share cells with the probe, so every candidate is
// filtered with an exact rect overlap in world units.
type SpaceCaster struct {
	space *components.SpaceData
}

func NewSpaceCaster(space *components.SpaceData) *SpaceCaster {
	if space.Probe == nil {
		space.Probe = resolv.NewObject(0, 0, 1, 1, tags.ResolvProbe)
		space.Add(space.Probe)
	}
	return &SpaceCaster{space: space}
}

func (c *SpaceCaster) BoxCast(q CastQuery) CastHit {
	area := q.Area()
	probe := c.space.Probe

	// Grow the probe a pixel each way: resolv maps the far edge of an
	// object into cells with a one pixel inset.
	x, y, w, h := c.space.ToSpace(area)
	probe.X, probe.Y, probe.W, probe.H = x-1, y-1, w+2, h+2
	probe.Update()

	check := probe.Check(0, 0, q.Layer)
	if check == nil {
		return CastHit{}
	}

	var hit CastHit
	best := math.Inf(1)
	for _, obj := range check.ObjectsByTags(q.Layer) {
		r := c.space.ObjectRect(obj)
		if !area.Overlaps(r) {
			continue
		}
		point := r.ClosestPoint(q.Reference)
		if d := gamemath.Distance(point, q.Reference); d < best {
			best = d
			hit = CastHit{Hit: true, Collider: obj, Point: point}
		}
	}
	return hit
}

// ObjectBody is a character backed by a resolv object. Velocity goes to the
// physics component; the host moves the object.
type ObjectBody struct {
	Space   *components.SpaceData
	Object  *resolv.Object
	Physics *components.PhysicsData
}

func (b *ObjectBody) Bounds() gamemath.Rect {
	return b.Space.ObjectRect(b.Object)
}

// FeetBounds is a strip at the bottom of the body, narrower than the body
// so wall faces do not count as ground.
func (b *ObjectBody) FeetBounds() gamemath.Rect {
	r := b.Bounds()
	cx := r.Center().X
	half := config.Body.FeetWidth / 2
	return gamemath.Rect{
		Min: gamemath.Vec2{X: cx - half, Y: r.Min.Y},
		Max: gamemath.Vec2{X: cx + half, Y: r.Min.Y + config.Body.FeetHeight},
	}
}

func (b *ObjectBody) SetVelocity(v gamemath.Vec2) {
	b.Physics.Velocity = v
}

// Turn records the facing. The body is symmetric, and every probe derives
// its side from the facing each tick, so nothing else moves.
func (b *ObjectBody) Turn(f components.Facing) {
	b.Physics.Facing = f
}
