package systems

import (
	"github.com/automoto/doomerang-movement/components"
	"github.com/automoto/doomerang-movement/config"
	"github.com/automoto/doomerang-movement/shared/gamemath"
)

// Body is the physical character the controller steers. Bounds are in
// world units with Y up.
type Body interface {
	Bounds() gamemath.Rect
	FeetBounds() gamemath.Rect
	SetVelocity(v gamemath.Vec2)
	Turn(f components.Facing)
}

// CastQuery is a box swept from Origin along Dir for Distance, tested
// against colliders on Layer.
type CastQuery struct {
	Origin   gamemath.Vec2
	Size     gamemath.Vec2
	Dir      gamemath.Vec2
	Distance float64
	Layer    string

	// Reference is the position the hit point is measured against.
	Reference gamemath.Vec2
}

// Area is the swept box.
func (q CastQuery) Area() gamemath.Rect {
	return gamemath.RectFromCenter(q.Origin, q.Size).Sweep(q.Dir, q.Distance)
}

// CastHit is the result of a cast. Point is the collider's closest point to
// the query reference.
type CastHit struct {
	Hit      bool
	Collider any
	Point    gamemath.Vec2
}

// ShapeCaster runs box casts against the collision world.
type ShapeCaster interface {
	BoxCast(q CastQuery) CastHit
}

// AnimationSink receives behavior changes. It never affects motion.
type AnimationSink interface {
	Play(b config.Behavior)
}

// ProbeRecorder receives probe areas for debug drawing.
type ProbeRecorder interface {
	Record(name string, area gamemath.Rect, hit bool)
}
