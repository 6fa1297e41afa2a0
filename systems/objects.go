package systems

import (
	"math"

	"github.com/automoto/doomerang-movement/components"
	cfg "github.com/automoto/doomerang-movement/config"
	"github.com/automoto/doomerang-movement/shared/gamemath"
	"github.com/automoto/doomerang-movement/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// contactSlop is how deep (in pixels) two boxes must overlap on the cross
// axis before a solid blocks movement. Bodies resting on a floor sit within
// float error of it and must still walk across tile seams.
const contactSlop = 0.01

// UpdateObjects moves every character by the velocity the controller
// committed. Solids stop the object; they never change the velocity.
func UpdateObjects(ecs *ecs.ECS) {
	space, ok := spaceOf(ecs)
	if !ok {
		return
	}
	dt := tickDelta()

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)
		MoveObject(space, obj.Object, physics.Velocity.Scale(dt))
	})
}

// MoveObject moves obj by d (world units, Y up) in substeps no longer than
// half a cell, resolving each axis on its own.
func MoveObject(space *components.SpaceData, obj *resolv.Object, d gamemath.Vec2) {
	dx := d.X * space.PixelsPerUnit
	dy := -d.Y * space.PixelsPerUnit

	maxStep := float64(space.CellWidth) / 2
	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy)) / maxStep))
	if steps < 1 {
		steps = 1
	}
	sx, sy := dx/float64(steps), dy/float64(steps)

	for i := 0; i < steps; i++ {
		obj.X += resolveHorizontal(obj, sx)
		obj.Y += resolveVertical(obj, sy)
		obj.Update()
	}
}

// resolveHorizontal returns how far obj can move along x before touching a
// solid in front of it.
func resolveHorizontal(obj *resolv.Object, dx float64) float64 {
	if dx == 0 {
		return 0
	}
	check := obj.Check(dx+gamemath.Sign(dx), 0, tags.ResolvSolid)
	if check == nil {
		return dx
	}
	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		if !spans(obj.Y, obj.H, solid.Y, solid.H) {
			continue
		}
		contact := check.ContactWithObject(solid).X()
		dx = limitTravel(dx, contact)
	}
	return dx
}

// resolveVertical is resolveHorizontal along y.
func resolveVertical(obj *resolv.Object, dy float64) float64 {
	if dy == 0 {
		return 0
	}
	checkDistance := dy + gamemath.Sign(dy)
	check := obj.Check(0, checkDistance, tags.ResolvSolid)
	if check == nil {
		return dy
	}
	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		if !spans(obj.X, obj.W, solid.X, solid.W) {
			continue
		}
		contact := check.ContactWithObject(solid).Y()
		dy = limitTravel(dy, contact)
	}
	return dy
}

// limitTravel shortens a move of d to stop at contact. Contacts behind the
// direction of travel belong to solids already overlapped and are ignored;
// a body resting flush may read a contact a hair negative.
func limitTravel(d, contact float64) float64 {
	switch {
	case d > 0 && contact > -contactSlop && contact < d:
		return math.Max(contact, 0)
	case d < 0 && contact < contactSlop && contact > d:
		return math.Min(contact, 0)
	}
	return d
}

// spans reports whether two intervals overlap by more than contactSlop.
func spans(a, aLen, b, bLen float64) bool {
	return a+aLen > b+contactSlop && a < b+bLen-contactSlop
}

func spaceOf(ecs *ecs.ECS) (*components.SpaceData, bool) {
	e, ok := components.Space.First(ecs.World)
	if !ok {
		return nil, false
	}
	return components.Space.Get(e), true
}

func tickDelta() float64 {
	return 1 / float64(cfg.Simulation.TickRate)
}
