package systems

import (
	"math"
	"testing"

	"github.com/automoto/doomerang-movement/components"
	"github.com/automoto/doomerang-movement/config"
	"github.com/automoto/doomerang-movement/shared/gamemath"
)

const testDT = 0.02

// testBody is a 1x2 box positioned by its bottom center.
type testBody struct {
	pos    gamemath.Vec2
	vel    gamemath.Vec2
	facing components.Facing
	turns  int
}

func (b *testBody) Bounds() gamemath.Rect {
	return gamemath.Rect{
		Min: gamemath.Vec2{X: b.pos.X - 0.5, Y: b.pos.Y},
		Max: gamemath.Vec2{X: b.pos.X + 0.5, Y: b.pos.Y + 2},
	}
}

func (b *testBody) FeetBounds() gamemath.Rect {
	return gamemath.Rect{
		Min: gamemath.Vec2{X: b.pos.X - 0.45, Y: b.pos.Y},
		Max: gamemath.Vec2{X: b.pos.X + 0.45, Y: b.pos.Y + 0.25},
	}
}

func (b *testBody) SetVelocity(v gamemath.Vec2) { b.vel = v }

func (b *testBody) Turn(f components.Facing) {
	b.facing = f
	b.turns++
}

type testSolid struct {
	rect gamemath.Rect
	wall bool
}

// testCaster checks casts against a fixed list of solids. Every solid is
// ground; only wall solids answer wall casts.
type testCaster struct {
	solids []testSolid
}

func (w *testCaster) BoxCast(q CastQuery) CastHit {
	area := q.Area()
	for i, s := range w.solids {
		if q.Layer == config.Movement.WallLayer && !s.wall {
			continue
		}
		if area.Overlaps(s.rect) {
			return CastHit{Hit: true, Collider: i, Point: s.rect.ClosestPoint(q.Reference)}
		}
	}
	return CastHit{}
}

type animLog struct {
	played []config.Behavior
}

func (a *animLog) Play(b config.Behavior) { a.played = append(a.played, b) }

func (a *animLog) last() config.Behavior {
	if len(a.played) == 0 {
		return config.BehaviorNone
	}
	return a.played[len(a.played)-1]
}

type harness struct {
	t      *testing.T
	params config.MovementConfig
	state  components.MotionData
	body   *testBody
	world  *testCaster
	anim   *animLog
	c      *Controller
}

func newHarness(t *testing.T, pos gamemath.Vec2, solids ...testSolid) *harness {
	t.Helper()
	h := &harness{
		t:      t,
		params: config.DefaultMovement(),
		state:  components.NewMotionData(),
		body:   &testBody{pos: pos},
		world:  &testCaster{solids: solids},
		anim:   &animLog{},
	}
	h.c = &Controller{
		State:  &h.state,
		Params: &h.params,
		Body:   h.body,
		Probe:  h.world,
		Anim:   h.anim,
	}
	return h
}

// floor is a wide slab with its top at y=0.
func floor() testSolid {
	return testSolid{rect: gamemath.Rect{Min: gamemath.Vec2{X: -50, Y: -1}, Max: gamemath.Vec2{X: 50, Y: 0}}}
}

func block(minX, minY, maxX, maxY float64, wall bool) testSolid {
	return testSolid{
		rect: gamemath.Rect{Min: gamemath.Vec2{X: minX, Y: minY}, Max: gamemath.Vec2{X: maxX, Y: maxY}},
		wall: wall,
	}
}

// step runs one frame: the variable pass, the fixed pass, then moves the
// body by the committed velocity.
func (h *harness) step(in components.InputData) {
	h.c.OnVariableTick(in, testDT)
	h.c.OnFixedTick(in, testDT)
	h.integrate()
}

func (h *harness) idle(n int) {
	for i := 0; i < n; i++ {
		h.step(components.InputData{})
	}
}

// hold steps with the jump button down.
func (h *harness) hold(n int) {
	for i := 0; i < n; i++ {
		h.step(components.InputData{JumpHeld: true})
	}
}

// integrate moves the body one axis at a time, stopping flush against
// solids ahead of it.
func (h *harness) integrate() {
	d := h.body.vel.Scale(testDT)

	b := h.body.Bounds()
	x := h.body.pos.X + d.X
	for _, s := range h.world.solids {
		r := s.rect
		if b.Min.Y >= r.Max.Y-1e-9 || b.Max.Y <= r.Min.Y+1e-9 {
			continue
		}
		if d.X > 0 && b.Max.X <= r.Min.X+1e-9 && x+0.5 > r.Min.X {
			x = r.Min.X - 0.5
		}
		if d.X < 0 && b.Min.X >= r.Max.X-1e-9 && x-0.5 < r.Max.X {
			x = r.Max.X + 0.5
		}
	}
	h.body.pos.X = x

	b = h.body.Bounds()
	y := h.body.pos.Y + d.Y
	for _, s := range h.world.solids {
		r := s.rect
		if b.Min.X >= r.Max.X-1e-9 || b.Max.X <= r.Min.X+1e-9 {
			continue
		}
		if d.Y > 0 && b.Max.Y <= r.Min.Y+1e-9 && y+2 > r.Min.Y {
			y = r.Min.Y - 2
		}
		if d.Y < 0 && b.Min.Y >= r.Max.Y-1e-9 && y < r.Max.Y {
			y = r.Max.Y
		}
	}
	h.body.pos.Y = y
}

func (h *harness) checkExclusive() {
	h.t.Helper()
	if w := h.c.VerticalWriters(); len(w) > 1 {
		h.t.Fatalf("vertical velocity written by %v in one tick", w)
	}
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

var (
	pressJump = components.InputData{JumpPressed: true, JumpHeld: true}
	pressDash = components.InputData{DashPressed: true, DashHeld: true}
)
