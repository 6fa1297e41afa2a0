package systems

import (
	"testing"

	"github.com/automoto/doomerang-movement/components"
	"github.com/automoto/doomerang-movement/config"
	"github.com/automoto/doomerang-movement/shared/gamemath"
)

// rightWall is a slidable wall whose face is at x=1.
func rightWall() testSolid {
	return block(1, -20, 2, 20, true)
}

// startSlide drops the body beside the right wall until it slides.
func startSlide(t *testing.T, h *harness) {
	t.Helper()
	h.idle(2)
	if h.state.Wall.Phase != components.WallSliding {
		t.Fatalf("wall phase = %v, want sliding (touching=%v v=%f)",
			h.state.Wall.Phase, h.state.TouchingWall, h.state.Velocity.Y)
	}
}

func TestWallSlideResetsCounters(t *testing.T) {
	h := newHarness(t, gamemath.Vec2{X: 0.45, Y: 5}, rightWall())
	h.state.JumpsUsed = 2
	h.state.DashesUsed = 2

	startSlide(t, h)

	if h.state.JumpsUsed != 0 || h.state.DashesUsed != 0 {
		t.Fatalf("counters after slide start: jumps=%d dashes=%d", h.state.JumpsUsed, h.state.DashesUsed)
	}
	if !near(h.state.Velocity.Y, -h.params.WallSlideSpeed) {
		t.Fatalf("slide v = %f, want %f", h.state.Velocity.Y, -h.params.WallSlideSpeed)
	}
	if w := h.c.VerticalWriters(); len(w) != 1 || w[0] != DriverWallSlide {
		t.Fatalf("writers = %v, want [wall_slide]", w)
	}
}

func TestWallJumpFromSlide(t *testing.T) {
	h := newHarness(t, gamemath.Vec2{X: 0.45, Y: 5}, rightWall())
	startSlide(t, h)

	h.c.OnVariableTick(pressJump, testDT)
	if h.state.Wall.Phase != components.WallJumpAscending {
		t.Fatalf("wall phase = %v, want wall jump ascending", h.state.Wall.Phase)
	}
	if h.state.Velocity.X != -20 || h.state.Velocity.Y != h.params.InitialWallJumpVelocity {
		t.Fatalf("launch velocity = %v", h.state.Velocity)
	}
	// Leaving the slide spends a jump.
	if h.state.JumpsUsed != 1 {
		t.Fatalf("JumpsUsed = %d, want 1", h.state.JumpsUsed)
	}
	if h.anim.last() != config.BehaviorWallJump {
		t.Fatalf("animation = %v, want wall jump", h.anim.last())
	}

	h.c.OnFixedTick(pressJump, testDT)
	if w := h.c.VerticalWriters(); len(w) != 1 || w[0] != DriverWallJump {
		t.Fatalf("writers = %v, want [wall_jump]", w)
	}
	want := h.params.InitialWallJumpVelocity + h.params.WallJumpGravity*testDT
	if !near(h.state.Velocity.Y, want) {
		t.Fatalf("v = %f, want %f", h.state.Velocity.Y, want)
	}
}

func TestWallJumpAfterLosingContact(t *testing.T) {
	h := newHarness(t, gamemath.Vec2{X: 0.45, Y: 5}, rightWall())
	startSlide(t, h)

	// Pulled clear of the wall mid-slide.
	h.body.pos.X = -0.05
	h.idle(2)
	if h.state.Wall.Phase != components.WallSlideFalling {
		t.Fatalf("wall phase = %v, want slide falling", h.state.Wall.Phase)
	}
	h.idle(1)

	h.c.OnVariableTick(pressJump, testDT)
	if h.state.Wall.Phase != components.WallJumpAscending {
		t.Fatalf("wall phase = %v, want wall jump ascending", h.state.Wall.Phase)
	}
	// The wall was on the right, so the jump pushes left.
	if h.state.Velocity.X != -20 {
		t.Fatalf("v.x = %f, want -20", h.state.Velocity.X)
	}
}

func TestSlideFallKeepsExtraJump(t *testing.T) {
	h := newHarness(t, gamemath.Vec2{X: 0.45, Y: 5}, rightWall())
	startSlide(t, h)
	h.body.pos.X = -0.05
	h.idle(2)

	// Let the wall jump buffer run out.
	h.idle(7)
	if h.state.WallJumpPostBufferTimer > 0 {
		t.Fatalf("post buffer still %f", h.state.WallJumpPostBufferTimer)
	}

	h.step(pressJump)
	if h.state.Jump.Phase != components.JumpAscending {
		t.Fatalf("phase = %v, want ascending", h.state.Jump.Phase)
	}
	if h.state.JumpsUsed != 1 {
		t.Fatalf("JumpsUsed = %d, want 1", h.state.JumpsUsed)
	}
	if h.state.Wall.Phase != components.WallNone {
		t.Fatalf("wall phase = %v, want none", h.state.Wall.Phase)
	}
}

func TestWallJumpWithoutContactUsesFacing(t *testing.T) {
	tests := []struct {
		name   string
		facing components.Facing
		want   float64
	}{
		{"facing right pushes left", components.FacingRight, -20},
		{"facing left pushes right", components.FacingLeft, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, gamemath.Vec2{Y: 5})
			h.state.Facing = tt.facing

			h.c.initiateWallJump()
			if h.state.Velocity.X != tt.want {
				t.Fatalf("v.x = %f, want %f", h.state.Velocity.X, tt.want)
			}
		})
	}
}

func TestWallJumpReleaseCutsRise(t *testing.T) {
	h := newHarness(t, gamemath.Vec2{X: 0.45, Y: 5}, rightWall())
	startSlide(t, h)

	h.step(pressJump)
	h.hold(3)
	if h.state.TouchingWall {
		t.Fatalf("still on the wall at %v", h.body.pos)
	}

	h.step(components.InputData{})
	if h.state.Wall.Phase != components.WallJumpFastFalling {
		t.Fatalf("wall phase = %v, want wall jump fast falling", h.state.Wall.Phase)
	}
}
