package systems

import (
	"testing"

	"github.com/automoto/doomerang-movement/components"
	"github.com/automoto/doomerang-movement/config"
	"github.com/automoto/doomerang-movement/shared/gamemath"
)

func TestApexHangAtFiftyHertz(t *testing.T) {
	h := newHarness(t, gamemath.Zero, floor())
	h.idle(3)

	velocities := make([]float64, 0, 23)
	phases := make([]components.JumpPhase, 0, 23)
	record := func() {
		velocities = append(velocities, h.state.Velocity.Y)
		phases = append(phases, h.state.Jump.Phase)
		h.checkExclusive()
	}

	h.step(pressJump)
	record()
	for i := 0; i < 21; i++ {
		h.step(components.InputData{JumpHeld: true})
		record()
	}

	// velocities[k-1] is the velocity after fixed tick k of the jump.
	if velocities[16] <= 0 || phases[16] != components.JumpAscending {
		t.Fatalf("tick 17: v=%f phase=%v, want rising and ascending", velocities[16], phases[16])
	}
	for k := 18; k <= 20; k++ {
		if velocities[k-1] != 0 || phases[k-1] != components.JumpApexHang {
			t.Fatalf("tick %d: v=%f phase=%v, want held at 0 in the apex hang", k, velocities[k-1], phases[k-1])
		}
	}
	if velocities[20] != apexReleaseVelocity || phases[20] != components.JumpDescending {
		t.Fatalf("tick 21: v=%f phase=%v, want %f descending", velocities[20], phases[20], apexReleaseVelocity)
	}
	want := apexReleaseVelocity + h.params.Gravity*h.params.GravityOnReleaseMultiplier*testDT
	if !near(velocities[21], want) {
		t.Fatalf("tick 22: v=%f, want %f", velocities[21], want)
	}
}

func TestFirstJumpTick(t *testing.T) {
	h := newHarness(t, gamemath.Zero, floor())
	h.idle(3)

	h.step(pressJump)

	if h.state.Jump.Phase != components.JumpAscending {
		t.Fatalf("phase = %v, want ascending", h.state.Jump.Phase)
	}
	if h.state.JumpsUsed != 1 {
		t.Fatalf("JumpsUsed = %d, want 1", h.state.JumpsUsed)
	}
	want := h.params.InitialJumpVelocity + h.params.Gravity*testDT
	if !near(h.state.Velocity.Y, want) {
		t.Fatalf("v = %f, want %f", h.state.Velocity.Y, want)
	}
	if h.anim.last() != config.BehaviorJump {
		t.Fatalf("animation = %v, want jump", h.anim.last())
	}
	if h.body.vel != h.state.Velocity {
		t.Fatalf("body velocity %v not committed, state has %v", h.body.vel, h.state.Velocity)
	}
}

func TestLandingResetsWithinOneTick(t *testing.T) {
	h := newHarness(t, gamemath.Zero, floor())
	h.idle(3)

	h.step(pressJump)
	h.hold(4)
	h.step(pressJump)
	if h.state.JumpsUsed != 2 {
		t.Fatalf("JumpsUsed after double jump = %d, want 2", h.state.JumpsUsed)
	}
	if h.anim.last() != config.BehaviorDoubleJump {
		t.Fatalf("animation = %v, want double jump", h.anim.last())
	}

	for i := 0; i < 300 && !h.state.Grounded; i++ {
		h.step(components.InputData{JumpHeld: true})
		h.checkExclusive()
	}
	if !h.state.Grounded {
		t.Fatalf("never landed, body at %v", h.body.pos)
	}

	h.step(components.InputData{JumpHeld: true})
	if h.state.JumpsUsed != 0 || h.state.DashesUsed != 0 {
		t.Fatalf("counters after landing: jumps=%d dashes=%d", h.state.JumpsUsed, h.state.DashesUsed)
	}
	if h.state.Airborne() {
		t.Fatalf("still airborne after landing: %+v", h.state.Flags())
	}
	if h.state.Velocity.Y != h.params.GroundedVelocity {
		t.Fatalf("v = %f, want grounded velocity %f", h.state.Velocity.Y, h.params.GroundedVelocity)
	}
}

func TestJumpCountIsBounded(t *testing.T) {
	h := newHarness(t, gamemath.Zero, floor())
	h.idle(3)

	h.step(pressJump)
	h.hold(3)
	h.step(pressJump)
	h.hold(3)

	v := h.state.Velocity.Y
	h.step(pressJump)
	if h.state.JumpsUsed != 2 {
		t.Fatalf("JumpsUsed = %d, want 2", h.state.JumpsUsed)
	}
	if h.state.Velocity.Y >= v {
		t.Fatalf("third press relaunched: v went from %f to %f", v, h.state.Velocity.Y)
	}
}

func TestBufferedJumpFiresOnLandingTick(t *testing.T) {
	h := newHarness(t, gamemath.Zero, floor())
	h.params.NumberOfJumpsAllowed = 1
	h.idle(3)

	h.step(pressJump)
	for i := 0; i < 200 && !(h.state.Velocity.Y < 0 && h.body.pos.Y < 1); i++ {
		h.step(components.InputData{JumpHeld: true})
	}
	if h.body.pos.Y >= 1 {
		t.Fatalf("body never came down, at %v", h.body.pos)
	}

	h.step(pressJump)
	if h.state.Jump.Phase == components.JumpAscending {
		t.Fatalf("buffered press jumped in mid air")
	}

	for i := 0; i < 4; i++ {
		sawGround := h.state.Grounded
		h.step(components.InputData{JumpHeld: true})
		if !sawGround {
			continue
		}
		if h.state.Jump.Phase != components.JumpAscending {
			t.Fatalf("buffered jump did not fire on the landing tick: %+v", h.state.Flags())
		}
		if h.state.JumpsUsed != 1 {
			t.Fatalf("JumpsUsed = %d, want 1 for a fresh ground jump", h.state.JumpsUsed)
		}
		return
	}
	t.Fatalf("never touched down within the buffer window, body at %v", h.body.pos)
}

// ledge leaves the floor under x < 0 only.
func ledge() testSolid {
	return block(-50, -1, 0, 0, false)
}

func walkOffLedge(h *harness) {
	h.idle(3)
	h.body.pos.X = 1
}

func TestCoyoteJumpMatchesGroundJump(t *testing.T) {
	ground := newHarness(t, gamemath.Vec2{X: -2}, ledge())
	ground.idle(3)
	ground.step(pressJump)

	h := newHarness(t, gamemath.Vec2{X: -2}, ledge())
	walkOffLedge(h)
	h.idle(2)
	if h.state.Grounded {
		t.Fatalf("still grounded past the ledge")
	}

	h.step(pressJump)
	if h.state.Jump.Phase != components.JumpAscending || h.state.JumpsUsed != 1 {
		t.Fatalf("coyote jump: phase=%v used=%d", h.state.Jump.Phase, h.state.JumpsUsed)
	}
	if !near(h.state.Velocity.Y, ground.state.Velocity.Y) {
		t.Fatalf("coyote jump v=%f, ground jump v=%f", h.state.Velocity.Y, ground.state.Velocity.Y)
	}
}

func TestPressAfterCoyoteWindow(t *testing.T) {
	tests := []struct {
		name     string
		allowed  int
		wantUsed int
		wantJump bool
	}{
		{"single jump is lost", 1, 0, false},
		{"air jump spends both charges", 2, 2, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, gamemath.Vec2{X: -2}, ledge())
			h.params.NumberOfJumpsAllowed = tt.allowed
			walkOffLedge(h)
			h.idle(10)

			h.step(pressJump)
			if got := h.state.Jump.Phase == components.JumpAscending; got != tt.wantJump {
				t.Fatalf("jumped = %v, want %v (phase %v)", got, tt.wantJump, h.state.Jump.Phase)
			}
			if h.state.JumpsUsed != tt.wantUsed {
				t.Fatalf("JumpsUsed = %d, want %d", h.state.JumpsUsed, tt.wantUsed)
			}
			if !tt.wantJump && h.state.Jump.Phase != components.JumpFalling {
				t.Fatalf("phase = %v, want falling", h.state.Jump.Phase)
			}
		})
	}
}

func TestReleaseStartsFastFall(t *testing.T) {
	h := newHarness(t, gamemath.Zero, floor())
	h.idle(3)

	h.step(pressJump)
	h.hold(2)
	release := h.state.Velocity.Y

	h.step(components.InputData{})
	if h.state.Jump.Phase != components.JumpFastFalling {
		t.Fatalf("phase = %v, want fast falling", h.state.Jump.Phase)
	}
	if h.state.Jump.FastFallReleaseSpeed != release {
		t.Fatalf("release speed = %f, want %f", h.state.Jump.FastFallReleaseSpeed, release)
	}
	// The blend starts at the release speed and eases to zero.
	if h.state.Velocity.Y != release {
		t.Fatalf("first fast-fall tick v = %f, want %f", h.state.Velocity.Y, release)
	}
	h.idle(1)
	blended := h.state.Velocity.Y
	if blended >= release || blended < 0 {
		t.Fatalf("second fast-fall tick v = %f, want between 0 and %f", blended, release)
	}
	h.idle(1)
	want := blended + h.params.Gravity*h.params.GravityOnReleaseMultiplier*testDT
	if !near(h.state.Velocity.Y, want) {
		t.Fatalf("after the cancel window v = %f, want %f", h.state.Velocity.Y, want)
	}
}

func TestHeadBumpCutsJump(t *testing.T) {
	h := newHarness(t, gamemath.Zero, floor(), block(-50, 3, 50, 4, false))
	h.idle(3)

	h.step(pressJump)
	for i := 0; i < 10 && !h.state.BumpedHead; i++ {
		h.step(components.InputData{JumpHeld: true})
	}
	if !h.state.BumpedHead {
		t.Fatalf("never bumped the ceiling, body at %v", h.body.pos)
	}

	h.step(components.InputData{JumpHeld: true})
	if h.state.Jump.Phase != components.JumpFastFalling {
		t.Fatalf("phase = %v, want fast falling", h.state.Jump.Phase)
	}
	if h.state.Velocity.Y > 0 {
		t.Fatalf("still rising into the ceiling: v=%f", h.state.Velocity.Y)
	}
}

func TestWalkingOffLedgeFalls(t *testing.T) {
	h := newHarness(t, gamemath.Vec2{X: -2}, ledge())
	walkOffLedge(h)
	h.idle(1)

	if h.c.Driver() != DriverFall {
		t.Fatalf("driver = %v, want fall", h.c.Driver())
	}
	if h.state.Jump.Phase != components.JumpFalling {
		t.Fatalf("phase = %v, want falling", h.state.Jump.Phase)
	}
	if h.anim.last() != config.BehaviorFall {
		t.Fatalf("animation = %v, want fall", h.anim.last())
	}
}
