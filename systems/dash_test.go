package systems

import (
	"testing"

	"github.com/automoto/doomerang-movement/components"
	"github.com/automoto/doomerang-movement/shared/gamemath"
)

func dashToward(move gamemath.Vec2) components.InputData {
	in := pressDash
	in.Move = move
	return in
}

func TestGroundDashCooldown(t *testing.T) {
	h := newHarness(t, gamemath.Zero, floor())
	h.idle(3)

	h.step(dashToward(gamemath.Right))
	if h.state.Dash.Phase != components.DashGround {
		t.Fatalf("dash phase = %v, want ground", h.state.Dash.Phase)
	}
	if h.state.Velocity.X != h.params.DashSpeed {
		t.Fatalf("v.x = %f, want %f", h.state.Velocity.X, h.params.DashSpeed)
	}

	h.idle(4)
	if !h.state.Dash.Dashing() {
		t.Fatalf("dash ended early after %f s", h.state.Dash.Timer)
	}
	h.idle(1)
	if h.state.Dash.Phase != components.DashIdle {
		t.Fatalf("dash phase = %v, want idle after %v", h.state.Dash.Phase, h.params.DashTime)
	}
	if h.state.DashesUsed != 0 {
		t.Fatalf("DashesUsed = %d, want 0 after a grounded dash", h.state.DashesUsed)
	}

	h.step(dashToward(gamemath.Right))
	if h.state.Dash.Dashing() {
		t.Fatalf("dashed again during the ground cooldown")
	}

	h.idle(15)
	h.step(dashToward(gamemath.Left))
	if h.state.Dash.Phase != components.DashGround || h.state.Dash.Direction != gamemath.Left {
		t.Fatalf("dash after cooldown: %+v", h.state.Dash)
	}
}

func TestAirDashCount(t *testing.T) {
	h := newHarness(t, gamemath.Vec2{Y: 10})
	h.idle(1)

	for i := 1; i <= 2; i++ {
		h.step(pressDash)
		if h.state.Dash.Phase != components.DashAir {
			t.Fatalf("dash %d: phase = %v, want air", i, h.state.Dash.Phase)
		}
		if h.state.DashesUsed != i {
			t.Fatalf("dash %d: DashesUsed = %d", i, h.state.DashesUsed)
		}
		if h.state.Velocity.Y != 0 || h.state.Velocity.X != h.params.DashSpeed {
			t.Fatalf("dash %d: v = %v, want a flat dash facing right", i, h.state.Velocity)
		}
		h.idle(6)
	}

	h.step(pressDash)
	if h.state.Dash.Dashing() {
		t.Fatalf("third air dash allowed with %d dashes", h.params.NumberOfDashes)
	}
}

func TestAirDashUp(t *testing.T) {
	h := newHarness(t, gamemath.Vec2{Y: 10})
	h.idle(1)

	h.step(dashToward(gamemath.Up))
	if h.state.Dash.Direction != gamemath.Up {
		t.Fatalf("direction = %v, want up", h.state.Dash.Direction)
	}
	if h.state.Velocity.Y != h.params.DashSpeed || h.state.Velocity.X != 0 {
		t.Fatalf("v = %v, want straight up at dash speed", h.state.Velocity)
	}
	if w := h.c.VerticalWriters(); len(w) != 1 || w[0] != DriverDash {
		t.Fatalf("writers = %v, want [dash]", w)
	}
}

func TestAirDashRefundsWallJump(t *testing.T) {
	h := newHarness(t, gamemath.Vec2{Y: 10})
	h.state.JumpsUsed = 2
	h.state.WallJumpPostBufferTimer = 0.1

	h.step(pressDash)
	if h.state.Dash.Phase != components.DashAir {
		t.Fatalf("dash phase = %v, want air", h.state.Dash.Phase)
	}
	if h.state.JumpsUsed != 1 {
		t.Fatalf("JumpsUsed = %d, want 1 after the refund", h.state.JumpsUsed)
	}
}

func TestDashEndSeedsFastFall(t *testing.T) {
	h := newHarness(t, gamemath.Vec2{Y: 10})
	h.state.Wall = components.WallState{Phase: components.WallJumpAscending, WeightedControl: true}
	h.state.Dash = components.DashState{Phase: components.DashAir, Direction: gamemath.Right, Timer: 0.1}
	h.state.Velocity.Y = -3

	h.idle(1)
	if h.state.Dash.Phase != components.DashFastFalling {
		t.Fatalf("dash phase = %v, want fast falling", h.state.Dash.Phase)
	}
	if h.state.Dash.FastFallReleaseSpeed != -3 {
		t.Fatalf("release speed = %f, want -3", h.state.Dash.FastFallReleaseSpeed)
	}
	if w := h.c.VerticalWriters(); len(w) != 0 {
		t.Fatalf("writers on the ending tick = %v, want none", w)
	}

	h.idle(1)
	if h.state.Velocity.Y != -3 || h.c.Driver() != DriverDash {
		t.Fatalf("first blend tick: v=%f driver=%v", h.state.Velocity.Y, h.c.Driver())
	}

	h.idle(1)
	want := -3 * (1 - testDT/h.params.DashTimeForUpwardsCancel)
	if !near(h.state.Velocity.Y, want) {
		t.Fatalf("second blend tick v = %f, want %f", h.state.Velocity.Y, want)
	}

	h.idle(1)
	want += h.params.Gravity * h.params.DashGravityOnReleaseMultiplier * testDT
	if !near(h.state.Velocity.Y, want) {
		t.Fatalf("after the window v = %f, want %f", h.state.Velocity.Y, want)
	}
	if h.state.Wall.Phase != components.WallJumpAscending {
		t.Fatalf("suspended wall jump was dropped: %v", h.state.Wall.Phase)
	}
}

func TestDashFastFallBlendsUpwardExitWithoutPop(t *testing.T) {
	h := newHarness(t, gamemath.Vec2{Y: 10})
	h.state.Wall = components.WallState{Phase: components.WallJumpAscending, WeightedControl: true}
	h.state.Dash = components.DashState{Phase: components.DashAir, Direction: gamemath.Up, Timer: 0.1}
	h.state.Velocity.Y = h.params.DashSpeed

	h.idle(1)
	if h.state.Dash.Phase != components.DashFastFalling {
		t.Fatalf("dash phase = %v, want fast falling", h.state.Dash.Phase)
	}

	h.idle(1)
	if h.state.Velocity.Y != h.params.DashSpeed {
		t.Fatalf("first blend tick v = %f, want exit speed %f", h.state.Velocity.Y, h.params.DashSpeed)
	}

	h.idle(1)
	want := h.params.DashSpeed * (1 - testDT/h.params.DashTimeForUpwardsCancel)
	if !near(h.state.Velocity.Y, want) {
		t.Fatalf("second blend tick v = %f, want %f", h.state.Velocity.Y, want)
	}

	prev := h.state.Velocity.Y
	for tick := 0; tick < 40 && h.state.Dash.Phase == components.DashFastFalling; tick++ {
		h.idle(1)
		if h.state.Velocity.Y > prev {
			t.Fatalf("tick %d: velocity rose from %f to %f", tick, prev, h.state.Velocity.Y)
		}
		prev = h.state.Velocity.Y
	}
}

func TestJumpCancelsAirDash(t *testing.T) {
	h := newHarness(t, gamemath.Vec2{Y: 10})
	h.idle(1)
	h.step(dashToward(gamemath.Up))

	h.step(pressJump)
	if h.state.Dash.Phase != components.DashIdle {
		t.Fatalf("dash phase = %v, want idle", h.state.Dash.Phase)
	}
	if h.c.Driver() != DriverJump || h.state.Jump.Phase != components.JumpAscending {
		t.Fatalf("driver=%v phase=%v, want a jump", h.c.Driver(), h.state.Jump.Phase)
	}
}

func TestGroundDashSurvivesJump(t *testing.T) {
	h := newHarness(t, gamemath.Zero, floor())
	h.idle(3)
	h.step(dashToward(gamemath.Right))

	in := pressJump
	in.Move = gamemath.Right
	h.step(in)
	if h.state.Dash.Phase != components.DashGround {
		t.Fatalf("dash phase = %v, want the ground dash to continue", h.state.Dash.Phase)
	}
	if h.state.Jump.Phase != components.JumpAscending || h.c.Driver() != DriverJump {
		t.Fatalf("phase=%v driver=%v, want a jump", h.state.Jump.Phase, h.c.Driver())
	}
	if h.state.Velocity.X != h.params.DashSpeed {
		t.Fatalf("v.x = %f, want dash speed", h.state.Velocity.X)
	}
}
