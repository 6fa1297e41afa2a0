package systems

import (
	"testing"

	"github.com/automoto/doomerang-movement/components"
	"github.com/automoto/doomerang-movement/config"
	"github.com/automoto/doomerang-movement/shared/gamemath"
)

func TestHorizontalMovement(t *testing.T) {
	tests := []struct {
		name       string
		in         components.InputData
		wantVX     float64
		wantFacing components.Facing
		wantTurns  int
	}{
		{"walk right", components.InputData{Move: gamemath.Right}, 1, components.FacingRight, 0},
		{"run right", components.InputData{Move: gamemath.Right, RunHeld: true}, 2, components.FacingRight, 0},
		{"walk left turns", components.InputData{Move: gamemath.Left}, -1, components.FacingLeft, 1},
		{"no input", components.InputData{}, 0, components.FacingRight, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, gamemath.Zero, floor())
			h.idle(3)

			h.step(tt.in)
			if !near(h.state.Velocity.X, tt.wantVX) {
				t.Fatalf("v.x = %f, want %f", h.state.Velocity.X, tt.wantVX)
			}
			if h.state.Facing != tt.wantFacing {
				t.Fatalf("facing = %v, want %v", h.state.Facing, tt.wantFacing)
			}
			if h.body.turns != tt.wantTurns {
				t.Fatalf("body turned %d times, want %d", h.body.turns, tt.wantTurns)
			}
		})
	}
}

func TestGroundAnimations(t *testing.T) {
	h := newHarness(t, gamemath.Zero, floor())
	h.idle(3)
	if h.anim.last() != config.BehaviorIdle {
		t.Fatalf("animation = %v, want idle", h.anim.last())
	}

	h.step(components.InputData{Move: gamemath.Right})
	if h.anim.last() != config.BehaviorRun {
		t.Fatalf("animation = %v, want run", h.anim.last())
	}
}

func TestDecelerationToRest(t *testing.T) {
	h := newHarness(t, gamemath.Zero, floor())
	h.idle(3)
	h.state.Velocity.X = 10

	// Ground deceleration 20 at 50 Hz closes 40% of the gap each tick.
	for _, want := range []float64{6, 3.6, 2.16} {
		h.idle(1)
		if !near(h.state.Velocity.X, want) {
			t.Fatalf("v.x = %f, want %f", h.state.Velocity.X, want)
		}
	}
}

func TestWallJumpWeightsAirControl(t *testing.T) {
	h := newHarness(t, gamemath.Vec2{Y: 10})
	h.state.Wall = components.WallState{Phase: components.WallJumpAscending, WeightedControl: true}
	h.state.Velocity.X = -20

	h.c.moveHorizontal(components.InputData{}, testDT)
	// Wall jump deceleration is 5, so one tick keeps 90% of the push.
	if !near(h.state.Velocity.X, -18) {
		t.Fatalf("v.x = %f, want -18", h.state.Velocity.X)
	}
}
