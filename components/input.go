package components

import (
	"github.com/automoto/doomerang-movement/shared/gamemath"
	"github.com/yohamta/donburi"
)

// InputData is what the motion controller reads each tick. Pressed flags
// are one-shot edges: they latch when the button goes down and stay set
// until ConsumeEdges runs after the intent pass.
type InputData struct {
	Move    gamemath.Vec2
	RunHeld bool

	JumpPressed bool
	JumpHeld    bool
	DashPressed bool

	// DashHeld is sampled for completeness; no movement rule reads it.
	DashHeld bool
}

// Sample folds raw device state into the intent, raising edges on a
// released-to-held transition.
func (in *InputData) Sample(move gamemath.Vec2, run, jump, dash bool) {
	in.Move = gamemath.Vec2{
		X: gamemath.Clamp(move.X, -1, 1),
		Y: gamemath.Clamp(move.Y, -1, 1),
	}
	in.RunHeld = run

	if jump && !in.JumpHeld {
		in.JumpPressed = true
	}
	in.JumpHeld = jump

	if dash && !in.DashHeld {
		in.DashPressed = true
	}
	in.DashHeld = dash
}

// ConsumeEdges clears the one-shot flags.
func (in *InputData) ConsumeEdges() {
	in.JumpPressed = false
	in.DashPressed = false
}

var Input = donburi.NewComponentType[InputData]()
