package config

// Behavior names an animation the motion controller asks the sink to play.
type Behavior int

const (
	BehaviorNone Behavior = iota
	BehaviorIdle
	BehaviorRun
	BehaviorJump
	BehaviorDoubleJump
	BehaviorWallJump
	BehaviorFall
)

var behaviorNames = map[Behavior]string{
	BehaviorNone:       "none",
	BehaviorIdle:       "idle",
	BehaviorRun:        "run",
	BehaviorJump:       "jump",
	BehaviorDoubleJump: "double_jump",
	BehaviorWallJump:   "wall_jump",
	BehaviorFall:       "fall",
}

func (b Behavior) String() string {
	if name, ok := behaviorNames[b]; ok {
		return name
	}
	return "unknown"
}

// AnimationDef is a frame range in a sprite strip.
type AnimationDef struct {
	First int
	Last  int
	Step  int
	Speed float32
}

// CharacterAnimations maps each behavior to its frames in the playground
// sprite strip. Speed is ticks per frame.
var CharacterAnimations = map[Behavior]AnimationDef{
	BehaviorIdle:       {First: 0, Last: 5, Step: 1, Speed: 8},
	BehaviorRun:        {First: 6, Last: 13, Step: 1, Speed: 4},
	BehaviorJump:       {First: 14, Last: 16, Step: 1, Speed: 6},
	BehaviorDoubleJump: {First: 17, Last: 20, Step: 1, Speed: 4},
	BehaviorWallJump:   {First: 21, Last: 23, Step: 1, Speed: 5},
	BehaviorFall:       {First: 24, Last: 26, Step: 1, Speed: 6},
}
