package components

import (
	"github.com/automoto/doomerang-movement/shared/gamemath"
	"github.com/yohamta/donburi"
)

// Facing is the horizontal direction the character looks.
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

// Sign is 1 for right and -1 for left.
func (f Facing) Sign() float64 {
	if f == FacingLeft {
		return -1
	}
	return 1
}

func (f Facing) String() string {
	if f == FacingLeft {
		return "left"
	}
	return "right"
}

// JumpPhase is the jump family state. JumpGrounded means no jump or fall is
// in progress, which includes hanging on a wall or dashing.
type JumpPhase int

const (
	JumpGrounded JumpPhase = iota
	JumpFalling            // free fall without a jump
	JumpAscending
	JumpApexHang
	JumpDescending
	JumpFastFalling
)

var jumpPhaseNames = [...]string{"grounded", "falling", "ascending", "apex_hang", "descending", "fast_falling"}

func (p JumpPhase) String() string { return jumpPhaseNames[p] }

// JumpState tracks the jump family.
type JumpState struct {
	Phase        JumpPhase
	TimePastApex float64

	FastFallTime         float64
	FastFallReleaseSpeed float64

	// ReleasedDuringBuffer marks a jump request whose button came up before
	// the buffered jump fired. The jump then starts already fast-falling.
	ReleasedDuringBuffer bool
}

// Active reports whether a jump (not a plain fall) is in progress.
func (j JumpState) Active() bool {
	return j.Phase >= JumpAscending
}

// WallPhase is the wall family state: sliding, the grace fall after losing
// the wall, and the four wall jump phases.
type WallPhase int

const (
	WallNone WallPhase = iota
	WallSliding
	WallSlideFalling
	WallJumpAscending
	WallJumpApexHang
	WallJumpFalling
	WallJumpFastFalling
)

var wallPhaseNames = [...]string{"none", "sliding", "slide_falling", "jump_ascending", "jump_apex_hang", "jump_falling", "jump_fast_falling"}

func (p WallPhase) String() string { return wallPhaseNames[p] }

// WallContact is the last wall the wall probe touched. It is a reference,
// not ownership: Collider belongs to the collision host.
type WallContact struct {
	Point    gamemath.Vec2
	Collider any
}

// WallState tracks the wall family.
type WallState struct {
	Phase WallPhase

	// WeightedControl selects the wall jump acceleration pair for horizontal
	// movement until the wall jump reaches its apex time.
	WeightedControl bool
	Time            float64
	TimePastApex    float64

	FastFallTime         float64
	FastFallReleaseSpeed float64

	// LastContact survives losing the wall so a buffered wall jump still
	// knows which way to push. It is replaced on new contact, never cleared.
	LastContact *WallContact
}

// Jumping reports whether a wall jump is in progress.
func (w WallState) Jumping() bool {
	return w.Phase >= WallJumpAscending
}

// DashPhase is the dash family state.
type DashPhase int

const (
	DashIdle DashPhase = iota
	DashGround
	DashAir
	DashFastFalling
)

var dashPhaseNames = [...]string{"idle", "ground", "air", "fast_falling"}

func (p DashPhase) String() string { return dashPhaseNames[p] }

// DashState tracks the dash family.
type DashState struct {
	Phase     DashPhase
	Direction gamemath.Vec2
	Timer     float64

	// GroundCooldown only counts down while grounded; a ground dash needs it
	// below zero.
	GroundCooldown float64

	FastFallTime         float64
	FastFallReleaseSpeed float64
}

// Dashing reports whether a dash is moving the character.
func (d DashState) Dashing() bool {
	return d.Phase == DashGround || d.Phase == DashAir
}

// MotionData is the whole motion controller state for one character.
type MotionData struct {
	Velocity gamemath.Vec2
	Facing   Facing

	Grounded     bool
	BumpedHead   bool
	TouchingWall bool

	Jump JumpState
	Wall WallState
	Dash DashState

	JumpsUsed  int
	DashesUsed int

	JumpBufferTimer         float64
	CoyoteTimer             float64
	WallJumpPostBufferTimer float64
}

// NewMotionData returns the spawn state: facing right, nothing in progress.
func NewMotionData() MotionData {
	return MotionData{Facing: FacingRight}
}

// Airborne reports whether any family holds an in-air state that landing
// must clear.
func (m *MotionData) Airborne() bool {
	return m.Jump.Phase != JumpGrounded ||
		m.Wall.Phase != WallNone ||
		m.Dash.Phase == DashAir ||
		m.Dash.Phase == DashFastFalling
}

// Flags flattens the family states into the classic boolean view. Traces
// and debug overlays print it.
func (m *MotionData) Flags() MotionFlags {
	return MotionFlags{
		Jumping:             m.Jump.Active(),
		Falling:             m.Jump.Phase == JumpFalling || m.Jump.Phase == JumpDescending || (m.Jump.Phase == JumpFastFalling && m.Velocity.Y < 0),
		FastFalling:         m.Jump.Phase == JumpFastFalling,
		WallSliding:         m.Wall.Phase == WallSliding,
		WallSlideFalling:    m.Wall.Phase == WallSlideFalling,
		WallJumping:         m.Wall.Jumping(),
		WallJumpFalling:     m.Wall.Phase == WallJumpFalling,
		WallJumpFastFalling: m.Wall.Phase == WallJumpFastFalling,
		Dashing:             m.Dash.Dashing(),
		AirDashing:          m.Dash.Phase == DashAir,
		DashFastFalling:     m.Dash.Phase == DashFastFalling,
	}
}

// MotionFlags is a read-only boolean view of MotionData.
type MotionFlags struct {
	Jumping             bool `yaml:"jumping,omitempty"`
	Falling             bool `yaml:"falling,omitempty"`
	FastFalling         bool `yaml:"fast_falling,omitempty"`
	WallSliding         bool `yaml:"wall_sliding,omitempty"`
	WallSlideFalling    bool `yaml:"wall_slide_falling,omitempty"`
	WallJumping         bool `yaml:"wall_jumping,omitempty"`
	WallJumpFalling     bool `yaml:"wall_jump_falling,omitempty"`
	WallJumpFastFalling bool `yaml:"wall_jump_fast_falling,omitempty"`
	Dashing             bool `yaml:"dashing,omitempty"`
	AirDashing          bool `yaml:"air_dashing,omitempty"`
	DashFastFalling     bool `yaml:"dash_fast_falling,omitempty"`
}

var Motion = donburi.NewComponentType[MotionData]()
