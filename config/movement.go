package config

import (
	"errors"
	"fmt"

	"github.com/automoto/doomerang-movement/shared/gamemath"
)

// MovementConfig holds every tunable of the motion controller. Units are
// world units (a character is about one unit wide) and seconds.
//
// Gravity and launch speeds are never tuned directly: call Derive after the
// raw values change.
type MovementConfig struct {
	// Walk / run
	MaxWalkSpeed float64 `yaml:"max_walk_speed" toml:"max_walk_speed"`
	MaxRunSpeed  float64 `yaml:"max_run_speed" toml:"max_run_speed"`

	GroundAcceleration float64 `yaml:"ground_acceleration" toml:"ground_acceleration"`
	GroundDeceleration float64 `yaml:"ground_deceleration" toml:"ground_deceleration"`
	AirAcceleration    float64 `yaml:"air_acceleration" toml:"air_acceleration"`
	AirDeceleration    float64 `yaml:"air_deceleration" toml:"air_deceleration"`

	WallJumpMoveAcceleration float64 `yaml:"wall_jump_move_acceleration" toml:"wall_jump_move_acceleration"`
	WallJumpMoveDeceleration float64 `yaml:"wall_jump_move_deceleration" toml:"wall_jump_move_deceleration"`

	// Jump
	JumpHeight                   float64 `yaml:"jump_height" toml:"jump_height"`
	JumpHeightCompensationFactor float64 `yaml:"jump_height_compensation_factor" toml:"jump_height_compensation_factor"`
	TimeTillJumpApex             float64 `yaml:"time_till_jump_apex" toml:"time_till_jump_apex"`
	GravityOnReleaseMultiplier   float64 `yaml:"gravity_on_release_multiplier" toml:"gravity_on_release_multiplier"`
	MaxFallSpeed                 float64 `yaml:"max_fall_speed" toml:"max_fall_speed"`
	NumberOfJumpsAllowed         int     `yaml:"number_of_jumps_allowed" toml:"number_of_jumps_allowed"`
	ResetJumpsOnWallSlide        bool    `yaml:"reset_jumps_on_wall_slide" toml:"reset_jumps_on_wall_slide"`

	// Fast-fall blend window after an early release or a head bump.
	TimeForUpwardsCancel float64 `yaml:"time_for_upwards_cancel" toml:"time_for_upwards_cancel"`

	ApexThreshold float64 `yaml:"apex_threshold" toml:"apex_threshold"`
	ApexHangTime  float64 `yaml:"apex_hang_time" toml:"apex_hang_time"`

	JumpBufferTime float64 `yaml:"jump_buffer_time" toml:"jump_buffer_time"`
	JumpCoyoteTime float64 `yaml:"jump_coyote_time" toml:"jump_coyote_time"`

	// Wall slide
	WallSlideSpeed             float64 `yaml:"wall_slide_speed" toml:"wall_slide_speed"`
	WallSlideDecelerationSpeed float64 `yaml:"wall_slide_deceleration_speed" toml:"wall_slide_deceleration_speed"`

	// Wall jump. X is the push magnitude away from the wall, Y the height.
	WallJumpDirection                  gamemath.Vec2 `yaml:"wall_jump_direction" toml:"wall_jump_direction"`
	WallJumpPostBufferTime             float64       `yaml:"wall_jump_post_buffer_time" toml:"wall_jump_post_buffer_time"`
	WallJumpGravityOnReleaseMultiplier float64       `yaml:"wall_jump_gravity_on_release_multiplier" toml:"wall_jump_gravity_on_release_multiplier"`
	WallJumpApexThreshold              float64       `yaml:"wall_jump_apex_threshold" toml:"wall_jump_apex_threshold"`
	WallJumpApexHangTime               float64       `yaml:"wall_jump_apex_hang_time" toml:"wall_jump_apex_hang_time"`

	// Dash
	DashTime                       float64 `yaml:"dash_time" toml:"dash_time"`
	DashSpeed                      float64 `yaml:"dash_speed" toml:"dash_speed"`
	TimeBetweenGroundDashes        float64 `yaml:"time_between_ground_dashes" toml:"time_between_ground_dashes"`
	ResetDashOnWallSlide           bool    `yaml:"reset_dash_on_wall_slide" toml:"reset_dash_on_wall_slide"`
	NumberOfDashes                 int     `yaml:"number_of_dashes" toml:"number_of_dashes"`
	DashDiagonalBias               float64 `yaml:"dash_diagonal_bias" toml:"dash_diagonal_bias"`
	DashGravityOnReleaseMultiplier float64 `yaml:"dash_gravity_on_release_multiplier" toml:"dash_gravity_on_release_multiplier"`
	DashTimeForUpwardsCancel       float64 `yaml:"dash_time_for_upwards_cancel" toml:"dash_time_for_upwards_cancel"`

	// Collision probes
	GroundDetectionRayLength         float64 `yaml:"ground_detection_ray_length" toml:"ground_detection_ray_length"`
	HeadDetectionRayLength           float64 `yaml:"head_detection_ray_length" toml:"head_detection_ray_length"`
	HeadWidth                        float64 `yaml:"head_width" toml:"head_width"`
	WallDetectionRayLength           float64 `yaml:"wall_detection_ray_length" toml:"wall_detection_ray_length"`
	WallDetectionRayHeightMultiplier float64 `yaml:"wall_detection_ray_height_multiplier" toml:"wall_detection_ray_height_multiplier"`
	GroundLayer                      string  `yaml:"ground_layer" toml:"ground_layer"`
	WallLayer                        string  `yaml:"wall_layer" toml:"wall_layer"`

	// Velocity limits
	GroundedVelocity float64 `yaml:"grounded_velocity" toml:"grounded_velocity"`
	MaxRiseSpeed     float64 `yaml:"max_rise_speed" toml:"max_rise_speed"`
	DashClampSpeed   float64 `yaml:"dash_clamp_speed" toml:"dash_clamp_speed"`

	Debug ProbeDebugConfig `yaml:"debug" toml:"debug"`

	// Derived
	AdjustedJumpHeight      float64 `yaml:"-" toml:"-"`
	Gravity                 float64 `yaml:"-" toml:"-"`
	InitialJumpVelocity     float64 `yaml:"-" toml:"-"`
	AdjustedWallJumpHeight  float64 `yaml:"-" toml:"-"`
	WallJumpGravity         float64 `yaml:"-" toml:"-"`
	InitialWallJumpVelocity float64 `yaml:"-" toml:"-"`
}

// ProbeDebugConfig toggles the probe boxes recorded for drawing.
type ProbeDebugConfig struct {
	ShowGroundBox bool `yaml:"show_ground_box" toml:"show_ground_box"`
	ShowHeadBox   bool `yaml:"show_head_box" toml:"show_head_box"`
	ShowWallBox   bool `yaml:"show_wall_box" toml:"show_wall_box"`
}

// DefaultMovement returns the stock tuning with derived values filled in.
func DefaultMovement() MovementConfig {
	m := MovementConfig{
		MaxWalkSpeed:             10,
		MaxRunSpeed:              20,
		GroundAcceleration:       5,
		GroundDeceleration:       20,
		AirAcceleration:          5,
		AirDeceleration:          20,
		WallJumpMoveAcceleration: 5,
		WallJumpMoveDeceleration: 5,

		JumpHeight:                   6.5,
		JumpHeightCompensationFactor: 1.054,
		TimeTillJumpApex:             0.35,
		GravityOnReleaseMultiplier:   2,
		MaxFallSpeed:                 26,
		NumberOfJumpsAllowed:         2,
		ResetJumpsOnWallSlide:        true,
		TimeForUpwardsCancel:         0.027,
		ApexThreshold:                0.97,
		ApexHangTime:                 0.075,
		JumpBufferTime:               0.1,
		JumpCoyoteTime:               0.1,

		WallSlideSpeed:             5,
		WallSlideDecelerationSpeed: 50,

		WallJumpDirection:                  gamemath.Vec2{X: -20, Y: 6.5},
		WallJumpPostBufferTime:             0.125,
		WallJumpGravityOnReleaseMultiplier: 1,
		WallJumpApexThreshold:              0.97,
		WallJumpApexHangTime:               0.075,

		DashTime:                       0.11,
		DashSpeed:                      50,
		TimeBetweenGroundDashes:        0.25,
		ResetDashOnWallSlide:           true,
		NumberOfDashes:                 2,
		DashDiagonalBias:               0.4,
		DashGravityOnReleaseMultiplier: 1,
		DashTimeForUpwardsCancel:       0.027,

		GroundDetectionRayLength:         0.02,
		HeadDetectionRayLength:           0.02,
		HeadWidth:                        0.75,
		WallDetectionRayLength:           0.125,
		WallDetectionRayHeightMultiplier: 0.9,
		GroundLayer:                      "ground",
		WallLayer:                        "wall",

		GroundedVelocity: -9.81,
		MaxRiseSpeed:     50,
		DashClampSpeed:   100,
	}
	m.Derive()
	return m
}

// Derive recomputes gravity and launch speeds from height and time to apex.
func (m *MovementConfig) Derive() {
	m.AdjustedJumpHeight = m.JumpHeight * m.JumpHeightCompensationFactor
	m.Gravity = gamemath.JumpGravity(m.AdjustedJumpHeight, m.TimeTillJumpApex)
	m.InitialJumpVelocity = gamemath.LaunchSpeed(m.Gravity, m.TimeTillJumpApex)

	m.AdjustedWallJumpHeight = m.WallJumpDirection.Y * m.JumpHeightCompensationFactor
	m.WallJumpGravity = gamemath.JumpGravity(m.AdjustedWallJumpHeight, m.TimeTillJumpApex)
	m.InitialWallJumpVelocity = gamemath.LaunchSpeed(m.WallJumpGravity, m.TimeTillJumpApex)
}

// Validate reports every out-of-range value at once.
func (m *MovementConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be > 0, got %v", name, v))
		}
	}
	nonNegative := func(name string, v float64) {
		if v < 0 {
			errs = append(errs, fmt.Errorf("%s must be >= 0, got %v", name, v))
		}
	}
	fraction := func(name string, v float64) {
		if v <= 0 || v > 1 {
			errs = append(errs, fmt.Errorf("%s must be in (0, 1], got %v", name, v))
		}
	}

	positive("max_walk_speed", m.MaxWalkSpeed)
	positive("max_run_speed", m.MaxRunSpeed)
	positive("jump_height", m.JumpHeight)
	positive("jump_height_compensation_factor", m.JumpHeightCompensationFactor)
	positive("time_till_jump_apex", m.TimeTillJumpApex)
	positive("max_fall_speed", m.MaxFallSpeed)
	positive("max_rise_speed", m.MaxRiseSpeed)
	positive("dash_clamp_speed", m.DashClampSpeed)
	positive("time_for_upwards_cancel", m.TimeForUpwardsCancel)
	positive("dash_time_for_upwards_cancel", m.DashTimeForUpwardsCancel)
	positive("dash_time", m.DashTime)
	positive("wall_jump_direction.y", m.WallJumpDirection.Y)

	nonNegative("ground_acceleration", m.GroundAcceleration)
	nonNegative("ground_deceleration", m.GroundDeceleration)
	nonNegative("air_acceleration", m.AirAcceleration)
	nonNegative("air_deceleration", m.AirDeceleration)
	nonNegative("apex_hang_time", m.ApexHangTime)
	nonNegative("wall_jump_apex_hang_time", m.WallJumpApexHangTime)
	nonNegative("jump_buffer_time", m.JumpBufferTime)
	nonNegative("jump_coyote_time", m.JumpCoyoteTime)
	nonNegative("wall_jump_post_buffer_time", m.WallJumpPostBufferTime)
	nonNegative("dash_speed", m.DashSpeed)
	nonNegative("dash_diagonal_bias", m.DashDiagonalBias)
	nonNegative("ground_detection_ray_length", m.GroundDetectionRayLength)
	nonNegative("head_detection_ray_length", m.HeadDetectionRayLength)
	nonNegative("wall_detection_ray_length", m.WallDetectionRayLength)

	fraction("apex_threshold", m.ApexThreshold)
	fraction("wall_jump_apex_threshold", m.WallJumpApexThreshold)
	fraction("head_width", m.HeadWidth)
	fraction("wall_detection_ray_height_multiplier", m.WallDetectionRayHeightMultiplier)

	if m.NumberOfJumpsAllowed < 1 {
		errs = append(errs, fmt.Errorf("number_of_jumps_allowed must be >= 1, got %d", m.NumberOfJumpsAllowed))
	}
	if m.NumberOfDashes < 0 {
		errs = append(errs, fmt.Errorf("number_of_dashes must be >= 0, got %d", m.NumberOfDashes))
	}
	if m.GroundedVelocity > 0 {
		errs = append(errs, fmt.Errorf("grounded_velocity must be <= 0, got %v", m.GroundedVelocity))
	}
	if m.GroundLayer == "" || m.WallLayer == "" {
		errs = append(errs, errors.New("ground_layer and wall_layer must be set"))
	}

	return errors.Join(errs...)
}
