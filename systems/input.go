package systems

import (
	"math"

	"github.com/automoto/doomerang-movement/components"
	cfg "github.com/automoto/doomerang-movement/config"
	"github.com/automoto/doomerang-movement/shared/gamemath"
	"github.com/automoto/doomerang-movement/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls keyboard and gamepads and samples the result into every
// character's intent. Must run BEFORE UpdateMotionIntent.
func UpdateInput(ecs *ecs.ECS) {
	settings := GetOrCreateSettings(ecs)

	settings.Previous = settings.Current
	settings.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				settings.Current[actionID] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					settings.Current[actionID] = true
				}
			}
		}
	}

	move := digitalMove(settings)
	if stick, ok := analogStick(gamepadIDs); ok {
		move = stick
	}

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		components.Input.Get(e).Sample(
			move,
			settings.Current[cfg.ActionRun],
			settings.Current[cfg.ActionJump],
			settings.Current[cfg.ActionDash],
		)
	})
}

// digitalMove turns the direction actions into a stick value. Opposite
// directions cancel.
func digitalMove(s *components.SettingsData) gamemath.Vec2 {
	var move gamemath.Vec2
	if s.Current[cfg.ActionMoveLeft] {
		move.X--
	}
	if s.Current[cfg.ActionMoveRight] {
		move.X++
	}
	if s.Current[cfg.ActionMoveUp] {
		move.Y++
	}
	if s.Current[cfg.ActionMoveDown] {
		move.Y--
	}
	return move
}

// analogStick reads the first left stick outside the deadzone. The stick
// reports Y down; the controller wants Y up.
func analogStick(gamepads []ebiten.GamepadID) (gamemath.Vec2, bool) {
	deadzone := cfg.Input.AnalogDeadzone

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		h := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		v := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		if math.Abs(h) < deadzone {
			h = 0
		}
		if math.Abs(v) < deadzone {
			v = 0
		}
		if h != 0 || v != 0 {
			return gamemath.Vec2{X: h, Y: -v}, true
		}
	}
	return gamemath.Vec2{}, false
}
