// Package sim runs the motion controller headless: a donburi world built
// from a TMX level, stepped at a fixed rate from scripted input.
package sim

import (
	"github.com/automoto/doomerang-movement/components"
	cfg "github.com/automoto/doomerang-movement/config"
	"github.com/automoto/doomerang-movement/shared/gamemath"
	"github.com/automoto/doomerang-movement/shared/leveldata"
	"github.com/automoto/doomerang-movement/systems"
	"github.com/automoto/doomerang-movement/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Input is one frame of player intent. Press edges come from the held
// buttons changing between frames.
type Input struct {
	Move gamemath.Vec2
	Run  bool
	Jump bool
	Dash bool
}

// World is a level with one character in it.
type World struct {
	ecs    *ecs.ECS
	space  *components.SpaceData
	player *donburi.Entry
	tick   int
}

// NewWorld builds the level and spawns the character at spawnIndex.
func NewWorld(level *leveldata.Level, spawnIndex int) (*World, error) {
	e := ecs.NewECS(donburi.NewWorld())

	player, err := factory.CreateLevel(e, level, spawnIndex)
	if err != nil {
		return nil, err
	}
	spaceEntry, _ := components.Space.First(e.World)

	e.AddSystem(systems.UpdateMotionIntent)
	e.AddSystem(systems.UpdateMotionPhysics)
	e.AddSystem(systems.UpdatePlatforms)
	e.AddSystem(systems.UpdateObjects)
	e.AddSystem(systems.UpdateAnimations)

	return &World{
		ecs:    e,
		space:  components.Space.Get(spaceEntry),
		player: player,
	}, nil
}

// Step feeds one frame of input and advances the world by one fixed tick.
func (w *World) Step(in Input) TickRecord {
	components.Input.Get(w.player).Sample(in.Move, in.Run, in.Jump, in.Dash)
	w.ecs.Update()
	w.tick++
	return w.record()
}

// Tick is the number of steps taken.
func (w *World) Tick() int { return w.tick }

// Motion is the character's controller state.
func (w *World) Motion() *components.MotionData {
	return components.Motion.Get(w.player)
}

// Position is the bottom center of the character in world units.
func (w *World) Position() gamemath.Vec2 {
	obj := components.Object.Get(w.player).Object
	return w.space.ObjectRect(obj).BottomCenter()
}

// ECS exposes the underlying world for hosts that draw it.
func (w *World) ECS() *ecs.ECS { return w.ecs }

// Player is the character entry.
func (w *World) Player() *donburi.Entry { return w.player }

// TickRate is the fixed step frequency the world assumes.
func TickRate() int { return cfg.Simulation.TickRate }
