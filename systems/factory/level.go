package factory

import (
	"fmt"

	cfg "github.com/automoto/doomerang-movement/config"
	"github.com/automoto/doomerang-movement/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel builds the space, solids and platforms of a level and spawns
// the player at spawn point spawnIndex. It returns the player entry.
func CreateLevel(ecs *ecs.ECS, level *leveldata.Level, spawnIndex int) (*donburi.Entry, error) {
	if len(level.SpawnPoints) == 0 {
		return nil, fmt.Errorf("level %s has no spawn point", level.Name)
	}
	if spawnIndex < 0 || spawnIndex >= len(level.SpawnPoints) {
		spawnIndex = 0
	}

	CreateSpace(ecs, level.MapWidth, level.MapHeight, cfg.Simulation.CellSize)

	for _, s := range level.Solids {
		CreateSolid(ecs, s.X, s.Y, s.W, s.H, s.Slidable)
	}
	for _, p := range level.Platforms {
		CreatePlatform(ecs, p.X, p.Y, p.W, p.H, p.DX, p.DY, float32(p.Duration))
	}

	spawn := level.SpawnPoints[spawnIndex]
	return CreatePlayer(ecs, spawn.X, spawn.Y), nil
}
