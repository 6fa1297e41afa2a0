package config

import "github.com/yohamta/donburi/ecs"

// Render and update layers.
const (
	Default ecs.LayerID = iota
	DebugLayer
)
