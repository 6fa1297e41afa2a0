package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Solid    = donburi.NewTag().SetName("Solid")
	Platform = donburi.NewTag().SetName("Platform")
)

// Resolv tags for physics collision. Solids stop movement; ground and wall
// are the probe layers.
const (
	ResolvSolid  = "solid"
	ResolvGround = "ground"
	ResolvWall   = "wall"
	ResolvPlayer = "player"
	ResolvProbe  = "probe"
)
