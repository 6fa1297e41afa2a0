// Package leveldata provides TMX level parsing for the simulation and the
// playground. It has no dependencies on ebitengine, donburi, or resolv;
// everything is in TMX pixels with Y down.
package leveldata

// Level holds everything collision-relevant parsed from a TMX file.
type Level struct {
	Name        string
	Solids      []SolidRect
	Platforms   []PlatformPath
	SpawnPoints []SpawnPoint
	MapWidth    int
	MapHeight   int
}

// SolidRect is a static block. Slidable blocks are also walls.
type SolidRect struct {
	X, Y, W, H float64
	Slidable   bool
}

// PlatformPath is a moving block travelling by (DX, DY) and back, Duration
// seconds each way.
type PlatformPath struct {
	X, Y, W, H float64
	DX, DY     float64
	Duration   float64
}

// SpawnPoint is where the character's feet start.
type SpawnPoint struct {
	X, Y  float64
	Index int
}
