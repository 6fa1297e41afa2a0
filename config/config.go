package config

import "image/color"

// BodyConfig describes the character collision shapes in world units. The
// feet shape sits at the bottom of the body, centered horizontally.
type BodyConfig struct {
	Width       float64
	Height      float64
	FeetWidth   float64
	FeetHeight  float64
	SpawnOffset float64 // Lift above a spawn marker so the first tick starts airborne.
}

// SimulationConfig holds host clock and space settings.
type SimulationConfig struct {
	TickRate      int     // Fixed ticks per second.
	PixelsPerUnit float64 // resolv works in pixels; the controller in world units.
	CellSize      int     // resolv spatial hash cell size in pixels.
}

// Config holds general window configuration for the playground.
type Config struct {
	Width  int
	Height int
}

// Global configuration instances
var C *Config
var Movement MovementConfig
var Body BodyConfig
var Simulation SimulationConfig
var Debug DebugConfig

// DebugConfig controls the probe overlay. Hits draw red, misses green.
// ShowProbes can be overridden by command-line flags.
type DebugConfig struct {
	ShowProbes bool

	Hit  color.RGBA
	Miss color.RGBA
	Body color.RGBA
}

// Shared RGBA color constants
var (
	White       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red         = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green       = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	LightBlue   = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue    = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	SolidGray   = color.RGBA{R: 90, G: 90, B: 100, A: 255}
	PlatformTan = color.RGBA{R: 170, G: 140, B: 90, A: 255}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 368,
	}

	Movement = DefaultMovement()

	Body = BodyConfig{
		Width:       1,
		Height:      2,
		FeetWidth:   0.9,
		FeetHeight:  0.25,
		SpawnOffset: 0.05,
	}

	Simulation = SimulationConfig{
		TickRate:      50,
		PixelsPerUnit: 16,
		CellSize:      16,
	}

	Debug = DebugConfig{
		ShowProbes: false,
		Hit:        Red,
		Miss:       Green,
		Body:       LightBlue,
	}
}
