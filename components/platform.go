package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// PlatformData drives a moving solid back and forth between its origin and
// origin+offset (resolv pixels) with a tween sequence.
type PlatformData struct {
	OriginX, OriginY float64
	OffsetX, OffsetY float64
	Duration         float32 // Seconds for one leg.

	// Sequence yields the travel fraction from 0 to 1 and back.
	Sequence *gween.Sequence
}

var Platform = donburi.NewComponentType[PlatformData]()
