package components

import (
	"github.com/automoto/doomerang-movement/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// SpaceData is the resolv space plus the frame mapping between resolv
// pixels (Y down, origin top-left) and world units (Y up, origin
// bottom-left).
type SpaceData struct {
	*resolv.Space
	PixelsPerUnit float64
	HeightPx      float64

	// Probe is a resolv object the shape caster moves around to query the
	// spatial hash. It carries only its own tag so no movement check sees it.
	Probe *resolv.Object
}

// ToWorld converts a resolv box to a world rect.
func (s *SpaceData) ToWorld(x, y, w, h float64) gamemath.Rect {
	return gamemath.Rect{
		Min: gamemath.Vec2{X: x / s.PixelsPerUnit, Y: (s.HeightPx - (y + h)) / s.PixelsPerUnit},
		Max: gamemath.Vec2{X: (x + w) / s.PixelsPerUnit, Y: (s.HeightPx - y) / s.PixelsPerUnit},
	}
}

// ObjectRect is the world rect of a resolv object.
func (s *SpaceData) ObjectRect(obj *resolv.Object) gamemath.Rect {
	return s.ToWorld(obj.X, obj.Y, obj.W, obj.H)
}

// ToSpace converts a world rect to a resolv box.
func (s *SpaceData) ToSpace(r gamemath.Rect) (x, y, w, h float64) {
	x = r.Min.X * s.PixelsPerUnit
	y = s.HeightPx - r.Max.Y*s.PixelsPerUnit
	w = r.Width() * s.PixelsPerUnit
	h = r.Height() * s.PixelsPerUnit
	return x, y, w, h
}

var Space = donburi.NewComponentType[SpaceData]()
