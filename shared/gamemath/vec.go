// Package gamemath holds the pure math shared by the movement core and its
// hosts. It has no dependencies on ebitengine, donburi, or resolv.
package gamemath

import "math"

// Vec2 is a 2D vector in world units. Y points up.
type Vec2 struct {
	X, Y float64
}

var (
	Zero  = Vec2{}
	Up    = Vec2{0, 1}
	Down  = Vec2{0, -1}
	Right = Vec2{1, 0}
	Left  = Vec2{-1, 0}
)

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

func (v Vec2) IsZero() bool { return v.X == 0 && v.Y == 0 }

// Normalized returns v scaled to unit length, or zero for a zero vector.
func (v Vec2) Normalized() Vec2 {
	l := v.Len()
	if l == 0 {
		return Zero
	}
	return Vec2{v.X / l, v.Y / l}
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Vec2) float64 {
	return a.Sub(b).Len()
}

// Rect is an axis-aligned box in world units.
type Rect struct {
	Min, Max Vec2
}

// RectFromCenter builds a rect of the given size around center.
func RectFromCenter(center, size Vec2) Rect {
	half := size.Scale(0.5)
	return Rect{Min: center.Sub(half), Max: center.Add(half)}
}

func (r Rect) Width() float64  { return r.Max.X - r.Min.X }
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }
func (r Rect) Size() Vec2      { return Vec2{r.Width(), r.Height()} }

func (r Rect) Center() Vec2 {
	return Vec2{(r.Min.X + r.Max.X) / 2, (r.Min.Y + r.Max.Y) / 2}
}

// BottomCenter is the midpoint of the lower edge.
func (r Rect) BottomCenter() Vec2 { return Vec2{(r.Min.X + r.Max.X) / 2, r.Min.Y} }

// TopCenter is the midpoint of the upper edge.
func (r Rect) TopCenter() Vec2 { return Vec2{(r.Min.X + r.Max.X) / 2, r.Max.Y} }

// Translate moves the rect by d.
func (r Rect) Translate(d Vec2) Rect {
	return Rect{Min: r.Min.Add(d), Max: r.Max.Add(d)}
}

// Union returns the smallest rect covering both.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		Min: Vec2{math.Min(r.Min.X, o.Min.X), math.Min(r.Min.Y, o.Min.Y)},
		Max: Vec2{math.Max(r.Max.X, o.Max.X), math.Max(r.Max.Y, o.Max.Y)},
	}
}

// Overlaps reports a strict overlap. Rects that only share an edge do not
// overlap, so a body resting against a wall is not reported as inside it.
func (r Rect) Overlaps(o Rect) bool {
	return r.Min.X < o.Max.X && o.Min.X < r.Max.X &&
		r.Min.Y < o.Max.Y && o.Min.Y < r.Max.Y
}

// ClosestPoint returns the point of r nearest to p.
func (r Rect) ClosestPoint(p Vec2) Vec2 {
	return Vec2{
		Clamp(p.X, r.Min.X, r.Max.X),
		Clamp(p.Y, r.Min.Y, r.Max.Y),
	}
}

// Sweep returns the area covered by moving r along dir for distance.
func (r Rect) Sweep(dir Vec2, distance float64) Rect {
	return r.Union(r.Translate(dir.Normalized().Scale(distance)))
}
