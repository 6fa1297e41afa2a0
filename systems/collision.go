package systems

import (
	"github.com/automoto/doomerang-movement/components"
	"github.com/automoto/doomerang-movement/shared/gamemath"
)

// Probe names used for debug recording.
const (
	ProbeGround = "ground"
	ProbeHead   = "head"
	ProbeWall   = "wall"
)

func (c *Controller) sampleCollisions() {
	s, p := c.State, c.Params
	body := c.Body.Bounds()
	feet := c.Body.FeetBounds()
	center := body.Center()

	ground := CastQuery{
		Origin:    feet.BottomCenter(),
		Size:      gamemath.Vec2{X: feet.Width(), Y: p.GroundDetectionRayLength},
		Dir:       gamemath.Down,
		Distance:  p.GroundDetectionRayLength,
		Layer:     p.GroundLayer,
		Reference: center,
	}
	hit := c.Probe.BoxCast(ground)
	s.Grounded = hit.Hit
	c.recordProbe(ProbeGround, ground, hit, p.Debug.ShowGroundBox)

	head := CastQuery{
		Origin:    body.TopCenter(),
		Size:      gamemath.Vec2{X: body.Width() * p.HeadWidth, Y: p.HeadDetectionRayLength},
		Dir:       gamemath.Up,
		Distance:  p.HeadDetectionRayLength,
		Layer:     p.GroundLayer,
		Reference: center,
	}
	hit = c.Probe.BoxCast(head)
	s.BumpedHead = hit.Hit
	c.recordProbe(ProbeHead, head, hit, p.Debug.ShowHeadBox)

	edge := body.Max.X
	if s.Facing == components.FacingLeft {
		edge = body.Min.X
	}
	wall := CastQuery{
		Origin:    gamemath.Vec2{X: edge, Y: center.Y},
		Size:      gamemath.Vec2{X: p.WallDetectionRayLength, Y: body.Height() * p.WallDetectionRayHeightMultiplier},
		Dir:       gamemath.Vec2{X: s.Facing.Sign()},
		Distance:  p.WallDetectionRayLength,
		Layer:     p.WallLayer,
		Reference: center,
	}
	hit = c.Probe.BoxCast(wall)
	s.TouchingWall = hit.Hit
	if hit.Hit {
		s.Wall.LastContact = &components.WallContact{Point: hit.Point, Collider: hit.Collider}
	}
	c.recordProbe(ProbeWall, wall, hit, p.Debug.ShowWallBox)
}

func (c *Controller) recordProbe(name string, q CastQuery, hit CastHit, enabled bool) {
	if !enabled || c.Debug == nil {
		return
	}
	c.Debug.Record(name, q.Area(), hit.Hit)
}
