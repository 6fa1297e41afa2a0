package gamemath

import "math"

var diag = 1 / math.Sqrt2

// DashDirections is the compass table a dash snaps to. The zero entry lets a
// neutral stick resolve to "no direction", which callers turn into facing.
var DashDirections = [...]Vec2{
	Zero,
	Up,
	Down,
	Right,
	Left,
	{diag, diag},
	{-diag, diag},
	{diag, -diag},
	{-diag, -diag},
}

// IsDiagonal reports whether d has both a horizontal and vertical component.
func IsDiagonal(d Vec2) bool {
	return d.X != 0 && d.Y != 0
}

// ResolveDashDirection snaps intent to the nearest table direction. An exact
// table match wins outright. Otherwise diagonal candidates have bias
// subtracted from their distance so that stick input between a cardinal and
// a diagonal leans diagonal. A zero result falls back to facingX.
func ResolveDashDirection(intent Vec2, facingX, bias float64) Vec2 {
	best := Zero
	bestDist := math.Inf(1)
	for _, d := range DashDirections {
		if intent == d {
			best = d
			break
		}
		dist := Distance(intent, d)
		if IsDiagonal(d) {
			dist -= bias
		}
		if dist < bestDist {
			bestDist = dist
			best = d
		}
	}

	if best.IsZero() {
		if facingX < 0 {
			return Left
		}
		return Right
	}
	return best
}
