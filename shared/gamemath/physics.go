package gamemath

import "math"

// Clamp limits value to [min, max].
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	return Clamp(speed, -max, max)
}

// Lerp interpolates from a to b. t is clamped to [0, 1].
func Lerp(a, b, t float64) float64 {
	t = Clamp(t, 0, 1)
	return a + (b-a)*t
}

// InverseLerp returns where value sits between a and b, clamped to [0, 1].
func InverseLerp(a, b, value float64) float64 {
	if a == b {
		return 0
	}
	return Clamp((value-a)/(b-a), 0, 1)
}

// JumpGravity inverts projectile motion: the constant acceleration that
// stops an initial upward speed at exactly height after timeToApex.
func JumpGravity(height, timeToApex float64) float64 {
	return -(2 * height) / math.Pow(timeToApex, 2)
}

// LaunchSpeed is the initial speed that reaches the apex after timeToApex
// under gravity.
func LaunchSpeed(gravity, timeToApex float64) float64 {
	return math.Abs(gravity) * timeToApex
}

// Sign returns -1, 0 or 1.
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
