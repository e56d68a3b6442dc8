package gamemath

import "math"

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// ApplyFriction damps a velocity component proportionally to friction over dt.
// The factor never flips the sign of v.
func ApplyFriction(v, friction, dt float64) float64 {
	f := 1 - friction*dt
	if f < 0 {
		return 0
	}
	return v * f
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// Bounce reflects v on contact. Results slower than minSpeed come to rest.
func Bounce(v, restitution, minSpeed float64) float64 {
	out := -v * restitution
	if math.Abs(out) < minSpeed {
		return 0
	}
	return out
}

// ImpactSpeed is the Manhattan speed used to grade collisions.
func ImpactSpeed(vx, vy float64) float64 {
	return math.Abs(vx) + math.Abs(vy)
}
