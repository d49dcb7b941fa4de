package gamemath

import (
	"math"

	"github.com/kvartborg/vector"
)

// Up is the world's up direction. World space is y-up, gravity points along -Y.
var Up = vector.Vector{0, 1}

// angleEpsilon matches the threshold below which a direction is treated as
// degenerate when measuring angles.
const angleEpsilon = 1e-15

// MoveTowards moves current toward target by at most maxDelta and never
// overshoots. A non-positive or NaN maxDelta leaves current unchanged unless it
// already equals target.
func MoveTowards(current, target, maxDelta float64) float64 {
	diff := target - current
	if math.Abs(diff) <= maxDelta || diff == 0 {
		return target
	}
	if !(maxDelta > 0) {
		return current
	}
	return current + math.Copysign(maxDelta, diff)
}

// JumpVelocity returns the launch speed whose ballistic apex under gravityY is
// exactly height. Degenerate input (non-positive height, zero gravity, or a
// non-finite result) yields 0.
func JumpVelocity(height, gravityY float64) float64 {
	if !(height > 0) {
		return 0
	}
	v := math.Sqrt(2 * height * math.Abs(gravityY))
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
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

// Angle returns the unsigned angle between a and b in degrees. Degenerate
// vectors measure as 0.
func Angle(a, b vector.Vector) float64 {
	denom := math.Sqrt(a.Dot(a) * b.Dot(b))
	if denom < angleEpsilon {
		return 0
	}
	cos := a.Dot(b) / denom
	cos = math.Max(-1, math.Min(1, cos))
	return math.Acos(cos) * 180 / math.Pi
}

// AngleFromUp returns the angle between n and Up in degrees.
func AngleFromUp(n vector.Vector) float64 {
	return Angle(n, Up)
}
