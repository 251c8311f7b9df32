package gm

import "math"

// Tau is a full turn in radians.
const Tau = 2 * math.Pi

type Rad float64

func (r Rad) Degrees() float64 {
	return float64(r) * (180 / math.Pi)
}

// Radians returns the value of the angle in radians as float64.
func (r Rad) Radians() float64 {
	return float64(r)
}

// Normalized returns the angle normalized to the range [-π, π)
func (r Rad) Normalized() Rad {
	angle := float64(r)

	angle = math.Mod(angle+math.Pi, Tau)
	if angle < 0 {
		angle += Tau
	}

	return Rad(angle - math.Pi)
}

// Positive returns the angle reduced to the range [0, 2π).
func (r Rad) Positive() Rad {
	angle := math.Mod(float64(r), Tau)
	if angle < 0 {
		angle += Tau
	}

	// a tiny negative angle rounds up to a full turn
	if angle >= Tau {
		angle = 0
	}

	return Rad(angle)
}

// CircularDistance returns the unsigned distance between two angles when
// walking around the circle in the shorter direction. The result is in [0, π].
func (r Rad) CircularDistance(other Rad) Rad {
	alpha := r.Positive()
	beta := other.Positive()
	return min((beta - alpha).Positive(), (alpha - beta).Positive())
}

// IsBetween reports whether the angle lies within the half open interval
// [from, to), walking from `from` in the direction of increasing angles. All angles are
// reduced to [0, 2π) first. A `to` of zero after reduction is treated as a full
// turn, so an interval ending at 0 does not collapse.
func (r Rad) IsBetween(from, to Rad) bool {
	angle := r.Positive()
	from = from.Positive()
	to = to.Positive()

	if to == 0 {
		to = Tau
	}

	if from < to {
		return from <= angle && angle < to
	}

	// interval wraps around 0
	return angle >= from || angle < to
}

// Cos returns the cosine of the angle.
func (r Rad) Cos() float64 {
	return math.Cos(float64(r))
}

// Sin returns the sine of the angle.
func (r Rad) Sin() float64 {
	return math.Sin(float64(r))
}

func DegToRad(deg float64) Rad {
	return Rad(math.Pi / 180 * deg)
}
